// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/consensys/go-ownsem/pkg/instruction"
	"github.com/consensys/go-ownsem/pkg/scenario"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_List_01(t *testing.T) {
	var out bytes.Buffer
	//
	listScenarios(&out, scenario.All())
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	//
	require.Len(t, lines, len(scenario.All()))
	assert.True(t, strings.HasPrefix(lines[0], "alloc "))
}

func Test_Run_01(t *testing.T) {
	var out bytes.Buffer
	//
	s, ok := scenario.Lookup("die-dead")
	require.True(t, ok)
	//
	errs := runScenarios(newPrinter(&out, false), []scenario.Scenario{s})
	require.Empty(t, errs)
	assert.Equal(t, `die-dead
    pc=0 R={} M={} S={} O={}
    [0] p0 = alloc 1  ==> pc=1 R={p0:0} M={} S={} O={0:uniq}
    [1] die q0  BLOCKED (dead)
`, out.String())
}

func Test_Run_02(t *testing.T) {
	var out bytes.Buffer
	//
	s := scenario.Scenario{
		Name:         "wrong",
		Program:      []instruction.Instruction{&instruction.Die{Source: "q0"}},
		Expectations: []scenario.Expectation{scenario.Advanced(0)},
	}
	//
	errs := runScenarios(newPrinter(&out, true), []scenario.Scenario{s})
	require.Len(t, errs, 1)
	assert.True(t, strings.HasPrefix(errs[0].Error(), "wrong: step 0: expected to advance"))
	assert.Contains(t, out.String(), "\033[31m[0] die q0  BLOCKED (dead)\033[0m")
}

func Test_Check_01(t *testing.T) {
	errs := checkPrograms(checkConfig{seed: 7, steps: 50, programs: 10, batch: 8})
	//
	assert.Empty(t, errs)
}
