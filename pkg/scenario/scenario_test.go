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
package scenario

import (
	"testing"

	"github.com/consensys/go-ownsem/pkg/instruction"
	"github.com/consensys/go-ownsem/pkg/ownership"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Scenario_01(t *testing.T) {
	for _, s := range All() {
		trace, errs := s.Run()
		//
		assert.Empty(t, errs, s.Name)
		assert.Equal(t, uint(len(s.Program)), trace.Len(), s.Name)
	}
}

func Test_Scenario_02(t *testing.T) {
	var seen = make(map[string]bool)
	//
	for _, s := range All() {
		require.False(t, seen[s.Name], s.Name)
		require.NotEmpty(t, s.Description, s.Name)
		require.NotEmpty(t, s.Expectations, s.Name)
		//
		seen[s.Name] = true
		//
		found, ok := Lookup(s.Name)
		require.True(t, ok)
		require.Equal(t, s.Name, found.Name)
	}
	//
	_, ok := Lookup("missing")
	require.False(t, ok)
}

func Test_Scenario_03(t *testing.T) {
	// Expectations which do not hold are reported.
	s := Scenario{
		Name: "broken",
		Program: []instruction.Instruction{
			&instruction.Alloc{Target: "p0", Size: 1},
			&instruction.Die{Source: "q0"},
		},
		Expectations: []Expectation{
			Advanced(1),
			Blocked(0, instruction.ReasonLive),
			Blocked(1, instruction.ReasonLive),
			Owns(0, 0, ownership.SharedRO(1)),
			Live(1, "q0", 0),
			Dead(1, "p0"),
			Stored(1, 0, 0),
			PC(2),
			NoneBlocked(),
			Advanced(7),
		},
	}
	//
	_, errs := s.Run()
	require.Len(t, errs, len(s.Expectations))
	assert.Equal(t, "step 1: expected to block (live), but blocked (dead)", errs[2].Error())
	assert.Equal(t, "step 0: expected O[0]=ro(1), but found uniq", errs[3].Error())
	assert.Equal(t, "step 7: not executed (trace has 2 steps)", errs[9].Error())
}

func Test_Random_01(t *testing.T) {
	p1 := Random(42, 64, DefaultRegisters)
	p2 := Random(42, 64, DefaultRegisters)
	p3 := Random(43, 64, DefaultRegisters)
	//
	require.Len(t, p1, 64)
	//
	same := true
	//
	for i := range p1 {
		require.Equal(t, p1[i].String(), p2[i].String())
		same = same && p1[i].String() == p3[i].String()
	}
	//
	require.False(t, same)
}

func Test_Random_02(t *testing.T) {
	// Random programs exercise both outcomes.
	var advanced, blocked uint
	//
	for seed := range uint64(10) {
		s := Scenario{Program: Random(seed, 50, DefaultRegisters)}
		trace, _ := s.Run()
		//
		blocked += uint(len(trace.Blocked()))
		advanced += trace.Final().PC()
	}
	//
	require.NotZero(t, advanced)
	require.NotZero(t, blocked)
}
