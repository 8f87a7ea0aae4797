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

// Package assert provides test assertions over machine states, layered on top
// of testify.  Failures report a structural diff of the two states involved
// rather than their full printed form.
package assert

import (
	"strings"
	"testing"

	"github.com/consensys/go-ownsem/pkg/machine"
	"github.com/consensys/go-ownsem/pkg/ownership"
	testify "github.com/stretchr/testify/assert"
)

// Equal errors if actual is not equal to expected (ignoring allocators).
func Equal(t *testing.T, expected, actual machine.State, msg ...any) bool {
	t.Helper()
	//
	if expected.Equals(actual) {
		return true
	}
	//
	return testify.Fail(t, "states differ:\n"+strings.Join(machine.Diff(expected, actual), "\n"), msg...)
}

// Blocked errors if after is not exactly the state before, which is how a
// blocked transition is observed.
func Blocked(t *testing.T, before, after machine.State, msg ...any) bool {
	t.Helper()
	//
	return Equal(t, before, after, msg...)
}

// Advanced errors if the program counter of after is not exactly one more than
// that of before.
func Advanced(t *testing.T, before, after machine.State, msg ...any) bool {
	t.Helper()
	//
	return testify.Equal(t, before.PC()+1, after.PC(), msg...)
}

// Live errors if the given register is not bound to the given address.
func Live(t *testing.T, state machine.State, r machine.Register, a machine.Address, msg ...any) bool {
	t.Helper()
	//
	actual, ok := state.Register(r)
	if !ok {
		return testify.Fail(t, "register "+r+" is dead", msg...)
	}
	//
	return testify.Equal(t, a, actual, msg...)
}

// Dead errors if the given register is bound.
func Dead(t *testing.T, state machine.State, r machine.Register, msg ...any) bool {
	t.Helper()
	//
	return testify.False(t, state.IsLive(r), msg...)
}

// Owns errors if the ownership counter of a given address is not the expected
// one.
func Owns(t *testing.T, state machine.State, a machine.Address, expected ownership.Counter, msg ...any) bool {
	t.Helper()
	//
	return testify.Equal(t, expected.String(), state.Ownership(a).String(), msg...)
}
