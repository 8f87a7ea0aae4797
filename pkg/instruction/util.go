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
package instruction

import (
	"strings"

	"github.com/consensys/go-ownsem/pkg/machine"
	"github.com/consensys/go-ownsem/pkg/ownership"
)

// Check all the given registers are dead, since they are about to be bound.
func requireDead(op string, state machine.State, regs ...machine.Register) error {
	for _, r := range regs {
		if state.IsLive(r) {
			return &Blocked{op: op, register: r, reason: ReasonLive}
		}
	}
	//
	return nil
}

// Check all the given registers are live, since they are about to be read.
func requireLive(op string, state machine.State, regs ...machine.Register) error {
	for _, r := range regs {
		if !state.IsLive(r) {
			return &Blocked{op: op, register: r, reason: ReasonDead}
		}
	}
	//
	return nil
}

// Check two registers to be bound are not the same register.
func requireDistinct(op string, r1 machine.Register, r2 machine.Register) error {
	if r1 == r2 {
		return &Blocked{op: op, register: r1, reason: ReasonAliased}
	}
	//
	return nil
}

// Determine the address bound to a live register.
func deref(op string, state machine.State, r machine.Register) (machine.Address, error) {
	if a, ok := state.Register(r); ok {
		return a, nil
	}
	//
	return 0, &Blocked{op: op, register: r, reason: ReasonDead}
}

// Determine the address held in memory at the address bound to a live register
// (i.e. M[R[r]]).
func derefderef(op string, state machine.State, r machine.Register) (machine.Address, error) {
	if _, err := deref(op, state, r); err != nil {
		return 0, err
	} else if a, ok := state.Pointee(r); ok {
		return a, nil
	}
	//
	return 0, &Blocked{op: op, register: r, reason: ReasonNoPointee}
}

// Check the ownership counter of a given address satisfies a given predicate
// from the ownership lattice.
func requireRegime(op string, state machine.State, a machine.Address, pred func(ownership.Counter) bool) error {
	if c := state.Ownership(a); !pred(c) {
		return &Blocked{op: op, address: a, counter: c, reason: ReasonForbidden}
	}
	//
	return nil
}

// RegistersToString returns a string representation for zero or more registers
// separated by a comma.
func registersToString(regs ...machine.Register) string {
	var builder strings.Builder
	//
	for i, r := range regs {
		if i != 0 {
			builder.WriteString(", ")
		}
		//
		builder.WriteString(r)
	}
	//
	return builder.String()
}
