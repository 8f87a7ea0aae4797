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
	"github.com/consensys/go-ownsem/pkg/machine"
)

// Instruction provides an abstract notion of a "machine instruction".  That is,
// a single atomic transition from one machine state to another.  Every
// instruction is guarded by a precondition over the register file and the
// ownership table.  When the precondition fails, the transition is "blocked":
// the state is left exactly as it was, and the program counter does not
// advance.  Otherwise, the program counter advances by exactly one and the
// effect of the instruction is applied.
type Instruction interface {
	// Uses returns the registers read by this instruction, all of which must be
	// live for it to execute.
	Uses() []machine.Register
	// Definitions returns the registers bound by this instruction.
	Definitions() []machine.Register
	// Kills returns the registers unbound by this instruction.
	Kills() []machine.Register
	// Check whether this instruction can execute in the given state, returning
	// a *Blocked error when it cannot.
	Check(state machine.State) error
	// Execute this instruction in the given state, returning the resulting
	// state.  If the instruction is blocked, the given state is returned
	// unchanged together with a *Blocked error explaining why.
	Execute(state machine.State) (machine.State, error)
	// Provide human readable form of instruction
	String() string
}

// Transition executes an instruction as a pure state transformer, where a
// blocked instruction simply returns the state it was given.
func Transition(insn Instruction, state machine.State) machine.State {
	next, _ := insn.Execute(state)
	//
	return next
}
