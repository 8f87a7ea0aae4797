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

// Package opsem provides the operational semantics of a shadow-memory machine
// which tracks pointer ownership without alias analysis.  Ownership is stored
// in a side table keyed by address, hence an instruction can query or update
// the sharing status of an address regardless of how many registers or memory
// cells currently name it.
//
// Every instruction is a total function from a state to a state.  Registers
// named as targets come first, followed by sources and then the state:
//
//	s1 := opsem.Alloc("p0", 1, opsem.Init())
//	s2 := opsem.Die("p0", s1)
//
// A blocked instruction (i.e. whose precondition fails) returns the state it
// was given, hence a driver detects failure by observing that the program
// counter did not advance.
package opsem

import (
	"github.com/consensys/go-ownsem/pkg/instruction"
	"github.com/consensys/go-ownsem/pkg/machine"
)

// State is the state of the machine.
type State = machine.State

// Register is the name of a register.
type Register = machine.Register

// Init returns the initial state, where the program counter is zero and all
// tables are empty.
func Init() State {
	return machine.Init()
}

// Alloc implements "p = alloc size".
func Alloc(p Register, size uint, s State) State {
	return instruction.Transition(&instruction.Alloc{Target: p, Size: size}, s)
}

// Die implements "die q0".
func Die(q0 Register, s State) State {
	return instruction.Transition(&instruction.Die{Source: q0}, s)
}

// BrReg2Reg implements "p1, q0 = brreg2reg p0".
func BrReg2Reg(p0 Register, q0 Register, p1 Register, s State) State {
	return instruction.Transition(&instruction.BrReg2Reg{Source: p0, Borrower: q0, Owner: p1}, s)
}

// BrMem2Reg implements "q0 = brmem2reg pp0".
func BrMem2Reg(q0 Register, pp0 Register, s State) State {
	return instruction.Transition(&instruction.BrMem2Reg{Target: q0, Pointer: pp0}, s)
}

// BrMem2RegRO implements "q0 = brmem2reg_ro pp0".
func BrMem2RegRO(q0 Register, pp0 Register, s State) State {
	return instruction.Transition(&instruction.BrMem2RegRO{Target: q0, Pointer: pp0}, s)
}

// MvReg2Mem implements "mvreg2mem pp0, p0".
func MvReg2Mem(pp0 Register, p0 Register, s State) State {
	return instruction.Transition(&instruction.MvReg2Mem{Pointer: pp0, Source: p0}, s)
}

// MvMem2Reg implements "p1 = mvmem2reg pp0".
func MvMem2Reg(p1 Register, pp0 Register, s State) State {
	return instruction.Transition(&instruction.MvMem2Reg{Target: p1, Pointer: pp0}, s)
}

// CpMem2Reg implements "q0 = cpmem2reg pp0".
func CpMem2Reg(q0 Register, pp0 Register, s State) State {
	return instruction.Transition(&instruction.CpMem2Reg{Target: q0, Pointer: pp0}, s)
}

// CpReg2Mem implements "q0 = cpreg2mem pp0, p0".
func CpReg2Mem(q0 Register, pp0 Register, p0 Register, s State) State {
	return instruction.Transition(&instruction.CpReg2Mem{Target: q0, Pointer: pp0, Source: p0}, s)
}
