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
	"fmt"

	"github.com/consensys/go-ownsem/pkg/machine"
	"github.com/consensys/go-ownsem/pkg/ownership"
)

// MvReg2Mem represents an instruction of the following form:
//
// mvreg2mem pp0, p0
//
// This moves the uniquely owned address bound to p0 into the memory cell at
// the address bound to pp0 (i.e. M[R[pp0]] = R[p0]), and unbinds p0.  Since
// ownership is keyed by address, the ownership table is unchanged.
type MvReg2Mem struct {
	// Register pointing to the memory cell written
	Pointer machine.Register
	// Register holding the address being moved
	Source machine.Register
}

// Uses implementation for Instruction interface.
func (p *MvReg2Mem) Uses() []machine.Register {
	return []machine.Register{p.Pointer, p.Source}
}

// Definitions implementation for Instruction interface.
func (p *MvReg2Mem) Definitions() []machine.Register {
	return nil
}

// Kills implementation for Instruction interface.
func (p *MvReg2Mem) Kills() []machine.Register {
	return []machine.Register{p.Source}
}

// Check implementation for Instruction interface.
func (p *MvReg2Mem) Check(state machine.State) error {
	const op = "mvreg2mem"
	//
	if err := requireLive(op, state, p.Pointer, p.Source); err != nil {
		return err
	}
	//
	a, _ := state.Register(p.Source)
	//
	return requireRegime(op, state, a, ownership.CanMove)
}

// Execute implementation for Instruction interface.
func (p *MvReg2Mem) Execute(state machine.State) (machine.State, error) {
	if err := p.Check(state); err != nil {
		return state, err
	}
	//
	var (
		cell, _ = state.Register(p.Pointer)
		a, _    = state.Register(p.Source)
	)
	//
	return state.Store(cell, a).Unbind(p.Source).Next(), nil
}

func (p *MvReg2Mem) String() string {
	return fmt.Sprintf("mvreg2mem %s", registersToString(p.Pointer, p.Source))
}

// MvMem2Reg represents an instruction of the following form:
//
// p1 = mvmem2reg pp0
//
// This moves the uniquely owned address held in memory at the address bound to
// pp0 (i.e. M[R[pp0]]) into the (dead) register p1.  The memory cell itself is
// left as is, and the ownership table is unchanged.
type MvMem2Reg struct {
	// Register receiving the address
	Target machine.Register
	// Register pointing to the memory cell holding the address
	Pointer machine.Register
}

// Uses implementation for Instruction interface.
func (p *MvMem2Reg) Uses() []machine.Register {
	return []machine.Register{p.Pointer}
}

// Definitions implementation for Instruction interface.
func (p *MvMem2Reg) Definitions() []machine.Register {
	return []machine.Register{p.Target}
}

// Kills implementation for Instruction interface.
func (p *MvMem2Reg) Kills() []machine.Register {
	return nil
}

// Check implementation for Instruction interface.
func (p *MvMem2Reg) Check(state machine.State) error {
	const op = "mvmem2reg"
	//
	if err := requireLive(op, state, p.Pointer); err != nil {
		return err
	} else if err := requireDead(op, state, p.Target); err != nil {
		return err
	}
	//
	a, err := derefderef(op, state, p.Pointer)
	if err != nil {
		return err
	}
	//
	return requireRegime(op, state, a, ownership.CanMove)
}

// Execute implementation for Instruction interface.
func (p *MvMem2Reg) Execute(state machine.State) (machine.State, error) {
	if err := p.Check(state); err != nil {
		return state, err
	}
	//
	a, _ := state.Pointee(p.Pointer)
	//
	return state.Bind(p.Target, a).Next(), nil
}

func (p *MvMem2Reg) String() string {
	return fmt.Sprintf("%s = mvmem2reg %s", p.Target, p.Pointer)
}
