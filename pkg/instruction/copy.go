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

// CpMem2Reg represents an instruction of the following form:
//
// q0 = cpmem2reg pp0
//
// This copies the address held in memory at the address bound to pp0 (i.e.
// M[R[pp0]]) into the (dead) register q0.  The register pp0 need not own the
// address.  The address must be either uniquely owned or already copied, and
// its counter gains one read-write copy.
type CpMem2Reg struct {
	// Register receiving the copy
	Target machine.Register
	// Register pointing to the memory cell holding the address
	Pointer machine.Register
}

// Uses implementation for Instruction interface.
func (p *CpMem2Reg) Uses() []machine.Register {
	return []machine.Register{p.Pointer}
}

// Definitions implementation for Instruction interface.
func (p *CpMem2Reg) Definitions() []machine.Register {
	return []machine.Register{p.Target}
}

// Kills implementation for Instruction interface.
func (p *CpMem2Reg) Kills() []machine.Register {
	return nil
}

// Check implementation for Instruction interface.
func (p *CpMem2Reg) Check(state machine.State) error {
	const op = "cpmem2reg"
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
	return requireRegime(op, state, a, ownership.CanCopy)
}

// Execute implementation for Instruction interface.
func (p *CpMem2Reg) Execute(state machine.State) (machine.State, error) {
	if err := p.Check(state); err != nil {
		return state, err
	}
	//
	a, _ := state.Pointee(p.Pointer)
	//
	return state.Bind(p.Target, a).Own(a, state.Ownership(a).Copy()).Next(), nil
}

func (p *CpMem2Reg) String() string {
	return fmt.Sprintf("%s = cpmem2reg %s", p.Target, p.Pointer)
}

// CpReg2Mem represents an instruction of the following form:
//
// q0 = cpreg2mem pp0, p0
//
// This copies the address bound to p0 both into the memory cell at the address
// bound to pp0 (i.e. M[R[pp0]] = R[p0]) and into the (dead) register q0.  The
// address must be either uniquely owned or already copied, and its counter
// gains one read-write copy.  The register p0 remains live.
type CpReg2Mem struct {
	// Register receiving the copy
	Target machine.Register
	// Register pointing to the memory cell written
	Pointer machine.Register
	// Register holding the address being copied
	Source machine.Register
}

// Uses implementation for Instruction interface.
func (p *CpReg2Mem) Uses() []machine.Register {
	return []machine.Register{p.Pointer, p.Source}
}

// Definitions implementation for Instruction interface.
func (p *CpReg2Mem) Definitions() []machine.Register {
	return []machine.Register{p.Target}
}

// Kills implementation for Instruction interface.
func (p *CpReg2Mem) Kills() []machine.Register {
	return nil
}

// Check implementation for Instruction interface.
func (p *CpReg2Mem) Check(state machine.State) error {
	const op = "cpreg2mem"
	//
	if err := requireLive(op, state, p.Source, p.Pointer); err != nil {
		return err
	} else if err := requireDead(op, state, p.Target); err != nil {
		return err
	}
	//
	a, _ := state.Register(p.Source)
	//
	return requireRegime(op, state, a, ownership.CanCopy)
}

// Execute implementation for Instruction interface.
func (p *CpReg2Mem) Execute(state machine.State) (machine.State, error) {
	if err := p.Check(state); err != nil {
		return state, err
	}
	//
	var (
		cell, _ = state.Register(p.Pointer)
		a, _    = state.Register(p.Source)
	)
	//
	return state.Bind(p.Target, a).Store(cell, a).Own(a, state.Ownership(a).Copy()).Next(), nil
}

func (p *CpReg2Mem) String() string {
	return fmt.Sprintf("%s = cpreg2mem %s", p.Target, registersToString(p.Pointer, p.Source))
}
