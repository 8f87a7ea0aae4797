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

// ============================================================================
// Register to Register
// ============================================================================

// BrReg2Reg represents an instruction of the following form:
//
// p1, q0 = brreg2reg p0
//
// This mutably borrows the uniquely owned address bound to p0.  Both the
// borrower q0 and the new owner p1 are bound to that address, and p0 is
// unbound.  Binding p1 immediately (rather than once q0 dies) means the
// machine never has to track that q0 and p1 alias.  The ownership counter is
// unchanged, since the address remains uniquely owned.
type BrReg2Reg struct {
	// Register which currently owns the address
	Source machine.Register
	// Register which borrows the address
	Borrower machine.Register
	// Register which becomes the owner of the address
	Owner machine.Register
}

// Uses implementation for Instruction interface.
func (p *BrReg2Reg) Uses() []machine.Register {
	return []machine.Register{p.Source}
}

// Definitions implementation for Instruction interface.
func (p *BrReg2Reg) Definitions() []machine.Register {
	return []machine.Register{p.Owner, p.Borrower}
}

// Kills implementation for Instruction interface.
func (p *BrReg2Reg) Kills() []machine.Register {
	return []machine.Register{p.Source}
}

// Check implementation for Instruction interface.
func (p *BrReg2Reg) Check(state machine.State) error {
	const op = "brreg2reg"
	//
	if err := requireDead(op, state, p.Borrower, p.Owner); err != nil {
		return err
	} else if err := requireDistinct(op, p.Owner, p.Borrower); err != nil {
		return err
	}
	//
	a, err := deref(op, state, p.Source)
	if err != nil {
		return err
	}
	//
	return requireRegime(op, state, a, ownership.CanMutBorrow)
}

// Execute implementation for Instruction interface.
func (p *BrReg2Reg) Execute(state machine.State) (machine.State, error) {
	if err := p.Check(state); err != nil {
		return state, err
	}
	//
	a, _ := state.Register(p.Source)
	//
	return state.Bind(p.Borrower, a).Bind(p.Owner, a).Unbind(p.Source).Next(), nil
}

func (p *BrReg2Reg) String() string {
	return fmt.Sprintf("%s = brreg2reg %s", registersToString(p.Owner, p.Borrower), p.Source)
}

// ============================================================================
// Memory to Register (mutable)
// ============================================================================

// BrMem2Reg represents an instruction of the following form:
//
// q0 = brmem2reg pp0
//
// This mutably borrows the address held in memory at the address bound to
// pp0 (i.e. M[R[pp0]]), which must be uniquely owned, binding it to q0.  The
// ownership counter is unchanged.
type BrMem2Reg struct {
	// Register which borrows the address
	Target machine.Register
	// Register pointing to the memory cell holding the address
	Pointer machine.Register
}

// Uses implementation for Instruction interface.
func (p *BrMem2Reg) Uses() []machine.Register {
	return []machine.Register{p.Pointer}
}

// Definitions implementation for Instruction interface.
func (p *BrMem2Reg) Definitions() []machine.Register {
	return []machine.Register{p.Target}
}

// Kills implementation for Instruction interface.
func (p *BrMem2Reg) Kills() []machine.Register {
	return nil
}

// Check implementation for Instruction interface.
func (p *BrMem2Reg) Check(state machine.State) error {
	const op = "brmem2reg"
	//
	if err := requireDead(op, state, p.Target); err != nil {
		return err
	}
	//
	a, err := derefderef(op, state, p.Pointer)
	if err != nil {
		return err
	}
	//
	return requireRegime(op, state, a, ownership.CanMutBorrow)
}

// Execute implementation for Instruction interface.
func (p *BrMem2Reg) Execute(state machine.State) (machine.State, error) {
	if err := p.Check(state); err != nil {
		return state, err
	}
	//
	a, _ := state.Pointee(p.Pointer)
	//
	return state.Bind(p.Target, a).Next(), nil
}

func (p *BrMem2Reg) String() string {
	return fmt.Sprintf("%s = brmem2reg %s", p.Target, p.Pointer)
}

// ============================================================================
// Memory to Register (immutable)
// ============================================================================

// BrMem2RegRO represents an instruction of the following form:
//
// q0 = brmem2reg_ro pp0
//
// This immutably borrows the address held in memory at the address bound to
// pp0 (i.e. M[R[pp0]]), binding it to q0.  The address must be either uniquely
// owned or already immutably borrowed, and its counter gains one read-only
// borrow.
type BrMem2RegRO struct {
	// Register which borrows the address
	Target machine.Register
	// Register pointing to the memory cell holding the address
	Pointer machine.Register
}

// Uses implementation for Instruction interface.
func (p *BrMem2RegRO) Uses() []machine.Register {
	return []machine.Register{p.Pointer}
}

// Definitions implementation for Instruction interface.
func (p *BrMem2RegRO) Definitions() []machine.Register {
	return []machine.Register{p.Target}
}

// Kills implementation for Instruction interface.
func (p *BrMem2RegRO) Kills() []machine.Register {
	return nil
}

// Check implementation for Instruction interface.
func (p *BrMem2RegRO) Check(state machine.State) error {
	const op = "brmem2reg_ro"
	//
	if err := requireDead(op, state, p.Target); err != nil {
		return err
	}
	//
	a, err := derefderef(op, state, p.Pointer)
	if err != nil {
		return err
	}
	//
	return requireRegime(op, state, a, ownership.CanBorrow)
}

// Execute implementation for Instruction interface.
func (p *BrMem2RegRO) Execute(state machine.State) (machine.State, error) {
	if err := p.Check(state); err != nil {
		return state, err
	}
	//
	a, _ := state.Pointee(p.Pointer)
	//
	return state.Bind(p.Target, a).Own(a, state.Ownership(a).Borrow()).Next(), nil
}

func (p *BrMem2RegRO) String() string {
	return fmt.Sprintf("%s = brmem2reg_ro %s", p.Target, p.Pointer)
}
