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
package machine

import (
	"fmt"

	"github.com/consensys/go-ownsem/pkg/ownership"
)

// Address identifies a memory location.  Addresses are also the only kind of
// value which memory can hold.
type Address = uint64

// Register is the name of a register.  A register is live when it is bound to
// an address, and dead otherwise.
type Register = string

// Value is the kind of data held in shadow memory.
type Value = int64

// ============================================================================
// State
// ============================================================================

// State represents a snapshot of the machine, consisting of a program counter,
// a register file (R), a memory (M), a shadow memory (S) and an ownership table
// (O).  Ownership is keyed by address rather than by name, hence the sharing
// status of an address can be queried and updated without tracking the names
// which alias it.
//
// States are values: every update returns a new state and leaves the original
// untouched.  Since all tables are persistent maps, copying a state is cheap
// and two states never share mutable structure.
type State struct {
	// Program counter, incremented on every successful transition.
	pc uint
	// Register file, mapping live register names to addresses.
	registers table[Register, Address]
	// Memory, mapping addresses to addresses.
	memory table[Address, Address]
	// Shadow memory, reserved for tracking values.  No instruction writes to
	// this.
	shadow table[Address, Value]
	// Ownership table, mapping addresses to their ownership counters.
	ownership table[Address, ownership.Counter]
	// Allocator used for fresh addresses.
	allocator Allocator
}

// Init constructs the initial machine state, where all tables are empty and
// addresses are allocated from zero upwards.
func Init() State {
	return InitWith(NewBump(0))
}

// InitWith constructs an initial machine state which uses the given allocator
// to obtain fresh addresses.
func InitWith(allocator Allocator) State {
	return State{allocator: allocator}
}

// PC returns the program counter of this state.
func (p State) PC() uint {
	return p.pc
}

// Allocator returns the allocator from which the next fresh address will be
// drawn.
func (p State) Allocator() Allocator {
	return p.allocator
}

// Register returns the address bound to a given register, or false if that
// register is dead.
func (p State) Register(r Register) (Address, bool) {
	return p.registers.get(r)
}

// IsLive checks whether a given register is currently bound.
func (p State) IsLive(r Register) bool {
	_, ok := p.registers.get(r)
	return ok
}

// Registers returns the names of all live registers, in sorted order.
func (p State) Registers() []Register {
	return p.registers.keys()
}

// Load returns the address held in the memory cell at a given address, or
// false if that cell has never been written.
func (p State) Load(a Address) (Address, bool) {
	return p.memory.get(a)
}

// Pointee returns the address held in memory at the address bound to a given
// register (i.e. M[R[r]]), or false if the register is dead or the memory cell
// was never written.
func (p State) Pointee(r Register) (Address, bool) {
	if a, ok := p.registers.get(r); ok {
		return p.memory.get(a)
	}
	//
	return 0, false
}

// Shadow returns the value held in shadow memory at a given address, or false
// if there is none.
func (p State) Shadow(a Address) (Value, bool) {
	return p.shadow.get(a)
}

// Ownership returns the ownership counter of a given address.  An address
// without an entry in the ownership table is unused.
func (p State) Ownership(a Address) ownership.Counter {
	if c, ok := p.ownership.get(a); ok {
		return c
	}
	//
	return ownership.Unused()
}

// Owned returns all addresses which have an entry in the ownership table, in
// sorted order.
func (p State) Owned() []Address {
	return p.ownership.keys()
}

// ========================================================
// Ownership Predicates
// ========================================================

// CanMove determines whether the given address can currently be moved.
func (p State) CanMove(a Address) bool {
	return ownership.CanMove(p.Ownership(a))
}

// CanMutBorrow determines whether the given address can currently be mutably
// borrowed.
func (p State) CanMutBorrow(a Address) bool {
	return ownership.CanMutBorrow(p.Ownership(a))
}

// CanBorrow determines whether the given address can currently be immutably
// borrowed.
func (p State) CanBorrow(a Address) bool {
	return ownership.CanBorrow(p.Ownership(a))
}

// CanCopy determines whether the given address can currently be copied.
func (p State) CanCopy(a Address) bool {
	return ownership.CanCopy(p.Ownership(a))
}

// IsBorrowed determines whether the given address is currently eligible to be
// treated as borrowed.
func (p State) IsBorrowed(a Address) bool {
	return ownership.IsBorrowed(p.Ownership(a))
}

// ========================================================
// Updates
// ========================================================

// Next returns this state with the program counter advanced by one.
func (p State) Next() State {
	var state = p
	//
	state.pc++
	//
	return state
}

// Bind returns this state updated such that the given register is bound to the
// given address.
func (p State) Bind(r Register, a Address) State {
	var state = p
	//
	state.registers = p.registers.set(r, a)
	//
	return state
}

// Unbind returns this state updated such that the given register is dead.
func (p State) Unbind(r Register) State {
	var state = p
	//
	state.registers = p.registers.remove(r)
	//
	return state
}

// Store returns this state updated such that the memory cell at address a
// holds address v.
func (p State) Store(a Address, v Address) State {
	var state = p
	//
	state.memory = p.memory.set(a, v)
	//
	return state
}

// Own returns this state updated such that address a has the given ownership
// counter.
func (p State) Own(a Address, c ownership.Counter) State {
	var state = p
	//
	state.ownership = p.ownership.set(a, c)
	//
	return state
}

// Allocate a fresh address of the given size, returning it along with the state
// holding the advanced allocator.  The ownership table is not updated.  This
// returns false if the allocator is exhausted.
func (p State) Allocate(size uint) (Address, State, bool) {
	var state = p
	//
	if state.allocator == nil {
		state.allocator = NewBump(0)
	}
	//
	a, allocator, ok := state.allocator.Allocate(size)
	if !ok {
		return 0, p, false
	}
	//
	state.allocator = allocator
	//
	return a, state, true
}

// ========================================================
// Comparison
// ========================================================

// Equals checks whether two states agree on their program counter, register
// file, memory, shadow memory and ownership table.  The allocator is not
// considered.
func (p State) Equals(other State) bool {
	return p.pc == other.pc &&
		p.registers.equals(other.registers) &&
		p.memory.equals(other.memory) &&
		p.shadow.equals(other.shadow) &&
		p.ownership.equals(other.ownership)
}

func (p State) String() string {
	return fmt.Sprintf("pc=%d R=%s M=%s S=%s O=%s", p.pc, p.registers.String(), p.memory.String(),
		p.shadow.String(), p.ownership.String())
}
