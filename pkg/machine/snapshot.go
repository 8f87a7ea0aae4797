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
	"math"

	"github.com/consensys/go-ownsem/pkg/ownership"
	"github.com/kr/pretty"
)

// Snapshot is a plain representation of a machine state using Go maps.  This
// is useful for constructing initial states, and for inspecting or comparing
// states outside the machine.  A snapshot never shares its maps with a state.
type Snapshot struct {
	PC        uint
	Registers map[Register]Address
	Memory    map[Address]Address
	Shadow    map[Address]Value
	Ownership map[Address]ownership.Counter
}

// Snapshot returns a freshly allocated plain copy of this state.
func (p State) Snapshot() Snapshot {
	return Snapshot{
		PC:        p.pc,
		Registers: p.registers.toMap(),
		Memory:    p.memory.toMap(),
		Shadow:    p.shadow.toMap(),
		Ownership: p.ownership.toMap(),
	}
}

// FromSnapshot constructs a state from a given snapshot.  The state allocates
// fresh addresses starting just above the largest address mentioned anywhere in
// the snapshot.
func FromSnapshot(snapshot Snapshot) State {
	var (
		next  Address
		seen  bool
		visit = func(a Address) {
			if !seen || a >= next {
				next, seen = a, true
			}
		}
	)
	//
	for _, a := range snapshot.Registers {
		visit(a)
	}
	//
	for a, v := range snapshot.Memory {
		visit(a)
		visit(v)
	}
	//
	for a := range snapshot.Shadow {
		visit(a)
	}
	//
	for a := range snapshot.Ownership {
		visit(a)
	}
	// Allocate past everything seen
	if seen && next < math.MaxUint64 {
		next++
	}
	//
	return State{
		pc:        snapshot.PC,
		registers: tableOf(snapshot.Registers),
		memory:    tableOf(snapshot.Memory),
		shadow:    tableOf(snapshot.Shadow),
		ownership: tableOf(snapshot.Ownership),
		allocator: NewBump(next),
	}
}

// diffView is the shape in which states are compared for Diff.  Counters are
// rendered as strings so differences read as regimes rather than raw fields.
type diffView struct {
	PC        uint
	Registers map[Register]Address
	Memory    map[Address]Address
	Shadow    map[Address]Value
	Ownership map[Address]string
}

func viewOf(state State) diffView {
	var owned = make(map[Address]string)
	//
	state.ownership.each(func(a Address, c ownership.Counter) {
		owned[a] = c.String()
	})
	//
	return diffView{
		PC:        state.pc,
		Registers: state.registers.toMap(),
		Memory:    state.memory.toMap(),
		Shadow:    state.shadow.toMap(),
		Ownership: owned,
	}
}

// Diff returns a human-readable description of every difference between two
// states, or nothing if they are equal (see Equals).
func Diff(a, b State) []string {
	return pretty.Diff(viewOf(a), viewOf(b))
}
