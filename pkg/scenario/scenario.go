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
	"slices"

	"github.com/consensys/go-ownsem/pkg/driver"
	"github.com/consensys/go-ownsem/pkg/instruction"
	"github.com/consensys/go-ownsem/pkg/ownership"
)

// Scenario is a named straight-line program, along with what is expected to
// hold of its execution from the initial state.
type Scenario struct {
	// Name identifying the scenario.
	Name string
	// Short description of what the scenario demonstrates.
	Description string
	// Instructions to execute.
	Program []instruction.Instruction
	// Expectations over the resulting trace.
	Expectations []Expectation
}

// Run executes this scenario from the initial state, returning the resulting
// trace and any expectations which did not hold.
func (p Scenario) Run() (*driver.Trace, []error) {
	var (
		errors []error
		m      = driver.New(p.Program...)
	)
	// Cannot fail, since blocked steps do not halt.
	if _, err := driver.ExecuteAll(&m, uint(len(p.Program))+1); err != nil {
		panic(err)
	}
	//
	for _, expect := range p.Expectations {
		if err := expect(m.Trace()); err != nil {
			errors = append(errors, err)
		}
	}
	//
	return m.Trace(), errors
}

// All returns every known scenario, in a fixed order.
func All() []Scenario {
	return slices.Clone(scenarios)
}

// Lookup a scenario by name.
func Lookup(name string) (Scenario, bool) {
	for _, s := range scenarios {
		if s.Name == name {
			return s, true
		}
	}
	//
	return Scenario{}, false
}

// Allocate two cells (pp0 at 0, p0 at 1) and move p0 into the cell at pp0.
func boxed(rest ...instruction.Instruction) []instruction.Instruction {
	var prefix = []instruction.Instruction{
		&instruction.Alloc{Target: "pp0", Size: 1},
		&instruction.Alloc{Target: "p0", Size: 1},
		&instruction.MvReg2Mem{Pointer: "pp0", Source: "p0"},
	}
	//
	return append(prefix, rest...)
}

var scenarios = []Scenario{
	{
		Name:        "alloc",
		Description: "allocation binds a fresh, uniquely owned address",
		Program: []instruction.Instruction{
			&instruction.Alloc{Target: "p0", Size: 1},
			&instruction.Alloc{Target: "p1", Size: 1},
		},
		Expectations: []Expectation{
			PC(2), Live(0, "p0", 0), Owns(0, 0, ownership.Uniq()), Live(1, "p1", 1), Owns(1, 1, ownership.Uniq()),
		},
	},
	{
		Name:        "die-dead",
		Description: "die on a dead register is blocked",
		Program: []instruction.Instruction{
			&instruction.Alloc{Target: "p0", Size: 1},
			&instruction.Die{Source: "q0"},
		},
		Expectations: []Expectation{PC(1), Blocked(1, instruction.ReasonDead)},
	},
	{
		Name:        "borrow-ro",
		Description: "a read-only borrow through memory is released by die",
		Program: boxed(
			&instruction.BrMem2RegRO{Target: "q0", Pointer: "pp0"},
			&instruction.Die{Source: "q0"},
		),
		Expectations: []Expectation{
			NoneBlocked(), Live(3, "q0", 1), Owns(3, 1, ownership.SharedRO(1)), Dead(4, "q0"),
			Owns(4, 1, ownership.Uniq()),
		},
	},
	{
		Name:        "copy-twice",
		Description: "copies through memory accumulate, and each die releases one",
		Program: boxed(
			&instruction.CpMem2Reg{Target: "q0", Pointer: "pp0"},
			&instruction.CpMem2Reg{Target: "q1", Pointer: "pp0"},
			&instruction.Die{Source: "q0"},
			&instruction.Die{Source: "q1"},
		),
		Expectations: []Expectation{
			NoneBlocked(), Owns(3, 1, ownership.SharedRW(1)), Owns(4, 1, ownership.SharedRW(2)),
			Owns(5, 1, ownership.SharedRW(1)), Owns(6, 1, ownership.Uniq()),
		},
	},
	{
		Name:        "move",
		Description: "moving a register into memory unbinds it",
		Program: boxed(
			&instruction.MvReg2Mem{Pointer: "pp0", Source: "p0"},
		),
		Expectations: []Expectation{
			Advanced(2), Stored(2, 0, 1), Dead(2, "p0"), Blocked(3, instruction.ReasonDead),
		},
	},
	{
		Name:        "reborrow",
		Description: "a mutable reborrow between registers keeps the address unique",
		Program: []instruction.Instruction{
			&instruction.Alloc{Target: "p0", Size: 1},
			&instruction.BrReg2Reg{Source: "p0", Borrower: "q0", Owner: "p1"},
			&instruction.Die{Source: "q0"},
			&instruction.BrReg2Reg{Source: "p1", Borrower: "q1", Owner: "p2"},
			&instruction.BrReg2Reg{Source: "p2", Borrower: "q2", Owner: "q2"},
		},
		Expectations: []Expectation{
			Dead(1, "p0"), Live(1, "q0", 0), Live(1, "p1", 0), Live(3, "p2", 0), Owns(3, 0, ownership.Uniq()),
			Blocked(4, instruction.ReasonAliased),
		},
	},
	{
		Name:        "mut-borrow",
		Description: "a mutable borrow through memory waits for read-only borrows to end",
		Program: boxed(
			&instruction.BrMem2RegRO{Target: "q0", Pointer: "pp0"},
			&instruction.BrMem2Reg{Target: "q1", Pointer: "pp0"},
			&instruction.Die{Source: "q0"},
			&instruction.BrMem2Reg{Target: "q1", Pointer: "pp0"},
		),
		Expectations: []Expectation{
			Blocked(4, instruction.ReasonForbidden), Advanced(6), Live(6, "q1", 1), Owns(6, 1, ownership.Uniq()),
		},
	},
	{
		Name:        "move-out",
		Description: "moving out of memory requires unique ownership",
		Program: boxed(
			&instruction.CpMem2Reg{Target: "q0", Pointer: "pp0"},
			&instruction.MvMem2Reg{Target: "p1", Pointer: "pp0"},
			&instruction.Die{Source: "q0"},
			&instruction.MvMem2Reg{Target: "p1", Pointer: "pp0"},
		),
		Expectations: []Expectation{
			Blocked(4, instruction.ReasonForbidden), Advanced(6), Live(6, "p1", 1), Stored(6, 0, 1),
		},
	},
	{
		Name:        "iffy",
		Description: "known limitation: a mutably borrowed address can still be shared through memory",
		Program: boxed(
			&instruction.BrMem2Reg{Target: "q0", Pointer: "pp0"},
			&instruction.BrMem2RegRO{Target: "q1", Pointer: "pp0"},
			&instruction.Die{Source: "q1"},
			&instruction.CpMem2Reg{Target: "q2", Pointer: "pp0"},
		),
		Expectations: []Expectation{
			NoneBlocked(), Live(4, "q0", 1), Owns(4, 1, ownership.SharedRO(1)), Owns(6, 1, ownership.SharedRW(1)),
		},
	},
}
