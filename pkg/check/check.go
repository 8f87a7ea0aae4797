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
package check

import (
	"fmt"

	"github.com/consensys/go-ownsem/pkg/driver"
	"github.com/consensys/go-ownsem/pkg/instruction"
	"github.com/consensys/go-ownsem/pkg/machine"
	"github.com/consensys/go-ownsem/pkg/ownership"
)

// Property identifies a property which every step of an execution should
// satisfy.
type Property uint8

const (
	// Determinism requires that re-executing a step yields an equal state.
	Determinism Property = iota
	// Monotonicity requires that the program counter advances by exactly one
	// on success, and that a blocked step leaves the state unchanged.
	Monotonicity
	// Independence requires that producing a step's output state leaves its
	// input state unchanged.
	Independence
	// Coverage requires that every address held in a register or in memory has
	// an entry in the ownership table.
	Coverage
	// Stepping requires that an instruction moves at most one ownership counter,
	// and by at most one step.
	Stepping
	// Freshness requires that an allocation returns an address which is not
	// held in any register or memory cell, and which was previously unused.
	Freshness
)

func (p Property) String() string {
	switch p {
	case Determinism:
		return "determinism"
	case Monotonicity:
		return "monotonicity"
	case Independence:
		return "independence"
	case Coverage:
		return "coverage"
	case Stepping:
		return "stepping"
	case Freshness:
		return "freshness"
	default:
		return fmt.Sprintf("property(%d)", uint8(p))
	}
}

// Violation describes a property which failed to hold at a given step.
type Violation struct {
	// Step at which the violation occurred.
	step uint
	// Instruction issued at that step.
	insn instruction.Instruction
	// Property violated.
	property Property
	// Description of the violation.
	msg string
}

// Step returns the index of the step at which this violation occurred.
func (p *Violation) Step() uint {
	return p.step
}

// Property returns the property violated.
func (p *Violation) Property() Property {
	return p.property
}

// Message returns a description of the violation.
func (p *Violation) Message() string {
	return p.msg
}

func (p *Violation) Error() string {
	return fmt.Sprintf("step %d (%s): %s violated: %s", p.step, p.insn.String(), p.property.String(), p.msg)
}

// Trace checks every step of a given trace, returning a violation for each
// property which does not hold.
func Trace(trace *driver.Trace) []error {
	var errors []error
	//
	for i := range trace.Len() {
		for _, v := range checkStep(trace, i) {
			errors = append(errors, v)
		}
	}
	//
	return errors
}

func checkStep(trace *driver.Trace, i uint) []*Violation {
	var (
		violations []*Violation
		step       = trace.Step(i)
		before     = trace.Before(i)
		after      = step.State
		report     = func(property Property, format string, args ...any) {
			violations = append(violations, &Violation{i, step.Instruction, property, fmt.Sprintf(format, args...)})
		}
	)
	// Take a copy of the input before re-executing the instruction
	snapshot := before.Snapshot()
	// Determinism
	if next, _ := step.Instruction.Execute(before); !next.Equals(after) {
		report(Determinism, "re-executing gave %s", next.String())
	} else {
		// Independence (updating the output has no effect on the input)
		next.Bind("$probe", 0).Own(0, ownership.SharedRW(1)).Store(0, 0).Next()
	}
	//
	if !machine.FromSnapshot(snapshot).Equals(before) {
		report(Independence, "input changed to %s", before.String())
	}
	// Monotonicity
	if step.IsBlocked() && !after.Equals(before) {
		report(Monotonicity, "blocked step changed state to %s", after.String())
	} else if !step.IsBlocked() && after.PC() != before.PC()+1 {
		report(Monotonicity, "pc moved from %d to %d", before.PC(), after.PC())
	}
	// Coverage
	owners := after.Snapshot().Ownership
	//
	for _, a := range held(after) {
		if _, ok := owners[a]; !ok {
			report(Coverage, "address %d has no ownership entry", a)
		}
	}
	// Stepping
	checkStepping(before, after, report)
	// Freshness
	if alloc, ok := step.Instruction.(*instruction.Alloc); ok && !step.IsBlocked() {
		a, _ := after.Register(alloc.Target)
		//
		for _, b := range held(before) {
			if a == b {
				report(Freshness, "address %d already held", a)
				break
			}
		}
		//
		if c := before.Ownership(a); c.Kind() != ownership.KindUnused {
			report(Freshness, "address %d was %s", a, c.String())
		}
	}
	//
	return violations
}

func checkStepping(before, after machine.State, report func(Property, string, ...any)) {
	var (
		changed []machine.Address
		owners  = before.Snapshot().Ownership
		updated = after.Snapshot().Ownership
	)
	//
	for a, c := range updated {
		if prev, ok := owners[a]; !ok || !prev.Equals(c) {
			changed = append(changed, a)
		}
	}
	//
	for a := range owners {
		if _, ok := updated[a]; !ok {
			report(Stepping, "ownership entry for address %d removed", a)
		}
	}
	//
	if len(changed) > 1 {
		report(Stepping, "%d ownership counters changed", len(changed))
	}
	//
	for _, a := range changed {
		if !adjacent(before.Ownership(a), after.Ownership(a)) {
			report(Stepping, "address %d moved from %s to %s", a, before.Ownership(a).String(),
				after.Ownership(a).String())
		}
	}
}

// Determine whether two counters are one step apart in the lattice.  The only
// step out of unused is into uniq (by allocation).
func adjacent(from, to ownership.Counter) bool {
	switch {
	case from.Kind() == ownership.KindUnused:
		return to.Kind() == ownership.KindUniq
	case to.Kind() == ownership.KindUnused:
		return false
	}
	//
	diff := from.Encode() - to.Encode()
	//
	return diff == 1 || diff == -1
}

// Every address held in a register or in memory (either as a cell or its
// contents), in no particular order.
func held(state machine.State) []machine.Address {
	var addresses []machine.Address
	//
	for _, r := range state.Registers() {
		a, _ := state.Register(r)
		addresses = append(addresses, a)
	}
	//
	for a, v := range state.Snapshot().Memory {
		addresses = append(addresses, a, v)
	}
	//
	return addresses
}
