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
package driver

import (
	"fmt"
	"strings"

	"github.com/consensys/go-ownsem/pkg/instruction"
	"github.com/consensys/go-ownsem/pkg/machine"
)

// Step records the issue of a single instruction.
type Step struct {
	// Position of the instruction within the program.
	Index uint
	// Instruction issued.
	Instruction instruction.Instruction
	// State resulting from the instruction.  For a blocked step, this equals
	// the state beforehand.
	State machine.State
	// Reason the instruction was blocked, or nil if it was not.
	Blocked *instruction.Blocked
}

// IsBlocked determines whether this step was blocked.
func (p Step) IsBlocked() bool {
	return p.Blocked != nil
}

func (p Step) String() string {
	if p.Blocked != nil {
		return fmt.Sprintf("[%d] %s  BLOCKED (%s)", p.Index, p.Instruction.String(), p.Blocked.Reason().String())
	}
	//
	return fmt.Sprintf("[%d] %s  ==> %s", p.Index, p.Instruction.String(), p.State.String())
}

// Trace records the initial state of an execution, and every step executed
// from there.  Since states are persistent, rewinding to an earlier point is
// simply a matter of looking it up.
type Trace struct {
	initial machine.State
	steps   []Step
}

// NewTrace constructs an empty trace starting from a given state.
func NewTrace(initial machine.State) Trace {
	return Trace{initial, nil}
}

// Initial returns the state before any step was executed.
func (p *Trace) Initial() machine.State {
	return p.initial
}

// Len returns the number of steps in this trace.
func (p *Trace) Len() uint {
	return uint(len(p.steps))
}

// Step returns the ith step of this trace.
func (p *Trace) Step(i uint) Step {
	return p.steps[i]
}

// Steps returns every step in this trace.
func (p *Trace) Steps() []Step {
	return p.steps
}

// Final returns the state after the last step (or the initial state for an
// empty trace).
func (p *Trace) Final() machine.State {
	if len(p.steps) == 0 {
		return p.initial
	}
	//
	return p.steps[len(p.steps)-1].State
}

// At rewinds to the state immediately after the ith step.
func (p *Trace) At(i uint) machine.State {
	return p.steps[i].State
}

// Before rewinds to the state immediately before the ith step.
func (p *Trace) Before(i uint) machine.State {
	if i == 0 {
		return p.initial
	}
	//
	return p.steps[i-1].State
}

// Blocked returns the steps of this trace which were blocked.
func (p *Trace) Blocked() []Step {
	var blocked []Step
	//
	for _, step := range p.steps {
		if step.IsBlocked() {
			blocked = append(blocked, step)
		}
	}
	//
	return blocked
}

func (p *Trace) String() string {
	var builder strings.Builder
	//
	builder.WriteString(p.initial.String())
	//
	for _, step := range p.steps {
		builder.WriteString("\n")
		builder.WriteString(step.String())
	}
	//
	return builder.String()
}

func (p *Trace) append(step Step) {
	p.steps = append(p.steps, step)
}
