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
	"errors"
	"fmt"

	"github.com/consensys/go-ownsem/pkg/instruction"
	"github.com/consensys/go-ownsem/pkg/machine"
	log "github.com/sirupsen/logrus"
)

// Machine drives a straight-line program through the operational semantics,
// recording every state along the way.  Since instructions never report
// failure directly, a step is considered blocked when the program counter did
// not advance.
type Machine struct {
	// Instructions to issue, in order.
	program []instruction.Instruction
	// Index of next instruction to issue.
	cursor uint
	// Current state.
	state machine.State
	// Every step executed so far.
	trace Trace
	// Whether a blocked step halts execution.
	haltOnBlock bool
}

// New constructs a machine for the given program, starting from the initial
// state.
func New(program ...instruction.Instruction) Machine {
	var state = machine.Init()
	//
	return Machine{program, 0, state, NewTrace(state), false}
}

// WithState returns a machine updated to start from the given state, but which
// is otherwise identical to before.  This resets any execution so far.
func (p Machine) WithState(state machine.State) Machine {
	var m = p
	//
	m.cursor = 0
	m.state = state
	m.trace = NewTrace(state)
	//
	return m
}

// WithHaltOnBlock returns a machine updated so that a blocked step either halts
// execution (with an error) or not, but which is otherwise identical to before.
func (p Machine) WithHaltOnBlock(flag bool) Machine {
	var m = p
	//
	m.haltOnBlock = flag
	//
	return m
}

// Execute implementation for the Core interface.  When halting on blocked
// steps, the first blocked step ends execution with an error wrapping the
// *instruction.Blocked responsible.
func (p *Machine) Execute(steps uint) (uint, error) {
	var nsteps uint
	//
	for ; nsteps < steps && !p.Done(); nsteps++ {
		var (
			index = p.cursor
			insn  = p.program[index]
			step  = p.step(index, insn)
		)
		//
		p.cursor++
		p.state = step.State
		p.trace.append(step)
		//
		if step.Blocked == nil {
			log.Debugf("step %d: %s ==> %s", index, insn.String(), step.State.String())
		} else {
			log.Warnf("step %d: %s blocked (%s)", index, insn.String(), step.Blocked.Error())
			//
			if p.haltOnBlock {
				return nsteps + 1, fmt.Errorf("step %d (%s): %w", index, insn.String(), step.Blocked)
			}
		}
	}
	//
	return nsteps, nil
}

// Done implementation for the Core interface.
func (p *Machine) Done() bool {
	return p.cursor >= uint(len(p.program))
}

// State implementation for the Core interface.
func (p *Machine) State() machine.State {
	return p.state
}

// Program returns the instructions issued by this machine.
func (p *Machine) Program() []instruction.Instruction {
	return p.program
}

// Trace returns the steps executed by this machine so far.
func (p *Machine) Trace() *Trace {
	return &p.trace
}

// Issue a single instruction against the current state, determining whether
// or not it was blocked.
func (p *Machine) step(index uint, insn instruction.Instruction) Step {
	var (
		blocked *instruction.Blocked
		// Execute instruction
		next, err = insn.Execute(p.state)
	)
	// Check whether the program counter advanced
	if next.PC() == p.state.PC()+1 {
		if err != nil {
			panic(fmt.Sprintf("instruction %s advanced with error (%s)", insn.String(), err.Error()))
		}
		//
		return Step{index, insn, next, nil}
	} else if next.PC() != p.state.PC() {
		panic(fmt.Sprintf("instruction %s moved pc from %d to %d", insn.String(), p.state.PC(), next.PC()))
	} else if !errors.As(err, &blocked) {
		panic(fmt.Sprintf("instruction %s blocked without reason", insn.String()))
	}
	//
	return Step{index, insn, next, blocked}
}
