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

// Alloc represents an instruction of the following form:
//
// p = alloc size
//
// This binds the (dead) register p to a fresh address, which becomes uniquely
// owned.  Fresh addresses are drawn from the allocator held in the state.
type Alloc struct {
	// Target register to bind
	Target machine.Register
	// Size of allocation
	Size uint
}

// Uses implementation for Instruction interface.
func (p *Alloc) Uses() []machine.Register {
	return nil
}

// Definitions implementation for Instruction interface.
func (p *Alloc) Definitions() []machine.Register {
	return []machine.Register{p.Target}
}

// Kills implementation for Instruction interface.
func (p *Alloc) Kills() []machine.Register {
	return nil
}

// Check implementation for Instruction interface.
func (p *Alloc) Check(state machine.State) error {
	if err := requireDead("alloc", state, p.Target); err != nil {
		return err
	} else if _, _, ok := state.Allocate(p.Size); !ok {
		return &Blocked{op: "alloc", reason: ReasonExhausted}
	}
	//
	return nil
}

// Execute implementation for Instruction interface.
func (p *Alloc) Execute(state machine.State) (machine.State, error) {
	if err := p.Check(state); err != nil {
		return state, err
	}
	//
	a, next, _ := state.Allocate(p.Size)
	//
	return next.Bind(p.Target, a).Own(a, ownership.Uniq()).Next(), nil
}

func (p *Alloc) String() string {
	return fmt.Sprintf("%s = alloc %d", p.Target, p.Size)
}
