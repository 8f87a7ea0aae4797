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
)

// Die represents an instruction of the following form:
//
// die q0
//
// This ends the lifetime of the (live) register q0.  If the address bound to
// q0 is shared, then exactly one outstanding share (borrow or copy) is
// released.  A uniquely owned address is unaffected.  Either way, q0 is
// unbound.
type Die struct {
	// Register whose lifetime ends
	Source machine.Register
}

// Uses implementation for Instruction interface.
func (p *Die) Uses() []machine.Register {
	return []machine.Register{p.Source}
}

// Definitions implementation for Instruction interface.
func (p *Die) Definitions() []machine.Register {
	return nil
}

// Kills implementation for Instruction interface.
func (p *Die) Kills() []machine.Register {
	return []machine.Register{p.Source}
}

// Check implementation for Instruction interface.
func (p *Die) Check(state machine.State) error {
	return requireLive("die", state, p.Source)
}

// Execute implementation for Instruction interface.
func (p *Die) Execute(state machine.State) (machine.State, error) {
	a, err := deref("die", state, p.Source)
	if err != nil {
		return state, err
	}
	// Release one share (if any)
	next := state
	if c := state.Ownership(a); c != c.Release() {
		next = next.Own(a, c.Release())
	}
	//
	return next.Unbind(p.Source).Next(), nil
}

func (p *Die) String() string {
	return fmt.Sprintf("die %s", p.Source)
}
