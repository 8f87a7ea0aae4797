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

// Reason identifies why an instruction was blocked.
type Reason uint8

const (
	// ReasonLive indicates a register to be bound was already live.
	ReasonLive Reason = iota
	// ReasonDead indicates a register to be read was dead.
	ReasonDead
	// ReasonAliased indicates two registers to be bound had the same name.
	ReasonAliased
	// ReasonNoPointee indicates a memory cell to be read was never written.
	ReasonNoPointee
	// ReasonForbidden indicates the ownership regime of an address forbids the
	// operation.
	ReasonForbidden
	// ReasonExhausted indicates no fresh address was available.
	ReasonExhausted
)

func (p Reason) String() string {
	switch p {
	case ReasonLive:
		return "live"
	case ReasonDead:
		return "dead"
	case ReasonAliased:
		return "aliased"
	case ReasonNoPointee:
		return "no pointee"
	case ReasonForbidden:
		return "forbidden"
	case ReasonExhausted:
		return "exhausted"
	default:
		return fmt.Sprintf("reason(%d)", uint8(p))
	}
}

// Blocked is the error reported when an instruction's precondition fails.  All
// blocked transitions have the same observable outcome (namely, the state is
// unchanged); the reason is purely diagnostic.
type Blocked struct {
	// Mnemonic of the blocked instruction
	op string
	// Register responsible (if applicable)
	register machine.Register
	// Address responsible (if applicable)
	address machine.Address
	// Ownership of address (if applicable)
	counter ownership.Counter
	// Reason for blocking
	reason Reason
}

// Op returns the mnemonic of the blocked instruction.
func (p *Blocked) Op() string {
	return p.op
}

// Register returns the register responsible, or the empty string if the block
// arose from an address.
func (p *Blocked) Register() machine.Register {
	return p.register
}

// Address returns the address responsible.  This is only meaningful when the
// reason is ReasonForbidden.
func (p *Blocked) Address() machine.Address {
	return p.address
}

// Counter returns the ownership counter of the responsible address at the
// point of blocking.  This is only meaningful when the reason is
// ReasonForbidden.
func (p *Blocked) Counter() ownership.Counter {
	return p.counter
}

// Reason returns the reason for blocking.
func (p *Blocked) Reason() Reason {
	return p.reason
}

// Error implements the error interface.
func (p *Blocked) Error() string {
	switch p.reason {
	case ReasonLive:
		return fmt.Sprintf("%s: register %s is live", p.op, p.register)
	case ReasonDead:
		return fmt.Sprintf("%s: register %s is dead", p.op, p.register)
	case ReasonAliased:
		return fmt.Sprintf("%s: register %s bound twice", p.op, p.register)
	case ReasonNoPointee:
		return fmt.Sprintf("%s: register %s points to unwritten memory", p.op, p.register)
	case ReasonForbidden:
		return fmt.Sprintf("%s: address %d is %s", p.op, p.address, p.counter.String())
	case ReasonExhausted:
		return fmt.Sprintf("%s: address space exhausted", p.op)
	default:
		return fmt.Sprintf("%s: blocked (%s)", p.op, p.reason.String())
	}
}
