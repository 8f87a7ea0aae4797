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

import "math"

// Allocator is responsible for handing out fresh addresses.  Allocators are
// values which are threaded through the machine state, rather than being
// global, such that two independent runs of the same program allocate exactly
// the same addresses.  Allocating returns the allocated address together with
// the allocator to use for subsequent allocations, or false if no address
// could be allocated.  Implementations must be comparable.
type Allocator interface {
	Allocate(size uint) (Address, Allocator, bool)
}

// ============================================================================
// Bump Allocator
// ============================================================================

// Bump is an allocator which hands out addresses in strictly increasing order,
// advancing by the size of each allocation (or by one for empty allocations).
// Since addresses are never reclaimed, every address it returns is fresh.
type Bump struct {
	next Address
}

// NewBump constructs a bump allocator whose first allocation is at the given
// base address.
func NewBump(base Address) Bump {
	return Bump{base}
}

// Next returns the address which the next allocation will return.
func (p Bump) Next() Address {
	return p.next
}

// Allocate implementation for the Allocator interface.
func (p Bump) Allocate(size uint) (Address, Allocator, bool) {
	var stride = Address(max(size, 1))
	//
	if p.next > math.MaxUint64-stride {
		// address space exhausted
		return 0, p, false
	}
	//
	return p.next, Bump{p.next + stride}, true
}

// ============================================================================
// Placeholder Allocator
// ============================================================================

// Placeholder is an allocator which always returns the same address.  This
// does not give fresh addresses and exists only to reproduce fixtures written
// against a stubbed allocator.
type Placeholder struct {
	address Address
}

// NewPlaceholder constructs an allocator which always returns the given
// address.
func NewPlaceholder(address Address) Placeholder {
	return Placeholder{address}
}

// Allocate implementation for the Allocator interface.
func (p Placeholder) Allocate(_ uint) (Address, Allocator, bool) {
	return p.address, p, true
}
