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
package ownership

import (
	"fmt"
	"math"
)

// Kind identifies which of the four ownership regimes a counter is in.
type Kind uint8

const (
	// KindUnused indicates an address which was never allocated.
	KindUnused Kind = iota
	// KindUniq indicates an address which is uniquely owned, with no outstanding
	// borrows or copies.
	KindUniq
	// KindSharedRO indicates an address with one or more outstanding read-only
	// borrows.
	KindSharedRO
	// KindSharedRW indicates an address with one or more outstanding read-write
	// copies.
	KindSharedRW
)

func (p Kind) String() string {
	switch p {
	case KindUnused:
		return "unused"
	case KindUniq:
		return "uniq"
	case KindSharedRO:
		return "ro"
	case KindSharedRW:
		return "rw"
	default:
		return fmt.Sprintf("kind(%d)", uint8(p))
	}
}

// Counter represents the ownership state attached to a single address.  This
// is a tagged value: the kind determines the regime, whilst the count records
// the number of outstanding shares for the two shared regimes.  The count is
// always zero for unused and unique counters, and always positive otherwise.
// Counters are only constructed through the functions below, hence an illegal
// counter (e.g. a shared regime with no shares) cannot be represented.
type Counter struct {
	kind  Kind
	count uint
}

// Unused returns the counter of an address which has never been allocated.
// This is also the zero value of a Counter.
func Unused() Counter {
	return Counter{KindUnused, 0}
}

// Uniq returns the counter of a uniquely owned address.
func Uniq() Counter {
	return Counter{KindUniq, 0}
}

// SharedRO returns the counter of an address with n outstanding read-only
// borrows.  This panics if n is zero.
func SharedRO(n uint) Counter {
	if n == 0 {
		panic("shared read-only counter requires at least one borrow")
	}
	//
	return Counter{KindSharedRO, n}
}

// SharedRW returns the counter of an address with n outstanding read-write
// copies.  This panics if n is zero.
func SharedRW(n uint) Counter {
	if n == 0 {
		panic("shared read-write counter requires at least one copy")
	}
	//
	return Counter{KindSharedRW, n}
}

// Kind returns the regime of this counter.
func (p Counter) Kind() Kind {
	return p.kind
}

// Count returns the number of outstanding shares (borrows or copies), which is
// zero for the unused and unique regimes.
func (p Counter) Count() uint {
	return p.count
}

// Equals checks whether two counters are identical.
func (p Counter) Equals(other Counter) bool {
	return p == other
}

// Borrow returns the counter after one additional read-only borrow.  This
// panics if the counter does not permit borrowing (see CanBorrow).
func (p Counter) Borrow() Counter {
	switch p.kind {
	case KindUniq:
		return SharedRO(1)
	case KindSharedRO:
		return SharedRO(p.count + 1)
	default:
		panic(fmt.Sprintf("cannot borrow %s address", p.String()))
	}
}

// Copy returns the counter after one additional read-write copy.  This panics
// if the counter does not permit copying (see CanCopy).
func (p Counter) Copy() Counter {
	switch p.kind {
	case KindUniq:
		return SharedRW(1)
	case KindSharedRW:
		return SharedRW(p.count + 1)
	default:
		panic(fmt.Sprintf("cannot copy %s address", p.String()))
	}
}

// Release returns the counter after one outstanding share is retired, moving
// exactly one step back towards unique.  Releasing a unique (or unused)
// counter has no effect.
func (p Counter) Release() Counter {
	switch {
	case p.kind != KindSharedRO && p.kind != KindSharedRW:
		return p
	case p.count == 1:
		return Uniq()
	default:
		return Counter{p.kind, p.count - 1}
	}
}

// Encode this counter as a single signed integer, where negative values
// indicate read-only borrows, positive values indicate read-write copies, zero
// is unique and the minimum integer stands in for negative infinity (i.e.
// unused).  This is the classic encoding for machines which do not use a
// tagged representation.
func (p Counter) Encode() int64 {
	switch p.kind {
	case KindUniq:
		return 0
	case KindSharedRO:
		return -int64(p.count)
	case KindSharedRW:
		return int64(p.count)
	default:
		return math.MinInt64
	}
}

// Decode a counter from its signed integer encoding (see Encode).
func Decode(value int64) Counter {
	switch {
	case value == math.MinInt64:
		return Unused()
	case value == 0:
		return Uniq()
	case value < 0:
		return SharedRO(uint(-value))
	default:
		return SharedRW(uint(value))
	}
}

func (p Counter) String() string {
	switch p.kind {
	case KindSharedRO, KindSharedRW:
		return fmt.Sprintf("%s(%d)", p.kind.String(), p.count)
	default:
		return p.kind.String()
	}
}
