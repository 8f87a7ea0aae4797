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

// CanMove determines whether an address with the given counter can be moved.
// Only a uniquely owned address can be moved.
func CanMove(c Counter) bool {
	return c.kind == KindUniq
}

// CanMutBorrow determines whether an address with the given counter can be
// mutably borrowed, which requires there are no outstanding shares.
func CanMutBorrow(c Counter) bool {
	return c.kind == KindUniq
}

// CanBorrow determines whether an address with the given counter can be
// immutably borrowed.  Re-borrowing an address which is already borrowed is
// permitted.
func CanBorrow(c Counter) bool {
	return c.kind == KindUniq || c.kind == KindSharedRO
}

// CanCopy determines whether an address with the given counter can be copied.
// Copying an address which has already been copied is permitted.
//
// NOTE: since both CanBorrow and CanCopy accept a unique address, an address
// which has been mutably borrowed (and hence remains unique) can still be
// copied and immutably borrowed.  This is a known gap in the lattice, which
// fractional permissions would close.
func CanCopy(c Counter) bool {
	return c.kind == KindUniq || c.kind == KindSharedRW
}

// IsBorrowed determines whether an address with the given counter is eligible
// to be treated as borrowed.
func IsBorrowed(c Counter) bool {
	return c.kind == KindUniq || c.kind == KindSharedRO
}
