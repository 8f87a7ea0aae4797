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

import (
	"testing"

	"github.com/consensys/go-ownsem/pkg/ownership"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_State_01(t *testing.T) {
	s := Init()
	//
	assert.Equal(t, uint(0), s.PC())
	assert.Empty(t, s.Registers())
	assert.Empty(t, s.Owned())
	assert.Equal(t, "pc=0 R={} M={} S={} O={}", s.String())
	assert.True(t, s.Equals(State{}))
}

func Test_State_02(t *testing.T) {
	s0 := Init()
	s1 := s0.Bind("p0", 3).Own(3, ownership.Uniq()).Next()
	// original untouched
	assert.False(t, s0.IsLive("p0"))
	assert.Equal(t, ownership.Unused(), s0.Ownership(3))
	assert.Equal(t, uint(0), s0.PC())
	// update applied
	a, ok := s1.Register("p0")
	require.True(t, ok)
	assert.Equal(t, Address(3), a)
	assert.Equal(t, ownership.Uniq(), s1.Ownership(3))
	assert.Equal(t, uint(1), s1.PC())
}

func Test_State_03(t *testing.T) {
	s0 := Init().Bind("p0", 1).Bind("pp0", 2).Store(2, 1)
	s1 := s0.Unbind("p0").Store(2, 7)
	s2 := s0.Unbind("missing")
	//
	assert.True(t, s0.IsLive("p0"))
	assert.False(t, s1.IsLive("p0"))
	assert.True(t, s2.Equals(s0))
	//
	v, ok := s0.Pointee("pp0")
	require.True(t, ok)
	assert.Equal(t, Address(1), v)
	//
	v, ok = s1.Pointee("pp0")
	require.True(t, ok)
	assert.Equal(t, Address(7), v)
	//
	_, ok = s0.Pointee("p0")
	assert.False(t, ok)
	_, ok = s0.Pointee("nothing")
	assert.False(t, ok)
}

func Test_State_04(t *testing.T) {
	s := Init().
		Own(0, ownership.Uniq()).
		Own(1, ownership.SharedRO(2)).
		Own(2, ownership.SharedRW(1))
	//
	assert.True(t, s.CanMove(0) && s.CanMutBorrow(0) && s.CanBorrow(0) && s.CanCopy(0) && s.IsBorrowed(0))
	assert.True(t, !s.CanMove(1) && !s.CanMutBorrow(1) && s.CanBorrow(1) && !s.CanCopy(1) && s.IsBorrowed(1))
	assert.True(t, !s.CanMove(2) && !s.CanMutBorrow(2) && !s.CanBorrow(2) && s.CanCopy(2) && !s.IsBorrowed(2))
	// addresses without entries are unused
	assert.False(t, s.CanMove(9) || s.CanBorrow(9) || s.CanCopy(9) || s.IsBorrowed(9))
}

func Test_State_05(t *testing.T) {
	s := Init().Bind("b", 2).Bind("a", 1).Bind("c", 0)
	//
	assert.Equal(t, []Register{"a", "b", "c"}, s.Registers())
	assert.Equal(t, "pc=0 R={a:1,b:2,c:0} M={} S={} O={}", s.String())
}

func Test_State_06(t *testing.T) {
	// Equality is structural, regardless of update order
	s1 := Init().Bind("a", 1).Bind("b", 2).Own(1, ownership.Uniq())
	s2 := Init().Own(1, ownership.Uniq()).Bind("b", 2).Bind("a", 1)
	s3 := s2.Own(1, ownership.SharedRO(1))
	//
	assert.True(t, s1.Equals(s2))
	assert.False(t, s1.Equals(s3))
	assert.False(t, s1.Equals(s1.Next()))
	assert.Empty(t, Diff(s1, s2))
	assert.NotEmpty(t, Diff(s1, s3))
}

func Test_State_07(t *testing.T) {
	a, s1, ok := Init().Allocate(4)
	require.True(t, ok)
	b, s2, ok := s1.Allocate(0)
	require.True(t, ok)
	c, _, ok := s2.Allocate(1)
	require.True(t, ok)
	//
	assert.Equal(t, Address(0), a)
	assert.Equal(t, Address(4), b)
	assert.Equal(t, Address(5), c)
	// allocating leaves the original allocator unchanged
	d, _, _ := s1.Allocate(1)
	assert.Equal(t, b, d)
}

func Test_State_08(t *testing.T) {
	// the zero state allocates like the initial state
	a, _, ok := State{}.Allocate(1)
	require.True(t, ok)
	assert.Equal(t, Address(0), a)
}
