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
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Counter_01(t *testing.T) {
	var zero Counter
	//
	assert.Equal(t, Unused(), zero)
	assert.Equal(t, KindUnused, zero.Kind())
	assert.Equal(t, uint(0), zero.Count())
}

func Test_Counter_02(t *testing.T) {
	assert.Panics(t, func() { SharedRO(0) })
	assert.Panics(t, func() { SharedRW(0) })
}

func Test_Counter_03(t *testing.T) {
	// n borrows drive the counter to ro(n)
	c := Uniq()
	for i := uint(1); i <= 10; i++ {
		c = c.Borrow()
		assert.Equal(t, SharedRO(i), c)
		assert.Equal(t, -int64(i), c.Encode())
	}
	// each release moves exactly one step back
	for i := uint(9); i > 0; i-- {
		c = c.Release()
		assert.Equal(t, SharedRO(i), c)
	}
	//
	assert.Equal(t, Uniq(), c.Release())
}

func Test_Counter_04(t *testing.T) {
	c := Uniq()
	for i := uint(1); i <= 10; i++ {
		c = c.Copy()
		assert.Equal(t, SharedRW(i), c)
		assert.Equal(t, int64(i), c.Encode())
	}
	//
	for i := 0; i < 10; i++ {
		c = c.Release()
	}
	//
	assert.Equal(t, Uniq(), c)
}

func Test_Counter_05(t *testing.T) {
	// release never moves past unique
	assert.Equal(t, Uniq(), Uniq().Release())
	assert.Equal(t, Unused(), Unused().Release())
}

func Test_Counter_06(t *testing.T) {
	assert.Panics(t, func() { SharedRW(1).Borrow() })
	assert.Panics(t, func() { Unused().Borrow() })
	assert.Panics(t, func() { SharedRO(1).Copy() })
	assert.Panics(t, func() { Unused().Copy() })
}

func Test_Counter_07(t *testing.T) {
	counters := []Counter{Unused(), Uniq(), SharedRO(1), SharedRO(42), SharedRW(1), SharedRW(42)}
	//
	for _, c := range counters {
		assert.Equal(t, c, Decode(c.Encode()), c.String())
	}
	//
	assert.Equal(t, int64(math.MinInt64), Unused().Encode())
	assert.Equal(t, int64(0), Uniq().Encode())
}

func Test_Counter_08(t *testing.T) {
	assert.Equal(t, "unused", Unused().String())
	assert.Equal(t, "uniq", Uniq().String())
	assert.Equal(t, "ro(3)", SharedRO(3).String())
	assert.Equal(t, "rw(2)", SharedRW(2).String())
	assert.True(t, SharedRO(2).Equals(SharedRO(1).Borrow()))
	assert.False(t, SharedRO(2).Equals(SharedRW(2)))
}
