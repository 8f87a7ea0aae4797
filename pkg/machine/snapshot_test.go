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

func Test_Snapshot_01(t *testing.T) {
	snap := Snapshot{
		PC:        4,
		Registers: map[Register]Address{"pp0": 1, "q0": 5},
		Memory:    map[Address]Address{1: 5},
		Shadow:    map[Address]Value{7: -3},
		Ownership: map[Address]ownership.Counter{1: ownership.Uniq(), 5: ownership.SharedRO(1)},
	}
	s := FromSnapshot(snap)
	//
	assert.Equal(t, snap, s.Snapshot())
	assert.Equal(t, uint(4), s.PC())
	assert.Equal(t, ownership.SharedRO(1), s.Ownership(5))
	//
	v, ok := s.Shadow(7)
	require.True(t, ok)
	assert.Equal(t, Value(-3), v)
	// allocation starts above every address mentioned
	a, _, ok := s.Allocate(1)
	require.True(t, ok)
	assert.Equal(t, Address(8), a)
}

func Test_Snapshot_02(t *testing.T) {
	s := Init().Bind("p0", 0).Own(0, ownership.Uniq())
	snap := s.Snapshot()
	// mutating the snapshot is not observable on the state
	snap.Registers["p1"] = 0
	snap.Ownership[0] = ownership.SharedRW(3)
	//
	assert.False(t, s.IsLive("p1"))
	assert.Equal(t, ownership.Uniq(), s.Ownership(0))
	// and each snapshot is freshly allocated
	assert.NotContains(t, s.Snapshot().Registers, "p1")
}

func Test_Snapshot_03(t *testing.T) {
	s := FromSnapshot(Snapshot{})
	//
	assert.True(t, s.Equals(Init()))
	//
	a, _, ok := s.Allocate(1)
	require.True(t, ok)
	assert.Equal(t, Address(0), a)
}

func Test_Diff_01(t *testing.T) {
	s1 := Init().Bind("q0", 2).Own(2, ownership.Uniq())
	s2 := s1.Own(2, ownership.SharedRO(1)).Next()
	//
	diff := Diff(s1, s2)
	//
	require.Len(t, diff, 2)
	assert.Contains(t, diff[0]+diff[1], "ro(1)")
}
