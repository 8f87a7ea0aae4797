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
	"testing"

	"github.com/consensys/go-ownsem/pkg/instruction"
	"github.com/consensys/go-ownsem/pkg/machine"
	"github.com/consensys/go-ownsem/pkg/ownership"
	"github.com/consensys/go-ownsem/pkg/util/assert"
	"github.com/stretchr/testify/require"
)

func program() []instruction.Instruction {
	return []instruction.Instruction{
		&instruction.Alloc{Target: "pp0", Size: 1},
		&instruction.Alloc{Target: "p0", Size: 1},
		&instruction.MvReg2Mem{Pointer: "pp0", Source: "p0"},
		&instruction.MvReg2Mem{Pointer: "pp0", Source: "p0"},
		&instruction.BrMem2RegRO{Target: "q0", Pointer: "pp0"},
		&instruction.Die{Source: "q0"},
	}
}

func Test_Machine_01(t *testing.T) {
	m := New(program()...)
	n, err := m.Execute(100)
	//
	require.NoError(t, err)
	require.Equal(t, uint(6), n)
	require.True(t, m.Done())
	require.Equal(t, uint(6), m.Trace().Len())
	// one step was blocked, hence pc lags
	require.Equal(t, uint(5), m.State().PC())
	require.Len(t, m.Trace().Blocked(), 1)
	//
	blocked := m.Trace().Blocked()[0]
	require.Equal(t, uint(3), blocked.Index)
	require.Equal(t, instruction.ReasonDead, blocked.Blocked.Reason())
	assert.Blocked(t, m.Trace().Before(3), m.Trace().At(3))
}

func Test_Machine_02(t *testing.T) {
	var blocked *instruction.Blocked
	//
	m := New(program()...).WithHaltOnBlock(true)
	n, err := m.Execute(100)
	//
	require.Error(t, err)
	require.Equal(t, uint(4), n)
	require.False(t, m.Done())
	require.True(t, errors.As(err, &blocked))
	require.Equal(t, "mvreg2mem", blocked.Op())
	require.Equal(t, "step 3 (mvreg2mem pp0, p0): mvreg2mem: register p0 is dead", err.Error())
	// resume
	n, err = m.Execute(100)
	require.NoError(t, err)
	require.Equal(t, uint(2), n)
	require.True(t, m.Done())
}

func Test_Machine_03(t *testing.T) {
	m := New(program()...)
	n, err := ExecuteAll(&m, 4)
	//
	require.NoError(t, err)
	require.Equal(t, uint(6), n)
	require.True(t, m.Done())
	// chunks dividing the program exactly
	m = New(program()...)
	n, err = ExecuteAll(&m, 3)
	//
	require.NoError(t, err)
	require.Equal(t, uint(6), n)
	// nothing to do
	m = New()
	n, err = ExecuteAll(&m, 1)
	//
	require.NoError(t, err)
	require.Equal(t, uint(0), n)
	assert.Equal(t, machine.Init(), m.Trace().Final())
}

func Test_Machine_04(t *testing.T) {
	// Rewind through the trace
	m := New(program()...)
	_, err := ExecuteAll(&m, 1)
	require.NoError(t, err)
	//
	tr := m.Trace()
	assert.Equal(t, machine.Init(), tr.Initial())
	assert.Equal(t, tr.Initial(), tr.Before(0))
	assert.Equal(t, tr.At(4), tr.Before(5))
	assert.Owns(t, tr.At(4), 1, ownership.SharedRO(1))
	assert.Owns(t, tr.Final(), 1, ownership.Uniq())
	assert.Equal(t, tr.Final(), m.State())
	// earlier states untouched by later steps
	assert.Dead(t, tr.At(0), "p0")
	assert.Live(t, tr.At(1), "p0", 1)
	assert.Dead(t, tr.At(2), "p0")
}

func Test_Machine_05(t *testing.T) {
	// Start from a driver-supplied state
	s := machine.FromSnapshot(machine.Snapshot{
		Registers: map[machine.Register]machine.Address{"pp0": 10},
		Memory:    map[machine.Address]machine.Address{10: 20},
		Ownership: map[machine.Address]ownership.Counter{10: ownership.Uniq(), 20: ownership.SharedRW(1)},
	})
	m := New(
		&instruction.CpMem2Reg{Target: "q0", Pointer: "pp0"},
		&instruction.MvMem2Reg{Target: "p0", Pointer: "pp0"},
		&instruction.Alloc{Target: "p1", Size: 1},
	).WithState(s)
	//
	_, err := ExecuteAll(&m, 10)
	require.NoError(t, err)
	//
	tr := m.Trace()
	assert.Owns(t, tr.At(0), 20, ownership.SharedRW(2))
	require.True(t, tr.Step(1).IsBlocked())
	require.Equal(t, instruction.ReasonForbidden, tr.Step(1).Blocked.Reason())
	// fresh allocation past every address in the snapshot
	assert.Live(t, tr.Final(), "p1", 21)
}

func Test_Machine_06(t *testing.T) {
	m := New(
		&instruction.Alloc{Target: "p0", Size: 1},
		&instruction.Die{Source: "q0"},
	)
	_, err := m.Execute(2)
	require.NoError(t, err)
	//
	require.Equal(t, "[0] p0 = alloc 1  ==> pc=1 R={p0:0} M={} S={} O={0:uniq}", m.Trace().Step(0).String())
	require.Equal(t, "[1] die q0  BLOCKED (dead)", m.Trace().Step(1).String())
}
