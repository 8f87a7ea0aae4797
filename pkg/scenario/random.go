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
package scenario

import (
	"math/rand/v2"

	"github.com/consensys/go-ownsem/pkg/instruction"
	"github.com/consensys/go-ownsem/pkg/machine"
)

// DefaultRegisters is a small register pool, which is small enough that
// randomly generated programs frequently reuse names (hence exercise both
// blocked and unblocked paths).
var DefaultRegisters = []machine.Register{"p0", "p1", "pp0", "q0", "q1"}

// Random generates a program of n instructions over a given pool of register
// names.  The same seed always generates the same program.  Allocations are
// weighted so that programs have something to operate on.
func Random(seed uint64, n uint, names []machine.Register) []instruction.Instruction {
	var (
		rng     = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
		program = make([]instruction.Instruction, n)
		pick    = func() machine.Register { return names[rng.IntN(len(names))] }
	)
	//
	if len(names) == 0 {
		panic("empty register pool")
	}
	//
	for i := range program {
		switch rng.IntN(12) {
		case 0, 1, 2:
			program[i] = &instruction.Alloc{Target: pick(), Size: rng.UintN(4)}
		case 3:
			program[i] = &instruction.Die{Source: pick()}
		case 4:
			program[i] = &instruction.BrReg2Reg{Source: pick(), Borrower: pick(), Owner: pick()}
		case 5:
			program[i] = &instruction.BrMem2Reg{Target: pick(), Pointer: pick()}
		case 6:
			program[i] = &instruction.BrMem2RegRO{Target: pick(), Pointer: pick()}
		case 7, 8:
			program[i] = &instruction.MvReg2Mem{Pointer: pick(), Source: pick()}
		case 9:
			program[i] = &instruction.MvMem2Reg{Target: pick(), Pointer: pick()}
		case 10:
			program[i] = &instruction.CpMem2Reg{Target: pick(), Pointer: pick()}
		default:
			program[i] = &instruction.CpReg2Mem{Target: pick(), Pointer: pick(), Source: pick()}
		}
	}
	//
	return program
}
