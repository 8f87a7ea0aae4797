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
	"fmt"

	"github.com/consensys/go-ownsem/pkg/driver"
	"github.com/consensys/go-ownsem/pkg/instruction"
	"github.com/consensys/go-ownsem/pkg/machine"
	"github.com/consensys/go-ownsem/pkg/ownership"
)

// Expectation captures something which should hold of the trace produced by
// running a scenario.  An expectation returns nil when it holds, and an error
// describing the discrepancy otherwise.
type Expectation func(trace *driver.Trace) error

// Expect the ith step to have advanced the program counter.
func Advanced(step uint) Expectation {
	return func(trace *driver.Trace) error {
		if err := checkStep(trace, step); err != nil {
			return err
		} else if s := trace.Step(step); s.IsBlocked() {
			return fmt.Errorf("step %d: expected to advance, but blocked (%s)", step, s.Blocked.Error())
		}
		//
		return nil
	}
}

// Expect the ith step to have been blocked for a given reason.
func Blocked(step uint, reason instruction.Reason) Expectation {
	return func(trace *driver.Trace) error {
		if err := checkStep(trace, step); err != nil {
			return err
		}
		//
		s := trace.Step(step)
		//
		if !s.IsBlocked() {
			return fmt.Errorf("step %d: expected to block (%s), but advanced", step, reason.String())
		} else if s.Blocked.Reason() != reason {
			return fmt.Errorf("step %d: expected to block (%s), but blocked (%s)", step, reason.String(),
				s.Blocked.Reason().String())
		} else if !trace.Before(step).Equals(s.State) {
			return fmt.Errorf("step %d: blocked, but state changed", step)
		}
		//
		return nil
	}
}

// Expect no step to have been blocked.
func NoneBlocked() Expectation {
	return func(trace *driver.Trace) error {
		if blocked := trace.Blocked(); len(blocked) != 0 {
			return fmt.Errorf("step %d: unexpectedly blocked (%s)", blocked[0].Index, blocked[0].Blocked.Error())
		}
		//
		return nil
	}
}

// Expect a given register to be bound to a given address after the ith step.
func Live(step uint, r machine.Register, a machine.Address) Expectation {
	return func(trace *driver.Trace) error {
		if err := checkStep(trace, step); err != nil {
			return err
		} else if actual, ok := trace.At(step).Register(r); !ok {
			return fmt.Errorf("step %d: expected %s live, but dead", step, r)
		} else if actual != a {
			return fmt.Errorf("step %d: expected %s bound to %d, but bound to %d", step, r, a, actual)
		}
		//
		return nil
	}
}

// Expect a given register to be unbound after the ith step.
func Dead(step uint, r machine.Register) Expectation {
	return func(trace *driver.Trace) error {
		if err := checkStep(trace, step); err != nil {
			return err
		} else if trace.At(step).IsLive(r) {
			return fmt.Errorf("step %d: expected %s dead, but live", step, r)
		}
		//
		return nil
	}
}

// Expect the memory cell at a given address to hold a given address after the
// ith step.
func Stored(step uint, cell machine.Address, a machine.Address) Expectation {
	return func(trace *driver.Trace) error {
		if err := checkStep(trace, step); err != nil {
			return err
		} else if actual, ok := trace.At(step).Load(cell); !ok {
			return fmt.Errorf("step %d: expected M[%d]=%d, but unwritten", step, cell, a)
		} else if actual != a {
			return fmt.Errorf("step %d: expected M[%d]=%d, but found %d", step, cell, a, actual)
		}
		//
		return nil
	}
}

// Expect the ownership counter of a given address after the ith step.
func Owns(step uint, a machine.Address, c ownership.Counter) Expectation {
	return func(trace *driver.Trace) error {
		if err := checkStep(trace, step); err != nil {
			return err
		} else if actual := trace.At(step).Ownership(a); !actual.Equals(c) {
			return fmt.Errorf("step %d: expected O[%d]=%s, but found %s", step, a, c.String(), actual.String())
		}
		//
		return nil
	}
}

// Expect the final program counter.
func PC(pc uint) Expectation {
	return func(trace *driver.Trace) error {
		if actual := trace.Final().PC(); actual != pc {
			return fmt.Errorf("expected final pc=%d, but found pc=%d", pc, actual)
		}
		//
		return nil
	}
}

func checkStep(trace *driver.Trace, step uint) error {
	if step >= trace.Len() {
		return fmt.Errorf("step %d: not executed (trace has %d steps)", step, trace.Len())
	}
	//
	return nil
}
