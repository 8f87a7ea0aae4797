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
package cmd

import (
	"fmt"
	"os"

	"github.com/consensys/go-ownsem/pkg/check"
	"github.com/consensys/go-ownsem/pkg/driver"
	"github.com/consensys/go-ownsem/pkg/scenario"
	"github.com/consensys/go-ownsem/pkg/util"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags]",
	Short: "Check properties of the semantics against random programs.",
	Long: `Generate random programs, execute them and check that every step is
deterministic, advances (or blocks) correctly, leaves its input untouched, and
moves ownership counters by at most one step.`,
	Run: func(cmd *cobra.Command, args []string) {
		var cfg checkConfig
		//
		cfg.seed = getUint64(cmd, "seed")
		cfg.steps = getUint(cmd, "steps")
		cfg.programs = getUint(cmd, "programs")
		cfg.batch = getUint(cmd, "batch")
		//
		if cfg.batch == 0 {
			fmt.Println("batch size must be positive")
			os.Exit(2)
		}
		//
		if errs := checkPrograms(cfg); len(errs) > 0 {
			// Report errors
			for _, e := range errs {
				log.Error(e)
			}
			// Error signal
			os.Exit(1)
		}
		//
		fmt.Printf("checked %d programs of %d steps\n", cfg.programs, cfg.steps)
	},
}

type checkConfig struct {
	// Seed of the first program
	seed uint64
	// Number of instructions per program
	steps uint
	// Number of programs to check
	programs uint
	// Number of steps executed at a time
	batch uint
}

func checkPrograms(cfg checkConfig) []error {
	var (
		errors []error
		nsteps uint
		stats  = util.NewPerfStats()
	)
	//
	for i := range uint64(cfg.programs) {
		var (
			seed = cfg.seed + i
			m    = driver.New(scenario.Random(seed, cfg.steps, scenario.DefaultRegisters)...)
		)
		//
		n, err := driver.ExecuteAll(&m, cfg.batch)
		if err != nil {
			errors = append(errors, fmt.Errorf("seed %d: %w", seed, err))
			continue
		}
		//
		nsteps += n
		//
		log.Debugf("seed %d: %d steps, %d blocked", seed, m.Trace().Len(), len(m.Trace().Blocked()))
		//
		for _, err := range check.Trace(m.Trace()) {
			errors = append(errors, fmt.Errorf("seed %d: %w", seed, err))
		}
	}
	//
	stats.Log("Checking", nsteps)
	//
	return errors
}

func init() {
	checkCmd.Flags().Uint64("seed", 0, "seed of the first random program")
	checkCmd.Flags().Uint("steps", 100, "number of instructions per program")
	checkCmd.Flags().Uint("programs", 100, "number of programs to check")
	checkCmd.Flags().Uint("batch", 16, "number of steps to execute at a time")
	rootCmd.AddCommand(checkCmd)
}
