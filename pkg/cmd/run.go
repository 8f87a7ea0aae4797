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
	"io"
	"os"

	"github.com/consensys/go-ownsem/pkg/driver"
	"github.com/consensys/go-ownsem/pkg/scenario"
	"github.com/consensys/go-ownsem/pkg/util/termio"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run [flags] [scenario...]",
	Short: "Run one or more scenarios.",
	Long: `Run one or more named scenarios (or all of them, if none are named),
printing every step and checking what is expected of each.`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			scenarios = scenario.All()
			printer   = newPrinter(os.Stdout, getFlag(cmd, "ansi-escapes"))
		)
		//
		if len(args) > 0 {
			scenarios = nil
			//
			for _, name := range args {
				s, ok := scenario.Lookup(name)
				if !ok {
					fmt.Printf("unknown scenario \"%s\"\n", name)
					os.Exit(2)
				}
				//
				scenarios = append(scenarios, s)
			}
		}
		//
		if errs := runScenarios(printer, scenarios); len(errs) > 0 {
			// Report errors
			for _, e := range errs {
				log.Error(e)
			}
			// Error signal
			os.Exit(1)
		}
	},
}

func runScenarios(printer stepPrinter, scenarios []scenario.Scenario) []error {
	var errors []error
	//
	for _, s := range scenarios {
		trace, errs := s.Run()
		//
		printer.header(s.Name)
		printer.trace(trace)
		//
		for _, err := range errs {
			errors = append(errors, fmt.Errorf("%s: %w", s.Name, err))
		}
	}
	//
	return errors
}

// stepPrinter prints the steps of a trace, highlighting those which were
// blocked.
type stepPrinter struct {
	out         io.Writer
	highlighter termio.Highlighter
}

func newPrinter(out io.Writer, ansiEscapes bool) stepPrinter {
	return stepPrinter{out, termio.NewHighlighter(ansiEscapes)}
}

func (p stepPrinter) header(name string) {
	fmt.Fprintln(p.out, p.highlighter.Paint(name, termio.NewAnsiEscape().Bold()))
}

func (p stepPrinter) trace(trace *driver.Trace) {
	var (
		ok      = termio.NewAnsiEscape().FgColour(termio.TERM_GREEN)
		blocked = termio.NewAnsiEscape().FgColour(termio.TERM_RED)
	)
	//
	fmt.Fprintf(p.out, "    %s\n", trace.Initial().String())
	//
	for _, step := range trace.Steps() {
		if step.IsBlocked() {
			fmt.Fprintf(p.out, "    %s\n", p.highlighter.Paint(step.String(), blocked))
		} else {
			fmt.Fprintf(p.out, "    %s\n", p.highlighter.Paint(step.String(), ok))
		}
	}
}

func init() {
	rootCmd.AddCommand(runCmd)
}
