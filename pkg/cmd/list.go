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

	"github.com/consensys/go-ownsem/pkg/scenario"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the available scenarios.",
	Run: func(cmd *cobra.Command, args []string) {
		listScenarios(os.Stdout, scenario.All())
	},
}

func listScenarios(out io.Writer, scenarios []scenario.Scenario) {
	var width int
	//
	for _, s := range scenarios {
		width = max(width, len(s.Name))
	}
	//
	for _, s := range scenarios {
		fmt.Fprintf(out, "%-*s  %s\n", width, s.Name, s.Description)
	}
}

func init() {
	rootCmd.AddCommand(listCmd)
}
