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
	"sort"

	"github.com/consensys/go-smartimputer/pkg/coltype"
	"github.com/spf13/cobra"
)

// schemaCmd represents the schema command
var schemaCmd = &cobra.Command{
	Use:   "schema [flags] schema_file",
	Short: "Print the column types declared in a schema.",
	Long: `Parse a given schema file and print the column type declared for each column.
	Schemas are given either as JSON (.json) or as a sequence of (defcolumn ...)
	declarations (.lisp).`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		types, err := readSchemaFile(args[0])
		if err != nil {
			exitWithError(err, 2)
		}
		//
		if err := printSchema(os.Stdout, types); err != nil {
			exitWithError(err, 2)
		}
	},
}

// Print column types in column name order.
func printSchema(out io.Writer, types map[string]coltype.ColumnType) error {
	names := make([]string, 0, len(types))
	//
	for name := range types {
		names = append(names, name)
	}
	//
	sort.Strings(names)
	//
	for _, name := range names {
		ct := types[name]
		//
		if _, err := fmt.Fprintf(out, "%s: %s \"%s\"\n", name, ct.String(), ct.Description()); err != nil {
			return err
		}
	}
	//
	return nil
}

func init() {
	rootCmd.AddCommand(schemaCmd)
}
