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
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/consensys/go-smartimputer/pkg/coltype"
	"github.com/consensys/go-smartimputer/pkg/dataset"
	"github.com/consensys/go-smartimputer/pkg/table"
	"github.com/consensys/go-smartimputer/pkg/util/termio"
	"github.com/spf13/cobra"
)

// showCmd represents the show command
var showCmd = &cobra.Command{
	Use:   "show [flags] table_file",
	Short: "Print a table, highlighting any invalid values.",
	Long: `Print the contents of a given table, highlighting any values which do
	not satisfy the column types declared in a schema.`,
	Run: func(cmd *cobra.Command, args []string) {
		var cfg showConfig
		//
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		cfg.maxWidth = GetUint(cmd, "max-width")
		// Use escapes when printing to a terminal, unless told otherwise.
		if cmd.Flags().Changed("ansi-escapes") {
			cfg.ansiEscapes = GetFlag(cmd, "ansi-escapes")
		} else {
			cfg.ansiEscapes = termio.IsTerminal()
		}
		//
		types, err := readSchemaFile(GetString(cmd, "schema"))
		if err != nil {
			exitWithError(err, 2)
		}
		//
		data, err := readTableFile(args[0])
		if err != nil {
			exitWithError(err, 2)
		}
		//
		if n, err := runShow(os.Stdout, data, types, cfg); err != nil {
			exitWithError(err, 2)
		} else if n > 0 {
			os.Exit(1)
		}
	},
}

// show config encapsulates parameters for printing tables.
type showConfig struct {
	// Upper bound on the width of any printed column.
	maxWidth uint
	// Whether or not to use ANSI escapes for highlighting.
	ansiEscapes bool
}

// Print a table with invalid cells highlighted, followed by a summary of the
// failures found.  The number of failures is returned.
func runShow(out io.Writer, data *table.Table, types map[string]coltype.ColumnType, cfg showConfig) (uint, error) {
	var (
		errs    = dataset.Audit(data, types)
		printer = termio.NewTablePrinter(data.Width()+1, data.Height()+1)
		red     = termio.NewAnsiEscape().FgColour(termio.TERM_RED)
		yellow  = termio.NewAnsiEscape().FgColour(termio.TERM_YELLOW)
		bold    = termio.BoldAnsiEscape()
	)
	// Header
	printer.Set(0, 0, "")
	//
	for i, c := range data.Columns() {
		col := uint(i) + 1
		printer.Set(col, 0, c.Name())
		//
		if _, ok := types[c.Name()]; ok {
			printer.SetEscape(col, 0, bold)
		} else {
			printer.SetEscape(col, 0, yellow)
		}
		//
		for row, value := range c.Values() {
			printer.Set(col, row+1, table.FormatValue(value))
		}
	}
	// Row indices
	for row := uint(0); row < data.Height(); row++ {
		printer.Set(0, row+1, fmt.Sprintf("%d", row))
	}
	// Highlight failures
	for _, err := range errs {
		var (
			cerr *dataset.ColumnValidationError
			merr *dataset.MissingValueError
		)
		//
		if errors.As(err, &cerr) {
			col, _ := data.ColumnIndex(cerr.Column)
			printer.SetEscape(col+1, cerr.Row+1, red)
		} else if errors.As(err, &merr) {
			col, _ := data.ColumnIndex(merr.Column)
			printer.SetEscape(col+1, merr.Row+1, red)
		}
	}
	//
	printer.AnsiEscapes(cfg.ansiEscapes)
	printer.SetMaxWidths(cfg.maxWidth)
	//
	if err := printer.Print(out); err != nil {
		return 0, err
	}
	// Summarise
	for _, err := range errs {
		if _, err := fmt.Fprintln(out, err); err != nil {
			return 0, err
		}
	}
	//
	return uint(len(errs)), nil
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().StringP("schema", "s", "", "schema file declaring column types")
	showCmd.Flags().Uint("max-width", 16, "maximum width of a printed column")
	showCmd.Flags().Bool("ansi-escapes", true, "use ANSI escapes to highlight invalid values")
}
