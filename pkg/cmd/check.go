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

	"github.com/consensys/go-smartimputer/pkg/coltype"
	"github.com/consensys/go-smartimputer/pkg/dataset"
	"github.com/consensys/go-smartimputer/pkg/table"
	"github.com/consensys/go-smartimputer/pkg/util"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check [flags] table_file",
	Short: "Check a given table against a schema.",
	Long: `Check every value of a given table against the column types declared
	in a schema, and optionally check rows inserted afterwards.  Tables can be
	given as JSON, snappy-compressed JSON (.sz) or Parquet files.  Rows are
	given as JSON lines.`,
	Run: func(cmd *cobra.Command, args []string) {
		var cfg checkConfig
		//
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		cfg.audit = GetFlag(cmd, "audit")
		schemaFile := GetString(cmd, "schema")
		rowsFile := GetString(cmd, "rows")
		//
		if schemaFile == "" {
			exitWithError(fmt.Errorf("a schema file is required (--schema)"), 2)
		}
		// Parse schema
		types, err := readSchemaFile(schemaFile)
		if err != nil {
			exitWithError(err, 2)
		}
		// Parse table
		data, err := readTableFile(args[0])
		if err != nil {
			exitWithError(err, 2)
		}
		// Parse rows (if applicable)
		if rowsFile != "" {
			if cfg.rows, err = readRowsFile(rowsFile); err != nil {
				exitWithError(err, 2)
			}
		}
		// Go!
		if errs := runCheck(os.Stdout, data, types, cfg); len(errs) > 0 {
			for _, e := range errs {
				log.Error(e)
			}
			//
			os.Exit(1)
		}
	},
}

// check config encapsulates certain parameters to be used when checking
// tables.
type checkConfig struct {
	// Rows to insert after the table is loaded.
	rows []map[string]any
	// Specifies whether to report every failure, rather than just the first.
	audit bool
}

// Check a table (and any rows inserted thereafter) against a set of column
// types, returning any failures.  Unless auditing, this stops at the first
// failure.
func runCheck(out io.Writer, data *table.Table, types map[string]coltype.ColumnType, cfg checkConfig) []error {
	var errs []error
	//
	stats := util.NewPerfStats()
	//
	if cfg.audit {
		if errs = dataset.Audit(data, types); len(errs) > 0 {
			return errs
		}
	}
	//
	ds, err := dataset.New(data, types)
	if err != nil {
		return []error{err}
	}
	//
	stats.Log("Validating table")
	//
	for i, row := range cfg.rows {
		if err := ds.InsertRow(row); err != nil {
			errs = append(errs, fmt.Errorf("insert %d: %w", i, err))
			//
			if !cfg.audit {
				return errs
			}
		}
	}
	//
	if len(errs) == 0 {
		fmt.Fprintf(out, "ok: %d row(s), %d column(s)\n", ds.Height(), ds.Data().Width())
	}
	//
	return errs
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().StringP("schema", "s", "", "schema file declaring column types")
	checkCmd.Flags().StringP("rows", "r", "", "file of rows (JSON lines) to insert after loading")
	checkCmd.Flags().Bool("audit", false, "report all failures, rather than only the first")
}
