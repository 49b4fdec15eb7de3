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
	"github.com/consensys/go-smartimputer/pkg/model"
	"github.com/consensys/go-smartimputer/pkg/table"
	"github.com/spf13/cobra"
)

// predictCmd represents the predict command
var predictCmd = &cobra.Command{
	Use:   "predict [flags] table_file",
	Short: "Predict values for a label column.",
	Long: `Fit a model against the label column of a given table (once validated
	against a schema), and print the values it predicts for that column.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		label := GetString(cmd, "label")
		n := GetUint(cmd, "count")
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
		if err := runPredict(os.Stdout, data, types, label, n); err != nil {
			exitWithError(err, 1)
		}
	},
}

// Fit a mode imputer for the given label, and print n predictions.
func runPredict(out io.Writer, data *table.Table, types map[string]coltype.ColumnType, label string, n uint) error {
	labelType, ok := types[label]
	//
	if !ok {
		return &dataset.LookupError{Kind: dataset.UnknownColumn, Column: label}
	}
	//
	ds, err := dataset.New(data, types)
	if err != nil {
		return err
	}
	//
	imputer := model.NewModeImputer(label, labelType)
	//
	if err := imputer.Fit(ds); err != nil {
		return err
	}
	//
	predictions, err := imputer.Predict(n)
	if err != nil {
		return err
	}
	//
	for _, p := range predictions {
		if _, err := fmt.Fprintln(out, table.FormatValue(p)); err != nil {
			return err
		}
	}
	//
	return nil
}

func init() {
	rootCmd.AddCommand(predictCmd)
	predictCmd.Flags().StringP("schema", "s", "", "schema file declaring column types")
	predictCmd.Flags().StringP("label", "l", "", "name of the column to predict")
	predictCmd.Flags().UintP("count", "n", 1, "number of predictions to make")
}
