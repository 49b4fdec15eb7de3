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
	"context"
	"errors"
	"fmt"
	"os"
	"path"
	"strings"

	"github.com/consensys/go-smartimputer/pkg/coltype"
	"github.com/consensys/go-smartimputer/pkg/schema"
	"github.com/consensys/go-smartimputer/pkg/sexp"
	"github.com/consensys/go-smartimputer/pkg/table"
	"github.com/consensys/go-smartimputer/pkg/util"
	"github.com/spf13/cobra"
)

// GetFlag gets an expected flag, or exits if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetUint gets an expected unsigned integer flag, or exits if an error arises.
func GetUint(cmd *cobra.Command, flag string) uint {
	r, err := cmd.Flags().GetUint(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetString gets an expected string flag, or exits if an error arises.
func GetString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// Read a schema file and convert it into a mapping of column types, using a
// parser based on the extension of the filename.
func readSchemaFile(filename string) (map[string]coltype.ColumnType, error) {
	var (
		types map[string]coltype.ColumnType
		serr  *sexp.SyntaxError
	)
	//
	bytes, err := os.ReadFile(filename)
	//
	if err != nil {
		return nil, err
	}
	//
	switch path.Ext(filename) {
	case ".json":
		types, err = schema.FromJson(bytes)
	case ".lisp":
		types, err = schema.FromLisp(string(bytes))
	default:
		return nil, fmt.Errorf("%s: unknown schema file format", filename)
	}
	//
	if errors.As(err, &serr) {
		return nil, errors.New(formatSyntaxError(filename, serr, string(bytes)))
	} else if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	//
	return types, nil
}

// Format a syntax error, highlighting the offending region of the enclosing
// line.  Spans are measured in runes.
func formatSyntaxError(filename string, err *sexp.SyntaxError, text string) string {
	var (
		builder strings.Builder
		runes   = []rune(text)
		span    = err.Span()
	)
	//
	line, offset, num := findEnclosingLine(span.Start(), runes)
	// Highlight does not extend beyond the enclosing line.
	end := min(span.End(), offset+len(line))
	// Print error + line number
	fmt.Fprintf(&builder, "%s:%d: %s\n", filename, num, err.Message())
	// Print line
	builder.WriteString(string(line))
	builder.WriteString("\n")
	// Print indent, retaining tabs so the highlight lines up.
	for i := offset; i < span.Start(); i++ {
		if i < len(runes) && runes[i] == '\t' {
			builder.WriteRune('\t')
		} else {
			builder.WriteRune(' ')
		}
	}
	// Print highlight
	builder.WriteString(strings.Repeat("^", max(1, end-span.Start())))
	//
	return builder.String()
}

// Determine the enclosing line for the given index in some text, along with
// the offset of that line and its line number.
func findEnclosingLine(index int, text []rune) ([]rune, int, int) {
	num := 1
	start := 0
	// Handle case where we've reached the end-of-file unexpectedly.  This
	// essentially means the error is reported at the end of the last physical
	// line.
	index = max(0, min(index, len(text)-1))
	//
	for i := 0; i < index; i++ {
		if text[i] == '\n' {
			num++
			start = i + 1
		}
	}
	//
	end := start
	for end < len(text) && text[end] != '\n' {
		end++
	}
	//
	return text[start:end], start, num
}

// Read a table file, using a parser based on the extension of the filename.
func readTableFile(filename string) (*table.Table, error) {
	stats := util.NewPerfStats()
	//
	data, err := table.ReadFile(context.Background(), filename)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	//
	stats.Log(fmt.Sprintf("Reading table file %s", filename))
	//
	return data, nil
}

// Read a file of rows, expressed as JSON lines.
func readRowsFile(filename string) ([]map[string]any, error) {
	bytes, err := os.ReadFile(filename)
	//
	if err != nil {
		return nil, err
	}
	//
	rows, err := table.RowsFromJsonLines(bytes)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	//
	return rows, nil
}

// Report an error and exit with the given code.
func exitWithError(err error, code int) {
	fmt.Println(err)
	os.Exit(code)
}
