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
package table

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// FromJson parses a table expressed in JSON notation.  For example, {"X": [0],
// "Y": [1]} is a table containing one row of data for two columns "X" and "Y".
// Columns are added in the order they appear in the document.  Numbers are
// retained as json.Number so that integers are not silently converted into
// floating point values.
func FromJson(data []byte) (*Table, error) {
	var (
		table   = EmptyTable()
		decoder = json.NewDecoder(bytes.NewReader(data))
	)
	//
	decoder.UseNumber()
	// Opening brace
	if err := expectDelim(decoder, '{'); err != nil {
		return nil, err
	}
	//
	for decoder.More() {
		var values []any
		// Column name
		token, err := decoder.Token()
		if err != nil {
			return nil, err
		}
		//
		name, ok := token.(string)
		if !ok {
			return nil, fmt.Errorf("expected column name, found %v", token)
		}
		// Column data
		if err := decoder.Decode(&values); err != nil {
			return nil, fmt.Errorf("column %s: %w", name, err)
		} else if values == nil {
			// Handle explicit nulls, and give empty columns a non-nil slice.
			values = make([]any, 0)
		}
		//
		if err := table.AddColumn(name, values); err != nil {
			return nil, err
		}
	}
	// Closing brace
	if err := expectDelim(decoder, '}'); err != nil {
		return nil, err
	}
	// Trailing data
	if _, err := decoder.Token(); err != io.EOF {
		return nil, fmt.Errorf("unexpected data after table")
	}
	//
	return table, nil
}

// RowsFromJsonLines parses a sequence of rows, one JSON object per line.  For
// example, {"X": 1, "Y": 2} is a row assigning 1 to column "X" and 2 to column
// "Y".  Blank lines are ignored.
func RowsFromJsonLines(data []byte) ([]map[string]any, error) {
	var (
		rows    []map[string]any
		decoder = json.NewDecoder(bytes.NewReader(data))
	)
	//
	decoder.UseNumber()
	//
	for {
		var row map[string]any
		//
		if err := decoder.Decode(&row); err == io.EOF {
			return rows, nil
		} else if err != nil {
			return nil, fmt.Errorf("row %d: %w", len(rows), err)
		} else if row == nil {
			return nil, fmt.Errorf("row %d: expected object", len(rows))
		}
		//
		rows = append(rows, row)
	}
}

func expectDelim(decoder *json.Decoder, delim json.Delim) error {
	token, err := decoder.Token()
	//
	if err != nil {
		return err
	} else if token != delim {
		return fmt.Errorf("expected %s, found %v", delim, token)
	}
	//
	return nil
}
