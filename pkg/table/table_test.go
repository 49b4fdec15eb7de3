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
	"encoding/json"
	"testing"
)

func Test_Table_00(t *testing.T) {
	table := EmptyTable()
	//
	if table.Width() != 0 || table.Height() != 0 {
		t.Errorf("unexpected dimensions %dx%d", table.Width(), table.Height())
	}
}

func Test_Table_01(t *testing.T) {
	table := check_Table(t, "x", []any{1, 2, 3}, "y", []any{4, 5, 6})
	//
	if table.Width() != 2 || table.Height() != 3 {
		t.Errorf("unexpected dimensions %dx%d", table.Width(), table.Height())
	}
	//
	if table.String() != "{x={1,2,3},y={4,5,6}}" {
		t.Errorf("unexpected table %s", table.String())
	}
	//
	if i, ok := table.ColumnIndex("y"); !ok || i != 1 {
		t.Errorf("unexpected column index %d", i)
	}
	//
	if table.Column("z") != nil || table.HasColumn("z") {
		t.Errorf("unexpected column z")
	}
}

func Test_Table_02(t *testing.T) {
	table := check_Table(t, "x", []any{1, 2})
	// Duplicate column
	if err := table.AddColumn("x", []any{1, 2}); err == nil {
		t.Errorf("duplicate column accepted")
	}
	// Mismatched height
	if err := table.AddColumn("y", []any{1}); err == nil {
		t.Errorf("mismatched column accepted")
	}
	//
	if table.Width() != 1 {
		t.Errorf("unexpected width %d", table.Width())
	}
}

func Test_Table_03(t *testing.T) {
	table := check_Table(t, "x", []any{1}, "y", []any{2})
	//
	if err := table.AppendRow(map[string]any{"x": 3}); err != nil {
		t.Fatal(err)
	}
	//
	if table.String() != "{x={1,3},y={2,_}}" {
		t.Errorf("unexpected table %s", table.String())
	}
	// Unknown column leaves table untouched
	if err := table.AppendRow(map[string]any{"x": 4, "z": 5}); err == nil {
		t.Errorf("unknown column accepted")
	}
	//
	if table.Height() != 2 || table.Column("x").Height() != 2 {
		t.Errorf("unexpected height %d", table.Height())
	}
}

func Test_Table_04(t *testing.T) {
	table := check_Table(t, "x", []any{1, 2}, "y", []any{3, 4})
	count := uint(0)
	//
	for i, row := range table.Rows() {
		if i != count || row["x"] != int(i)+1 || row["y"] != int(i)+3 {
			t.Errorf("unexpected row %d: %v", i, row)
		}
		//
		count++
	}
	//
	if count != 2 {
		t.Errorf("unexpected row count %d", count)
	}
}

func Test_Table_05(t *testing.T) {
	table := check_Table(t, "x", []any{1, 2})
	clone := table.Clone()
	//
	if err := clone.AppendRow(map[string]any{"x": 3}); err != nil {
		t.Fatal(err)
	}
	//
	if table.Height() != 2 || clone.Height() != 3 {
		t.Errorf("clone not independent (%d vs %d)", table.Height(), clone.Height())
	}
	//
	if table.Column("x").Get(5) != nil {
		t.Errorf("out-of-bounds access should return nil")
	}
}

func Test_Json_00(t *testing.T) {
	table := check_FromJson(t, `{"b": [1, 2], "a": [3, null]}`)
	// Document order preserved
	names := table.ColumnNames()
	if len(names) != 2 || names[0] != "b" || names[1] != "a" {
		t.Errorf("unexpected columns %v", names)
	}
	// Numbers are retained exactly
	if v := table.Column("b").Get(1); v != json.Number("2") {
		t.Errorf("unexpected value %v (%T)", v, v)
	}
	//
	if table.Column("a").Get(1) != nil {
		t.Errorf("expected null")
	}
}

func Test_Json_01(t *testing.T) {
	table := check_FromJson(t, `{"x": [], "y": null}`)
	//
	if table.Width() != 2 || table.Height() != 0 {
		t.Errorf("unexpected dimensions %dx%d", table.Width(), table.Height())
	}
}

func Test_Json_02(t *testing.T) {
	check_FromJsonError(t, `[1,2]`)
	check_FromJsonError(t, `{"x": 1}`)
	check_FromJsonError(t, `{"x": [1], "y": [1, 2]}`)
	check_FromJsonError(t, `{"x": [1], "x": [2]}`)
	check_FromJsonError(t, `{"x": [1]} {}`)
	check_FromJsonError(t, `{"x": [1]`)
}

func Test_Json_03(t *testing.T) {
	rows, err := RowsFromJsonLines([]byte("{\"x\": 1}\n\n{\"x\": 2, \"y\": 1.5}\n"))
	//
	if err != nil {
		t.Fatal(err)
	} else if len(rows) != 2 {
		t.Fatalf("unexpected number of rows %d", len(rows))
	}
	//
	if rows[0]["x"] != json.Number("1") || rows[1]["y"] != json.Number("1.5") {
		t.Errorf("unexpected rows %v", rows)
	}
	//
	if _, err := RowsFromJsonLines([]byte("{\"x\": 1}\n[1]\n")); err == nil {
		t.Errorf("malformed row accepted")
	}
}

// ===================================================================
// Test Helpers
// ===================================================================

func check_Table(t *testing.T, columns ...any) *Table {
	table := EmptyTable()
	//
	for i := 0; i < len(columns); i += 2 {
		name := columns[i].(string)
		data := columns[i+1].([]any)
		//
		if err := table.AddColumn(name, data); err != nil {
			t.Fatal(err)
		}
	}
	//
	return table
}

func check_FromJson(t *testing.T, text string) *Table {
	table, err := FromJson([]byte(text))
	//
	if err != nil {
		t.Fatal(err)
	}
	//
	return table
}

func check_FromJsonError(t *testing.T, text string) {
	if _, err := FromJson([]byte(text)); err == nil {
		t.Errorf("expected error for %s", text)
	}
}
