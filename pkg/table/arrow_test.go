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
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/apache/arrow-go/v18/parquet"
	"github.com/apache/arrow-go/v18/parquet/pqarrow"
	"github.com/golang/snappy"
)

func Test_Arrow_00(t *testing.T) {
	tbl := newArrowTable()
	defer tbl.Release()
	//
	table, err := FromArrow(tbl)
	if err != nil {
		t.Fatal(err)
	}
	//
	check_ArrowTable(t, table)
}

func Test_Parquet_00(t *testing.T) {
	var buffer bytes.Buffer
	//
	tbl := newArrowTable()
	defer tbl.Release()
	//
	err := pqarrow.WriteTable(tbl, &buffer, 1024, parquet.NewWriterProperties(), pqarrow.DefaultWriterProps())
	if err != nil {
		t.Fatal(err)
	}
	//
	table, err := ReadParquet(context.Background(), bytes.NewReader(buffer.Bytes()))
	if err != nil {
		t.Fatal(err)
	}
	//
	check_ArrowTable(t, table)
}

func Test_Snappy_00(t *testing.T) {
	data := snappy.Encode(nil, []byte(`{"x": [1, 2, 3]}`))
	//
	table, err := FromSnappyJson(data)
	if err != nil {
		t.Fatal(err)
	}
	//
	if table.String() != "{x={1,2,3}}" {
		t.Errorf("unexpected table %s", table.String())
	}
	//
	if _, err := FromSnappyJson([]byte("not snappy")); err == nil {
		t.Errorf("malformed input accepted")
	}
}

func Test_ReadFile_00(t *testing.T) {
	var (
		dir   = t.TempDir()
		plain = filepath.Join(dir, "data.json")
		comp  = filepath.Join(dir, "data.json.sz")
		other = filepath.Join(dir, "data.csv")
		text  = []byte(`{"x": [1, 2], "y": [3, 4]}`)
	)
	//
	if err := os.WriteFile(plain, text, 0o600); err != nil {
		t.Fatal(err)
	} else if err := os.WriteFile(comp, snappy.Encode(nil, text), 0o600); err != nil {
		t.Fatal(err)
	}
	//
	for _, filename := range []string{plain, comp} {
		table, err := ReadFile(context.Background(), filename)
		if err != nil {
			t.Fatal(err)
		} else if table.String() != "{x={1,2},y={3,4}}" {
			t.Errorf("unexpected table %s", table.String())
		}
	}
	//
	if _, err := ReadFile(context.Background(), other); err == nil {
		t.Errorf("unknown format accepted")
	}
}

// ===================================================================
// Test Helpers
// ===================================================================

// Construct a table with an int64 column (including a null), and a string
// column.
func newArrowTable() arrow.Table {
	mem := memory.NewGoAllocator()
	schema := arrow.NewSchema([]arrow.Field{
		{Name: "age", Type: arrow.PrimitiveTypes.Int64, Nullable: true},
		{Name: "name", Type: arrow.BinaryTypes.String},
	}, nil)
	//
	builder := array.NewRecordBuilder(mem, schema)
	defer builder.Release()
	//
	builder.Field(0).(*array.Int64Builder).AppendValues([]int64{10, 0, 30}, []bool{true, false, true})
	builder.Field(1).(*array.StringBuilder).AppendValues([]string{"a", "b", "c"}, nil)
	//
	record := builder.NewRecord()
	defer record.Release()
	//
	return array.NewTableFromRecords(schema, []arrow.Record{record})
}

func check_ArrowTable(t *testing.T, table *Table) {
	if table.Width() != 2 || table.Height() != 3 {
		t.Fatalf("unexpected dimensions %dx%d", table.Width(), table.Height())
	}
	//
	age := table.Column("age")
	if age.Get(0) != int64(10) || age.Get(1) != nil || age.Get(2) != int64(30) {
		t.Errorf("unexpected column %s", table.String())
	}
	//
	if table.Column("name").Get(2) != "c" {
		t.Errorf("unexpected column %s", table.String())
	}
}
