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
	"context"
	"fmt"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/apache/arrow-go/v18/parquet"
	"github.com/apache/arrow-go/v18/parquet/file"
	"github.com/apache/arrow-go/v18/parquet/pqarrow"
)

// FromArrow converts an Arrow table into a table.  Integer columns retain
// their native Go types (e.g. int64 for an Arrow int64 column), nulls become
// nil and any types without a direct counterpart are converted into their
// string representation.
func FromArrow(tbl arrow.Table) (*Table, error) {
	var (
		table = EmptyTable()
		ncols = int(tbl.NumCols())
	)
	//
	for i := 0; i < ncols; i++ {
		var (
			column = tbl.Column(i)
			values = make([]any, 0, tbl.NumRows())
		)
		//
		for _, chunk := range column.Data().Chunks() {
			for j := 0; j < chunk.Len(); j++ {
				values = append(values, arrowValue(chunk, j))
			}
		}
		//
		if err := table.AddColumn(column.Name(), values); err != nil {
			return nil, err
		}
	}
	//
	return table, nil
}

// ReadParquet reads a table from a given Parquet file.  The file is first read
// into an Arrow table, which is then converted.
func ReadParquet(ctx context.Context, reader parquet.ReaderAtSeeker) (*Table, error) {
	mem := memory.NewGoAllocator()
	// Create a parquet file reader
	pf, err := file.NewParquetReader(reader, file.WithReadProps(parquet.NewReaderProperties(mem)))
	if err != nil {
		return nil, fmt.Errorf("failed to create parquet reader: %w", err)
	}
	defer pf.Close()
	// Convert parquet to Arrow table
	arrowReader, err := pqarrow.NewFileReader(pf, pqarrow.ArrowReadProperties{}, mem)
	if err != nil {
		return nil, fmt.Errorf("failed to create arrow reader: %w", err)
	}
	// Read all data into an Arrow table
	tbl, err := arrowReader.ReadTable(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read parquet data: %w", err)
	}
	defer tbl.Release()
	//
	return FromArrow(tbl)
}

// Extract the ith value from an Arrow array.
//
//nolint:revive
func arrowValue(arr arrow.Array, i int) any {
	if arr.IsNull(i) {
		return nil
	}
	//
	switch a := arr.(type) {
	case *array.Int8:
		return a.Value(i)
	case *array.Int16:
		return a.Value(i)
	case *array.Int32:
		return a.Value(i)
	case *array.Int64:
		return a.Value(i)
	case *array.Uint8:
		return a.Value(i)
	case *array.Uint16:
		return a.Value(i)
	case *array.Uint32:
		return a.Value(i)
	case *array.Uint64:
		return a.Value(i)
	case *array.Float32:
		return a.Value(i)
	case *array.Float64:
		return a.Value(i)
	case *array.Boolean:
		return a.Value(i)
	case *array.String:
		return a.Value(i)
	case *array.LargeString:
		return a.Value(i)
	default:
		return arr.ValueStr(i)
	}
}
