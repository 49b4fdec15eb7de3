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
	"fmt"
	"iter"
	"strings"
)

// Table is a tabular data container made up of an ordered collection of named
// columns, each holding an ordered sequence of values.  All columns have the
// same height.  Values are untyped, since the expected type of each column is
// determined separately (e.g. by a schema).
type Table struct {
	// Number of rows in every column.
	height uint
	// Columns in order of declaration.
	columns []*Column
}

// EmptyTable constructs an empty table into which column data can be added.
func EmptyTable() *Table {
	p := new(Table)
	// Initially empty columns
	p.columns = make([]*Column, 0)
	// Initialise height as 0
	p.height = 0
	// done
	return p
}

// Width returns the number of columns in this table.
func (p *Table) Width() uint {
	return uint(len(p.columns))
}

// Height returns the number of rows in this table.
func (p *Table) Height() uint {
	return p.height
}

// ColumnNames returns the names of all columns in this table, in order.
func (p *Table) ColumnNames() []string {
	names := make([]string, len(p.columns))
	//
	for i, c := range p.columns {
		names[i] = c.name
	}
	//
	return names
}

// ColumnIndex returns the index of the column with the given name in this
// table, or returns false if no such column exists.
func (p *Table) ColumnIndex(name string) (uint, bool) {
	for i, c := range p.columns {
		if c.name == name {
			return uint(i), true
		}
	}
	// Column does not exist
	return 0, false
}

// HasColumn checks whether the table has a given column or not.
func (p *Table) HasColumn(name string) bool {
	_, ok := p.ColumnIndex(name)
	return ok
}

// Column looks up a column based on its name.  If the column doesn't exist,
// then nil is returned.
func (p *Table) Column(name string) *Column {
	if i, ok := p.ColumnIndex(name); ok {
		return p.columns[i]
	}
	//
	return nil
}

// Columns returns the columns of this table, in order.
func (p *Table) Columns() []*Column {
	return p.columns
}

// AddColumn adds a new column of data to this table.  This fails if a column
// of the same name already exists, or if the column's height differs from that
// of the columns already present.
func (p *Table) AddColumn(name string, data []any) error {
	// Sanity check the column does not already exist.
	if p.HasColumn(name) {
		return fmt.Errorf("column %s already exists", name)
	} else if (len(p.columns) > 0 || p.height > 0) && uint(len(data)) != p.height {
		return fmt.Errorf("column %s has height %d (expected %d)", name, len(data), p.height)
	}
	// Append it
	p.columns = append(p.columns, &Column{name, data})
	p.height = uint(len(data))
	//
	return nil
}

// Row returns the values in a given row of this table, indexed by column name.
// Rows beyond the height of the table are entirely nil.
func (p *Table) Row(row uint) map[string]any {
	values := make(map[string]any, len(p.columns))
	//
	for _, c := range p.columns {
		values[c.name] = c.Get(row)
	}
	//
	return values
}

// Rows returns an iterator over the rows of this table, in order.
func (p *Table) Rows() iter.Seq2[uint, map[string]any] {
	return func(yield func(uint, map[string]any) bool) {
		for i := uint(0); i < p.height; i++ {
			if !yield(i, p.Row(i)) {
				return
			}
		}
	}
}

// AppendRow appends a row of values to this table.  Columns not mentioned in
// the row are assigned nil, whilst a row mentioning a column which doesn't
// exist is rejected without modifying the table.
func (p *Table) AppendRow(row map[string]any) error {
	for name := range row {
		if !p.HasColumn(name) {
			return fmt.Errorf("unknown column %s", name)
		}
	}
	//
	for _, c := range p.columns {
		c.data = append(c.data, row[c.name])
	}
	//
	p.height++
	//
	return nil
}

// Clone creates an identical clone of this table.  The values themselves are
// shared between the two tables.
func (p *Table) Clone() *Table {
	clone := new(Table)
	clone.columns = make([]*Column, len(p.columns))
	clone.height = p.height
	//
	for i, c := range p.columns {
		clone.columns[i] = c.Clone()
	}
	// done
	return clone
}

func (p *Table) String() string {
	// Use string builder to try and make this vaguely efficient.
	var id strings.Builder

	id.WriteString("{")

	for i, c := range p.columns {
		if i != 0 {
			id.WriteString(",")
		}

		id.WriteString(c.name)
		id.WriteString("={")

		for j, v := range c.data {
			if j != 0 {
				id.WriteString(",")
			}

			id.WriteString(FormatValue(v))
		}
		id.WriteString("}")
	}
	id.WriteString("}")
	//
	return id.String()
}

// FormatValue returns a short textual representation of a table value, where
// missing values are shown as "_".
func FormatValue(value any) string {
	if value == nil {
		return "_"
	}
	//
	return fmt.Sprintf("%v", value)
}

// ===================================================================
// Column
// ===================================================================

// Column represents a named column of data within a table.
type Column struct {
	// Holds the name of this column
	name string
	// Holds the raw data making up this column
	data []any
}

// Name returns the name of the given column.
func (p *Column) Name() string {
	return p.name
}

// Height determines the height of this column.
func (p *Column) Height() uint {
	return uint(len(p.data))
}

// Get the value at a given row in this column.  Out-of-bounds accesses return
// nil.
func (p *Column) Get(row uint) any {
	if row >= uint(len(p.data)) {
		return nil
	}
	//
	return p.data[row]
}

// Values returns an iterator over the values of this column, in row order.
func (p *Column) Values() iter.Seq2[uint, any] {
	return func(yield func(uint, any) bool) {
		for i, v := range p.data {
			if !yield(uint(i), v) {
				return
			}
		}
	}
}

// Clone a column
func (p *Column) Clone() *Column {
	clone := new(Column)
	clone.name = p.name
	clone.data = make([]any, len(p.data))
	copy(clone.data, p.data)

	return clone
}
