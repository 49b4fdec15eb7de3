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
package dataset

import (
	"maps"
	"sort"

	"github.com/consensys/go-smartimputer/pkg/coltype"
	"github.com/consensys/go-smartimputer/pkg/table"
	log "github.com/sirupsen/logrus"
)

// SmartDataset pairs a table with a type for each of its columns.  Every value
// in the table is known to satisfy its column's type: the entire table is
// validated when the dataset is constructed, and every row inserted thereafter
// is validated before being added.  Missing (nil) values are only permitted in
// sparse columns.  A dataset takes ownership of both the table
// and the column types given to it.
//
// A SmartDataset is not safe for concurrent use.  Callers requiring concurrent
// insertion must provide their own synchronisation.
type SmartDataset struct {
	data        *table.Table
	columnTypes map[string]coltype.ColumnType
}

// New constructs a dataset from a table and a mapping from column names to
// column types, validating every value in the table.  Columns are validated in
// table order, and values within a column in row order.  Validation stops at
// the first failure, which is returned.  Every column of the table must have a
// declared type, though types may be declared for columns not (yet) present.
func New(data *table.Table, columnTypes map[string]coltype.ColumnType) (*SmartDataset, error) {
	dataset := &SmartDataset{data, maps.Clone(columnTypes)}
	//
	for _, column := range data.Columns() {
		if err := dataset.validateColumn(column); err != nil {
			return nil, err
		}
	}
	//
	log.Debugf("validated %d column(s) of %d row(s)", data.Width(), data.Height())
	//
	return dataset, nil
}

// Audit checks every value of a table against a given mapping of column types,
// returning all failures found rather than only the first.  Columns without a
// declared type are reported once each (as a LookupError), and the table is
// not modified.
func Audit(data *table.Table, columnTypes map[string]coltype.ColumnType) []error {
	var errors []error
	//
	for _, column := range data.Columns() {
		ct, ok := columnTypes[column.Name()]
		//
		if !ok {
			errors = append(errors, &LookupError{UnknownColumn, column.Name()})
			continue
		}
		//
		for row, value := range column.Values() {
			if err := checkValue(column.Name(), ct, row, value); err != nil {
				errors = append(errors, err)
			}
		}
	}
	//
	return errors
}

// Data returns the table underlying this dataset.  This should be treated as
// read-only, since modifying it directly bypasses validation.
func (p *SmartDataset) Data() *table.Table {
	return p.data
}

// Height returns the number of rows in this dataset.
func (p *SmartDataset) Height() uint {
	return p.data.Height()
}

// ColumnType returns the declared type of a given column, or false if no type
// was declared for it.
func (p *SmartDataset) ColumnType(name string) (coltype.ColumnType, bool) {
	ct, ok := p.columnTypes[name]
	return ct, ok
}

// Columns returns the names of all columns with a declared type, in sorted
// order.
func (p *SmartDataset) Columns() []string {
	names := make([]string, 0, len(p.columnTypes))
	//
	for name := range p.columnTypes {
		names = append(names, name)
	}
	//
	sort.Strings(names)
	//
	return names
}

// InsertRow validates a row of values and, if every value is valid, appends it
// to this dataset.  Insertion is atomic: if any value in the row fails
// validation (or names a column without a declared type) then an error is
// returned and the dataset is unchanged.  Columns of the dataset not mentioned
// in the row are assigned nil, which requires them to be sparse.  A declared
// column which is not yet present in the underlying table is added, with nil
// for all existing rows, which likewise requires it to be sparse when the
// table is not empty.
func (p *SmartDataset) InsertRow(row map[string]any) error {
	var (
		names = make([]string, 0, len(row))
		index = p.data.Height()
	)
	//
	for name := range row {
		names = append(names, name)
	}
	// Validate in a deterministic order
	sort.Strings(names)
	//
	for _, name := range names {
		if err := p.validateValue(name, index, row[name]); err != nil {
			return err
		}
	}
	// Check gaps left in existing columns
	for _, column := range p.data.Columns() {
		if _, ok := row[column.Name()]; !ok {
			if err := p.validateValue(column.Name(), index, nil); err != nil {
				return err
			}
		}
	}
	// Check gaps left by back-filling new columns
	if index > 0 {
		for _, name := range names {
			if !p.data.HasColumn(name) && !p.columnTypes[name].Sparse() {
				return &MissingValueError{name, 0}
			}
		}
	}
	// Validation complete, so commit.
	for _, name := range names {
		if !p.data.HasColumn(name) {
			// Cannot fail, since the column does not exist and has the
			// correct height.
			if err := p.data.AddColumn(name, make([]any, p.data.Height())); err != nil {
				panic(err.Error())
			}
			//
			log.Debugf("added declared column %s", name)
		}
	}
	//
	if err := p.data.AppendRow(row); err != nil {
		// Unreachable, since every column is known to exist.
		panic(err.Error())
	}
	//
	return nil
}

// Validate an entire column
func (p *SmartDataset) validateColumn(column *table.Column) error {
	ct, ok := p.columnTypes[column.Name()]
	//
	if !ok {
		return &LookupError{UnknownColumn, column.Name()}
	}
	//
	for row, value := range column.Values() {
		if err := checkValue(column.Name(), ct, row, value); err != nil {
			return err
		}
	}
	//
	return nil
}

// Validate a single value in a column.
func (p *SmartDataset) validateValue(name string, row uint, value any) error {
	ct, ok := p.columnTypes[name]
	//
	if !ok {
		return &LookupError{UnknownColumn, name}
	}
	//
	return checkValue(name, ct, row, value)
}

// Check a single value against the type of its column, where missing values
// are only permitted for sparse columns.
func checkValue(name string, ct coltype.ColumnType, row uint, value any) error {
	if value == nil && ct.Sparse() {
		return nil
	} else if value == nil {
		return &MissingValueError{name, row}
	} else if err := ct.Validate(value); err != nil {
		return &ColumnValidationError{name, row, err}
	}
	//
	return nil
}
