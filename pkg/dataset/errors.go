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
	"fmt"
)

// LookupErrorKind identifies the reason a column lookup failed.
type LookupErrorKind uint

const (
	// UnknownColumn indicates a column which has no declared type.
	UnknownColumn LookupErrorKind = iota
)

func (k LookupErrorKind) String() string {
	switch k {
	case UnknownColumn:
		return "unknown column"
	default:
		return fmt.Sprintf("lookup error (%d)", uint(k))
	}
}

// LookupError is returned when data (or an inserted row) refers to a column for
// which no column type was declared.
type LookupError struct {
	// Identifies the kind of error.
	Kind LookupErrorKind
	// Column which could not be resolved.
	Column string
}

func (p *LookupError) Error() string {
	return fmt.Sprintf("%s \"%s\"", p.Kind, p.Column)
}

// ColumnValidationError is returned when a value in a given column and row
// fails to satisfy that column's type.  The underlying cause is available via
// errors.As / errors.Unwrap.
type ColumnValidationError struct {
	// Column holding the offending value.
	Column string
	// Row holding the offending value.  For row insertion, this is the row
	// which would have been added.
	Row uint
	// The underlying validation failure.
	Cause error
}

func (p *ColumnValidationError) Error() string {
	return fmt.Sprintf("column %s (row %d): %s", p.Column, p.Row, p.Cause.Error())
}

// Unwrap returns the underlying validation failure.
func (p *ColumnValidationError) Unwrap() error {
	return p.Cause
}

// MissingValueError is returned when a column which is not sparse would hold a
// missing (nil) value.  This arises from a nil value in a loaded table or an
// inserted row, from a row which omits the column, or from a declared column
// being added to a table which already holds rows.
type MissingValueError struct {
	// Column which would hold the missing value.
	Column string
	// Row which would hold the missing value.
	Row uint
}

func (p *MissingValueError) Error() string {
	return fmt.Sprintf("column %s (row %d): missing value for non-sparse column", p.Column, p.Row)
}
