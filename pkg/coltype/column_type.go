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
package coltype

// ColumnType describes the declared type of a single dataset column.  Every
// column type has a short name identifying its variant, an optional description
// and a validation check applied to every value stored in the column.
//
// The set of column types is closed: variants are only defined within this
// package and are distinguished by a type switch where necessary.
type ColumnType interface {
	// Name returns a short identifier for this kind of column type, which is
	// the same for every instance of the variant.
	Name() string
	// Description returns a human-readable description of this column type, or
	// the empty string if none was given.
	Description() string
	// Validate checks a single value against every constraint declared by this
	// column type, returning the first violation found (or nil if there is
	// none).  Validation never modifies either the column type or the value.
	Validate(value any) error
	// Sparse indicates whether a dataset may leave values of this column
	// missing (nil).  Validate itself does not consult this flag.
	Sparse() bool
	// String returns a summary of this column type and its constraints.
	String() string
	// Marker which prevents variants being declared outside this package.
	isColumnType()
}
