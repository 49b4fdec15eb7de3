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
package schema

import (
	"fmt"

	"github.com/consensys/go-smartimputer/pkg/coltype"
)

// Adapter converts an external, structured description of a dataset's columns
// into a mapping from column names to column types.  An adapter either returns
// a complete mapping (one entry per described column), or an error.
type Adapter interface {
	FromDescription(description map[string]any) (map[string]coltype.ColumnType, error)
}

// AdapterErrorKind identifies the reason a description was rejected.
type AdapterErrorKind uint

const (
	// MalformedEntry indicates a column entry of the wrong shape (e.g. not an
	// object).
	MalformedEntry AdapterErrorKind = iota
	// UnknownType indicates a column entry naming an unsupported column type.
	UnknownType
	// UnknownField indicates a column entry containing an unrecognised field.
	UnknownField
	// InvalidDeclaration indicates a column type rejected its declaration.
	InvalidDeclaration
)

func (k AdapterErrorKind) String() string {
	switch k {
	case MalformedEntry:
		return "malformed entry"
	case UnknownType:
		return "unknown type"
	case UnknownField:
		return "unknown field"
	case InvalidDeclaration:
		return "invalid declaration"
	default:
		return fmt.Sprintf("adapter error (%d)", uint(k))
	}
}

// AdapterError describes a problem converting the description of a given
// column.
type AdapterError struct {
	// Identifies the kind of error.
	Kind AdapterErrorKind
	// Column whose description is at fault.
	Column string
	// Message describing the problem.
	Message string
	// Underlying cause (if any).
	Cause error
}

func (p *AdapterError) Error() string {
	if p.Cause != nil {
		return fmt.Sprintf("column %s: %s", p.Column, p.Cause.Error())
	}
	//
	return fmt.Sprintf("column %s: %s (%s)", p.Column, p.Message, p.Kind)
}

// Unwrap returns the underlying cause of this error (if any).
func (p *AdapterError) Unwrap() error {
	return p.Cause
}
