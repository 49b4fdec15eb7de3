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

import (
	"fmt"
)

// ConfigErrorKind identifies the reason a column type declaration was rejected.
type ConfigErrorKind uint

const (
	// TypeMismatch indicates a declaration field was given a value of the
	// wrong type (e.g. a non-boolean sparse flag).
	TypeMismatch ConfigErrorKind = iota
	// ConflictingConstraints indicates an allowed set was declared alongside
	// a range or multiple-of constraint.
	ConflictingConstraints
	// InvalidMultiple indicates a multiple-of constraint which is not positive.
	InvalidMultiple
	// EmptyRange indicates a minimum which exceeds the maximum.
	EmptyRange
)

func (k ConfigErrorKind) String() string {
	switch k {
	case TypeMismatch:
		return "type mismatch"
	case ConflictingConstraints:
		return "conflicting constraints"
	case InvalidMultiple:
		return "invalid multiple"
	case EmptyRange:
		return "empty range"
	default:
		return fmt.Sprintf("config error (%d)", uint(k))
	}
}

// ConfigError is returned when constructing a column type from a malformed
// declaration.  Such errors arise before any data is processed.
type ConfigError struct {
	// Identifies the kind of error.
	Kind ConfigErrorKind
	// Field of the declaration responsible for this error.
	Field string
	// Message describing the problem.
	Message string
}

func (p *ConfigError) Error() string {
	return fmt.Sprintf("%s (%s): %s", p.Kind, p.Field, p.Message)
}

// ValidationErrorKind identifies the constraint violated by a given value.
type ValidationErrorKind uint

const (
	// NotAnInteger indicates a value which is not an integer at all.
	NotAnInteger ValidationErrorKind = iota
	// BelowMinimum indicates a value less than the declared minimum.
	BelowMinimum
	// AboveMaximum indicates a value greater than the declared maximum.
	AboveMaximum
	// NotAMultiple indicates a value not divisible by the declared multiple.
	NotAMultiple
	// NotInAllowedSet indicates a value which is not in the declared set.
	NotInAllowedSet
)

func (k ValidationErrorKind) String() string {
	switch k {
	case NotAnInteger:
		return "not an integer"
	case BelowMinimum:
		return "below minimum"
	case AboveMaximum:
		return "above maximum"
	case NotAMultiple:
		return "not a multiple"
	case NotInAllowedSet:
		return "not in allowed set"
	default:
		return fmt.Sprintf("validation error (%d)", uint(k))
	}
}

// ValidationError describes a value which failed to satisfy a column type.  It
// carries both the offending value, and the bound (or set) which was violated.
type ValidationError struct {
	// Identifies the constraint violated.
	Kind ValidationErrorKind
	// The value which failed validation, exactly as given.
	Value any
	// The bound violated.  This is an int64 for range and multiple-of
	// constraints, the allowed set for set constraints and nil otherwise.
	Bound any
}

// Message provides a suitable error message
func (p *ValidationError) Message() string {
	switch p.Kind {
	case NotAnInteger:
		return fmt.Sprintf("value %v is not of type int (got %T)", p.Value, p.Value)
	case BelowMinimum:
		return fmt.Sprintf("value %v is less than min_value %v", p.Value, p.Bound)
	case AboveMaximum:
		return fmt.Sprintf("value %v is greater than max_value %v", p.Value, p.Bound)
	case NotAMultiple:
		return fmt.Sprintf("value %v is not a multiple of %v", p.Value, p.Bound)
	case NotInAllowedSet:
		return fmt.Sprintf("value %v is not in constrained_set %v", p.Value, p.Bound)
	default:
		return fmt.Sprintf("value %v is invalid (%s)", p.Value, p.Kind)
	}
}

func (p *ValidationError) Error() string {
	return p.Message()
}
