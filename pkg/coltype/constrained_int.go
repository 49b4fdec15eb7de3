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
	"math/big"
	"strings"

	"github.com/consensys/go-smartimputer/pkg/util"
	"github.com/consensys/go-smartimputer/pkg/util/collection/set"
)

// CONSTRAINED_INT is the name shared by all constrained integer types.
const CONSTRAINED_INT = "ConstrainedInt"

// Default description used when a declaration provides none.
const defaultIntDescription = "A constrained integer"

// Declaration captures the raw parameters used to construct a constrained
// integer.  The value and sparse fields are left untyped because declarations
// typically originate from parsed configuration, and are checked during
// construction.  For example, the following permits only even values between 0
// and 10 (inclusive):
//
//	NewConstrainedInteger(Declaration{Value: 1, Sparse: false}.WithMin(0).WithMax(10).WithMultipleOf(2))
type Declaration struct {
	// Example value for the column, which must be an integer.
	Value any
	// Whether missing values are permitted, which must be a boolean.
	Sparse any
	// Optional human-readable description.
	Description string
	// Inclusive lower bound (if any).
	MinValue util.Option[int64]
	// Inclusive upper bound (if any).
	MaxValue util.Option[int64]
	// Divisor of all permitted values (if any).
	MultipleOf util.Option[int64]
	// Explicit allow-list of values (if any).
	ConstrainedSet util.Option[[]int64]
}

// WithMin returns a copy of this declaration with the given lower bound.
func (d Declaration) WithMin(value int64) Declaration {
	d.MinValue = util.Some(value)
	return d
}

// WithMax returns a copy of this declaration with the given upper bound.
func (d Declaration) WithMax(value int64) Declaration {
	d.MaxValue = util.Some(value)
	return d
}

// WithMultipleOf returns a copy of this declaration with the given divisor.
func (d Declaration) WithMultipleOf(value int64) Declaration {
	d.MultipleOf = util.Some(value)
	return d
}

// WithSet returns a copy of this declaration with the given allow-list.
func (d Declaration) WithSet(values ...int64) Declaration {
	d.ConstrainedSet = util.Some(values)
	return d
}

// WithDescription returns a copy of this declaration with the given description.
func (d Declaration) WithDescription(description string) Declaration {
	d.Description = description
	return d
}

// ConstrainedInteger is a column type whose values must be integers satisfying
// zero or more constraints.  Range (min / max) and multiple-of constraints can
// be freely combined, but an allow-list excludes all others.  Constrained
// integers are immutable once constructed, and can therefore be shared safely.
type ConstrainedInteger struct {
	value          *big.Int
	sparse         bool
	description    string
	minValue       util.Option[int64]
	maxValue       util.Option[int64]
	multipleOf     util.Option[int64]
	constrainedSet util.Option[*set.SortedSet[int64]]
}

// NewConstrainedInteger constructs a constrained integer from a declaration,
// checking the declaration is well-formed.  Specifically, the value and sparse
// fields are type checked before the combination of constraints is examined.
func NewConstrainedInteger(decl Declaration) (*ConstrainedInteger, error) {
	value, ok := AsInteger(decl.Value)
	// Type check fields
	if !ok {
		return nil, &ConfigError{TypeMismatch, "value",
			fmt.Sprintf("value must be an integer (got %T)", decl.Value)}
	}
	//
	sparse, ok := decl.Sparse.(bool)
	if !ok {
		return nil, &ConfigError{TypeMismatch, "sparse",
			fmt.Sprintf("sparse must be a boolean (got %T)", decl.Sparse)}
	}
	// Check constraint combination
	if decl.ConstrainedSet.HasValue() {
		if decl.MinValue.HasValue() || decl.MaxValue.HasValue() || decl.MultipleOf.HasValue() {
			return nil, &ConfigError{ConflictingConstraints, "constrained_set",
				"constrained_set can only be used if min_value, max_value and multiple_of are not set"}
		}
	}
	//
	if decl.MultipleOf.HasValue() && decl.MultipleOf.Unwrap() <= 0 {
		return nil, &ConfigError{InvalidMultiple, "multiple_of",
			fmt.Sprintf("multiple_of must be positive (got %d)", decl.MultipleOf.Unwrap())}
	}
	//
	if decl.MinValue.HasValue() && decl.MaxValue.HasValue() && decl.MinValue.Unwrap() > decl.MaxValue.Unwrap() {
		return nil, &ConfigError{EmptyRange, "min_value",
			fmt.Sprintf("min_value %d exceeds max_value %d", decl.MinValue.Unwrap(), decl.MaxValue.Unwrap())}
	}
	// Construct allow-list (if applicable)
	constrainedSet := util.None[*set.SortedSet[int64]]()
	if decl.ConstrainedSet.HasValue() {
		constrainedSet = util.Some(set.NewSortedSet(decl.ConstrainedSet.Unwrap()...))
	}
	//
	description := decl.Description
	if description == "" {
		description = defaultIntDescription
	}
	//
	return &ConstrainedInteger{value, sparse, description, decl.MinValue, decl.MaxValue,
		decl.MultipleOf, constrainedSet}, nil
}

// Name returns the name of this column type.
func (p *ConstrainedInteger) Name() string {
	return CONSTRAINED_INT
}

// Description returns the description of this column type.
func (p *ConstrainedInteger) Description() string {
	return p.description
}

// Value returns the example value given when this type was declared.
func (p *ConstrainedInteger) Value() *big.Int {
	return new(big.Int).Set(p.value)
}

// Sparse indicates whether this column permits missing values.  Note that this
// flag is recorded, but is not checked during validation.
func (p *ConstrainedInteger) Sparse() bool {
	return p.sparse
}

// MinValue returns the inclusive lower bound of this type (if any).
func (p *ConstrainedInteger) MinValue() util.Option[int64] {
	return p.minValue
}

// MaxValue returns the inclusive upper bound of this type (if any).
func (p *ConstrainedInteger) MaxValue() util.Option[int64] {
	return p.maxValue
}

// MultipleOf returns the divisor of all values of this type (if any).
func (p *ConstrainedInteger) MultipleOf() util.Option[int64] {
	return p.multipleOf
}

// ConstrainedSet returns the values permitted for this type (if restricted).
// The elements are returned in ascending order.
func (p *ConstrainedInteger) ConstrainedSet() util.Option[[]int64] {
	if p.constrainedSet.HasValue() {
		return util.Some(p.constrainedSet.Unwrap().Items())
	}
	//
	return util.None[[]int64]()
}

// Validate checks whether a given value is an integer satisfying all
// constraints of this type.  Constraints are checked in a fixed order (minimum,
// maximum, multiple-of, allowed set) and the first violation is reported.
//
//nolint:revive
func (p *ConstrainedInteger) Validate(value any) error {
	v, ok := AsInteger(value)
	//
	if !ok {
		return &ValidationError{NotAnInteger, value, nil}
	}
	//
	if p.minValue.HasValue() && v.Cmp(big.NewInt(p.minValue.Unwrap())) < 0 {
		return &ValidationError{BelowMinimum, value, p.minValue.Unwrap()}
	}
	//
	if p.maxValue.HasValue() && v.Cmp(big.NewInt(p.maxValue.Unwrap())) > 0 {
		return &ValidationError{AboveMaximum, value, p.maxValue.Unwrap()}
	}
	//
	if p.multipleOf.HasValue() {
		var rem big.Int
		// NOTE: multipleOf is positive by construction.
		if rem.Rem(v, big.NewInt(p.multipleOf.Unwrap())).Sign() != 0 {
			return &ValidationError{NotAMultiple, value, p.multipleOf.Unwrap()}
		}
	}
	//
	if p.constrainedSet.HasValue() {
		allowed := p.constrainedSet.Unwrap()
		//
		if !v.IsInt64() || !allowed.Contains(v.Int64()) {
			return &ValidationError{NotInAllowedSet, value, set.NewSortedSet(allowed.Items()...)}
		}
	}
	// All good
	return nil
}

func (p *ConstrainedInteger) String() string {
	var constraints []string
	//
	if p.minValue.HasValue() {
		constraints = append(constraints, fmt.Sprintf("min_value=%d", p.minValue.Unwrap()))
	}
	//
	if p.maxValue.HasValue() {
		constraints = append(constraints, fmt.Sprintf("max_value=%d", p.maxValue.Unwrap()))
	}
	//
	if p.multipleOf.HasValue() {
		constraints = append(constraints, fmt.Sprintf("multiple_of=%d", p.multipleOf.Unwrap()))
	}
	//
	if p.constrainedSet.HasValue() {
		constraints = append(constraints, fmt.Sprintf("constrained_set=%s", p.constrainedSet.Unwrap().String()))
	}
	//
	if p.sparse {
		constraints = append(constraints, "sparse")
	}
	//
	return fmt.Sprintf("%s(%s)", CONSTRAINED_INT, strings.Join(constraints, ","))
}

func (p *ConstrainedInteger) isColumnType() {}
