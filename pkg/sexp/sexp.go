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
package sexp

import (
	"strconv"
	"strings"
)

// SExp is an S-Expression, which is either a List of zero or more
// S-Expressions, a Symbol or a String.
type SExp interface {
	// AsList returns this S-Expression as a list, or nil if it is not a list.
	AsList() *List
	// AsSymbol returns this S-Expression as a symbol, or nil if it is not a
	// symbol.
	AsSymbol() *Symbol
	// Span returns the region of the original text covered by this
	// S-Expression.
	Span() Span
	// String generates a string representation.
	String() string
}

// ===================================================================
// List
// ===================================================================

// List represents a list of zero or more S-Expressions.
type List struct {
	Elements []SExp
	span     Span
}

// NOTE: This is used for compile time type checking if the given type
// satisfies the given interface.
var _ SExp = (*List)(nil)

// NewList constructs a list covering a given span of text.
func NewList(elements []SExp, span Span) *List {
	return &List{elements, span}
}

// AsList returns this list.
func (l *List) AsList() *List { return l }

// AsSymbol returns nil, since a list is not a symbol.
func (l *List) AsSymbol() *Symbol { return nil }

// Span returns the region of text covered by this list.
func (l *List) Span() Span { return l.span }

// Len gets the number of elements in this list.
func (l *List) Len() int { return len(l.Elements) }

// Get the ith element of this list.
func (l *List) Get(i int) SExp { return l.Elements[i] }

// MatchSymbols matches a list which starts with at least n elements, of which
// the first m are symbols matching the given strings.
func (l *List) MatchSymbols(n int, symbols ...string) bool {
	if len(l.Elements) < n || len(symbols) > n {
		return false
	}

	for i := 0; i < len(symbols); i++ {
		ith := l.Elements[i].AsSymbol()
		if ith == nil || ith.Value != symbols[i] {
			return false
		}
	}

	return true
}

func (l *List) String() string {
	var builder strings.Builder
	//
	builder.WriteString("(")
	//
	for i, e := range l.Elements {
		if i != 0 {
			builder.WriteString(" ")
		}
		//
		builder.WriteString(e.String())
	}
	//
	builder.WriteString(")")
	//
	return builder.String()
}

// ===================================================================
// Symbol
// ===================================================================

// Symbol represents a terminating symbol.
type Symbol struct {
	Value string
	span  Span
}

// NOTE: This is used for compile time type checking if the given type
// satisfies the given interface.
var _ SExp = (*Symbol)(nil)

// NewSymbol constructs a symbol covering a given span of text.
func NewSymbol(value string, span Span) *Symbol {
	return &Symbol{value, span}
}

// AsList returns nil, since a symbol is not a list.
func (s *Symbol) AsList() *List { return nil }

// AsSymbol returns this symbol.
func (s *Symbol) AsSymbol() *Symbol { return s }

// Span returns the region of text covered by this symbol.
func (s *Symbol) Span() Span { return s.span }

func (s *Symbol) String() string { return s.Value }

// ===================================================================
// String
// ===================================================================

// String represents a double-quoted string literal, whose value excludes the
// quotes themselves.
type String struct {
	Value string
	span  Span
}

// NOTE: This is used for compile time type checking if the given type
// satisfies the given interface.
var _ SExp = (*String)(nil)

// NewString constructs a string literal covering a given span of text.
func NewString(value string, span Span) *String {
	return &String{value, span}
}

// AsList returns nil, since a string is not a list.
func (s *String) AsList() *List { return nil }

// AsSymbol returns nil, since a string is not a symbol.
func (s *String) AsSymbol() *Symbol { return nil }

// Span returns the region of text covered by this string.
func (s *String) Span() Span { return s.span }

func (s *String) String() string { return strconv.Quote(s.Value) }
