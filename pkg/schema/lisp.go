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
	"math/big"
	"strings"

	"github.com/consensys/go-smartimputer/pkg/coltype"
	"github.com/consensys/go-smartimputer/pkg/sexp"
)

// ParseLisp parses a description written as a sequence of column declarations
// into its raw structured form, suitable for passing to an adapter.  Each
// declaration has the form (defcolumn NAME TYPE :field value ...), for
// example:
//
//	(defcolumn age ConstrainedInt :value 0 :sparse false :min_value 0 :max_value 150)
//	(defcolumn dice ConstrainedInt :value 1 :sparse false :constrained_set (1 2 3 4 5 6))
//
// Integer symbols become integers, true and false become booleans, null is
// absent and lists become arrays.  Errors are reported as syntax errors
// identifying the offending region of text.
func ParseLisp(text string) (map[string]any, error) {
	terms, err := sexp.ParseAll(text)
	//
	if err != nil {
		return nil, err
	}
	//
	description := make(map[string]any)
	//
	for _, term := range terms {
		list := term.AsList()
		//
		if list == nil || !list.MatchSymbols(3, "defcolumn") {
			return nil, sexp.NewSyntaxError(term.Span(), "expected (defcolumn NAME TYPE ...)")
		}
		//
		name, entry, err := parseColumnDeclaration(list)
		if err != nil {
			return nil, err
		} else if _, ok := description[name]; ok {
			return nil, sexp.NewSyntaxError(list.Get(1).Span(), fmt.Sprintf("duplicate column %s", name))
		}
		//
		description[name] = entry
	}
	//
	return description, nil
}

// FromLisp parses a lisp description and converts it into column types.
func FromLisp(text string) (map[string]coltype.ColumnType, error) {
	description, err := ParseLisp(text)
	//
	if err != nil {
		return nil, err
	}
	//
	return StandardAdapter{}.FromDescription(description)
}

func parseColumnDeclaration(list *sexp.List) (string, map[string]any, error) {
	name := list.Get(1).AsSymbol()
	kind := list.Get(2).AsSymbol()
	//
	if name == nil {
		return "", nil, sexp.NewSyntaxError(list.Get(1).Span(), "invalid column name")
	} else if kind == nil {
		return "", nil, sexp.NewSyntaxError(list.Get(2).Span(), "invalid column type")
	}
	//
	entry := map[string]any{"type": kind.Value}
	//
	for i := 3; i < list.Len(); i += 2 {
		key := list.Get(i).AsSymbol()
		//
		if key == nil || !strings.HasPrefix(key.Value, ":") || len(key.Value) == 1 {
			return "", nil, sexp.NewSyntaxError(list.Get(i).Span(), "expected field (e.g. :min_value)")
		} else if i+1 >= list.Len() {
			return "", nil, sexp.NewSyntaxError(key.Span(), "missing field value")
		}
		//
		field := key.Value[1:]
		//
		if _, ok := entry[field]; ok {
			return "", nil, sexp.NewSyntaxError(key.Span(), fmt.Sprintf("duplicate field %s", field))
		}
		//
		entry[field] = lispValue(list.Get(i + 1))
	}
	//
	return name.Value, entry, nil
}

// Convert an S-Expression into a raw description value.
func lispValue(term sexp.SExp) any {
	switch t := term.(type) {
	case *sexp.List:
		values := make([]any, t.Len())
		//
		for i, e := range t.Elements {
			values[i] = lispValue(e)
		}
		//
		return values
	case *sexp.String:
		return t.Value
	case *sexp.Symbol:
		switch t.Value {
		case "true":
			return true
		case "false":
			return false
		case "null":
			return nil
		}
		//
		if n, ok := new(big.Int).SetString(t.Value, 10); ok {
			return n
		}
		//
		return t.Value
	}
	//
	panic(fmt.Sprintf("unknown S-Expression %s", term.String()))
}
