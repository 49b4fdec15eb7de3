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
	"errors"
	"math/big"
	"testing"

	"github.com/consensys/go-smartimputer/pkg/coltype"
	"github.com/consensys/go-smartimputer/pkg/sexp"
)

func Test_Lisp_00(t *testing.T) {
	types := check_FromLisp(t, `
		; people
		(defcolumn age ConstrainedInt :value 0 :sparse false :min_value 0 :max_value 150)
		(defcolumn even ConstrainedInt :value 2 :sparse true :multiple_of 2 :description "evens")
		(defcolumn dice ConstrainedInt :value 1 :sparse false :constrained_set (1 2 3 4 5 6))`)
	//
	if len(types) != 3 {
		t.Fatalf("unexpected number of column types %d", len(types))
	}
	//
	check_ColumnType(t, types, "age", "ConstrainedInt(min_value=0,max_value=150)")
	check_ColumnType(t, types, "even", "ConstrainedInt(multiple_of=2,sparse)")
	check_ColumnType(t, types, "dice", "ConstrainedInt(constrained_set={1,2,3,4,5,6})")
	//
	if types["even"].Description() != "evens" {
		t.Errorf("unexpected description %s", types["even"].Description())
	}
}

func Test_Lisp_01(t *testing.T) {
	description, err := ParseLisp(`(defcolumn x ConstrainedInt :value -3 :sparse true :min_value null :extra (a "b"))`)
	//
	if err != nil {
		t.Fatal(err)
	}
	//
	entry := description["x"].(map[string]any)
	//
	if entry["type"] != "ConstrainedInt" || entry["sparse"] != true || entry["min_value"] != nil {
		t.Errorf("unexpected entry %v", entry)
	} else if n, ok := entry["value"].(*big.Int); !ok || n.Int64() != -3 {
		t.Errorf("unexpected value %v", entry["value"])
	} else if extra, ok := entry["extra"].([]any); !ok || len(extra) != 2 || extra[0] != "a" || extra[1] != "b" {
		t.Errorf("unexpected extra %v", entry["extra"])
	}
}

func Test_Lisp_02(t *testing.T) {
	// Errors from the adapter are carried through.
	_, err := FromLisp(`(defcolumn x ConstrainedInt :value 1 :sparse false :maximum 2)`)
	//
	var aerr *AdapterError
	//
	if !errors.As(err, &aerr) || aerr.Kind != UnknownField {
		t.Errorf("expected unknown field, received %v", err)
	}
	//
	_, err = FromLisp(`(defcolumn x ConstrainedInt :value one :sparse false)`)
	//
	var cerr *coltype.ConfigError
	//
	if !errors.As(err, &cerr) || cerr.Kind != coltype.TypeMismatch {
		t.Errorf("expected type mismatch, received %v", err)
	}
}

func Test_Lisp_Err_00(t *testing.T) {
	check_LispError(t, `(defcolumn x)`, 0)
	check_LispError(t, `x`, 0)
	check_LispError(t, `(column x ConstrainedInt)`, 0)
	check_LispError(t, `(defcolumn (x) ConstrainedInt)`, 11)
	check_LispError(t, `(defcolumn x "int")`, 13)
}

func Test_Lisp_Err_01(t *testing.T) {
	check_LispError(t, `(defcolumn x ConstrainedInt value 1)`, 28)
	check_LispError(t, `(defcolumn x ConstrainedInt :value)`, 28)
	check_LispError(t, `(defcolumn x ConstrainedInt : 1)`, 28)
	check_LispError(t, `(defcolumn x ConstrainedInt :value 1 :value 2)`, 37)
	check_LispError(t, "(defcolumn x ConstrainedInt)\n(defcolumn x ConstrainedInt)", 40)
	check_LispError(t, `(defcolumn x ConstrainedInt`, 0)
}

// ===================================================================
// Test Helpers
// ===================================================================

func check_FromLisp(t *testing.T, text string) map[string]coltype.ColumnType {
	types, err := FromLisp(text)
	//
	if err != nil {
		t.Fatal(err)
	}
	//
	return types
}

func check_LispError(t *testing.T, text string, start int) {
	var serr *sexp.SyntaxError
	//
	_, err := ParseLisp(text)
	//
	if err == nil {
		t.Errorf("expected syntax error for %s", text)
	} else if !errors.As(err, &serr) {
		t.Errorf("unexpected error %v", err)
	} else if serr.Span().Start() != start {
		t.Errorf("expected error at %d, received %d for %s", start, serr.Span().Start(), text)
	}
}
