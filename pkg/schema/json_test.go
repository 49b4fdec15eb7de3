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
	"testing"

	"github.com/consensys/go-smartimputer/pkg/coltype"
)

func Test_Adapter_00(t *testing.T) {
	types := check_FromJson(t, `{
		"age":  {"type": "ConstrainedInt", "value": 0, "sparse": false, "min_value": 0, "max_value": 150},
		"even": {"type": "ConstrainedInt", "value": 2, "sparse": true, "multiple_of": 2, "description": "evens"},
		"dice": {"type": "ConstrainedInt", "value": 1, "sparse": false, "constrained_set": [1, 2, 3, 4, 5, 6]}
	}`)
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
	// Check validation behaviour carried through
	if types["age"].Validate(151) == nil || types["dice"].Validate(7) == nil || types["even"].Validate(3) == nil {
		t.Errorf("invalid value accepted")
	}
}

func Test_Adapter_01(t *testing.T) {
	// Null parameters are absent
	types := check_FromJson(t, `{"x": {"type": "ConstrainedInt", "value": 0, "sparse": false,
		"min_value": null, "constrained_set": [0], "description": null}}`)
	//
	check_ColumnType(t, types, "x", "ConstrainedInt(constrained_set={0})")
}

func Test_Adapter_02(t *testing.T) {
	check_AdapterError(t, `{"x": 1}`, MalformedEntry)
	check_AdapterError(t, `{"x": {"value": 1, "sparse": false}}`, MalformedEntry)
	check_AdapterError(t, `{"x": {"type": "ConstrainedFloat", "value": 1, "sparse": false}}`, UnknownType)
	check_AdapterError(t, `{"x": {"type": "ConstrainedInt", "value": 1, "sparse": false, "maximum": 2}}`,
		UnknownField)
}

func Test_Adapter_03(t *testing.T) {
	check_ConfigError(t, `{"x": {"type": "ConstrainedInt", "value": 1.5, "sparse": false}}`,
		coltype.TypeMismatch)
	check_ConfigError(t, `{"x": {"type": "ConstrainedInt", "value": 1, "sparse": "no"}}`,
		coltype.TypeMismatch)
	check_ConfigError(t, `{"x": {"type": "ConstrainedInt", "value": 1, "sparse": false, "min_value": "0"}}`,
		coltype.TypeMismatch)
	check_ConfigError(t, `{"x": {"type": "ConstrainedInt", "value": 1, "sparse": false, "constrained_set": [1, 2.5]}}`,
		coltype.TypeMismatch)
	check_ConfigError(t, `{"x": {"type": "ConstrainedInt", "value": 1, "sparse": false, "max_value": 1e100}}`,
		coltype.TypeMismatch)
	check_ConfigError(t, `{"x": {"type": "ConstrainedInt", "value": 1, "sparse": false, "min_value": 0,
		"constrained_set": [1]}}`, coltype.ConflictingConstraints)
}

func Test_Adapter_04(t *testing.T) {
	if _, err := FromJson([]byte(`[1, 2]`)); err == nil {
		t.Errorf("malformed description accepted")
	}
	//
	if _, err := FromJson([]byte(`null`)); err == nil {
		t.Errorf("null description accepted")
	}
	// Empty description is fine
	if types := check_FromJson(t, `{}`); len(types) != 0 {
		t.Errorf("unexpected column types %v", types)
	}
}

func Test_Adapter_05(t *testing.T) {
	// Adapter can be used through its interface
	var adapter Adapter = StandardAdapter{}
	//
	types, err := adapter.FromDescription(map[string]any{
		"x": map[string]any{"type": "ConstrainedInt", "value": int64(1), "sparse": false, "max_value": 3},
	})
	//
	if err != nil {
		t.Fatal(err)
	}
	//
	check_ColumnType(t, types, "x", "ConstrainedInt(max_value=3)")
}

// ===================================================================
// Test Helpers
// ===================================================================

func check_FromJson(t *testing.T, text string) map[string]coltype.ColumnType {
	types, err := FromJson([]byte(text))
	//
	if err != nil {
		t.Fatal(err)
	}
	//
	return types
}

func check_ColumnType(t *testing.T, types map[string]coltype.ColumnType, name string, expected string) {
	ct, ok := types[name]
	//
	if !ok {
		t.Errorf("missing column type %s", name)
	} else if ct.String() != expected {
		t.Errorf("expected %s, received %s", expected, ct.String())
	}
}

func check_AdapterError(t *testing.T, text string, kind AdapterErrorKind) {
	var aerr *AdapterError
	//
	_, err := FromJson([]byte(text))
	//
	if err == nil {
		t.Errorf("expected %s for %s", kind, text)
	} else if !errors.As(err, &aerr) {
		t.Errorf("unexpected error %v", err)
	} else if aerr.Kind != kind {
		t.Errorf("expected %s, received %s", kind, aerr.Kind)
	} else if aerr.Column != "x" {
		t.Errorf("unexpected column %s", aerr.Column)
	}
}

func check_ConfigError(t *testing.T, text string, kind coltype.ConfigErrorKind) {
	var cerr *coltype.ConfigError
	//
	_, err := FromJson([]byte(text))
	//
	if err == nil {
		t.Errorf("expected %s for %s", kind, text)
	} else if !errors.As(err, &cerr) {
		t.Errorf("unexpected error %v", err)
	} else if cerr.Kind != kind {
		t.Errorf("expected %s, received %s", kind, cerr.Kind)
	}
}
