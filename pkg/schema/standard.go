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
	"sort"

	"github.com/consensys/go-smartimputer/pkg/coltype"
	"github.com/consensys/go-smartimputer/pkg/util"
	log "github.com/sirupsen/logrus"
)

// StandardAdapter converts descriptions into column types.  A description maps
// each column name to an entry declaring a column type along with its
// parameters, where the "type" field identifies the column type.  For example,
// when parsed from JSON:
//
//	{
//	  "age":  {"type": "ConstrainedInt", "value": 0, "sparse": false, "min_value": 0, "max_value": 150},
//	  "dice": {"type": "ConstrainedInt", "value": 1, "sparse": false, "constrained_set": [1, 2, 3, 4, 5, 6]}
//	}
//
// Optional parameters which are nil are treated as absent.
type StandardAdapter struct{}

// FromDescription converts a parsed description into a column type for each
// described column.  Columns are processed in name order, so the error reported
// for a description with several faults is deterministic.
func (p StandardAdapter) FromDescription(description map[string]any) (map[string]coltype.ColumnType, error) {
	var (
		types = make(map[string]coltype.ColumnType, len(description))
		names = make([]string, 0, len(description))
	)
	//
	for name := range description {
		names = append(names, name)
	}
	//
	sort.Strings(names)
	//
	for _, name := range names {
		entry, ok := description[name].(map[string]any)
		//
		if !ok {
			return nil, &AdapterError{MalformedEntry, name, "column entry must be an object", nil}
		}
		//
		ct, err := columnTypeFromEntry(name, entry)
		if err != nil {
			return nil, err
		}
		//
		log.Debugf("column %s declared as %s", name, ct.String())
		//
		types[name] = ct
	}
	//
	return types, nil
}

func columnTypeFromEntry(column string, entry map[string]any) (coltype.ColumnType, error) {
	kind, ok := entry["type"].(string)
	//
	switch {
	case !ok:
		return nil, &AdapterError{MalformedEntry, column, "missing or malformed \"type\" field", nil}
	case kind == coltype.CONSTRAINED_INT:
		return constrainedIntFromEntry(column, entry)
	default:
		return nil, &AdapterError{UnknownType, column, fmt.Sprintf("unknown column type \"%s\"", kind), nil}
	}
}

//nolint:revive
func constrainedIntFromEntry(column string, entry map[string]any) (coltype.ColumnType, error) {
	var (
		decl   coltype.Declaration
		err    error
		fields = make([]string, 0, len(entry))
	)
	//
	for field := range entry {
		fields = append(fields, field)
	}
	// Process fields in a deterministic order
	sort.Strings(fields)
	//
	for _, field := range fields {
		value := entry[field]
		//
		switch field {
		case "type":
			// already handled
		case "value":
			decl.Value = value
		case "sparse":
			decl.Sparse = value
		case "description":
			if value == nil {
				continue
			} else if text, ok := value.(string); ok {
				decl.Description = text
			} else {
				err = mismatch(field, "a string", value)
			}
		case "min_value":
			decl.MinValue, err = optionalInt(field, value)
		case "max_value":
			decl.MaxValue, err = optionalInt(field, value)
		case "multiple_of":
			decl.MultipleOf, err = optionalInt(field, value)
		case "constrained_set":
			decl.ConstrainedSet, err = optionalIntSet(field, value)
		default:
			return nil, &AdapterError{UnknownField, column, fmt.Sprintf("unknown field \"%s\"", field), nil}
		}
		//
		if err != nil {
			return nil, &AdapterError{InvalidDeclaration, column, "", err}
		}
	}
	//
	ct, err := coltype.NewConstrainedInteger(decl)
	//
	if err != nil {
		return nil, &AdapterError{InvalidDeclaration, column, "", err}
	}
	//
	return ct, nil
}

// Extract an optional int64 parameter, where null means absent.
func optionalInt(field string, value any) (util.Option[int64], error) {
	if value == nil {
		return util.None[int64](), nil
	}
	//
	n, err := toInt64(field, value)
	//
	if err != nil {
		return util.None[int64](), err
	}
	//
	return util.Some(n), nil
}

// Extract an optional set of int64 values, where null means absent.
func optionalIntSet(field string, value any) (util.Option[[]int64], error) {
	if value == nil {
		return util.None[[]int64](), nil
	}
	//
	items, ok := value.([]any)
	if !ok {
		return util.None[[]int64](), mismatch(field, "an array of integers", value)
	}
	//
	elements := make([]int64, len(items))
	//
	for i, item := range items {
		n, err := toInt64(field, item)
		if err != nil {
			return util.None[[]int64](), err
		}
		//
		elements[i] = n
	}
	//
	return util.Some(elements), nil
}

func toInt64(field string, value any) (int64, error) {
	if n, ok := coltype.AsInteger(value); ok && n.IsInt64() {
		return n.Int64(), nil
	}
	//
	return 0, mismatch(field, "a 64-bit integer", value)
}

func mismatch(field string, expected string, value any) error {
	return &coltype.ConfigError{Kind: coltype.TypeMismatch, Field: field,
		Message: fmt.Sprintf("%s must be %s (got %v)", field, expected, value)}
}
