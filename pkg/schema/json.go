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
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/consensys/go-smartimputer/pkg/coltype"
)

// ParseJson parses a JSON description into its raw structured form, suitable
// for passing to an adapter.  Numbers are retained as json.Number, so integer
// parameters are recovered exactly.
func ParseJson(data []byte) (map[string]any, error) {
	var description map[string]any
	//
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()
	//
	if err := decoder.Decode(&description); err != nil {
		return nil, err
	} else if description == nil {
		return nil, fmt.Errorf("schema description must be an object")
	}
	//
	return description, nil
}

// FromJson parses a JSON description and converts it into column types.
func FromJson(data []byte) (map[string]coltype.ColumnType, error) {
	description, err := ParseJson(data)
	//
	if err != nil {
		return nil, err
	}
	//
	return StandardAdapter{}.FromDescription(description)
}
