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
package table

import (
	"fmt"

	"github.com/golang/snappy"
)

// FromSnappyJson parses a table expressed in JSON notation which has been
// compressed using the snappy block format.
func FromSnappyJson(data []byte) (*Table, error) {
	bytes, err := snappy.Decode(nil, data)
	//
	if err != nil {
		return nil, fmt.Errorf("snappy: %w", err)
	}
	//
	return FromJson(bytes)
}
