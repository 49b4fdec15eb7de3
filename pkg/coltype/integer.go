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
	"encoding/json"
	"math/big"
)

// AsInteger attempts to interpret a given value as an integer.  Any of Go's
// builtin integer types are accepted, along with big integers and JSON numbers
// which have an integral representation.  Booleans, floats (even those with
// integral values), strings and nil are not integers.  The returned integer is
// always freshly allocated, hence can be modified without affecting the
// original value.
func AsInteger(value any) (*big.Int, bool) {
	switch v := value.(type) {
	case int:
		return big.NewInt(int64(v)), true
	case int8:
		return big.NewInt(int64(v)), true
	case int16:
		return big.NewInt(int64(v)), true
	case int32:
		return big.NewInt(int64(v)), true
	case int64:
		return big.NewInt(v), true
	case uint:
		return new(big.Int).SetUint64(uint64(v)), true
	case uint8:
		return new(big.Int).SetUint64(uint64(v)), true
	case uint16:
		return new(big.Int).SetUint64(uint64(v)), true
	case uint32:
		return new(big.Int).SetUint64(uint64(v)), true
	case uint64:
		return new(big.Int).SetUint64(v), true
	case *big.Int:
		if v == nil {
			return nil, false
		}
		//
		return new(big.Int).Set(v), true
	case json.Number:
		// Only decimal integer literals are accepted here, thus "1.0" and "1e3"
		// are rejected.
		return new(big.Int).SetString(string(v), 10)
	default:
		return nil, false
	}
}
