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
	"context"
	"fmt"
	"os"
	"path"
	"strings"
)

// ReadFile reads a table from a file, using a parser determined by the
// extension of the filename.  Supported formats are JSON (".json"),
// snappy-compressed JSON (".sz") and Parquet (".parquet").
func ReadFile(ctx context.Context, filename string) (*Table, error) {
	ext := strings.ToLower(path.Ext(filename))
	//
	switch ext {
	case ".json", ".sz":
		bytes, err := os.ReadFile(filename)
		if err != nil {
			return nil, err
		} else if ext == ".sz" {
			return FromSnappyJson(bytes)
		}
		//
		return FromJson(bytes)
	case ".parquet":
		f, err := os.Open(filename)
		if err != nil {
			return nil, err
		}
		//
		defer f.Close()
		//
		return ReadParquet(ctx, f)
	default:
		return nil, fmt.Errorf("unknown table file format: %s", ext)
	}
}
