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
package set

import (
	"math/rand"
	"testing"
)

func Test_SortedSet_00(t *testing.T) {
	set := NewSortedSet[int64]()
	//
	if set.Len() != 0 || set.Contains(0) {
		t.Errorf("expected empty set, received %s", set.String())
	}
}

func Test_SortedSet_01(t *testing.T) {
	set := NewSortedSet[int64](3, 1, 2, 3, 1)
	//
	check_SortedSet_Items(t, set, 1, 2, 3)
}

func Test_SortedSet_02(t *testing.T) {
	set := NewSortedSet[int64](10, -5, 0, 10, -7)
	//
	check_SortedSet_Items(t, set, -7, -5, 0, 10)
}

func Test_SortedSet_03(t *testing.T) {
	set := NewSortedSet[int64](1, 2, 3)
	//
	if set.String() != "{1,2,3}" {
		t.Errorf("unexpected string %s", set.String())
	}
}

func Test_SortedSet_04(t *testing.T) {
	check_SortedSet_Random(t, 100, 32)
	check_SortedSet_Random(t, 1000, 64)
	check_SortedSet_Random(t, 10000, 1024)
}

// ===================================================================
// Test Helpers
// ===================================================================

func check_SortedSet_Items(t *testing.T, set *SortedSet[int64], expected ...int64) {
	items := set.Items()
	//
	if len(items) != len(expected) {
		t.Fatalf("unexpected number of items (%d vs %d)", len(items), len(expected))
	}
	//
	for i := range items {
		if items[i] != expected[i] {
			t.Errorf("expected %v, received %v", expected, items)
		}
		//
		if !set.Contains(expected[i]) {
			t.Errorf("missing item %d", expected[i])
		}
	}
}

func check_SortedSet_Random(t *testing.T, n int, m int64) {
	var (
		rng      = rand.New(rand.NewSource(int64(n)))
		items    = make([]int64, n)
		inserted = make(map[int64]bool)
	)
	//
	for i := range items {
		items[i] = rng.Int63n(m)
		inserted[items[i]] = true
	}
	//
	set := NewSortedSet(items...)
	//
	if set.Len() != len(inserted) {
		t.Errorf("unexpected number of items (%d vs %d)", set.Len(), len(inserted))
	}
	//
	for i := int64(0); i < m; i++ {
		if set.Contains(i) != inserted[i] {
			t.Errorf("unmatched item %d", i)
		}
	}
	// Check ordering
	items = set.Items()
	for i := 1; i < len(items); i++ {
		if items[i-1] >= items[i] {
			t.Errorf("items out of order at %d", i)
		}
	}
}
