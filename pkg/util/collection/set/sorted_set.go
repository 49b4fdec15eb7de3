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
	"cmp"
	"fmt"
	"slices"
	"sort"
	"strings"
)

// SortedSet is an array of elements which is maintained in sorted order, and
// which contains no duplicates.  Membership is determined by binary search.
type SortedSet[T cmp.Ordered] []T

// NewSortedSet returns a sorted set initialised with the given elements, which
// need not be sorted and may contain duplicates.
func NewSortedSet[T cmp.Ordered](elements ...T) *SortedSet[T] {
	data := slices.Clone(elements)
	slices.Sort(data)
	data = slices.Compact(data)
	//
	set := SortedSet[T](data)
	//
	return &set
}

// Len returns the number of elements in this set.
func (p *SortedSet[T]) Len() int {
	return len(*p)
}

// Contains returns true if a given element is in the set.
//
//nolint:revive
func (p *SortedSet[T]) Contains(element T) bool {
	data := *p
	// Find index where element either does occur, or should occur.
	i := sort.Search(len(data), func(i int) bool {
		return element <= data[i]
	})
	// Check whether item existed or not.
	return i < len(data) && data[i] == element
}

// Items returns a copy of the elements in this set, in ascending order.
func (p *SortedSet[T]) Items() []T {
	return slices.Clone(*p)
}

func (p *SortedSet[T]) String() string {
	var builder strings.Builder
	//
	builder.WriteString("{")
	//
	for i, e := range *p {
		if i != 0 {
			builder.WriteString(",")
		}
		//
		builder.WriteString(fmt.Sprintf("%v", e))
	}
	//
	builder.WriteString("}")
	//
	return builder.String()
}
