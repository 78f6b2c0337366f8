// Copyright 2022 Matrix Origin
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package heapsort

import (
	roaring "github.com/RoaringBitmap/roaring/roaring64"
)

// nulls collate ahead of every non-null value
const nullFirst = true

// SortWithNulls sorts a column whose null rows are marked in nsp. The
// non-null values are heap sorted; null slots compact to one end of the
// column (the null-first end), their values reset to the zero value,
// and nsp is rewritten in place to cover the new null positions.
func SortWithNulls[T OrderedT](vs []T, nsp *roaring.Bitmap) {
	if nsp == nil || nsp.IsEmpty() {
		Sort(vs)
		return
	}

	notNull := make([]T, 0, len(vs))
	for i, v := range vs {
		if !nsp.Contains(uint64(i)) {
			notNull = append(notNull, v)
		}
	}
	Sort(notNull)

	var zero T
	nullCnt := len(vs) - len(notNull)
	newNulls := roaring.New()
	if nullFirst {
		for i := 0; i < nullCnt; i++ {
			vs[i] = zero
			newNulls.AddInt(i)
		}
		copy(vs[nullCnt:], notNull)
	} else {
		copy(vs, notNull)
		for i := len(notNull); i < len(vs); i++ {
			vs[i] = zero
			newNulls.AddInt(i)
		}
	}
	newNulls.RunOptimize()
	nsp.Clear()
	nsp.Or(newNulls)
}
