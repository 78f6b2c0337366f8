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

// Merge combines ascending runs into one ascending slice. Each run must
// already be sorted, e.g. by Sort.
func Merge[T OrderedT](runs [][]T) []T {
	return MergeFunc(runs, NumericLess[T])
}

// MergeFunc merges runs sorted by less through a k-sized min-heap: the
// heap is seeded with the head of every run, then each pop appends the
// smallest pending element and pushes its successor from the same run.
// Empty runs are skipped.
func MergeFunc[T any](runs [][]T, less lessFunc[T]) []T {
	total := 0
	for _, run := range runs {
		total += len(run)
	}
	merged := make([]T, 0, total)

	heap := newHeapSlice(len(runs), less)
	for i, run := range runs {
		if len(run) == 0 {
			continue
		}
		heap.s = append(heap.s, heapElem[T]{data: run[0], src: uint32(i), next: 1})
	}
	heapInit(heap)

	for heap.Len() > 0 {
		top := heapPop(heap)
		merged = append(merged, top.data)
		if int(top.next) < len(runs[top.src]) {
			heapPush(heap, heapElem[T]{data: runs[top.src][top.next], src: top.src, next: top.next + 1})
		}
	}
	return merged
}

func heapInit[T any](h *heapSlice[T]) {
	n := h.Len()
	for i := n/2 - 1; i >= 0; i-- {
		heapDown(h, i, n)
	}
}

func heapPush[T any](h *heapSlice[T], elem heapElem[T]) {
	h.s = append(h.s, elem)
	heapUp(h, h.Len()-1)
}

func heapPop[T any](h *heapSlice[T]) heapElem[T] {
	n := h.Len() - 1
	h.Swap(0, n)
	top := h.s[n]
	h.s = h.s[:n]
	heapDown(h, 0, n)
	return top
}

func heapUp[T any](h *heapSlice[T], j int) {
	for {
		i := (j - 1) / 2 // parent
		if i == j || !h.Less(j, i) {
			break
		}
		h.Swap(i, j)
		j = i
	}
}

func heapDown[T any](h *heapSlice[T], i, n int) {
	for {
		j1 := 2*i + 1
		if j1 >= n {
			break
		}
		j := j1
		if j2 := j1 + 1; j2 < n && h.Less(j2, j1) {
			j = j2
		}
		if !h.Less(j, i) {
			break
		}
		h.Swap(i, j)
		i = j
	}
}
