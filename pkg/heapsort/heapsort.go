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

// Package heapsort sorts slices of ordered elements through an implicit
// binary max-heap laid out over the slice itself: for index i the
// children live at 2i+1 and 2i+2, the parent at (i-1)/2. Building the
// heap and repeatedly extracting the maximum gives O(n log n) worst-case
// comparisons with no extra buffer.
package heapsort

// Sorter sorts a private copy of its input eagerly at construction and
// hands the result back through Sorted. It is a one-shot transformer:
// there is no mutating API after New returns, and a second input needs
// a second Sorter.
type Sorter[T OrderedT] struct {
	vs []T
}

// New copies vs and sorts the copy ascending. The caller's slice is
// never touched.
func New[T OrderedT](vs []T) *Sorter[T] {
	s := &Sorter[T]{vs: make([]T, len(vs))}
	copy(s.vs, vs)
	Sort(s.vs)
	return s
}

// Sorted returns the sorted elements. A non-descending result is a
// post-condition of construction; any violation is a defect in the sift
// logic rather than bad input, so Sorted panics instead of returning an
// error.
func (s *Sorter[T]) Sorted() []T {
	for i := 1; i < len(s.vs); i++ {
		if s.vs[i] < s.vs[i-1] {
			panic("heapsort: output out of order")
		}
	}
	return s.vs
}

// Sort sorts vs ascending in place. It builds a max-heap over the whole
// slice, then n-1 times swaps the root (current maximum) behind the
// active region and sifts the new root back down. The active region
// [0, size) shrinks by one per extraction; everything at size and
// beyond is finalized.
func Sort[T OrderedT](vs []T) {
	buildMaxHeap(vs)
	size := len(vs)
	for i := 0; i < len(vs)-1; i++ {
		vs[0], vs[size-1] = vs[size-1], vs[0]
		size--
		siftDown(vs, 0, size)
	}
}

// buildMaxHeap establishes the heap invariant bottom-up. Indices past
// n/2-1 are leaves and hold the invariant trivially; sifting the
// internal nodes high-to-low guarantees both subtrees of a node are
// already heaps when the node itself is sifted.
func buildMaxHeap[T OrderedT](vs []T) {
	n := len(vs)
	for i := n/2 - 1; i >= 0; i-- {
		siftDown(vs, i, n)
	}
}

// siftDown restores the heap invariant at root, assuming both child
// subtrees within [0, size) already hold it. It walks down the implicit
// tree, swapping with the larger child, until it reaches a leaf or a
// position whose children are no greater.
func siftDown[T OrderedT](vs []T, root, size int) {
	for {
		left := 2*root + 1
		if !isActiveIndex(left, size) {
			// no children
			return
		}
		max := largerChild(vs, left, left+1, size)
		if vs[max] <= vs[root] {
			return
		}
		vs[root], vs[max] = vs[max], vs[root]
		root = max
	}
}

// largerChild picks the child to compare the parent against. Ties go to
// the left child; the choice is unobservable in the sorted output but
// keeps the internal ordering deterministic.
func largerChild[T OrderedT](vs []T, left, right, size int) int {
	if isActiveIndex(right, size) && vs[left] < vs[right] {
		return right
	}
	return left
}

// isActiveIndex is the single guard keeping heap operations off the
// finalized tail: indices at size and beyond are already sorted and
// must never be read or written again.
func isActiveIndex(i, size int) bool {
	return i < size
}
