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
	"golang.org/x/exp/constraints"
)

// OrderedT covers every element type the sorter accepts: anything the
// language orders with <.
type OrderedT interface {
	constraints.Ordered
}

// Lter is for element types that carry their own ordering instead of <,
// e.g. decimals and uuids.
type Lter[T any] interface {
	Lt(b T) bool
}

type lessFunc[T any] func(a, b T) bool

func NumericLess[T OrderedT](a, b T) bool { return a < b }
func BoolLess(a, b bool) bool             { return !a && b }
func LtTypeLess[T Lter[T]](a, b T) bool   { return a.Lt(b) }

type heapElem[T any] struct {
	data T
	src  uint32
	next uint32
}

type heapSlice[T any] struct {
	lessFunc lessFunc[T]
	s        []heapElem[T]
}

func newHeapSlice[T any](n int, lessFunc lessFunc[T]) *heapSlice[T] {
	return &heapSlice[T]{
		lessFunc: lessFunc,
		s:        make([]heapElem[T], 0, n),
	}
}

func (x *heapSlice[T]) Less(i, j int) bool { return x.lessFunc(x.s[i].data, x.s[j].data) }
func (x *heapSlice[T]) Swap(i, j int)      { x.s[i], x.s[j] = x.s[j], x.s[i] }
func (x *heapSlice[T]) Len() int           { return len(x.s) }
