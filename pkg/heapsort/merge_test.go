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
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMerge(t *testing.T) {
	merged := Merge([][]int{
		{1, 4, 7},
		{2, 5, 8},
		{3, 6, 9},
	})
	require.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9}, merged)
}

func TestMergeEmptyRuns(t *testing.T) {
	require.Empty(t, Merge[int](nil))
	require.Empty(t, Merge([][]int{{}, {}}))
	require.Equal(t, []int{1, 2}, Merge([][]int{{}, {1, 2}, {}}))
}

func TestMergeRandom(t *testing.T) {
	rand.Seed(42)
	for round := 0; round < 20; round++ {
		nRuns := 1 + rand.Intn(8)
		runs := make([][]int64, nRuns)
		all := make([]int64, 0)
		for i := range runs {
			runs[i] = make([]int64, rand.Intn(100))
			for j := range runs[i] {
				runs[i][j] = rand.Int63() % 500
			}
			Sort(runs[i])
			all = append(all, runs[i]...)
		}
		Sort(all)
		require.Equal(t, all, Merge(runs))
	}
}

func TestMergeFuncDesc(t *testing.T) {
	greater := func(a, b int) bool { return a > b }
	merged := MergeFunc([][]int{
		{9, 5, 1},
		{8, 4},
	}, greater)
	require.Equal(t, []int{9, 8, 5, 4, 1}, merged)
}

func TestMergeFuncBool(t *testing.T) {
	merged := MergeFunc([][]bool{
		{false, true},
		{false, false, true},
	}, BoolLess)
	require.Equal(t, []bool{false, false, false, true, true}, merged)
}

type version struct {
	major, minor int
}

func (a version) Lt(b version) bool {
	if a.major != b.major {
		return a.major < b.major
	}
	return a.minor < b.minor
}

func TestMergeFuncLtType(t *testing.T) {
	merged := MergeFunc([][]version{
		{{1, 0}, {2, 1}},
		{{1, 3}, {2, 0}},
	}, LtTypeLess[version])
	require.Equal(t, []version{{1, 0}, {1, 3}, {2, 0}, {2, 1}}, merged)
}
