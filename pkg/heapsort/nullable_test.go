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
	"testing"

	roaring "github.com/RoaringBitmap/roaring/roaring64"
	"github.com/smartystreets/goconvey/convey"
	"github.com/stretchr/testify/require"
)

func TestSortWithNulls(t *testing.T) {
	convey.Convey("TestSortWithNulls", t, func() {
		cases := []struct {
			vs    []int64
			nulls []uint64
			res   []int64
		}{
			{
				vs:    []int64{4, 14, 7, 2, 8, 1},
				nulls: []uint64{1, 3},
				res:   []int64{0, 0, 1, 4, 7, 8},
			},
			{
				vs:    []int64{5, 3},
				nulls: []uint64{0, 1},
				res:   []int64{0, 0},
			},
			{
				vs:    []int64{9},
				nulls: []uint64{0},
				res:   []int64{0},
			},
		}

		for _, c := range cases {
			nsp := roaring.New()
			nsp.AddMany(c.nulls)
			SortWithNulls(c.vs, nsp)
			convey.So(c.vs, convey.ShouldResemble, c.res)
			convey.So(nsp.GetCardinality(), convey.ShouldEqual, uint64(len(c.nulls)))
			for i := range c.nulls {
				convey.So(nsp.Contains(uint64(i)), convey.ShouldBeTrue)
			}
		}
	})
}

func TestSortWithNoNulls(t *testing.T) {
	vs := []int64{3, 1, 2}
	SortWithNulls(vs, nil)
	require.Equal(t, []int64{1, 2, 3}, vs)

	vs = []int64{3, 1, 2}
	SortWithNulls(vs, roaring.New())
	require.Equal(t, []int64{1, 2, 3}, vs)
}

func TestSortWithNullsStrings(t *testing.T) {
	vs := []string{"d", "b", "", "a"}
	nsp := roaring.New()
	nsp.Add(2)
	SortWithNulls(vs, nsp)
	require.Equal(t, []string{"", "a", "b", "d"}, vs)
	require.True(t, nsp.Contains(0))
	require.EqualValues(t, 1, nsp.GetCardinality())
}
