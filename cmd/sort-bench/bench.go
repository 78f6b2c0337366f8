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

package main

import (
	"fmt"
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"github.com/panjf2000/ants/v2"
	"go.uber.org/zap"

	"github.com/matrixorigin/heapsort/pkg/heapsort"
	"github.com/matrixorigin/heapsort/pkg/logutil"
)

type benchCase struct {
	distribution string
	size         int
	round        int
	seed         int64
}

func generate(distribution string, size int, limit int64, seed int64) []int64 {
	r := rand.New(rand.NewSource(seed))
	vs := make([]int64, size)
	switch distribution {
	case "sorted":
		for i := range vs {
			vs[i] = int64(i + 1)
		}
	case "reversed":
		for i := range vs {
			vs[i] = int64(size - i)
		}
	case "duplicate":
		// a handful of distinct values, lots of ties
		for i := range vs {
			vs[i] = 1 + r.Int63n(4)
		}
	default: // random
		for i := range vs {
			vs[i] = 1 + r.Int63n(limit)
		}
	}
	return vs
}

func runCase(c benchCase, limit int64) time.Duration {
	vs := generate(c.distribution, c.size, limit, c.seed)
	t0 := time.Now()
	heapsort.Sort(vs)
	elapsed := time.Since(t0)
	for i := 1; i < len(vs); i++ {
		if vs[i] < vs[i-1] {
			panic(fmt.Sprintf("output out of order at %d, case %+v", i, c))
		}
	}
	return elapsed
}

func run(params *Parameters) error {
	seed := params.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	var failures int32
	pool, err := ants.NewPool(params.Workers, ants.WithPanicHandler(func(v interface{}) {
		atomic.AddInt32(&failures, 1)
		logutil.Errorf("benchmark case panicked: %v", v)
	}))
	if err != nil {
		return fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	var wg sync.WaitGroup
	for _, distribution := range params.Distributions {
		for _, size := range params.Sizes {
			for round := 0; round < params.Rounds; round++ {
				c := benchCase{
					distribution: distribution,
					size:         size,
					round:        round,
					seed:         seed + int64(round),
				}
				wg.Add(1)
				if err := pool.Submit(func() {
					defer wg.Done()
					elapsed := runCase(c, params.Limit)
					logutil.Info("case done",
						zap.String("distribution", c.distribution),
						zap.Int("size", c.size),
						zap.Int("round", c.round),
						zap.Duration("elapsed", elapsed))
				}); err != nil {
					wg.Done()
					return fmt.Errorf("submit case %+v: %w", c, err)
				}
			}
		}
	}
	wg.Wait()

	if n := atomic.LoadInt32(&failures); n > 0 {
		return fmt.Errorf("%d benchmark cases failed", n)
	}
	return nil
}
