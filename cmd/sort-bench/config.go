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

	"github.com/BurntSushi/toml"
	"github.com/matrixorigin/heapsort/pkg/logutil"
)

type Parameters struct {
	// Sizes is the element counts to sort, one benchmark case each
	Sizes []int `toml:"sizes"`
	// Rounds repeats every case to smooth out noise
	Rounds int `toml:"rounds"`
	// Limit bounds the random values: they fall in [1, limit]
	Limit int64 `toml:"limit"`
	// Distributions selects the input shapes to benchmark
	Distributions []string `toml:"distributions"`
	// Workers sizes the pool running independent cases; 1 means serial
	Workers int `toml:"workers"`
	// Seed makes runs reproducible when non-zero
	Seed int64 `toml:"seed"`

	Log logutil.LogConfig `toml:"log"`
}

func defaultParameters() *Parameters {
	return &Parameters{
		Sizes:         []int{100000, 1000000, 10000000},
		Rounds:        3,
		Limit:         1000,
		Distributions: []string{"random", "sorted", "reversed", "duplicate"},
		Workers:       1,
		Log:           logutil.LogConfig{Level: "info", Format: "console"},
	}
}

func loadParameters(path string) (*Parameters, error) {
	params := defaultParameters()
	if path != "" {
		if _, err := toml.DecodeFile(path, params); err != nil {
			return nil, fmt.Errorf("decode %s: %w", path, err)
		}
	}
	if err := params.validate(); err != nil {
		return nil, err
	}
	return params, nil
}

func (params *Parameters) validate() error {
	if len(params.Sizes) == 0 {
		return fmt.Errorf("no sizes configured")
	}
	for _, size := range params.Sizes {
		if size < 0 {
			return fmt.Errorf("negative size %d", size)
		}
	}
	if params.Rounds < 1 {
		return fmt.Errorf("rounds must be at least 1, got %d", params.Rounds)
	}
	if params.Limit < 1 {
		return fmt.Errorf("limit must be at least 1, got %d", params.Limit)
	}
	if params.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", params.Workers)
	}
	for _, distribution := range params.Distributions {
		switch distribution {
		case "random", "sorted", "reversed", "duplicate":
		default:
			return fmt.Errorf("unknown distribution %q", distribution)
		}
	}
	return nil
}
