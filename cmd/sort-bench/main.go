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

// sort-bench times heapsort.Sort over configurable input sizes and
// distributions. Configuration comes from a toml file, see
// sort-bench.toml for the defaults.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/matrixorigin/heapsort/pkg/logutil"
)

func main() {
	var configFile string
	flag.StringVar(&configFile, "config", "", "benchmark configuration file")
	flag.Parse()

	params, err := loadParameters(configFile)
	if err != nil {
		fmt.Printf("load benchmark configuration failed. error:%v \n", err)
		os.Exit(-1)
	}
	logutil.SetupGlobalLogger(&params.Log)

	if err := run(params); err != nil {
		logutil.Errorf("benchmark failed. error:%v", err)
		os.Exit(-1)
	}
}
