// SPDX-License-Identifier: MIT
// Command tsgen builds synthetic time series from YAML specs.
//
// main.go — entry point.

package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
