// SPDX-License-Identifier: MIT

// Command qsim runs small quantum circuits on the state-vector simulator.
//
//	qsim run --qubits 2 --op H:0 --op CX:0:1 --shots 1024 --seed 7
//	qsim run --program bell.yaml --program ghz.yaml --json
//	qsim gates
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "qsim:", err)
		os.Exit(1)
	}
}
