// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvqsim/gates"
)

func newGatesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "gates",
		Short: "List the gate library",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range gates.All() {
				m, err := gates.Matrix(name)
				if err != nil {
					return err
				}
				fmt.Fprintf(a.stdout, "%s\n", name)
				for _, line := range strings.Split(strings.TrimRight(m.String(), "\n"), "\n") {
					fmt.Fprintf(a.stdout, "  %s\n", line)
				}
			}
			fmt.Fprintf(a.stdout, "CX\n  control:target, flips target when control is 1\n")

			return nil
		},
	}
}
