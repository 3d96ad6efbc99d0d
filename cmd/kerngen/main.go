// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command kerngen generates the fixed-arity code behind package kern.
//
// Go generics have no variadic type parameters, so every arity of a type
// sequence, a view tuple and a heterogeneous tuple is spelled out. kerngen
// writes those declarations from one description, unrolling per-slot code
// instead of looping at run time:
//
//	kerngen arity --max 6 --pkg kern --out kern
//
// It also turns a YAML list of kernel signatures into typed bind functions
// with the slot byte offsets as constants:
//
//	kerngen bind --config kernels.yaml --out kernels.gen.go
//
// Any descriptor lookup that fails (an unknown element type, an index past
// the generated arity) fails generation, so it surfaces at go generate time.
package main

import (
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"
)

var logger = log.New(io.Discard, "kerngen: ", 0)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool
	root := &cobra.Command{
		Use:          "kerngen",
		Short:        "Generate fixed-arity kernel binding code",
		SilenceUsage: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			if verbose {
				logger.SetOutput(os.Stderr)
			}
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log every generated file")
	root.AddCommand(newArityCmd(), newBindCmd())
	return root
}
