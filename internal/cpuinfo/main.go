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

// Package main prints the platform facts that fix kernel offsets and
// scratch placement: type sizes, the cache line size and the layout policy.
package main

import (
	"fmt"
	"os"
	"runtime"

	"golang.org/x/sys/cpu"

	"github.com/ajroetker/go-elemwise/kern"
	"github.com/ajroetker/go-elemwise/typelist"
)

func main() {
	fmt.Printf("GOOS: %s\n", runtime.GOOS)
	fmt.Printf("GOARCH: %s\n", runtime.GOARCH)
	fmt.Printf("NumCPU: %d\n", runtime.NumCPU())
	fmt.Println()

	fmt.Printf("Cache line size: %d bytes\n", kern.CacheLineSize())
	env, set := os.LookupEnv(kern.LayoutEnv)
	if !set {
		env = "(unset)"
	}
	fmt.Printf("%s: %s\n", kern.LayoutEnv, env)
	fmt.Printf("Layout policy: %s\n", kern.CurrentLayoutPolicy())
	fmt.Println()

	printElementTypes()
	fmt.Println()

	switch runtime.GOARCH {
	case "arm64":
		printARM64Features()
	case "amd64":
		printAMD64Features()
	}
}

func printElementTypes() {
	l := typelist.New(
		typelist.Of[bool](),
		typelist.Of[int8](), typelist.Of[int16](), typelist.Of[int32](), typelist.Of[int64](), typelist.Of[int](),
		typelist.Of[uint8](), typelist.Of[uint16](), typelist.Of[uint32](), typelist.Of[uint64](), typelist.Of[uint](),
		typelist.Of[uintptr](),
		typelist.Of[float32](), typelist.Of[float64](),
		typelist.Of[complex64](), typelist.Of[complex128](),
	)
	fmt.Println("=== element types ===")
	fmt.Printf("  %-11s %5s %6s\n", "type", "size", "align")
	for _, t := range l.All() {
		fmt.Printf("  %-11s %5d %6d\n", t.Name, t.Size, t.Align)
	}
}

func printARM64Features() {
	fmt.Println("=== golang.org/x/sys/cpu.ARM64 ===")
	fmt.Printf("  HasASIMD:   %v\n", cpu.ARM64.HasASIMD)
	fmt.Printf("  HasFP:      %v\n", cpu.ARM64.HasFP)
	fmt.Printf("  HasSVE:     %v\n", cpu.ARM64.HasSVE)
	fmt.Printf("  HasATOMICS: %v\n", cpu.ARM64.HasATOMICS)
}

func printAMD64Features() {
	fmt.Println("=== golang.org/x/sys/cpu.X86 ===")
	fmt.Printf("  HasSSE2:    %v\n", cpu.X86.HasSSE2)
	fmt.Printf("  HasAVX:     %v\n", cpu.X86.HasAVX)
	fmt.Printf("  HasAVX2:    %v\n", cpu.X86.HasAVX2)
	fmt.Printf("  HasAVX512F: %v\n", cpu.X86.HasAVX512F)
}
