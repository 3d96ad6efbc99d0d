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

package kern

import (
	"unsafe"

	"github.com/ajroetker/go-elemwise/typelist"
)

// Role is the part a parameter group plays in a kernel signature.
type Role uint8

const (
	RoleInput Role = iota
	RoleOutput
	RoleTemp
)

// String returns "input", "output" or "temp".
func (r Role) String() string {
	switch r {
	case RoleInput:
		return "input"
	case RoleOutput:
		return "output"
	case RoleTemp:
		return "temp"
	default:
		return "unknown"
	}
}

// Shape is what every type sequence reports about itself.
type Shape interface {
	Len() int
	Types() typelist.List
}

// Seq is a type sequence that materializes the view tuple V.
// It is implemented by Seq0 through Seq6 only.
type Seq[V any] interface {
	Shape
	views(addrs []unsafe.Pointer, offsets []uintptr, count int) V
	sized(count int) V
}

// Group is implemented by Input, Output and Temp.
type Group interface {
	Role() Role
	Types() typelist.List
}

// Input is the input parameter group of a kernel, bound to one address per
// slot of S. Build it with In0..In6 or PackedIn1..PackedIn6.
type Input[S Shape] struct {
	addrs []unsafe.Pointer
}

// Role returns RoleInput.
func (Input[S]) Role() Role { return RoleInput }

// Types returns the element descriptors of S.
func (Input[S]) Types() typelist.List {
	var s S
	return s.Types()
}

// Output is the output parameter group of a kernel, bound to one address
// per slot of S. Build it with Out0..Out6 or PackedOut1..PackedOut6.
type Output[S Shape] struct {
	addrs []unsafe.Pointer
}

// Role returns RoleOutput.
func (Output[S]) Role() Role { return RoleOutput }

// Types returns the element descriptors of S.
func (Output[S]) Types() typelist.List {
	var s S
	return s.Types()
}

// Temp is the temporary parameter group of a kernel. Temporaries are sized
// per Run but never bound to caller memory. Build it with Tmp0..Tmp6.
type Temp[S Shape] struct{}

// Role returns RoleTemp.
func (Temp[S]) Role() Role { return RoleTemp }

// Types returns the element descriptors of S.
func (Temp[S]) Types() typelist.List {
	var s S
	return s.Types()
}

func replicate(base unsafe.Pointer, n int) []unsafe.Pointer {
	addrs := make([]unsafe.Pointer, n)
	for i := range addrs {
		addrs[i] = base
	}
	return addrs
}
