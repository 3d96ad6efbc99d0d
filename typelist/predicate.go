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

package typelist

import (
	"fmt"
	"slices"
)

// IsKind returns a predicate matching descriptors of any of kinds.
func IsKind(kinds ...Kind) func(Type) bool {
	return func(t Type) bool {
		return slices.Contains(kinds, t.Kind)
	}
}

// IsFloat matches float32 and float64.
var IsFloat = IsKind(Float32, Float64)

// IsInteger matches the signed and unsigned integer kinds.
var IsInteger = IsKind(Int8, Int16, Int32, Int64, Int, Uint8, Uint16, Uint32, Uint64, Uint, Uintptr)

// SizeAtMost matches descriptors no larger than n bytes.
func SizeAtMost(n uintptr) func(Type) bool {
	return func(t Type) bool {
		return t.Size <= n
	}
}

// Not negates pred.
func Not(pred func(Type) bool) func(Type) bool {
	return func(t Type) bool {
		return !pred(t)
	}
}

// Wrap returns a transform producing the descriptor of a generic wrapper
// around each element, e.g. Wrap("kern.View[%s]", 24, 8) maps int32 to
// "kern.View[int32]". The wrapper is always Opaque.
func Wrap(format string, size, align uintptr) func(Type) Type {
	return func(t Type) Type {
		return Type{
			Name:  fmt.Sprintf(format, t.Name),
			Kind:  Opaque,
			Size:  size,
			Align: align,
		}
	}
}
