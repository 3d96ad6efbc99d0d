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

// Package typelist describes ordered, fixed-arity lists of element types.
//
// A Type is a descriptor for one Go element type: its name, kind, byte size
// and alignment. A List is an immutable sequence of descriptors with the
// usual algebra on top of it:
//
//   - Size, IsEmpty, Get: length and indexed lookup
//   - ByteOffset, Offsets: prefix sums of element sizes
//   - Prepend, Filter, Map: new lists derived from an existing one
//   - Reduce: left fold with an accumulator
//   - Apply: one callback per element, in order, with its position
//
// Descriptors are produced either from Go types with Of, or from go/types by
// the kerngen generator. The generic, compile-time checked mirror of a List
// lives in package kern (Seq0 through Seq6); this package is what kerngen
// evaluates while emitting that code, so a failed lookup here fails
// go generate rather than a running program.
//
// # Example
//
//	l := typelist.New(typelist.Of[int32](), typelist.Of[int8](), typelist.Of[float64]())
//	l.Size()          // 3
//	l.ByteOffset(2)   // 5, nil
//	typelist.Reduce(l, uintptr(0), func(acc uintptr, t typelist.Type) uintptr {
//	    return acc + t.Size
//	})                // 13
package typelist
