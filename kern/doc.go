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

// Package kern binds raw buffer addresses to strongly typed views and calls
// elementwise kernel operations with them.
//
// A kernel signature is three role-tagged type sequences: inputs, outputs
// and temporaries. Each sequence is one of the fixed-arity generic types
// Seq0 through Seq6, so the element types, the slot count and the role are
// all part of the Go type:
//
//	in := kern.PackedIn2[int32, int32](kern.Addr(xy)) // x then y, len(z) each
//	out := kern.Out1[int32](kern.Addr(z))
//	eng := kern.New(add, in, out)
//	eng.Run(len(z), kern.Tuple0{})
//
// where add has the signature
//
//	func add(in kern.Views2[int32, int32], out kern.Views1[int32], _ kern.Views0, n int, _ kern.Tuple0)
//
// Passing an output group where an input group is expected, handing In2 a
// third address, or an operation whose parameters do not match the view
// tuples are all compile errors. Slot i of a view tuple is the field Vi, so
// an out-of-range slot does not compile either.
//
// # Binding and running
//
// New (or NewWithTemp) is the bind step. It stores the addresses verbatim
// and precomputes the byte offset of every slot, the prefix sum of the
// element sizes before it. Run(count, scalars) builds, for each input and
// output slot i, a view starting at addr[i] + offset[i]*count holding count
// elements, then calls the operation once with
//
//	(input views, output views, temp views, count, scalars)
//
// The offsets describe a packed struct-of-arrays buffer: if every slot of a
// group is bound to the same base address (see PackedIn2 and friends), slot
// i starts where slot i-1 ends. Groups bound to distinct addresses are
// reported according to the layout policy, see SetLayoutPolicy.
//
// Temporary views carry only their logical size unless the engine was
// built WithScratch, in which case they are backed by a reusable,
// cache-line aligned arena.
//
// # Safety
//
// Nothing in this package validates raw memory. Every address must point
// to a buffer large enough for the views Run derives from it and must stay
// alive for as long as the engine is used. Binding panics if a group holds
// the wrong number of addresses, which only happens when it was not built
// with its InN, PackedInN, OutN or PackedOutN constructor. Run panics on a
// negative count. Concurrent Runs on one engine are safe when it has no
// scratch arena; synchronizing the buffers is up to the caller.
package kern

//go:generate go run ../cmd/kerngen arity --max 6 --pkg kern --out .
