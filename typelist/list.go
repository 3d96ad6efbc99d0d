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
	"errors"
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/samber/lo"
)

// ErrIndexOutOfRange is returned by indexed lookups outside [0, Size()).
var ErrIndexOutOfRange = errors.New("typelist: index out of range")

// List is an ordered, immutable sequence of type descriptors.
// The zero value is the empty list.
type List struct {
	types []Type
}

// New returns a list holding ts in order.
func New(ts ...Type) List {
	return List{types: slices.Clone(ts)}
}

// Size returns the number of descriptors.
func (l List) Size() int {
	return len(l.types)
}

// IsEmpty reports whether the list has no descriptors.
func (l List) IsEmpty() bool {
	return len(l.types) == 0
}

// Get returns the i-th descriptor.
func (l List) Get(i int) (Type, error) {
	if i < 0 || i >= len(l.types) {
		return Type{}, fmt.Errorf("get %d in list of %d: %w", i, len(l.types), ErrIndexOutOfRange)
	}
	return l.types[i], nil
}

// MustGet is like Get but panics on an out-of-range index.
func (l List) MustGet(i int) Type {
	t, err := l.Get(i)
	if err != nil {
		panic(err)
	}
	return t
}

// ByteOffset returns the sum of the sizes of the descriptors before
// position i. ByteOffset(0) is 0 for every list, including the empty one.
func (l List) ByteOffset(i int) (uintptr, error) {
	if i == 0 {
		return 0, nil
	}
	if i < 0 || i >= len(l.types) {
		return 0, fmt.Errorf("byte offset %d in list of %d: %w", i, len(l.types), ErrIndexOutOfRange)
	}
	return sumSizes(l.types[:i]), nil
}

// Offsets returns ByteOffset for every position of the list.
func (l List) Offsets() []uintptr {
	offsets := make([]uintptr, len(l.types))
	var acc uintptr
	for i, t := range l.types {
		offsets[i] = acc
		acc += t.Size
	}
	return offsets
}

// TotalSize returns the sum of all element sizes.
func (l List) TotalSize() uintptr {
	return sumSizes(l.types)
}

// MaxAlign returns the largest element alignment, or 1 for the empty list.
func (l List) MaxAlign() uintptr {
	return Reduce(l, uintptr(1), func(acc uintptr, t Type) uintptr {
		return max(acc, t.Align)
	})
}

// Layout returns the start of each slot when count elements of every type
// are laid out back to back, each slot aligned to its element alignment.
// Unlike Offsets scaled by count, no slot is ever misaligned.
func (l List) Layout(count int) []uintptr {
	starts := make([]uintptr, len(l.types))
	var end uintptr
	for i, t := range l.types {
		starts[i] = alignUp(end, t.Align)
		end = starts[i] + t.Size*uintptr(count)
	}
	return starts
}

// Extent returns the number of bytes Layout(count) spans.
func (l List) Extent(count int) uintptr {
	if len(l.types) == 0 {
		return 0
	}
	starts := l.Layout(count)
	last := len(l.types) - 1
	return starts[last] + l.types[last].Size*uintptr(count)
}

// Types returns a copy of the descriptors.
func (l List) Types() []Type {
	return slices.Clone(l.types)
}

// All iterates over positions and descriptors in order.
func (l List) All() iter.Seq2[int, Type] {
	return slices.All(l.types)
}

// Equal reports whether both lists hold the same descriptors in the same order.
func (l List) Equal(o List) bool {
	return slices.Equal(l.types, o.types)
}

// String formats the list as "[int32 int8 float64]".
func (l List) String() string {
	names := lo.Map(l.types, func(t Type, _ int) string { return t.Name })
	return "[" + strings.Join(names, " ") + "]"
}

// Prepend returns a new list with t in front of l.
func Prepend(t Type, l List) List {
	types := make([]Type, 0, len(l.types)+1)
	types = append(types, t)
	return List{types: append(types, l.types...)}
}

// Filter returns the descriptors satisfying pred, order preserved.
func Filter(l List, pred func(Type) bool) List {
	return List{types: lo.Filter(l.types, func(t Type, _ int) bool {
		return pred(t)
	})}
}

// Map returns a list of the same length with fn applied to each descriptor.
func Map(l List, fn func(Type) Type) List {
	return List{types: lo.Map(l.types, func(t Type, _ int) Type {
		return fn(t)
	})}
}

// Reduce folds the list from the left. The empty list yields init.
func Reduce[A any](l List, init A, fn func(A, Type) A) A {
	return lo.Reduce(l.types, func(acc A, t Type, _ int) A {
		return fn(acc, t)
	}, init)
}

// Apply calls fn with each descriptor and its position, in order.
func Apply(l List, fn func(t Type, index int)) {
	lo.ForEach(l.types, fn)
}

func sumSizes(types []Type) uintptr {
	var n uintptr
	for _, t := range types {
		n += t.Size
	}
	return n
}

func alignUp(n, align uintptr) uintptr {
	if align <= 1 {
		return n
	}
	return (n + align - 1) &^ (align - 1)
}
