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

import "unsafe"

// View is a non-owning window of Len elements of type T.
// The zero value, and every temporary view without scratch backing, has a
// nil Data pointer but still reports its logical Size.
type View[T any] struct {
	data *T
	n    int
	size uintptr
}

// Data returns the pointer to the first element, or nil if unbound.
func (v View[T]) Data() *T {
	return v.data
}

// Len returns the number of elements.
func (v View[T]) Len() int {
	return v.n
}

// Size returns the logical size in bytes, sizeof(T) * Len.
func (v View[T]) Size() uintptr {
	return v.size
}

// Bound reports whether the view has backing memory.
func (v View[T]) Bound() bool {
	return v.data != nil
}

// Slice returns the elements as a slice aliasing the backing memory,
// or nil for an unbound view.
func (v View[T]) Slice() []T {
	if v.data == nil {
		return nil
	}
	return unsafe.Slice(v.data, v.n)
}

// Addr returns the address of the first element of s, or nil for an empty
// slice. It is a convenience for building groups from Go slices.
func Addr[T any](s []T) unsafe.Pointer {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Pointer(unsafe.SliceData(s))
}

// boundView places count elements of T at base + offset*count.
func boundView[T any](base unsafe.Pointer, offset uintptr, count int) View[T] {
	var zero T
	return View[T]{
		data: (*T)(unsafe.Add(base, offset*uintptr(count))),
		n:    count,
		size: unsafe.Sizeof(zero) * uintptr(count),
	}
}

// sizedView is an unbound view of count elements.
func sizedView[T any](count int) View[T] {
	var zero T
	return View[T]{
		n:    count,
		size: unsafe.Sizeof(zero) * uintptr(count),
	}
}
