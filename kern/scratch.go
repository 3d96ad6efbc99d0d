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

	"golang.org/x/sys/cpu"

	"github.com/ajroetker/go-elemwise/typelist"
)

// CacheLineSize returns the cache line size the scratch arena aligns to.
func CacheLineSize() uintptr {
	return unsafe.Sizeof(cpu.CacheLinePad{})
}

// Scratch is a growable arena backing temporary views. Its base address is
// aligned to CacheLineSize and every slot to its element alignment.
//
// The arena is reused across Runs and only grows. It is not safe for
// concurrent use, so an engine built WithScratch must not be Run from
// several goroutines at once. Element types placed in it must be free of Go
// pointers: the garbage collector does not scan the arena.
type Scratch struct {
	buf  []byte
	base unsafe.Pointer
	cap  uintptr
}

// NewScratch returns an empty arena; memory is allocated on first use.
func NewScratch() *Scratch {
	return &Scratch{}
}

// Cap returns the number of usable bytes currently reserved.
func (s *Scratch) Cap() uintptr {
	return s.cap
}

// Reserve makes sure count elements of every type in l fit.
func (s *Scratch) Reserve(l typelist.List, count int) {
	need := l.Extent(count)
	if need <= s.cap {
		return
	}
	line := CacheLineSize()
	s.buf = make([]byte, need+line)
	base := unsafe.Pointer(unsafe.SliceData(s.buf))
	pad := (line - uintptr(base)%line) % line
	s.base = unsafe.Add(base, pad)
	s.cap = uintptr(len(s.buf)) - pad
}

// place writes the start address of each slot of l into dst.
func (s *Scratch) place(l typelist.List, count int, dst []unsafe.Pointer) {
	s.Reserve(l, count)
	for i, start := range l.Layout(count) {
		dst[i] = unsafe.Add(s.base, start)
	}
}

// pointerFree reports whether every descriptor is a predeclared boolean or
// numeric kind.
func pointerFree(l typelist.List) bool {
	return typelist.Filter(l, func(t typelist.Type) bool {
		return t.Kind == typelist.Opaque
	}).IsEmpty()
}
