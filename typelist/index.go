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
	"iter"

	"github.com/samber/lo"
)

// IndexSeq is the enumeration 0, 1, ..., n-1 used to unroll fixed-arity
// code: kerngen expands one statement per index instead of emitting a loop.
type IndexSeq struct {
	n int
}

// MakeIndexSeq returns the enumeration of [0, n). Negative n is treated as 0.
func MakeIndexSeq(n int) IndexSeq {
	return IndexSeq{n: max(n, 0)}
}

// Len returns the number of indices.
func (s IndexSeq) Len() int {
	return s.n
}

// All iterates over the indices in increasing order.
func (s IndexSeq) All() iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := range s.n {
			if !yield(i) {
				return
			}
		}
	}
}

// Each calls fn once per index, in order.
func (s IndexSeq) Each(fn func(i int)) {
	for i := range s.All() {
		fn(i)
	}
}

// Slice returns the indices as a slice.
func (s IndexSeq) Slice() []int {
	return lo.Range(s.n)
}

// Indices returns 0..n-1, or an empty slice for n <= 0.
func Indices(n int) []int {
	return MakeIndexSeq(n).Slice()
}

// IndexSeqOf returns the enumeration of the positions of l.
func IndexSeqOf(l List) IndexSeq {
	return MakeIndexSeq(l.Size())
}
