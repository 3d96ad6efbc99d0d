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
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-elemwise/typelist"
)

func TestCacheLineSize(t *testing.T) {
	line := CacheLineSize()
	assert.NotZero(t, line)
	assert.Zero(t, line&(line-1), "cache line size %d is a power of two", line)
}

func TestScratchReserve(t *testing.T) {
	s := NewScratch()
	assert.Zero(t, s.Cap())

	l := typelist.New(typelist.Of[int8](), typelist.Of[float64](), typelist.Of[int16]())
	s.Reserve(l, 3)
	require.GreaterOrEqual(t, s.Cap(), l.Extent(3))
	assert.Zero(t, uintptr(s.base)%CacheLineSize())

	prev, capBefore := s.base, s.Cap()
	s.Reserve(l, 2)
	assert.Equal(t, prev, s.base, "smaller reservation keeps the arena")
	assert.Equal(t, capBefore, s.Cap())

	s.Reserve(l, 1000)
	assert.GreaterOrEqual(t, s.Cap(), l.Extent(1000))
	assert.Zero(t, uintptr(s.base)%CacheLineSize())
}

func TestScratchBackedTemps(t *testing.T) {
	s := NewScratch()
	var runs int
	op := func(_ Views0, _ Views0, tmp Views3[int8, float64, int16], count int, _ Tuple0) {
		runs++
		require.True(t, tmp.V0.Bound())
		require.True(t, tmp.V1.Bound())
		require.True(t, tmp.V2.Bound())

		p0 := uintptr(unsafe.Pointer(tmp.V0.Data()))
		p1 := uintptr(unsafe.Pointer(tmp.V1.Data()))
		p2 := uintptr(unsafe.Pointer(tmp.V2.Data()))
		assert.Zero(t, p0%CacheLineSize())
		assert.Zero(t, p1%8, "float64 slot aligned")
		assert.Zero(t, p2%2, "int16 slot aligned")
		assert.GreaterOrEqual(t, p1, p0+tmp.V0.Size())
		assert.GreaterOrEqual(t, p2, p1+tmp.V1.Size())

		for i := range count {
			tmp.V0.Slice()[i] = -1
			tmp.V1.Slice()[i] = 2.5
			tmp.V2.Slice()[i] = 7
		}
		for i := range count {
			assert.Equal(t, int8(-1), tmp.V0.Slice()[i])
			assert.Equal(t, 2.5, tmp.V1.Slice()[i])
			assert.Equal(t, int16(7), tmp.V2.Slice()[i])
		}
	}

	e := NewWithTemp(op, In0(), Out0(), Tmp3[int8, float64, int16](), WithScratch(s))
	assert.Equal(t, []uintptr{0, 1, 9}, e.TempOffsets())
	e.Run(3, Tuple0{})
	e.Run(100, Tuple0{})
	assert.Equal(t, 2, runs)
}

func TestScratchRejectsPointerTemps(t *testing.T) {
	logs := captureLog(t)
	op := func(_ Views0, _ Views0, tmp Views1[string], count int, _ Tuple0) {
		assert.False(t, tmp.V0.Bound())
		assert.Equal(t, count, tmp.V0.Len())
	}
	e := NewWithTemp(op, In0(), Out0(), Tmp1[string](), WithScratch(NewScratch()), WithName("names"))
	e.Run(4, Tuple0{})
	assert.Contains(t, logs.String(), "WARNING: kern: names temps")
	assert.Contains(t, logs.String(), "leaving them unbound")
}

func TestPointerFree(t *testing.T) {
	assert.True(t, pointerFree(typelist.New()))
	assert.True(t, pointerFree(typelist.New(typelist.Of[float32](), typelist.Of[bool]())))
	assert.False(t, pointerFree(typelist.New(typelist.Of[float32](), typelist.Of[*int]())))
}
