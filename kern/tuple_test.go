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

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/ajroetker/go-elemwise/typelist"
)

func TestTuple(t *testing.T) {
	tup := MakeTuple3(int32(7), int8(-2), 1.5)
	assert.Equal(t, 3, tup.Len())
	assert.Equal(t, "[int32 int8 float64]", tup.Types().String())

	var (
		p0 *int32   = tup.Get0()
		p1 *int8    = tup.Get1()
		p2 *float64 = tup.Get2()
	)
	assert.Equal(t, int8(-2), *p1)
	*p0 += 1
	*p2 *= 2
	assert.Equal(t, Tuple3[int32, int8, float64]{V0: 8, V1: -2, V2: 3}, tup)

	assert.Equal(t, 0, Tuple0{}.Len())
	assert.True(t, Tuple0{}.Types().IsEmpty())
}

func TestSeqTypes(t *testing.T) {
	want := typelist.New(typelist.Of[int32](), typelist.Of[int8](), typelist.Of[float32]())
	got := Seq3[int32, int8, float32]{}.Types()
	if diff := cmp.Diff(want.Types(), got.Types()); diff != "" {
		t.Errorf("Seq3.Types() mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 3, Seq3[int32, int8, float32]{}.Len())
	assert.Equal(t, 0, Seq0{}.Len())

	in := In2[int32, int8](nil, nil)
	assert.Equal(t, RoleInput, in.Role())
	assert.Equal(t, "[int32 int8]", in.Types().String())
	assert.Equal(t, RoleOutput, Out1[float32](nil).Role())
	assert.Equal(t, RoleTemp, Tmp1[float32]().Role())
}

func TestRoleString(t *testing.T) {
	assert.Equal(t, "input", RoleInput.String())
	assert.Equal(t, "output", RoleOutput.String())
	assert.Equal(t, "temp", RoleTemp.String())
}

func TestView(t *testing.T) {
	var zero View[float64]
	assert.False(t, zero.Bound())
	assert.Nil(t, zero.Slice())
	assert.Zero(t, zero.Size())

	s := []float64{1, 2, 3, 4}
	v := boundView[float64](Addr(s), 8, 2)
	assert.Same(t, &s[2], v.Data())
	assert.Equal(t, []float64{3, 4}, v.Slice())
	assert.Equal(t, uintptr(16), v.Size())

	u := sizedView[int16](5)
	assert.Equal(t, 5, u.Len())
	assert.Equal(t, uintptr(10), u.Size())
	assert.False(t, u.Bound())

	assert.Nil(t, Addr([]int32{}))
}
