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

package kern_test

import (
	"fmt"

	"github.com/ajroetker/go-elemwise/kern"
)

func ExampleNew() {
	// x and y packed back to back: x = 1..4, y = 10..40.
	xy := []int32{1, 2, 3, 4, 10, 20, 30, 40}
	z := make([]int32, 4)

	add := func(in kern.Views2[int32, int32], out kern.Views1[int32], _ kern.Views0, n int, _ kern.Tuple0) {
		x, y, dst := in.V0.Slice(), in.V1.Slice(), out.V0.Slice()
		for i := range n {
			dst[i] = x[i] + y[i]
		}
	}

	eng := kern.New(add, kern.PackedIn2[int32, int32](kern.Addr(xy)), kern.Out1[int32](kern.Addr(z)))
	eng.Run(len(z), kern.Tuple0{})
	fmt.Println(z, eng.InputOffsets())
	// Output: [11 22 33 44] [0 4]
}

func ExampleCallWithTemp() {
	src := []float64{1, 2, 3}
	dst := make([]float64, 3)

	// Scales into the temporary, then writes a running sum.
	scan := func(in kern.Views1[float64], out kern.Views1[float64], tmp kern.Views1[float64], n int, scale float64) {
		t := tmp.V0.Slice()
		for i, v := range in.V0.Slice() {
			t[i] = v * scale
		}
		sum := 0.0
		for i := range n {
			sum += t[i]
			out.V0.Slice()[i] = sum
		}
	}

	kern.CallWithTemp(scan,
		kern.In1[float64](kern.Addr(src)), kern.Out1[float64](kern.Addr(dst)), kern.Tmp1[float64](),
		len(src), 2.0, kern.WithScratch(kern.NewScratch()))
	fmt.Println(dst)
	// Output: [2 6 12]
}
