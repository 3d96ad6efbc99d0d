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
	"fmt"
	"log"
	"slices"
	"unsafe"

	"github.com/ajroetker/go-elemwise/typelist"
)

// Op is the calling convention of a kernel operation: the input views, the
// output views, the temporary views, the element count and the trailing
// scalars, in that order. IV, OV and TV are view tuples (Views0..Views6);
// S is any value, Tuple0 when the kernel takes no scalars.
type Op[IV, OV, TV, S any] func(in IV, out OV, tmp TV, count int, scalars S)

// Option configures an Engine at bind time.
type Option func(*config)

type config struct {
	name      string
	scratch   *Scratch
	policy    LayoutPolicy
	hasPolicy bool
}

// WithName names the engine in layout warnings.
func WithName(name string) Option {
	return func(c *config) {
		c.name = name
	}
}

// WithScratch backs temporary views with s. Temps whose element types are
// not predeclared numeric or boolean kinds stay unbound.
func WithScratch(s *Scratch) Option {
	return func(c *config) {
		c.scratch = s
	}
}

// WithLayoutPolicy overrides the process-wide layout policy for one engine.
func WithLayoutPolicy(p LayoutPolicy) Option {
	return func(c *config) {
		c.policy = p
		c.hasPolicy = true
	}
}

// Engine is a kernel operation bound to raw input and output addresses.
// The address and offset tables are fixed at bind time; Run only reads them.
type Engine[IS Seq[IV], OS Seq[OV], TS Seq[TV], IV, OV, TV, S any] struct {
	name string
	op   Op[IV, OV, TV, S]

	inAddrs  []unsafe.Pointer
	outAddrs []unsafe.Pointer

	inOffsets  []uintptr
	outOffsets []uintptr
	tmpOffsets []uintptr

	scratch  *Scratch
	tmpTypes typelist.List
	tmpAddrs []unsafe.Pointer
	tmpZero  []uintptr
}

// New binds op to the addresses of in and out. The kernel has no
// temporaries.
func New[IS Seq[IV], OS Seq[OV], IV, OV, S any](
	op Op[IV, OV, Tuple0, S], in Input[IS], out Output[OS], opts ...Option,
) *Engine[IS, OS, Seq0, IV, OV, Tuple0, S] {
	return NewWithTemp(op, in, out, Tmp0(), opts...)
}

// NewWithTemp binds op to the addresses of in and out and sizes one
// temporary view per slot of tmp on every Run.
func NewWithTemp[IS Seq[IV], OS Seq[OV], TS Seq[TV], IV, OV, TV, S any](
	op Op[IV, OV, TV, S], in Input[IS], out Output[OS], tmp Temp[TS], opts ...Option,
) *Engine[IS, OS, TS, IV, OV, TV, S] {
	cfg := config{name: "kernel", policy: CurrentLayoutPolicy()}
	for _, opt := range opts {
		opt(&cfg)
	}

	checkArity(cfg.name, RoleInput, in.addrs, in.Types())
	checkArity(cfg.name, RoleOutput, out.addrs, out.Types())
	checkLayout(cfg.policy, cfg.name, RoleInput, in.addrs)
	checkLayout(cfg.policy, cfg.name, RoleOutput, out.addrs)

	tmpTypes := tmp.Types()
	e := &Engine[IS, OS, TS, IV, OV, TV, S]{
		name:       cfg.name,
		op:         op,
		inAddrs:    slices.Clone(in.addrs),
		outAddrs:   slices.Clone(out.addrs),
		inOffsets:  in.Types().Offsets(),
		outOffsets: out.Types().Offsets(),
		tmpOffsets: tmpTypes.Offsets(),
		tmpTypes:   tmpTypes,
	}

	if cfg.scratch != nil && !tmpTypes.IsEmpty() {
		if pointerFree(tmpTypes) {
			e.scratch = cfg.scratch
			e.tmpAddrs = make([]unsafe.Pointer, tmpTypes.Size())
			e.tmpZero = make([]uintptr, tmpTypes.Size())
		} else {
			log.Printf("WARNING: kern: %s temps %v may hold pointers; leaving them unbound", cfg.name, tmpTypes)
		}
	}
	return e
}

// Run builds the views for count elements and calls the operation once.
// It panics if count is negative.
func (e *Engine[IS, OS, TS, IV, OV, TV, S]) Run(count int, scalars S) {
	if count < 0 {
		panic(fmt.Sprintf("kern: %s: negative count %d", e.name, count))
	}
	var (
		inSeq  IS
		outSeq OS
		tmpSeq TS
		tmp    TV
	)
	in := inSeq.views(e.inAddrs, e.inOffsets, count)
	out := outSeq.views(e.outAddrs, e.outOffsets, count)
	if e.scratch != nil {
		e.scratch.place(e.tmpTypes, count, e.tmpAddrs)
		tmp = tmpSeq.views(e.tmpAddrs, e.tmpZero, count)
	} else {
		tmp = tmpSeq.sized(count)
	}
	e.op(in, out, tmp, count, scalars)
}

// InputOffsets returns the byte offset of each input slot.
func (e *Engine[IS, OS, TS, IV, OV, TV, S]) InputOffsets() []uintptr {
	return slices.Clone(e.inOffsets)
}

// OutputOffsets returns the byte offset of each output slot.
func (e *Engine[IS, OS, TS, IV, OV, TV, S]) OutputOffsets() []uintptr {
	return slices.Clone(e.outOffsets)
}

// TempOffsets returns the byte offset of each temporary slot.
func (e *Engine[IS, OS, TS, IV, OV, TV, S]) TempOffsets() []uintptr {
	return slices.Clone(e.tmpOffsets)
}

// Packed reports whether the input group and the output group are each
// bound to a single base address.
func (e *Engine[IS, OS, TS, IV, OV, TV, S]) Packed() bool {
	return packed(e.inAddrs) && packed(e.outAddrs)
}

// Call binds op and runs it once. It is the single-call form of New + Run.
func Call[IS Seq[IV], OS Seq[OV], IV, OV, S any](
	op Op[IV, OV, Tuple0, S], in Input[IS], out Output[OS], count int, scalars S, opts ...Option,
) {
	New(op, in, out, opts...).Run(count, scalars)
}

// CallWithTemp is Call for kernels with temporaries.
func CallWithTemp[IS Seq[IV], OS Seq[OV], TS Seq[TV], IV, OV, TV, S any](
	op Op[IV, OV, TV, S], in Input[IS], out Output[OS], tmp Temp[TS], count int, scalars S, opts ...Option,
) {
	NewWithTemp(op, in, out, tmp, opts...).Run(count, scalars)
}
