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

package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/ajroetker/go-elemwise/typelist"
)

const (
	// DefaultMaxArity is the largest group size package kern ships with.
	DefaultMaxArity = 6
	// maxSupportedArity is bounded by the single-letter type parameter names.
	maxSupportedArity = 26
)

var errArity = errors.New("arity out of range")

type arityOptions struct {
	maxArity int
	pkg      string
	out      string
}

func newArityCmd() *cobra.Command {
	opts := arityOptions{maxArity: DefaultMaxArity, pkg: "kern", out: "."}
	cmd := &cobra.Command{
		Use:   "arity",
		Short: "Generate Seq, Views and Tuple types for arities 0..max",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runArity(cmd, opts)
		},
	}
	cmd.Flags().IntVar(&opts.maxArity, "max", opts.maxArity, "largest arity to generate")
	cmd.Flags().StringVar(&opts.pkg, "pkg", opts.pkg, "package name of the generated files")
	cmd.Flags().StringVar(&opts.out, "out", opts.out, "output directory")
	return cmd
}

func runArity(cmd *cobra.Command, opts arityOptions) error {
	if opts.maxArity < 0 || opts.maxArity > maxSupportedArity {
		return fmt.Errorf("--max %d not in [0, %d]: %w", opts.maxArity, maxSupportedArity, errArity)
	}
	return writeFiles(cmd.Context(), opts.out, map[string]generateFunc{
		"seq.gen.go":   func() ([]byte, error) { return generateSeqFile(opts.pkg, opts.maxArity), nil },
		"tuple.gen.go": func() ([]byte, error) { return generateTupleFile(opts.pkg, opts.maxArity), nil },
	})
}

// arity describes the type parameters of one generated group size. Each
// parameter is a placeholder descriptor named A, B, C, ...
type arity struct {
	n      int
	params typelist.List
}

func newArity(n int) arity {
	params := lo.Map(typelist.Indices(n), func(i, _ int) typelist.Type {
		return typelist.Type{Name: string(rune('A' + i)), Kind: typelist.Opaque}
	})
	return arity{n: n, params: typelist.New(params...)}
}

func (a arity) names() []string {
	return typelist.Reduce(a.params, []string(nil), func(acc []string, t typelist.Type) []string {
		return append(acc, t.Name)
	})
}

// decl is the type parameter list of a declaration: "[A, B any]".
func (a arity) decl() string {
	if a.n == 0 {
		return ""
	}
	return "[" + strings.Join(a.names(), ", ") + " any]"
}

// args is the type argument list of an instantiation: "[A, B]".
func (a arity) args() string {
	if a.n == 0 {
		return ""
	}
	return "[" + strings.Join(a.names(), ", ") + "]"
}

// viewArgs instantiates a tuple with one view per parameter: "[View[A], View[B]]".
func (a arity) viewArgs() string {
	if a.n == 0 {
		return ""
	}
	views := typelist.Map(a.params, typelist.Wrap("View[%s]", 0, 0))
	return "[" + strings.Join(typelistNames(views), ", ") + "]"
}

func (a arity) seq() string   { return fmt.Sprintf("Seq%d%s", a.n, a.args()) }
func (a arity) views() string { return fmt.Sprintf("Views%d%s", a.n, a.args()) }
func (a arity) tuple() string { return fmt.Sprintf("Tuple%d%s", a.n, a.args()) }

func typelistNames(l typelist.List) []string {
	return lo.Map(l.Types(), func(t typelist.Type, _ int) string { return t.Name })
}

// slotList renders "prefix0, prefix1, ..." for every slot.
func (a arity) slotList(prefix string) string {
	return strings.Join(lo.Map(typelist.Indices(a.n), func(i, _ int) string {
		return fmt.Sprintf("%s%d", prefix, i)
	}), ", ")
}

func generateSeqFile(pkg string, maxArity int) []byte {
	var buf bytes.Buffer
	writeFileHeader(&buf, pkg, "unsafe", typelistPath)
	typelist.MakeIndexSeq(maxArity + 1).Each(func(n int) {
		emitSeq(&buf, newArity(n))
	})
	return buf.Bytes()
}

func emitSeq(w io.Writer, a arity) {
	n, seq, views := a.n, a.seq(), a.views()

	fmt.Fprintln(w, typelist.Select(n == 0,
		"// Seq0 is the empty type sequence.",
		fmt.Sprintf("// Seq%d is a type sequence of %s.", n, plural(n, "element type"))))
	fmt.Fprintf(w, "type Seq%d%s struct{}\n\n", n, a.decl())
	fmt.Fprintf(w, "// Views%d is the view tuple materialized by Seq%d.\n", n, n)
	fmt.Fprintf(w, "type Views%d%s = Tuple%d%s\n\n", n, a.decl(), n, a.viewArgs())

	fmt.Fprintf(w, "// Len returns %d.\n", n)
	fmt.Fprintf(w, "func (%s) Len() int { return %d }\n\n", seq, n)

	fmt.Fprintf(w, "// Types returns the element descriptors.\n")
	fmt.Fprintf(w, "func (%s) Types() typelist.List {\n", seq)
	emitTypeList(w, a)

	fmt.Fprintf(w, "func (%s) views(addrs []unsafe.Pointer, offsets []uintptr, count int) %s {\n", seq, views)
	if n > 0 {
		fmt.Fprintf(w, "\t_ = addrs[%d]\n\t_ = offsets[%d]\n", n-1, n-1)
	}
	emitViewsLiteral(w, a, func(t typelist.Type, i int) string {
		return fmt.Sprintf("boundView[%s](addrs[%d], offsets[%d], count)", t.Name, i, i)
	})

	fmt.Fprintf(w, "func (%s) sized(count int) %s {\n", seq, views)
	emitViewsLiteral(w, a, func(t typelist.Type, _ int) string {
		return fmt.Sprintf("sizedView[%s](count)", t.Name)
	})

	emitGroupConstructors(w, a)
}

// emitTypeList writes the body and closing brace of a Types method: one
// typelist.Of per type parameter.
func emitTypeList(w io.Writer, a arity) {
	fmt.Fprintf(w, "\treturn typelist.New(")
	if a.n > 0 {
		fmt.Fprintf(w, "\n")
		typelist.Apply(a.params, func(t typelist.Type, _ int) {
			fmt.Fprintf(w, "\t\ttypelist.Of[%s](),\n", t.Name)
		})
		fmt.Fprintf(w, "\t")
	}
	fmt.Fprintf(w, ")\n}\n\n")
}

// plural renders "1 slot" or "n slots".
func plural(n int, noun string) string {
	return fmt.Sprintf("%d %s", n, typelist.Select(n == 1, noun, noun+"s"))
}

// emitViewsLiteral writes the return statement and closing brace of a
// views method, one field per slot.
func emitViewsLiteral(w io.Writer, a arity, slot func(t typelist.Type, i int) string) {
	fmt.Fprintf(w, "\treturn %s{", a.views())
	if a.n > 0 {
		fmt.Fprintf(w, "\n")
		typelist.Apply(a.params, func(t typelist.Type, i int) {
			fmt.Fprintf(w, "\t\tV%d: %s,\n", i, slot(t, i))
		})
		fmt.Fprintf(w, "\t")
	}
	fmt.Fprintf(w, "}\n}\n\n")
}

func emitGroupConstructors(w io.Writer, a arity) {
	n, seq := a.n, a.seq()

	for _, g := range []struct{ fn, typ, role string }{
		{"In", "Input", "input"},
		{"Out", "Output", "output"},
	} {
		group := fmt.Sprintf("%s[%s]", g.typ, seq)
		if n == 0 {
			fmt.Fprintf(w, "// %s0 is the empty %s group.\n", g.fn, g.role)
			fmt.Fprintf(w, "func %s0() %s { return %s{} }\n\n", g.fn, group, group)
			continue
		}
		fmt.Fprintf(w, "// %s%d binds an %s group of %s, one address per slot.\n", g.fn, n, g.role, plural(n, "slot"))
		fmt.Fprintf(w, "func %s%d%s(%s unsafe.Pointer) %s {\n", g.fn, n, a.decl(), a.slotList("a"), group)
		fmt.Fprintf(w, "\treturn %s{addrs: []unsafe.Pointer{%s}}\n}\n\n", group, a.slotList("a"))

		fmt.Fprintf(w, "// Packed%s%d binds every slot of an %s group of %s to base.\n", g.fn, n, g.role, plural(n, "slot"))
		fmt.Fprintf(w, "func Packed%s%d%s(base unsafe.Pointer) %s {\n", g.fn, n, a.decl(), group)
		fmt.Fprintf(w, "\treturn %s{addrs: replicate(base, %d)}\n}\n\n", group, n)
	}

	group := fmt.Sprintf("Temp[%s]", seq)
	if n == 0 {
		fmt.Fprintf(w, "// Tmp0 is the empty temp group.\n")
		fmt.Fprintf(w, "func Tmp0() %s { return %s{} }\n\n", group, group)
		return
	}
	fmt.Fprintf(w, "// Tmp%d declares a temp group of %s.\n", n, plural(n, "slot"))
	fmt.Fprintf(w, "func Tmp%d%s() %s { return %s{} }\n\n", n, a.decl(), group, group)
}

func generateTupleFile(pkg string, maxArity int) []byte {
	var buf bytes.Buffer
	writeFileHeader(&buf, pkg, typelistPath)
	typelist.MakeIndexSeq(maxArity + 1).Each(func(n int) {
		emitTuple(&buf, newArity(n))
	})
	return buf.Bytes()
}

func emitTuple(w io.Writer, a arity) {
	n, tuple := a.n, a.tuple()

	if n == 0 {
		fmt.Fprintf(w, "// Tuple0 is the empty tuple.\n")
		fmt.Fprintf(w, "type Tuple0 struct{}\n\n")
	} else {
		fmt.Fprintf(w, "// Tuple%d holds one value of each of %s.\n", n, strings.Join(a.names(), ", "))
		fmt.Fprintf(w, "type Tuple%d%s struct {\n", n, a.decl())
		typelist.Apply(a.params, func(t typelist.Type, i int) {
			fmt.Fprintf(w, "\tV%d %s\n", i, t.Name)
		})
		fmt.Fprintf(w, "}\n\n")

		params := lo.Map(a.names(), func(name string, i int) string {
			return fmt.Sprintf("v%d %s", i, name)
		})
		fields := lo.Map(typelist.Indices(n), func(i, _ int) string {
			return fmt.Sprintf("V%d: v%d", i, i)
		})
		fmt.Fprintf(w, "// MakeTuple%d returns a tuple holding %s.\n", n, a.slotList("v"))
		fmt.Fprintf(w, "func MakeTuple%d%s(%s) %s {\n", n, a.decl(), strings.Join(params, ", "), tuple)
		fmt.Fprintf(w, "\treturn %s{%s}\n}\n\n", tuple, strings.Join(fields, ", "))
	}

	fmt.Fprintf(w, "// Len returns %d.\n", n)
	fmt.Fprintf(w, "func (%s) Len() int { return %d }\n\n", tuple, n)

	// Built from the slot types directly: going through SeqN would
	// instantiate SeqN[View[A]] from ViewsN and never terminate.
	fmt.Fprintf(w, "// Types returns the slot descriptors.\n")
	fmt.Fprintf(w, "func (%s) Types() typelist.List {\n", tuple)
	emitTypeList(w, a)

	typelist.Apply(a.params, func(t typelist.Type, i int) {
		fmt.Fprintf(w, "// Get%d returns a pointer to slot %d.\n", i, i)
		fmt.Fprintf(w, "func (t *%s) Get%d() *%s { return &t.V%d }\n\n", tuple, i, t.Name, i)
	})
}
