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
	"go/build"
	"go/token"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/ajroetker/go-elemwise/typelist"
)

var errConfig = errors.New("invalid kernel config")

// kernelConfig is the YAML description read by "kerngen bind".
//
//	package: elemwise
//	kernels:
//	  - name: add
//	    inputs: [int32, int32]
//	    outputs: [int32]
//	  - name: scale
//	    inputs: [float32]
//	    outputs: [float32]
//	    temps: [float32]
type kernelConfig struct {
	Package string       `yaml:"package"`
	Kernels []kernelDecl `yaml:"kernels"`
}

type kernelDecl struct {
	Name    string   `yaml:"name"`
	Inputs  []string `yaml:"inputs"`
	Outputs []string `yaml:"outputs"`
	Temps   []string `yaml:"temps"`
}

// boundKernel is a kernelDecl with every element type resolved.
type boundKernel struct {
	name string
	id   string
	in   typelist.List
	out  typelist.List
	tmp  typelist.List
}

type bindOptions struct {
	config   string
	out      string
	goarch   string
	maxArity int
}

func newBindCmd() *cobra.Command {
	opts := bindOptions{goarch: build.Default.GOARCH, maxArity: DefaultMaxArity}
	cmd := &cobra.Command{
		Use:   "bind",
		Short: "Generate typed bind functions and offset constants for declared kernels",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBind(cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.config, "config", "kernels.yaml", "kernel config file")
	cmd.Flags().StringVar(&opts.out, "out", "kernels.gen.go", "output file")
	cmd.Flags().StringVar(&opts.goarch, "goarch", opts.goarch, "architecture whose type sizes fix the offsets")
	cmd.Flags().IntVar(&opts.maxArity, "max", opts.maxArity, "largest group arity available in package kern")
	return cmd
}

func runBind(cmd *cobra.Command, opts bindOptions) error {
	f, err := os.Open(opts.config)
	if err != nil {
		return err
	}
	defer f.Close()
	cfg, err := loadKernelConfig(f)
	if err != nil {
		return fmt.Errorf("%s: %w", opts.config, err)
	}

	dir := filepath.Dir(opts.config)
	outDir, name := filepath.Split(opts.out)
	if outDir == "" {
		outDir = "."
	}
	var modPath, self string
	if root, err := findModuleRoot(dir); err == nil {
		if modPath, err = moduleImportPath(root); err != nil {
			return err
		}
		self = packageImportPath(root, modPath, outDir)
	}
	res, err := newResolver(dir, modPath, opts.goarch)
	if err != nil {
		return err
	}
	res.self = self
	kernels, err := resolveKernels(cfg, res, opts.maxArity)
	if err != nil {
		return fmt.Errorf("%s: %w", opts.config, err)
	}
	logger.Printf("%s: %d kernels for %s", opts.config, len(kernels), opts.goarch)

	return writeFiles(cmd.Context(), outDir, map[string]generateFunc{
		name: func() ([]byte, error) {
			return generateBindFile(cfg.Package, kernels, res.importPaths()), nil
		},
	})
}

func loadKernelConfig(r io.Reader) (kernelConfig, error) {
	var cfg kernelConfig
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return cfg, fmt.Errorf("empty file: %w", errConfig)
		}
		return cfg, fmt.Errorf("%w: %v", errConfig, err)
	}
	if !token.IsIdentifier(cfg.Package) {
		return cfg, fmt.Errorf("package %q is not an identifier: %w", cfg.Package, errConfig)
	}
	return cfg, nil
}

// resolveKernels validates every declaration and resolves its element types.
// All problems are reported together.
func resolveKernels(cfg kernelConfig, res *resolver, maxArity int) ([]boundKernel, error) {
	var (
		errs    []error
		kernels []boundKernel
		seen    = make(map[string]string)
	)
	for i, decl := range cfg.Kernels {
		id := exportName(decl.Name)
		if !token.IsIdentifier(id) || !token.IsExported(id) {
			errs = append(errs, fmt.Errorf("kernel %d: name %q does not give an exported identifier: %w", i, decl.Name, errConfig))
			continue
		}
		if prev, ok := seen[id]; ok {
			errs = append(errs, fmt.Errorf("kernel %q: identifier %s already used by %q: %w", decl.Name, id, prev, errConfig))
			continue
		}
		seen[id] = decl.Name

		k := boundKernel{name: decl.Name, id: id}
		var kerrs []error
		group := func(role string, exprs []string) typelist.List {
			if len(exprs) > maxArity {
				kerrs = append(kerrs, fmt.Errorf("kernel %q: %d %s exceed arity %d: %w", decl.Name, len(exprs), role, maxArity, errArity))
				return typelist.New()
			}
			ts := make([]typelist.Type, 0, len(exprs))
			for _, expr := range exprs {
				t, err := res.resolve(expr)
				if err != nil {
					kerrs = append(kerrs, fmt.Errorf("kernel %q %s: %w", decl.Name, role, err))
					continue
				}
				ts = append(ts, t)
			}
			return typelist.New(ts...)
		}
		k.in = group("inputs", decl.Inputs)
		k.out = group("outputs", decl.Outputs)
		k.tmp = group("temps", decl.Temps)
		if len(kerrs) > 0 {
			errs = append(errs, kerrs...)
			continue
		}
		kernels = append(kernels, k)
	}
	if len(cfg.Kernels) == 0 {
		errs = append(errs, fmt.Errorf("no kernels declared: %w", errConfig))
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return kernels, nil
}

// generateBindFile renders the bind functions of every kernel.
func generateBindFile(pkg string, kernels []boundKernel, extraImports []string) []byte {
	var body bytes.Buffer
	needUnsafe := false
	for _, k := range kernels {
		if emitKernel(&body, k) {
			needUnsafe = true
		}
	}

	paths := append([]string{kernPath}, extraImports...)
	if needUnsafe {
		paths = append(paths, "unsafe")
	}
	var buf bytes.Buffer
	writeFileHeader(&buf, pkg, paths...)
	buf.Write(body.Bytes())
	return buf.Bytes()
}

// slotGroup names one role of a kernel in generated identifiers.
type slotGroup struct {
	role  string // Input, Output, Temp
	param string // in, out
	kern  string // In, Out, Tmp
	types typelist.List
}

func (g slotGroup) offsetName(k boundKernel, i int) string {
	return fmt.Sprintf("%s%sOffset%d", k.id, g.role, i)
}

func (k boundKernel) groups() []slotGroup {
	return []slotGroup{
		{role: "Input", param: "in", kern: "In", types: k.in},
		{role: "Output", param: "out", kern: "Out", types: k.out},
		{role: "Temp", kern: "Tmp", types: k.tmp},
	}
}

// emitKernel writes the declarations of one kernel and reports whether they
// use package unsafe.
func emitKernel(buf *bytes.Buffer, k boundKernel) bool {
	groups := k.groups()
	usesUnsafe := false

	fmt.Fprintf(buf, "// %s kernel: inputs %v, outputs %v, temps %v.\n", k.id, k.in, k.out, k.tmp)
	var consts []string
	for _, g := range groups {
		for i, off := range g.types.Offsets() {
			consts = append(consts, fmt.Sprintf("\t%s = %d\n", g.offsetName(k, i), off))
		}
	}
	if len(consts) > 0 {
		buf.WriteString("const (\n")
		buf.WriteString(strings.Join(consts, ""))
		buf.WriteString(")\n\n")
	}

	// Each offset is the previous one plus the previous slot's size.
	// Checking that against unsafe.Sizeof fails the build when the file
	// was generated for an architecture with different sizes.
	var checks []string
	for _, g := range groups {
		typelist.Apply(g.types, func(_ typelist.Type, i int) {
			if i == 0 {
				return
			}
			prev := g.types.MustGet(i - 1)
			checks = append(checks, fmt.Sprintf("\t_ = [1]struct{}{}[%s-%s-unsafe.Sizeof(*new(%s))]\n",
				g.offsetName(k, i), g.offsetName(k, i-1), prev.Name))
		})
	}
	if len(checks) > 0 {
		usesUnsafe = true
		buf.WriteString("var (\n")
		buf.WriteString(strings.Join(checks, ""))
		buf.WriteString(")\n\n")
	}

	viewsIn, viewsOut, viewsTmp := groupType("Views", k.in), groupType("Views", k.out), groupType("Views", k.tmp)
	fmt.Fprintf(buf, "// %sOp is the operation signature of the %s kernel.\n", k.id, k.name)
	fmt.Fprintf(buf, "type %sOp[S any] = kern.Op[%s, %s, %s, S]\n\n", k.id, viewsIn, viewsOut, viewsTmp)
	fmt.Fprintf(buf, "// %sEngine is the %s kernel bound to raw addresses.\n", k.id, k.name)
	fmt.Fprintf(buf, "type %sEngine[S any] = kern.Engine[%s, %s, %s, %s, %s, %s, S]\n\n", k.id,
		groupType("Seq", k.in), groupType("Seq", k.out), groupType("Seq", k.tmp), viewsIn, viewsOut, viewsTmp)

	// One address per slot.
	var params, ctors []string
	for _, g := range groups[:2] {
		names := slotParams(g)
		params = append(params, names...)
		ctors = append(ctors, fmt.Sprintf("kern.%s%d%s(%s)", g.kern, g.types.Size(), typeArgs(g.types), strings.Join(names, ", ")))
	}
	tmpCtor := fmt.Sprintf("kern.Tmp%d%s()", k.tmp.Size(), typeArgs(k.tmp))
	sig := "op " + k.id + "Op[S]"
	if len(params) > 0 {
		usesUnsafe = true
		sig += ", " + strings.Join(params, ", ") + " unsafe.Pointer"
	}
	fmt.Fprintf(buf, "// Bind%s binds op to one address per input and output slot of the %s kernel.\n", k.id, k.name)
	fmt.Fprintf(buf, "func Bind%s[S any](%s, opts ...kern.Option) *%sEngine[S] {\n", k.id, sig, k.id)
	fmt.Fprintf(buf, "\treturn kern.NewWithTemp(op, %s, %s, %s, opts...)\n}\n\n", ctors[0], ctors[1], tmpCtor)

	if k.in.IsEmpty() && k.out.IsEmpty() {
		return usesUnsafe
	}

	// One packed buffer per group.
	var packedParams, packedCtors []string
	for _, g := range groups[:2] {
		if g.types.IsEmpty() {
			packedCtors = append(packedCtors, fmt.Sprintf("kern.%s0()", g.kern))
			continue
		}
		packedParams = append(packedParams, g.param)
		packedCtors = append(packedCtors, fmt.Sprintf("kern.Packed%s%d%s(%s)", g.kern, g.types.Size(), typeArgs(g.types), g.param))
	}
	fmt.Fprintf(buf, "// Bind%sPacked binds op to packed input and output buffers of the %s kernel.\n", k.id, k.name)
	fmt.Fprintf(buf, "func Bind%sPacked[S any](op %sOp[S], %s unsafe.Pointer, opts ...kern.Option) *%sEngine[S] {\n",
		k.id, k.id, strings.Join(packedParams, ", "), k.id)
	fmt.Fprintf(buf, "\treturn kern.NewWithTemp(op, %s, %s, %s, opts...)\n}\n\n", packedCtors[0], packedCtors[1], tmpCtor)
	return usesUnsafe
}

// slotParams names the address parameters of a group: in0, in1, ...
func slotParams(g slotGroup) []string {
	return lo.Map(typelist.IndexSeqOf(g.types).Slice(), func(i, _ int) string {
		return fmt.Sprintf("%s%d", g.param, i)
	})
}

// typeArgs is the type argument list of a group: "[int32, int8]".
func typeArgs(l typelist.List) string {
	if l.IsEmpty() {
		return ""
	}
	return "[" + strings.Join(typelistNames(l), ", ") + "]"
}

// groupType is the kern type of a group: "kern.Seq2[int32, int8]".
func groupType(kind string, l typelist.List) string {
	return fmt.Sprintf("kern.%s%d%s", kind, l.Size(), typeArgs(l))
}
