package main

import (
	"errors"
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
)

func TestExportName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"add", "Add"},
		{"fused_mul-add", "FusedMulAdd"},
		{"scale by.two", "ScaleByTwo"},
		{"AXPY", "Axpy"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := exportName(tt.in); got != tt.want {
				t.Errorf("exportName(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

// parseGenerated formats src the way writeFiles does and parses the result.
func parseGenerated(t *testing.T, name string, src []byte) *ast.File {
	t.Helper()
	out, err := formatSource(name, src)
	if err != nil {
		t.Fatalf("formatSource: %v", err)
	}
	f, err := parser.ParseFile(token.NewFileSet(), name, out, parser.ParseComments)
	if err != nil {
		t.Fatalf("parse %s: %v\n%s", name, err, out)
	}
	return f
}

func declNames(f *ast.File) map[string]bool {
	names := make(map[string]bool)
	for _, d := range f.Decls {
		switch d := d.(type) {
		case *ast.FuncDecl:
			name := d.Name.Name
			if d.Recv != nil && len(d.Recv.List) == 1 {
				name = recvName(d.Recv.List[0].Type) + "." + name
			}
			names[name] = true
		case *ast.GenDecl:
			for _, s := range d.Specs {
				switch s := s.(type) {
				case *ast.TypeSpec:
					names[s.Name.Name] = true
				case *ast.ValueSpec:
					for _, n := range s.Names {
						names[n.Name] = true
					}
				}
			}
		}
	}
	return names
}

func recvName(expr ast.Expr) string {
	switch e := expr.(type) {
	case *ast.StarExpr:
		return recvName(e.X)
	case *ast.IndexExpr:
		return recvName(e.X)
	case *ast.IndexListExpr:
		return recvName(e.X)
	case *ast.Ident:
		return e.Name
	}
	return ""
}

func TestGenerateSeqFile(t *testing.T) {
	f := parseGenerated(t, "seq.gen.go", generateSeqFile("kern", 3))
	if f.Name.Name != "kern" {
		t.Errorf("package = %s, want kern", f.Name.Name)
	}
	names := declNames(f)
	for _, want := range []string{
		"Seq0", "Seq3", "Views0", "Views3",
		"Seq2.Len", "Seq2.Types", "Seq2.views", "Seq2.sized",
		"In0", "Out0", "Tmp0", "In3", "PackedIn3", "Out3", "PackedOut3", "Tmp3",
	} {
		if !names[want] {
			t.Errorf("generated seq file lacks %s", want)
		}
	}
	for _, absent := range []string{"Seq4", "PackedIn0", "PackedOut0"} {
		if names[absent] {
			t.Errorf("generated seq file declares %s", absent)
		}
	}
}

func TestGenerateTupleFile(t *testing.T) {
	f := parseGenerated(t, "tuple.gen.go", generateTupleFile("kern", 4))
	names := declNames(f)
	for n := 0; n <= 4; n++ {
		a := newArity(n)
		if !names[strings.TrimSuffix(a.tuple(), a.args())] {
			t.Errorf("missing Tuple%d", n)
		}
		for i := 0; i < 6; i++ {
			method := "Tuple" + string(rune('0'+n)) + ".Get" + string(rune('0'+i))
			if got, want := names[method], i < n; got != want {
				t.Errorf("%s declared = %v, want %v", method, got, want)
			}
		}
	}
	if names["MakeTuple0"] {
		t.Error("MakeTuple0 should not be generated")
	}
	if !names["MakeTuple4"] {
		t.Error("MakeTuple4 missing")
	}
}

func TestArityCommandRejectsRange(t *testing.T) {
	root := newRootCmd()
	root.SetArgs([]string{"arity", "--max", "27", "--out", t.TempDir()})
	root.SetErr(new(strings.Builder))
	err := root.Execute()
	if !errors.Is(err, errArity) {
		t.Fatalf("Execute() error = %v, want errArity", err)
	}
}

func TestArityCommandWritesFiles(t *testing.T) {
	dir := t.TempDir()
	root := newRootCmd()
	root.SetArgs([]string{"arity", "--max", "2", "--pkg", "gen", "--out", dir})
	if err := root.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	for _, name := range []string{"seq.gen.go", "tuple.gen.go"} {
		src, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			t.Fatal(err)
		}
		if !strings.HasPrefix(string(src), "// Code generated by kerngen. DO NOT EDIT.") {
			t.Errorf("%s lacks the generated-code marker", name)
		}
		if !strings.Contains(string(src), "package gen") {
			t.Errorf("%s has the wrong package clause", name)
		}
	}
}

func TestLoadKernelConfig(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		wantErr bool
	}{
		{"Valid", "package: ops\nkernels:\n  - name: add\n    inputs: [int32, int32]\n    outputs: [int32]\n", false},
		{"Empty", "", true},
		{"UnknownField", "package: ops\nkernels:\n  - name: add\n    input: [int32]\n", true},
		{"BadPackage", "package: 9ops\nkernels: []\n", true},
		{"MissingPackage", "kernels: []\n", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := loadKernelConfig(strings.NewReader(tt.src))
			if (err != nil) != tt.wantErr {
				t.Fatalf("loadKernelConfig() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, errConfig) {
				t.Errorf("error %v does not wrap errConfig", err)
			}
		})
	}
}

func newTestResolver(t *testing.T) *resolver {
	t.Helper()
	res, err := newResolver(t.TempDir(), "", "amd64")
	if err != nil {
		t.Fatal(err)
	}
	return res
}

func TestResolveBasic(t *testing.T) {
	res := newTestResolver(t)
	tests := []struct {
		expr      string
		size      uintptr
		align     uintptr
		wantErr   bool
		wantKind  string
		wantSpell string
	}{
		{expr: "int32", size: 4, align: 4, wantKind: "int32", wantSpell: "int32"},
		{expr: "int8", size: 1, align: 1, wantKind: "int8", wantSpell: "int8"},
		{expr: "float64", size: 8, align: 8, wantKind: "float64", wantSpell: "float64"},
		{expr: "byte", size: 1, align: 1, wantKind: "uint8", wantSpell: "byte"},
		{expr: "complex128", size: 16, align: 8, wantKind: "complex128", wantSpell: "complex128"},
		{expr: "string", size: 16, align: 8, wantKind: "opaque", wantSpell: "string"},
		{expr: "float16", wantErr: true},
		{expr: "error", wantErr: true},
		{expr: "len", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			got, err := res.resolve(tt.expr)
			if (err != nil) != tt.wantErr {
				t.Fatalf("resolve(%q) error = %v, wantErr %v", tt.expr, err, tt.wantErr)
			}
			if err != nil {
				if !errors.Is(err, errUnknownType) {
					t.Errorf("error %v does not wrap errUnknownType", err)
				}
				return
			}
			if got.Name != tt.wantSpell || got.Kind.String() != tt.wantKind || got.Size != tt.size || got.Align != tt.align {
				t.Errorf("resolve(%q) = %+v", tt.expr, got)
			}
		})
	}
}

func TestResolveNamed(t *testing.T) {
	if testing.Short() {
		t.Skip("loads packages with the go command")
	}
	res := newTestResolver(t)
	got, err := res.resolve("time.Duration")
	if err != nil {
		t.Fatal(err)
	}
	if got.Name != "time.Duration" || got.Size != 8 {
		t.Errorf("resolve(time.Duration) = %+v", got)
	}
	if paths := res.importPaths(); len(paths) != 1 || paths[0] != "time" {
		t.Errorf("importPaths() = %v, want [time]", paths)
	}
	if _, err := res.resolve("time.notAType"); !errors.Is(err, errUnknownType) {
		t.Errorf("resolve(time.notAType) error = %v, want errUnknownType", err)
	}
}

func TestResolveKernels(t *testing.T) {
	res := newTestResolver(t)

	cfg := kernelConfig{Package: "ops", Kernels: []kernelDecl{
		{Name: "add", Inputs: []string{"int32", "int32"}, Outputs: []string{"int32"}},
		{Name: "mixed", Inputs: []string{"int32", "int8"}, Outputs: []string{"float32"}, Temps: []string{"float32"}},
	}}
	kernels, err := resolveKernels(cfg, res, DefaultMaxArity)
	if err != nil {
		t.Fatal(err)
	}
	if len(kernels) != 2 {
		t.Fatalf("got %d kernels, want 2", len(kernels))
	}
	if off, _ := kernels[0].in.ByteOffset(1); off != 4 {
		t.Errorf("add input offset 1 = %d, want 4", off)
	}
	if got := kernels[1].tmp.String(); got != "[float32]" {
		t.Errorf("mixed temps = %s", got)
	}

	bad := kernelConfig{Package: "ops", Kernels: []kernelDecl{
		{Name: "wide", Inputs: []string{"int8", "int8", "int8", "int8", "int8", "int8", "int8"}},
		{Name: "typo", Inputs: []string{"flaot32"}},
		{Name: "add"},
		{Name: "add"},
		{Name: "_"},
	}}
	_, err = resolveKernels(bad, res, DefaultMaxArity)
	for _, want := range []error{errArity, errUnknownType, errConfig} {
		if !errors.Is(err, want) {
			t.Errorf("resolveKernels error %v does not wrap %v", err, want)
		}
	}

	if _, err := resolveKernels(kernelConfig{Package: "ops"}, res, DefaultMaxArity); !errors.Is(err, errConfig) {
		t.Errorf("empty kernel list error = %v, want errConfig", err)
	}
}

func TestGenerateBindFile(t *testing.T) {
	res := newTestResolver(t)
	cfg := kernelConfig{Package: "ops", Kernels: []kernelDecl{
		{Name: "add", Inputs: []string{"int32", "int32"}, Outputs: []string{"int32"}},
		{Name: "mixed", Inputs: []string{"int32", "int8"}, Outputs: []string{"float32"}, Temps: []string{"float32", "float64"}},
		{Name: "nop"},
	}}
	kernels, err := resolveKernels(cfg, res, DefaultMaxArity)
	if err != nil {
		t.Fatal(err)
	}
	src := generateBindFile(cfg.Package, kernels, res.importPaths())
	f := parseGenerated(t, "kernels.gen.go", src)
	names := declNames(f)
	for _, want := range []string{
		"AddInputOffset0", "AddInputOffset1", "AddOutputOffset0",
		"AddOp", "AddEngine", "BindAdd", "BindAddPacked",
		"MixedTempOffset1", "BindMixed", "BindMixedPacked",
		"NopOp", "BindNop",
	} {
		if !names[want] {
			t.Errorf("generated bind file lacks %s", want)
		}
	}
	if names["BindNopPacked"] {
		t.Error("BindNopPacked generated for a kernel without slots")
	}

	out, err := formatSource("kernels.gen.go", src)
	if err != nil {
		t.Fatal(err)
	}
	for _, re := range []string{
		`AddInputOffset1\s+= 4\n`,
		`MixedInputOffset1\s+= 4\n`,
		`MixedTempOffset1\s+= 4\n`,
		`func BindAdd\[S any\]\(op AddOp\[S\], in0, in1, out0 unsafe.Pointer, opts \.\.\.kern.Option\) \*AddEngine\[S\]`,
		`kern.PackedIn2\[int32, int8\]\(in\)`,
		`kern.Tmp2\[float32, float64\]\(\)`,
		`type AddOp\[S any\] = kern.Op\[kern.Views2\[int32, int32\], kern.Views1\[int32\], kern.Views0, S\]`,
	} {
		if !regexp.MustCompile(re).Match(out) {
			t.Errorf("generated bind file does not match %s\n%s", re, out)
		}
	}
}

func TestBindCommand(t *testing.T) {
	dir := t.TempDir()
	config := filepath.Join(dir, "kernels.yaml")
	if err := os.WriteFile(config, []byte("package: ops\nkernels:\n  - name: add\n    inputs: [int32, int32]\n    outputs: [int32]\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(dir, "kernels.gen.go")

	root := newRootCmd()
	root.SetArgs([]string{"bind", "--config", config, "--out", out, "--goarch", "arm64"})
	if err := root.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	src, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(src), "func BindAdd[S any]") {
		t.Errorf("bind output lacks BindAdd:\n%s", src)
	}

	root = newRootCmd()
	root.SetArgs([]string{"bind", "--config", config, "--out", out, "--goarch", "pdp11"})
	root.SetErr(new(strings.Builder))
	if err := root.Execute(); err == nil {
		t.Error("unknown GOARCH accepted")
	}
}

func TestResolveOwnPackage(t *testing.T) {
	if testing.Short() {
		t.Skip("loads packages with the go command")
	}
	res := newTestResolver(t)
	res.self = "time"
	got, err := res.resolve("time.Duration")
	if err != nil {
		t.Fatal(err)
	}
	if got.Name != "Duration" || got.Size != 8 {
		t.Errorf("resolve(time.Duration) in package time = %+v, want unqualified Duration", got)
	}
	if paths := res.importPaths(); len(paths) != 0 {
		t.Errorf("importPaths() = %v, want none", paths)
	}
}

func TestPackageImportPath(t *testing.T) {
	root := t.TempDir()
	tests := []struct {
		name string
		dir  string
		want string
	}{
		{"Root", root, "example.com/m"},
		{"Nested", filepath.Join(root, "ops", "fast"), "example.com/m/ops/fast"},
		{"Outside", filepath.Dir(root), ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := packageImportPath(root, "example.com/m", tt.dir); got != tt.want {
				t.Errorf("packageImportPath(%q) = %q, want %q", tt.dir, got, tt.want)
			}
		})
	}
}

func TestGeneratedCommentsPlural(t *testing.T) {
	src := string(generateSeqFile("kern", 2))
	for _, want := range []string{
		"// Seq1 is a type sequence of 1 element type.\n",
		"// Seq2 is a type sequence of 2 element types.\n",
		"// In1 binds an input group of 1 slot, one address per slot.\n",
		"// Tmp2 declares a temp group of 2 slots.\n",
	} {
		if !strings.Contains(src, want) {
			t.Errorf("generated seq file lacks %q", want)
		}
	}
	if strings.Contains(src, "1 slots") || strings.Contains(src, "1 element types") {
		t.Error("generated seq file uses a plural for one slot")
	}
}
