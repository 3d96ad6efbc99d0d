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
	"errors"
	"fmt"
	"go/types"
	"strings"

	"golang.org/x/tools/go/packages"

	"github.com/ajroetker/go-elemwise/typelist"
)

var errUnknownType = errors.New("unknown element type")

// resolver turns element type spellings from a kernel config into
// descriptors sized for one GOARCH. Predeclared types come from the
// universe scope; "import/path.Name" types are loaded with go/packages.
// A path starting with "./" is relative to the enclosing module. Types of
// the package the output is written to are spelled without a qualifier.
type resolver struct {
	dir     string
	modPath string
	self    string // import path of the generated file's package
	sizes   types.Sizes

	pkgs    map[string]*types.Package
	imports map[string]string // import path -> package name
}

func newResolver(dir, modPath, goarch string) (*resolver, error) {
	sizes := types.SizesFor("gc", goarch)
	if sizes == nil {
		return nil, fmt.Errorf("no type sizes for GOARCH %q", goarch)
	}
	return &resolver{
		dir:     dir,
		modPath: modPath,
		sizes:   sizes,
		pkgs:    make(map[string]*types.Package),
		imports: make(map[string]string),
	}, nil
}

// resolve returns the descriptor of expr. Its Name is the spelling to use
// in generated code.
func (r *resolver) resolve(expr string) (typelist.Type, error) {
	expr = strings.TrimSpace(expr)
	i := strings.LastIndex(expr, ".")
	if i < 0 {
		return r.resolveBasic(expr)
	}
	path, name := expr[:i], expr[i+1:]
	if rest, ok := strings.CutPrefix(path, "./"); ok {
		if r.modPath == "" {
			return typelist.Type{}, fmt.Errorf("%q: relative import outside a module: %w", expr, errUnknownType)
		}
		path = r.modPath + "/" + rest
	}

	pkg, err := r.load(path)
	if err != nil {
		return typelist.Type{}, fmt.Errorf("%q: %w", expr, err)
	}
	tn, ok := pkg.Scope().Lookup(name).(*types.TypeName)
	if !ok || !tn.Exported() {
		return typelist.Type{}, fmt.Errorf("%q: no exported type %s in %s: %w", expr, name, path, errUnknownType)
	}
	t := tn.Type()
	if path == r.self {
		return typelist.Type{
			Name:  name,
			Kind:  typelist.Opaque,
			Size:  uintptr(r.sizes.Sizeof(t)),
			Align: uintptr(r.sizes.Alignof(t)),
		}, nil
	}
	if err := r.addImport(path, pkg.Name()); err != nil {
		return typelist.Type{}, fmt.Errorf("%q: %w", expr, err)
	}
	return typelist.Type{
		Name:  pkg.Name() + "." + name,
		Kind:  typelist.Opaque,
		Size:  uintptr(r.sizes.Sizeof(t)),
		Align: uintptr(r.sizes.Alignof(t)),
	}, nil
}

// addImport records that generated code refers to path by name.
func (r *resolver) addImport(path, name string) error {
	if prev, ok := r.imports[path]; ok {
		if prev != name {
			return fmt.Errorf("inconsistent package name for %s", path)
		}
		return nil
	}
	for p, n := range r.imports {
		if n == name {
			return fmt.Errorf("package name %s also used by %s", n, p)
		}
	}
	r.imports[path] = name
	return nil
}

func (r *resolver) resolveBasic(name string) (typelist.Type, error) {
	tn, ok := types.Universe.Lookup(name).(*types.TypeName)
	if !ok {
		return typelist.Type{}, fmt.Errorf("%q: %w", name, errUnknownType)
	}
	basic, ok := tn.Type().(*types.Basic)
	if !ok || basic.Kind() == types.Invalid || basic.Kind() == types.UnsafePointer {
		return typelist.Type{}, fmt.Errorf("%q is not an element type: %w", name, errUnknownType)
	}
	kind, _ := typelist.KindByName(name)
	return typelist.Type{
		Name:  name,
		Kind:  kind,
		Size:  uintptr(r.sizes.Sizeof(basic)),
		Align: uintptr(r.sizes.Alignof(basic)),
	}, nil
}

func (r *resolver) load(path string) (*types.Package, error) {
	if pkg, ok := r.pkgs[path]; ok {
		return pkg, nil
	}
	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedTypes,
		Dir:  r.dir,
	}
	pkgs, err := packages.Load(cfg, path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	if len(pkgs) != 1 {
		return nil, fmt.Errorf("load %s: got %d packages", path, len(pkgs))
	}
	if len(pkgs[0].Errors) > 0 {
		return nil, fmt.Errorf("load %s: %v: %w", path, pkgs[0].Errors[0], errUnknownType)
	}
	r.pkgs[path] = pkgs[0].Types
	return pkgs[0].Types, nil
}

// importPaths returns the import paths of every resolved named type.
func (r *resolver) importPaths() []string {
	paths := make([]string, 0, len(r.imports))
	for p := range r.imports {
		paths = append(paths, p)
	}
	return paths
}
