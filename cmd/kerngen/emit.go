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
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"golang.org/x/mod/modfile"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/tools/imports"
)

const (
	modulePath   = "github.com/ajroetker/go-elemwise"
	kernPath     = modulePath + "/kern"
	typelistPath = modulePath + "/typelist"

	generatedHeader = "// Code generated by kerngen. DO NOT EDIT.\n\n"
)

// generateFunc renders the source of one output file.
type generateFunc func() ([]byte, error)

// writeFiles renders, formats and writes every file concurrently. The first
// failure cancels the files not yet started.
func writeFiles(ctx context.Context, dir string, files map[string]generateFunc) error {
	g, ctx := errgroup.WithContext(ctx)
	for name, gen := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			file := filepath.Join(dir, name)
			src, err := gen()
			if err != nil {
				return fmt.Errorf("generate %s: %w", file, err)
			}
			src, err = formatSource(file, src)
			if err != nil {
				return err
			}
			if err := os.WriteFile(file, src, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", file, err)
			}
			logger.Printf("generated %s", file)
			return nil
		})
	}
	return g.Wait()
}

// formatSource gofmts src and groups its imports. It never adds or removes
// imports: generated files declare exactly what they use.
func formatSource(filename string, src []byte) ([]byte, error) {
	out, err := imports.Process(filename, src, &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	})
	if err != nil {
		return nil, fmt.Errorf("format %s: %w\n%s", filename, err, src)
	}
	return out, nil
}

// writeFileHeader writes the generated-code marker, the package clause and
// an import block with std imports first.
func writeFileHeader(buf *bytes.Buffer, pkg string, paths ...string) {
	buf.WriteString(generatedHeader)
	fmt.Fprintf(buf, "package %s\n\n", pkg)

	var std, other []string
	for _, p := range paths {
		if strings.Contains(strings.SplitN(p, "/", 2)[0], ".") {
			other = append(other, p)
		} else {
			std = append(std, p)
		}
	}
	slices.Sort(std)
	slices.Sort(other)

	switch {
	case len(std)+len(other) == 0:
		return
	case len(std)+len(other) == 1:
		fmt.Fprintf(buf, "import %q\n\n", append(std, other...)[0])
		return
	}
	buf.WriteString("import (\n")
	for _, p := range std {
		fmt.Fprintf(buf, "\t%q\n", p)
	}
	if len(std) > 0 && len(other) > 0 {
		buf.WriteString("\n")
	}
	for _, p := range other {
		fmt.Fprintf(buf, "\t%q\n", p)
	}
	buf.WriteString(")\n\n")
}

var title = cases.Title(language.English)

// exportName turns a kernel name such as "fused_mul-add" into "FusedMulAdd".
func exportName(name string) string {
	parts := strings.FieldsFunc(name, func(r rune) bool {
		return r == '_' || r == '-' || r == ' ' || r == '.'
	})
	var sb strings.Builder
	for _, p := range parts {
		sb.WriteString(title.String(p))
	}
	return sb.String()
}

// findModuleRoot walks up from dir to the directory holding go.mod.
func findModuleRoot(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("go.mod not found")
		}
		dir = parent
	}
}

// moduleImportPath returns the module path declared in root/go.mod.
func moduleImportPath(root string) (string, error) {
	data, err := os.ReadFile(filepath.Join(root, "go.mod"))
	if err != nil {
		return "", err
	}
	path := modfile.ModulePath(data)
	if path == "" {
		return "", fmt.Errorf("%s/go.mod has no module directive", root)
	}
	return path, nil
}

// packageImportPath returns the import path of dir inside the module rooted
// at root, or "" when dir lies outside it.
func packageImportPath(root, modPath, dir string) string {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return ""
	}
	rel, err := filepath.Rel(root, abs)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return ""
	}
	if rel == "." {
		return modPath
	}
	return path.Join(modPath, filepath.ToSlash(rel))
}
