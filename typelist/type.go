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
	"fmt"
	"unsafe"
)

// Kind classifies the element type a Type describes.
type Kind uint8

// Element kinds. Opaque covers every type that is not a predeclared
// boolean or numeric type, including named types with a numeric
// underlying type.
const (
	Opaque Kind = iota
	Bool
	Int8
	Int16
	Int32
	Int64
	Int
	Uint8
	Uint16
	Uint32
	Uint64
	Uint
	Uintptr
	Float32
	Float64
	Complex64
	Complex128
)

var kindNames = [...]string{
	Opaque:     "opaque",
	Bool:       "bool",
	Int8:       "int8",
	Int16:      "int16",
	Int32:      "int32",
	Int64:      "int64",
	Int:        "int",
	Uint8:      "uint8",
	Uint16:     "uint16",
	Uint32:     "uint32",
	Uint64:     "uint64",
	Uint:       "uint",
	Uintptr:    "uintptr",
	Float32:    "float32",
	Float64:    "float64",
	Complex64:  "complex64",
	Complex128: "complex128",
}

// String returns the Go spelling of the kind.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// KindByName maps a predeclared Go type name to its Kind.
// "byte" and "rune" are accepted as aliases.
func KindByName(name string) (Kind, bool) {
	switch name {
	case "byte":
		return Uint8, true
	case "rune":
		return Int32, true
	}
	for k, n := range kindNames {
		if n == name && Kind(k) != Opaque {
			return Kind(k), true
		}
	}
	return Opaque, false
}

// Type describes one element type.
type Type struct {
	Name  string
	Kind  Kind
	Size  uintptr
	Align uintptr
}

// String returns the descriptor name.
func (t Type) String() string {
	return t.Name
}

// Named is implemented by element types that want a readable descriptor
// name. Of falls back to "opaque" for non-predeclared types without it.
type Named interface {
	TypeName() string
}

// Of returns the descriptor of T. Size and alignment come from the
// compiler; the kind is determined by matching the predeclared types.
func Of[T any]() Type {
	var zero T
	k := kindOf(zero)
	name := k.String()
	if k == Opaque {
		if n, ok := any(zero).(Named); ok {
			name = n.TypeName()
		}
	}
	return Type{
		Name:  name,
		Kind:  k,
		Size:  unsafe.Sizeof(zero),
		Align: unsafe.Alignof(zero),
	}
}

func kindOf[T any](v T) Kind {
	switch any(v).(type) {
	case bool:
		return Bool
	case int8:
		return Int8
	case int16:
		return Int16
	case int32:
		return Int32
	case int64:
		return Int64
	case int:
		return Int
	case uint8:
		return Uint8
	case uint16:
		return Uint16
	case uint32:
		return Uint32
	case uint64:
		return Uint64
	case uint:
		return Uint
	case uintptr:
		return Uintptr
	case float32:
		return Float32
	case float64:
		return Float64
	case complex64:
		return Complex64
	case complex128:
		return Complex128
	default:
		return Opaque
	}
}
