// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package seq

import (
	"cmp"
	"fmt"
	"strings"
)

// Erased marks type-erased intermediate values, such as the accumulator
// of a primitive fold whose state type is chosen per call.
type Erased = any

// Op names an operation resolved against a data type tag.
type Op uint8

const (
	OpUnpack Op = iota
	OpFoldl
	OpFoldr
	OpLength
	OpHead
	OpTail
	OpIsEmpty
	OpAt
	OpDrop
	OpPrepend
	OpAppend
	OpEmpty
	OpConcat
	OpMake
	OpEqual
	OpLess
	opCount
)

var opNames = [opCount]string{
	OpUnpack:  "unpack",
	OpFoldl:   "foldl",
	OpFoldr:   "foldr",
	OpLength:  "length",
	OpHead:    "head",
	OpTail:    "tail",
	OpIsEmpty: "is_empty",
	OpAt:      "at",
	OpDrop:    "drop",
	OpPrepend: "prepend",
	OpAppend:  "append",
	OpEmpty:   "empty",
	OpConcat:  "concat",
	OpMake:    "make",
	OpEqual:   "equal",
	OpLess:    "less",
}

func (o Op) String() string {
	if o < opCount {
		return opNames[o]
	}
	return fmt.Sprintf("Op(%d)", uint8(o))
}

// Source records how an operation was resolved for a tag.
type Source uint8

const (
	// Missing means no implementation is available.
	Missing Source = iota
	// Explicit means the definition supplied the operation.
	Explicit
	// Derived means a default was built from other operations.
	Derived
)

func (s Source) String() string {
	switch s {
	case Explicit:
		return "explicit"
	case Derived:
		return "derived"
	default:
		return "missing"
	}
}

// Tag is the resolved dispatch table of a data type.
// It is built once by a class constructor and never mutated afterwards.
type Tag struct {
	name  string
	table [opCount]Source
}

// Name returns the data type name given in the definition.
func (t *Tag) Name() string { return t.name }

// Source reports how op was resolved.
func (t *Tag) Source(op Op) Source {
	if op >= opCount {
		return Missing
	}
	return t.table[op]
}

// Has reports whether op resolved to an implementation.
func (t *Tag) Has(op Op) bool { return t.Source(op) != Missing }

func (t *Tag) String() string {
	var b strings.Builder
	b.WriteString(t.name)
	b.WriteByte('{')
	first := true
	for op := range opCount {
		if t.table[op] == Missing {
			continue
		}
		if !first {
			b.WriteByte(' ')
		}
		first = false
		fmt.Fprintf(&b, "%s:%s", op, t.table[op])
	}
	b.WriteByte('}')
	return b.String()
}

// resolve records the source of op: explicit wins over derived, and the
// derived default only applies when its prerequisites are present.
func (t *Tag) resolve(op Op, explicit, derivable bool) bool {
	switch {
	case explicit:
		t.table[op] = Explicit
	case derivable:
		t.table[op] = Derived
	default:
		t.table[op] = Missing
		return false
	}
	return true
}

// Elem carries the Comparable and Orderable instances of an element type.
// Either field may be nil; operations defaulting to it then fail with a
// DispatchError before inspecting any element.
type Elem[A any] struct {
	Equal func(x, y A) bool
	Less  func(x, y A) bool
}

// OrderedElem returns the natural instances of an ordered type.
func OrderedElem[A cmp.Ordered]() Elem[A] {
	return Elem[A]{
		Equal: func(x, y A) bool { return x == y },
		Less:  cmp.Less[A],
	}
}

// ComparableElem returns an equality-only instance.
func ComparableElem[A comparable]() Elem[A] {
	return Elem[A]{Equal: func(x, y A) bool { return x == y }}
}

// Def describes a data type S with elements A through its primitive
// operations. Every field is optional; class constructors derive what is
// missing or fail when a required capability cannot be resolved.
//
// A Foldable needs Unpack, or either fold, or Head, Tail and IsEmpty.
// An Iterable needs Head, Tail and IsEmpty; a Sequence may instead supply
// Unpack and Make. A Sequence additionally needs Prepend and Empty.
type Def[S, A any] struct {
	Name string

	Unpack func(xs S) []A
	Foldl  func(xs S, state Erased, f func(Erased, A) Erased) Erased
	Foldr  func(xs S, state Erased, f func(A, Erased) Erased) Erased
	Length func(xs S) int

	Head    func(xs S) A
	Tail    func(xs S) S
	IsEmpty func(xs S) bool
	At      func(xs S, n int) A
	Drop    func(xs S, n int) S

	Prepend func(x A, xs S) S
	Append  func(xs S, x A) S
	Empty   func() S
	Concat  func(xs, ys S) S
	Make    func(elems []A) S

	Elem Elem[A]
}

func (d *Def[S, A]) name() string {
	if d.Name != "" {
		return d.Name
	}
	var zero S
	return fmt.Sprintf("%T", zero)
}

func (d *Def[S, A]) hasIterable() bool {
	return d.Head != nil && d.Tail != nil && d.IsEmpty != nil
}

