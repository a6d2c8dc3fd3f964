// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package seq

import (
	"fmt"
	"strings"
)

// List is a persistent singly linked list. The zero value is the empty
// list, and lists built from a common tail share it.
type List[A any] struct {
	node *cons[A]
}

type cons[A any] struct {
	head A
	tail *cons[A]
	n    int
}

// Cons returns x followed by l.
func Cons[A any](x A, l List[A]) List[A] {
	return List[A]{node: &cons[A]{head: x, tail: l.node, n: l.Len() + 1}}
}

// ListFrom builds a List holding elems in order.
func ListFrom[A any](elems ...A) List[A] {
	var l List[A]
	for i := len(elems) - 1; i >= 0; i-- {
		l = Cons(elems[i], l)
	}
	return l
}

// Len returns the number of elements in constant time.
func (l List[A]) Len() int {
	if l.node == nil {
		return 0
	}
	return l.node.n
}

func (l List[A]) String() string {
	var b strings.Builder
	b.WriteString("List[")
	for n := l.node; n != nil; n = n.tail {
		if n != l.node {
			b.WriteByte(' ')
		}
		fmt.Fprint(&b, n.head)
	}
	b.WriteByte(']')
	return b.String()
}

// ListOf returns the Sequence class of List[A]. It supplies only the
// minimal primitives, so every other operation runs through the defaults
// derived from them.
func ListOf[A any](elem Elem[A]) *Sequence[List[A], A] {
	return MustSequence(Def[List[A], A]{
		Name:    "List",
		Head:    func(l List[A]) A { return l.node.head },
		Tail:    func(l List[A]) List[A] { return List[A]{node: l.node.tail} },
		IsEmpty: func(l List[A]) bool { return l.node == nil },
		Prepend: Cons[A],
		Empty:   func() List[A] { return List[A]{} },
		Elem:    elem,
	})
}
