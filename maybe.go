// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package seq

import "fmt"

// Maybe is an optional value: either Just a value or Nothing.
// It is the result of searches and the step result of unfolds.
type Maybe[A any] struct {
	value A
	ok    bool
}

// Just wraps a present value.
func Just[A any](a A) Maybe[A] {
	return Maybe[A]{value: a, ok: true}
}

// Nothing returns the empty Maybe.
func Nothing[A any]() Maybe[A] {
	return Maybe[A]{}
}

// IsJust returns true if a value is present.
func (m Maybe[A]) IsJust() bool { return m.ok }

// IsNothing returns true if no value is present.
func (m Maybe[A]) IsNothing() bool { return !m.ok }

// Get returns the value and true, or zero and false.
func (m Maybe[A]) Get() (A, bool) { return m.value, m.ok }

func (m Maybe[A]) String() string {
	if m.ok {
		return fmt.Sprintf("Just(%v)", m.value)
	}
	return "Nothing"
}

// FromJust returns the value of m. It panics with ErrEmpty on Nothing.
func FromJust[A any](m Maybe[A]) A {
	if !m.ok {
		emptyStructure("Maybe", "from_just")
	}
	return m.value
}

// FromMaybe returns the value of m, or def on Nothing.
func FromMaybe[A any](def A, m Maybe[A]) A {
	if m.ok {
		return m.value
	}
	return def
}

// MatchMaybe eliminates m: onNothing for Nothing, onJust with the value
// otherwise.
func MatchMaybe[A, T any](m Maybe[A], onNothing func() T, onJust func(A) T) T {
	if m.ok {
		return onJust(m.value)
	}
	return onNothing()
}

// MapMaybe applies f to the value of m, if any.
func MapMaybe[A, B any](m Maybe[A], f func(A) B) Maybe[B] {
	if m.ok {
		return Just(f(m.value))
	}
	return Nothing[B]()
}

// FlatMapMaybe sequences two optional computations.
func FlatMapMaybe[A, B any](m Maybe[A], f func(A) Maybe[B]) Maybe[B] {
	if m.ok {
		return f(m.value)
	}
	return Nothing[B]()
}

// MaybeOf returns the Foldable class of Maybe[A]: Nothing has no
// elements and Just one.
func MaybeOf[A any](elem Elem[A]) *Foldable[Maybe[A], A] {
	return MustFoldable(Def[Maybe[A], A]{
		Name:    "Maybe",
		Head:    FromJust[A],
		Tail:    func(Maybe[A]) Maybe[A] { return Nothing[A]() },
		IsEmpty: Maybe[A].IsNothing,
		Length: func(m Maybe[A]) int {
			if m.ok {
				return 1
			}
			return 0
		},
		Elem: elem,
	})
}
