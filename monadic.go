// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package seq

import "code.hybscloud.com/kont"

// Monadic folds.
//
// FoldlM and FoldrM chain the reduction steps with kont.Bind, so they work
// for any monad embedded in the continuation monad. A step that returns a
// continuation without invoking it short-circuits the rest of the fold.
// FoldlMaybe, FoldrMaybe and FoldlEither are the Optional and Either
// specialisations, built on the same chain.

// FoldlM folds xs from the left, binding each step on the previous state.
func FoldlM[S, A, R, B any](f *Foldable[S, A], xs S, state B, fn func(B, A) kont.Cont[R, B]) kont.Cont[R, B] {
	m := kont.Return[R](state)
	f.each(xs, func(x A) bool {
		m = kont.Bind(m, func(b B) kont.Cont[R, B] { return fn(b, x) })
		return true
	})
	return m
}

// FoldrM folds xs from the right, binding each step on the previous state.
func FoldrM[S, A, R, B any](f *Foldable[S, A], xs S, state B, fn func(A, B) kont.Cont[R, B]) kont.Cont[R, B] {
	m := kont.Return[R](state)
	elems := f.unpack(xs)
	for i := len(elems) - 1; i >= 0; i-- {
		x := elems[i]
		m = kont.Bind(m, func(b B) kont.Cont[R, B] { return fn(x, b) })
	}
	return m
}

// abort is a continuation that discards k and answers r.
func abort[R, B any](r R) kont.Cont[R, B] {
	return func(func(B) R) R { return r }
}

// maybeStep embeds an Optional step into the continuation monad.
func maybeStep[B any](m Maybe[B]) kont.Cont[Maybe[B], B] {
	if v, ok := m.Get(); ok {
		return kont.Return[Maybe[B]](v)
	}
	return abort[Maybe[B], B](Nothing[B]())
}

// FoldlMaybe folds xs from the left; the first Nothing returned by fn
// ends the fold with Nothing.
func FoldlMaybe[S, A, B any](f *Foldable[S, A], xs S, state B, fn func(B, A) Maybe[B]) Maybe[B] {
	m := FoldlM(f, xs, state, func(b B, x A) kont.Cont[Maybe[B], B] {
		return maybeStep(fn(b, x))
	})
	return m(Just[B])
}

// FoldrMaybe folds xs from the right; the first Nothing returned by fn
// ends the fold with Nothing.
func FoldrMaybe[S, A, B any](f *Foldable[S, A], xs S, state B, fn func(A, B) Maybe[B]) Maybe[B] {
	m := FoldrM(f, xs, state, func(x A, b B) kont.Cont[Maybe[B], B] {
		return maybeStep(fn(x, b))
	})
	return m(Just[B])
}

// FoldlEither folds xs from the left; the first Left returned by fn ends
// the fold with that Left.
func FoldlEither[S, A, E, B any](f *Foldable[S, A], xs S, state B, fn func(B, A) kont.Either[E, B]) kont.Either[E, B] {
	m := FoldlM(f, xs, state, func(b B, x A) kont.Cont[kont.Either[E, B], B] {
		e := fn(b, x)
		if v, ok := e.GetRight(); ok {
			return kont.Return[kont.Either[E, B]](v)
		}
		return abort[kont.Either[E, B], B](e)
	})
	return m(kont.Right[E, B])
}

// TraverseM maps f over xs, running the steps left to right, and builds
// the results with to inside the continuation. Results are accumulated in
// a persistent list, so a continuation resumed more than once never sees
// another's results.
func TraverseM[S, A, T, B, R any](from *Foldable[S, A], to *Sequence[T, B], xs S, f func(A) kont.Cont[R, B]) kont.Cont[R, T] {
	m := FoldlM(from, xs, List[B]{}, func(rev List[B], x A) kont.Cont[R, List[B]] {
		return kont.Map(f(x), func(b B) List[B] { return Cons(b, rev) })
	})
	return kont.Map(m, func(rev List[B]) T {
		out := make([]B, rev.Len())
		i := len(out)
		for n := rev.node; n != nil; n = n.tail {
			i--
			out[i] = n.head
		}
		return to.build(out)
	})
}

// TraverseMaybe maps f over xs and collects the results with to; the
// first Nothing makes the whole traversal Nothing.
func TraverseMaybe[S, A, T, B any](from *Foldable[S, A], to *Sequence[T, B], xs S, f func(A) Maybe[B]) Maybe[T] {
	m := TraverseM(from, to, xs, func(x A) kont.Cont[Maybe[T], B] {
		if v, ok := f(x).Get(); ok {
			return kont.Return[Maybe[T]](v)
		}
		return abort[Maybe[T], B](Nothing[T]())
	})
	return m(Just[T])
}

// TraverseEither maps f over xs and collects the results with to; the
// leftmost Left ends the traversal with that Left.
func TraverseEither[S, A, T, E, B any](from *Foldable[S, A], to *Sequence[T, B], xs S, f func(A) kont.Either[E, B]) kont.Either[E, T] {
	m := TraverseM(from, to, xs, func(x A) kont.Cont[kont.Either[E, T], B] {
		e := f(x)
		if v, ok := e.GetRight(); ok {
			return kont.Return[kont.Either[E, T]](v)
		}
		l, _ := e.GetLeft()
		return abort[kont.Either[E, T], B](kont.Left[E, T](l))
	})
	return m(kont.Right[E, T])
}
