// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package seq provides generic algorithms over finite ordered structures
// through a small hierarchy of classes resolved from a few primitives.
//
// A data type joins the algebra by describing itself with a [Def]: the
// primitives it implements natively. A class constructor resolves the
// definition once into a dispatch table ([Tag]) and a class value holding
// the primitives and every operation derived from them:
//
//   - [Foldable]: finite structures that can be reduced left to right
//   - [Iterable]: structures taken apart with Head and Tail
//   - [Sequence]: Iterables that can also be built with Prepend and Empty
//
// Each class embeds the previous one, so a [*Sequence] offers every
// Iterable and Foldable operation too. Operations that change the
// structure or element type are free functions taking the classes of
// their inputs and result.
//
// # Dispatch
//
// Missing primitives are derived from the ones supplied. A Foldable needs
// Unpack, or either fold, or Head, Tail and IsEmpty. A Sequence further
// needs Prepend and Empty. When a requirement cannot be met the
// constructor returns a [*DispatchError] (matching [ErrDispatch]) before any
// data flows. [Tag.Source] reports whether an operation was supplied or
// derived.
//
// Element instances ([Elem]) carry Equal and Less. Operations defaulting to
// a missing instance panic with a [*DispatchError] on first use.
//
// # Linearization
//
// Every Foldable has one linearization: the order in which Unpack, the
// folds and the iterators observe elements. Every derived operation agrees
// with it, whichever primitive the definition supplied, and every
// [Sequence] is isomorphic to an ordered list: [Convert] between two
// Sequence classes preserves order and length.
//
// # Operations
//
// Folds and searches:
//
//   - [Foldl], [Foldr], [Foldable.Foldl1], [Foldable.Foldr1], [Unpack]
//   - [FoldlM], [FoldrM]: monadic folds in [kont.Cont]
//   - [FoldlMaybe], [FoldrMaybe], [FoldlEither]: short-circuiting folds
//   - [TraverseM], [TraverseMaybe], [TraverseEither]: effectful maps
//   - [Sum], [Product], [FoldMap], [Foldable.Minimum], [Foldable.Maximum]
//   - [Foldable.FindIf], [Foldable.AnyOf], [Foldable.AllOf], [Lookup]
//
// Sequence construction and restructuring:
//
//   - [Sequence.Concat], [Sequence.Reverse], [Sequence.Filter], [Sequence.Slice]
//   - [Sequence.Prefix], [Sequence.Suffix], [Sequence.Intersperse]
//   - [Sequence.Span], [Sequence.Partition], [Sequence.TakeWhile], [Iterable.DropWhile]
//   - [Sequence.Sort], [Group], [Permutations], [CartesianProduct]
//   - [ScanLeft], [ScanRight], [UnfoldLeft], [UnfoldRight]
//   - [Zip], [ZipShortest], [ZipWith], [Unzip]
//   - [Transform], [Flatten], [Chain], [Ap], [Convert]
//
// # Data Types
//
// [Tuple] ([TupleOf]), [List] ([ListOf]), strings as rune sequences
// ([Strings]), integer [Range] ([Ranges]) and [Maybe] ([MaybeOf]) come with
// their classes.
//
// # Views
//
// A [View] is a lazy sequence given by a length and an indexed accessor.
// [ViewOf], [Sliced], [Transformed], [Joined], [Flattened] and
// [CartesianProductView] never copy their inputs; transforming a
// transformed view composes the functions. [Views] makes views a Sequence
// class, so every algorithm above also runs on them.
//
// # Failures
//
// Contract violations are programmer errors and panic with an error
// wrapping [ErrEmpty], [ErrIndex] or [ErrLength]:
//
//	defer func() {
//	    if err, ok := recover().(error); ok && errors.Is(err, seq.ErrEmpty) {
//	        // folded an empty structure without a state
//	    }
//	}()
package seq
