// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package seq

import (
	"fmt"

	"github.com/pkg/errors"
)

// Failure taxonomy.
//
// Dispatch failures are reported when a class is constructed, before any
// data flows. Contract violations (folding an empty structure without a
// state, indexing out of range) are programmer errors: they panic with an
// error wrapping one of the sentinels below, so a recovered value can be
// matched with errors.Is.

var (
	// ErrDispatch reports an operation with no implementation for a tag.
	ErrDispatch = errors.New("seq: no implementation for operation")
	// ErrEmpty reports an operation that requires a non-empty structure.
	ErrEmpty = errors.New("seq: empty structure")
	// ErrIndex reports an index or count outside the structure.
	ErrIndex = errors.New("seq: index out of range")
	// ErrLength reports sequences whose lengths were required to agree.
	ErrLength = errors.New("seq: length mismatch")
)

// DispatchError describes an unresolved (tag, operation) pair.
type DispatchError struct {
	Tag string
	Op  Op
	// Needs lists the primitives any of which would have satisfied Op.
	Needs []Op
}

func (e *DispatchError) Error() string {
	if len(e.Needs) == 0 {
		return fmt.Sprintf("seq: no implementation of %s for %s", e.Op, e.Tag)
	}
	return fmt.Sprintf("seq: no implementation of %s for %s (needs %v)", e.Op, e.Tag, e.Needs)
}

// Is reports ErrDispatch as the category of every DispatchError.
func (e *DispatchError) Is(target error) bool { return target == ErrDispatch }

// dispatchFailure panics for element-level instances that are resolved
// lazily (Equal and Less on the element type).
//
//go:noinline
func dispatchFailure(tag string, op Op) {
	panic(errors.WithStack(&DispatchError{Tag: tag, Op: op}))
}

// emptyStructure panics with ErrEmpty annotated by the failing operation.
//
//go:noinline
func emptyStructure(tag, op string) {
	panic(errors.Wrapf(ErrEmpty, "%s on empty %s", op, tag))
}

// indexOutOfRange panics with ErrIndex annotated by the failing operation.
//
//go:noinline
func indexOutOfRange(tag, op string, n, length int) {
	panic(errors.Wrapf(ErrIndex, "%s(%d) on %s of length %d", op, n, tag, length))
}

// lengthMismatch panics with ErrLength annotated by the observed lengths.
//
//go:noinline
func lengthMismatch(tag, op string, lengths []int) {
	panic(errors.Wrapf(ErrLength, "%s on %s of lengths %v", op, tag, lengths))
}
