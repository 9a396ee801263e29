// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ever

import "math"

// Integer is the constraint for RangeFrom element types.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Repeat returns the sequence that yields v forever.
func Repeat[T any](v T) Endless[T] {
	return &repeatSeq[T]{v: v}
}

// repeatSeq holds the one value it forever yields.
type repeatSeq[T any] struct {
	v T
}

func (r *repeatSeq[T]) Next() (T, bool) { return r.MustNext(), true }

func (r *repeatSeq[T]) MustNext() T { return r.v }

func (r *repeatSeq[T]) SizeHint() (lower, upper int, upperKnown bool) {
	return math.MaxInt, 0, false
}

// RepeatWith returns the endless sequence f(), f(), f(), etc.
// The generating function establishes the invariant: it must return
// on every call.
func RepeatWith[T any](f func() T) Endless[T] {
	return repeatWithSeq[T](f)
}

// repeatWithSeq is the generating function itself; every advance is
// one call.
type repeatWithSeq[T any] func() T

func (r repeatWithSeq[T]) Next() (T, bool) { return r.MustNext(), true }

func (r repeatWithSeq[T]) MustNext() T { return r() }

func (r repeatWithSeq[T]) SizeHint() (lower, upper int, upperKnown bool) {
	return math.MaxInt, 0, false
}

// RangeFrom returns the endless ascending sequence start, start+1, etc.
// On fixed-width element types the value wraps around on overflow,
// following Go integer semantics; the sequence still never ends.
func RangeFrom[N Integer](start N) Endless[N] {
	return &rangeFromSeq[N]{n: start}
}

// rangeFromSeq holds the next value to yield.
type rangeFromSeq[N Integer] struct {
	n N
}

func (r *rangeFromSeq[N]) Next() (N, bool) { return r.MustNext(), true }

func (r *rangeFromSeq[N]) MustNext() N {
	v := r.n
	r.n++
	return v
}

func (r *rangeFromSeq[N]) SizeHint() (lower, upper int, upperKnown bool) {
	return math.MaxInt, 0, false
}

// CycleOf returns the endless sequence cycling through first and
// rest in order, restarting at first after the last element.
// Requiring the first element in the signature makes an empty cycle
// unrepresentable, which is what makes the grant sound; cycling an
// arbitrary sequence is Cycle and demands an Endless operand.
func CycleOf[T any](first T, rest ...T) Endless[T] {
	elems := make([]T, 0, 1+len(rest))
	elems = append(elems, first)
	elems = append(elems, rest...)
	return &cycleOfSeq[T]{elems: elems}
}

// cycleOfSeq cursors over a non-empty element list, wrapping i back
// to zero at the end.
type cycleOfSeq[T any] struct {
	elems []T
	i     int
}

func (c *cycleOfSeq[T]) Next() (T, bool) { return c.MustNext(), true }

func (c *cycleOfSeq[T]) MustNext() T {
	v := c.elems[c.i]
	c.i++
	if c.i == len(c.elems) {
		c.i = 0
	}
	return v
}

func (c *cycleOfSeq[T]) SizeHint() (lower, upper int, upperKnown bool) {
	return math.MaxInt, 0, false
}
