// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ever

import (
	"code.hybscloud.com/kont"
)

// Projection adapters: each maps elements one-to-one, so the
// capability passes through unchanged.

// Deref returns the endless sequence of values behind src's
// pointers. Elements must be non-nil.
func Deref[T any](src Endless[*T]) Endless[T] {
	return &derefSeq[T]{src: src}
}

// derefSeq dereferences each pulled pointer.
type derefSeq[T any] struct {
	src Endless[*T]
}

func (d *derefSeq[T]) Next() (T, bool) { return d.MustNext(), true }

func (d *derefSeq[T]) MustNext() T { return *d.src.MustNext() }

// Cloner is the element constraint for Cloned.
type Cloner[T any] interface {
	Clone() T
}

// Cloned returns the endless sequence of clones of src's elements,
// detaching the consumer from shared handles. The owned type usually
// needs naming at the call site: Cloned[Record](src).
func Cloned[T any, P Cloner[T]](src Endless[P]) Endless[T] {
	return &clonedSeq[T, P]{src: src}
}

// clonedSeq clones each pulled element.
type clonedSeq[T any, P Cloner[T]] struct {
	src Endless[P]
}

func (c *clonedSeq[T, P]) Next() (T, bool) { return c.MustNext(), true }

func (c *clonedSeq[T, P]) MustNext() T { return c.src.MustNext().Clone() }

// Rights keeps the Right values of an endless Either sequence,
// dropping every Left. Pairs with Incoming to strip accept errors.
// Diverges if no further element is Right.
func Rights[E, T any](src Endless[kont.Either[E, T]]) Endless[T] {
	return &rightsSeq[E, T]{src: src}
}

// rightsSeq pulls src until an element is Right.
type rightsSeq[E, T any] struct {
	src Endless[kont.Either[E, T]]
}

func (r *rightsSeq[E, T]) Next() (T, bool) { return r.MustNext(), true }

func (r *rightsSeq[E, T]) MustNext() T {
	for {
		if v, ok := r.src.MustNext().GetRight(); ok {
			return v
		}
	}
}
