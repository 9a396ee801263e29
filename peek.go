// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ever

// Peekable is the single-element-lookahead adapter over an endless
// sequence. Peek and PeekPtr are guaranteed non-empty because the
// wrapped sequence cannot exhaust, so the lookahead slot is always
// fillable. The guarantee is restricted to this exact type: only
// NewPeekable constructs it, and no wrapper that merely resembles it
// can claim these operations.
type Peekable[T any] struct {
	src    Endless[T]
	slot   T
	filled bool
}

// NewPeekable returns a Peekable wrapping src.
func NewPeekable[T any](src Endless[T]) *Peekable[T] {
	return &Peekable[T]{src: src}
}

func (p *Peekable[T]) fill() {
	if !p.filled {
		p.slot = p.src.MustNext()
		p.filled = true
	}
}

// Peek returns the next element without consuming it. Repeated calls
// without an intervening advance observe the same element.
func (p *Peekable[T]) Peek() T {
	p.fill()
	return p.slot
}

// PeekPtr returns a pointer to the buffered next element, allowing
// in-place modification before it is consumed. The pointer is valid
// until the next advance.
func (p *Peekable[T]) PeekPtr() *T {
	p.fill()
	return &p.slot
}

// Next implements Seq.
func (p *Peekable[T]) Next() (T, bool) { return p.MustNext(), true }

// MustNext implements Endless, draining the lookahead slot first.
func (p *Peekable[T]) MustNext() T {
	if p.filled {
		v := p.slot
		var zero T
		p.slot = zero
		p.filled = false
		return v
	}
	return p.src.MustNext()
}
