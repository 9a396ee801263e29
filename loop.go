// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ever

import (
	"code.hybscloud.com/kont"
)

// Control is a loop body's verdict: Continue (Left) pulls the next
// element, Break (Right) exits the loop carrying a result. The zero
// Control is Continue.
type Control[R any] = kont.Either[struct{}, R]

// Continue proceeds with the next element.
func Continue[R any]() Control[R] {
	return kont.Left[struct{}, R](struct{}{})
}

// Break exits the loop, which evaluates to v.
func Break[R any](v R) Control[R] {
	return kont.Right[struct{}, R](v)
}

// For drives src through body until src exhausts or body breaks.
// It is the generic fallback driver: every advance may carry the
// exhaustion arm, and natural exhaustion ends the loop with the zero
// R and false. A Break yields (v, true).
//
// An Endless source may be handed to For; the capability degrades
// safely and the exhaustion arm simply never fires.
func For[T, R any](src Seq[T], body func(T) Control[R]) (R, bool) {
	for {
		v, ok := src.Next()
		if !ok {
			var zero R
			return zero, false
		}
		if r, broke := body(v).GetRight(); broke {
			return r, true
		}
	}
}

// Loop drives an endless src through body and returns the value of
// the first Break. The advance path is MustNext: there is no
// exhaustion arm in the signature at all, so the loop provably
// cannot exit through one. An explicit Break is the only way out;
// a body that never breaks runs forever (see Each).
//
// Selecting Loop over For is a compile-time choice carried by the
// operand's type: a fallible Seq does not satisfy the Endless bound
// and is rejected by the type checker, never by a runtime tag.
func Loop[T, R any](src Endless[T], body func(T) Control[R]) R {
	for {
		if r, broke := body(src.MustNext()).GetRight(); broke {
			return r
		}
	}
}
