// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ever_test

import "code.hybscloud.com/ever"

// take pulls up to n elements from src through the fallible arm.
// Endless sequences are deliberately observed through their Seq face
// here; Head covers the MustNext face, so comparing the two exposes
// any disagreement between the arms.
func take[T any](src ever.Seq[T], n int) []T {
	out := make([]T, 0, n)
	for len(out) < n {
		v, ok := src.Next()
		if !ok {
			break
		}
		out = append(out, v)
	}
	return out
}

// collect drains a finite sequence completely.
func collect[T any](src ever.Seq[T]) []T {
	var out []T
	for {
		v, ok := src.Next()
		if !ok {
			return out
		}
		out = append(out, v)
	}
}
