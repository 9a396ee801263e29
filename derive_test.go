// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ever_test

import (
	"code.hybscloud.com/ever"
	"code.hybscloud.com/kont"
)

// Compile-time capability table: each declaration builds only if the
// composition keeps the endless guarantee. The negative side of the
// table needs no test file: handing a plain Seq to Zip, Cycle, Loop,
// or any other Endless-bounded parameter is a type error at the call
// site.
var (
	_ ever.Endless[int] = ever.NewPeekable(ever.Repeat(0))

	_ ever.Endless[string] = ever.Chain(
		ever.Of("a"),
		ever.Cycle(ever.SkipWhile(ever.CycleOf("b", "c"), func(string) bool { return false })),
	)

	_ ever.Endless[ever.Pair[int, ever.Indexed[string]]] = ever.Zip(
		ever.StepBy(ever.Skip(ever.RangeFrom(0), 1), 2),
		ever.Enumerate(ever.Fuse(ever.CycleOf("x"))),
	)

	_ ever.Endless[int] = ever.FlatMap(
		ever.Filter(ever.RangeFrom(0), func(int) bool { return true }),
		func(n int) ever.Seq[int] { return ever.Of(n) },
	)

	_ ever.Endless[int] = ever.Checked(ever.Rights(ever.FilterMap(
		ever.Inspect(ever.RangeFrom(0), func(int) {}),
		func(n int) (kont.Either[error, int], bool) {
			return kont.Right[error, int](n), true
		},
	)))

	_ ever.Endless[int] = ever.Deref(ever.Map(ever.RangeFrom(0), func(n int) *int { return &n }))

	_ ever.Endless[note] = ever.Cloned[note](ever.Repeat(note{}))
)
