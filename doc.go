// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package ever provides sequences that are proven at compile time to
// never run out of elements.
//
// The proof is structural: [Endless] extends the fallible [Seq]
// contract with an infallible advance, and every combinator that
// needs the guarantee demands an [Endless] operand in its signature.
// A composition that could exhaust does not type-check.
//
// # Architecture
//
//   - Capability: [Endless] carries [Seq] plus MustNext. The two arms
//     view one cursor; MustNext equals Next with the flag erased.
//   - Axioms: [Repeat], [RepeatWith], [RangeFrom], [CycleOf],
//     [Serials], [UUIDs], [Incoming], [Ticks], [Drain] assert the
//     guarantee at the leaves. [Checked] audits such an assertion at
//     run time.
//   - Derivation: adapters return [Endless] exactly when their
//     operands make exhaustion impossible. [Map] and [Filter] preserve
//     it, [Chain] requires an endless tail, [Zip] requires both sides.
//   - Control: [Loop] drives an endless source and can only stop by
//     [Break]; [For] drives any [Seq] and also reports exhaustion.
//     Which driver compiles is the termination analysis.
//
// # Sources and Sinks
//
//   - Finite entry points: [FromSlice], [Of], [FromFunc], [FromChan].
//     These satisfy [Seq] only and stay on the fallible side.
//   - Feeds: [Incoming] turns a [net.Listener] into accept results,
//     [Ticks] adapts a [*time.Ticker], [Drain] consumes a
//     [code.hybscloud.com/lfq] queue with
//     [code.hybscloud.com/iox.Backoff] waits.
//   - Consumers: [Each], [Find], [FindMap], [Position], [Head] take
//     [Endless] operands, so lookups need no found flag.
//   - Interop: [Values] bridges any [Seq] to a range-over-func
//     iter.Seq.
//
// # Example
//
//	naturals := ever.RangeFrom(0)
//	first := ever.Loop(naturals, func(n int) ever.Control[int] {
//		if n*n > 2000 {
//			return ever.Break(n)
//		}
//		return ever.Continue[int]()
//	})
package ever
