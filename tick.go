// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ever

import "time"

// Ticks returns the endless sequence of t's tick times. Each advance
// blocks until the next tick. Ticker.Stop never closes the channel,
// so a stopped ticker blocks forever rather than exhausting: the
// sequence can diverge but never end. The ticker's lifecycle stays
// with the caller.
func Ticks(t *time.Ticker) Endless[time.Time] {
	return &tickSeq{t: t}
}

// tickSeq receives from the ticker channel; Stop never closes it.
type tickSeq struct {
	t *time.Ticker
}

func (s *tickSeq) Next() (time.Time, bool) { return s.MustNext(), true }

func (s *tickSeq) MustNext() time.Time { return <-s.t.C }
