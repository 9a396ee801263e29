// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ever

import (
	"code.hybscloud.com/atomix"
	"github.com/google/uuid"
)

// Serial is a monotonically increasing process-unique identifier.
type Serial = uint32

// counter is the global monotonic counter behind Serials.
var counter atomix.Uint32

// Serials returns the endless sequence of process-unique serial
// numbers. All Serials sequences share one counter, so no two pulls
// anywhere in the process observe the same value (modulo uint32
// wraparound). Unlike other sequences in this package, pulling is
// safe from multiple goroutines.
func Serials() Endless[Serial] {
	return serialSeq{}
}

// serialSeq is stateless; the counter is process-global.
type serialSeq struct{}

func (serialSeq) Next() (Serial, bool) { return counter.Add(1), true }

func (serialSeq) MustNext() Serial { return counter.Add(1) }

// UUIDs returns the endless sequence of fresh random (version 4)
// UUIDs. Generation never declines: uuid.New panics if the process
// entropy source fails, which is a crash, not an exhaustion.
func UUIDs() Endless[uuid.UUID] {
	return uuidSeq{}
}

type uuidSeq struct{}

func (uuidSeq) Next() (uuid.UUID, bool) { return uuid.New(), true }

func (uuidSeq) MustNext() uuid.UUID { return uuid.New() }
