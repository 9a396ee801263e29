// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ever

import (
	"net"

	"code.hybscloud.com/kont"
)

// Incoming returns the endless sequence of accept results on l.
// Each advance blocks in Accept; a successful accept yields
// Right(conn) and a failed one yields Left(err). Accepting never
// completes: after an error, including listener close, further
// advances keep yielding Left, so the sequence is endless by the
// listener's own contract. Blocking behavior belongs entirely to l.
//
// net.Listener covers stream sockets of every network (TCP, Unix
// domain, etc.) behind one contract. Rights strips the error arm
// when only connections matter.
func Incoming(l net.Listener) Endless[kont.Either[error, net.Conn]] {
	return &incomingSeq{l: l}
}

// incomingSeq wraps a listener; each advance is one Accept call.
type incomingSeq struct {
	l net.Listener
}

func (s *incomingSeq) Next() (kont.Either[error, net.Conn], bool) {
	return s.MustNext(), true
}

func (s *incomingSeq) MustNext() kont.Either[error, net.Conn] {
	c, err := s.l.Accept()
	if err != nil {
		return kont.Left[error, net.Conn](err)
	}
	return kont.Right[error, net.Conn](c)
}
