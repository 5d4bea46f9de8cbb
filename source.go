// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mpw

import (
	"io"
	"iter"
)

// Pull sources of parts.
// A Source is the upstream half of every driver in this package.

// Source is an asynchronous pull-sequence of parts.
//
// Next returns the next part, or:
//   - (zero, [iox.ErrWouldBlock]) when no part is available yet — retry later
//   - (zero, [io.EOF]) when the source is exhausted
//   - (zero, err) when the source failed
//
// After io.EOF, Next must not be called again. A failure does not
// poison the source: drivers keep pulling on the next round.
type Source[Part any] interface {
	Next() (Part, error)
}

// SourceFunc adapts a plain function to the Source interface.
type SourceFunc[Part any] func() (Part, error)

// Next calls f.
func (f SourceFunc[Part]) Next() (Part, error) { return f() }

// SliceSource returns a Source producing the given parts in order,
// then io.EOF. It never reports would-block.
func SliceSource[Part any](parts ...Part) Source[Part] {
	s := &sliceSource[Part]{parts: parts}
	return s
}

type sliceSource[Part any] struct {
	parts []Part
	next  int
}

func (s *sliceSource[Part]) Next() (Part, error) {
	if s.next >= len(s.parts) {
		var zero Part
		return zero, io.EOF
	}
	p := s.parts[s.next]
	s.next++
	return p, nil
}

// SeqSource adapts a Go iterator to the Source interface via [iter.Pull].
// The underlying pull iterator is stopped when the sequence is exhausted.
func SeqSource[Part any](seq iter.Seq[Part]) Source[Part] {
	next, stop := iter.Pull(seq)
	return &seqSource[Part]{next: next, stop: stop}
}

type seqSource[Part any] struct {
	next func() (Part, bool)
	stop func()
}

func (s *seqSource[Part]) Next() (Part, error) {
	p, ok := s.next()
	if !ok {
		s.stop()
		var zero Part
		return zero, io.EOF
	}
	return p, nil
}
