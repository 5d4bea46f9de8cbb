// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mpw

import (
	"errors"

	"code.hybscloud.com/iox"
)

// The four-phase writer contract.
// A MultipartWriter accumulates parts into one output per session.

// MultipartWriter is a Sink-like interface for asynchronously writing an
// object in parts. Unlike a plain push sink, both sending a part and
// completing a session return caller-useful values.
//
// A session begins with the writer empty, accumulates parts through repeated
// Prepare/Send rounds, and ends with Flush followed by Complete, which yields
// the session output and resets the writer for the next session.
//
// All pollable operations follow the family's non-blocking boundary
// convention: nil means the operation completed, [iox.ErrWouldBlock] means it
// cannot make progress now and must be retried later. No operation blocks.
//
// A writer that returns any other error is by convention permanently broken;
// the contract does not mandate retry.
type MultipartWriter[Part, Ret, Output any] interface {
	// Prepare reports whether the writer can accept another part.
	// It must return nil before each call to Send, and the Send must follow
	// with no suspension point in between, since readiness is not durable.
	// Returns iox.ErrWouldBlock while the writer cannot take a part.
	Prepare() error

	// Send writes a part, returning the writer's acknowledgement value.
	// Send is synchronous once prepared and never suspends. Calling Send
	// when Prepare would return iox.ErrWouldBlock is always a misuse;
	// reference writers fail fast on it.
	Send(part Part) (Ret, error)

	// Flush drains any writer-internal buffering. Returns iox.ErrWouldBlock
	// while work remains. Flushing an already-flushed writer is a no-op.
	Flush() error

	// Complete finalizes the open session, returning the assembled output
	// and resetting the writer to accept a new session immediately.
	// Complete does not flush; the caller must Flush first.
	// Returns (zero, iox.ErrWouldBlock) while the output is not available.
	Complete() (Output, error)
}

// FusedMultipartWriter is a MultipartWriter that can report it will never
// again accept input. Once Terminated returns true, the writer must no
// longer be driven; drivers in this package stop issuing operations and end
// their derived streams.
type FusedMultipartWriter[Part, Ret, Output any] interface {
	MultipartWriter[Part, Ret, Output]

	// Terminated reports whether the writer is permanently done.
	Terminated() bool
}

// terminator is the untyped query used to detect fused writers behind
// decorator layers without threading the full type-parameter set.
type terminator interface {
	Terminated() bool
}

// isTerminated reports whether w is a fused writer that is permanently done.
// Writers without the fused capability are never terminated.
func isTerminated(w any) bool {
	t, ok := w.(terminator)
	return ok && t.Terminated()
}

// isWouldBlock reports whether err is the family's non-blocking boundary
// signal rather than a failure.
func isWouldBlock(err error) bool { return errors.Is(err, iox.ErrWouldBlock) }
