// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mpw

import (
	"errors"
	"io"
)

// StreamWriter bridges a pull Source to the push-based writer contract.
//
// Prepare must return nil before Send, but obtaining something to send
// requires pulling the source, and both are suspension points. Between them
// the original readiness may no longer hold. The bridge therefore buffers
// exactly one part across steps and re-checks readiness immediately before
// every Send, so that no Send is ever issued against stale readiness.

// Policy decides, from the acknowledgement of a successful Send, whether the
// current session should be completed immediately after that send.
// A nil Policy never completes.
type Policy[Ret any] func(Ret) bool

// StepResult is the uniform outcome of one bridge step, consumable by any
// higher-level driver.
type StepResult uint8

const (
	// StepMore means the step made progress (a part was buffered or sent)
	// and the driver should keep stepping.
	StepMore StepResult = iota
	// StepComplete means a part was sent and the policy fired: the driver
	// should complete the current session before stepping again.
	StepComplete
	// StepSourceDone means the source is exhausted and nothing is buffered.
	StepSourceDone
)

// StreamWriter is the single-item-buffer state machine bridging a Source to
// a MultipartWriter. The entire resumable state is the buffer slot plus two
// flags, so re-entry after a would-block never re-issues an operation that
// already completed for the current step.
//
// A StreamWriter exclusively owns its writer and source; it must be driven
// by exactly one driver at a time.
type StreamWriter[Part, Ret, Output any] struct {
	writer   MultipartWriter[Part, Ret, Output]
	source   Source[Part]
	policy   Policy[Ret]
	buffered Part
	full     bool // buffer slot holds a part whose send is unconfirmed
	active   bool // at least one send happened since the last completion
	eof      bool // source reported io.EOF
}

// NewStreamWriter creates a bridge over writer and source with the given
// completion policy. A nil policy never cuts a session; the source running
// dry is then the only completion trigger.
func NewStreamWriter[Part, Ret, Output any](
	source Source[Part],
	writer MultipartWriter[Part, Ret, Output],
	policy Policy[Ret],
) *StreamWriter[Part, Ret, Output] {
	return &StreamWriter[Part, Ret, Output]{writer: writer, source: source, policy: policy}
}

// Writer returns the underlying writer.
func (w *StreamWriter[Part, Ret, Output]) Writer() MultipartWriter[Part, Ret, Output] {
	return w.writer
}

// Empty reports whether the current session has had no send and nothing is
// buffered. Drivers use it to avoid a trailing empty completion.
func (w *StreamWriter[Part, Ret, Output]) Empty() bool {
	return !w.active && !w.full
}

// SourceDone reports whether the source has been exhausted.
func (w *StreamWriter[Part, Ret, Output]) SourceDone() bool { return w.eof }

// Step runs one bridge step.
//
// With a buffered part, it polls Prepare. On would-block it also polls Flush
// so the writer makes background progress, then reports the would-block for
// the caller to retry. On ready it Sends immediately, clears the buffer,
// evaluates the policy on the acknowledgement, and reports StepMore or
// StepComplete.
//
// With an empty buffer, it pulls the source: an item is stored in the buffer
// (processed on the next step) and StepMore is reported; io.EOF reports
// StepSourceDone; any other source error is returned as-is, including
// would-block.
func (w *StreamWriter[Part, Ret, Output]) Step() (StepResult, error) {
	if w.full {
		if err := w.writer.Prepare(); err != nil {
			if isWouldBlock(err) {
				if ferr := w.writer.Flush(); ferr != nil && !isWouldBlock(ferr) {
					return StepMore, ferr
				}
			}
			return StepMore, err
		}
		// No suspension between here and Send.
		part := w.buffered
		var zero Part
		w.buffered = zero
		w.full = false
		ret, err := w.writer.Send(part)
		if err != nil {
			return StepMore, err
		}
		w.active = true
		if w.policy != nil && w.policy(ret) {
			return StepComplete, nil
		}
		return StepMore, nil
	}

	if w.eof {
		return StepSourceDone, nil
	}
	part, err := w.source.Next()
	if err != nil {
		if errors.Is(err, io.EOF) {
			w.eof = true
			return StepSourceDone, nil
		}
		return StepMore, err
	}
	w.buffered = part
	w.full = true
	return StepMore, nil
}

// CompleteSession flushes the writer and completes the open session,
// returning the session output and resetting the activity flag.
//
// Both the flush and the completion may report iox.ErrWouldBlock; the caller
// retries CompleteSession and no prior operation is re-issued beyond the
// idempotent Flush.
//
// Completing while a part is still buffered and unsent indicates the
// driver's own invariant was violated, not an external fault, and panics.
func (w *StreamWriter[Part, Ret, Output]) CompleteSession() (Output, error) {
	if w.full {
		panic("mpw: complete with a part still buffered")
	}
	var zero Output
	if err := w.writer.Flush(); err != nil {
		return zero, err
	}
	out, err := w.writer.Complete()
	if err != nil {
		return zero, err
	}
	w.active = false
	return out, nil
}
