// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mpw

import (
	"errors"
	"io"
)

// Feed drives a Source into a MultipartWriter under a completion policy,
// exposing the completed session outputs as a derived pull stream.
//
// Feed itself satisfies [Source] for its output type: Next returns the next
// completed output, iox.ErrWouldBlock while the underlying source or writer
// cannot make progress, io.EOF once the stream has ended, and any writer or
// source failure as an ordinary error item.
//
// Outputs are produced in the order their session cuts occurred, and the
// concatenation of all outputs reproduces the source sequence exactly once,
// in order.
type Feed[Part, Ret, Output any] struct {
	bridge *StreamWriter[Part, Ret, Output]
	fused  terminator // non-nil when the writer has the fused capability
	state  feedState
}

type feedState uint8

const (
	// feedWrite runs bridge steps until the policy fires or the source dries up.
	feedWrite feedState = iota
	// feedComplete cuts the current session and yields its output.
	feedComplete
	// feedShutdown ends the stream on the following call; the final output
	// has already been yielded.
	feedShutdown
	// feedDone is terminal; Next always returns io.EOF.
	feedDone
)

// NewFeed creates a Feed over source and writer with the given policy.
//
// The policy is evaluated once per successful send, on the send's
// acknowledgement; when it reports true the session is completed immediately
// and its output becomes the next stream item. When the source is exhausted,
// one final completion drains any session with at least one send since the
// last cut; an empty trailing session produces no output.
func NewFeed[Part, Ret, Output any](
	source Source[Part],
	writer MultipartWriter[Part, Ret, Output],
	policy Policy[Ret],
) *Feed[Part, Ret, Output] {
	f := &Feed[Part, Ret, Output]{bridge: NewStreamWriter(source, writer, policy)}
	if t, ok := writer.(terminator); ok {
		f.fused = t
	}
	return f
}

// Next returns the next completed output.
//
// Errors from the writer or the source are surfaced as stream items at the
// granularity of the operation that failed; the engine performs no retry and
// does not recover a broken writer, but the caller may keep driving.
// iox.ErrWouldBlock means the engine is suspended; retry later. Re-entry
// never re-issues an operation that already completed for the current step.
func (f *Feed[Part, Ret, Output]) Next() (Output, error) {
	var zero Output
	for {
		// A terminated fused writer must not be driven any further: end the
		// stream, discarding any unsent buffered part.
		if f.fused != nil && f.fused.Terminated() {
			f.state = feedDone
		}

		switch f.state {
		case feedWrite:
			res, err := f.bridge.Step()
			if err != nil {
				return zero, err
			}
			switch res {
			case StepMore:
				// keep stepping
			case StepComplete:
				f.state = feedComplete
			case StepSourceDone:
				if f.bridge.Empty() {
					f.state = feedDone
					return zero, io.EOF
				}
				f.state = feedComplete
			}

		case feedComplete:
			out, err := f.bridge.CompleteSession()
			if err != nil {
				// Would-block and writer failures alike surface here; the
				// state stays feedComplete so a retry re-polls the cut.
				return zero, err
			}
			if f.bridge.SourceDone() {
				f.state = feedShutdown
			} else {
				f.state = feedWrite
			}
			return out, nil

		case feedShutdown:
			f.state = feedDone
			return zero, io.EOF

		default: // feedDone
			return zero, io.EOF
		}
	}
}

// Drain drives f to the end of its stream, collecting every output in
// emission order. Would-block suspensions yield the processor and retry, so
// Drain is only suitable for cooperative in-memory pipelines; errors other
// than the stream-end marker abort the drain.
func Drain[Part, Ret, Output any](f *Feed[Part, Ret, Output]) ([]Output, error) {
	var outs []Output
	for {
		out, err := f.Next()
		switch {
		case err == nil:
			outs = append(outs, out)
		case isWouldBlock(err):
			yield()
		case errors.Is(err, io.EOF):
			return outs, nil
		default:
			return outs, err
		}
	}
}
