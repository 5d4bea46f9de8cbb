// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mpw

import (
	"errors"
	"runtime"
)

// ErrResolved is returned by [Assemble.Poll] after the assembly has already
// produced its output.
var ErrResolved = errors.New("mpw: assemble already resolved")

// Assemble drives an entire Source into a single writer session and resolves
// to that one session's output. It is the degenerate single-session case of
// [Feed]: the completion policy never fires and source exhaustion is the
// sole completion trigger, over the same [StreamWriter] bridge.
//
// Even an empty source resolves to one output (of an empty session).
type Assemble[Part, Ret, Output any] struct {
	bridge   *StreamWriter[Part, Ret, Output]
	resolved bool
}

// NewAssemble creates an Assemble over source and writer.
func NewAssemble[Part, Ret, Output any](
	source Source[Part],
	writer MultipartWriter[Part, Ret, Output],
) *Assemble[Part, Ret, Output] {
	return &Assemble[Part, Ret, Output]{bridge: NewStreamWriter(source, writer, nil)}
}

// Poll advances the assembly. It returns (output, nil) exactly once, when
// every part has been written and the session completed;
// (zero, iox.ErrWouldBlock) while the source or writer cannot make progress;
// any other error as the failure of the operation that produced it. After
// the output has been returned, Poll returns ErrResolved.
func (a *Assemble[Part, Ret, Output]) Poll() (Output, error) {
	var zero Output
	if a.resolved {
		return zero, ErrResolved
	}
	for {
		res, err := a.bridge.Step()
		if err != nil {
			return zero, err
		}
		if res == StepSourceDone {
			break
		}
	}
	out, err := a.bridge.CompleteSession()
	if err != nil {
		return zero, err
	}
	a.resolved = true
	return out, nil
}

// Resolve drives a to resolution, yielding the processor across would-block
// suspensions. Like [Drain], it is only suitable for cooperative in-memory
// pipelines.
func Resolve[Part, Ret, Output any](a *Assemble[Part, Ret, Output]) (Output, error) {
	for {
		out, err := a.Poll()
		if isWouldBlock(err) {
			yield()
			continue
		}
		return out, err
	}
}

// yield cedes the processor between would-block retries in the blocking
// convenience drivers.
func yield() { runtime.Gosched() }
