// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mpw

// Fuse decorates a writer with the fused capability: after a completion
// whose output satisfies the predicate, the writer reports Terminated and
// refuses to make further progress.
//
// Operations on a terminated Fuse are inert: Prepare and Flush report
// ready, Send acknowledges with the zero value, and Complete yields the
// zero output. Drivers in this package consult Terminated before issuing
// operations, so the inert paths exist only for direct callers.
type Fuse[Part, Ret, Output any] struct {
	inner      MultipartWriter[Part, Ret, Output]
	f          func(Output) bool
	terminated bool
}

// NewFuse creates a Fuse around w; f is evaluated on every completed
// session output.
func NewFuse[Part, Ret, Output any](
	w MultipartWriter[Part, Ret, Output],
	f func(Output) bool,
) *Fuse[Part, Ret, Output] {
	return &Fuse[Part, Ret, Output]{inner: w, f: f}
}

// Terminated reports whether a completed output has satisfied the predicate
// or the inner writer is itself fused and terminated.
func (w *Fuse[Part, Ret, Output]) Terminated() bool {
	return w.terminated || isTerminated(w.inner)
}

// Prepare reports ready once terminated, otherwise delegates.
func (w *Fuse[Part, Ret, Output]) Prepare() error {
	if w.terminated {
		return nil
	}
	return w.inner.Prepare()
}

// Send is inert once terminated, otherwise delegates.
func (w *Fuse[Part, Ret, Output]) Send(part Part) (Ret, error) {
	if w.terminated {
		var zero Ret
		return zero, nil
	}
	return w.inner.Send(part)
}

// Flush is inert once terminated, otherwise delegates.
func (w *Fuse[Part, Ret, Output]) Flush() error {
	if w.terminated {
		return nil
	}
	return w.inner.Flush()
}

// Complete delegates, then terminates the writer when the predicate accepts
// the completed output.
func (w *Fuse[Part, Ret, Output]) Complete() (Output, error) {
	if w.terminated {
		var zero Output
		return zero, nil
	}
	out, err := w.inner.Complete()
	if err != nil {
		return out, err
	}
	if w.f(out) {
		w.terminated = true
	}
	return out, nil
}
