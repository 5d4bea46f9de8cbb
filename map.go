// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mpw

// Type-mapping decorators over the MultipartWriter contract.
// Each is a 1:1 delegation introducing no new control flow; the fused
// capability of the inner writer passes through unchanged.

// MapOutput returns a writer whose session outputs are transformed by f.
func MapOutput[Part, Ret, Output, Output2 any](
	w MultipartWriter[Part, Ret, Output],
	f func(Output) Output2,
) MultipartWriter[Part, Ret, Output2] {
	return &mapOutput[Part, Ret, Output, Output2]{inner: w, f: f}
}

type mapOutput[Part, Ret, Output, Output2 any] struct {
	inner MultipartWriter[Part, Ret, Output]
	f     func(Output) Output2
}

func (m *mapOutput[Part, Ret, Output, Output2]) Prepare() error { return m.inner.Prepare() }

func (m *mapOutput[Part, Ret, Output, Output2]) Send(part Part) (Ret, error) {
	return m.inner.Send(part)
}

func (m *mapOutput[Part, Ret, Output, Output2]) Flush() error { return m.inner.Flush() }

func (m *mapOutput[Part, Ret, Output, Output2]) Complete() (Output2, error) {
	out, err := m.inner.Complete()
	if err != nil {
		var zero Output2
		return zero, err
	}
	return m.f(out), nil
}

func (m *mapOutput[Part, Ret, Output, Output2]) Terminated() bool { return isTerminated(m.inner) }

// MapRet returns a writer whose send acknowledgements are transformed by f.
func MapRet[Part, Ret, Ret2, Output any](
	w MultipartWriter[Part, Ret, Output],
	f func(Ret) Ret2,
) MultipartWriter[Part, Ret2, Output] {
	return &mapRet[Part, Ret, Ret2, Output]{inner: w, f: f}
}

type mapRet[Part, Ret, Ret2, Output any] struct {
	inner MultipartWriter[Part, Ret, Output]
	f     func(Ret) Ret2
}

func (m *mapRet[Part, Ret, Ret2, Output]) Prepare() error { return m.inner.Prepare() }

func (m *mapRet[Part, Ret, Ret2, Output]) Send(part Part) (Ret2, error) {
	ret, err := m.inner.Send(part)
	if err != nil {
		var zero Ret2
		return zero, err
	}
	return m.f(ret), nil
}

func (m *mapRet[Part, Ret, Ret2, Output]) Flush() error { return m.inner.Flush() }

func (m *mapRet[Part, Ret, Ret2, Output]) Complete() (Output, error) { return m.inner.Complete() }

func (m *mapRet[Part, Ret, Ret2, Output]) Terminated() bool { return isTerminated(m.inner) }

// MapErr returns a writer whose operation errors are transformed by f.
// Would-block boundary errors are suspension signals, not failures, and are
// passed through untouched.
func MapErr[Part, Ret, Output any](
	w MultipartWriter[Part, Ret, Output],
	f func(error) error,
) MultipartWriter[Part, Ret, Output] {
	return &mapErr[Part, Ret, Output]{inner: w, f: f}
}

type mapErr[Part, Ret, Output any] struct {
	inner MultipartWriter[Part, Ret, Output]
	f     func(error) error
}

func (m *mapErr[Part, Ret, Output]) mapped(err error) error {
	if err == nil || isWouldBlock(err) {
		return err
	}
	return m.f(err)
}

func (m *mapErr[Part, Ret, Output]) Prepare() error { return m.mapped(m.inner.Prepare()) }

func (m *mapErr[Part, Ret, Output]) Send(part Part) (Ret, error) {
	ret, err := m.inner.Send(part)
	return ret, m.mapped(err)
}

func (m *mapErr[Part, Ret, Output]) Flush() error { return m.mapped(m.inner.Flush()) }

func (m *mapErr[Part, Ret, Output]) Complete() (Output, error) {
	out, err := m.inner.Complete()
	return out, m.mapped(err)
}

func (m *mapErr[Part, Ret, Output]) Terminated() bool { return isTerminated(m.inner) }

// MapPart composes a conversion in front of a writer: each part passes
// through f before being sent to the inner writer. A conversion error fails
// the send without consuming writer readiness.
func MapPart[Part2, Part, Ret, Output any](
	w MultipartWriter[Part, Ret, Output],
	f func(Part2) (Part, error),
) MultipartWriter[Part2, Ret, Output] {
	return &mapPart[Part2, Part, Ret, Output]{inner: w, f: f}
}

type mapPart[Part2, Part, Ret, Output any] struct {
	inner MultipartWriter[Part, Ret, Output]
	f     func(Part2) (Part, error)
}

func (m *mapPart[Part2, Part, Ret, Output]) Prepare() error { return m.inner.Prepare() }

func (m *mapPart[Part2, Part, Ret, Output]) Send(part Part2) (Ret, error) {
	p, err := m.f(part)
	if err != nil {
		var zero Ret
		return zero, err
	}
	return m.inner.Send(p)
}

func (m *mapPart[Part2, Part, Ret, Output]) Flush() error { return m.inner.Flush() }

func (m *mapPart[Part2, Part, Ret, Output]) Complete() (Output, error) { return m.inner.Complete() }

func (m *mapPart[Part2, Part, Ret, Output]) Terminated() bool { return isTerminated(m.inner) }
