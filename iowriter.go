// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mpw

import (
	"errors"
	"io"
)

// defaultBufSize matches the conventional stdlib buffered-writer capacity.
const defaultBufSize = 8 * 1024

// ErrCompleted is returned by an [IOWriter] operation after Complete has
// handed back the underlying writer.
var ErrCompleted = errors.New("mpw: writer already completed")

// IOWriter adapts an [io.Writer] to the MultipartWriter contract for byte
// parts.
//
// Send appends the part to an internal buffer; Prepare writes the buffer
// through to the underlying writer once it exceeds the size threshold, so a
// part is never split against stale readiness. Complete hands back the
// underlying writer, after which every operation fails with [ErrCompleted].
//
// The acknowledgement of Send is the length of the accepted part.
type IOWriter[W io.Writer] struct {
	inner     W
	buf       []byte
	threshold int
	done      bool
}

// NewIOWriter creates an IOWriter over w. A non-positive threshold selects
// the default buffer size.
func NewIOWriter[W io.Writer](w W, threshold int) *IOWriter[W] {
	if threshold <= 0 {
		threshold = defaultBufSize
	}
	return &IOWriter[W]{
		inner:     w,
		buf:       make([]byte, 0, threshold),
		threshold: threshold,
	}
}

// Prepare reports ready once the internal buffer is under the threshold,
// forcing a write-through first when it is not.
func (w *IOWriter[W]) Prepare() error {
	if w.done {
		return ErrCompleted
	}
	if len(w.buf) < w.threshold {
		return nil
	}
	return w.writeThrough()
}

// Send appends part to the internal buffer and acknowledges its length.
func (w *IOWriter[W]) Send(part []byte) (int, error) {
	if w.done {
		return 0, ErrCompleted
	}
	w.buf = append(w.buf, part...)
	return len(part), nil
}

// Flush writes any buffered bytes through to the underlying writer.
// Flushing with an empty buffer is a no-op.
func (w *IOWriter[W]) Flush() error {
	if w.done {
		return ErrCompleted
	}
	return w.writeThrough()
}

// Complete hands back the underlying writer. The caller must Flush first;
// completing with buffered bytes still pending fails fast.
func (w *IOWriter[W]) Complete() (W, error) {
	var zero W
	if w.done {
		return zero, ErrCompleted
	}
	if len(w.buf) > 0 {
		panic("mpw: complete with unflushed bytes buffered")
	}
	w.done = true
	inner := w.inner
	w.inner = zero
	return inner, nil
}

func (w *IOWriter[W]) writeThrough() error {
	for len(w.buf) > 0 {
		n, err := w.inner.Write(w.buf)
		if n > 0 {
			w.buf = w.buf[:copy(w.buf, w.buf[n:])]
		}
		if err != nil {
			return err
		}
		if n == 0 {
			return io.ErrShortWrite
		}
	}
	return nil
}
