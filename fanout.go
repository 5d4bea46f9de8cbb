// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mpw

// Fanout duplicates every part into two writers and pairs their results.
//
// The part type must be duplicable: clone is applied to each part and the
// original goes to the first writer, the clone to the second. Fanout does
// not synchronize the two writers' internal state beyond requiring both to
// be ready before a send.
type Fanout[Part, RetA, RetB, OutA, OutB any] struct {
	a     MultipartWriter[Part, RetA, OutA]
	b     MultipartWriter[Part, RetB, OutB]
	clone func(Part) Part

	// completed outputs are memoized so that a would-block from one side
	// never re-completes the other on retry
	outA  OutA
	outB  OutB
	doneA bool
	doneB bool
}

// Pair holds the paired results of the two fanned-out writers.
type Pair[A, B any] struct {
	Fst A
	Snd B
}

// NewFanout creates a Fanout over a and b. For value types an identity
// clone is sufficient; reference types must be deep-cloned by the caller.
func NewFanout[Part, RetA, RetB, OutA, OutB any](
	a MultipartWriter[Part, RetA, OutA],
	b MultipartWriter[Part, RetB, OutB],
	clone func(Part) Part,
) *Fanout[Part, RetA, RetB, OutA, OutB] {
	return &Fanout[Part, RetA, RetB, OutA, OutB]{a: a, b: b, clone: clone}
}

// Prepare reports ready only when both writers are ready. Both are polled
// each round so either can make background progress; a failure takes
// precedence over a would-block.
func (w *Fanout[Part, RetA, RetB, OutA, OutB]) Prepare() error {
	return joinPoll(w.a.Prepare(), w.b.Prepare())
}

// Send writes the part to the first writer and its clone to the second.
func (w *Fanout[Part, RetA, RetB, OutA, OutB]) Send(part Part) (Pair[RetA, RetB], error) {
	dup := w.clone(part)
	retA, err := w.a.Send(part)
	if err != nil {
		return Pair[RetA, RetB]{}, err
	}
	retB, err := w.b.Send(dup)
	if err != nil {
		return Pair[RetA, RetB]{}, err
	}
	return Pair[RetA, RetB]{Fst: retA, Snd: retB}, nil
}

// Flush flushes both writers, reporting ready only when both are done.
// A failure takes precedence over a would-block.
func (w *Fanout[Part, RetA, RetB, OutA, OutB]) Flush() error {
	return joinPoll(w.a.Flush(), w.b.Flush())
}

// Complete completes both writers and pairs their outputs. Each side's
// completion is issued exactly once even when the other reports would-block.
func (w *Fanout[Part, RetA, RetB, OutA, OutB]) Complete() (Pair[OutA, OutB], error) {
	if !w.doneA {
		out, err := w.a.Complete()
		if err != nil {
			return Pair[OutA, OutB]{}, err
		}
		w.outA, w.doneA = out, true
	}
	if !w.doneB {
		out, err := w.b.Complete()
		if err != nil {
			return Pair[OutA, OutB]{}, err
		}
		w.outB, w.doneB = out, true
	}
	pair := Pair[OutA, OutB]{Fst: w.outA, Snd: w.outB}
	var zeroA OutA
	var zeroB OutB
	w.outA, w.outB = zeroA, zeroB
	w.doneA, w.doneB = false, false
	return pair, nil
}

// joinPoll merges two poll results: a failure wins over a would-block, and
// a would-block wins over ready.
func joinPoll(errA, errB error) error {
	if errA != nil && !isWouldBlock(errA) {
		return errA
	}
	if errB != nil && !isWouldBlock(errB) {
		return errB
	}
	if errA != nil {
		return errA
	}
	return errB
}

// Terminated reports whether either writer is fused and terminated.
func (w *Fanout[Part, RetA, RetB, OutA, OutB]) Terminated() bool {
	return isTerminated(w.a) || isTerminated(w.b)
}
