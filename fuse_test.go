// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mpw_test

import (
	"testing"

	"code.hybscloud.com/mpw"
)

func TestFuseTerminatesOnPredicate(t *testing.T) {
	c := mpw.NewCollector[int]()
	w := mpw.NewFuse[int, int, []int](c, func(parts []int) bool { return len(parts) >= 2 })

	if _, err := w.Send(1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := w.Complete(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if w.Terminated() {
		t.Fatal("terminated on an output the predicate rejects")
	}

	for _, p := range []int{2, 3} {
		if _, err := w.Send(p); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if _, err := w.Complete(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !w.Terminated() {
		t.Fatal("predicate accepted the output, writer must terminate")
	}
}

func TestFuseIsInertAfterTermination(t *testing.T) {
	c := mpw.NewCollector[int]()
	w := mpw.NewFuse[int, int, []int](c, func([]int) bool { return true })

	if _, err := w.Send(1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := w.Complete(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := w.Prepare(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ack, err := w.Send(9)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ack != 0 {
		t.Fatalf("got ack %d, want the zero value", ack)
	}
	if c.Len() != 0 {
		t.Fatal("part reached the inner writer after termination")
	}
	out, err := w.Complete()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != nil {
		t.Fatalf("got %v, want the zero output", out)
	}
}

func TestFuseNestedTerminationPropagates(t *testing.T) {
	inner := mpw.NewFuse[int, int, []int](mpw.NewCollector[int](), func([]int) bool { return true })
	outer := mpw.NewFuse[int, int, []int](inner, func([]int) bool { return false })

	if _, err := outer.Send(1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := outer.Complete(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !outer.Terminated() {
		t.Fatal("inner termination must surface through the outer fuse")
	}
}
