// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mpw_test

import (
	"io"
	"math/rand/v2"
	"slices"
	"testing"

	"code.hybscloud.com/mpw"
)

const propertyN = 200

// drainAll drives a feed to exhaustion and returns every yielded output.
func drainAll(t *testing.T, feed *mpw.Feed[int, int, []int]) [][]int {
	t.Helper()
	var outs [][]int
	for {
		out, err := feed.Next()
		if err == nil {
			outs = append(outs, out)
			continue
		}
		if err == io.EOF {
			return outs
		}
		t.Fatalf("unexpected error: %v", err)
	}
}

// TestPropertyConcatenationPreservesSource: for any input, the
// concatenation of all yielded batches equals the source sequence.
func TestPropertyConcatenationPreservesSource(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		n := rng.IntN(64)
		k := rng.IntN(8) + 1
		parts := make([]int, n)
		for i := range parts {
			parts[i] = rng.IntN(2001) - 1000
		}

		feed := mpw.NewFeed[int, int, []int](
			mpw.SliceSource(parts...),
			mpw.NewCollector[int](),
			everyKth(k),
		)
		outs := drainAll(t, feed)

		var flat []int
		for _, out := range outs {
			flat = append(flat, out...)
		}
		if !slices.Equal(flat, parts) {
			t.Fatalf("concatenation: got %v, want %v (n=%d k=%d)", flat, parts, n, k)
		}
	}
}

// TestPropertyBatchCount: when the policy cuts every k parts and k divides
// n, exactly n/k batches of size k are yielded; otherwise one trailing
// partial batch follows.
func TestPropertyBatchCount(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		n := rng.IntN(64)
		k := rng.IntN(8) + 1

		feed := mpw.NewFeed[int, int, []int](
			mpw.SliceSource(ints(1, n)...),
			mpw.NewCollector[int](),
			everyKth(k),
		)
		outs := drainAll(t, feed)

		want := n / k
		if n%k != 0 {
			want++
		}
		if len(outs) != want {
			t.Fatalf("got %d batches, want %d (n=%d k=%d)", len(outs), want, n, k)
		}
		for i, out := range outs {
			size := k
			if i == len(outs)-1 && n%k != 0 {
				size = n % k
			}
			if len(out) != size {
				t.Fatalf("batch %d: got size %d, want %d (n=%d k=%d)", i, len(out), size, n, k)
			}
		}
	}
}

// TestPropertyEmptySourceYieldsNothing: a stream of zero parts produces
// zero artifacts regardless of the policy.
func TestPropertyEmptySourceYieldsNothing(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		k := rng.IntN(8) + 1
		feed := mpw.NewFeed[int, int, []int](
			mpw.SliceSource[int](),
			mpw.NewCollector[int](),
			everyKth(k),
		)
		if outs := drainAll(t, feed); len(outs) != 0 {
			t.Fatalf("got %d outputs from an empty source", len(outs))
		}
	}
}

// TestPropertyAssembleEqualsSingleSessionFeed: assembling a source equals
// the single artifact of a policy-free feed over the same source.
func TestPropertyAssembleEqualsSingleSessionFeed(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		n := rng.IntN(64) + 1
		parts := make([]int, n)
		for i := range parts {
			parts[i] = rng.IntN(2001) - 1000
		}

		a := mpw.NewAssemble[int, int, []int](
			mpw.SliceSource(parts...),
			mpw.NewCollector[int](),
		)
		assembled, err := mpw.Resolve(a)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		feed := mpw.NewFeed[int, int, []int](
			mpw.SliceSource(parts...),
			mpw.NewCollector[int](),
			nil,
		)
		outs := drainAll(t, feed)
		if len(outs) != 1 {
			t.Fatalf("got %d outputs from a policy-free feed, want 1", len(outs))
		}
		if !slices.Equal(assembled, outs[0]) {
			t.Fatalf("assemble %v != feed %v", assembled, outs[0])
		}
	}
}
