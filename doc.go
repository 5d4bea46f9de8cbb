// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package mpw provides a generic abstraction for asynchronously writing an
// object in parts, and the engine that bridges a pull-based part source to
// that push-based writer contract.
//
// The core type [MultipartWriter] is a Sink-like interface where both
// sending a part and completing a session return caller-useful values: each
// Send yields an acknowledgement, and each Complete yields the assembled
// session output.
//
// # Non-Blocking Semantics
//
// Operations are strictly non-blocking, following the
// [code.hybscloud.com/iox] boundary convention used across this library
// family:
//
//   - nil error: the operation completed
//   - [code.hybscloud.com/iox.ErrWouldBlock]: cannot make progress now,
//     retry after external progress
//   - [io.EOF]: a pull stream is exhausted (sources and derived streams)
//
// Send is the one exception: it never suspends, but must be immediately
// preceded by a Prepare that returned nil, with no suspension point in
// between. Readiness is never assumed stale-proof; drivers re-check it
// before every send.
//
// # Writer Contract
//
//   - [MultipartWriter]: the four-phase contract — Prepare, Send, Flush,
//     Complete
//   - [FusedMultipartWriter]: adds Terminated, the permanently-done query
//
// Completion never flushes implicitly: the caller must drive Flush to ready
// before Complete. All drivers in this package obey this ordering.
//
// # Sources
//
//   - [Source]: asynchronous pull-sequence of parts
//   - [SourceFunc]: function adapter
//   - [SliceSource]: in-memory source
//   - [SeqSource]: adapts a Go iterator via [iter.Pull]
//
// # Bridge and Engines
//
// The hard part of feeding a pull source into a push writer is that "the
// source has a next part" and "the writer is ready" are separate suspension
// points that cannot be combined atomically. [StreamWriter] solves this by
// buffering exactly one part across steps and re-checking readiness
// immediately before every send:
//
//   - [StreamWriter]: single-item-buffer bridge; [StreamWriter.Step]
//     reports a uniform [StepResult] consumable by any driver
//   - [Feed]: exposes the bridge as a derived stream of session outputs,
//     cut by a completion [Policy] over send acknowledgements
//   - [Assemble]: the single-session variant; the whole source resolves to
//     one output, with exhaustion as the sole completion trigger
//   - [Drain], [Resolve]: blocking convenience drivers for cooperative
//     in-memory pipelines
//
// # Reference Writers
//
//   - [Collector]: in-memory accumulator; acknowledges with the session
//     part count
//   - [IOWriter]: byte-stream adapter over [io.Writer] with threshold
//     write-through; Complete hands back the underlying writer
//
// # Decorators
//
//   - [MapOutput], [MapRet], [MapErr], [MapPart]: 1:1 type-mapping layers
//   - [Fuse]: terminates the writer once a completed output satisfies a
//     predicate
//   - [Fanout]: duplicates parts into two writers, pairing their results
//
// # Example
//
//	src := mpw.SliceSource(1, 2, 3, 4, 5, 6)
//	feed := mpw.NewFeed[int, int, []int](src, mpw.NewCollector[int](), func(n int) bool {
//		return n%3 == 0 // cut a session every third part
//	})
//	outs, _ := mpw.Drain(feed)
//	// outs == [][]int{{1, 2, 3}, {4, 5, 6}}
package mpw
