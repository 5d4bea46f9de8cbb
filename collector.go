// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mpw

// Collector is the in-memory reference MultipartWriter: it appends each part
// to a slice and hands the slice over on completion.
//
// Collector is always ready, so Prepare and Flush never report would-block.
// Send acknowledges with the number of parts written in the current session,
// 1-based, which makes count-driven completion policies (every Kth part)
// trivial to express.
//
// Complete returns the accumulated parts and resets the collector for the
// next session.
type Collector[Part any] struct {
	parts []Part
}

// NewCollector creates an empty Collector.
func NewCollector[Part any]() *Collector[Part] {
	return &Collector[Part]{}
}

// Prepare always reports ready.
func (c *Collector[Part]) Prepare() error { return nil }

// Send appends part and returns the session part count so far.
func (c *Collector[Part]) Send(part Part) (int, error) {
	c.parts = append(c.parts, part)
	return len(c.parts), nil
}

// Flush is a no-op; the collector holds no unwritten buffering.
func (c *Collector[Part]) Flush() error { return nil }

// Complete returns the parts accumulated this session and starts a new one.
func (c *Collector[Part]) Complete() ([]Part, error) {
	out := c.parts
	c.parts = nil
	return out, nil
}

// Len returns the number of parts accumulated in the current session.
func (c *Collector[Part]) Len() int { return len(c.parts) }
