package accum

// CaptureState identifies what a Capture is currently doing. Modeled as a
// tagged variant with chunk-relative offsets rather than a pointer into the
// chunk, since a Go slice's backing array is only guaranteed to outlive one
// Write call.
type CaptureState int

const (
	// CaptureNone: no capture in progress.
	CaptureNone CaptureState = iota
	// CaptureActive: capture began at Offset within the current chunk.
	CaptureActive
	// CaptureSuspended: a capture crossed a chunk boundary and its partial
	// bytes were copied into the accumulator; Resume must be called with
	// the offset of the new chunk before End can be called again.
	CaptureSuspended
)

// Capture marks an input offset as the start of a logical value (string
// content, escape, number literal, timestamp/duration fragment) and tracks
// it across chunk boundaries.
type Capture struct {
	state  CaptureState
	offset int // meaningful only when state == CaptureActive
}

// Begin marks offset (within the current chunk) as the start of a capture.
func (c *Capture) Begin(offset int) {
	c.state = CaptureActive
	c.offset = offset
}

// End closes a capture that began (or was resumed) within the current
// chunk, returning the captured span [beginOffset, end) of chunk. It panics
// if no capture is active, since a capture_end with no matching begin is an
// internal driver bug, not a recoverable parse error.
func (c *Capture) End(chunk []byte, end int) []byte {
	if c.state != CaptureActive {
		panic("accum: End called without an active capture")
	}
	span := chunk[c.offset:end]
	c.state = CaptureNone
	return span
}

// Suspend is invoked at end-of-chunk while a capture is active. It returns
// the partial bytes captured so far in this chunk (chunk[beginOffset:] ) so
// the caller can route them into the accumulator; on success the capture is
// marked Suspended and Resume must be called with the new chunk's starting
// offset before the next End. ok is false if no capture was active, in
// which case the caller has nothing to do.
func (c *Capture) Suspend(chunk []byte) (partial []byte, ok bool) {
	if c.state != CaptureActive {
		return nil, false
	}
	partial = chunk[c.offset:]
	c.state = CaptureSuspended
	return partial, true
}

// Resume re-begins a suspended capture at the start of a new chunk.
func (c *Capture) Resume(offset int) {
	if c.state != CaptureSuspended {
		panic("accum: Resume called without a suspended capture")
	}
	c.state = CaptureActive
	c.offset = offset
}

// Active reports whether a capture is currently open (Active or Suspended).
func (c *Capture) Active() bool {
	return c.state != CaptureNone
}

// State returns the current CaptureState, mostly for tests and tracing.
func (c *Capture) State() CaptureState {
	return c.state
}
