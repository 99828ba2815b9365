package accum

import (
	"fmt"
)

// Mode selects how captured bytes are routed once a value's capture begins.
type Mode int

const (
	// ModeInactive: no value is being captured. Receiving text while
	// Inactive is an internal driver error (panic), never a parse error.
	ModeInactive Mode = iota
	// ModeAccumulate: captured bytes accumulate (numbers, field names,
	// enum names, bytes, duration/timestamp fragments) until End is
	// called, at which point the whole value is available via Bytes.
	ModeAccumulate
	// ModePushEagerly: captured bytes are pushed to a sink as they arrive
	// (string fields) and never buffered in the accumulator.
	ModePushEagerly
)

// PushFunc delivers bytes directly to a sink while in ModePushEagerly. It is
// called once per non-empty Feed, whether that carries a run of unescaped
// text or the bytes of one decoded escape.
type PushFunc func(b []byte)

// Multipart routes captured text either into an Accumulator (ModeAccumulate)
// or directly out via a PushFunc (ModePushEagerly), selected per value kind
// by the driver.
type Multipart struct {
	mode Mode
	push PushFunc
	acc  Accumulator
}

// StartAccumulate transitions into ModeAccumulate. It panics if a multipart
// channel is already open, since overlapping captures are a driver bug.
func (m *Multipart) StartAccumulate() {
	m.assertInactive()
	m.mode = ModeAccumulate
	m.acc.Clear()
}

// StartPush transitions into ModePushEagerly, delivering bytes to push as
// they're fed via Feed.
func (m *Multipart) StartPush(push PushFunc) {
	m.assertInactive()
	m.mode = ModePushEagerly
	m.push = push
	m.acc.Clear()
}

func (m *Multipart) assertInactive() {
	if m.mode != ModeInactive {
		panic(fmt.Sprintf("accum: multipart channel already open in mode %d", m.mode))
	}
}

// Feed routes b according to the current mode. canAlias tells the
// accumulator (in ModeAccumulate) whether b may be aliased rather than
// copied; it is ignored in ModePushEagerly, since pushed bytes are handed to
// the sink immediately and never retained.
func (m *Multipart) Feed(b []byte, canAlias bool) error {
	switch m.mode {
	case ModeAccumulate:
		return m.acc.Append(b, canAlias)
	case ModePushEagerly:
		if len(b) > 0 {
			m.push(b)
		}
		return nil
	default:
		panic("accum: Feed called while multipart channel is inactive")
	}
}

// Bytes returns the accumulated value. Valid only in ModeAccumulate, after
// one or more Feed calls and before End.
func (m *Multipart) Bytes() []byte {
	return m.acc.Get()
}

// Accumulator exposes the underlying Accumulator directly, regardless of
// mode.
func (m *Multipart) Accumulator() *Accumulator {
	return &m.acc
}

// Mode reports the current mode.
func (m *Multipart) Mode() Mode {
	return m.mode
}

// End closes the multipart channel, clearing the accumulator and returning
// to ModeInactive.
func (m *Multipart) End() {
	m.mode = ModeInactive
	m.push = nil
	m.acc.Clear()
}
