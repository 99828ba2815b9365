// Package accum implements the buffer-seam-tolerant capture mechanism a
// streaming JSON parser needs: an optimistic zero-copy span that promotes to
// a growable owned buffer the moment a value spans more than one input
// chunk or contains an escape, plus the capture/multipart-routing machinery
// built on top of it.
package accum

import (
	"errors"
	"math"
)

// ErrOverflow is reported when appending would overflow the accumulator's
// length arithmetic. On a 64-bit Go int this is unreachable in practice, but
// the check is kept because the invariant is part of the contract, not an
// artifact of a 32-bit length type.
var ErrOverflow = errors.New("accum: length overflow")

const ownedFloor = 128

// Accumulator holds the current captured value: either a zero-copy alias
// into caller-owned bytes, or an owned buffer that's been grown to hold
// content that crossed a chunk boundary or needed transformation (e.g. an
// escape decode). Exactly one of the two is active at a time; Clear resets
// to neither without freeing the owned buffer, so it can be reused for the
// next value in the same parse.
type Accumulator struct {
	aliased []byte // non-nil while aliasing caller bytes directly
	owned   []byte // grows by doubling; reused across values
}

// Append adds b to the accumulator. When the accumulator is currently empty
// and canAlias is true, b is stored as a zero-copy alias: no bytes are
// copied, and Get will return exactly b until the next Append or Clear.
// Otherwise, any existing alias is first copied into the owned buffer
// (promotion), and b is appended to it.
func (a *Accumulator) Append(b []byte, canAlias bool) error {
	if len(b) == 0 {
		return nil
	}
	if len(a.owned) == 0 && a.aliased == nil && canAlias {
		a.aliased = b
		return nil
	}
	if a.aliased != nil {
		if err := a.promote(); err != nil {
			return err
		}
	}
	return a.appendOwned(b)
}

// promote copies an active alias into the owned buffer and clears it, so
// further appends go through appendOwned.
func (a *Accumulator) promote() error {
	alias := a.aliased
	a.aliased = nil
	a.owned = a.owned[:0]
	return a.appendOwned(alias)
}

func (a *Accumulator) appendOwned(b []byte) error {
	newLen := len(a.owned) + len(b)
	if newLen < len(a.owned) || newLen < len(b) {
		return ErrOverflow
	}
	if cap(a.owned) < newLen {
		newCap := max(cap(a.owned), ownedFloor)
		for newCap < newLen {
			if newCap > math.MaxInt/2 {
				return ErrOverflow
			}
			newCap *= 2
		}
		grown := make([]byte, len(a.owned), newCap)
		copy(grown, a.owned)
		a.owned = grown
	}
	a.owned = append(a.owned, b...)
	return nil
}

// Get returns the current contiguous contents of the accumulator: either
// the aliased span or the owned buffer's contents.
func (a *Accumulator) Get() []byte {
	if a.aliased != nil {
		return a.aliased
	}
	return a.owned
}

// Len returns len(Get()) without materializing anything.
func (a *Accumulator) Len() int {
	if a.aliased != nil {
		return len(a.aliased)
	}
	return len(a.owned)
}

// Clear empties the accumulator. The owned buffer's backing array is kept
// (truncated to zero length) for amortized reuse by the next value.
func (a *Accumulator) Clear() {
	a.aliased = nil
	a.owned = a.owned[:0]
}

// IsAliasing reports whether Get currently returns a zero-copy alias rather
// than the owned buffer. Exposed for tests that want to assert the
// fast-path was actually taken.
func (a *Accumulator) IsAliasing() bool {
	return a.aliased != nil
}
