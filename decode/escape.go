// Package decode holds the leaf codecs a streaming JSON-to-protobuf parser
// needs once a value has been captured: escape/hex decoding, number
// parsing with protobuf's quoted-literal rules, and base64 decoding for
// bytes values.
package decode

import (
	"fmt"
	"unicode/utf16"
	"unicode/utf8"
)

// ErrInvalidEscape is returned for an unrecognized `\x` escape character.
type ErrInvalidEscape struct {
	Char byte
}

func (e *ErrInvalidEscape) Error() string {
	return fmt.Sprintf("decode: invalid escape character %q", e.Char)
}

// SimpleEscape returns the single byte a `\c` escape decodes to, and true,
// or (0, false) if c isn't one of the recognized short escapes.
func SimpleEscape(c byte) (byte, bool) {
	switch c {
	case 'r':
		return '\r', true
	case 't':
		return '\t', true
	case 'n':
		return '\n', true
	case 'f':
		return '\f', true
	case 'b':
		return '\b', true
	case '/':
		return '/', true
	case '"':
		return '"', true
	case '\\':
		return '\\', true
	default:
		return 0, false
	}
}

// SurrogateState assembles a `\uXXXX` escape sequence into UTF-8, including
// high/low surrogate pairs. A lone or out-of-order surrogate decodes to
// U+FFFD rather than to an invalid 3-byte "UTF-8" encoding of the raw
// surrogate value.
type SurrogateState struct {
	pendingHigh rune // 0 if no high surrogate is pending
	hasPending  bool
}

// PutUnicodeEscape consumes one decoded `\uXXXX` code point (given as the
// 16-bit value accumulated from four hex digits) and returns UTF-8 bytes to
// emit now, if any. A high surrogate is held back (emitting nothing) until
// either a matching low surrogate arrives (emitting the combined code
// point) or a non-low-surrogate code point arrives (emitting U+FFFD for the
// orphaned high surrogate, followed by the new code point's own encoding).
func (s *SurrogateState) PutUnicodeEscape(cp uint32) []byte {
	r := rune(cp)
	if s.hasPending {
		high := s.pendingHigh
		s.hasPending = false
		s.pendingHigh = 0
		if utf16.IsSurrogate(r) {
			combined := utf16.DecodeRune(high, r)
			if combined != utf8.RuneError {
				return encodeRune(combined)
			}
			// high,r is not a valid pair (e.g. high,high or low,low):
			// emit replacement for the orphaned high, then process r
			// as if it had arrived on its own.
			out := encodeRune(utf8.RuneError)
			return append(out, s.putFresh(r)...)
		}
		// A pending high surrogate wasn't followed by a low surrogate.
		out := encodeRune(utf8.RuneError)
		return append(out, s.putFresh(r)...)
	}
	return s.putFresh(r)
}

func (s *SurrogateState) putFresh(r rune) []byte {
	if isHighSurrogate(r) {
		s.pendingHigh = r
		s.hasPending = true
		return nil
	}
	if isLowSurrogate(r) {
		// An orphaned low surrogate with no preceding high.
		return encodeRune(utf8.RuneError)
	}
	return encodeRune(r)
}

// Flush reports an orphaned pending high surrogate at end-of-value (e.g. the
// string closed immediately after `\uD800`), returning U+FFFD's encoding.
func (s *SurrogateState) Flush() []byte {
	if !s.hasPending {
		return nil
	}
	s.hasPending = false
	s.pendingHigh = 0
	return encodeRune(utf8.RuneError)
}

func isHighSurrogate(r rune) bool { return r >= 0xD800 && r <= 0xDBFF }
func isLowSurrogate(r rune) bool  { return r >= 0xDC00 && r <= 0xDFFF }

func encodeRune(r rune) []byte {
	buf := make([]byte, utf8.RuneLen(r))
	n := utf8.EncodeRune(buf, r)
	return buf[:n]
}

// HexDigit returns the value of a single hex digit byte, or (0, false) if c
// isn't a valid hex digit.
func HexDigit(c byte) (uint32, bool) {
	switch {
	case c >= '0' && c <= '9':
		return uint32(c - '0'), true
	case c >= 'a' && c <= 'f':
		return uint32(c-'a') + 10, true
	case c >= 'A' && c <= 'F':
		return uint32(c-'A') + 10, true
	default:
		return 0, false
	}
}
