package wellknown

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Timestamp field numbers, per google/protobuf/timestamp.proto.
const (
	TimestampSecondsFieldNumber = 1
	TimestampNanosFieldNumber   = 2
)

// minTimestampSeconds is the Unix-epoch second count of 0001-01-01T00:00:00Z,
// the lower bound protobuf's Timestamp allows (year 0001).
const minTimestampSeconds = -62135596800

const timestampBaseLayout = "2006-01-02T15:04:05"

// ErrTimestampRange reports a timestamp before year 0001.
type ErrTimestampRange struct{ Literal string }

func (e *ErrTimestampRange) Error() string {
	return fmt.Sprintf("wellknown: timestamp %q is before year 0001", e.Literal)
}

// DecodeTimestamp parses an RFC 3339 Timestamp string body (without
// surrounding quotes) into seconds and nanos. The value is recognized in
// three regions: a base "YYYY-MM-DDTHH:MM:SS", an optional ".fraction" (at
// most 9 digits), and a zone ("Z" or "±HH:MM"). Any ±HH:MM offset is
// accepted, not just :00 minutes; parseZone reads the hours and minutes of
// the offset.
func DecodeTimestamp(literal string) (seconds int64, nanos int32, err error) {
	var fracPart string
	var zonePart string

	if len(literal) < len(timestampBaseLayout) {
		return 0, 0, fmt.Errorf("wellknown: timestamp %q is too short", literal)
	}
	base := literal[:len(timestampBaseLayout)]
	rest := literal[len(timestampBaseLayout):]

	if strings.HasPrefix(rest, ".") {
		i := 1
		for i < len(rest) && rest[i] >= '0' && rest[i] <= '9' {
			i++
		}
		if i-1 > 9 {
			return 0, 0, fmt.Errorf("wellknown: timestamp %q fraction has more than 9 digits", literal)
		}
		fracPart = rest[1:i]
		zonePart = rest[i:]
	} else {
		zonePart = rest
	}

	t, perr := time.Parse(timestampBaseLayout, base)
	if perr != nil {
		return 0, 0, fmt.Errorf("wellknown: timestamp %q has invalid base: %w", literal, perr)
	}

	offset, zerr := parseZone(zonePart)
	if zerr != nil {
		return 0, 0, fmt.Errorf("wellknown: timestamp %q has invalid zone: %w", literal, zerr)
	}

	// Applying an offset of "+HH:MM" means the wall-clock time is that many
	// hours/minutes ahead of UTC, so the UTC instant is base - offset.
	utc := t.Add(-offset)
	secs := utc.Unix()

	var nanoVal int32
	if fracPart != "" {
		padded := fracPart
		for len(padded) < 9 {
			padded += "0"
		}
		n, nerr := strconv.ParseInt(padded[:9], 10, 64)
		if nerr != nil {
			return 0, 0, fmt.Errorf("wellknown: timestamp %q has invalid fraction: %w", literal, nerr)
		}
		nanoVal = int32(n)
	}

	if secs < minTimestampSeconds {
		return 0, 0, &ErrTimestampRange{Literal: literal}
	}

	return secs, nanoVal, nil
}

func parseZone(z string) (time.Duration, error) {
	if z == "Z" {
		return 0, nil
	}
	if len(z) != 6 || (z[0] != '+' && z[0] != '-') || z[3] != ':' {
		return 0, fmt.Errorf("zone %q must be Z or ±HH:MM", z)
	}
	hh, err := strconv.Atoi(z[1:3])
	if err != nil {
		return 0, err
	}
	mm, err := strconv.Atoi(z[4:6])
	if err != nil {
		return 0, err
	}
	offset := time.Duration(hh)*time.Hour + time.Duration(mm)*time.Minute
	if z[0] == '-' {
		offset = -offset
	}
	return offset, nil
}

// EncodeTimestamp renders seconds/nanos back to canonical RFC 3339,
// provided for symmetry/testing.
func EncodeTimestamp(seconds int64, nanos int32) string {
	t := time.Unix(seconds, int64(nanos)).UTC()
	if nanos == 0 {
		return t.Format("2006-01-02T15:04:05Z")
	}
	return t.Format("2006-01-02T15:04:05.000000000Z")
}
