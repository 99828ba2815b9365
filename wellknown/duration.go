package wellknown

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Duration field numbers, per google/protobuf/duration.proto.
const (
	DurationSecondsFieldNumber = 1
	DurationNanosFieldNumber   = 2
)

const maxDurationSeconds = 315576000000

// ErrDurationRange reports a duration literal whose seconds fall outside
// ±315,576,000,000, the range protobuf's Duration allows.
type ErrDurationRange struct{ Literal string }

func (e *ErrDurationRange) Error() string {
	return fmt.Sprintf("wellknown: duration %q out of range", e.Literal)
}

// DecodeDuration parses a JSON Duration string body (without the
// surrounding quotes), e.g. "1.5s" or "-0.250s", into seconds and nanos, the
// same pair of fields a real Duration message would carry.
func DecodeDuration(literal string) (seconds int64, nanos int32, err error) {
	if !strings.HasSuffix(literal, "s") {
		return 0, 0, fmt.Errorf("wellknown: duration %q must end in 's'", literal)
	}
	body := literal[:len(literal)-1]

	secPart, fracPart, hasFrac := strings.Cut(body, ".")
	if secPart == "" || secPart == "-" {
		return 0, 0, fmt.Errorf("wellknown: duration %q missing seconds", literal)
	}

	secs, err := strconv.ParseInt(secPart, 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("wellknown: duration %q has invalid seconds: %w", literal, err)
	}
	if secs > maxDurationSeconds || secs < -maxDurationSeconds {
		return 0, 0, &ErrDurationRange{Literal: literal}
	}

	negative := secs < 0 || (secs == 0 && strings.HasPrefix(secPart, "-"))

	var nanoVal int32
	if hasFrac {
		frac, ferr := strconv.ParseFloat("0."+fracPart, 64)
		if ferr != nil {
			return 0, 0, fmt.Errorf("wellknown: duration %q has invalid fraction: %w", literal, ferr)
		}
		nanoVal = int32(math.Trunc(frac * 1e9))
		if negative {
			nanoVal = -int32(math.Abs(float64(nanoVal)))
		}
	}

	return secs, nanoVal, nil
}

// EncodeDuration renders seconds/nanos back to Duration's canonical JSON
// string form, e.g. (1, 500000000) -> "1.500000000s". Provided for
// symmetry/testing; jsonpb itself only ever decodes.
func EncodeDuration(seconds int64, nanos int32) string {
	if nanos == 0 {
		return fmt.Sprintf("%ds", seconds)
	}
	abs := nanos
	if abs < 0 {
		abs = -abs
	}
	sign := ""
	if seconds == 0 && nanos < 0 {
		sign = "-"
	}
	return fmt.Sprintf("%s%d.%09ds", sign, seconds, abs)
}
