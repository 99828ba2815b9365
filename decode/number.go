package decode

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/flitsinc/go-jsonpb/schema"
)

// ErrNumberSyntax reports a literal that doesn't parse as the requested
// kind, including the protobuf quoted-literal policy violations (e.g. a
// quoted "3.14" into an INT32 field).
type ErrNumberSyntax struct {
	Kind    schema.Kind
	Literal string
	Reason  string
}

func (e *ErrNumberSyntax) Error() string {
	return fmt.Sprintf("decode: invalid %s literal %q: %s", e.Kind, e.Literal, e.Reason)
}

// ErrNumberRange reports a literal that parses but falls outside the
// target kind's representable range.
type ErrNumberRange struct {
	Kind    schema.Kind
	Literal string
}

func (e *ErrNumberRange) Error() string {
	return fmt.Sprintf("decode: %s literal %q out of range", e.Kind, e.Literal)
}

var errEmptyLiteral = errors.New("decode: empty numeric literal")

// isPureIntegerSyntax reports whether s looks like `-?[0-9]+`, the only
// shape a quoted integer literal may take (protobuf JSON forbids quoted
// "3.14" -> int32 even though it parses fine as a float).
func isPureIntegerSyntax(s string) bool {
	if s == "" {
		return false
	}
	i := 0
	if s[0] == '-' {
		i = 1
	}
	if i == len(s) {
		return false
	}
	for ; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// Number parses literal (the fully-accumulated text of a JSON number, or of
// a quoted string used where a number is expected) against kind, following
// protobuf3's JSON number rules:
//
//   - INT32 / ENUM: signed, base-0 (so "0x1F" and "017" parse too, matching
//     strconv.ParseInt's base-0 handling), must fit in an int32.
//   - UINT32: unsigned, base-0, must fit in a uint32.
//   - INT64 / UINT64: same, 64-bit range (Go's strconv is natively 64-bit,
//     so no reduced-range fallback is needed).
//   - Quoted literals for integer kinds that the base-0 integer parse
//     rejects must match pure integer syntax before the float path is
//     tried: a quoted literal that only parses via the float path (e.g.
//     "3.14") is rejected even for a request that would otherwise tolerate
//     an integral float. A quoted literal the integer parse accepts (e.g.
//     "0x1F") is taken as is.
//   - FLOAT / DOUBLE: recognizes "Infinity"/"-Infinity" verbatim (matching
//     case only); otherwise parses as a float. FLOAT additionally
//     range-checks against ±math.MaxFloat32 unless infinite.
//
// The returned value is always one of int32/int64/uint32/uint64/float32/
// float64/int32 (for ENUM), matching kind.
func Number(literal string, quoted bool, kind schema.Kind) (any, error) {
	trimmed := strings.TrimSpace(literal)
	if trimmed == "" {
		return nil, errEmptyLiteral
	}
	if trimmed != literal {
		// Leading/trailing space is rejected outright.
		return nil, &ErrNumberSyntax{Kind: kind, Literal: literal, Reason: "leading or trailing space"}
	}

	switch kind {
	case schema.KindInt32, schema.KindEnum:
		v, err := strconv.ParseInt(literal, 0, 32)
		if err != nil {
			return parseAsIntegralFloat32(literal, quoted, kind, err)
		}
		return int32(v), nil

	case schema.KindUint32:
		v, err := strconv.ParseUint(literal, 0, 32)
		if err != nil {
			return parseAsIntegralUint32(literal, quoted, kind, err)
		}
		return uint32(v), nil

	case schema.KindInt64:
		v, err := strconv.ParseInt(literal, 0, 64)
		if err != nil {
			return parseAsIntegralFloat64(literal, quoted, kind, err)
		}
		return v, nil

	case schema.KindUint64:
		v, err := strconv.ParseUint(literal, 0, 64)
		if err != nil {
			return parseAsIntegralUint64(literal, quoted, kind, err)
		}
		return v, nil

	case schema.KindFloat:
		v, err := parseDouble(literal)
		if err != nil {
			return nil, err
		}
		if !math.IsInf(v, 0) && (v > math.MaxFloat32 || v < -math.MaxFloat32) {
			return nil, &ErrNumberRange{Kind: kind, Literal: literal}
		}
		return float32(v), nil

	case schema.KindDouble:
		v, err := parseDouble(literal)
		if err != nil {
			return nil, err
		}
		return v, nil

	default:
		return nil, fmt.Errorf("decode: Number called with non-numeric kind %s", kind)
	}
}

// parseDouble recognizes the exact literals "Infinity"/"-Infinity" before
// falling back to strconv.ParseFloat (which would otherwise also accept
// "inf", "Inf", "NaN", etc. -- all rejected by protobuf JSON).
func parseDouble(literal string) (float64, error) {
	switch literal {
	case "Infinity":
		return math.Inf(1), nil
	case "-Infinity":
		return math.Inf(-1), nil
	}
	if strings.ContainsAny(literal, "nNiI") {
		// strconv.ParseFloat accepts "inf"/"Inf"/"NaN"/"infinity" in any
		// case; protobuf JSON does not, so reject before asking strconv.
		return 0, &ErrNumberSyntax{Kind: schema.KindDouble, Literal: literal, Reason: "not a JSON number"}
	}
	v, err := strconv.ParseFloat(literal, 64)
	if err != nil {
		return 0, &ErrNumberSyntax{Kind: schema.KindDouble, Literal: literal, Reason: err.Error()}
	}
	return v, nil
}

func parseAsIntegralFloat32(literal string, quoted bool, kind schema.Kind, origErr error) (any, error) {
	if quoted && !isPureIntegerSyntax(literal) {
		return nil, &ErrNumberSyntax{Kind: kind, Literal: literal, Reason: "quoted literal must be a pure integer"}
	}
	if isRangeErr(origErr) {
		return nil, &ErrNumberRange{Kind: kind, Literal: literal}
	}
	v, err := parseDouble(literal)
	if err != nil {
		return nil, &ErrNumberSyntax{Kind: kind, Literal: literal, Reason: "not a valid integer"}
	}
	if math.IsInf(v, 0) || math.Trunc(v) != v || v < math.MinInt32 || v > math.MaxInt32 {
		return nil, &ErrNumberRange{Kind: kind, Literal: literal}
	}
	return int32(v), nil
}

func parseAsIntegralUint32(literal string, quoted bool, kind schema.Kind, origErr error) (any, error) {
	if quoted && !isPureIntegerSyntax(literal) {
		return nil, &ErrNumberSyntax{Kind: kind, Literal: literal, Reason: "quoted literal must be a pure integer"}
	}
	if isRangeErr(origErr) {
		return nil, &ErrNumberRange{Kind: kind, Literal: literal}
	}
	v, err := parseDouble(literal)
	if err != nil {
		return nil, &ErrNumberSyntax{Kind: kind, Literal: literal, Reason: "not a valid integer"}
	}
	if math.IsInf(v, 0) || math.Trunc(v) != v || v < 0 || v > math.MaxUint32 {
		return nil, &ErrNumberRange{Kind: kind, Literal: literal}
	}
	return uint32(v), nil
}

func parseAsIntegralFloat64(literal string, quoted bool, kind schema.Kind, origErr error) (any, error) {
	if quoted && !isPureIntegerSyntax(literal) {
		return nil, &ErrNumberSyntax{Kind: kind, Literal: literal, Reason: "quoted literal must be a pure integer"}
	}
	if isRangeErr(origErr) {
		return nil, &ErrNumberRange{Kind: kind, Literal: literal}
	}
	v, err := parseDouble(literal)
	if err != nil {
		return nil, &ErrNumberSyntax{Kind: kind, Literal: literal, Reason: "not a valid integer"}
	}
	if math.IsInf(v, 0) || math.Trunc(v) != v || v < math.MinInt64 || v > math.MaxInt64 {
		return nil, &ErrNumberRange{Kind: kind, Literal: literal}
	}
	return int64(v), nil
}

func parseAsIntegralUint64(literal string, quoted bool, kind schema.Kind, origErr error) (any, error) {
	if quoted && !isPureIntegerSyntax(literal) {
		return nil, &ErrNumberSyntax{Kind: kind, Literal: literal, Reason: "quoted literal must be a pure integer"}
	}
	if isRangeErr(origErr) {
		return nil, &ErrNumberRange{Kind: kind, Literal: literal}
	}
	v, err := parseDouble(literal)
	if err != nil {
		return nil, &ErrNumberSyntax{Kind: kind, Literal: literal, Reason: "not a valid integer"}
	}
	if math.IsInf(v, 0) || math.Trunc(v) != v || v < 0 || v > math.MaxUint64 {
		return nil, &ErrNumberRange{Kind: kind, Literal: literal}
	}
	return uint64(v), nil
}

func isRangeErr(err error) bool {
	var numErr *strconv.NumError
	if errors.As(err, &numErr) {
		return errors.Is(numErr.Err, strconv.ErrRange)
	}
	return false
}

// Bool parses a map-entry key (or any other context that permits a quoted
// boolean) into a bool.
func Bool(literal string, quoted bool) (bool, error) {
	switch literal {
	case "true":
		return true, nil
	case "false":
		return false, nil
	default:
		return false, fmt.Errorf("decode: invalid boolean literal %q", literal)
	}
}
