package wellknown

import (
	"fmt"

	"github.com/flitsinc/go-jsonpb/decode"
	"github.com/flitsinc/go-jsonpb/schema"
)

// MapEntry field numbers, matching the synthetic message protoc generates
// for every map field (key = 1, value = 2).
const (
	MapEntryKeyFieldNumber   = 1
	MapEntryValueFieldNumber = 2
)

// DecodeMapKey parses a JSON object member name as a map field's key: map
// keys are always JSON strings lexically, but their *parsed* kind can be
// any scalar the map's key field declares (protobuf only allows integral,
// bool, or string map keys). The quoted flag is always true here, named
// explicitly rather than inferred from context, since JSON object keys are
// always strings textually regardless of what kind they're parsed as.
func DecodeMapKey(literal string, keyKind schema.Kind) (any, error) {
	const quoted = true
	switch keyKind {
	case schema.KindString:
		return literal, nil
	case schema.KindBool:
		return decode.Bool(literal, quoted)
	case schema.KindInt32, schema.KindInt64, schema.KindUint32, schema.KindUint64:
		return decode.Number(literal, quoted, keyKind)
	default:
		return nil, fmt.Errorf("wellknown: unsupported map key kind %s", keyKind)
	}
}
