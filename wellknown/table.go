// Package wellknown recognizes the protobuf well-known container types that
// jsonpb dispatches transparently instead of treating as ordinary messages:
// the nine google.protobuf.*Value wrappers, Struct/Value/ListValue, and
// Duration/Timestamp. Dispatch is table-driven by full name, grounded on the
// teacher's content.Item/Type() tagged-union pattern generalized from a
// fixed Go type switch to a name-keyed table, since the well-known set here
// is named externally by string rather than by Go type.
package wellknown

import "github.com/flitsinc/go-jsonpb/schema"

// Kind identifies which well-known container a message descriptor is.
type Kind int

const (
	KindNone Kind = iota
	KindDoubleValue
	KindFloatValue
	KindInt64Value
	KindUInt64Value
	KindInt32Value
	KindUInt32Value
	KindBoolValue
	KindStringValue
	KindBytesValue
	KindStruct
	KindValue
	KindListValue
	KindDuration
	KindTimestamp
)

// IsWrapper reports whether k is one of the nine google.protobuf.*Value
// scalar wrapper types, each of which has exactly one field named "value".
func (k Kind) IsWrapper() bool {
	switch k {
	case KindDoubleValue, KindFloatValue, KindInt64Value, KindUInt64Value,
		KindInt32Value, KindUInt32Value, KindBoolValue, KindStringValue, KindBytesValue:
		return true
	default:
		return false
	}
}

var byFullName = map[string]Kind{
	"google.protobuf.DoubleValue": KindDoubleValue,
	"google.protobuf.FloatValue":  KindFloatValue,
	"google.protobuf.Int64Value":  KindInt64Value,
	"google.protobuf.UInt64Value": KindUInt64Value,
	"google.protobuf.Int32Value":  KindInt32Value,
	"google.protobuf.UInt32Value": KindUInt32Value,
	"google.protobuf.BoolValue":   KindBoolValue,
	"google.protobuf.StringValue": KindStringValue,
	"google.protobuf.BytesValue":  KindBytesValue,
	"google.protobuf.Struct":      KindStruct,
	"google.protobuf.Value":       KindValue,
	"google.protobuf.ListValue":   KindListValue,
	"google.protobuf.Duration":    KindDuration,
	"google.protobuf.Timestamp":   KindTimestamp,
}

// ByFullName resolves a message's fully qualified protobuf name to its
// well-known Kind, or (KindNone, false) if it's an ordinary message.
func ByFullName(fullName string) (Kind, bool) {
	k, ok := byFullName[fullName]
	return k, ok
}

// ByDescriptor is a convenience wrapper over ByFullName for a
// schema.MessageDescriptor.
func ByDescriptor(m schema.MessageDescriptor) (Kind, bool) {
	if m == nil {
		return KindNone, false
	}
	return ByFullName(m.FullName())
}

// WrapperValueFieldNumber is the field number every *Value wrapper message
// uses for its sole scalar field, per google/protobuf/wrappers.proto.
const WrapperValueFieldNumber = 1
