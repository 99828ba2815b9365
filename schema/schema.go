// Package schema defines the read-only reflection capability that jsonpb
// consumes to map JSON tokens onto protobuf fields. Nothing in this package
// implements a real protobuf descriptor: these are the interfaces a caller's
// own reflection layer (generated code, protoreflect, whatever) must satisfy.
package schema

// Kind identifies the wire-level shape of a field's value, independent of
// its Go or protobuf type name.
type Kind int

const (
	KindInvalid Kind = iota
	KindBool
	KindInt32
	KindInt64
	KindUint32
	KindUint64
	KindFloat
	KindDouble
	KindString
	KindBytes
	KindEnum
	KindMessage
)

func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindInt32:
		return "int32"
	case KindInt64:
		return "int64"
	case KindUint32:
		return "uint32"
	case KindUint64:
		return "uint64"
	case KindFloat:
		return "float"
	case KindDouble:
		return "double"
	case KindString:
		return "string"
	case KindBytes:
		return "bytes"
	case KindEnum:
		return "enum"
	case KindMessage:
		return "message"
	default:
		return "invalid"
	}
}

// MessageDescriptor describes a protobuf message type. It is consumed
// read-only by jsonpb; callers supply an implementation backed by their own
// descriptor source.
type MessageDescriptor interface {
	// FullName returns the fully qualified protobuf message name, e.g.
	// "google.protobuf.Duration".
	FullName() string
	// Fields returns every field declared directly on this message, in
	// declaration order.
	Fields() []FieldDescriptor
	// FieldByNumber looks up a field by its protobuf field number.
	FieldByNumber(number int32) (FieldDescriptor, bool)
	// FieldByName looks up a field by its raw (non-JSON) protobuf name.
	FieldByName(name string) (FieldDescriptor, bool)
}

// FieldDescriptor describes a single field of a MessageDescriptor.
type FieldDescriptor interface {
	// Name is the field's raw proto name (snake_case by convention).
	Name() string
	// JSONName is the field's camelCase JSON name, as proto3 JSON mapping
	// requires; it may be equal to Name.
	JSONName() string
	// Number is the field's protobuf field number.
	Number() int32
	// Kind identifies the field's wire shape.
	Kind() Kind
	// IsMap reports whether this field is a protobuf map (represented on
	// the wire as a repeated synthetic MapEntry message).
	IsMap() bool
	// IsRepeated reports whether this field is `repeated` (and not a map).
	IsRepeated() bool
	// Message returns the submessage descriptor when Kind() == KindMessage.
	// It panics if called on a non-message field.
	Message() MessageDescriptor
	// Enum returns the enum descriptor when Kind() == KindEnum. It panics
	// if called on a non-enum field.
	Enum() EnumDescriptor
	// MapKey and MapValue describe a map field's synthetic key/value
	// fields. Both panic if IsMap() is false.
	MapKey() FieldDescriptor
	MapValue() FieldDescriptor
}

// EnumDescriptor describes a protobuf enum type.
type EnumDescriptor interface {
	// FullName returns the fully qualified protobuf enum name.
	FullName() string
	// NameToNumber resolves an enum value's JSON name to its integer value.
	NameToNumber(name string) (int32, bool)
}

// IsWellKnownContainer reports whether a message descriptor is one of the
// well-known types jsonpb dispatches specially (the nine *Value wrappers,
// Struct, Value, ListValue, Duration, Timestamp). The set is a copy of the
// names in wellknown.ByFullName's table, kept here to avoid an import cycle;
// see wellknown.ByFullName for the authoritative table.
func IsWellKnownContainer(fullName string) bool {
	_, ok := wellKnownNames[fullName]
	return ok
}

var wellKnownNames = map[string]struct{}{
	"google.protobuf.DoubleValue": {},
	"google.protobuf.FloatValue":  {},
	"google.protobuf.Int64Value":  {},
	"google.protobuf.UInt64Value": {},
	"google.protobuf.Int32Value":  {},
	"google.protobuf.UInt32Value": {},
	"google.protobuf.BoolValue":   {},
	"google.protobuf.StringValue": {},
	"google.protobuf.BytesValue":  {},
	"google.protobuf.Struct":      {},
	"google.protobuf.Value":       {},
	"google.protobuf.ListValue":   {},
	"google.protobuf.Duration":    {},
	"google.protobuf.Timestamp":   {},
}
