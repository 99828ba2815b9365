package jsonpb

import "fmt"

// ErrNestingTooDeep is returned when a document's object/array nesting
// exceeds a Parser's DepthLimit.
var ErrNestingTooDeep = fmt.Errorf("jsonpb: nesting too deep")

// ErrUnknownEnumValue is returned when an enum field's JSON string value
// doesn't name a known enum value, whatever IgnoreUnknown is set to. A
// numeric enum value is passed through without checking it against the
// enum's values.
type ErrUnknownEnumValue struct {
	Enum  string
	Value string
}

func (e *ErrUnknownEnumValue) Error() string {
	return fmt.Sprintf("jsonpb: unknown value %q for enum %s", e.Value, e.Enum)
}

// ErrUnknownField is returned for an object member name that matches no
// field of the enclosing message, when IgnoreUnknown is false.
type ErrUnknownField struct {
	Message string
	Name    string
}

func (e *ErrUnknownField) Error() string {
	return fmt.Sprintf("jsonpb: unknown field %q on message %s", e.Name, e.Message)
}

// ErrWrongShape is returned when a JSON token's shape (string, object,
// array, scalar) doesn't match what the target field's kind requires, e.g.
// a JSON string where a message was expected.
type ErrWrongShape struct {
	Field  string
	Wanted string
	Got    string
}

func (e *ErrWrongShape) Error() string {
	return fmt.Sprintf("jsonpb: field %s expects %s, got %s", e.Field, e.Wanted, e.Got)
}

// ErrStructural reports a malformed token: an unterminated string or
// escape, an unexpected character, or trailing garbage after the document
// closes.
type ErrStructural struct {
	Offset int
	Reason string
}

func (e *ErrStructural) Error() string {
	return fmt.Sprintf("jsonpb: parse error at offset %d: %s", e.Offset, e.Reason)
}

// ErrUnknownMapKeyKind is returned when a map field's declared key kind
// isn't one of the kinds protobuf permits for map keys.
type ErrUnknownMapKeyKind struct {
	Field string
	Kind  string
}

func (e *ErrUnknownMapKeyKind) Error() string {
	return fmt.Sprintf("jsonpb: field %s has unsupported map key kind %s", e.Field, e.Kind)
}
