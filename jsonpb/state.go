package jsonpb

// tokState is the driver's flat token-recognition state: what kind of byte
// run it is currently scanning, independent of which frame/field that run
// belongs to (the frame stack carries that). Resuming across a Write
// boundary is just a matter of not resetting tokState between calls.
type tokState int

const (
	// tsExpectValue: about to recognize one JSON value (object, array,
	// string, number, true/false/null) for d.curField.
	tsExpectValue tokState = iota
	// tsExpectMemberNameOrClose: inside an object, just opened or just saw
	// a comma; expecting either a closing '}' (only valid right after '{')
	// or a quoted member name.
	tsExpectMemberNameOrClose
	// tsExpectColon: just read a member name or map key; expecting ':'.
	tsExpectColon
	tsExpectCommaOrObjectClose
	tsExpectCommaOrArrayClose
	// tsExpectValueOrArrayClose: just saw '[', expecting either the first
	// element's value or an immediate ']'.
	tsExpectValueOrArrayClose
	tsInString
	tsInStringEscape
	tsInStringUnicode
	tsInNumber
	tsInLiteral
	tsSkipValue
	tsDone
)

func (s tokState) String() string {
	switch s {
	case tsExpectValue:
		return "expectValue"
	case tsExpectMemberNameOrClose:
		return "expectMemberNameOrClose"
	case tsExpectColon:
		return "expectColon"
	case tsExpectCommaOrObjectClose:
		return "expectCommaOrObjectClose"
	case tsExpectCommaOrArrayClose:
		return "expectCommaOrArrayClose"
	case tsExpectValueOrArrayClose:
		return "expectValueOrArrayClose"
	case tsInString:
		return "inString"
	case tsInStringEscape:
		return "inStringEscape"
	case tsInStringUnicode:
		return "inStringUnicode"
	case tsInNumber:
		return "inNumber"
	case tsInLiteral:
		return "inLiteral"
	case tsSkipValue:
		return "skipValue"
	case tsDone:
		return "done"
	default:
		return "invalid"
	}
}

// scopeKind identifies what a frame on the parse stack represents.
type scopeKind int

const (
	// scopeMessage is an ordinary object bound to a schema.MessageDescriptor.
	scopeMessage scopeKind = iota
	// scopeArray is a repeated field's '[' ... ']' sequence, or (when
	// wrapField is set) a synthesized google.protobuf.ListValue's values.
	scopeArray
	// scopeMap is a map field's '{' ... '}' sequence of synthetic entries,
	// or (when wrapField is set) a synthesized google.protobuf.Struct's
	// fields.
	scopeMap
	// scopeOneShot brackets exactly one nested value with a single
	// StartSubMsg/EndSubMsg pair, popping itself the instant that one
	// value finishes: used for map-entry values, *Value scalar wrappers,
	// and google.protobuf.Value's resolved oneof member.
	scopeOneShot
)

func (k scopeKind) String() string {
	switch k {
	case scopeMessage:
		return "message"
	case scopeArray:
		return "array"
	case scopeMap:
		return "map"
	case scopeOneShot:
		return "oneShot"
	default:
		return "invalid"
	}
}

// stringPurpose tags what the driver should do with a quoted string's fully
// decoded text once tsInString/... finishes.
type stringPurpose int

const (
	purposeMemberName stringPurpose = iota
	purposeMapKey
	purposeStringField
	purposeBytesField
	purposeQuotedNumber
	purposeQuotedBool
	purposeEnumName
	purposeDurationLiteral
	purposeTimestampLiteral
)
