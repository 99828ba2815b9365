package wellknown

// Value field numbers, per google/protobuf/struct.proto.
const (
	ValueNullValueFieldNumber   = 1
	ValueNumberValueFieldNumber = 2
	ValueStringValueFieldNumber = 3
	ValueBoolValueFieldNumber   = 4
	ValueStructValueFieldNumber = 5
	ValueListValueFieldNumber   = 6
)

// Struct and ListValue each have exactly one field.
const (
	StructFieldsFieldNumber    = 1
	ListValueValuesFieldNumber = 1
)

// NullValue is the single enum value of google.protobuf.NullValue.
const NullValue int32 = 0

// ValueShape identifies which of Value's six oneof alternatives a JSON
// token maps onto, so the driver can decide which synthetic field to open
// before it has fully parsed the token.
type ValueShape int

const (
	ValueShapeNull ValueShape = iota
	ValueShapeNumber
	ValueShapeString
	ValueShapeBool
	ValueShapeStruct
	ValueShapeList
)

// ShapeForToken maps a JSON token's leading byte classification (as the
// driver already computes for its own dispatch) onto the Value oneof
// alternative it should populate. isObject/isArray/isString/isBool/isNull
// are booleans rather than a token enum to avoid a dependency from
// wellknown back onto the driver's own token types.
func ShapeForToken(isObject, isArray, isString, isBool, isNull bool) ValueShape {
	switch {
	case isNull:
		return ValueShapeNull
	case isObject:
		return ValueShapeStruct
	case isArray:
		return ValueShapeList
	case isString:
		return ValueShapeString
	case isBool:
		return ValueShapeBool
	default:
		return ValueShapeNumber
	}
}
