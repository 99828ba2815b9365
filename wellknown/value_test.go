package wellknown_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/flitsinc/go-jsonpb/wellknown"
)

func TestShapeForToken_Null(t *testing.T) {
	assert.Equal(t, wellknown.ValueShapeNull, wellknown.ShapeForToken(false, false, false, false, true))
}

func TestShapeForToken_Object(t *testing.T) {
	assert.Equal(t, wellknown.ValueShapeStruct, wellknown.ShapeForToken(true, false, false, false, false))
}

func TestShapeForToken_Array(t *testing.T) {
	assert.Equal(t, wellknown.ValueShapeList, wellknown.ShapeForToken(false, true, false, false, false))
}

func TestShapeForToken_String(t *testing.T) {
	assert.Equal(t, wellknown.ValueShapeString, wellknown.ShapeForToken(false, false, true, false, false))
}

func TestShapeForToken_Bool(t *testing.T) {
	assert.Equal(t, wellknown.ValueShapeBool, wellknown.ShapeForToken(false, false, false, true, false))
}

func TestShapeForToken_Number(t *testing.T) {
	assert.Equal(t, wellknown.ValueShapeNumber, wellknown.ShapeForToken(false, false, false, false, false))
}

func TestFieldNumbers(t *testing.T) {
	assert.EqualValues(t, 1, wellknown.ValueNullValueFieldNumber)
	assert.EqualValues(t, 2, wellknown.ValueNumberValueFieldNumber)
	assert.EqualValues(t, 3, wellknown.ValueStringValueFieldNumber)
	assert.EqualValues(t, 4, wellknown.ValueBoolValueFieldNumber)
	assert.EqualValues(t, 5, wellknown.ValueStructValueFieldNumber)
	assert.EqualValues(t, 6, wellknown.ValueListValueFieldNumber)
	assert.EqualValues(t, 1, wellknown.StructFieldsFieldNumber)
	assert.EqualValues(t, 1, wellknown.ListValueValuesFieldNumber)
	assert.EqualValues(t, 0, wellknown.NullValue)
}
