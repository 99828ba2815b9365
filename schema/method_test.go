package schema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flitsinc/go-jsonpb/schema"
	"github.com/flitsinc/go-jsonpb/schema/testschema"
)

func TestNewMethod_DiscoversReachableMessagesAndBuildsTables(t *testing.T) {
	child := &testschema.Message{
		MFullName: "test.Child",
		MFields: []*testschema.Field{
			{FName: "value", FJSONName: "value", FNumber: 1, FKind: schema.KindString},
		},
	}
	root := &testschema.Message{
		MFullName: "test.Root",
		MFields: []*testschema.Field{
			{FName: "user_name", FJSONName: "userName", FNumber: 1, FKind: schema.KindString},
			{FName: "child", FJSONName: "child", FNumber: 2, FKind: schema.KindMessage, FMessage: child},
		},
	}

	method, err := schema.NewMethod(root)
	require.NoError(t, err)

	rootTable, ok := method.NameTableFor(root)
	require.True(t, ok)
	f, ok := rootTable.Lookup("userName")
	require.True(t, ok)
	assert.Equal(t, "user_name", f.Name())
	// Raw proto name also resolves.
	f2, ok := rootTable.Lookup("user_name")
	require.True(t, ok)
	assert.Same(t, f, f2)

	childTable, ok := method.NameTableFor(child)
	require.True(t, ok)
	_, ok = childTable.Lookup("value")
	assert.True(t, ok)
}

func TestNewMethod_DiscoversMapValueMessages(t *testing.T) {
	entryValue := &testschema.Message{
		MFullName: "test.Entry",
		MFields: []*testschema.Field{
			{FName: "n", FJSONName: "n", FNumber: 1, FKind: schema.KindInt32},
		},
	}
	mapField := testschema.NewMapEntryField("m", 1, schema.KindString,
		&testschema.Field{FKind: schema.KindMessage, FMessage: entryValue})
	root := &testschema.Message{
		MFullName: "test.RootWithMap",
		MFields:   []*testschema.Field{mapField},
	}

	method, err := schema.NewMethod(root)
	require.NoError(t, err)

	_, ok := method.NameTableFor(entryValue)
	assert.True(t, ok, "map value message should have been discovered")
}

func TestNewMethod_NilRoot(t *testing.T) {
	_, err := schema.NewMethod(nil)
	assert.Error(t, err)
}
