package jsonpb_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flitsinc/go-jsonpb/jsonpb"
	"github.com/flitsinc/go-jsonpb/schema"
	"github.com/flitsinc/go-jsonpb/schema/testschema"
	"github.com/flitsinc/go-jsonpb/sink/sinktest"
)

func newTestParser(t *testing.T, method *schema.Method, rec *sinktest.Recorder) *jsonpb.Parser {
	t.Helper()
	return jsonpb.NewParser(method, rec)
}

func int32ValueMessage() *testschema.Message {
	return &testschema.Message{
		MFullName: "google.protobuf.Int32Value",
		MFields: []*testschema.Field{
			{FName: "value", FJSONName: "value", FNumber: 1, FKind: schema.KindInt32},
		},
	}
}

func durationMessage() *testschema.Message {
	return &testschema.Message{
		MFullName: "google.protobuf.Duration",
		MFields: []*testschema.Field{
			{FName: "seconds", FJSONName: "seconds", FNumber: 1, FKind: schema.KindInt64},
			{FName: "nanos", FJSONName: "nanos", FNumber: 2, FKind: schema.KindInt32},
		},
	}
}

func timestampMessage() *testschema.Message {
	return &testschema.Message{
		MFullName: "google.protobuf.Timestamp",
		MFields: []*testschema.Field{
			{FName: "seconds", FJSONName: "seconds", FNumber: 1, FKind: schema.KindInt64},
			{FName: "nanos", FJSONName: "nanos", FNumber: 2, FKind: schema.KindInt32},
		},
	}
}

// structValueListTypes builds google.protobuf.Struct, Value and ListValue as
// one set of messages that refer to each other: Struct's map values and
// ListValue's elements are Value, and Value's struct_value/list_value point
// back at the same Struct and ListValue.
func structValueListTypes() (structMsg, valueMsg, listMsg *testschema.Message) {
	valueMsg = &testschema.Message{MFullName: "google.protobuf.Value"}
	fieldsValue := &testschema.Field{FKind: schema.KindMessage, FMessage: valueMsg}
	structMsg = &testschema.Message{
		MFullName: "google.protobuf.Struct",
		MFields:   []*testschema.Field{testschema.NewMapEntryField("fields", 1, schema.KindString, fieldsValue)},
	}
	listMsg = &testschema.Message{
		MFullName: "google.protobuf.ListValue",
		MFields: []*testschema.Field{
			{FName: "values", FJSONName: "values", FNumber: 1, FKind: schema.KindMessage, FMessage: valueMsg, FRepeated: true},
		},
	}
	valueMsg.MFields = []*testschema.Field{
		{FName: "null_value", FJSONName: "nullValue", FNumber: 1, FKind: schema.KindEnum, FEnum: &testschema.Enum{EFullName: "google.protobuf.NullValue", EValues: map[string]int32{"NULL_VALUE": 0}}},
		{FName: "number_value", FJSONName: "numberValue", FNumber: 2, FKind: schema.KindDouble},
		{FName: "string_value", FJSONName: "stringValue", FNumber: 3, FKind: schema.KindString},
		{FName: "bool_value", FJSONName: "boolValue", FNumber: 4, FKind: schema.KindBool},
		{FName: "struct_value", FJSONName: "structValue", FNumber: 5, FKind: schema.KindMessage, FMessage: structMsg},
		{FName: "list_value", FJSONName: "listValue", FNumber: 6, FKind: schema.KindMessage, FMessage: listMsg},
	}
	return structMsg, valueMsg, listMsg
}

func structMessage() *testschema.Message {
	m, _, _ := structValueListTypes()
	return m
}

func valueMessage() *testschema.Message {
	_, m, _ := structValueListTypes()
	return m
}

func listValueMessage() *testschema.Message {
	_, _, m := structValueListTypes()
	return m
}

func eventStringsFor(rec *sinktest.Recorder) []string {
	return eventStrings(rec.Events)
}

func TestParser_WrapperFieldCollapsesToScalar(t *testing.T) {
	outer := &testschema.Message{
		MFullName: "test.WithWrapper",
		MFields: []*testschema.Field{
			{FName: "maybe_count", FJSONName: "maybeCount", FNumber: 1, FKind: schema.KindMessage, FMessage: int32ValueMessage()},
		},
	}
	method, err := schema.NewMethod(outer)
	require.NoError(t, err)
	rec := sinktest.New()
	p := newTestParser(t, method, rec)
	_, err = p.Write([]byte(`{"maybeCount":7}`))
	require.NoError(t, err)
	require.NoError(t, p.Close())
	evs := eventStringsFor(rec)
	assert.Contains(t, evs, "StartSubMsg(maybeCount)")
	assert.Contains(t, evs, "PutInt32(value, 7)")
	assert.Contains(t, evs, "EndSubMsg(maybeCount)")
}

func TestParser_DurationField(t *testing.T) {
	outer := &testschema.Message{
		MFullName: "test.WithDuration",
		MFields: []*testschema.Field{
			{FName: "timeout", FJSONName: "timeout", FNumber: 1, FKind: schema.KindMessage, FMessage: durationMessage()},
		},
	}
	method, err := schema.NewMethod(outer)
	require.NoError(t, err)
	rec := sinktest.New()
	p := newTestParser(t, method, rec)
	_, err = p.Write([]byte(`{"timeout":"1.500s"}`))
	require.NoError(t, err)
	require.NoError(t, p.Close())
	evs := eventStringsFor(rec)
	assert.Contains(t, evs, "PutInt64(seconds, 1)")
	assert.Contains(t, evs, "PutInt32(nanos, 500000000)")
}

func TestParser_TimestampField(t *testing.T) {
	outer := &testschema.Message{
		MFullName: "test.WithTimestamp",
		MFields: []*testschema.Field{
			{FName: "created", FJSONName: "created", FNumber: 1, FKind: schema.KindMessage, FMessage: timestampMessage()},
		},
	}
	method, err := schema.NewMethod(outer)
	require.NoError(t, err)
	rec := sinktest.New()
	p := newTestParser(t, method, rec)
	_, err = p.Write([]byte(`{"created":"1970-01-01T00:00:01Z"}`))
	require.NoError(t, err)
	require.NoError(t, p.Close())
	evs := eventStringsFor(rec)
	assert.Contains(t, evs, "PutInt64(seconds, 1)")
	assert.Contains(t, evs, "PutInt32(nanos, 0)")
}

func TestParser_ValueUnionScalarAndNull(t *testing.T) {
	outer := &testschema.Message{
		MFullName: "test.WithValue",
		MFields: []*testschema.Field{
			{FName: "v", FJSONName: "v", FNumber: 1, FKind: schema.KindMessage, FMessage: valueMessage()},
		},
	}
	method, err := schema.NewMethod(outer)
	require.NoError(t, err)

	rec := sinktest.New()
	p := newTestParser(t, method, rec)
	_, err = p.Write([]byte(`{"v":42.5}`))
	require.NoError(t, err)
	require.NoError(t, p.Close())
	assert.Contains(t, eventStringsFor(rec), "PutFloat64(numberValue, 42.5)")

	rec2 := sinktest.New()
	p2 := newTestParser(t, method, rec2)
	_, err = p2.Write([]byte(`{"v":null}`))
	require.NoError(t, err)
	require.NoError(t, p2.Close())
	assert.Contains(t, eventStringsFor(rec2), "PutInt32(nullValue, 0)")
}

func TestParser_RootWrapperCollapsesToScalar(t *testing.T) {
	method, err := schema.NewMethod(int32ValueMessage())
	require.NoError(t, err)
	rec := sinktest.New()
	p := newTestParser(t, method, rec)
	_, err = p.Write([]byte(`42`))
	require.NoError(t, err)
	require.NoError(t, p.Close())
	evs := eventStringsFor(rec)
	assert.Contains(t, evs, "StartMsg()")
	assert.Contains(t, evs, "PutInt32(value, 42)")
	assert.Contains(t, evs, "EndMsg(ok)")
	assert.NotContains(t, evs, "StartSubMsg(<root>)")
}

func TestParser_RootDuration(t *testing.T) {
	method, err := schema.NewMethod(durationMessage())
	require.NoError(t, err)
	rec := sinktest.New()
	p := newTestParser(t, method, rec)
	_, err = p.Write([]byte(`"1.500s"`))
	require.NoError(t, err)
	require.NoError(t, p.Close())
	evs := eventStringsFor(rec)
	assert.Contains(t, evs, "PutInt64(seconds, 1)")
	assert.Contains(t, evs, "PutInt32(nanos, 500000000)")
}

func TestParser_RootListValue(t *testing.T) {
	method, err := schema.NewMethod(listValueMessage())
	require.NoError(t, err)
	rec := sinktest.New()
	p := newTestParser(t, method, rec)
	_, err = p.Write([]byte(`[1,"two",true]`))
	require.NoError(t, err)
	require.NoError(t, p.Close())
	evs := eventStringsFor(rec)
	assert.Contains(t, evs, "StartMsg()")
	assert.Contains(t, evs, "StartSeq(values)")
	assert.Contains(t, evs, "PutFloat64(numberValue, 1)")
	assert.Contains(t, evs, `PutString(stringValue, "two")`)
	assert.Contains(t, evs, "PutBool(boolValue, true)")
	assert.Contains(t, evs, "EndSeq(values)")
	assert.Contains(t, evs, "EndMsg(ok)")
}

func TestParser_RootStruct(t *testing.T) {
	method, err := schema.NewMethod(structMessage())
	require.NoError(t, err)
	rec := sinktest.New()
	p := newTestParser(t, method, rec)
	_, err = p.Write([]byte(`{"a":1}`))
	require.NoError(t, err)
	require.NoError(t, p.Close())
	evs := eventStringsFor(rec)
	assert.Contains(t, evs, "StartMsg()")
	assert.Contains(t, evs, "StartSeq(fields)")
	assert.Contains(t, evs, "PutFloat64(numberValue, 1)")
	assert.Contains(t, evs, "EndMsg(ok)")
}

func TestParser_RootValueUnion(t *testing.T) {
	method, err := schema.NewMethod(valueMessage())
	require.NoError(t, err)
	rec := sinktest.New()
	p := newTestParser(t, method, rec)
	_, err = p.Write([]byte(`{"a":[1,"two",true]}`))
	require.NoError(t, err)
	require.NoError(t, p.Close())
	evs := eventStringsFor(rec)
	assert.Contains(t, evs, "StartMsg()")
	assert.Contains(t, evs, "StartSubMsg(structValue)")
	assert.Contains(t, evs, "StartSeq(fields)")
	assert.Contains(t, evs, "StartSeq(values)")
	assert.Contains(t, evs, "PutFloat64(numberValue, 1)")
	assert.Contains(t, evs, "EndMsg(ok)")
}

func TestParser_ValueUnionNestedStructAndList(t *testing.T) {
	outer := &testschema.Message{
		MFullName: "test.WithValue2",
		MFields: []*testschema.Field{
			{FName: "v", FJSONName: "v", FNumber: 1, FKind: schema.KindMessage, FMessage: valueMessage()},
		},
	}
	method, err := schema.NewMethod(outer)
	require.NoError(t, err)
	rec := sinktest.New()
	p := newTestParser(t, method, rec)
	_, err = p.Write([]byte(`{"v":{"a":[1,"two",true]}}`))
	require.NoError(t, err)
	require.NoError(t, p.Close())
	evs := eventStringsFor(rec)
	assert.Contains(t, evs, "StartSubMsg(structValue)")
	assert.Contains(t, evs, "StartSeq(fields)")
	assert.Contains(t, evs, "StartSeq(values)")
	assert.Contains(t, evs, "PutFloat64(numberValue, 1)")
	assert.Contains(t, evs, `PutString(stringValue, "two")`)
	assert.Contains(t, evs, "PutBool(boolValue, true)")
}
