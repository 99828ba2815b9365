package main

import "github.com/flitsinc/go-jsonpb/schema"

// demoField and demoMessage are a minimal, hand-written schema.Descriptor
// implementation for the CLI demo, in the same spirit as schema/testschema:
// a real caller would generate these from a .proto file or a
// protodesc/protoreflect source instead.
type demoField struct {
	name, jsonName string
	number         int32
	kind           schema.Kind
	isMap          bool
	isRepeated     bool
	message        *demoMessage
	enum           *demoEnum
	mapKey         *demoField
	mapValue       *demoField
}

func (f *demoField) Name() string                   { return f.name }
func (f *demoField) JSONName() string                { return f.jsonName }
func (f *demoField) Number() int32                   { return f.number }
func (f *demoField) Kind() schema.Kind               { return f.kind }
func (f *demoField) IsMap() bool                     { return f.isMap }
func (f *demoField) IsRepeated() bool                { return f.isRepeated }
func (f *demoField) Message() schema.MessageDescriptor { return f.message }
func (f *demoField) Enum() schema.EnumDescriptor     { return f.enum }
func (f *demoField) MapKey() schema.FieldDescriptor  { return f.mapKey }
func (f *demoField) MapValue() schema.FieldDescriptor { return f.mapValue }

type demoMessage struct {
	fullName string
	fields   []*demoField
}

func (m *demoMessage) FullName() string { return m.fullName }

func (m *demoMessage) Fields() []schema.FieldDescriptor {
	out := make([]schema.FieldDescriptor, len(m.fields))
	for i, f := range m.fields {
		out[i] = f
	}
	return out
}

func (m *demoMessage) FieldByNumber(number int32) (schema.FieldDescriptor, bool) {
	for _, f := range m.fields {
		if f.number == number {
			return f, true
		}
	}
	return nil, false
}

func (m *demoMessage) FieldByName(name string) (schema.FieldDescriptor, bool) {
	for _, f := range m.fields {
		if f.name == name {
			return f, true
		}
	}
	return nil, false
}

type demoEnum struct {
	fullName string
	values   map[string]int32
}

func (e *demoEnum) FullName() string { return e.fullName }
func (e *demoEnum) NameToNumber(name string) (int32, bool) {
	n, ok := e.values[name]
	return n, ok
}

// newDemoMessage models roughly: message Person { string name; int32 age;
// repeated string tags; map<string, int32> scores; Address address;
// google.protobuf.Timestamp updated_at; }, enough to exercise scalars,
// repeated fields, maps, nested messages, and a well-known type through one
// CLI invocation.
func newDemoMessage() *demoMessage {
	address := &demoMessage{
		fullName: "demo.Address",
		fields: []*demoField{
			{name: "street", jsonName: "street", number: 1, kind: schema.KindString},
			{name: "city", jsonName: "city", number: 2, kind: schema.KindString},
		},
	}
	timestamp := &demoMessage{
		fullName: "google.protobuf.Timestamp",
		fields: []*demoField{
			{name: "seconds", jsonName: "seconds", number: 1, kind: schema.KindInt64},
			{name: "nanos", jsonName: "nanos", number: 2, kind: schema.KindInt32},
		},
	}
	scoreValue := &demoField{name: "value", number: 2, kind: schema.KindInt32}
	scores := &demoField{
		name: "scores", jsonName: "scores", number: 4,
		kind: schema.KindMessage, isMap: true,
		message:  &demoMessage{fullName: "demo.Person.ScoresEntry", fields: []*demoField{{name: "key", number: 1, kind: schema.KindString}, scoreValue}},
		mapKey:   &demoField{name: "key", number: 1, kind: schema.KindString},
		mapValue: scoreValue,
	}
	return &demoMessage{
		fullName: "demo.Person",
		fields: []*demoField{
			{name: "name", jsonName: "name", number: 1, kind: schema.KindString},
			{name: "age", jsonName: "age", number: 2, kind: schema.KindInt32},
			{name: "tags", jsonName: "tags", number: 3, kind: schema.KindString, isRepeated: true},
			scores,
			{name: "address", jsonName: "address", number: 5, kind: schema.KindMessage, message: address},
			{name: "updated_at", jsonName: "updatedAt", number: 6, kind: schema.KindMessage, message: timestamp},
		},
	}
}
