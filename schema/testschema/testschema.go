// Package testschema provides a minimal, hand-rolled schema.MessageDescriptor
// implementation for tests across the module, in the same spirit as the
// teacher's tools/tool_test.go hand-rolled Params struct and runner{} fake
// rather than a generated mock.
package testschema

import "github.com/flitsinc/go-jsonpb/schema"

// Field is a ready-made schema.FieldDescriptor.
type Field struct {
	FName     string
	FJSONName string
	FNumber   int32
	FKind     schema.Kind
	FMap      bool
	FRepeated bool
	FMessage  *Message
	FEnum     *Enum
	FMapKey   *Field
	FMapValue *Field
}

func (f *Field) Name() string     { return f.FName }
func (f *Field) JSONName() string {
	if f.FJSONName != "" {
		return f.FJSONName
	}
	return f.FName
}
func (f *Field) Number() int32        { return f.FNumber }
func (f *Field) Kind() schema.Kind    { return f.FKind }
func (f *Field) IsMap() bool          { return f.FMap }
func (f *Field) IsRepeated() bool     { return f.FRepeated }
func (f *Field) Message() schema.MessageDescriptor {
	if f.FMessage == nil {
		panic("testschema: Message() called on non-message field " + f.FName)
	}
	return f.FMessage
}
func (f *Field) Enum() schema.EnumDescriptor {
	if f.FEnum == nil {
		panic("testschema: Enum() called on non-enum field " + f.FName)
	}
	return f.FEnum
}
func (f *Field) MapKey() schema.FieldDescriptor {
	if f.FMapKey == nil {
		panic("testschema: MapKey() called on non-map field " + f.FName)
	}
	return f.FMapKey
}
func (f *Field) MapValue() schema.FieldDescriptor {
	if f.FMapValue == nil {
		panic("testschema: MapValue() called on non-map field " + f.FName)
	}
	return f.FMapValue
}

// Message is a ready-made schema.MessageDescriptor.
type Message struct {
	MFullName string
	MFields   []*Field
}

func (m *Message) FullName() string { return m.MFullName }

func (m *Message) Fields() []schema.FieldDescriptor {
	out := make([]schema.FieldDescriptor, len(m.MFields))
	for i, f := range m.MFields {
		out[i] = f
	}
	return out
}

func (m *Message) FieldByNumber(number int32) (schema.FieldDescriptor, bool) {
	for _, f := range m.MFields {
		if f.FNumber == number {
			return f, true
		}
	}
	return nil, false
}

func (m *Message) FieldByName(name string) (schema.FieldDescriptor, bool) {
	for _, f := range m.MFields {
		if f.FName == name {
			return f, true
		}
	}
	return nil, false
}

// Enum is a ready-made schema.EnumDescriptor.
type Enum struct {
	EFullName string
	EValues   map[string]int32
}

func (e *Enum) FullName() string { return e.EFullName }

func (e *Enum) NameToNumber(name string) (int32, bool) {
	n, ok := e.EValues[name]
	return n, ok
}

// NewMapEntryField builds a map field (IsMap() == true) whose synthetic
// MapEntry message carries "key" (keyKind) and "value" (valueField).
func NewMapEntryField(name string, number int32, keyKind schema.Kind, valueField *Field) *Field {
	entry := &Message{
		MFullName: name + "Entry",
		MFields: []*Field{
			{FName: "key", FNumber: 1, FKind: keyKind},
			valueField,
		},
	}
	valueField.FName = "value"
	valueField.FNumber = 2
	return &Field{
		FName:     name,
		FNumber:   number,
		FKind:     schema.KindMessage,
		FMap:      true,
		FMessage:  entry,
		FMapKey:   entry.MFields[0],
		FMapValue: entry.MFields[1],
	}
}
