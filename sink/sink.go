// Package sink defines the downstream handler interface jsonpb drives as it
// parses. Nothing in this package implements Handler: callers supply their
// own, typically backed by a real protobuf message builder.
package sink

import "github.com/flitsinc/go-jsonpb/schema"

// Kind tells a Handler what shape of scope or value is starting or ending,
// independent of which field it is.
type Kind int

const (
	KindMessage Kind = iota
	KindSubMessage
	KindSequence
	KindStringValue
	// KindScalar selects a plain (non-string) scalar field for a Put*
	// call: bool, integer, float, or enum.
	KindScalar
)

// Selector identifies exactly which field (or the top-level message, for
// root-level calls) a Handler callback concerns. Field is nil for StartMsg
// and EndMsg.
type Selector struct {
	Kind  Kind
	Field schema.FieldDescriptor
}

// Handler receives a strictly document-ordered sequence of typed field
// events as a Parser recognizes a JSON document against a schema.Method.
// Implementations are exclusively borrowed for the duration of one parse;
// see jsonpb.Parser.
type Handler interface {
	// StartMsg begins the root message.
	StartMsg()
	// EndMsg ends the root message. status is the first error encountered
	// during the parse, or nil on success.
	EndMsg(status error)

	// StartSubMsg begins a submessage field's value and returns an opaque
	// cursor the Handler can use to track where it is; the cursor is
	// passed back unchanged to the matching EndSubMsg.
	StartSubMsg(sel Selector) (cursor any)
	EndSubMsg(sel Selector, cursor any)

	// StartSeq begins a repeated or map field's sequence of elements.
	StartSeq(sel Selector) (cursor any)
	EndSeq(sel Selector, cursor any)

	// StartStr begins a string field's value. sizeHint is a best-effort
	// estimate of the total byte length, or 0 if unknown.
	StartStr(sel Selector, sizeHint int) (cursor any)
	// PutString delivers the next chunk of a string field's bytes. It may
	// be called zero or more times between StartStr and EndStr.
	PutString(sel Selector, b []byte, cursor any)
	EndStr(sel Selector, cursor any)

	PutBool(sel Selector, v bool)
	PutInt32(sel Selector, v int32)
	PutInt64(sel Selector, v int64)
	PutUint32(sel Selector, v uint32)
	PutUint64(sel Selector, v uint64)
	PutFloat32(sel Selector, v float32)
	PutFloat64(sel Selector, v float64)
}
