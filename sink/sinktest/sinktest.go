// Package sinktest provides a recording sink.Handler for tests: no mocking
// framework, just a small struct that remembers what was called.
package sinktest

import (
	"fmt"

	"github.com/flitsinc/go-jsonpb/sink"
)

// Event is one recorded Handler call, rendered as a short human-readable
// line so event-log tests can assert with plain string comparisons.
type Event string

// Recorder is a sink.Handler that appends a line to Events for every call
// it receives, and lets a test retrieve accumulated string values per
// string-field cursor.
type Recorder struct {
	Events []Event

	strings map[any]*[]byte
	nextID  int
}

func New() *Recorder {
	return &Recorder{strings: make(map[any]*[]byte)}
}

func fieldName(sel sink.Selector) string {
	if sel.Field == nil {
		return "<root>"
	}
	return sel.Field.JSONName()
}

func (r *Recorder) StartMsg() {
	r.Events = append(r.Events, "StartMsg()")
}

func (r *Recorder) EndMsg(status error) {
	if status == nil {
		r.Events = append(r.Events, "EndMsg(ok)")
	} else {
		r.Events = append(r.Events, Event(fmt.Sprintf("EndMsg(error: %v)", status)))
	}
}

func (r *Recorder) StartSubMsg(sel sink.Selector) any {
	r.Events = append(r.Events, Event(fmt.Sprintf("StartSubMsg(%s)", fieldName(sel))))
	r.nextID++
	return r.nextID
}

func (r *Recorder) EndSubMsg(sel sink.Selector, cursor any) {
	r.Events = append(r.Events, Event(fmt.Sprintf("EndSubMsg(%s)", fieldName(sel))))
}

func (r *Recorder) StartSeq(sel sink.Selector) any {
	r.Events = append(r.Events, Event(fmt.Sprintf("StartSeq(%s)", fieldName(sel))))
	r.nextID++
	return r.nextID
}

func (r *Recorder) EndSeq(sel sink.Selector, cursor any) {
	r.Events = append(r.Events, Event(fmt.Sprintf("EndSeq(%s)", fieldName(sel))))
}

func (r *Recorder) StartStr(sel sink.Selector, sizeHint int) any {
	r.Events = append(r.Events, Event(fmt.Sprintf("StartStr(%s)", fieldName(sel))))
	buf := make([]byte, 0, sizeHint)
	r.nextID++
	id := r.nextID
	r.strings[id] = &buf
	return id
}

func (r *Recorder) PutString(sel sink.Selector, b []byte, cursor any) {
	r.Events = append(r.Events, Event(fmt.Sprintf("PutString(%s, %q)", fieldName(sel), b)))
	if buf, ok := r.strings[cursor]; ok {
		*buf = append(*buf, b...)
	}
}

func (r *Recorder) EndStr(sel sink.Selector, cursor any) {
	r.Events = append(r.Events, Event(fmt.Sprintf("EndStr(%s)", fieldName(sel))))
}

// String returns the fully accumulated string value for a StartStr cursor.
func (r *Recorder) String(cursor any) string {
	if buf, ok := r.strings[cursor]; ok {
		return string(*buf)
	}
	return ""
}

func (r *Recorder) PutBool(sel sink.Selector, v bool) {
	r.Events = append(r.Events, Event(fmt.Sprintf("PutBool(%s, %v)", fieldName(sel), v)))
}

func (r *Recorder) PutInt32(sel sink.Selector, v int32) {
	r.Events = append(r.Events, Event(fmt.Sprintf("PutInt32(%s, %d)", fieldName(sel), v)))
}

func (r *Recorder) PutInt64(sel sink.Selector, v int64) {
	r.Events = append(r.Events, Event(fmt.Sprintf("PutInt64(%s, %d)", fieldName(sel), v)))
}

func (r *Recorder) PutUint32(sel sink.Selector, v uint32) {
	r.Events = append(r.Events, Event(fmt.Sprintf("PutUint32(%s, %d)", fieldName(sel), v)))
}

func (r *Recorder) PutUint64(sel sink.Selector, v uint64) {
	r.Events = append(r.Events, Event(fmt.Sprintf("PutUint64(%s, %d)", fieldName(sel), v)))
}

func (r *Recorder) PutFloat32(sel sink.Selector, v float32) {
	r.Events = append(r.Events, Event(fmt.Sprintf("PutFloat32(%s, %v)", fieldName(sel), v)))
}

func (r *Recorder) PutFloat64(sel sink.Selector, v float64) {
	r.Events = append(r.Events, Event(fmt.Sprintf("PutFloat64(%s, %v)", fieldName(sel), v)))
}

var _ sink.Handler = (*Recorder)(nil)
