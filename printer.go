package main

import (
	"fmt"

	"github.com/flitsinc/go-jsonpb/sink"
)

// printer is a sink.Handler that prints one indented line per event, for
// visually confirming what a document parses into. A real integration would
// instead build a protobuf message (or its own in-memory tree) from these
// calls; see sink.Handler's doc comment.
type printer struct {
	depth int
}

func newPrinter() *printer { return &printer{} }

func (p *printer) line(format string, args ...any) {
	for i := 0; i < p.depth; i++ {
		fmt.Print("  ")
	}
	fmt.Printf(format+"\n", args...)
}

func fieldLabel(sel sink.Selector) string {
	if sel.Field == nil {
		return "<root>"
	}
	return sel.Field.JSONName()
}

func (p *printer) StartMsg() {
	p.line("message {")
	p.depth++
}

func (p *printer) EndMsg(status error) {
	p.depth--
	if status != nil {
		p.line("} // error: %v", status)
		return
	}
	p.line("}")
}

func (p *printer) StartSubMsg(sel sink.Selector) any {
	p.line("%s: message {", fieldLabel(sel))
	p.depth++
	return nil
}

func (p *printer) EndSubMsg(sel sink.Selector, cursor any) {
	p.depth--
	p.line("}")
}

func (p *printer) StartSeq(sel sink.Selector) any {
	p.line("%s: [", fieldLabel(sel))
	p.depth++
	return nil
}

func (p *printer) EndSeq(sel sink.Selector, cursor any) {
	p.depth--
	p.line("]")
}

func (p *printer) StartStr(sel sink.Selector, sizeHint int) any { return nil }

func (p *printer) PutString(sel sink.Selector, b []byte, cursor any) {
	p.line("%s: %q", fieldLabel(sel), b)
}

func (p *printer) EndStr(sel sink.Selector, cursor any) {}

func (p *printer) PutBool(sel sink.Selector, v bool)       { p.line("%s: %v", fieldLabel(sel), v) }
func (p *printer) PutInt32(sel sink.Selector, v int32)     { p.line("%s: %d", fieldLabel(sel), v) }
func (p *printer) PutInt64(sel sink.Selector, v int64)     { p.line("%s: %d", fieldLabel(sel), v) }
func (p *printer) PutUint32(sel sink.Selector, v uint32)   { p.line("%s: %d", fieldLabel(sel), v) }
func (p *printer) PutUint64(sel sink.Selector, v uint64)   { p.line("%s: %d", fieldLabel(sel), v) }
func (p *printer) PutFloat32(sel sink.Selector, v float32) { p.line("%s: %v", fieldLabel(sel), v) }
func (p *printer) PutFloat64(sel sink.Selector, v float64) { p.line("%s: %v", fieldLabel(sel), v) }

var _ sink.Handler = (*printer)(nil)
