// Package jsonpb streams a proto3 JSON document through a schema.Method and
// drives a sink.Handler with the field events it recognizes, without ever
// buffering the whole document: chunk boundaries may fall anywhere,
// including mid-string, mid-escape, or mid-number.
package jsonpb

import (
	"github.com/flitsinc/go-jsonpb/jsonpb/internal/trace"
	"github.com/flitsinc/go-jsonpb/schema"
	"github.com/flitsinc/go-jsonpb/sink"
)

// Parser recognizes one JSON document against a shared schema.Method and
// reports field events to a sink.Handler as it goes. A Parser is used once:
// construct it, feed it the whole document across as many Write calls as
// convenient, and Close it.
type Parser struct {
	// IgnoreUnknown, when true, silently discards object members that match
	// no field instead of failing the parse. Defaults to false.
	IgnoreUnknown bool

	// DepthLimit caps how many nested objects/arrays/maps a document may
	// open at once. Zero means defaultDepthLimit (64, the original library's
	// compile-time constant). Set a higher value for documents that
	// legitimately nest deeper than that.
	DepthLimit int

	method  *schema.Method
	handler sink.Handler

	d       driver
	started bool
	closed  bool
	status  error
	tracer  *trace.Recorder
}

// NewParser builds a Parser that recognizes documents described by method
// and reports their field events to handler. method is typically shared
// across many Parser instances (see schema.NewMethod); handler is used
// exclusively for the lifetime of this one Parser.
func NewParser(method *schema.Method, handler sink.Handler) *Parser {
	return &Parser{method: method, handler: handler}
}

// WithTrace enables transition tracing for this parse and returns the
// Recorder that will receive it. Call Flush on the returned Recorder (or
// rely on Close to do it) once parsing finishes; see the internal/trace
// package for the debug.yaml-style output this produces.
func (p *Parser) WithTrace() *trace.Recorder {
	p.tracer = trace.New()
	p.d.tracer = p.tracer
	return p.tracer
}

func (p *Parser) ensureStarted() {
	if p.started {
		return
	}
	p.started = true
	p.d.method = p.method
	p.d.handler = p.handler
	p.d.ignoreUnknown = p.IgnoreUnknown
	p.d.stack.limit = p.DepthLimit
}

// Write feeds the next chunk of the JSON document to the parser. It returns
// the number of bytes consumed (always len(b) unless an error occurred in
// this chunk) and the first error encountered, which is also latched for Err
// and Close. Once an error is latched, later chunks are consumed whole
// without emitting events, and the latched error is returned again.
// Write may be called any number of times, with chunk boundaries falling
// anywhere in the document, including mid-token.
func (p *Parser) Write(b []byte) (int, error) {
	p.ensureStarted()
	if p.status != nil {
		return len(b), p.status
	}
	n, err := p.d.feed(b)
	p.d.offset += n
	if err != nil {
		p.status = err
	}
	return n, err
}

// Close finalizes the parse, reporting an error if the document ended
// mid-value, and reports the parse's terminal status to the Handler via
// EndMsg. It is safe to call Close exactly once; calling it more than once
// is a no-op returning the same status.
func (p *Parser) Close() error {
	if p.closed {
		return p.status
	}
	p.closed = true
	p.ensureStarted()
	if p.status == nil {
		p.status = p.d.finish()
	}
	p.handler.EndMsg(p.status)
	if p.tracer != nil {
		p.tracer.Flush()
	}
	return p.status
}

// Err returns the first error encountered during the parse, or nil.
func (p *Parser) Err() error {
	return p.status
}
