package jsonpb

import (
	"github.com/flitsinc/go-jsonpb/schema"
)

// defaultDepthLimit is the zero-value default nesting limit; Parser.DepthLimit
// can override it (resolved Open Question, see DESIGN.md).
const defaultDepthLimit = 64

// frame is one entry of the parse stack: a single open object, array, map,
// or one-shot value wrapper. It pairs 1:1 with a sink.Handler scope-open
// call (StartMsg/StartSubMsg/StartSeq), except the synthetic root frame.
type frame struct {
	kind scopeKind

	// cursor is the opaque handle returned by the matching Start* call.
	cursor any

	// field is the FieldDescriptor this frame's value belongs to. nil only
	// for the root message frame.
	field schema.FieldDescriptor

	// scopeMessage only.
	desc  schema.MessageDescriptor
	names *schema.NameTable

	// scopeMap only: the synthetic MapEntry's key/value fields.
	mapKeyField schema.FieldDescriptor
	mapValField schema.FieldDescriptor

	// scopeArray only: the field descriptor each element is parsed
	// against, adapted so IsMap()/IsRepeated() read false (the repeated-
	// ness was already consumed by opening this frame).
	elemField schema.FieldDescriptor

	// wrapField/wrapCursor are set when this scopeMap/scopeArray frame was
	// opened to hold a synthesized google.protobuf.Struct's fields or a
	// ListValue's values: the outer Struct/ListValue submessage itself
	// must also be closed (EndSubMsg) when this frame's closing token
	// arrives, since both share one JSON '{'/'[' delimiter pair.
	wrapField  schema.FieldDescriptor
	wrapCursor any
}

// frameStack is the parser's bounded nesting stack.
type frameStack struct {
	frames []frame
	limit  int
}

func (s *frameStack) depthLimit() int {
	if s.limit <= 0 {
		return defaultDepthLimit
	}
	return s.limit
}

func (s *frameStack) push(f frame) error {
	if len(s.frames) >= s.depthLimit() {
		return ErrNestingTooDeep
	}
	s.frames = append(s.frames, f)
	return nil
}

func (s *frameStack) pop() frame {
	n := len(s.frames)
	f := s.frames[n-1]
	s.frames = s.frames[:n-1]
	return f
}

func (s *frameStack) top() *frame {
	if len(s.frames) == 0 {
		return nil
	}
	return &s.frames[len(s.frames)-1]
}

func (s *frameStack) empty() bool {
	return len(s.frames) == 0
}

func (s *frameStack) depth() int {
	return len(s.frames)
}
