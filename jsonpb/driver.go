package jsonpb

import (
	"fmt"

	"github.com/flitsinc/go-jsonpb/accum"
	"github.com/flitsinc/go-jsonpb/decode"
	"github.com/flitsinc/go-jsonpb/jsonpb/internal/trace"
	"github.com/flitsinc/go-jsonpb/schema"
	"github.com/flitsinc/go-jsonpb/sink"
	"github.com/flitsinc/go-jsonpb/wellknown"
)

// elementField adapts a repeated or map field's FieldDescriptor so that
// dispatch for one element/entry sees a singular value: the field's own
// repeated-ness or map-ness was already consumed by opening the enclosing
// scopeArray/scopeMap frame.
type elementField struct {
	schema.FieldDescriptor
}

func (elementField) IsMap() bool      { return false }
func (elementField) IsRepeated() bool { return false }

// driver is the pushdown automaton: a bounded frame stack plus a flat
// token-recognition state (tokState), resumable across Write calls. It
// never retains input bytes beyond what accum.Multipart/accum.Capture
// already tolerate across a chunk boundary.
type driver struct {
	method  *schema.Method
	handler sink.Handler

	ignoreUnknown bool

	stack frameStack

	tok tokState

	// curField is the field whose value tsExpectValue is about to
	// recognize. nil at the very first value (the implicit root message)
	// and while an unknown member's value is being skipped.
	curField schema.FieldDescriptor

	mp        accum.Multipart
	capture   accum.Capture
	surrogate decode.SurrogateState
	hexDigits int
	hexVal    uint32

	purpose   stringPurpose
	strField  schema.FieldDescriptor
	strCursor any

	litWant          string
	litPos           int
	litEmitNullField schema.FieldDescriptor

	// skipValue discards the in-flight string/number/literal instead of
	// decoding it: set when an object member name matched no field and
	// ignoreUnknown is true.
	skipValue bool
	// skipNext tells the next tsExpectValue dispatch to enter tsSkipValue
	// rather than beginValue, for the same reason.
	skipNext bool

	skipDepth      int
	skipInString   bool
	skipEscapeNext bool

	offset int
	tracer *trace.Recorder
}

func (d *driver) trace(note string) {
	if d.tracer == nil {
		return
	}
	d.tracer.Record(d.stack.depth(), d.tok.String(), note)
}

func isWS(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func tokenName(c byte) string {
	switch {
	case c == '{':
		return "object"
	case c == '[':
		return "array"
	case c == '"':
		return "string"
	case c == 't' || c == 'f':
		return "bool"
	case c == 'n':
		return "null"
	case c == '-' || (c >= '0' && c <= '9'):
		return "number"
	default:
		return fmt.Sprintf("%q", c)
	}
}

func scalarSel(f schema.FieldDescriptor) sink.Selector {
	return sink.Selector{Kind: sink.KindScalar, Field: f}
}

// fieldNameOrRoot names f for an error message, or "<root>" when f is nil
// (the implicit root message).
func fieldNameOrRoot(f schema.FieldDescriptor) string {
	if f == nil {
		return "<root>"
	}
	return f.Name()
}

// feed consumes as much of chunk as it can, returning the number of bytes
// consumed and the first error encountered, if any. On success with no
// error it always consumes the whole chunk; a resumable mid-token state
// (a capture suspended, a literal or hex digit run left unfinished) is kept
// in d's fields for the next feed call.
func (d *driver) feed(chunk []byte) (int, error) {
	if d.capture.State() == accum.CaptureSuspended {
		d.capture.Resume(0)
	}
	i := 0
	for i < len(chunk) {
		c := chunk[i]
		switch d.tok {

		case tsExpectValue:
			if isWS(c) {
				i++
				break
			}
			n, err := d.dispatchValue(chunk, i)
			if err != nil {
				return i, err
			}
			i = n

		case tsExpectValueOrArrayClose:
			if isWS(c) {
				i++
				break
			}
			if c == ']' {
				if err := d.closeSeq(); err != nil {
					return i, err
				}
				i++
				break
			}
			n, err := d.dispatchValue(chunk, i)
			if err != nil {
				return i, err
			}
			i = n

		case tsExpectMemberNameOrClose:
			if isWS(c) {
				i++
				break
			}
			if c == '}' {
				if err := d.closeObjectLike(); err != nil {
					return i, err
				}
				i++
				break
			}
			if c != '"' {
				return i, &ErrStructural{Offset: d.offset + i, Reason: "expected '\"' or '}'"}
			}
			d.beginMemberName(i)
			i++

		case tsExpectColon:
			if isWS(c) {
				i++
				break
			}
			if c != ':' {
				return i, &ErrStructural{Offset: d.offset + i, Reason: "expected ':'"}
			}
			i++
			d.tok = tsExpectValue

		case tsExpectCommaOrObjectClose:
			if isWS(c) {
				i++
				break
			}
			switch c {
			case ',':
				i++
				d.tok = tsExpectMemberNameOrClose
			case '}':
				if err := d.closeObjectLike(); err != nil {
					return i, err
				}
				i++
			default:
				return i, &ErrStructural{Offset: d.offset + i, Reason: "expected ',' or '}'"}
			}

		case tsExpectCommaOrArrayClose:
			if isWS(c) {
				i++
				break
			}
			switch c {
			case ',':
				i++
				d.tok = tsExpectValue
			case ']':
				if err := d.closeSeq(); err != nil {
					return i, err
				}
				i++
			default:
				return i, &ErrStructural{Offset: d.offset + i, Reason: "expected ',' or ']'"}
			}

		case tsInString:
			n, err := d.scanString(chunk, i)
			if err != nil {
				return n, err
			}
			if n == len(chunk) && d.capture.Active() {
				return n, nil
			}
			i = n

		case tsInStringEscape:
			if c == 'u' {
				d.tok = tsInStringUnicode
				d.hexDigits = 0
				d.hexVal = 0
				i++
				break
			}
			if b, ok := decode.SimpleEscape(c); ok {
				if err := d.mp.Feed([]byte{b}, false); err != nil {
					return i, err
				}
				i++
				d.capture.Begin(i)
				d.tok = tsInString
				break
			}
			return i, &decode.ErrInvalidEscape{Char: c}

		case tsInStringUnicode:
			for i < len(chunk) && d.hexDigits < 4 {
				v, ok := decode.HexDigit(chunk[i])
				if !ok {
					return i, &ErrStructural{Offset: d.offset + i, Reason: "invalid hex digit in \\u escape"}
				}
				d.hexVal = d.hexVal<<4 | v
				d.hexDigits++
				i++
			}
			if d.hexDigits < 4 {
				return i, nil
			}
			if out := d.surrogate.PutUnicodeEscape(d.hexVal); len(out) > 0 {
				if err := d.mp.Feed(out, false); err != nil {
					return i, err
				}
			}
			d.hexDigits, d.hexVal = 0, 0
			d.capture.Begin(i)
			d.tok = tsInString

		case tsInNumber:
			n, err := d.scanNumber(chunk, i)
			if err != nil {
				return n, err
			}
			if n == len(chunk) && d.capture.Active() {
				return n, nil
			}
			i = n

		case tsInLiteral:
			for i < len(chunk) && d.litPos < len(d.litWant) {
				if chunk[i] != d.litWant[d.litPos] {
					return i, &ErrStructural{Offset: d.offset + i, Reason: fmt.Sprintf("invalid literal, expected %q", d.litWant)}
				}
				i++
				d.litPos++
			}
			if d.litPos < len(d.litWant) {
				return i, nil
			}
			d.finishLiteral()

		case tsSkipValue:
			n, done := d.scanSkip(chunk, i)
			i = n
			if done {
				d.afterValue()
			}

		case tsDone:
			if isWS(c) {
				i++
				break
			}
			return i, &ErrStructural{Offset: d.offset + i, Reason: "trailing garbage after document"}
		}
	}
	// A capture left Active (not already Suspended by scanString/scanNumber
	// above) happens when a string's opening quote or a simple or \u escape
	// ended exactly at the last byte of chunk: suspend it now so the next
	// feed call's Resume has something consistent to resume.
	if d.capture.State() == accum.CaptureActive {
		if partial, ok := d.capture.Suspend(chunk); ok && len(partial) > 0 {
			if err := d.mp.Feed(partial, false); err != nil {
				return i, err
			}
		}
	}
	return i, nil
}

// dispatchValue begins recognizing the next JSON value at chunk[i], either
// against d.curField (ordinary dispatch) or by discarding it unparsed
// (d.skipNext, set for an unknown field under IgnoreUnknown).
func (d *driver) dispatchValue(chunk []byte, i int) (int, error) {
	if d.skipNext {
		d.skipNext = false
		return d.beginSkip(chunk, i)
	}
	return d.beginValue(chunk, i)
}

// beginValue resolves well-known-type dispatch (maps, wrappers, Struct,
// Value, ListValue, Duration, Timestamp) and then recognizes chunk[i] as
// the start of an object, array, string, number, or true/false/null
// literal for d.curField. Dispatch applies equally to an ordinary field
// (f.Message()) and to the implicit root message (f == nil, checked
// against method.Root): a root google.protobuf.Int32Value parses a bare
// JSON number, a root ListValue parses a bare JSON array, and so on.
func (d *driver) beginValue(chunk []byte, i int) (int, error) {
	c := chunk[i]
	f := d.curField

	if f != nil && f.IsMap() {
		if c != '{' {
			return i, &ErrWrongShape{Field: f.Name(), Wanted: "object", Got: tokenName(c)}
		}
		return d.openMap(f, i)
	}

	var wktDesc schema.MessageDescriptor
	switch {
	case f != nil && f.Kind() == schema.KindMessage:
		wktDesc = f.Message()
	case f == nil:
		wktDesc = d.method.Root
	}
	if wktDesc != nil {
		if wk, ok := wellknown.ByDescriptor(wktDesc); ok {
			switch {
			case wk == wellknown.KindValue:
				return d.openValueWrapper(f, c, chunk, i)
			case wk == wellknown.KindStruct:
				if c != '{' {
					return i, &ErrWrongShape{Field: fieldNameOrRoot(f), Wanted: "object", Got: tokenName(c)}
				}
				return d.openStruct(f, i)
			case wk == wellknown.KindListValue:
				if c != '[' {
					return i, &ErrWrongShape{Field: fieldNameOrRoot(f), Wanted: "array", Got: tokenName(c)}
				}
				return d.openListValue(f, i)
			case wk == wellknown.KindDuration:
				if c != '"' {
					return i, &ErrWrongShape{Field: fieldNameOrRoot(f), Wanted: "string", Got: tokenName(c)}
				}
				return d.openWellKnownQuoted(f, purposeDurationLiteral, i)
			case wk == wellknown.KindTimestamp:
				if c != '"' {
					return i, &ErrWrongShape{Field: fieldNameOrRoot(f), Wanted: "string", Got: tokenName(c)}
				}
				return d.openWellKnownQuoted(f, purposeTimestampLiteral, i)
			case wk.IsWrapper():
				return d.openWrapper(f, chunk, i)
			}
		}
	}

	if f != nil && f.IsRepeated() {
		if c != '[' {
			return i, &ErrWrongShape{Field: f.Name(), Wanted: "array", Got: tokenName(c)}
		}
		return d.openArray(f, i)
	}

	switch c {
	case '{':
		return d.openMessageValue(f, i)
	case '"':
		return d.openValueString(f, i)
	case 't':
		if f != nil && f.Kind() != schema.KindBool {
			return i, &ErrWrongShape{Field: f.Name(), Wanted: f.Kind().String(), Got: "bool"}
		}
		return d.beginLiteral("true", i)
	case 'f':
		if f != nil && f.Kind() != schema.KindBool {
			return i, &ErrWrongShape{Field: f.Name(), Wanted: f.Kind().String(), Got: "bool"}
		}
		return d.beginLiteral("false", i)
	case 'n':
		return d.beginLiteral("null", i)
	default:
		if c == '-' || (c >= '0' && c <= '9') || c == 'I' {
			return d.openValueNumber(f, i)
		}
		return i, &ErrStructural{Offset: d.offset + i, Reason: fmt.Sprintf("unexpected character %q", c)}
	}
}

func (d *driver) openMessageValue(f schema.FieldDescriptor, i int) (int, error) {
	var desc schema.MessageDescriptor
	var cursor any
	if f == nil {
		desc = d.method.Root
		d.handler.StartMsg()
	} else {
		if f.Kind() != schema.KindMessage {
			return i, &ErrWrongShape{Field: f.Name(), Wanted: f.Kind().String(), Got: "object"}
		}
		desc = f.Message()
		cursor = d.handler.StartSubMsg(sink.Selector{Kind: sink.KindSubMessage, Field: f})
	}
	names, _ := d.method.NameTableFor(desc)
	if err := d.stack.push(frame{kind: scopeMessage, cursor: cursor, field: f, desc: desc, names: names}); err != nil {
		return i, err
	}
	d.trace("open message " + desc.FullName())
	d.tok = tsExpectMemberNameOrClose
	return i + 1, nil
}

func (d *driver) openMap(f schema.FieldDescriptor, i int) (int, error) {
	return d.openMapFrame(f, nil, nil, i)
}

func (d *driver) openMapFrame(mapField, wrapField schema.FieldDescriptor, wrapCursor any, i int) (int, error) {
	cursor := d.handler.StartSeq(sink.Selector{Kind: sink.KindSequence, Field: mapField})
	fr := frame{
		kind:        scopeMap,
		cursor:      cursor,
		field:       mapField,
		mapKeyField: mapField.MapKey(),
		mapValField: mapField.MapValue(),
		wrapField:   wrapField,
		wrapCursor:  wrapCursor,
	}
	if err := d.stack.push(fr); err != nil {
		return i, err
	}
	d.trace("open map " + mapField.Name())
	d.tok = tsExpectMemberNameOrClose
	return i + 1, nil
}

func (d *driver) openStruct(outer schema.FieldDescriptor, i int) (int, error) {
	var desc schema.MessageDescriptor
	var cursor any
	if outer == nil {
		desc = d.method.Root
		d.handler.StartMsg()
	} else {
		desc = outer.Message()
		cursor = d.handler.StartSubMsg(sink.Selector{Kind: sink.KindSubMessage, Field: outer})
	}
	fieldsField, ok := desc.FieldByNumber(wellknown.StructFieldsFieldNumber)
	if !ok {
		return i, fmt.Errorf("jsonpb: %s missing fields map", desc.FullName())
	}
	return d.openMapFrame(fieldsField, outer, cursor, i)
}

func (d *driver) openArray(f schema.FieldDescriptor, i int) (int, error) {
	return d.openArrayFrame(f, nil, nil, i)
}

func (d *driver) openArrayFrame(f, wrapField schema.FieldDescriptor, wrapCursor any, i int) (int, error) {
	cursor := d.handler.StartSeq(sink.Selector{Kind: sink.KindSequence, Field: f})
	fr := frame{
		kind:       scopeArray,
		cursor:     cursor,
		field:      f,
		elemField:  elementField{f},
		wrapField:  wrapField,
		wrapCursor: wrapCursor,
	}
	if err := d.stack.push(fr); err != nil {
		return i, err
	}
	d.trace("open array " + f.Name())
	d.curField = fr.elemField
	d.tok = tsExpectValueOrArrayClose
	return i + 1, nil
}

func (d *driver) openListValue(outer schema.FieldDescriptor, i int) (int, error) {
	var desc schema.MessageDescriptor
	var cursor any
	if outer == nil {
		desc = d.method.Root
		d.handler.StartMsg()
	} else {
		desc = outer.Message()
		cursor = d.handler.StartSubMsg(sink.Selector{Kind: sink.KindSubMessage, Field: outer})
	}
	valuesField, ok := desc.FieldByNumber(wellknown.ListValueValuesFieldNumber)
	if !ok {
		return i, fmt.Errorf("jsonpb: %s missing values field", desc.FullName())
	}
	return d.openArrayFrame(valuesField, outer, cursor, i)
}

// openWrapper opens a google.protobuf.*Value wrapper, either as an ordinary
// submessage field (outer != nil) or as the root message itself (outer ==
// nil): in the latter case there is no enclosing frame to push, since the
// wrapper's own open/close is the whole document's, already tracked by
// StartMsg/Parser.Close's deferred EndMsg.
func (d *driver) openWrapper(outer schema.FieldDescriptor, chunk []byte, i int) (int, error) {
	var desc schema.MessageDescriptor
	if outer == nil {
		desc = d.method.Root
		d.handler.StartMsg()
	} else {
		desc = outer.Message()
	}
	inner, ok := desc.FieldByNumber(wellknown.WrapperValueFieldNumber)
	if !ok {
		return i, fmt.Errorf("jsonpb: %s missing value field", desc.FullName())
	}
	if outer != nil {
		cursor := d.handler.StartSubMsg(sink.Selector{Kind: sink.KindSubMessage, Field: outer})
		if err := d.stack.push(frame{kind: scopeOneShot, cursor: cursor, field: outer}); err != nil {
			return i, err
		}
	}
	d.curField = inner
	return d.beginValue(chunk, i)
}

func (d *driver) openValueWrapper(outer schema.FieldDescriptor, c byte, chunk []byte, i int) (int, error) {
	shape := wellknown.ShapeForToken(c == '{', c == '[', c == '"', c == 't' || c == 'f', c == 'n')
	var valueDesc schema.MessageDescriptor
	if outer == nil {
		valueDesc = d.method.Root
		d.handler.StartMsg()
	} else {
		valueDesc = outer.Message()
		cursor := d.handler.StartSubMsg(sink.Selector{Kind: sink.KindSubMessage, Field: outer})
		if err := d.stack.push(frame{kind: scopeOneShot, cursor: cursor, field: outer}); err != nil {
			return i, err
		}
	}

	var fieldNum int32
	switch shape {
	case wellknown.ValueShapeNull:
		fieldNum = wellknown.ValueNullValueFieldNumber
	case wellknown.ValueShapeNumber:
		fieldNum = wellknown.ValueNumberValueFieldNumber
	case wellknown.ValueShapeString:
		fieldNum = wellknown.ValueStringValueFieldNumber
	case wellknown.ValueShapeBool:
		fieldNum = wellknown.ValueBoolValueFieldNumber
	case wellknown.ValueShapeStruct:
		fieldNum = wellknown.ValueStructValueFieldNumber
	case wellknown.ValueShapeList:
		fieldNum = wellknown.ValueListValueFieldNumber
	}
	target, ok := valueDesc.FieldByNumber(fieldNum)
	if !ok {
		return i, fmt.Errorf("jsonpb: %s missing oneof member %d", valueDesc.FullName(), fieldNum)
	}

	if shape == wellknown.ValueShapeNull {
		n, err := d.beginLiteral("null", i)
		d.litEmitNullField = target
		return n, err
	}
	d.curField = target
	return d.beginValue(chunk, i)
}

func (d *driver) openWellKnownQuoted(outer schema.FieldDescriptor, purpose stringPurpose, i int) (int, error) {
	if outer == nil {
		d.handler.StartMsg()
	} else {
		cursor := d.handler.StartSubMsg(sink.Selector{Kind: sink.KindSubMessage, Field: outer})
		if err := d.stack.push(frame{kind: scopeOneShot, cursor: cursor, field: outer}); err != nil {
			return i, err
		}
	}
	d.beginStringCapture(purpose, outer, i+1)
	return i + 1, nil
}

func (d *driver) openValueString(f schema.FieldDescriptor, i int) (int, error) {
	if f == nil {
		return i, &ErrWrongShape{Field: "<root>", Wanted: "object", Got: "string"}
	}
	switch f.Kind() {
	case schema.KindString:
		d.beginPushString(f, i+1)
	case schema.KindBytes:
		d.beginStringCapture(purposeBytesField, f, i+1)
	case schema.KindEnum:
		d.beginStringCapture(purposeEnumName, f, i+1)
	case schema.KindInt32, schema.KindInt64, schema.KindUint32, schema.KindUint64:
		d.beginStringCapture(purposeQuotedNumber, f, i+1)
	case schema.KindBool:
		d.beginStringCapture(purposeQuotedBool, f, i+1)
	default:
		return i, &ErrWrongShape{Field: f.Name(), Wanted: f.Kind().String(), Got: "string"}
	}
	return i + 1, nil
}

func (d *driver) openValueNumber(f schema.FieldDescriptor, i int) (int, error) {
	if f == nil {
		return i, &ErrWrongShape{Field: "<root>", Wanted: "object", Got: "number"}
	}
	switch f.Kind() {
	case schema.KindInt32, schema.KindInt64, schema.KindUint32, schema.KindUint64,
		schema.KindFloat, schema.KindDouble, schema.KindEnum:
	default:
		return i, &ErrWrongShape{Field: f.Name(), Wanted: f.Kind().String(), Got: "number"}
	}
	d.mp.StartAccumulate()
	d.capture.Begin(i)
	d.tok = tsInNumber
	return i, nil
}

func (d *driver) beginLiteral(want string, i int) (int, error) {
	d.litWant = want
	d.litPos = 0
	d.litEmitNullField = nil
	d.tok = tsInLiteral
	return i, nil
}

func (d *driver) finishLiteral() {
	switch {
	case d.skipValue:
		d.skipValue = false
	case d.litEmitNullField != nil:
		d.handler.PutInt32(scalarSel(d.litEmitNullField), wellknown.NullValue)
		d.litEmitNullField = nil
	case d.litWant == "true":
		d.handler.PutBool(scalarSel(d.curField), true)
	case d.litWant == "false":
		d.handler.PutBool(scalarSel(d.curField), false)
		// "null" against an ordinary field emits nothing: proto3 JSON
		// null means "field not present".
	}
	d.afterValue()
}

func (d *driver) beginMemberName(i int) {
	top := d.stack.top()
	purpose := purposeMemberName
	if top.kind == scopeMap {
		purpose = purposeMapKey
	}
	d.beginStringCapture(purpose, nil, i+1)
}

func (d *driver) beginStringCapture(purpose stringPurpose, field schema.FieldDescriptor, contentStart int) {
	d.purpose = purpose
	d.strField = field
	d.mp.StartAccumulate()
	d.capture.Begin(contentStart)
	d.tok = tsInString
}

func (d *driver) beginPushString(field schema.FieldDescriptor, contentStart int) {
	sel := sink.Selector{Kind: sink.KindStringValue, Field: field}
	cursor := d.handler.StartStr(sel, 0)
	d.purpose = purposeStringField
	d.strField = field
	d.strCursor = cursor
	d.mp.StartPush(func(b []byte) { d.handler.PutString(sel, b, cursor) })
	d.capture.Begin(contentStart)
	d.tok = tsInString
}

// scanString advances through the bytes of an already-opened string,
// handling the unescaped run up to the next '"' or '\\'. It returns the new
// index; if the returned index equals len(chunk) and d.capture is still
// Active, the caller must treat this as a suspend (more bytes needed).
func (d *driver) scanString(chunk []byte, i int) (int, error) {
	j := i
	for j < len(chunk) {
		cj := chunk[j]
		if cj == '"' || cj == '\\' {
			break
		}
		if cj < 0x20 {
			return j, &ErrStructural{Offset: d.offset + j, Reason: "control character in string"}
		}
		j++
	}
	if j == len(chunk) {
		if partial, ok := d.capture.Suspend(chunk); ok {
			if err := d.mp.Feed(partial, false); err != nil {
				return j, err
			}
		}
		return j, nil
	}
	span := d.capture.End(chunk, j)
	if err := d.mp.Feed(span, true); err != nil {
		return j, err
	}
	if chunk[j] == '\\' {
		d.tok = tsInStringEscape
		return j + 1, nil
	}
	if out := d.surrogate.Flush(); len(out) > 0 {
		if err := d.mp.Feed(out, false); err != nil {
			return j, err
		}
	}
	if err := d.finishString(); err != nil {
		return j, err
	}
	return j + 1, nil
}

func (d *driver) finishString() error {
	if d.skipValue {
		d.mp.End()
		d.skipValue = false
		d.afterValue()
		return nil
	}
	switch d.purpose {
	case purposeStringField:
		sel := sink.Selector{Kind: sink.KindStringValue, Field: d.strField}
		d.handler.EndStr(sel, d.strCursor)
		d.mp.End()
		d.strCursor = nil
		d.afterValue()
		return nil
	case purposeMemberName:
		name := string(d.mp.Bytes())
		d.mp.End()
		return d.resolveMemberName(name)
	case purposeMapKey:
		name := string(d.mp.Bytes())
		d.mp.End()
		return d.resolveMapKey(name)
	default:
		literal := string(d.mp.Bytes())
		d.mp.End()
		return d.finishLeafString(literal)
	}
}

func (d *driver) finishLeafString(literal string) error {
	f := d.strField
	switch d.purpose {
	case purposeBytesField:
		b, err := decode.Base64(literal)
		if err != nil {
			return err
		}
		sel := sink.Selector{Kind: sink.KindStringValue, Field: f}
		cur := d.handler.StartStr(sel, len(b))
		d.handler.PutString(sel, b, cur)
		d.handler.EndStr(sel, cur)
	case purposeEnumName:
		n, ok := f.Enum().NameToNumber(literal)
		if !ok {
			return &ErrUnknownEnumValue{Enum: f.Enum().FullName(), Value: literal}
		}
		d.handler.PutInt32(scalarSel(f), n)
	case purposeQuotedNumber:
		v, err := decode.Number(literal, true, f.Kind())
		if err != nil {
			return err
		}
		d.putScalar(f, v)
	case purposeQuotedBool:
		v, err := decode.Bool(literal, true)
		if err != nil {
			return err
		}
		d.handler.PutBool(scalarSel(f), v)
	case purposeDurationLiteral:
		secs, nanos, err := wellknown.DecodeDuration(literal)
		if err != nil {
			return err
		}
		if err := d.putSecondsNanos(f, wellknown.DurationSecondsFieldNumber, wellknown.DurationNanosFieldNumber, secs, nanos); err != nil {
			return err
		}
	case purposeTimestampLiteral:
		secs, nanos, err := wellknown.DecodeTimestamp(literal)
		if err != nil {
			return err
		}
		if err := d.putSecondsNanos(f, wellknown.TimestampSecondsFieldNumber, wellknown.TimestampNanosFieldNumber, secs, nanos); err != nil {
			return err
		}
	}
	d.afterValue()
	return nil
}

func (d *driver) putSecondsNanos(outer schema.FieldDescriptor, secNum, nanoNum int32, secs int64, nanos int32) error {
	desc := d.method.Root
	if outer != nil {
		desc = outer.Message()
	}
	secF, ok := desc.FieldByNumber(secNum)
	if !ok {
		return fmt.Errorf("jsonpb: %s missing seconds field", desc.FullName())
	}
	nanoF, ok := desc.FieldByNumber(nanoNum)
	if !ok {
		return fmt.Errorf("jsonpb: %s missing nanos field", desc.FullName())
	}
	d.handler.PutInt64(scalarSel(secF), secs)
	d.handler.PutInt32(scalarSel(nanoF), nanos)
	return nil
}

func (d *driver) putScalar(f schema.FieldDescriptor, v any) {
	sel := scalarSel(f)
	switch x := v.(type) {
	case int32:
		d.handler.PutInt32(sel, x)
	case int64:
		d.handler.PutInt64(sel, x)
	case uint32:
		d.handler.PutUint32(sel, x)
	case uint64:
		d.handler.PutUint64(sel, x)
	case float32:
		d.handler.PutFloat32(sel, x)
	case float64:
		d.handler.PutFloat64(sel, x)
	case bool:
		d.handler.PutBool(sel, x)
	}
}

func (d *driver) putScalarOrString(f schema.FieldDescriptor, v any) {
	if s, ok := v.(string); ok {
		sel := sink.Selector{Kind: sink.KindStringValue, Field: f}
		cur := d.handler.StartStr(sel, len(s))
		d.handler.PutString(sel, []byte(s), cur)
		d.handler.EndStr(sel, cur)
		return
	}
	d.putScalar(f, v)
}

func isNumberByte(c byte) bool {
	switch {
	case c >= '0' && c <= '9':
		return true
	case c == '-' || c == '+' || c == '.' || c == 'e' || c == 'E':
		return true
	case c == 'I' || c == 'n' || c == 'f' || c == 'i' || c == 't' || c == 'y':
		// Only ever legally combine into "Infinity"/"-Infinity"; decode.Number
		// rejects anything else built from this set.
		return true
	default:
		return false
	}
}

func (d *driver) scanNumber(chunk []byte, i int) (int, error) {
	j := i
	for j < len(chunk) && isNumberByte(chunk[j]) {
		j++
	}
	if j == len(chunk) {
		if partial, ok := d.capture.Suspend(chunk); ok {
			if err := d.mp.Feed(partial, false); err != nil {
				return j, err
			}
		}
		return j, nil
	}
	span := d.capture.End(chunk, j)
	if err := d.mp.Feed(span, true); err != nil {
		return j, err
	}
	if err := d.finishNumber(); err != nil {
		return j, err
	}
	return j, nil
}

func (d *driver) finishNumber() error {
	literal := string(d.mp.Bytes())
	d.mp.End()
	if d.skipValue {
		d.skipValue = false
		d.afterValue()
		return nil
	}
	f := d.curField
	v, err := decode.Number(literal, false, f.Kind())
	if err != nil {
		return err
	}
	d.putScalar(f, v)
	d.afterValue()
	return nil
}

func (d *driver) resolveMemberName(name string) error {
	top := d.stack.top()
	f, ok := top.names.Lookup(name)
	if !ok {
		if d.ignoreUnknown {
			d.curField = nil
			d.skipNext = true
			d.tok = tsExpectColon
			return nil
		}
		return &ErrUnknownField{Message: top.desc.FullName(), Name: name}
	}
	d.curField = f
	d.tok = tsExpectColon
	return nil
}

func (d *driver) resolveMapKey(name string) error {
	top := d.stack.top()
	keyField := top.mapKeyField
	switch keyField.Kind() {
	case schema.KindString, schema.KindBool, schema.KindInt32, schema.KindInt64, schema.KindUint32, schema.KindUint64:
	default:
		return &ErrUnknownMapKeyKind{Field: top.field.Name(), Kind: keyField.Kind().String()}
	}
	key, err := wellknown.DecodeMapKey(name, keyField.Kind())
	if err != nil {
		return err
	}
	entryCursor := d.handler.StartSubMsg(sink.Selector{Kind: sink.KindSubMessage, Field: top.field})
	d.putScalarOrString(keyField, key)
	if err := d.stack.push(frame{kind: scopeOneShot, cursor: entryCursor, field: top.field}); err != nil {
		return err
	}
	d.curField = top.mapValField
	d.tok = tsExpectColon
	return nil
}

// afterValue runs once a single value (scalar, string, or a whole nested
// container) has fully completed, advancing to whatever the enclosing
// frame expects next. One-shot frames (map-entry values, scalar wrapper
// values, a resolved Value oneof member) close themselves here and the
// loop re-examines the frame beneath.
func (d *driver) afterValue() {
	for {
		top := d.stack.top()
		if top == nil {
			d.tok = tsDone
			return
		}
		if top.kind == scopeOneShot {
			d.handler.EndSubMsg(sink.Selector{Kind: sink.KindSubMessage, Field: top.field}, top.cursor)
			d.stack.pop()
			continue
		}
		switch top.kind {
		case scopeMessage, scopeMap:
			d.tok = tsExpectCommaOrObjectClose
		case scopeArray:
			d.curField = top.elemField
			d.tok = tsExpectCommaOrArrayClose
		}
		return
	}
}

// closeObjectLike handles a '}' seen while expecting either a member name
// or a close: it's either an ordinary message or a map, both of which use
// '{'/'}' JSON delimiters.
func (d *driver) closeObjectLike() error {
	top := d.stack.top()
	if top.kind == scopeMap {
		return d.closeSeq()
	}
	fr := d.stack.pop()
	if d.stack.empty() {
		// Root message closed; EndMsg is deferred to Parser.Close so its
		// status can reflect the whole parse, not just this bracket.
		d.tok = tsDone
		return nil
	}
	d.handler.EndSubMsg(sink.Selector{Kind: sink.KindSubMessage, Field: fr.field}, fr.cursor)
	d.afterValue()
	return nil
}

// closeSeq handles the closing delimiter of a scopeArray or scopeMap frame.
func (d *driver) closeSeq() error {
	fr := d.stack.pop()
	d.handler.EndSeq(sink.Selector{Kind: sink.KindSequence, Field: fr.field}, fr.cursor)
	if fr.wrapField != nil {
		d.handler.EndSubMsg(sink.Selector{Kind: sink.KindSubMessage, Field: fr.wrapField}, fr.wrapCursor)
	}
	d.afterValue()
	return nil
}

// beginSkip discards one JSON value (any shape) unparsed, for an unknown
// object member under IgnoreUnknown.
func (d *driver) beginSkip(chunk []byte, i int) (int, error) {
	c := chunk[i]
	switch {
	case c == '{' || c == '[':
		d.skipDepth = 1
		d.skipInString = false
		d.skipEscapeNext = false
		d.tok = tsSkipValue
		return i + 1, nil
	case c == '"':
		d.skipValue = true
		d.mp.StartAccumulate()
		d.capture.Begin(i + 1)
		d.tok = tsInString
		return i + 1, nil
	case c == 't':
		d.skipValue = true
		return d.beginLiteral("true", i)
	case c == 'f':
		d.skipValue = true
		return d.beginLiteral("false", i)
	case c == 'n':
		d.skipValue = true
		return d.beginLiteral("null", i)
	case c == '-' || (c >= '0' && c <= '9'):
		d.skipValue = true
		d.mp.StartAccumulate()
		d.capture.Begin(i)
		d.tok = tsInNumber
		return i, nil
	default:
		return i, &ErrStructural{Offset: d.offset + i, Reason: fmt.Sprintf("unexpected character %q", c)}
	}
}

// scanSkip advances the bracket/string-aware scanner used to discard an
// unknown object/array value. It returns the new index and whether the
// skipped value has fully closed.
func (d *driver) scanSkip(chunk []byte, i int) (int, bool) {
	for i < len(chunk) {
		c := chunk[i]
		if d.skipInString {
			switch {
			case d.skipEscapeNext:
				d.skipEscapeNext = false
			case c == '\\':
				d.skipEscapeNext = true
			case c == '"':
				d.skipInString = false
			}
			i++
			continue
		}
		switch c {
		case '"':
			d.skipInString = true
		case '{', '[':
			d.skipDepth++
		case '}', ']':
			d.skipDepth--
			if d.skipDepth == 0 {
				i++
				return i, true
			}
		}
		i++
	}
	return i, false
}

// finish checks that the parse ended in a terminal state. A number still
// being scanned (one that can only end at end of input, such as a bare
// root scalar) is completed first; any other unfinished token at this point
// reflects a document that never closed its root value.
func (d *driver) finish() error {
	if d.tok == tsInNumber {
		// The number's bytes were already fed to d.mp when the last chunk
		// suspended its capture.
		d.capture = accum.Capture{}
		if err := d.finishNumber(); err != nil {
			return err
		}
	}
	if d.tok != tsDone {
		return &ErrStructural{Offset: d.offset, Reason: "unexpected end of input"}
	}
	return nil
}
