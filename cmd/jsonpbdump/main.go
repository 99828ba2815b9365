// Command jsonpbdump reads a JSON document from stdin and feeds it to a
// jsonpb.Parser in small chunks, printing each field event as it's
// recognized. It exists to demonstrate that chunk boundaries can fall
// anywhere: the same document parses identically whether it arrives as one
// read or as a stream of small reads, which is the property a proxy or
// streaming RPC transport actually needs.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/flitsinc/go-jsonpb/jsonpb"
	"github.com/flitsinc/go-jsonpb/schema"
	"github.com/flitsinc/go-jsonpb/sink"
)

type textField struct{}

func (textField) Name() string                    { return "text" }
func (textField) JSONName() string                { return "text" }
func (textField) Number() int32                   { return 1 }
func (textField) Kind() schema.Kind               { return schema.KindString }
func (textField) IsMap() bool                     { return false }
func (textField) IsRepeated() bool                { return false }
func (textField) Message() schema.MessageDescriptor { panic("not a message field") }
func (textField) Enum() schema.EnumDescriptor      { panic("not an enum field") }
func (textField) MapKey() schema.FieldDescriptor   { panic("not a map field") }
func (textField) MapValue() schema.FieldDescriptor { panic("not a map field") }

type echoMessage struct{}

func (echoMessage) FullName() string                 { return "demo.Echo" }
func (echoMessage) Fields() []schema.FieldDescriptor { return []schema.FieldDescriptor{textField{}} }
func (echoMessage) FieldByNumber(number int32) (schema.FieldDescriptor, bool) {
	if number == 1 {
		return textField{}, true
	}
	return nil, false
}
func (echoMessage) FieldByName(name string) (schema.FieldDescriptor, bool) {
	if name == "text" {
		return textField{}, true
	}
	return nil, false
}

// chunkSize is deliberately small so a `{"text":"..."}` document still
// crosses several chunk boundaries mid-string, the case jsonpb's
// accum.Capture/accum.Multipart exist to handle.
const chunkSize = 8

// stdoutHandler prints one line per event; see sink.Handler's doc comment
// for what a real integration would do instead (build a message).
type stdoutHandler struct{}

func label(sel sink.Selector) string {
	if sel.Field == nil {
		return "<root>"
	}
	return sel.Field.JSONName()
}

func (stdoutHandler) StartMsg()                              { fmt.Println("StartMsg") }
func (stdoutHandler) EndMsg(status error)                    { fmt.Println("EndMsg:", status) }
func (stdoutHandler) StartSubMsg(sel sink.Selector) any       { fmt.Println("StartSubMsg:", label(sel)); return nil }
func (stdoutHandler) EndSubMsg(sel sink.Selector, cursor any) { fmt.Println("EndSubMsg:", label(sel)) }
func (stdoutHandler) StartSeq(sel sink.Selector) any          { fmt.Println("StartSeq:", label(sel)); return nil }
func (stdoutHandler) EndSeq(sel sink.Selector, cursor any)    { fmt.Println("EndSeq:", label(sel)) }
func (stdoutHandler) StartStr(sel sink.Selector, sizeHint int) any {
	fmt.Println("StartStr:", label(sel))
	return nil
}
func (stdoutHandler) PutString(sel sink.Selector, b []byte, cursor any) {
	fmt.Printf("PutString: %s = %q\n", label(sel), b)
}
func (stdoutHandler) EndStr(sel sink.Selector, cursor any) { fmt.Println("EndStr:", label(sel)) }
func (stdoutHandler) PutBool(sel sink.Selector, v bool)    { fmt.Printf("PutBool: %s = %v\n", label(sel), v) }
func (stdoutHandler) PutInt32(sel sink.Selector, v int32)  { fmt.Printf("PutInt32: %s = %d\n", label(sel), v) }
func (stdoutHandler) PutInt64(sel sink.Selector, v int64)  { fmt.Printf("PutInt64: %s = %d\n", label(sel), v) }
func (stdoutHandler) PutUint32(sel sink.Selector, v uint32) {
	fmt.Printf("PutUint32: %s = %d\n", label(sel), v)
}
func (stdoutHandler) PutUint64(sel sink.Selector, v uint64) {
	fmt.Printf("PutUint64: %s = %d\n", label(sel), v)
}
func (stdoutHandler) PutFloat32(sel sink.Selector, v float32) {
	fmt.Printf("PutFloat32: %s = %v\n", label(sel), v)
}
func (stdoutHandler) PutFloat64(sel sink.Selector, v float64) {
	fmt.Printf("PutFloat64: %s = %v\n", label(sel), v)
}

var _ sink.Handler = stdoutHandler{}

func main() {
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		fmt.Fprintln(os.Stderr, "jsonpbdump: reading stdin:", err)
		os.Exit(1)
	}

	method, err := schema.NewMethod(echoMessage{})
	if err != nil {
		fmt.Fprintln(os.Stderr, "jsonpbdump:", err)
		os.Exit(1)
	}

	p := jsonpb.NewParser(method, stdoutHandler{})
	for off := 0; off < len(data); off += chunkSize {
		end := off + chunkSize
		if end > len(data) {
			end = len(data)
		}
		if _, err := p.Write(data[off:end]); err != nil {
			fmt.Fprintln(os.Stderr, "jsonpbdump: parse error:", err)
			os.Exit(1)
		}
	}
	if err := p.Close(); err != nil {
		fmt.Fprintln(os.Stderr, "jsonpbdump: parse error:", err)
		os.Exit(1)
	}
}
