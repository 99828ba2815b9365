package schema

import (
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"
)

// NameTable maps a message's JSON member names onto its fields. Both a
// field's JSON name and (when different) its raw proto name resolve to the
// same FieldDescriptor, matching proto3's JSON parsing rules.
type NameTable struct {
	byName map[string]FieldDescriptor
}

// Lookup resolves a JSON member name to the field it addresses.
func (t *NameTable) Lookup(name string) (FieldDescriptor, bool) {
	if t == nil {
		return nil, false
	}
	f, ok := t.byName[name]
	return f, ok
}

func newNameTable(m MessageDescriptor) *NameTable {
	t := &NameTable{byName: make(map[string]FieldDescriptor, len(m.Fields())*2)}
	for _, f := range m.Fields() {
		t.byName[f.JSONName()] = f
		if f.Name() != f.JSONName() {
			t.byName[f.Name()] = f
		}
	}
	return t
}

// Method is the parser-method descriptor: an immutable, shared binding
// between a root message type and every message type reachable from it.
// Build one per schema with NewMethod and share it across as many Parser
// instances as you like (see jsonpb.Parser); it is read-only after
// construction.
type Method struct {
	Root MessageDescriptor

	mu     sync.RWMutex
	tables map[string]*NameTable // keyed by MessageDescriptor.FullName
}

// NameTableFor returns the JSON-name lookup table for the given message
// descriptor. The descriptor must be reachable from Root (i.e. it must have
// been discovered by NewMethod); otherwise the second return is false.
func (m *Method) NameTableFor(desc MessageDescriptor) (*NameTable, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	t, ok := m.tables[desc.FullName()]
	return t, ok
}

// NewMethod builds a Method for the given root message, recursively
// discovering every message type reachable through its fields (including
// map value messages and well-known containers) and building a NameTable
// for each. Discovery is necessarily sequential (a message's reachable set
// depends on fields of messages not yet visited), but once the full set of
// reachable descriptors is known, building their independent per-message
// name tables is fanned out concurrently.
func NewMethod(root MessageDescriptor) (*Method, error) {
	if root == nil {
		return nil, fmt.Errorf("schema: root message descriptor is nil")
	}

	discovered := make(map[string]MessageDescriptor)
	var walk func(MessageDescriptor) error
	walk = func(m MessageDescriptor) error {
		if m == nil {
			return fmt.Errorf("schema: nil message descriptor encountered during discovery")
		}
		if _, ok := discovered[m.FullName()]; ok {
			return nil
		}
		discovered[m.FullName()] = m
		for _, f := range m.Fields() {
			switch {
			case f.IsMap():
				if vf := f.MapValue(); vf != nil && vf.Kind() == KindMessage {
					if err := walk(vf.Message()); err != nil {
						return err
					}
				}
			case f.Kind() == KindMessage:
				if err := walk(f.Message()); err != nil {
					return err
				}
			}
		}
		return nil
	}
	if err := walk(root); err != nil {
		return nil, err
	}

	method := &Method{Root: root, tables: make(map[string]*NameTable, len(discovered))}

	var g errgroup.Group
	var mu sync.Mutex
	for _, desc := range discovered {
		desc := desc
		g.Go(func() error {
			table := newNameTable(desc)
			mu.Lock()
			method.tables[desc.FullName()] = table
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return method, nil
}
