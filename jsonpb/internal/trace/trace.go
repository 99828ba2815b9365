// Package trace records a Parser's frame/state transitions for diagnostic
// dumping: a flag-gated recorder that, on completion, marshals what it
// collected to a YAML file via sigs.k8s.io/yaml.
package trace

import (
	"fmt"
	"os"

	"sigs.k8s.io/yaml"
)

// Entry is one recorded transition.
type Entry struct {
	Depth int    `json:"depth"`
	State string `json:"state"`
	Note  string `json:"note,omitempty"`
}

// Recorder accumulates Entry values during a parse and writes them as YAML
// when Flush is called (normally from Parser.Close).
type Recorder struct {
	// Path is the file Flush writes to; defaults to "trace.yaml".
	Path string

	entries []Entry
}

// New returns a Recorder with the default trace.yaml path.
func New() *Recorder {
	return &Recorder{Path: "trace.yaml"}
}

// Record appends one transition.
func (r *Recorder) Record(depth int, state, note string) {
	if r == nil {
		return
	}
	r.entries = append(r.entries, Entry{Depth: depth, State: state, Note: note})
}

// Entries returns the recorded transitions so far, for tests.
func (r *Recorder) Entries() []Entry {
	if r == nil {
		return nil
	}
	return r.entries
}

// Flush marshals the recorded transitions to Path as YAML.
func (r *Recorder) Flush() error {
	if r == nil {
		return nil
	}
	data := map[string]any{
		// Numeric prefix keeps keys in this order once YAML-marshaled.
		"1_transitions": r.entries,
	}
	out, err := yaml.Marshal(data)
	if err != nil {
		return fmt.Errorf("trace: marshal: %w", err)
	}
	return os.WriteFile(r.Path, out, 0644)
}
