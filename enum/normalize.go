package enum

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
	"sync"
)

// Normalizer rewrites enumeration fields of JSON objects to their canonical
// scalar values. Each bound field is resolved with its enumeration's Parse
// policy, so "purple", "PURPLE", 2 and "2" all become 2 for an integer Color
// field.
//
// A Normalizer is safe for concurrent use.
type Normalizer struct {
	mu     sync.RWMutex
	fields map[string]Enumeration
}

// NewNormalizer creates a Normalizer with no bound fields.
func NewNormalizer() *Normalizer {
	return &Normalizer{fields: make(map[string]Enumeration)}
}

// Bind associates a top-level JSON field with an enumeration, replacing any
// previous binding for that field.
func (n *Normalizer) Bind(field string, e Enumeration) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.fields[field] = e
}

// BindAll binds several fields at once.
func (n *Normalizer) BindAll(fields map[string]Enumeration) {
	for field, e := range fields {
		n.Bind(field, e)
	}
}

// Fields returns the bound field names, sorted.
func (n *Normalizer) Fields() []string {
	n.mu.RLock()
	defer n.mu.RUnlock()

	fields := make([]string, 0, len(n.fields))
	for field := range n.fields {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fields
}

// Clear removes every binding.
func (n *Normalizer) Clear() {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.fields = make(map[string]Enumeration)
}

// Normalize parses input as a JSON object and replaces every bound field
// present in it with the canonical scalar of the instance it parses to.
// Unbound field values are kept as written, numbers included, and strings are
// not HTML-escaped. Input without bound fields is returned unchanged. A bound
// field that does not parse fails the whole call, as does anything after the
// object.
func (n *Normalizer) Normalize(input []byte) ([]byte, error) {
	n.mu.RLock()
	fields := make(map[string]Enumeration, len(n.fields))
	for field, e := range n.fields {
		fields[field] = e
	}
	n.mu.RUnlock()

	if len(fields) == 0 {
		return input, nil
	}

	dec := json.NewDecoder(bytes.NewReader(input))
	dec.UseNumber()

	var data map[string]any
	if err := dec.Decode(&data); err != nil {
		return nil, fmt.Errorf("decode input: %w", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode input: unexpected data after JSON object")
	}

	for field, e := range fields {
		raw, ok := data[field]
		if !ok {
			continue
		}
		if num, isNum := raw.(json.Number); isNum {
			raw = string(num)
		}

		inst, err := e.ParseAny(raw)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", field, err)
		}
		data[field] = inst.Scalar()
	}

	var out bytes.Buffer
	enc := json.NewEncoder(&out)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(data); err != nil {
		return nil, fmt.Errorf("encode output: %w", err)
	}
	return bytes.TrimSuffix(out.Bytes(), []byte("\n")), nil
}
