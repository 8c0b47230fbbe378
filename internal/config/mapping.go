package config

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Entry is a single key/value pair of a Mapping.
type Entry struct {
	Key   string
	Value string
}

// Mapping is a string-to-string map that remembers the order keys appear in
// the config file. Keyword precedence depends on that order.
type Mapping []Entry

// Get returns the value stored under key.
func (m Mapping) Get(key string) (string, bool) {
	for _, e := range m {
		if e.Key == key {
			return e.Value, true
		}
	}
	return "", false
}

// Values returns the values in file order.
func (m Mapping) Values() []string {
	out := make([]string, len(m))
	for i, e := range m {
		out[i] = e.Value
	}
	return out
}

// UnmarshalJSON decodes a JSON object while keeping its key order.
func (m *Mapping) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		*m = nil
		return nil
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("expected a JSON object, got %v", tok)
	}

	var out Mapping
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("expected an object key, got %v", tok)
		}
		var val string
		if err := dec.Decode(&val); err != nil {
			return fmt.Errorf("value for %q: %w", key, err)
		}
		out = append(out, Entry{Key: key, Value: val})
	}

	if _, err := dec.Token(); err != nil {
		return err
	}

	*m = out
	return nil
}

// UnmarshalYAML decodes a YAML mapping node while keeping its key order.
func (m *Mapping) UnmarshalYAML(node *yaml.Node) error {
	if node.Tag == "!!null" {
		*m = nil
		return nil
	}
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: expected a mapping", node.Line)
	}

	out := make(Mapping, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		var e Entry
		if err := node.Content[i].Decode(&e.Key); err != nil {
			return fmt.Errorf("line %d: decoding key: %w", node.Content[i].Line, err)
		}
		if err := node.Content[i+1].Decode(&e.Value); err != nil {
			return fmt.Errorf("line %d: value for %q: %w", node.Content[i+1].Line, e.Key, err)
		}
		out = append(out, e)
	}

	*m = out
	return nil
}
