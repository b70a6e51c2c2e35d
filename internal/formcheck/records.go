package formcheck

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/hangulform/binder"
)

// stdinName is the argument that reads records from standard input.
const stdinName = "-"

// decodeRecords parses one record or a list of records. Files ending in
// .json go through encoding/json; everything else is YAML, which also
// accepts JSON documents.
func decodeRecords(name string, r io.Reader) ([]binder.Record, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Join(ErrReadInput, err)
	}
	if strings.EqualFold(filepath.Ext(name), ".json") {
		return decodeJSON(data)
	}
	return decodeYAML(data)
}

func decodeJSON(data []byte) ([]binder.Record, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, errors.Join(ErrDecodeInput, err)
	}

	switch v := doc.(type) {
	case map[string]any:
		rec, err := flatten(v)
		if err != nil {
			return nil, err
		}
		return []binder.Record{rec}, nil
	case []any:
		out := make([]binder.Record, 0, len(v))
		for i, item := range v {
			m, ok := item.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("%w: item %d", ErrNotARecord, i+1)
			}
			rec, err := flatten(m)
			if err != nil {
				return nil, fmt.Errorf("item %d: %w", i+1, err)
			}
			out = append(out, rec)
		}
		return out, nil
	default:
		return nil, ErrNotARecord
	}
}

func flatten(m map[string]any) (binder.Record, error) {
	for k, v := range m {
		switch v.(type) {
		case map[string]any, []any:
			return nil, fmt.Errorf("%w: field %q", ErrNestedValue, k)
		}
	}
	return binder.Record(m), nil
}

// decodeYAML walks the node tree so scalars keep their literal text:
// a phone number written as 01012345678 must not become an integer.
func decodeYAML(data []byte) ([]binder.Record, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Join(ErrDecodeInput, err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, ErrNotARecord
	}

	root := doc.Content[0]
	switch root.Kind {
	case yaml.MappingNode:
		rec, err := yamlRecord(root)
		if err != nil {
			return nil, err
		}
		return []binder.Record{rec}, nil
	case yaml.SequenceNode:
		out := make([]binder.Record, 0, len(root.Content))
		for i, item := range root.Content {
			if item.Kind != yaml.MappingNode {
				return nil, fmt.Errorf("%w: item %d", ErrNotARecord, i+1)
			}
			rec, err := yamlRecord(item)
			if err != nil {
				return nil, fmt.Errorf("item %d: %w", i+1, err)
			}
			out = append(out, rec)
		}
		return out, nil
	default:
		return nil, ErrNotARecord
	}
}

func yamlRecord(n *yaml.Node) (binder.Record, error) {
	rec := make(binder.Record, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		key, val := n.Content[i].Value, n.Content[i+1]
		if val.Kind == yaml.AliasNode && val.Alias != nil {
			val = val.Alias
		}
		if val.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("%w: field %q", ErrNestedValue, key)
		}
		if val.Tag == "!!null" {
			rec[key] = nil
			continue
		}
		rec[key] = val.Value
	}
	return rec, nil
}
