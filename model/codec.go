package model

import (
	"bytes"
	"encoding/json"
	"fmt"

	orderedmap "github.com/wk8/go-ordered-map/v2"
	"gopkg.in/yaml.v3"
)

// encodeJSON marshals v leaving '&', '<' and '>' as they are.
func encodeJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// marshalObject writes om as a JSON object in insertion order.
func marshalObject[V any](om *orderedmap.OrderedMap[string, V]) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	if om != nil {
		for pair := om.Oldest(); pair != nil; pair = pair.Next() {
			if buf.Len() > 1 {
				buf.WriteByte(',')
			}
			key, err := encodeJSON(pair.Key)
			if err != nil {
				return nil, err
			}
			val, err := encodeJSON(pair.Value)
			if err != nil {
				return nil, fmt.Errorf("%q: %w", pair.Key, err)
			}
			buf.Write(key)
			buf.WriteByte(':')
			buf.Write(val)
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// unmarshalObject reads a JSON object into a new ordered map. A repeated key
// keeps its first position and takes the last value.
func unmarshalObject[V any](data []byte) (*orderedmap.OrderedMap[string, V], error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] != '{' {
		return nil, fmt.Errorf("%w, got %.16s", ErrNotObject, data)
	}
	om := orderedmap.New[string, V]()
	if err := om.UnmarshalJSON(data); err != nil {
		return nil, err
	}
	return om, nil
}

// unmarshalMapping is unmarshalObject for YAML mappings.
func unmarshalMapping[V any](value *yaml.Node) (*orderedmap.OrderedMap[string, V], error) {
	if value.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w at line %d", ErrNotObject, value.Line)
	}
	om := orderedmap.New[string, V]()
	if err := om.UnmarshalYAML(value); err != nil {
		return nil, err
	}
	return om, nil
}

// requireObjects rejects days that were null in the document.
func requireObjects(om *orderedmap.OrderedMap[string, *DaySchedule]) error {
	for pair := om.Oldest(); pair != nil; pair = pair.Next() {
		if pair.Value == nil {
			return fmt.Errorf("day %q: %w", pair.Key, ErrNotObject)
		}
	}
	return nil
}
