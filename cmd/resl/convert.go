package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/decipher3114/go-resl/value"
)

// orderedJSON marshals a value tree to JSON while keeping map entries in
// their original order. Plain map marshaling would sort the keys.
type orderedJSON struct {
	v *value.Value
}

func (o orderedJSON) MarshalJSON() ([]byte, error) {
	v := o.v
	switch v.Tag {
	case value.TagNull:
		return []byte("null"), nil
	case value.TagBoolean:
		return json.Marshal(v.Bool)
	case value.TagInteger:
		return json.Marshal(v.Int)
	case value.TagFloat:
		if math.IsInf(v.Num, 0) || math.IsNaN(v.Num) {
			return nil, fmt.Errorf("value %v is not representable in JSON", v.Num)
		}
		return json.Marshal(v.Num)
	case value.TagString:
		return json.Marshal(v.Str)
	case value.TagList:
		var buf bytes.Buffer
		buf.WriteByte('[')
		for i, item := range v.Items {
			if i > 0 {
				buf.WriteByte(',')
			}
			b, err := orderedJSON{item}.MarshalJSON()
			if err != nil {
				return nil, err
			}
			buf.Write(b)
		}
		buf.WriteByte(']')
		return buf.Bytes(), nil
	case value.TagMap:
		var buf bytes.Buffer
		buf.WriteByte('{')
		for i, entry := range v.Entries {
			if i > 0 {
				buf.WriteByte(',')
			}
			key, err := json.Marshal(entry.Key)
			if err != nil {
				return nil, err
			}
			buf.Write(key)
			buf.WriteByte(':')
			b, err := orderedJSON{entry.Value}.MarshalJSON()
			if err != nil {
				return nil, err
			}
			buf.Write(b)
		}
		buf.WriteByte('}')
		return buf.Bytes(), nil
	}
	return nil, fmt.Errorf("unexpected value tag %d", v.Tag)
}

func valueToJSON(v *value.Value, pretty bool) (string, error) {
	data, err := orderedJSON{v}.MarshalJSON()
	if err != nil {
		return "", err
	}
	if pretty {
		var buf bytes.Buffer
		if err := json.Indent(&buf, data, "", "    "); err != nil {
			return "", err
		}
		return buf.String(), nil
	}
	return string(data), nil
}

// valueFromJSON decodes a JSON document into a value tree using the token
// stream, which preserves object key order.
func valueFromJSON(src string) (*value.Value, error) {
	dec := json.NewDecoder(strings.NewReader(src))
	dec.UseNumber()

	val, err := decodeJSONValue(dec)
	if err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		val.Release()
		return nil, fmt.Errorf("trailing content after JSON document")
	}
	return val, nil
}

func decodeJSONValue(dec *json.Decoder) (*value.Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	switch t := tok.(type) {
	case nil:
		return value.Null(), nil
	case bool:
		return value.Bool(t), nil
	case string:
		return value.Str(t), nil
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return value.Int(i), nil
		}
		f, err := t.Float64()
		if err != nil {
			return nil, err
		}
		return value.Float(f), nil
	case json.Delim:
		switch t {
		case '[':
			var items []*value.Value
			for dec.More() {
				item, err := decodeJSONValue(dec)
				if err != nil {
					value.List(items).Release()
					return nil, err
				}
				items = append(items, item)
			}
			if _, err := dec.Token(); err != nil {
				value.List(items).Release()
				return nil, err
			}
			return value.List(items), nil
		case '{':
			m := value.Map(0)
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					m.Release()
					return nil, err
				}
				key, ok := keyTok.(string)
				if !ok {
					m.Release()
					return nil, fmt.Errorf("object key is not a string: %v", keyTok)
				}
				val, err := decodeJSONValue(dec)
				if err != nil {
					m.Release()
					return nil, err
				}
				m.Set(key, val)
			}
			if _, err := dec.Token(); err != nil {
				m.Release()
				return nil, err
			}
			return m, nil
		}
	}
	return nil, fmt.Errorf("unexpected JSON token %v", tok)
}

// valueToYAML renders a value tree as YAML. MapSlice keeps entries in
// their original order.
func valueToYAML(v *value.Value) (string, error) {
	data, err := yaml.Marshal(yamlFromValue(v))
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func yamlFromValue(v *value.Value) any {
	switch v.Tag {
	case value.TagNull:
		return nil
	case value.TagBoolean:
		return v.Bool
	case value.TagInteger:
		return v.Int
	case value.TagFloat:
		return v.Num
	case value.TagString:
		return v.Str
	case value.TagList:
		items := make([]any, len(v.Items))
		for i, item := range v.Items {
			items[i] = yamlFromValue(item)
		}
		return items
	case value.TagMap:
		entries := make(yaml.MapSlice, len(v.Entries))
		for i, entry := range v.Entries {
			entries[i] = yaml.MapItem{Key: entry.Key, Value: yamlFromValue(entry.Value)}
		}
		return entries
	}
	return nil
}

func valueFromYAML(src string) (*value.Value, error) {
	var doc any
	if err := yaml.UnmarshalWithOptions([]byte(src), &doc, yaml.UseOrderedMap()); err != nil {
		return nil, err
	}
	return valueFromYAMLNode(doc)
}

func valueFromYAMLNode(node any) (*value.Value, error) {
	switch n := node.(type) {
	case nil:
		return value.Null(), nil
	case bool:
		return value.Bool(n), nil
	case string:
		return value.Str(n), nil
	case int:
		return value.Int(int64(n)), nil
	case int64:
		return value.Int(n), nil
	case uint64:
		if n > math.MaxInt64 {
			return value.Float(float64(n)), nil
		}
		return value.Int(int64(n)), nil
	case float64:
		return value.Float(n), nil
	case []any:
		items := make([]*value.Value, 0, len(n))
		for _, item := range n {
			val, err := valueFromYAMLNode(item)
			if err != nil {
				value.List(items).Release()
				return nil, err
			}
			items = append(items, val)
		}
		return value.List(items), nil
	case yaml.MapSlice:
		m := value.Map(len(n))
		for _, item := range n {
			key, ok := item.Key.(string)
			if !ok {
				m.Release()
				return nil, fmt.Errorf("mapping key is not a string: %v", item.Key)
			}
			val, err := valueFromYAMLNode(item.Value)
			if err != nil {
				m.Release()
				return nil, err
			}
			m.Set(key, val)
		}
		return m, nil
	}
	return nil, fmt.Errorf("unsupported YAML node type %T", node)
}
