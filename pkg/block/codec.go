package block

import (
	"encoding/json"
	"fmt"
	"strconv"

	orderedmap "github.com/wk8/go-ordered-map/v2"
	"gopkg.in/yaml.v3"
)

// MarshalJSON writes the typed fields first, then every extension in order.
// Relationship arrays are always present, even when empty.
func (b Block) MarshalJSON() ([]byte, error) {
	out := orderedmap.New[string, any]()
	out.Set(KeyID, b.ID)
	out.Set(KeyTitle, b.Title)
	out.Set(KeyPrerequisites, nonNil(b.Prerequisites))
	out.Set(KeyParents, nonNil(b.Parents))
	for k, v := range b.Extensions.All() {
		if isTypedKey(k) {
			continue
		}
		out.Set(k, v)
	}
	return json.Marshal(out)
}

// UnmarshalJSON reads the typed fields and keeps every other key, in input
// order, in Extensions. Extension values are stored as json.RawMessage and
// written back unchanged.
func (b *Block) UnmarshalJSON(data []byte) error {
	fields := orderedmap.New[string, json.RawMessage]()
	if err := json.Unmarshal(data, fields); err != nil {
		return err
	}

	*b = Block{}
	for pair := fields.Oldest(); pair != nil; pair = pair.Next() {
		var err error
		switch pair.Key {
		case KeyID:
			err = json.Unmarshal(pair.Value, &b.ID)
		case KeyTitle:
			err = json.Unmarshal(pair.Value, &b.Title)
		case KeyPrerequisites:
			err = json.Unmarshal(pair.Value, &b.Prerequisites)
		case KeyParents:
			err = json.Unmarshal(pair.Value, &b.Parents)
		default:
			b.extensions().Set(pair.Key, pair.Value)
		}
		if err != nil {
			return fmt.Errorf("field %s: %w", pair.Key, err)
		}
	}
	return nil
}

// UnmarshalYAML reads a block from a YAML mapping, preserving the order of
// extension keys. Nested mappings become ordered maps and numbers keep
// their literal text, so extensions marshal to JSON without reordering or
// rounding.
func (b *Block) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: block must be a mapping", node.Line)
	}

	*b = Block{}
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i].Value, node.Content[i+1]
		var err error
		switch key {
		case KeyID:
			err = value.Decode(&b.ID)
		case KeyTitle:
			err = value.Decode(&b.Title)
		case KeyPrerequisites:
			err = value.Decode(&b.Prerequisites)
		case KeyParents:
			err = value.Decode(&b.Parents)
		default:
			var v any
			if v, err = yamlValue(value); err == nil {
				b.extensions().Set(key, v)
			}
		}
		if err != nil {
			return fmt.Errorf("line %d: field %s: %w", value.Line, key, err)
		}
	}
	return nil
}

// yamlValue converts a YAML node into a value that encoding/json writes in
// document order: mappings become ordered maps and numeric scalars become
// json.Number.
func yamlValue(node *yaml.Node) (any, error) {
	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			return nil, nil
		}
		return yamlValue(node.Content[0])
	case yaml.AliasNode:
		return yamlValue(node.Alias)
	case yaml.MappingNode:
		m := orderedmap.New[string, any]()
		for i := 0; i+1 < len(node.Content); i += 2 {
			k := node.Content[i]
			if k.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("line %d: mapping key must be a scalar", k.Line)
			}
			v, err := yamlValue(node.Content[i+1])
			if err != nil {
				return nil, err
			}
			m.Set(k.Value, v)
		}
		return m, nil
	case yaml.SequenceNode:
		out := make([]any, 0, len(node.Content))
		for _, n := range node.Content {
			v, err := yamlValue(n)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
		return out, nil
	}

	switch node.ShortTag() {
	case "!!str":
		return node.Value, nil
	case "!!int", "!!float":
		if json.Valid([]byte(node.Value)) {
			return json.Number(node.Value), nil
		}
		// 0x1F, 1_000 and friends: let yaml.v3 resolve the value.
		var i int64
		if err := node.Decode(&i); err == nil {
			return json.Number(strconv.FormatInt(i, 10)), nil
		}
	}
	var v any
	err := node.Decode(&v)
	return v, err
}

func (b *Block) extensions() *Extensions {
	if b.Extensions == nil {
		b.Extensions = NewExtensions()
	}
	return b.Extensions
}

func isTypedKey(k string) bool {
	switch k {
	case KeyID, KeyTitle, KeyPrerequisites, KeyParents:
		return true
	}
	return false
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// FormatValue renders an extension value as plain text. Strings are printed
// without quotes; everything else is printed as compact JSON.
func FormatValue(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	var s string
	if json.Unmarshal(data, &s) == nil {
		return s
	}
	return string(data)
}
