package block

import (
	"encoding/json"
	"slices"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestBlock_JSONPreservesExtensions(t *testing.T) {
	input := `{"credits":5,"id":"algebra","color":"blue","title":{"de":"Algebra","en":"Algebra"},"prerequisites":["arithmetic"],"parents":[],"links":{"wiki":"x"},"meta":{"z":1,"a":{"y":[3,1],"b":null}},"big":12345678901234567890,"id64":9007199254740993}`

	var b Block
	if err := json.Unmarshal([]byte(input), &b); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	if b.ID != "algebra" || b.Title.EN != "Algebra" {
		t.Errorf("typed fields = %+v", b)
	}
	if !slices.Equal(b.Prerequisites, []string{"arithmetic"}) {
		t.Errorf("Prerequisites = %v", b.Prerequisites)
	}
	if got, want := b.Extensions.Keys(), []string{"credits", "color", "links", "meta", "big", "id64"}; !slices.Equal(got, want) {
		t.Errorf("extension keys = %v, want %v", got, want)
	}

	out, err := json.Marshal(b)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	want := `{"id":"algebra","title":{"de":"Algebra","en":"Algebra"},"prerequisites":["arithmetic"],"parents":[],"credits":5,"color":"blue","links":{"wiki":"x"},"meta":{"z":1,"a":{"y":[3,1],"b":null}},"big":12345678901234567890,"id64":9007199254740993}`
	if string(out) != want {
		t.Errorf("Marshal =\n%s\nwant\n%s", out, want)
	}
}

func TestBlock_MarshalEmptyRelationships(t *testing.T) {
	out, err := json.Marshal(Block{ID: "a", Title: Title{DE: "A", EN: "A"}})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if !strings.Contains(string(out), `"prerequisites":[]`) || !strings.Contains(string(out), `"parents":[]`) {
		t.Errorf("Marshal = %s, want empty arrays", out)
	}
}

func TestBlock_UnmarshalJSONErrors(t *testing.T) {
	tests := []string{
		`{"id": 5}`,
		`{"id": "a", "prerequisites": "b"}`,
	}
	for _, input := range tests {
		var b Block
		if err := json.Unmarshal([]byte(input), &b); err == nil {
			t.Errorf("Unmarshal(%s) expected error", input)
		}
	}
}

func TestBlock_YAML(t *testing.T) {
	input := `
- id: algebra
  weight: 3
  title:
    de: Algebra
    en: Algebra
  prerequisites: [arithmetic]
  tags: [math]
- id: arithmetic
  title: {de: Arithmetik, en: Arithmetic}
`
	var blocks []Block
	if err := yaml.Unmarshal([]byte(input), &blocks); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if len(blocks) != 2 {
		t.Fatalf("len = %d, want 2", len(blocks))
	}
	if got, want := blocks[0].Extensions.Keys(), []string{"weight", "tags"}; !slices.Equal(got, want) {
		t.Errorf("extension keys = %v, want %v", got, want)
	}
	if blocks[1].Title.DE != "Arithmetik" {
		t.Errorf("title = %+v", blocks[1].Title)
	}
	if blocks[1].Extensions != nil {
		t.Errorf("block without extras has extensions %v", blocks[1].Extensions.Keys())
	}
}

func TestBlock_YAMLExtensionsToJSON(t *testing.T) {
	input := `
id: a
title: {de: A, en: A}
meta:
  z: 1
  a: [2, two, 0x10]
big: 12345678901234567890
ratio: 1.50
flag: true
note: ~
`
	var b Block
	if err := yaml.Unmarshal([]byte(input), &b); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	out, err := json.Marshal(b)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	want := `{"id":"a","title":{"de":"A","en":"A"},"prerequisites":[],"parents":[],"meta":{"z":1,"a":[2,"two",16]},"big":12345678901234567890,"ratio":1.50,"flag":true,"note":null}`
	if string(out) != want {
		t.Errorf("Marshal =\n%s\nwant\n%s", out, want)
	}
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		in   any
		want string
	}{
		{"blue", "blue"},
		{5, "5"},
		{json.RawMessage(`"x"`), "x"},
		{json.RawMessage(`12345678901234567890`), "12345678901234567890"},
		{json.RawMessage(`{"z":1,"a":2}`), `{"z":1,"a":2}`},
		{[]any{json.Number("1"), "a"}, `[1,"a"]`},
	}
	for _, tt := range tests {
		if got := FormatValue(tt.in); got != tt.want {
			t.Errorf("FormatValue(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestBlock_YAMLRejectsScalar(t *testing.T) {
	var b Block
	if err := yaml.Unmarshal([]byte(`just-a-string`), &b); err == nil {
		t.Error("expected error for scalar block")
	}
}
