package syntax

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDump = `
items:
  - kind: enum
    name: A
    attrs:
      - doc: " Tag width"
      - list: {name: repr, nested: [{word: u32}]}
      - style: inner
        word: allow
    variants:
      - name: a1
      - name: a2
        discriminant: 2
        attrs:
          - doc: " second"
  - kind: struct
    name: Point
    attrs:
      - list: {name: repr, nested: [{word: C}]}
      - list: {name: align, nested: [{lit: {int: 8}}]}
    fields:
      - name: x
        type: i32
      - name: y
        type: i32
        attrs:
          - name_value: {name: serde, str: "y"}
  - kind: foreign_mod
    name: ffi
    abi: C
    foreign_items:
      - name: root
        inputs:
          - {name: o, type: "*mut Opaque"}
      - name: COUNTER
        kind: static
        output: u32
  - kind: fn
    name: exported
    abi: C
    attrs:
      - word: no_mangle
    output: bool
`

func TestParse(t *testing.T) {
	f, err := Parse([]byte(sampleDump))
	require.NoError(t, err)
	require.Len(t, f.Items, 4)

	enum := f.Items[0]
	assert.Equal(t, ItemKindEnum, enum.Kind)
	assert.Equal(t, "A", enum.Ident)
	require.Len(t, enum.Attrs, 3)
	assert.Equal(t, DocComment(" Tag width"), enum.Attrs[0])
	assert.Equal(t, Outer(NewList("repr", "u32")), enum.Attrs[1])
	assert.Equal(t, Inner(Word{"allow"}), enum.Attrs[2])
	require.Len(t, enum.Variants, 2)
	assert.Nil(t, enum.Variants[0].Discriminant)
	require.NotNil(t, enum.Variants[1].Discriminant)
	assert.Equal(t, int64(2), *enum.Variants[1].Discriminant)
	assert.True(t, enum.Variants[1].IsUnit())

	st := f.Items[1]
	assert.Equal(t, ItemKindStruct, st.Kind)
	assert.Equal(t, Outer(List{Ident: "align", Nested: []NestedMetaItem{Int(8)}}), st.Attrs[1])
	require.Len(t, st.Fields, 2)
	assert.Equal(t, "i32", st.Fields[0].Type)
	assert.Equal(t, Outer(NameValue{Ident: "serde", Value: Str("y")}), st.Fields[1].Attrs[0])

	mod := f.Items[2]
	assert.True(t, mod.Abi.IsC())
	require.Len(t, mod.ForeignItems, 2)
	assert.Equal(t, ForeignItemFn, mod.ForeignItems[0].Kind)
	assert.Equal(t, []Arg{{Name: "o", Type: "*mut Opaque"}}, mod.ForeignItems[0].Inputs)
	assert.Equal(t, ForeignItemStatic, mod.ForeignItems[1].Kind)

	fn := f.Items[3]
	assert.Equal(t, ItemKindFn, fn.Kind)
	assert.Equal(t, "bool", fn.Output)
	assert.Equal(t, Outer(Word{"no_mangle"}), fn.Attrs[0])
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{"bad yaml", "items: [", "failed to parse declaration YAML"},
		{"unknown kind", "items: [{kind: trait, name: T}]", `unknown kind "trait"`},
		{"suggests kind", "items: [{kind: enm, name: E}]", `unknown kind "enm" (did you mean "enum"?)`},
		{"missing kind", "items: [{name: T}]", `unknown kind ""`},
		{"no payload", "items: [{kind: fn, name: f, attrs: [{style: outer}]}]", "expected exactly one of"},
		{
			"two payloads",
			"items: [{kind: fn, name: f, attrs: [{word: a, name_value: {name: b, str: c}}]}]",
			"expected exactly one of",
		},
		{"empty word", `items: [{kind: fn, name: f, attrs: [{word: ""}]}]`, "attribute 0: word must not be empty"},
		{
			"empty nested word",
			`items: [{kind: fn, name: f, attrs: [{list: {name: repr, nested: [{word: ""}]}}]}]`,
			`list "repr": word must not be empty`,
		},
		{"doc plus empty word", `items: [{kind: fn, name: f, attrs: [{doc: x, word: ""}]}]`, "doc cannot be combined"},
		{"doc plus word", "items: [{kind: fn, name: f, attrs: [{doc: x, word: y}]}]", "doc cannot be combined"},
		{"bad style", "items: [{kind: fn, name: f, attrs: [{style: sideways, word: y}]}]", `unknown style "sideways"`},
		{
			"bad literal",
			"items: [{kind: fn, name: f, attrs: [{name_value: {name: x}}]}]",
			"expected exactly one of str, int, bool",
		},
		{
			"nested error is located",
			"items: [{kind: enum, name: E, variants: [{name: V, attrs: [{list: {name: repr, nested: [{}]}}]}]}]",
			`item "E": variant "V": attribute 0: list "repr"`,
		},
		{
			"bad foreign kind",
			"items: [{kind: foreign_mod, name: m, foreign_items: [{name: x, kind: type}]}]",
			`foreign item "x": unknown kind "type"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.input))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "decls.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleDump), 0o644))

	f, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, path, f.Path)
	assert.Len(t, f.Items, 4)

	_, err = LoadFile(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
