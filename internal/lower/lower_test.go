package lower

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"header-generator/internal/diagnostic"
	"header-generator/internal/ir"
	"header-generator/internal/syntax"
)

func i64(v int64) *int64 { return &v }

func codes(ds []diagnostic.Diagnostic) []string {
	out := make([]string, 0, len(ds))
	for _, d := range ds {
		out = append(out, d.Code)
	}
	return out
}

func TestLower_EnumFixture(t *testing.T) {
	f, err := syntax.LoadFile("testdata/enum.yaml")
	require.NoError(t, err)

	res, err := Lower(f.Items, Options{IncludeOpaque: true})
	require.NoError(t, err)

	lib := res.Library
	require.Len(t, lib.Enums, 3)
	wantReprs := []ir.Repr{ir.ReprU32, ir.ReprU16, ir.ReprU8}
	for i, e := range lib.Enums {
		assert.Equal(t, wantReprs[i], e.Repr, e.Name)
		values := make([]int64, 0, len(e.Values))
		for _, v := range e.Values {
			values = append(values, v.Value)
		}
		assert.Equal(t, []int64{0, 2, 3, 5}, values, e.Name)
	}
	assert.Equal(t, "a3", lib.Enums[0].Values[2].Name)

	require.Len(t, lib.Opaques, 1)
	assert.Equal(t, "Opaque", lib.Opaques[0].Name)
	assert.Empty(t, lib.Structs)

	require.Len(t, lib.Functions, 1)
	root := lib.Functions[0]
	assert.Equal(t, "root", root.Name)
	require.Len(t, root.Args, 6)
	assert.Equal(t, ir.FunctionArg{Name: "o", Type: "*mut Opaque"}, root.Args[0])
	assert.Empty(t, root.Ret)

	assert.Equal(t, []string{diagnostic.CodeEnumWithoutTagRepr, diagnostic.CodeEnumWithoutTagRepr},
		codes(res.Diagnostics.Warnings))
	assert.Equal(t, []string{diagnostic.CodeStructNotReprC}, codes(res.Diagnostics.Infos))
}

func TestLower_Struct(t *testing.T) {
	items := []syntax.Item{
		{
			Ident: "Point",
			Kind:  syntax.ItemKindStruct,
			Attrs: []syntax.Attribute{
				syntax.DocComment(" A point."),
				syntax.Outer(syntax.NewList("repr", "C")),
			},
			Fields: []syntax.Field{
				{Ident: "x", Type: "f32", Attrs: []syntax.Attribute{syntax.DocComment(" horizontal")}},
				{Ident: "y", Type: "f32"},
			},
		},
		{
			Ident:  "Pair",
			Kind:   syntax.ItemKindStruct,
			Attrs:  []syntax.Attribute{syntax.Outer(syntax.NewList("repr", "C"))},
			Fields: []syntax.Field{{Type: "u8"}, {Type: "u16"}},
		},
		{Ident: "Hidden", Kind: syntax.ItemKindStruct},
	}

	res, err := Lower(items, Options{})
	require.NoError(t, err)

	require.Len(t, res.Library.Structs, 2)
	assert.Equal(t, ir.Struct{
		Name: "Point",
		Fields: []ir.StructField{
			{Name: "x", Type: "f32", Documentation: " horizontal\n"},
			{Name: "y", Type: "f32"},
		},
		Documentation: " A point.\n",
	}, res.Library.Structs[0])
	assert.Equal(t, "_0", res.Library.Structs[1].Fields[0].Name)
	assert.Equal(t, "_1", res.Library.Structs[1].Fields[1].Name)

	assert.Empty(t, res.Library.Opaques)
	require.Len(t, res.Diagnostics.Infos, 1)
	assert.Equal(t, "Hidden", res.Diagnostics.Infos[0].Item)
}

func TestLower_Enum(t *testing.T) {
	u8 := syntax.Outer(syntax.NewList("repr", "u8"))

	t.Run("C repr beats width and is skipped", func(t *testing.T) {
		res, err := Lower([]syntax.Item{{
			Ident:    "Mode",
			Kind:     syntax.ItemKindEnum,
			Attrs:    []syntax.Attribute{u8, syntax.Outer(syntax.NewList("repr", "C"))},
			Variants: []syntax.Variant{{Ident: "On"}},
		}}, Options{})
		require.NoError(t, err)
		assert.Empty(t, res.Library.Enums)
		require.Len(t, res.Diagnostics.Warnings, 1)
		assert.Contains(t, res.Diagnostics.Warnings[0].Message, "found C")
	})

	t.Run("variant docs", func(t *testing.T) {
		res, err := Lower([]syntax.Item{{
			Ident: "Level",
			Kind:  syntax.ItemKindEnum,
			Attrs: []syntax.Attribute{u8},
			Variants: []syntax.Variant{
				{Ident: "Low", Attrs: []syntax.Attribute{syntax.DocComment(" quiet")}},
				{Ident: "High", Discriminant: i64(255)},
			},
		}}, Options{})
		require.NoError(t, err)
		require.Len(t, res.Library.Enums, 1)
		assert.Equal(t, []ir.EnumValue{
			{Name: "Low", Value: 0, Documentation: " quiet\n"},
			{Name: "High", Value: 255},
		}, res.Library.Enums[0].Values)
	})

	t.Run("data variant aborts", func(t *testing.T) {
		res, err := Lower([]syntax.Item{
			{Ident: "Ok", Kind: syntax.ItemKindEnum, Attrs: []syntax.Attribute{u8}, Variants: []syntax.Variant{{Ident: "A"}}},
			{
				Ident:    "Shape",
				Kind:     syntax.ItemKindEnum,
				Attrs:    []syntax.Attribute{u8},
				Variants: []syntax.Variant{{Ident: "Circle", Fields: []syntax.Field{{Type: "f32"}}}},
			},
		}, Options{})
		require.ErrorIs(t, err, ErrUnsupportedVariant)
		assert.Nil(t, res)
		assert.Contains(t, err.Error(), "enum Shape variant Circle")
	})

	t.Run("discriminant overflow", func(t *testing.T) {
		_, err := Lower([]syntax.Item{{
			Ident:    "Big",
			Kind:     syntax.ItemKindEnum,
			Attrs:    []syntax.Attribute{u8},
			Variants: []syntax.Variant{{Ident: "Last", Discriminant: i64(255)}, {Ident: "Over"}},
		}}, Options{})
		require.ErrorIs(t, err, ErrDiscriminantRange)
		assert.Contains(t, err.Error(), "256 does not fit uint8_t")
	})
}

func TestLower_Functions(t *testing.T) {
	noMangle := syntax.Outer(syntax.Word{Ident: "no_mangle"})
	c := &syntax.Abi{Name: "C"}

	items := []syntax.Item{
		{Ident: "exported", Kind: syntax.ItemKindFn, Abi: c, Attrs: []syntax.Attribute{noMangle}, Output: "bool"},
		{Ident: "mangled", Kind: syntax.ItemKindFn, Abi: c},
		{Ident: "rust_abi", Kind: syntax.ItemKindFn, Attrs: []syntax.Attribute{noMangle}},
		{Ident: "inner_marker", Kind: syntax.ItemKindFn, Abi: c, Attrs: []syntax.Attribute{syntax.Inner(syntax.Word{Ident: "no_mangle"})}},
		{
			Ident: "ffi",
			Kind:  syntax.ItemKindForeignMod,
			Abi:   c,
			ForeignItems: []syntax.ForeignItem{
				{Ident: "open", Kind: syntax.ForeignItemFn, Attrs: []syntax.Attribute{syntax.DocComment(" Opens.")}},
				{Ident: "COUNTER", Kind: syntax.ForeignItemStatic, Output: "u32"},
			},
		},
		{Ident: "sys", Kind: syntax.ItemKindForeignMod, Abi: &syntax.Abi{Name: "system"}},
		{Ident: "plain", Kind: syntax.ItemKindForeignMod},
		{Ident: "Other", Kind: syntax.ItemKindOther},
	}

	res, err := Lower(items, Options{})
	require.NoError(t, err)

	require.Len(t, res.Library.Functions, 2)
	assert.Equal(t, "exported", res.Library.Functions[0].Name)
	assert.Equal(t, "bool", res.Library.Functions[0].Ret)
	assert.Equal(t, ir.Function{Name: "open", Args: []ir.FunctionArg{}, Documentation: " Opens.\n"}, res.Library.Functions[1])

	assert.Equal(t, []string{diagnostic.CodeForeignModNotC, diagnostic.CodeForeignModNotC}, codes(res.Diagnostics.Warnings))
	assert.Contains(t, res.Diagnostics.Warnings[1].Message, "<none>")
	assert.Equal(t, []string{
		diagnostic.CodeFnNotExported,
		diagnostic.CodeFnNotExported,
		diagnostic.CodeFnNotExported,
		diagnostic.CodeForeignStatic,
		diagnostic.CodeUnsupportedItem,
	}, codes(res.Diagnostics.Infos))

	static := res.Diagnostics.Infos[3]
	assert.Equal(t, "ffi", static.Item)
	assert.Equal(t, "static COUNTER", static.Path)
}

func TestLower_OmitDocumentation(t *testing.T) {
	doc := syntax.DocComment(" documented")
	items := []syntax.Item{
		{
			Ident:  "Point",
			Kind:   syntax.ItemKindStruct,
			Attrs:  []syntax.Attribute{doc, syntax.Outer(syntax.NewList("repr", "C"))},
			Fields: []syntax.Field{{Ident: "x", Type: "f32", Attrs: []syntax.Attribute{doc}}},
		},
		{
			Ident:    "Mode",
			Kind:     syntax.ItemKindEnum,
			Attrs:    []syntax.Attribute{doc, syntax.Outer(syntax.NewList("repr", "u8"))},
			Variants: []syntax.Variant{{Ident: "On", Attrs: []syntax.Attribute{doc}}},
		},
		{Ident: "Hidden", Kind: syntax.ItemKindStruct, Attrs: []syntax.Attribute{doc}},
		{
			Ident: "ffi",
			Kind:  syntax.ItemKindForeignMod,
			Abi:   &syntax.Abi{Name: "C"},
			ForeignItems: []syntax.ForeignItem{
				{Ident: "open", Kind: syntax.ForeignItemFn, Attrs: []syntax.Attribute{doc}},
			},
		},
	}

	res, err := Lower(items, Options{IncludeOpaque: true, OmitDocumentation: true})
	require.NoError(t, err)
	require.Equal(t, 4, res.Library.Len())

	assert.Empty(t, res.Library.Structs[0].Documentation)
	assert.Empty(t, res.Library.Structs[0].Fields[0].Documentation)
	assert.Empty(t, res.Library.Enums[0].Documentation)
	assert.Empty(t, res.Library.Enums[0].Values[0].Documentation)
	assert.Empty(t, res.Library.Opaques[0].Documentation)
	assert.Empty(t, res.Library.Functions[0].Documentation)

	kept, err := Lower(items, Options{IncludeOpaque: true})
	require.NoError(t, err)
	assert.Equal(t, " documented\n", kept.Library.Functions[0].Documentation)
}

func TestLowerer_ResetsDiagnostics(t *testing.T) {
	l := NewLowerer(Options{})
	items := []syntax.Item{{Ident: "Other", Kind: syntax.ItemKindOther}}

	first, err := l.Lower(items)
	require.NoError(t, err)
	second, err := l.Lower(items)
	require.NoError(t, err)

	assert.Len(t, first.Diagnostics.Infos, 1)
	assert.Len(t, second.Diagnostics.Infos, 1)
	assert.Zero(t, second.Library.Len())
}
