package syntax

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"header-generator/internal/common"
	"header-generator/internal/match"
)

// File is a decoded declaration dump.
type File struct {
	Path  string
	Items []Item
}

type rawFile struct {
	Items []rawItem `yaml:"items"`
}

type rawItem struct {
	Kind         string           `yaml:"kind"`
	Name         string           `yaml:"name"`
	Attrs        []rawAttribute   `yaml:"attrs"`
	Abi          *string          `yaml:"abi"`
	Fields       []rawField       `yaml:"fields"`
	Variants     []rawVariant     `yaml:"variants"`
	ForeignItems []rawForeignItem `yaml:"foreign_items"`
	Inputs       []Arg            `yaml:"inputs"`
	Output       string           `yaml:"output"`
}

type rawForeignItem struct {
	Kind   string         `yaml:"kind"`
	Name   string         `yaml:"name"`
	Attrs  []rawAttribute `yaml:"attrs"`
	Inputs []Arg          `yaml:"inputs"`
	Output string         `yaml:"output"`
}

type rawVariant struct {
	Name         string         `yaml:"name"`
	Attrs        []rawAttribute `yaml:"attrs"`
	Fields       []rawField     `yaml:"fields"`
	Discriminant *int64         `yaml:"discriminant"`
}

type rawField struct {
	Name  string         `yaml:"name"`
	Type  string         `yaml:"type"`
	Attrs []rawAttribute `yaml:"attrs"`
}

// rawAttribute sets exactly one of Doc, Word, List, NameValue.
type rawAttribute struct {
	Style   string  `yaml:"style"`
	Doc     *string `yaml:"doc"`
	rawMeta `yaml:",inline"`
}

type rawMeta struct {
	Word      *string       `yaml:"word"`
	List      *rawList      `yaml:"list"`
	NameValue *rawNameValue `yaml:"name_value"`
}

type rawNested struct {
	rawMeta `yaml:",inline"`
	Lit     *rawLit `yaml:"lit"`
}

type rawList struct {
	Name   string      `yaml:"name"`
	Nested []rawNested `yaml:"nested"`
}

type rawNameValue struct {
	Name   string `yaml:"name"`
	rawLit `yaml:",inline"`
}

type rawLit struct {
	Str  *string `yaml:"str"`
	Int  *int64  `yaml:"int"`
	Bool *bool   `yaml:"bool"`
}

var (
	errNoPayload = errors.New("expected exactly one of word, list, name_value")
	errEmptyWord = errors.New("word must not be empty")
)

// LoadFile reads and decodes a YAML declaration dump.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read declaration file %s: %w", path, err)
	}

	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	f.Path = path

	return f, nil
}

// Parse decodes a YAML declaration dump.
func Parse(data []byte) (*File, error) {
	var raw rawFile
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse declaration YAML: %w", err)
	}

	items, err := common.TrySkipMap(raw.Items, func(r rawItem) (Item, bool, error) {
		item, err := r.convert()
		return item, err == nil, err
	})
	if err != nil {
		return nil, err
	}

	return &File{Items: items}, nil
}

func (r rawItem) convert() (Item, error) {
	kind, ok := parseItemKind(r.Kind)
	if !ok {
		return Item{}, fmt.Errorf("item %q: %w", r.Name, unknownKeyword("kind", r.Kind, itemKindList()))
	}

	item := Item{
		Ident:  r.Name,
		Kind:   kind,
		Inputs: r.Inputs,
		Output: r.Output,
	}
	if r.Abi != nil {
		item.Abi = &Abi{Name: *r.Abi}
	}

	var err error
	if item.Attrs, err = convertAttrs(r.Attrs); err != nil {
		return Item{}, fmt.Errorf("item %q: %w", r.Name, err)
	}
	if item.Fields, err = convertFields(r.Fields); err != nil {
		return Item{}, fmt.Errorf("item %q: %w", r.Name, err)
	}

	item.Variants, err = common.TrySkipMap(r.Variants, func(rv rawVariant) (Variant, bool, error) {
		v := Variant{Ident: rv.Name, Discriminant: rv.Discriminant}
		var err error
		if v.Attrs, err = convertAttrs(rv.Attrs); err != nil {
			return v, false, fmt.Errorf("variant %q: %w", rv.Name, err)
		}
		if v.Fields, err = convertFields(rv.Fields); err != nil {
			return v, false, fmt.Errorf("variant %q: %w", rv.Name, err)
		}
		return v, true, nil
	})
	if err != nil {
		return Item{}, fmt.Errorf("item %q: %w", r.Name, err)
	}

	item.ForeignItems, err = common.TrySkipMap(r.ForeignItems, func(rf rawForeignItem) (ForeignItem, bool, error) {
		fi := ForeignItem{Ident: rf.Name, Inputs: rf.Inputs, Output: rf.Output}
		switch rf.Kind {
		case "", "fn":
			fi.Kind = ForeignItemFn
		case "static":
			fi.Kind = ForeignItemStatic
		default:
			return fi, false, fmt.Errorf("foreign item %q: %w", rf.Name,
				unknownKeyword("kind", rf.Kind, []string{"fn", "static"}))
		}
		var err error
		if fi.Attrs, err = convertAttrs(rf.Attrs); err != nil {
			return fi, false, fmt.Errorf("foreign item %q: %w", rf.Name, err)
		}
		return fi, true, nil
	})
	if err != nil {
		return Item{}, fmt.Errorf("item %q: %w", r.Name, err)
	}

	return item, nil
}

// unknownKeyword reports a keyword outside the closed set, suggesting the closest one.
func unknownKeyword(what, got string, valid []string) error {
	if s, ok := match.Suggest(got, valid); ok {
		return fmt.Errorf("unknown %s %q (did you mean %q?)", what, got, s)
	}

	return fmt.Errorf("unknown %s %q", what, got)
}

func itemKindList() []string {
	names := make([]string, 0, len(itemKindNames))
	for _, name := range itemKindNames {
		names = append(names, name)
	}
	slices.Sort(names)

	return names
}

func parseItemKind(s string) (ItemKind, bool) {
	for kind, name := range itemKindNames {
		if name == s {
			return kind, true
		}
	}

	return ItemKindOther, false
}

func convertFields(raw []rawField) ([]Field, error) {
	return common.TrySkipMap(raw, func(rf rawField) (Field, bool, error) {
		attrs, err := convertAttrs(rf.Attrs)
		if err != nil {
			return Field{}, false, fmt.Errorf("field %q: %w", rf.Name, err)
		}
		return Field{Ident: rf.Name, Type: rf.Type, Attrs: attrs}, true, nil
	})
}

func convertAttrs(raw []rawAttribute) ([]Attribute, error) {
	attrs := make([]Attribute, 0, len(raw))
	for i, ra := range raw {
		attr, err := ra.convert()
		if err != nil {
			return nil, fmt.Errorf("attribute %d: %w", i, err)
		}
		attrs = append(attrs, attr)
	}

	return attrs, nil
}

func (r rawAttribute) convert() (Attribute, error) {
	var attr Attribute
	switch r.Style {
	case "", "outer":
		attr.Style = AttrStyleOuter
	case "inner":
		attr.Style = AttrStyleInner
	default:
		return attr, unknownKeyword("style", r.Style, []string{"outer", "inner"})
	}

	if r.Doc != nil {
		if !r.rawMeta.isEmpty() {
			return attr, errors.New("doc cannot be combined with another payload")
		}
		attr.Value = NameValue{Ident: "doc", Value: Str(*r.Doc)}
		attr.IsSugaredDoc = true
		return attr, nil
	}

	value, err := r.rawMeta.convert()
	if err != nil {
		return attr, err
	}
	attr.Value = value

	return attr, nil
}

func (m rawMeta) isEmpty() bool {
	return m.Word == nil && m.List == nil && m.NameValue == nil
}

func (m rawMeta) convert() (MetaItem, error) {
	set := 0
	for _, present := range []bool{m.Word != nil, m.List != nil, m.NameValue != nil} {
		if present {
			set++
		}
	}
	if set != 1 {
		return nil, errNoPayload
	}

	switch {
	case m.Word != nil:
		if *m.Word == "" {
			return nil, errEmptyWord
		}
		return Word{Ident: *m.Word}, nil

	case m.List != nil:
		nested, err := common.TrySkipMap(m.List.Nested, func(n rawNested) (NestedMetaItem, bool, error) {
			if n.Lit != nil {
				if !n.rawMeta.isEmpty() {
					return nil, false, errors.New("lit cannot be combined with another payload")
				}
				lit, err := n.Lit.convert()
				return lit, err == nil, err
			}
			meta, err := n.rawMeta.convert()
			return meta, err == nil, err
		})
		if err != nil {
			return nil, fmt.Errorf("list %q: %w", m.List.Name, err)
		}
		return List{Ident: m.List.Name, Nested: nested}, nil

	default:
		lit, err := m.NameValue.rawLit.convert()
		if err != nil {
			return nil, fmt.Errorf("name_value %q: %w", m.NameValue.Name, err)
		}
		return NameValue{Ident: m.NameValue.Name, Value: lit}, nil
	}
}

func (l rawLit) convert() (Lit, error) {
	switch {
	case l.Str != nil && l.Int == nil && l.Bool == nil:
		return Str(*l.Str), nil
	case l.Int != nil && l.Str == nil && l.Bool == nil:
		return Int(*l.Int), nil
	case l.Bool != nil && l.Str == nil && l.Int == nil:
		return Bool(*l.Bool), nil
	default:
		return nil, errors.New("expected exactly one of str, int, bool")
	}
}
