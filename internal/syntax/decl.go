package syntax

import (
	"header-generator/internal/common"
)

// ItemKind is the kind of a top-level item.
type ItemKind int

const (
	ItemKindOther      ItemKind = iota // anything the generator does not model
	ItemKindStruct                     // struct with named or positional fields
	ItemKindEnum                       // enum with variants
	ItemKindFn                         // free function
	ItemKindForeignMod                 // extern block of foreign items
)

var itemKindNames = map[ItemKind]string{
	ItemKindOther:      "other",
	ItemKindStruct:     "struct",
	ItemKindEnum:       "enum",
	ItemKindFn:         "fn",
	ItemKindForeignMod: "foreign_mod",
}

// String returns the dump-format name of the kind.
func (k ItemKind) String() string {
	if name, ok := itemKindNames[k]; ok {
		return name
	}

	return common.UnknownStr
}

// ForeignItemKind is the kind of an item declared inside an extern block.
type ForeignItemKind int

const (
	ForeignItemFn ForeignItemKind = iota
	ForeignItemStatic
)

// String returns the dump-format name of the kind.
func (k ForeignItemKind) String() string {
	switch k {
	case ForeignItemFn:
		return "fn"
	case ForeignItemStatic:
		return "static"
	default:
		return common.UnknownStr
	}
}

// Arg is a function parameter. Type is kept as written by the front-end.
type Arg struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`
}

// Item is a top-level declaration.
type Item struct {
	Ident string
	Kind  ItemKind
	Attrs []Attribute
	Abi   *Abi // fn and foreign_mod only

	Fields       []Field       // struct only
	Variants     []Variant     // enum only
	ForeignItems []ForeignItem // foreign_mod only

	Inputs []Arg  // fn only
	Output string // fn only, empty for no return value
}

// ForeignItem is a function or static declared in an extern block.
type ForeignItem struct {
	Ident  string
	Kind   ForeignItemKind
	Attrs  []Attribute
	Inputs []Arg
	Output string // return type for fns, value type for statics
}

// Variant is an enum variant. Unit variants have no fields.
type Variant struct {
	Ident        string
	Attrs        []Attribute
	Fields       []Field
	Discriminant *int64
}

// Field is a struct or variant field. Ident is empty for positional fields.
type Field struct {
	Ident string
	Type  string
	Attrs []Attribute
}

// Attributes returns the item's own attributes.
func (i *Item) Attributes() []Attribute { return i.Attrs }

// Attributes returns the foreign item's own attributes.
func (f *ForeignItem) Attributes() []Attribute { return f.Attrs }

// Attributes returns the variant's own attributes.
func (v *Variant) Attributes() []Attribute { return v.Attrs }

// Attributes returns the field's own attributes.
func (f *Field) Attributes() []Attribute { return f.Attrs }

// IsUnit reports whether the variant carries no data.
func (v *Variant) IsUnit() bool {
	return common.IsEmpty(v.Fields)
}
