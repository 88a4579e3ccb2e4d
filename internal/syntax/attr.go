package syntax

import (
	"strconv"

	"header-generator/internal/common"
)

// AttrStyle tells whether an attribute decorates the following item (outer)
// or the enclosing one (inner).
type AttrStyle int

const (
	AttrStyleOuter AttrStyle = iota // #[...]
	AttrStyleInner                  // #![...]
)

// String returns a human-readable style name.
func (s AttrStyle) String() string {
	switch s {
	case AttrStyleOuter:
		return "outer"
	case AttrStyleInner:
		return "inner"
	default:
		return common.UnknownStr
	}
}

// Attribute is a single annotation attached to a declaration.
type Attribute struct {
	Style        AttrStyle
	Value        MetaItem
	IsSugaredDoc bool // written as a doc comment rather than #[doc = "..."]
}

// IsOuter reports whether the attribute decorates the following item.
func (a Attribute) IsOuter() bool {
	return a.Style == AttrStyleOuter
}

// DocComment builds the attribute a front-end emits for a "///" comment line.
func DocComment(text string) Attribute {
	return Attribute{
		Style:        AttrStyleOuter,
		Value:        NameValue{Ident: "doc", Value: Str(text)},
		IsSugaredDoc: true,
	}
}

// Outer wraps a payload into an outer attribute.
func Outer(value MetaItem) Attribute {
	return Attribute{Style: AttrStyleOuter, Value: value}
}

// Inner wraps a payload into an inner attribute.
func Inner(value MetaItem) Attribute {
	return Attribute{Style: AttrStyleInner, Value: value}
}

// MetaItem is the payload of an attribute. The set of implementations is closed.
type MetaItem interface {
	NestedMetaItem
	Name() string
	metaItem()
}

// NestedMetaItem is an argument of a List: either a MetaItem or a Lit.
type NestedMetaItem interface {
	nestedMetaItem()
}

// Word is a bare identifier, e.g. no_mangle.
type Word struct {
	Ident string
}

// List is an identifier followed by parenthesized arguments, e.g. repr(C).
type List struct {
	Ident  string
	Nested []NestedMetaItem
}

// NameValue is an identifier paired with a literal, e.g. doc = "text".
type NameValue struct {
	Ident string
	Value Lit
}

func (w Word) Name() string      { return w.Ident }
func (l List) Name() string      { return l.Ident }
func (n NameValue) Name() string { return n.Ident }

func (Word) metaItem()      {}
func (List) metaItem()      {}
func (NameValue) metaItem() {}

func (Word) nestedMetaItem()      {}
func (List) nestedMetaItem()      {}
func (NameValue) nestedMetaItem() {}

// NewList builds a List whose arguments are all bare words.
func NewList(name string, words ...string) List {
	nested := make([]NestedMetaItem, 0, len(words))
	for _, w := range words {
		nested = append(nested, Word{Ident: w})
	}

	return List{Ident: name, Nested: nested}
}

// Lit is a literal value. Implementations are comparable with ==.
type Lit interface {
	NestedMetaItem
	String() string
	lit()
}

// Str is a string literal.
type Str string

// Int is an integer literal.
type Int int64

// Bool is a boolean literal.
type Bool bool

func (s Str) String() string  { return strconv.Quote(string(s)) }
func (i Int) String() string  { return strconv.FormatInt(int64(i), 10) }
func (b Bool) String() string { return strconv.FormatBool(bool(b)) }

func (Str) lit()  {}
func (Int) lit()  {}
func (Bool) lit() {}

func (Str) nestedMetaItem()  {}
func (Int) nestedMetaItem()  {}
func (Bool) nestedMetaItem() {}

// Equal reports whether two payloads are structurally identical.
func Equal(a, b MetaItem) bool {
	switch x := a.(type) {
	case Word:
		y, ok := b.(Word)
		return ok && x == y

	case NameValue:
		y, ok := b.(NameValue)
		return ok && x.Ident == y.Ident && x.Value == y.Value

	case List:
		y, ok := b.(List)
		if !ok || x.Ident != y.Ident || len(x.Nested) != len(y.Nested) {
			return false
		}
		for i := range x.Nested {
			if !equalNested(x.Nested[i], y.Nested[i]) {
				return false
			}
		}
		return true

	default:
		return false
	}
}

func equalNested(a, b NestedMetaItem) bool {
	switch x := a.(type) {
	case MetaItem:
		y, ok := b.(MetaItem)
		return ok && Equal(x, y)
	case Lit:
		y, ok := b.(Lit)
		return ok && x == y
	default:
		return false
	}
}
