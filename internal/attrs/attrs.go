package attrs

import (
	"strings"

	"header-generator/internal/ir"
	"header-generator/internal/syntax"
)

// Attributed is implemented by every declaration that owns attributes:
// *syntax.Item, *syntax.ForeignItem, *syntax.Variant and *syntax.Field.
type Attributed interface {
	Attributes() []syntax.Attribute
}

var (
	_ Attributed = (*syntax.Item)(nil)
	_ Attributed = (*syntax.ForeignItem)(nil)
	_ Attributed = (*syntax.Variant)(nil)
	_ Attributed = (*syntax.Field)(nil)
)

var (
	noMangle = syntax.Word{Ident: "no_mangle"}
	reprC    = syntax.NewList("repr", "C")
	reprU32  = syntax.NewList("repr", "u32")
	reprU16  = syntax.NewList("repr", "u16")
	reprU8   = syntax.NewList("repr", "u8")
)

// reprOrder is the resolution order used by Repr; the first match wins.
var reprOrder = []struct {
	pattern syntax.MetaItem
	repr    ir.Repr
}{
	{reprC, ir.ReprC},
	{reprU32, ir.ReprU32},
	{reprU16, ir.ReprU16},
	{reprU8, ir.ReprU8},
}

// HasAttr reports whether d carries an outer attribute structurally equal to target.
// Inner attributes are ignored.
func HasAttr(d Attributed, target syntax.MetaItem) bool {
	for _, attr := range d.Attributes() {
		if attr.IsOuter() && syntax.Equal(attr.Value, target) {
			return true
		}
	}

	return false
}

// IsNoMangle reports #[no_mangle].
func IsNoMangle(d Attributed) bool { return HasAttr(d, noMangle) }

// IsReprC reports #[repr(C)].
func IsReprC(d Attributed) bool { return HasAttr(d, reprC) }

// IsReprU32 reports #[repr(u32)].
func IsReprU32(d Attributed) bool { return HasAttr(d, reprU32) }

// IsReprU16 reports #[repr(u16)].
func IsReprU16(d Attributed) bool { return HasAttr(d, reprU16) }

// IsReprU8 reports #[repr(u8)].
func IsReprU8(d Attributed) bool { return HasAttr(d, reprU8) }

// Repr resolves the representation of d. repr(C) wins over u32, u32 over u16,
// u16 over u8, whatever the attribute order. Without a marker it is ir.ReprNone.
func Repr(d Attributed) ir.Repr {
	for _, r := range reprOrder {
		if HasAttr(d, r.pattern) {
			return r.repr
		}
	}

	return ir.ReprNone
}

// Documentation joins the doc comments of d in declaration order, one line each.
// Only outer sugared doc attributes with a string value contribute.
func Documentation(d Attributed) string {
	var doc strings.Builder
	for _, attr := range d.Attributes() {
		if !attr.IsOuter() || !attr.IsSugaredDoc {
			continue
		}
		nv, ok := attr.Value.(syntax.NameValue)
		if !ok {
			continue
		}
		if text, ok := nv.Value.(syntax.Str); ok {
			doc.WriteString(string(text))
			doc.WriteByte('\n')
		}
	}

	return doc.String()
}

// Classification is every answer the emitter needs about one declaration.
type Classification struct {
	Repr          ir.Repr
	NoMangle      bool
	Documentation string
}

// Classify runs all queries against d.
func Classify(d Attributed) Classification {
	return Classification{
		Repr:          Repr(d),
		NoMangle:      IsNoMangle(d),
		Documentation: Documentation(d),
	}
}
