package lower

import (
	"errors"
	"fmt"

	"header-generator/internal/attrs"
	"header-generator/internal/common"
	"header-generator/internal/diagnostic"
	"header-generator/internal/ir"
	"header-generator/internal/syntax"
)

var (
	// ErrUnsupportedVariant is returned for enum variants that carry data.
	ErrUnsupportedVariant = errors.New("enum variant carries data")
	// ErrDiscriminantRange is returned when a discriminant does not fit the enum's tag width.
	ErrDiscriminantRange = errors.New("discriminant out of range")
)

// Options controls which declarations are kept.
type Options struct {
	// IncludeOpaque emits structs without repr(C) as opaque forward declarations
	// instead of dropping them.
	IncludeOpaque bool
	// OmitDocumentation leaves every Documentation field of the IR empty.
	OmitDocumentation bool
}

// Result is the outcome of lowering one set of declarations.
type Result struct {
	Library     ir.Library
	Diagnostics diagnostic.Diagnostics
}

// Lowerer converts parsed declarations into IR.
type Lowerer struct {
	opts  Options
	diags diagnostic.Diagnostics
}

// NewLowerer creates a Lowerer.
func NewLowerer(opts Options) *Lowerer {
	return &Lowerer{opts: opts}
}

// Lower converts items into IR. Items that cannot cross the C boundary are
// skipped and reported as diagnostics; malformed items abort with an error.
func (l *Lowerer) Lower(items []syntax.Item) (*Result, error) {
	l.diags = diagnostic.Diagnostics{}

	groups, err := common.TrySkipMap(items, l.lowerItem)
	if err != nil {
		return nil, err
	}

	res := &Result{Diagnostics: l.diags}
	for _, group := range groups {
		for _, it := range group {
			res.Library.Add(it)
		}
	}

	return res, nil
}

func (l *Lowerer) lowerItem(item syntax.Item) ([]ir.Item, bool, error) {
	switch item.Kind {
	case syntax.ItemKindStruct:
		return l.lowerStruct(&item)
	case syntax.ItemKindEnum:
		return l.lowerEnum(&item)
	case syntax.ItemKindFn:
		return l.lowerFn(&item)
	case syntax.ItemKindForeignMod:
		return l.lowerForeignMod(&item)
	default:
		l.diags.AddInfo(diagnostic.CodeUnsupportedItem,
			fmt.Sprintf("%s items are not exported", item.Kind), item.Ident, "")
		return nil, false, nil
	}
}

func (l *Lowerer) lowerStruct(item *syntax.Item) ([]ir.Item, bool, error) {
	doc := l.doc(item)

	if !attrs.IsReprC(item) {
		if !l.opts.IncludeOpaque {
			l.diags.AddInfo(diagnostic.CodeStructNotReprC,
				"struct is not repr(C) and opaque items are disabled", item.Ident, "")
			return nil, false, nil
		}
		l.diags.AddInfo(diagnostic.CodeStructNotReprC,
			"struct is not repr(C), emitting as opaque", item.Ident, "")
		return []ir.Item{ir.OpaqueItem{Name: item.Ident, Documentation: doc}}, true, nil
	}

	index := 0
	fields, err := common.TrySkipMap(item.Fields, func(f syntax.Field) (ir.StructField, bool, error) {
		name := f.Ident
		if name == "" {
			name = fmt.Sprintf("_%d", index)
		}
		index++
		return ir.StructField{Name: name, Type: f.Type, Documentation: l.doc(&f)}, true, nil
	})
	if err != nil {
		return nil, false, err
	}

	return []ir.Item{ir.Struct{Name: item.Ident, Fields: fields, Documentation: doc}}, true, nil
}

func (l *Lowerer) lowerEnum(item *syntax.Item) ([]ir.Item, bool, error) {
	repr := attrs.Repr(item)
	if !repr.IsTagged() {
		l.diags.AddWarning(diagnostic.CodeEnumWithoutTagRepr,
			fmt.Sprintf("enum needs repr(u32), repr(u16) or repr(u8), found %s", repr), item.Ident, "")
		return nil, false, nil
	}
	lo, hi, _ := repr.Bounds()

	next := int64(0)
	values, err := common.TrySkipMap(item.Variants, func(v syntax.Variant) (ir.EnumValue, bool, error) {
		if !v.IsUnit() {
			return ir.EnumValue{}, false, fmt.Errorf("enum %s variant %s: %w", item.Ident, v.Ident, ErrUnsupportedVariant)
		}

		value := next
		if v.Discriminant != nil {
			value = *v.Discriminant
		}
		if !common.IsInRange(lo, value, hi) {
			return ir.EnumValue{}, false, fmt.Errorf("enum %s variant %s: %d does not fit %s: %w",
				item.Ident, v.Ident, value, repr.CType(), ErrDiscriminantRange)
		}
		next = value + 1

		return ir.EnumValue{Name: v.Ident, Value: value, Documentation: l.doc(&v)}, true, nil
	})
	if err != nil {
		return nil, false, err
	}

	return []ir.Item{ir.Enum{
		Name:          item.Ident,
		Repr:          repr,
		Values:        values,
		Documentation: l.doc(item),
	}}, true, nil
}

func (l *Lowerer) lowerFn(item *syntax.Item) ([]ir.Item, bool, error) {
	if !item.Abi.IsC() || !attrs.IsNoMangle(item) {
		l.diags.AddInfo(diagnostic.CodeFnNotExported,
			`function needs extern "C" and #[no_mangle]`, item.Ident, "")
		return nil, false, nil
	}

	return []ir.Item{newFunction(item.Ident, item.Inputs, item.Output, l.doc(item))}, true, nil
}

func (l *Lowerer) lowerForeignMod(item *syntax.Item) ([]ir.Item, bool, error) {
	if !item.Abi.IsC() {
		l.diags.AddWarning(diagnostic.CodeForeignModNotC,
			fmt.Sprintf("extern block has abi %q", abiName(item.Abi)), item.Ident, "")
		return nil, false, nil
	}

	fns, err := common.TrySkipMap(item.ForeignItems, func(fi syntax.ForeignItem) (ir.Item, bool, error) {
		if fi.Kind != syntax.ForeignItemFn {
			l.diags.AddInfo(diagnostic.CodeForeignStatic, "foreign statics are not exported", item.Ident, "static "+fi.Ident)
			return nil, false, nil
		}
		return newFunction(fi.Ident, fi.Inputs, fi.Output, l.doc(&fi)), true, nil
	})
	if err != nil {
		return nil, false, err
	}

	return fns, len(fns) > 0, nil
}

func (l *Lowerer) doc(d attrs.Attributed) string {
	if l.opts.OmitDocumentation {
		return ""
	}

	return attrs.Documentation(d)
}

func newFunction(name string, inputs []syntax.Arg, output, doc string) ir.Function {
	args := make([]ir.FunctionArg, 0, len(inputs))
	for _, in := range inputs {
		args = append(args, ir.FunctionArg{Name: in.Name, Type: in.Type})
	}

	return ir.Function{Name: name, Args: args, Ret: output, Documentation: doc}
}

func abiName(abi *syntax.Abi) string {
	if abi == nil {
		return "<none>"
	}

	return abi.Name
}

// Lower is a convenience wrapper around NewLowerer(opts).Lower(items).
func Lower(items []syntax.Item, opts Options) (*Result, error) {
	return NewLowerer(opts).Lower(items)
}
