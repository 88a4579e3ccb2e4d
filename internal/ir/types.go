package ir

// Item is a lowered declaration ready for emission.
type Item interface {
	ItemName() string
	item()
}

// Library holds everything lowered from one set of declarations,
// each slice in declaration order.
type Library struct {
	Structs   []Struct
	Enums     []Enum
	Opaques   []OpaqueItem
	Functions []Function
}

// Add files an item into the matching bucket.
func (l *Library) Add(it Item) {
	switch v := it.(type) {
	case Struct:
		l.Structs = append(l.Structs, v)
	case Enum:
		l.Enums = append(l.Enums, v)
	case OpaqueItem:
		l.Opaques = append(l.Opaques, v)
	case Function:
		l.Functions = append(l.Functions, v)
	}
}

// Len returns the total number of items.
func (l *Library) Len() int {
	return len(l.Structs) + len(l.Enums) + len(l.Opaques) + len(l.Functions)
}

// Struct is a repr(C) struct emitted with its full layout.
type Struct struct {
	Name          string
	Fields        []StructField
	Documentation string
}

// StructField is one member of a Struct.
type StructField struct {
	Name          string
	Type          string
	Documentation string
}

// Enum is a fieldless enum with a fixed tag width.
type Enum struct {
	Name          string
	Repr          Repr
	Values        []EnumValue
	Documentation string
}

// EnumValue is one enumerator with its resolved discriminant.
type EnumValue struct {
	Name          string
	Value         int64
	Documentation string
}

// OpaqueItem is a type whose layout is hidden; only a forward declaration is emitted.
type OpaqueItem struct {
	Name          string
	Documentation string
}

// Function is a C-callable function.
type Function struct {
	Name          string
	Args          []FunctionArg
	Ret           string // empty for void
	Documentation string
}

// FunctionArg is one parameter of a Function.
type FunctionArg struct {
	Name string
	Type string
}

func (s Struct) ItemName() string     { return s.Name }
func (e Enum) ItemName() string       { return e.Name }
func (o OpaqueItem) ItemName() string { return o.Name }
func (f Function) ItemName() string   { return f.Name }

func (Struct) item()     {}
func (Enum) item()       {}
func (OpaqueItem) item() {}
func (Function) item()   {}
