package diagnostic

import (
	"fmt"
	"strings"

	"header-generator/internal/common"
)

// Codes reported while lowering declarations.
const (
	CodeEnumWithoutTagRepr = "enum-without-tag-repr"
	CodeStructNotReprC     = "struct-not-repr-c"
	CodeFnNotExported      = "fn-not-exported"
	CodeForeignModNotC     = "foreign-mod-not-c"
	CodeForeignStatic      = "foreign-static"
	CodeUnsupportedItem    = "unsupported-item"
)

// Diagnostics holds the non-fatal findings from lowering. Hard failures are
// returned as errors instead.
type Diagnostics struct {
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity DiagnosticSeverity
	// Code is a unique identifier for this type of diagnostic.
	Code string
	// Message is the human-readable description.
	Message string
	// Item names the declaration this relates to (if any).
	Item string
	// Path locates a member within Item, e.g. "static COUNTER" (if any).
	Path string
}

// DiagnosticSeverity represents the severity level of a diagnostic.
type DiagnosticSeverity int

const (
	DiagnosticInfo DiagnosticSeverity = iota
	DiagnosticWarning
)

// String returns a human-readable severity name.
func (s DiagnosticSeverity) String() string {
	switch s {
	case DiagnosticInfo:
		return "info"
	case DiagnosticWarning:
		return "warning"
	default:
		return common.UnknownStr
	}
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message, item, path string) {
	d.Warnings = append(d.Warnings, Diagnostic{
		Severity: DiagnosticWarning,
		Code:     code,
		Message:  message,
		Item:     item,
		Path:     path,
	})
}

// AddInfo adds an info diagnostic.
func (d *Diagnostics) AddInfo(code, message, item, path string) {
	d.Infos = append(d.Infos, Diagnostic{
		Severity: DiagnosticInfo,
		Code:     code,
		Message:  message,
		Item:     item,
		Path:     path,
	})
}

// All returns warnings followed by infos.
func (d *Diagnostics) All() []Diagnostic {
	all := make([]Diagnostic, 0, len(d.Warnings)+len(d.Infos))
	all = append(all, d.Warnings...)

	return append(all, d.Infos...)
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	var prefix []string
	if d.Item != "" {
		prefix = append(prefix, d.Item)
	}

	if d.Path != "" {
		prefix = append(prefix, d.Path)
	}

	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + ": " + msg
	}

	return msg
}
