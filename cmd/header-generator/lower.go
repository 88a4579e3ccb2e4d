package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"header-generator/internal/diagnostic"
	"header-generator/internal/ir"
	"header-generator/internal/lower"
	"header-generator/internal/syntax"
)

func (a *app) lowerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lower <pattern>...",
		Short: "Lower exportable declarations into the header IR",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfig(cmd)
			if err != nil {
				return err
			}

			files, err := loadInputs(a.logger, args)
			if err != nil {
				return err
			}

			var items []syntax.Item
			for _, f := range files {
				items = append(items, f.Items...)
			}

			res, err := lower.Lower(items, lower.Options{
				IncludeOpaque:     cfg.IncludeOpaque,
				OmitDocumentation: !cfg.Documentation,
			})
			if err != nil {
				return fmt.Errorf("lower: %w", err)
			}
			logDiagnostics(a.logger, res.Diagnostics)

			return render(cmd.OutOrStdout(), cfg.Format, res.Library, func(w io.Writer) error {
				return writeLibrary(w, &res.Library)
			})
		},
	}
}

func logDiagnostics(logger *slog.Logger, diags diagnostic.Diagnostics) {
	for _, d := range diags.All() {
		fields := []any{slog.String("code", d.Code), slog.String("item", d.Item)}
		if d.Path != "" {
			fields = append(fields, slog.String("path", d.Path))
		}

		if d.Severity == diagnostic.DiagnosticWarning {
			logger.Warn(d.Message, fields...)
		} else {
			logger.Debug(d.Message, fields...)
		}
	}
}

// writeLibrary prints a one-line summary per lowered item, preceded by its docs.
func writeLibrary(w io.Writer, lib *ir.Library) error {
	var b strings.Builder

	doc := func(text string) {
		if text == "" {
			return
		}
		for _, line := range strings.SplitAfter(text, "\n") {
			if line != "" {
				b.WriteString("///" + line)
			}
		}
	}

	for _, o := range lib.Opaques {
		doc(o.Documentation)
		fmt.Fprintf(&b, "opaque %s\n", o.Name)
	}
	for _, e := range lib.Enums {
		doc(e.Documentation)
		fmt.Fprintf(&b, "enum %s : %s {", e.Name, e.Repr.CType())
		for i, v := range e.Values {
			if i > 0 {
				b.WriteString(",")
			}
			fmt.Fprintf(&b, " %s = %d", v.Name, v.Value)
		}
		b.WriteString(" }\n")
	}
	for _, s := range lib.Structs {
		doc(s.Documentation)
		fields := make([]string, 0, len(s.Fields))
		for _, f := range s.Fields {
			fields = append(fields, f.Name+": "+f.Type)
		}
		fmt.Fprintf(&b, "struct %s { %s }\n", s.Name, strings.Join(fields, ", "))
	}
	for _, f := range lib.Functions {
		doc(f.Documentation)
		args := make([]string, 0, len(f.Args))
		for _, arg := range f.Args {
			args = append(args, arg.Name+": "+arg.Type)
		}
		ret := f.Ret
		if ret == "" {
			ret = "void"
		}
		fmt.Fprintf(&b, "fn %s(%s) -> %s\n", f.Name, strings.Join(args, ", "), ret)
	}

	_, err := io.WriteString(w, b.String())
	return err
}
