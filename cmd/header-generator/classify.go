package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"header-generator/internal/attrs"
	"header-generator/internal/syntax"
)

// classification is one output row of the classify command.
type classification struct {
	Path          string `yaml:"path"`
	Kind          string `yaml:"kind"`
	Repr          string `yaml:"repr"`
	NoMangle      bool   `yaml:"no_mangle"`
	ExternC       bool   `yaml:"extern_c"`
	Documentation string `yaml:"documentation,omitempty"`
}

func (a *app) classifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "classify <pattern>...",
		Short: "Report the attribute classification of every declaration",
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

			var rows []classification
			for _, f := range files {
				rows = append(rows, classifyItems(f.Items, cfg.Documentation)...)
			}

			return render(cmd.OutOrStdout(), cfg.Format, rows, func(w io.Writer) error {
				return writeClassifications(w, rows)
			})
		},
	}
}

// classifyItems flattens items and their members into rows, parents first.
func classifyItems(items []syntax.Item, withDocs bool) []classification {
	var rows []classification

	add := func(path, kind string, d attrs.Attributed, externC bool) {
		c := attrs.Classify(d)
		row := classification{
			Path:     path,
			Kind:     kind,
			Repr:     c.Repr.String(),
			NoMangle: c.NoMangle,
			ExternC:  externC,
		}
		if withDocs {
			row.Documentation = c.Documentation
		}
		rows = append(rows, row)
	}

	for i := range items {
		item := &items[i]
		add(item.Ident, item.Kind.String(), item, item.Abi.IsC())

		for j := range item.Fields {
			f := &item.Fields[j]
			add(memberPath(item.Ident, ".", f.Ident, j), "field", f, false)
		}
		for j := range item.Variants {
			v := &item.Variants[j]
			add(memberPath(item.Ident, "::", v.Ident, j), "variant", v, false)
			for k := range v.Fields {
				f := &v.Fields[k]
				add(memberPath(item.Ident+"::"+v.Ident, ".", f.Ident, k), "field", f, false)
			}
		}
		for j := range item.ForeignItems {
			fi := &item.ForeignItems[j]
			add(memberPath(item.Ident, "::", fi.Ident, j), "foreign "+fi.Kind.String(), fi, item.Abi.IsC())
		}
	}

	return rows
}

func memberPath(parent, sep, name string, index int) string {
	if name == "" {
		name = fmt.Sprint(index)
	}

	return parent + sep + name
}

func writeClassifications(w io.Writer, rows []classification) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "PATH\tKIND\tREPR\tNO_MANGLE\tEXTERN_C\tDOC")
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%t\t%t\t%s\n",
			r.Path, r.Kind, r.Repr, r.NoMangle, r.ExternC, firstLine(r.Documentation))
	}

	return tw.Flush()
}

func firstLine(doc string) string {
	line, _, _ := strings.Cut(doc, "\n")
	return strings.TrimSpace(line)
}
