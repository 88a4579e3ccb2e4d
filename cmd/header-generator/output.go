package main

import (
	"fmt"
	"io"

	"github.com/davecgh/go-spew/spew"
	"gopkg.in/yaml.v3"

	"header-generator/internal/config"
)

var dumpConfig = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// render writes v in the requested format; text uses the command's own writer.
func render(w io.Writer, format string, v any, text func(io.Writer) error) error {
	switch format {
	case config.FormatText:
		return text(w)

	case config.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to encode output: %w", err)
		}
		return enc.Close()

	case config.FormatDump:
		dumpConfig.Fdump(w, v)
		return nil

	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}
