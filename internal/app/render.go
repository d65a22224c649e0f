package app

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"text/tabwriter"

	"go.trai.ch/cargo-open/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Format selects how Info renders a location.
type Format string

// Supported formats.
const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Formats lists the supported formats.
var Formats = []Format{FormatText, FormatJSON, FormatYAML}

// Validate reports whether f is a supported format.
func (f Format) Validate() error {
	if slices.Contains(Formats, f) {
		return nil
	}
	return zerr.With(
		zerr.Wrap(domain.ErrUnknownOutputFormat, fmt.Sprintf("unknown format %q, expected text, json or yaml", string(f))),
		"format", string(f),
	)
}

// Render writes loc to w in the given format.
func Render(w io.Writer, loc domain.Location, format Format) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(loc)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(loc); err != nil {
			return zerr.Wrap(err, "failed to encode yaml")
		}
		return enc.Close()
	case FormatText:
		return renderText(w, loc)
	default:
		return format.Validate()
	}
}

func renderText(w io.Writer, loc domain.Location) error {
	tw := tabwriter.NewWriter(w, 0, 0, 1, ' ', 0)

	source := loc.Package.Source
	if source == "" {
		source = "(workspace)"
	}

	rows := [][2]string{
		{"name", loc.Package.Name},
		{"version", loc.Package.Version},
		{"source", source},
		{"project root", loc.ProjectRoot},
		{"cache root", loc.CacheRoot},
	}
	if loc.Derived != loc.Path {
		rows = append(rows, [2]string{"derived", loc.Derived})
	}
	rows = append(rows, [2]string{"path", loc.Path})

	for _, row := range rows {
		if _, err := fmt.Fprintf(tw, "%s:\t%s\n", row[0], row[1]); err != nil {
			return err
		}
	}
	return tw.Flush()
}
