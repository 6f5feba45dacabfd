// Package format provides mechanisms for exporting ranked restaurant results in
// formats other than the human readable listing.
//
// Notably, the package provides the [Exporter] interface for doing this in a
// format-agnostic way, along with the built in text, JSON, YAML and TOML exporters.
package format

import (
	"fmt"
	"io"

	"go.followtheprocess.codes/grub/internal/restaurant"
)

// Exporter is the interface defining a mechanism for exporting restaurant results
// into an external format.
type Exporter interface {
	// Export exports the [restaurant.Results] into an external format, written to w.
	Export(w io.Writer, results restaurant.Results) error
}

// New returns the [Exporter] for the named format.
func New(name string) (Exporter, error) {
	switch name {
	case "text", "":
		return TextExporter{}, nil
	case "json":
		return JSONExporter{}, nil
	case "yaml":
		return YAMLExporter{}, nil
	case "toml":
		return TOMLExporter{}, nil
	default:
		return nil, fmt.Errorf("invalid option for --format %q, allowed values are 'text', 'json', 'yaml', 'toml'", name)
	}
}
