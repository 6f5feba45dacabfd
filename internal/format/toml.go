package format

import (
	"io"

	"github.com/BurntSushi/toml"
	"go.followtheprocess.codes/grub/internal/restaurant"
)

// TOMLExporter is an [Exporter] that writes results as a TOML document.
type TOMLExporter struct{}

// Export implements [Exporter] for [TOMLExporter] and exports the given results
// as a complete TOML document, each restaurant is an entry in a [[restaurants]]
// array of tables.
func (t TOMLExporter) Export(w io.Writer, results restaurant.Results) error {
	encoder := toml.NewEncoder(w)
	encoder.Indent = ""

	return encoder.Encode(results)
}
