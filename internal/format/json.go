package format

import (
	"encoding/json"
	"io"

	"go.followtheprocess.codes/grub/internal/restaurant"
)

// JSONExporter is an [Exporter] that writes results as a JSON document.
type JSONExporter struct{}

// Export implements [Exporter] for [JSONExporter] and exports the given results
// as a complete JSON document.
func (j JSONExporter) Export(w io.Writer, results restaurant.Results) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	return encoder.Encode(results)
}
