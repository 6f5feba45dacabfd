package format

import (
	"io"

	"go.followtheprocess.codes/grub/internal/render"
	"go.followtheprocess.codes/grub/internal/restaurant"
)

// TextExporter is an [Exporter] that writes results in the same plain text layout
// as the saved results files.
type TextExporter struct{}

// Export implements [Exporter] for [TextExporter].
func (t TextExporter) Export(w io.Writer, results restaurant.Results) error {
	_, err := io.WriteString(w, render.File(results.Restaurants, results.Postcode))
	return err
}
