package format

import (
	"io"

	"go.followtheprocess.codes/grub/internal/restaurant"
	"go.yaml.in/yaml/v4"
)

const yamlIndent = 2

// YAMLExporter is an [Exporter] that writes results as a YAML document.
type YAMLExporter struct{}

// Export implements [Exporter] for [YAMLExporter] and exports the given results as
// a complete YAML document.
func (y YAMLExporter) Export(w io.Writer, results restaurant.Results) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(yamlIndent)

	if err := encoder.Encode(results); err != nil {
		return err
	}

	return encoder.Close()
}
