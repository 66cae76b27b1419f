package output

import (
	"encoding/json"

	"gopkg.in/yaml.v3"

	"github.com/ukaji3/chartkit-go/pkg/chartkit/models"
)

// ToJSON converts v to a JSON string.
func ToJSON(v any, pretty bool) (string, error) {
	var data []byte
	var err error

	if pretty {
		data, err = json.MarshalIndent(v, "", "  ")
	} else {
		data, err = json.Marshal(v)
	}

	if err != nil {
		return "", err
	}
	return string(data), nil
}

// ProjectToJSON serializes a saved project.
func ProjectToJSON(p models.Project, pretty bool) (string, error) {
	return ToJSON(p, pretty)
}

// RenderInputToJSON serializes the data handed to a renderer, for use by
// external charting front ends.
func RenderInputToJSON(in models.RenderInput, pretty bool) (string, error) {
	return ToJSON(in, pretty)
}

// ConfigToYAML serializes a chart configuration.
func ConfigToYAML(cfg models.ChartConfig) (string, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
