package chartkit

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ukaji3/chartkit-go/internal/logging"
	"github.com/ukaji3/chartkit-go/pkg/chartkit/models"
)

// DefaultConfig returns the configuration of a new chart without axes.
func DefaultConfig() models.ChartConfig {
	return models.ChartConfig{
		View:   models.DefaultViewOptions(),
		Format: models.DefaultFormatConfig(),
		Style:  models.DefaultStyleOptions(),
	}
}

// LoadConfig reads a YAML chart configuration. Fields missing from the file
// keep their defaults.
func LoadConfig(path string) (*models.ChartConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseConfig(data)
}

// ParseConfig decodes a YAML chart configuration.
func ParseConfig(data []byte) (*models.ChartConfig, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return &cfg, nil
}

// SaveConfig writes cfg as YAML.
func SaveConfig(path string, cfg models.ChartConfig) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Config returns the document's configuration. Formula columns are already
// materialised in the dataset and are not reported.
func (d *Document) Config() models.ChartConfig {
	return models.ChartConfig{
		Axes:   d.Axes(),
		View:   d.view,
		Format: d.format,
		Style:  d.style,
		Series: d.SeriesStyles(),
	}
}

// Project returns the document as a saveable project.
func (d *Document) Project(name string) models.Project {
	return models.Project{
		Name:   name,
		Config: d.Config(),
		Data:   d.data,
	}
}

// ApplyConfig applies cfg to the document. Formula columns are added first so
// that the axes may refer to them. Axis settings are only applied when set.
// The document is unchanged when an error is returned.
func (d *Document) ApplyConfig(cfg models.ChartConfig) error {
	next := d.clone()
	for _, f := range cfg.Formulas {
		if _, err := next.AddFormulaColumn(f.Name, f.Expression); err != nil {
			return err
		}
	}
	if cfg.CategoryKey != "" {
		if err := next.SetCategoryKey(cfg.CategoryKey); err != nil {
			return err
		}
	}
	if cfg.ValueKeys != nil {
		for _, k := range next.Axes().ValueKeys {
			next.RemoveValueKey(k)
		}
		for _, k := range cfg.ValueKeys {
			if k == next.axes.CategoryKey {
				logging.Warnf("config lists category %q as a value key; ignored", k)
				continue
			}
			if _, err := next.AddValueKey(k); err != nil {
				return err
			}
		}
	}
	for k, st := range cfg.Series {
		if !next.axes.HasValueKey(k) {
			logging.Debugf("config styles unplotted series %q; ignored", k)
			continue
		}
		if err := next.SetSeriesStyle(k, st); err != nil {
			return err
		}
	}
	if err := next.SetSortOrder(cfg.View.SortOrder); err != nil {
		return err
	}
	if cfg.View.RangePercent != 0 {
		if err := next.SetRangePercent(cfg.View.RangePercent); err != nil {
			return err
		}
	}
	if err := next.SetTransforms(cfg.View.Transforms); err != nil {
		return err
	}
	if err := next.SetFormat(cfg.Format); err != nil {
		return err
	}
	if err := next.SetStyle(cfg.Style); err != nil {
		return err
	}
	*d = *next
	return nil
}

func (d *Document) clone() *Document {
	out := *d
	out.axes = d.axes.Clone()
	out.styles = d.SeriesStyles()
	out.style.Palette = append([]string(nil), d.style.Palette...)
	return &out
}
