// Package config loads chart layouts from YAML files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/ggplot"
	"github.com/gogpu/ggplot/chart"
	"github.com/gogpu/ggplot/style"
)

// ErrInvalid is wrapped by all validation failures.
var ErrInvalid = errors.New("config: invalid chart configuration")

// Chart is the root configuration structure.
type Chart struct {
	Width      int        `yaml:"width"`
	Height     int        `yaml:"height"`
	Backend    string     `yaml:"backend"`
	Margin     int        `yaml:"margin"`
	Caption    Caption    `yaml:"caption"`
	LabelAreas LabelAreas `yaml:"label_areas"`
	Mesh       Mesh       `yaml:"mesh"`
	Legend     Legend     `yaml:"legend"`
}

// Caption holds the chart title. An empty Text means no title.
type Caption struct {
	Text   string  `yaml:"text"`
	Family string  `yaml:"family"`
	Size   float64 `yaml:"size"`
}

// LabelAreas holds the label area sizes in pixels. Zero means absent.
type LabelAreas struct {
	Top    int `yaml:"top"`
	Bottom int `yaml:"bottom"`
	Left   int `yaml:"left"`
	Right  int `yaml:"right"`
}

// Mesh holds mesh and axis settings.
type Mesh struct {
	XLabels      int     `yaml:"x_labels"`
	YLabels      int     `yaml:"y_labels"`
	DisableXMesh bool    `yaml:"disable_x_mesh"`
	DisableYMesh bool    `yaml:"disable_y_mesh"`
	XDesc        string  `yaml:"x_desc"`
	YDesc        string  `yaml:"y_desc"`
	LabelSize    float64 `yaml:"label_size"`
}

// Legend holds legend settings.
type Legend struct {
	Enabled  bool   `yaml:"enabled"`
	Position string `yaml:"position"`
}

var knownKeys = []string{"width", "height", "backend", "margin", "caption", "label_areas", "mesh", "legend"}

// Default returns the default configuration.
func Default() *Chart {
	return &Chart{
		Width:   800,
		Height:  600,
		Backend: "png",
		Margin:  10,
		Caption: Caption{
			Family: style.DefaultFamily,
			Size:   24,
		},
		LabelAreas: LabelAreas{
			Bottom: 30,
			Left:   40,
		},
		Mesh: Mesh{
			XLabels:   10,
			YLabels:   10,
			LabelSize: 12,
		},
		Legend: Legend{
			Enabled:  true,
			Position: chart.UpperRight.String(),
		},
	}
}

// Parse reads a configuration from YAML. Fields missing from data keep
// their defaults. Unknown top-level keys are logged and ignored.
func Parse(data []byte) (*Chart, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("config: failed to parse: %w", err)
	}
	for k := range raw {
		if !slices.Contains(knownKeys, k) {
			ggplot.Logger().Warn("config: ignoring unknown key", "key", k)
		}
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse: %w", err)
	}
	return cfg, nil
}

// Load reads and validates a configuration file.
func Load(path string) (*Chart, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: failed to read: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadOrDefault loads path, or returns the default configuration when
// path is empty.
func LoadOrDefault(path string) (*Chart, error) {
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}

// Save writes the configuration to path as YAML.
func (c *Chart) Save(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("config: failed to create directory: %w", err)
		}
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("config: failed to marshal: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("config: failed to write: %w", err)
	}
	return nil
}

// Validate reports every invalid setting, each wrapping ErrInvalid.
func (c *Chart) Validate() error {
	var errs []error
	invalid := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
	}
	if c.Width <= 0 || c.Height <= 0 {
		invalid("canvas size %dx%d must be positive", c.Width, c.Height)
	}
	if c.Margin < 0 {
		invalid("negative margin %d", c.Margin)
	}
	for name, v := range map[string]int{
		"top":    c.LabelAreas.Top,
		"bottom": c.LabelAreas.Bottom,
		"left":   c.LabelAreas.Left,
		"right":  c.LabelAreas.Right,
	} {
		if v < 0 {
			invalid("negative %s label area %d", name, v)
		}
	}
	if c.Mesh.XLabels < 0 || c.Mesh.YLabels < 0 {
		invalid("negative label count")
	}
	if c.Caption.Text != "" && c.Caption.Size <= 0 {
		invalid("caption size %v must be positive", c.Caption.Size)
	}
	if c.Legend.Enabled {
		if _, err := chart.ParseLegendPosition(c.Legend.Position); err != nil {
			invalid("legend: %v", err)
		}
	}
	return errors.Join(errs...)
}

// CaptionStyle returns the text style of the caption.
func (c *Chart) CaptionStyle() style.TextStyle {
	family := c.Caption.Family
	if family == "" {
		family = style.DefaultFamily
	}
	return style.Font(family, c.Caption.Size)
}

// LabelStyle returns the text style of tick labels.
func (c *Chart) LabelStyle() style.TextStyle {
	return style.Font(style.DefaultFamily, c.Mesh.LabelSize)
}

// ApplyLayout copies margin, caption and label area sizes to b.
func (c *Chart) ApplyLayout(b *chart.Builder) *chart.Builder {
	b.Margin(c.Margin).
		SetLabelAreaSize(chart.Top, c.LabelAreas.Top).
		SetLabelAreaSize(chart.Bottom, c.LabelAreas.Bottom).
		SetLabelAreaSize(chart.Left, c.LabelAreas.Left).
		SetLabelAreaSize(chart.Right, c.LabelAreas.Right)
	if c.Caption.Text != "" {
		b.Caption(c.Caption.Text, c.CaptionStyle())
	}
	return b
}

// ApplyMesh copies the mesh settings of c to m.
func ApplyMesh[X, Y any](c *Chart, m *chart.MeshStyle[X, Y]) *chart.MeshStyle[X, Y] {
	m.XLabels(c.Mesh.XLabels).YLabels(c.Mesh.YLabels)
	if c.Mesh.LabelSize > 0 {
		m.LabelStyle(c.LabelStyle())
	}
	if c.Mesh.DisableXMesh {
		m.DisableXMesh()
	}
	if c.Mesh.DisableYMesh {
		m.DisableYMesh()
	}
	if c.Mesh.XDesc != "" {
		m.XDesc(c.Mesh.XDesc)
	}
	if c.Mesh.YDesc != "" {
		m.YDesc(c.Mesh.YDesc)
	}
	return m
}

// ApplyLegend copies the legend position to s. It reports false when the
// legend is disabled.
func (c *Chart) ApplyLegend(s *chart.SeriesLabelStyle) (*chart.SeriesLabelStyle, bool) {
	if !c.Legend.Enabled {
		return s, false
	}
	if p, err := chart.ParseLegendPosition(c.Legend.Position); err == nil {
		s.Position(p)
	}
	return s, true
}
