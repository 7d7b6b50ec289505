// Package config loads the board settings from a YAML file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"SketchBoard/internal/state"
)

// Config holds the user-tunable defaults of a board. The drawing surface
// size, zoom limits and grid cell are fixed and not configurable.
type Config struct {
	Background  Color   `yaml:"background"`
	Stroke      Color   `yaml:"stroke"`
	Fill        Color   `yaml:"fill"`
	StrokeWidth float64 `yaml:"stroke_width"`
	Text        Text    `yaml:"text"`
	History     History `yaml:"history"`
	Export      Export  `yaml:"export"`
	LogLevel    string  `yaml:"log_level"`
}

type Text struct {
	FontSize float64 `yaml:"font_size"`
	Width    float64 `yaml:"width"`
	Default  string  `yaml:"default"`
}

type History struct {
	// Limit caps the undo depth; 0 means unlimited.
	Limit int `yaml:"limit"`
}

type Export struct {
	FileName    string `yaml:"file_name"`
	PDFFileName string `yaml:"pdf_file_name"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Background:  Color{state.White},
		Stroke:      Color{state.Black},
		Fill:        Color{state.Transparent},
		StrokeWidth: 3,
		Text: Text{
			FontSize: 20,
			Width:    200,
			Default:  "Type here",
		},
		Export: Export{
			FileName:    "whiteboard.png",
			PDFFileName: "whiteboard.pdf",
		},
		LogLevel: "info",
	}
}

// Style returns the drawing style new objects start with.
func (c Config) Style() state.Style {
	return state.Style{
		Stroke:      c.Stroke.Color,
		Fill:        c.Fill.Color,
		StrokeWidth: c.StrokeWidth,
	}
}

// Load reads path on top of Default. A missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes YAML on top of Default and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Default(), err
	}
	return cfg, nil
}

// Validate rejects settings the board cannot work with.
func (c Config) Validate() error {
	if c.StrokeWidth <= 0 {
		return fmt.Errorf("stroke_width must be positive, got %v", c.StrokeWidth)
	}
	if c.Text.FontSize <= 0 {
		return fmt.Errorf("text.font_size must be positive, got %v", c.Text.FontSize)
	}
	if c.Text.Width <= 0 {
		return fmt.Errorf("text.width must be positive, got %v", c.Text.Width)
	}
	if c.History.Limit < 0 {
		return fmt.Errorf("history.limit must not be negative, got %d", c.History.Limit)
	}
	if c.Export.FileName == "" || c.Export.PDFFileName == "" {
		return errors.New("export file names must not be empty")
	}
	return nil
}

// Color decodes "#rrggbb" / "#rrggbbaa" YAML scalars.
type Color struct {
	state.Color
}

func (c *Color) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: color must be a string", value.Line)
	}
	parsed, err := state.ParseColor(value.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	c.Color = parsed
	return nil
}

func (c Color) MarshalYAML() (any, error) {
	return c.String(), nil
}
