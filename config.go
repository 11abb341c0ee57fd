package scenetree

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// WindowConfig describes the host window.
type WindowConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

// LayoutConfig mirrors Layouter.
type LayoutConfig struct {
	OriginX   float64 `yaml:"origin_x"`
	OriginY   float64 `yaml:"origin_y"`
	HSpacing  float64 `yaml:"h_spacing"`
	RowHeight float64 `yaml:"row_height"`
}

// CameraConfig is the initial camera target.
type CameraConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// NodeConfig describes one node of the initial scene.
type NodeConfig struct {
	Name          string       `yaml:"name"`
	Shape         string       `yaml:"shape"`
	Color         string       `yaml:"color"`
	RotationSpeed *float64     `yaml:"rotation_speed"`
	Children      []NodeConfig `yaml:"children"`
}

// Config holds every tunable of the editor. Fields absent from a YAML file
// keep their DefaultConfig values.
type Config struct {
	Window          WindowConfig `yaml:"window"`
	ShowFPS         bool         `yaml:"show_fps"`
	Debug           bool         `yaml:"debug"`
	ScreenshotDir   string       `yaml:"screenshot_dir"`
	Layout          LayoutConfig `yaml:"layout"`
	HitRadius       float64      `yaml:"hit_radius"`
	ShapeSize       float64      `yaml:"shape_size"`
	LabelSize       float64      `yaml:"label_size"`
	ZoomSensitivity float64      `yaml:"zoom_sensitivity"`
	Camera          CameraConfig `yaml:"camera"`
	// Scene is the initial forest. Empty means the built-in sample scene.
	Scene []NodeConfig `yaml:"scene"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	l := DefaultLayouter()
	return Config{
		Window:          WindowConfig{Title: "Scene Tree", Width: 1280, Height: 800},
		ScreenshotDir:   "screenshots",
		Layout:          LayoutConfig{OriginX: l.OriginX, OriginY: l.OriginY, HSpacing: l.HSpacing, RowHeight: l.RowHeight},
		HitRadius:       DefaultHitRadius,
		ShapeSize:       40,
		LabelSize:       16,
		ZoomSensitivity: DefaultZoomSensitivity,
		Camera:          CameraConfig{X: 400, Y: 450},
	}
}

// LoadConfig reads a YAML config file and merges it over DefaultConfig.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

// ParseConfig decodes YAML over DefaultConfig and validates the result.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports every invalid setting.
func (c Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}
	if c.Layout.HSpacing <= 0 || c.Layout.RowHeight <= 0 {
		errs = append(errs, errors.New("layout spacing must be positive"))
	}
	if c.HitRadius <= 0 {
		errs = append(errs, fmt.Errorf("hit_radius %v must be positive", c.HitRadius))
	}
	if c.ShapeSize <= 0 || c.LabelSize <= 0 {
		errs = append(errs, errors.New("shape_size and label_size must be positive"))
	}
	if c.ZoomSensitivity < 0 {
		errs = append(errs, fmt.Errorf("zoom_sensitivity %v must not be negative", c.ZoomSensitivity))
	}
	for i := range c.Scene {
		if err := c.Scene[i].validate(); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

func (nc NodeConfig) validate() error {
	if nc.Shape != "" {
		if _, err := ParseShapeKind(nc.Shape); err != nil {
			return fmt.Errorf("node %q: %w", nc.Name, err)
		}
	}
	if nc.Color != "" {
		if _, err := ParseHexColor(nc.Color); err != nil {
			return fmt.Errorf("node %q: %w", nc.Name, err)
		}
	}
	for i := range nc.Children {
		if err := nc.Children[i].validate(); err != nil {
			return err
		}
	}
	return nil
}

// Layouter returns the layout settings.
func (c Config) Layouter() Layouter {
	return Layouter{
		OriginX:   c.Layout.OriginX,
		OriginY:   c.Layout.OriginY,
		HSpacing:  c.Layout.HSpacing,
		RowHeight: c.Layout.RowHeight,
	}
}

// BuildForest creates the initial scene, taking ids from ids.
func (c Config) BuildForest(ids *IDSource) (Forest, error) {
	if len(c.Scene) == 0 {
		return SampleForest(ids), nil
	}
	f := make(Forest, 0, len(c.Scene))
	for i := range c.Scene {
		n, err := c.Scene[i].build(ids)
		if err != nil {
			return nil, err
		}
		f = append(f, n)
	}
	return f, nil
}

func (nc NodeConfig) build(ids *IDSource) (*SceneNode, error) {
	shape := ShapeSquare
	if nc.Shape != "" {
		var err error
		if shape, err = ParseShapeKind(nc.Shape); err != nil {
			return nil, fmt.Errorf("node %q: %w", nc.Name, err)
		}
	}
	clr := ColorWhite
	if nc.Color != "" {
		var err error
		if clr, err = ParseHexColor(nc.Color); err != nil {
			return nil, fmt.Errorf("node %q: %w", nc.Name, err)
		}
	}
	name := nc.Name
	if name == "" {
		name = DefaultNodeName
	}
	n := NewSceneNode(ids.Next(), name, shape, clr)
	if nc.RotationSpeed != nil {
		n.RotationSpeed = *nc.RotationSpeed
	}
	for i := range nc.Children {
		child, err := nc.Children[i].build(ids)
		if err != nil {
			return nil, err
		}
		n.AddChild(child)
	}
	return n, nil
}
