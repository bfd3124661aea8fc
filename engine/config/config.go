package config

import (
	"os"

	"github.com/memmaker/smoothterrain/engine/util"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Log    LogConfig    `yaml:"log"`
	Volume VolumeConfig `yaml:"volume"`
	Scene  []Shape      `yaml:"scene"`
	Output OutputConfig `yaml:"output"`
	Viewer ViewerConfig `yaml:"viewer"`
}

type LogConfig struct {
	Level      string   `yaml:"level"`
	Categories []string `yaml:"categories"`
}

type VolumeConfig struct {
	// worker count for bulk fills, 0 uses every CPU
	Workers int `yaml:"workers"`
}

// Shape is one step of the scene script, applied in order.
//
//	box:    fills Min..Max (cell coordinates, inclusive)
//	sphere: adds a smooth ball of Radius cells around Center
//	carve:  removes a ball of Radius cells around Center
//	ground: rolling height field over Min..Max, surface around Height
type Shape struct {
	Kind      string     `yaml:"kind"`
	Material  string     `yaml:"material"`
	Density   int8       `yaml:"density"`
	Min       [3]int32   `yaml:"min"`
	Max       [3]int32   `yaml:"max"`
	Center    [3]float32 `yaml:"center"`
	Radius    float32    `yaml:"radius"`
	Height    float32    `yaml:"height"`
	Amplitude float32    `yaml:"amplitude"`
	Frequency float32    `yaml:"frequency"`
}

type OutputConfig struct {
	Snapshot string `yaml:"snapshot"`
	GLB      string `yaml:"glb"`
}

type ViewerConfig struct {
	Width         int        `yaml:"width"`
	Height        int        `yaml:"height"`
	Title         string     `yaml:"title"`
	FieldOfView   float32    `yaml:"fov"`
	CameraStart   [3]float32 `yaml:"camera_start"`
	MoveSpeed     float32    `yaml:"move_speed"`
	BrushRadius   float32    `yaml:"brush_radius"`
	BrushMaterial string     `yaml:"brush_material"`
	ReachDistance float32    `yaml:"reach"`
	// dirty chunks meshed per frame, nearest first; 0 meshes all of them
	RebuildBudget int `yaml:"rebuild_budget"`
}

var shapeKinds = map[string]bool{"box": true, "sphere": true, "carve": true, "ground": true}

func Default() Config {
	return Config{
		Log: LogConfig{Level: "info"},
		Scene: []Shape{
			{Kind: "ground", Material: "grass", Min: [3]int32{-96, -16, -96}, Max: [3]int32{95, 24, 95}, Height: 4, Amplitude: 6, Frequency: 0.05},
			{Kind: "sphere", Material: "rock", Center: [3]float32{0, 16, 0}, Radius: 10},
		},
		Viewer: ViewerConfig{
			Width:         1280,
			Height:        720,
			Title:         "smoothterrain",
			FieldOfView:   60,
			CameraStart:   [3]float32{0, 160, 240},
			MoveSpeed:     60,
			BrushRadius:   3,
			BrushMaterial: "dirt",
			ReachDistance: 600,
			RebuildBudget: 16,
		},
	}
}

// Load reads a YAML file on top of Default().
func Load(path string) (Config, error) {
	c := Default()
	raw, err := os.ReadFile(path)
	if err != nil {
		return c, errors.Wrap(err, "read config")
	}
	if err := Parse(raw, &c); err != nil {
		return c, errors.Wrap(err, path)
	}
	return c, nil
}

func Parse(raw []byte, c *Config) error {
	if err := yaml.Unmarshal(raw, c); err != nil {
		return errors.Wrap(err, "yaml")
	}
	return c.Validate()
}

func (c Config) Validate() error {
	if c.Volume.Workers < 0 {
		return errors.Errorf("volume.workers must not be negative, got %d", c.Volume.Workers)
	}
	for i, s := range c.Scene {
		if !shapeKinds[s.Kind] {
			return errors.Errorf("scene[%d]: unknown kind %q", i, s.Kind)
		}
		switch s.Kind {
		case "box", "ground":
			for axis := 0; axis < 3; axis++ {
				if s.Min[axis] > s.Max[axis] {
					return errors.Errorf("scene[%d]: min %v exceeds max %v", i, s.Min, s.Max)
				}
			}
		case "sphere", "carve":
			if s.Radius <= 0 {
				return errors.Errorf("scene[%d]: radius must be positive", i)
			}
		}
		if s.Kind == "box" && s.Material != "" && s.Material != "air" && s.Density >= 0 {
			return errors.Errorf("scene[%d]: solid boxes need a negative density", i)
		}
	}
	if c.Viewer.RebuildBudget < 0 {
		return errors.Errorf("viewer.rebuild_budget must not be negative, got %d", c.Viewer.RebuildBudget)
	}
	if c.Viewer.Width <= 0 || c.Viewer.Height <= 0 {
		return errors.Errorf("viewer size %dx%d is invalid", c.Viewer.Width, c.Viewer.Height)
	}
	return nil
}

// Apply configures the global logger.
func (l LogConfig) Apply() error {
	level, err := util.ParseLogLevel(l.Level)
	if err != nil {
		return errors.Wrap(err, "log.level")
	}
	categories, err := util.ParseLogCategories(l.Categories)
	if err != nil {
		return errors.Wrap(err, "log.categories")
	}
	util.SetLogLevel(level)
	util.SetLogCategories(categories)
	return nil
}
