package prefabs

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	SnowSpecFile  = "snow.yaml"
	SceneSpecFile = "scene.yaml"
)

var ErrMissingPuzzleField = errors.New("prefabs: puzzle entry needs image and caption")

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type RangeSpec struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

func (r RangeSpec) orDefault(lo, hi float64) RangeSpec {
	if r.Min == 0 && r.Max == 0 {
		return RangeSpec{Min: lo, Max: hi}
	}
	return r
}

type CollectorSpec struct {
	Side   string     `yaml:"side"`
	Margin float64    `yaml:"margin"`
	Lashes bool       `yaml:"lashes"`
	Scarf  bool       `yaml:"scarf"`
	Color  *YAMLColor `yaml:"scarf_color"`
}

type SnowSpec struct {
	IntervalMS float64         `yaml:"interval_ms"`
	SpawnY     *float64        `yaml:"spawn_y"`
	Size       RangeSpec       `yaml:"size"`
	Duration   RangeSpec       `yaml:"duration"`
	Opacity    RangeSpec       `yaml:"opacity"`
	Collectors []CollectorSpec `yaml:"collectors"`
}

// WithDefaults fills zero fields with the standard snowfall tuning.
func (s SnowSpec) WithDefaults() SnowSpec {
	if s.IntervalMS <= 0 {
		s.IntervalMS = 180
	}
	if s.SpawnY == nil {
		spawnY := -10.0
		s.SpawnY = &spawnY
	}
	s.Size = s.Size.orDefault(4, 24)
	s.Duration = s.Duration.orDefault(6, 9)
	s.Opacity = s.Opacity.orDefault(0.3, 0.9)
	if len(s.Collectors) == 0 {
		s.Collectors = []CollectorSpec{
			{Side: "left", Margin: 20},
			{Side: "right", Margin: 20, Lashes: true, Scarf: true},
		}
	}
	return s
}

func LoadSnowSpec() (*SnowSpec, error) {
	spec, err := LoadSpec[SnowSpec](SnowSpecFile)
	if err != nil {
		return nil, err
	}
	spec = spec.WithDefaults()
	return &spec, nil
}

type PuzzleSpec struct {
	Image   string `yaml:"image"`
	Caption string `yaml:"caption"`
}

// Validate reports entries that cannot become a puzzle.
func (p PuzzleSpec) Validate() error {
	if strings.TrimSpace(p.Image) == "" || strings.TrimSpace(p.Caption) == "" {
		return fmt.Errorf("%w: %+v", ErrMissingPuzzleField, p)
	}
	return nil
}

type SceneSpec struct {
	Background *YAMLColor   `yaml:"background"`
	Highlight  *YAMLColor   `yaml:"highlight"`
	Spacing    int          `yaml:"spacing"`
	Puzzles    []PuzzleSpec `yaml:"puzzles"`
}

func LoadSceneSpec(filename string) (*SceneSpec, error) {
	if filename == "" {
		filename = SceneSpecFile
	}
	spec, err := LoadSpec[SceneSpec](filename)
	if err != nil {
		return nil, err
	}
	if spec.Spacing <= 0 {
		spec.Spacing = 48
	}
	return &spec, nil
}

type YAMLColor struct {
	color.Color
}

// Or returns the parsed color, or fallback when c is nil.
func (c *YAMLColor) Or(fallback color.Color) color.Color {
	if c == nil || c.Color == nil {
		return fallback
	}
	return c.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	var rgba [4]uint8
	rgba[3] = 255
	for i := 0; i < len(s)/2; i++ {
		v, err := parse(i * 2)
		if err != nil {
			return fmt.Errorf("invalid color %s: %w", value.Value, err)
		}
		rgba[i] = v
	}

	c.Color = color.NRGBA{R: rgba[0], G: rgba[1], B: rgba[2], A: rgba[3]}
	return nil
}
