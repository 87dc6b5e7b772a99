package prefabs

import (
	"errors"
	"image/color"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestYAMLColor(t *testing.T) {
	cases := []struct {
		in      string
		want    color.NRGBA
		wantErr bool
	}{
		{`"#f0c987"`, color.NRGBA{R: 0xf0, G: 0xc9, B: 0x87, A: 0xff}, false},
		{`"00000080"`, color.NRGBA{A: 0x80}, false},
		{`"#fff"`, color.NRGBA{}, true},
		{`"#zzzzzz"`, color.NRGBA{}, true},
		{`[1, 2]`, color.NRGBA{}, true},
	}
	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			var got YAMLColor
			err := yaml.Unmarshal([]byte(c.in), &got)
			if c.wantErr {
				if err == nil {
					t.Fatalf("expected error for %s", c.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("unmarshal %s: %v", c.in, err)
			}
			if got.Color != c.want {
				t.Fatalf("expected %v, got %v", c.want, got.Color)
			}
		})
	}
}

func TestYAMLColorOr(t *testing.T) {
	var nilColor *YAMLColor
	fallback := color.White
	if nilColor.Or(fallback) != fallback {
		t.Fatalf("nil color should use fallback")
	}
}

func TestSnowSpecDefaults(t *testing.T) {
	s := SnowSpec{}.WithDefaults()
	if s.IntervalMS != 180 || s.SpawnY == nil || *s.SpawnY != -10 {
		t.Fatalf("unexpected timing defaults: %+v", s)
	}
	if s.Size != (RangeSpec{Min: 4, Max: 24}) || s.Duration != (RangeSpec{Min: 6, Max: 9}) || s.Opacity != (RangeSpec{Min: 0.3, Max: 0.9}) {
		t.Fatalf("unexpected range defaults: %+v", s)
	}
	if len(s.Collectors) != 2 || s.Collectors[0].Side != "left" || s.Collectors[1].Side != "right" {
		t.Fatalf("unexpected collectors: %+v", s.Collectors)
	}

	custom := SnowSpec{IntervalMS: 90, Size: RangeSpec{Min: 1, Max: 2}}.WithDefaults()
	if custom.IntervalMS != 90 || custom.Size.Max != 2 {
		t.Fatalf("defaults overwrote explicit values: %+v", custom)
	}
}

func TestSnowSpecExplicitZeroSpawnY(t *testing.T) {
	var s SnowSpec
	if err := yaml.Unmarshal([]byte("spawn_y: 0\n"), &s); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	s = s.WithDefaults()
	if s.SpawnY == nil || *s.SpawnY != 0 {
		t.Fatalf("explicit spawn_y 0 was replaced: %v", s.SpawnY)
	}
}

func TestLoadEmbeddedSpecs(t *testing.T) {
	snow, err := LoadSnowSpec()
	if err != nil {
		t.Fatalf("LoadSnowSpec: %v", err)
	}
	if snow.IntervalMS != 180 || len(snow.Collectors) != 2 {
		t.Fatalf("unexpected snow spec: %+v", snow)
	}

	scene, err := LoadSceneSpec("")
	if err != nil {
		t.Fatalf("LoadSceneSpec: %v", err)
	}
	if len(scene.Puzzles) == 0 {
		t.Fatalf("expected puzzles in scene")
	}
	for _, p := range scene.Puzzles {
		if err := p.Validate(); err != nil {
			t.Fatalf("embedded puzzle invalid: %v", err)
		}
	}

	if _, err := LoadSceneSpec("missing.yaml"); err == nil {
		t.Fatalf("expected error for missing scene")
	}
}

func TestPuzzleSpecValidate(t *testing.T) {
	cases := []PuzzleSpec{
		{Image: "", Caption: "x"},
		{Image: "a.png", Caption: "  "},
	}
	for _, c := range cases {
		if err := c.Validate(); !errors.Is(err, ErrMissingPuzzleField) {
			t.Fatalf("%+v: expected ErrMissingPuzzleField, got %v", c, err)
		}
	}
}
