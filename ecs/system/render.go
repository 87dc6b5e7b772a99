package system

import (
	"image"
	"image/color"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/snowfall/ecs"
	"github.com/milk9111/snowfall/ecs/component"
	"github.com/milk9111/snowfall/puzzle"
	"golang.org/x/image/font/basicfont"
)

// Palette holds the colors the renderer does not take from images.
type Palette struct {
	Highlight  color.Color
	Blank      color.Color
	Solved     color.Color
	Button     color.Color
	ButtonText color.Color
	Caption    color.Color
	Snow       color.Color
	Scarf      color.Color
}

func DefaultPalette() Palette {
	return Palette{
		Highlight:  color.NRGBA{R: 0xf0, G: 0xc9, B: 0x87, A: 0xff},
		Blank:      color.NRGBA{R: 0x2a, G: 0x36, B: 0x4a, A: 0xff},
		Solved:     color.NRGBA{R: 0xf0, G: 0xc9, B: 0x87, A: 0x40},
		Button:     color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff},
		ButtonText: color.White,
		Caption:    color.White,
		Snow:       color.White,
		Scarf:      color.NRGBA{R: 0xc0, G: 0x39, B: 0x2b, A: 0xff},
	}
}

const (
	outlineWidth  = 3
	captionMargin = 10
	// flakeRadius is the drawn radius of a flake per unit of size, matching
	// a bullet glyph set at that font size.
	flakeRadius = 0.18
)

type figureKey struct {
	lashes bool
	scarf  bool
}

type RenderSystem struct {
	palette Palette
	face    text.Face
	figures map[figureKey]*ebiten.Image
}

func NewRenderSystem(palette Palette) *RenderSystem {
	return &RenderSystem{
		palette: palette,
		face:    text.NewGoXFace(basicfont.Face7x13),
		figures: make(map[figureKey]*ebiten.Image),
	}
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}

	entities := w.Query(component.RenderLayerComponent.Kind())
	sort.SliceStable(entities, func(i, j int) bool {
		li, _ := ecs.Get(w, entities[i], component.RenderLayerComponent.Kind())
		lj, _ := ecs.Get(w, entities[j], component.RenderLayerComponent.Kind())
		if li.Index != lj.Index {
			return li.Index < lj.Index
		}
		return uint64(entities[i]) < uint64(entities[j])
	})

	for _, e := range entities {
		if pz, ok := ecs.Get(w, e, component.PuzzleComponent.Kind()); ok {
			r.drawPuzzle(screen, pz)
		}
		if rv, ok := ecs.Get(w, e, component.RevealComponent.Kind()); ok {
			r.drawReveal(screen, rv)
		}
		if c, ok := ecs.Get(w, e, component.CollectorComponent.Kind()); ok {
			if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
				r.drawCollector(screen, c, t)
			}
		}
		if f, ok := ecs.Get(w, e, component.SnowflakeComponent.Kind()); ok {
			if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
				r.drawSnowflake(screen, f, t)
			}
		}
	}
}

func (r *RenderSystem) drawPuzzle(screen *ebiten.Image, pz *component.Puzzle) {
	if pz.Board == nil {
		return
	}
	selected, armed := pz.Board.Selected()

	for cell, piece := range pz.Board.Pieces() {
		rect := pz.Layout.CellRect(cell)
		if pz.Image != nil {
			src := image.Rect(-piece.Crop.X, -piece.Crop.Y, -piece.Crop.X+puzzle.CellSize, -piece.Crop.Y+puzzle.CellSize)
			if sub, ok := pz.Image.SubImage(src).(*ebiten.Image); ok {
				op := &ebiten.DrawImageOptions{Filter: ebiten.FilterLinear}
				op.GeoM.Scale(float64(rect.Dx())/puzzle.CellSize, float64(rect.Dy())/puzzle.CellSize)
				op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
				screen.DrawImage(sub, op)
			}
		} else {
			fillRect(screen, rect, r.palette.Blank)
		}
		if armed && selected == cell {
			vector.StrokeRect(screen, float32(rect.Min.X), float32(rect.Min.Y), float32(rect.Dx()), float32(rect.Dy()), outlineWidth, r.palette.Highlight, false)
		}
	}

	if pz.SolvedMarked {
		fillRect(screen, pz.Layout.Bounds(), r.palette.Solved)
	}

	btn := pz.Layout.SolveButton()
	fillRect(screen, btn, r.palette.Button)
	r.drawCentredText(screen, "Solve", btn.Min.X+btn.Dx()/2, btn.Min.Y+btn.Dy()/2, r.palette.ButtonText, 1)
}

func (r *RenderSystem) drawReveal(screen *ebiten.Image, rv *component.Reveal) {
	if !rv.Loaded {
		return
	}
	alpha := float32(rv.Opacity.Value())
	if alpha <= 0 {
		return
	}

	if rv.Image != nil {
		b := rv.Image.Bounds()
		op := &ebiten.DrawImageOptions{Filter: ebiten.FilterLinear}
		op.GeoM.Scale(float64(rv.Bounds.Dx())/float64(b.Dx()), float64(rv.Bounds.Dy())/float64(b.Dy()))
		op.GeoM.Translate(float64(rv.Bounds.Min.X), float64(rv.Bounds.Min.Y))
		op.ColorScale.ScaleAlpha(alpha)
		screen.DrawImage(rv.Image, op)
	}

	cx := rv.Bounds.Min.X + rv.Bounds.Dx()/2
	cy := rv.Bounds.Max.Y + captionMargin + int(r.face.Metrics().HAscent)
	r.drawCentredText(screen, rv.Caption, cx, cy, r.palette.Caption, alpha)
}

func (r *RenderSystem) drawCollector(screen *ebiten.Image, c *component.Collector, t *component.Transform) {
	alpha := float32(c.Opacity.Value())
	if alpha <= 0 {
		return
	}
	fig := r.figure(figureKey{lashes: c.Lashes, scarf: c.Scarf})

	op := &ebiten.DrawImageOptions{Filter: ebiten.FilterLinear}
	op.GeoM.Translate(-component.CollectorWidth/2, -component.CollectorHeight/2)
	op.GeoM.Scale(t.ScaleX, t.ScaleY)
	op.GeoM.Translate(t.X, t.Y)
	op.ColorScale.ScaleAlpha(alpha)
	screen.DrawImage(fig, op)
}

func (r *RenderSystem) drawSnowflake(screen *ebiten.Image, f *component.Snowflake, t *component.Transform) {
	radius := float32(f.Flake.Size * flakeRadius)
	clr := withAlpha(r.palette.Snow, f.Flake.Opacity)
	vector.DrawFilledCircle(screen, float32(t.X), float32(t.Y), radius, clr, true)
}

// figure draws a snow figure once per decoration set and caches it.
func (r *RenderSystem) figure(key figureKey) *ebiten.Image {
	if img, ok := r.figures[key]; ok {
		return img
	}

	img := ebiten.NewImage(component.CollectorWidth, component.CollectorHeight)
	const cx = component.CollectorWidth / 2
	snowColor := color.NRGBA{R: 0xf4, G: 0xf8, B: 0xff, A: 0xff}
	dark := color.NRGBA{R: 0x22, G: 0x22, B: 0x22, A: 0xff}
	carrot := color.NRGBA{R: 0xf0, G: 0x8a, B: 0x24, A: 0xff}

	vector.DrawFilledCircle(img, cx, 126, 52, snowColor, true)
	vector.DrawFilledCircle(img, cx, 50, 34, snowColor, true)
	vector.DrawFilledCircle(img, cx-12, 42, 4, dark, true)
	vector.DrawFilledCircle(img, cx+12, 42, 4, dark, true)
	vector.StrokeLine(img, cx, 54, cx+24, 58, 5, carrot, true)

	if key.lashes {
		for _, ex := range []float32{cx - 12, cx + 12} {
			vector.StrokeLine(img, ex-5, 35, ex-3, 38, 1.5, dark, true)
			vector.StrokeLine(img, ex, 33, ex, 37, 1.5, dark, true)
			vector.StrokeLine(img, ex+5, 35, ex+3, 38, 1.5, dark, true)
		}
	}
	if key.scarf {
		vector.DrawFilledRect(img, cx-32, 80, 64, 12, r.palette.Scarf, true)
		vector.DrawFilledRect(img, cx+14, 86, 12, 30, r.palette.Scarf, true)
	}

	r.figures[key] = img
	return img
}

func (r *RenderSystem) drawCentredText(screen *ebiten.Image, s string, cx, cy int, clr color.Color, alpha float32) {
	op := &text.DrawOptions{}
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	op.GeoM.Translate(float64(cx), float64(cy))
	op.ColorScale.ScaleWithColor(clr)
	op.ColorScale.ScaleAlpha(alpha)
	text.Draw(screen, s, r.face, op)
}

func fillRect(screen *ebiten.Image, rect image.Rectangle, clr color.Color) {
	vector.DrawFilledRect(screen, float32(rect.Min.X), float32(rect.Min.Y), float32(rect.Dx()), float32(rect.Dy()), clr, false)
}

func withAlpha(c color.Color, a float64) color.Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = uint8(float64(n.A) * min(max(a, 0), 1))
	return n
}
