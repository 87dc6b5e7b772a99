package entity

import (
	"fmt"
	"strings"

	"github.com/milk9111/snowfall/ecs"
	"github.com/milk9111/snowfall/ecs/component"
	"github.com/milk9111/snowfall/prefabs"
	"github.com/milk9111/snowfall/snow"
)

// NewSnowEmitter creates the emitter covering a width×height screen.
func NewSnowEmitter(w *ecs.World, spec prefabs.SnowSpec, width, height float64) (ecs.Entity, error) {
	emitter := &component.SnowEmitter{Width: width, Height: height}
	ConfigureSnowEmitter(emitter, spec)

	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.SnowEmitterComponent.Kind(), emitter); err != nil {
		return 0, fmt.Errorf("snow emitter: add emitter: %w", err)
	}
	return e, nil
}

// ConfigureSnowEmitter applies spec tuning to an existing emitter without
// resetting its interval progress.
func ConfigureSnowEmitter(emitter *component.SnowEmitter, spec prefabs.SnowSpec) {
	spec = spec.WithDefaults()
	emitter.IntervalMS = spec.IntervalMS
	emitter.SpawnY = *spec.SpawnY
	emitter.Params = snow.FlakeParams{
		Size:     snow.Range{Min: spec.Size.Min, Max: spec.Size.Max},
		Duration: snow.Range{Min: spec.Duration.Min, Max: spec.Duration.Max},
		Opacity:  snow.Range{Min: spec.Opacity.Min, Max: spec.Opacity.Max},
	}
}

// NewSnowflake creates a falling flake from startY to endY.
func NewSnowflake(w *ecs.World, flake snow.Flake, startY, endY float64) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.SnowflakeComponent.Kind(), &component.Snowflake{
		Flake:  flake,
		StartY: startY,
		EndY:   endY,
	}); err != nil {
		return 0, fmt.Errorf("snowflake: add snowflake: %w", err)
	}
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{
		X:      flake.X,
		Y:      startY,
		ScaleX: 1,
		ScaleY: 1,
	}); err != nil {
		return 0, fmt.Errorf("snowflake: add transform: %w", err)
	}
	if err := ecs.Add(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: component.LayerSnow}); err != nil {
		return 0, fmt.Errorf("snowflake: add layer: %w", err)
	}
	return e, nil
}

// NewCollector creates a snow figure standing on the bottom edge.
func NewCollector(w *ecs.World, spec prefabs.CollectorSpec, screenW, screenH float64) (ecs.Entity, error) {
	var side snow.Side
	switch strings.ToLower(spec.Side) {
	case "left":
		side = snow.SideLeft
	case "right":
		side = snow.SideRight
	default:
		return 0, fmt.Errorf("collector: unknown side %q", spec.Side)
	}

	state := snow.Collector{Side: side}
	x := spec.Margin + component.CollectorWidth/2
	if side == snow.SideRight {
		x = screenW - spec.Margin - component.CollectorWidth/2
	}

	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.CollectorComponent.Kind(), &component.Collector{
		State:   state,
		Scale:   snow.NewTween(state.Scale(), snow.TransitionMS),
		Opacity: snow.NewTween(state.Opacity(), snow.TransitionMS),
		Lashes:  spec.Lashes,
		Scarf:   spec.Scarf,
	}); err != nil {
		return 0, fmt.Errorf("collector: add collector: %w", err)
	}
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{
		X:      x,
		Y:      screenH - component.CollectorHeight/2,
		ScaleX: state.Scale(),
		ScaleY: state.Scale(),
	}); err != nil {
		return 0, fmt.Errorf("collector: add transform: %w", err)
	}
	if err := ecs.Add(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: component.LayerCollector}); err != nil {
		return 0, fmt.Errorf("collector: add layer: %w", err)
	}
	return e, nil
}
