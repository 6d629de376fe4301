package choropleth

import (
	"context"
	"fmt"

	"loanmap/internal/aggregate"
	"loanmap/internal/ingest"
)

// YearRenderer binds a Renderer to one built dataset and a surface so callers
// only choose the year.
type YearRenderer struct {
	renderer *Renderer
	index    *aggregate.Index
	geometry *ingest.Geometry
	scale    Colorer
	surface  MapSurface
}

// NewYearRenderer validates and binds the inputs.
func NewYearRenderer(renderer *Renderer, index *aggregate.Index, geometry *ingest.Geometry, scale Colorer, surface MapSurface) (*YearRenderer, error) {
	switch {
	case renderer == nil:
		return nil, fmt.Errorf("renderer is required")
	case index == nil:
		return nil, fmt.Errorf("aggregate index is required")
	case geometry == nil:
		return nil, fmt.Errorf("geometry is required")
	case scale == nil:
		return nil, fmt.Errorf("colour scale is required")
	case surface == nil:
		return nil, fmt.Errorf("surface is required")
	}
	return &YearRenderer{
		renderer: renderer,
		index:    index,
		geometry: geometry,
		scale:    scale,
		surface:  surface,
	}, nil
}

// RenderYear renders year and replaces the surface's map.
func (y *YearRenderer) RenderYear(ctx context.Context, year int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m, err := y.renderer.RenderYear(y.index, y.geometry, year, y.scale)
	if err != nil {
		return err
	}
	y.surface.ReplaceMap(m)
	return nil
}
