// Package choropleth shades boundary features by one year's normalized loan
// totals and builds the accompanying legend.
package choropleth

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"loanmap/internal/aggregate"
	"loanmap/internal/ingest"
	"loanmap/internal/region"
	dErrors "loanmap/pkg/domain-errors"
)

// Map styling.
const (
	NoDataFill      = "rgb(232,232,232)"
	StrokeColor     = "black"
	StrokeWidth     = 0.5
	ContainerWidth  = 1400
	ContainerHeight = 550
)

// RegionResolver resolves a boundary feature name to a region.
type RegionResolver interface {
	ByName(name string) (region.Info, bool)
}

// MapSurface receives rendered maps. ReplaceMap must discard whatever map the
// surface showed before.
type MapSurface interface {
	ReplaceMap(m *RenderedMap)
}

// FeatureFill is one shaded boundary feature. Value is only meaningful when
// HasData is set.
type FeatureFill struct {
	Name        string
	Code        string
	Fill        string
	Stroke      string
	StrokeWidth float64
	HasData     bool
	Value       float64
	Path        string
}

// RenderedMap is the complete visible state of one year's map.
type RenderedMap struct {
	Year     int
	Features []FeatureFill
	Legend   Legend
	Width    int
	Height   int
}

// NoDataCount is the number of features drawn with the no-data fill.
func (m *RenderedMap) NoDataCount() int {
	var n int
	for _, f := range m.Features {
		if !f.HasData {
			n++
		}
	}
	return n
}

// Renderer turns an aggregate slice into a RenderedMap.
type Renderer struct {
	regions    RegionResolver
	projection Projection
	logger     *slog.Logger
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithProjection overrides the default AlbersUSA projection.
func WithProjection(p Projection) Option {
	return func(r *Renderer) {
		r.projection = p
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Renderer) {
		r.logger = logger
	}
}

// New creates a Renderer.
func New(regions RegionResolver, opts ...Option) (*Renderer, error) {
	if regions == nil {
		return nil, fmt.Errorf("region resolver is required")
	}
	r := &Renderer{
		regions:    regions,
		projection: DefaultAlbersUSA(),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.projection == nil {
		return nil, fmt.Errorf("projection is required")
	}
	return r, nil
}

// ParseYear parses a year key.
func ParseYear(year string) (int, error) {
	y, err := strconv.Atoi(strings.TrimSpace(year))
	if err != nil {
		return 0, dErrors.Wrap(err, dErrors.CodeValidation, fmt.Sprintf("invalid year %q", year))
	}
	return y, nil
}

// Render shades every feature for year. A year missing from the index is not
// an error: every feature is drawn as no-data.
func (r *Renderer) Render(index *aggregate.Index, geometry *ingest.Geometry, year string, scale Colorer) (*RenderedMap, error) {
	y, err := ParseYear(year)
	if err != nil {
		return nil, err
	}
	return r.RenderYear(index, geometry, y, scale)
}

// RenderYear is Render with an already parsed year.
func (r *Renderer) RenderYear(index *aggregate.Index, geometry *ingest.Geometry, year int, scale Colorer) (*RenderedMap, error) {
	if index == nil || geometry == nil || scale == nil {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "index, geometry and scale are required to render")
	}

	m := &RenderedMap{
		Year:     year,
		Features: make([]FeatureFill, 0, len(geometry.Features)),
		Legend:   BuildLegend(scale),
		Width:    ContainerWidth,
		Height:   ContainerHeight,
	}
	for _, f := range geometry.Features {
		m.Features = append(m.Features, r.shade(index, f, year, scale))
	}
	return m, nil
}

func (r *Renderer) shade(index *aggregate.Index, f ingest.Feature, year int, scale Colorer) FeatureFill {
	fill := FeatureFill{
		Name:        f.Name,
		Fill:        NoDataFill,
		Stroke:      StrokeColor,
		StrokeWidth: StrokeWidth,
		Path:        PathData(r.projection, f.Polygons),
	}

	info, ok := r.regions.ByName(f.Name)
	if !ok {
		if r.logger != nil {
			r.logger.Debug("boundary feature has no region", "feature", f.Name)
		}
		return fill
	}
	fill.Code = info.Code

	entry, ok := index.Lookup(year, info.Code)
	if !ok || !entry.HasData() {
		return fill
	}
	fill.Fill = scale.Color(entry.NormalizedTotal)
	fill.HasData = true
	fill.Value = entry.NormalizedTotal
	return fill
}

// RenderTo renders and hands the map to surface, replacing the previous one.
func (r *Renderer) RenderTo(ctx context.Context, surface MapSurface, index *aggregate.Index, geometry *ingest.Geometry, year string, scale Colorer) error {
	m, err := r.Render(index, geometry, year, scale)
	if err != nil {
		return err
	}
	surface.ReplaceMap(m)
	if r.logger != nil {
		r.logger.DebugContext(ctx, "map rendered", "year", m.Year, "features", len(m.Features), "no_data", m.NoDataCount())
	}
	return nil
}
