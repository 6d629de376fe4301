package ingest

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	geojson "github.com/paulmach/go.geojson"

	dErrors "loanmap/pkg/domain-errors"
)

// NameProperty is the feature property carrying the region name.
const NameProperty = "name"

// Point is a (longitude, latitude) pair in degrees.
type Point [2]float64

// Ring is a closed sequence of points.
type Ring []Point

// Polygon is an outer ring followed by zero or more holes.
type Polygon []Ring

// Feature is one named region shape.
type Feature struct {
	Name     string
	Polygons []Polygon
}

// Geometry is the boundary dataset, in file order.
type Geometry struct {
	Features []Feature
}

// DecodeGeometry parses a GeoJSON FeatureCollection. Features whose geometry
// is neither Polygon nor MultiPolygon are kept with no shapes so they still
// appear (as no-data) in listings.
func DecodeGeometry(data []byte) (*Geometry, error) {
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeValidation, "invalid boundary geojson")
	}

	g := &Geometry{Features: make([]Feature, 0, len(fc.Features))}
	for _, f := range fc.Features {
		feature := Feature{Name: f.PropertyMustString(NameProperty, "")}
		switch {
		case f.Geometry == nil:
		case f.Geometry.IsPolygon():
			feature.Polygons = append(feature.Polygons, toPolygon(f.Geometry.Polygon))
		case f.Geometry.IsMultiPolygon():
			for _, poly := range f.Geometry.MultiPolygon {
				feature.Polygons = append(feature.Polygons, toPolygon(poly))
			}
		}
		g.Features = append(g.Features, feature)
	}
	return g, nil
}

func toPolygon(rings [][][]float64) Polygon {
	out := make(Polygon, 0, len(rings))
	for _, ring := range rings {
		r := make(Ring, 0, len(ring))
		for _, pt := range ring {
			if len(pt) < 2 {
				continue
			}
			r = append(r, Point{pt[0], pt[1]})
		}
		out = append(out, r)
	}
	return out
}

// GeoJSONSource loads boundary geometry from a file on disk.
type GeoJSONSource struct {
	Path   string
	Logger *slog.Logger
}

// Geometry reads and decodes the file.
func (s *GeoJSONSource) Geometry(ctx context.Context) (*Geometry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("read geometry: %w", err)
	}
	g, err := DecodeGeometry(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.Path, err)
	}
	if s.Logger != nil {
		s.Logger.InfoContext(ctx, "boundary geometry read", "path", s.Path, "features", len(g.Features))
	}
	return g, nil
}
