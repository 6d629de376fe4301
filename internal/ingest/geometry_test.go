package ingest

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "loanmap/pkg/domain-errors"
)

const sampleGeoJSON = `{
  "type": "FeatureCollection",
  "features": [
    {
      "type": "Feature",
      "properties": {"name": "Colorado"},
      "geometry": {"type": "Polygon", "coordinates": [[[-109,41],[-102,41],[-102,37],[-109,37],[-109,41]]]}
    },
    {
      "type": "Feature",
      "properties": {"name": "Hawaii"},
      "geometry": {"type": "MultiPolygon", "coordinates": [
        [[[-155,19],[-154.8,19.5],[-155.5,20],[-155,19]]],
        [[[-156.5,20.6],[-156,20.6],[-156.2,21],[-156.5,20.6]]]
      ]}
    },
    {
      "type": "Feature",
      "properties": {"name": "Somewhere"},
      "geometry": {"type": "Point", "coordinates": [0, 0]}
    },
    {
      "type": "Feature",
      "properties": {},
      "geometry": null
    }
  ]
}`

func TestDecodeGeometry(t *testing.T) {
	g, err := DecodeGeometry([]byte(sampleGeoJSON))
	require.NoError(t, err)
	require.Len(t, g.Features, 4)

	colorado := g.Features[0]
	assert.Equal(t, "Colorado", colorado.Name)
	require.Len(t, colorado.Polygons, 1)
	require.Len(t, colorado.Polygons[0], 1)
	assert.Len(t, colorado.Polygons[0][0], 5)
	assert.Equal(t, Point{-109, 41}, colorado.Polygons[0][0][0])

	hawaii := g.Features[1]
	assert.Equal(t, "Hawaii", hawaii.Name)
	assert.Len(t, hawaii.Polygons, 2)

	assert.Equal(t, "Somewhere", g.Features[2].Name)
	assert.Empty(t, g.Features[2].Polygons)
	assert.Equal(t, "", g.Features[3].Name)
	assert.Empty(t, g.Features[3].Polygons)
}

func TestDecodeGeometryInvalid(t *testing.T) {
	_, err := DecodeGeometry([]byte(`{"type": "FeatureCollection", "features": [`))
	assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
}

func TestGeoJSONSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "us-states.json")
	require.NoError(t, os.WriteFile(path, []byte(sampleGeoJSON), 0o600))

	g, err := (&GeoJSONSource{Path: path}).Geometry(context.Background())
	require.NoError(t, err)
	assert.Len(t, g.Features, 4)

	_, err = (&GeoJSONSource{Path: filepath.Join(t.TempDir(), "missing.json")}).Geometry(context.Background())
	assert.ErrorIs(t, err, os.ErrNotExist)
}
