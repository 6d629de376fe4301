package choropleth

import (
	"math"
	"strconv"

	"loanmap/internal/ingest"
)

// Projection maps a (longitude, latitude) point in degrees to viewport
// coordinates.
type Projection interface {
	Project(p ingest.Point) (x, y float64)
}

// conicEqualArea is an Albers projection with a rotation, centre, scale and
// translation, matching the conventions of web mapping libraries: y grows
// downward and the centre lands on the translation point.
type conicEqualArea struct {
	n, c, r0 float64
	rotate   float64
	k        float64
	dx, dy   float64
}

func newConicEqualArea(rotate, centerLon, centerLat, parallel0, parallel1, k, tx, ty float64) conicEqualArea {
	sin0 := math.Sin(radians(parallel0))
	n := (sin0 + math.Sin(radians(parallel1))) / 2
	c := 1 + sin0*(2*n-sin0)
	p := conicEqualArea{n: n, c: c, r0: math.Sqrt(c) / n, rotate: radians(rotate), k: k}

	cx, cy := p.raw(radians(centerLon), radians(centerLat))
	p.dx = tx - cx*k
	p.dy = ty + cy*k
	return p
}

func (p conicEqualArea) raw(lambda, phi float64) (float64, float64) {
	r := math.Sqrt(p.c-2*p.n*math.Sin(phi)) / p.n
	lambda *= p.n
	return r * math.Sin(lambda), p.r0 - r*math.Cos(lambda)
}

func (p conicEqualArea) Project(pt ingest.Point) (float64, float64) {
	lambda := radians(pt[0]) + p.rotate
	switch {
	case lambda > math.Pi:
		lambda -= 2 * math.Pi
	case lambda < -math.Pi:
		lambda += 2 * math.Pi
	}
	x, y := p.raw(lambda, radians(pt[1]))
	return p.dx + p.k*x, p.dy - p.k*y
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// AlbersUSA is a composite projection: the lower 48 states on a conic
// equal-area projection with Alaska and Hawaii drawn as insets.
type AlbersUSA struct {
	lower48 conicEqualArea
	alaska  conicEqualArea
	hawaii  conicEqualArea
}

// Default viewport for AlbersUSA.
const (
	ViewportWidth  = 960
	ViewportHeight = 500
	defaultScale   = 1070
)

// NewAlbersUSA builds the projection for a viewport centred on (tx, ty) at
// scale k.
func NewAlbersUSA(k, tx, ty float64) *AlbersUSA {
	return &AlbersUSA{
		lower48: newConicEqualArea(96, -0.6, 38.7, 29.5, 45.5, k, tx, ty),
		alaska:  newConicEqualArea(154, -2, 58.5, 55, 65, 0.35*k, tx-0.307*k, ty+0.201*k),
		hawaii:  newConicEqualArea(157, -3, 19.9, 8, 18, k, tx-0.205*k, ty+0.212*k),
	}
}

// DefaultAlbersUSA fits the default 960x500 viewport.
func DefaultAlbersUSA() *AlbersUSA {
	return NewAlbersUSA(defaultScale, ViewportWidth/2, ViewportHeight/2)
}

// Project picks the inset a point belongs to and projects it.
func (a *AlbersUSA) Project(pt ingest.Point) (float64, float64) {
	return a.pick(pt).Project(pt)
}

func (a *AlbersUSA) pick(pt ingest.Point) conicEqualArea {
	lon, lat := pt[0], pt[1]
	switch {
	case (lat > 50 && lon < -129) || lon > 170:
		return a.alaska
	case lat < 23 && lon < -150:
		return a.hawaii
	default:
		return a.lower48
	}
}

// polygonProjection returns the projection used for a whole polygon so a
// shape is never split across insets.
func polygonProjection(proj Projection, poly ingest.Polygon) Projection {
	a, ok := proj.(*AlbersUSA)
	if !ok || len(poly) == 0 || len(poly[0]) == 0 {
		return proj
	}
	return a.pick(poly[0][0])
}

// PathData renders a feature's polygons as an SVG path "d" attribute. Each
// ring becomes a closed subpath with coordinates rounded to two decimals.
func PathData(proj Projection, polygons []ingest.Polygon) string {
	var buf []byte
	for _, poly := range polygons {
		p := polygonProjection(proj, poly)
		for _, ring := range poly {
			if len(ring) == 0 {
				continue
			}
			if len(ring) > 1 && ring[0] == ring[len(ring)-1] {
				ring = ring[:len(ring)-1]
			}
			for i, pt := range ring {
				x, y := p.Project(pt)
				if i == 0 {
					buf = append(buf, 'M')
				} else {
					buf = append(buf, 'L')
				}
				buf = strconv.AppendFloat(buf, x, 'f', 2, 64)
				buf = append(buf, ',')
				buf = strconv.AppendFloat(buf, y, 'f', 2, 64)
			}
			buf = append(buf, 'Z')
		}
	}
	return string(buf)
}
