package scale

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loanmap/internal/aggregate"
	"loanmap/internal/ingest"
	dErrors "loanmap/pkg/domain-errors"
)

type populations map[string]int64

func (p populations) Population(code string) (int64, bool) {
	v, ok := p[code]
	return v, ok
}

func rec(year int, region string, amount float64) ingest.Record {
	return ingest.NewRecord(time.Date(year, 1, 15, 0, 0, 0, 0, time.UTC), region, amount)
}

var pops = populations{"AA": 100, "BB": 200, "CC": 0}

func TestBuildUsesFirstYearOnly(t *testing.T) {
	ix := aggregate.Aggregate([]ingest.Record{
		rec(2009, "AA", 100), // 1.0
		rec(2009, "BB", 100), // 0.5
		rec(2009, "CC", 100), // no data
		rec(2007, "AA", 900), // 9.0, later year in iteration order
	}, pops)

	s, err := Build(ix)
	require.NoError(t, err)
	lo, hi := s.Domain()
	assert.Equal(t, 0.5, lo)
	assert.Equal(t, 1.0, hi)

	again, err := Build(ix)
	require.NoError(t, err)
	assert.Equal(t, s, again)
}

func TestBuildEmptyDomain(t *testing.T) {
	t.Run("empty index", func(t *testing.T) {
		_, err := Build(aggregate.Aggregate(nil, pops))
		assert.ErrorIs(t, err, ErrEmptyDomain)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvariantViolation))
	})

	t.Run("first year has no data", func(t *testing.T) {
		ix := aggregate.Aggregate([]ingest.Record{
			rec(2008, "CC", 10),
			rec(2008, "", 10),
			rec(2009, "AA", 10),
		}, pops)
		_, err := Build(ix)
		assert.True(t, IsEmptyDomain(err))
	})

	t.Run("nil index", func(t *testing.T) {
		_, err := Build(nil)
		assert.ErrorIs(t, err, ErrEmptyDomain)
	})
}

func TestColor(t *testing.T) {
	s, err := NewColorScale(0, 10)
	require.NoError(t, err)

	assert.Equal(t, "#ffffe5", s.Color(0))
	assert.Equal(t, "#004529", s.Color(10))
	assert.Equal(t, "#ffffe5", s.Color(-5), "below domain clamps")
	assert.Equal(t, "#004529", s.Color(50), "above domain clamps")
	assert.Empty(t, s.Color(math.NaN()))

	t.Run("ramp darkens", func(t *testing.T) {
		prev := 2.0
		for v := 0.0; v <= 10; v++ {
			l, _, _ := Interpolate(s.Position(v)).Lab()
			assert.Less(t, l, prev)
			prev = l
		}
	})
}

func TestDegenerateDomain(t *testing.T) {
	s, err := NewColorScale(3, 3)
	require.NoError(t, err)
	assert.Equal(t, 0.5, s.Position(3))
	assert.Equal(t, Interpolate(0.5).Hex(), s.Color(3))
}

func TestNewColorScale(t *testing.T) {
	s, err := NewColorScale(4, 1)
	require.NoError(t, err)
	lo, hi := s.Domain()
	assert.Equal(t, 1.0, lo)
	assert.Equal(t, 4.0, hi)

	_, err = NewColorScale(math.NaN(), 1)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
	_, err = NewColorScale(0, math.Inf(1))
	assert.Error(t, err)
}
