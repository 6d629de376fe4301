package choropleth

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedScale struct {
	lo, hi float64
}

func (f fixedScale) Domain() (float64, float64) { return f.lo, f.hi }

func (f fixedScale) Color(v float64) string { return fmt.Sprintf("c(%.4f)", v) }

func TestBuildLegend(t *testing.T) {
	l := BuildLegend(fixedScale{lo: 0.011, hi: 0.06})

	require.Len(t, l.Entries, 6)
	assert.Equal(t, LegendCaption, l.Caption)

	want := []float64{0.011, 0.02, 0.03, 0.04, 0.05, 0.06}
	labels := []string{"$0.01", "$0.02", "$0.03", "$0.04", "$0.05", "$0.06"}
	for i, e := range l.Entries {
		assert.InDelta(t, want[i], e.Threshold, 1e-12)
		assert.Equal(t, labels[i], e.Label)
		assert.Equal(t, fmt.Sprintf("c(%.4f)", e.Threshold), e.Color, "swatch colour comes from the scale")
	}
}

func TestBuildLegendSkipsOneSixth(t *testing.T) {
	l := BuildLegend(fixedScale{lo: 0, hi: 6})
	for _, e := range l.Entries {
		assert.NotEqual(t, 1.0, e.Threshold)
	}
	assert.Equal(t, "$0.00", l.Entries[0].Label)
	assert.Equal(t, "$2.00", l.Entries[1].Label)
	assert.Equal(t, "$6.00", l.Entries[5].Label)
}

func TestFormatDollars(t *testing.T) {
	assert.Equal(t, "$0.08", FormatDollars(0.0805))
	assert.Equal(t, "$12.50", FormatDollars(12.5))
	assert.Equal(t, "$1234.50", FormatDollars(1234.5))
}
