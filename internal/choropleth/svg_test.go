package choropleth

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSVG(t *testing.T) {
	m := &RenderedMap{
		Year:   2010,
		Width:  ContainerWidth,
		Height: ContainerHeight,
		Features: []FeatureFill{
			{Name: "Kansas", Code: "KS", Fill: "#41ab5d", Stroke: StrokeColor, StrokeWidth: StrokeWidth, HasData: true, Path: "M1,1L2,2Z"},
			{Name: "Lakes & Islands", Fill: NoDataFill, Stroke: StrokeColor, StrokeWidth: StrokeWidth, Path: "M3,3L4,4Z"},
		},
		Legend: BuildLegend(fixedScale{lo: 0, hi: 6}),
	}

	var b strings.Builder
	require.NoError(t, SVG(m).Render(context.Background(), &b))
	out := b.String()

	assert.True(t, strings.HasPrefix(out, "<svg"))
	assert.Contains(t, out, `width="1400" height="550"`)
	assert.Contains(t, out, `data-year="2010"`)
	assert.Contains(t, out, `<path d="M1,1L2,2Z" fill="#41ab5d" stroke="black" stroke-width="0.5" data-name="Kansas" data-code="KS"><title>Kansas</title></path>`)
	assert.Contains(t, out, `fill="rgb(232,232,232)"`)
	assert.Contains(t, out, `data-code="KS"`)
	assert.Contains(t, out, "Lakes &amp; Islands")
	assert.NotContains(t, out, "Lakes & Islands")
	assert.Equal(t, 2, strings.Count(out, "<path "))

	assert.Equal(t, 6, strings.Count(out, `<g class="legend">`))
	assert.Contains(t, out, `<rect x="880" y="460" width="20" height="20" fill="c(0.0000)" opacity="0.8"></rect>`)
	assert.Contains(t, out, `<text x="905" y="476">$0.00</text>`)
	assert.Contains(t, out, `<text class="legend-caption" x="850" y="350">Loan Dollars / Person</text>`)
}

func TestSVGNilMap(t *testing.T) {
	var b strings.Builder
	require.NoError(t, SVG(nil).Render(context.Background(), &b))
	assert.Contains(t, b.String(), "svg_cont")
	assert.NotContains(t, b.String(), "<path")
}

func TestSVGEscapesAttributeValues(t *testing.T) {
	m := &RenderedMap{
		Width:  ContainerWidth,
		Height: ContainerHeight,
		Features: []FeatureFill{
			{Name: `Say "hi"`, Fill: NoDataFill, Stroke: `black"><script>alert(1)</script>`, StrokeWidth: StrokeWidth, Path: `M0,0Z"/><script>`},
		},
	}

	var b strings.Builder
	require.NoError(t, SVG(m).Render(context.Background(), &b))
	out := b.String()

	assert.NotContains(t, out, "<script>")
	assert.Contains(t, out, `d="M0,0Z&#34;/&gt;&lt;script&gt;"`)
	assert.Contains(t, out, `data-name="Say &#34;hi&#34;"`)
	assert.True(t, strings.HasSuffix(out, "</g></svg>"))
}
