package choropleth

import "strconv"

// Legend layout within the projection viewport.
const (
	swatchSize     = 20
	legendInset    = 80
	labelInset     = 55
	captionInset   = 110
	captionPadding = 10

	swatchX  = ViewportWidth - legendInset
	labelX   = ViewportWidth - labelInset
	captionX = ViewportWidth - captionInset
)

func swatchY(i int) int {
	return ViewportHeight - i*swatchSize - 2*swatchSize
}

func labelY(i int) int {
	return ViewportHeight - i*swatchSize - swatchSize - 4
}

// captionY sits the caption just above the topmost swatch.
func captionY(entries int) int {
	return ViewportHeight - entries*swatchSize - swatchSize - captionPadding
}

func formatWidth(w float64) string {
	return strconv.FormatFloat(w, 'g', -1, 64)
}
