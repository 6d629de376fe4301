package choropleth

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// LegendCaption labels the legend.
const LegendCaption = "Loan Dollars / Person"

// legendSixths are the fractions of the domain maximum shown after the
// minimum. One sixth is intentionally absent.
var legendSixths = []float64{2, 3, 4, 5, 6}

// LegendEntry is one swatch.
type LegendEntry struct {
	Threshold float64
	Color     string
	Label     string
}

// Legend is the swatch list plus its caption, lowest threshold first.
type Legend struct {
	Entries []LegendEntry
	Caption string
}

// Colorer is the part of a colour scale the legend needs.
type Colorer interface {
	Domain() (min, max float64)
	Color(v float64) string
}

// FormatDollars formats v as dollars with two decimals and no digit grouping.
func FormatDollars(v float64) string {
	return message.NewPrinter(language.AmericanEnglish).Sprintf("$%v", number.Decimal(v, number.Scale(2), number.NoSeparator()))
}

// BuildLegend computes the six legend buckets for a scale: the domain minimum
// followed by 2/6 through 6/6 of the domain maximum.
func BuildLegend(scale Colorer) Legend {
	lo, hi := scale.Domain()
	thresholds := make([]float64, 0, 1+len(legendSixths))
	thresholds = append(thresholds, lo)
	for _, n := range legendSixths {
		thresholds = append(thresholds, hi/6*n)
	}

	entries := make([]LegendEntry, len(thresholds))
	for i, t := range thresholds {
		entries[i] = LegendEntry{Threshold: t, Color: scale.Color(t), Label: FormatDollars(t)}
	}
	return Legend{Entries: entries, Caption: LegendCaption}
}
