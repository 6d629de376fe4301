// Package aggregate rolls loan records up by origination year and region and
// normalizes each group's total by the region's population.
package aggregate

import (
	"math"
	"slices"

	"loanmap/internal/ingest"
)

// PopulationLookup resolves a region code to its population. ok is false when
// the code is unknown or has no population on record.
type PopulationLookup interface {
	Population(code string) (int64, bool)
}

// Entry is the rollup of one (year, region) group. NormalizedTotal is NaN when
// the region is empty or its population is missing or zero.
type Entry struct {
	Year            int
	Region          string
	Sum             float64
	Count           int
	NormalizedTotal float64
}

// HasData reports whether the entry carries a renderable value.
func (e Entry) HasData() bool {
	return !math.IsNaN(e.NormalizedTotal)
}

// YearSlice holds every region group discovered for one year.
type YearSlice struct {
	Year    int
	regions []string
	entries map[string]Entry
}

// Regions returns region keys in discovery order.
func (y YearSlice) Regions() []string {
	return slices.Clone(y.regions)
}

// Entry looks a region up by key.
func (y YearSlice) Entry(region string) (Entry, bool) {
	e, ok := y.entries[region]
	return e, ok
}

// Len is the number of region groups in the year.
func (y YearSlice) Len() int {
	return len(y.regions)
}

// Index is the immutable result of Aggregate. Years keep the order in which
// they were first seen in the input.
type Index struct {
	years  []int
	byYear map[int]YearSlice
}

// Years returns the years in discovery order.
func (ix *Index) Years() []int {
	return slices.Clone(ix.years)
}

// Len is the number of years.
func (ix *Index) Len() int {
	return len(ix.years)
}

// Year looks up one year's slice by key.
func (ix *Index) Year(year int) (YearSlice, bool) {
	y, ok := ix.byYear[year]
	return y, ok
}

// First returns the first year in iteration order.
func (ix *Index) First() (YearSlice, bool) {
	if len(ix.years) == 0 {
		return YearSlice{}, false
	}
	return ix.byYear[ix.years[0]], true
}

// Lookup returns the entry for (year, region).
func (ix *Index) Lookup(year int, region string) (Entry, bool) {
	y, ok := ix.byYear[year]
	if !ok {
		return Entry{}, false
	}
	return y.Entry(region)
}

// Totals is the sum of pre-normalization amounts over groups with a
// non-empty region.
func (ix *Index) Totals() float64 {
	var total float64
	for _, year := range ix.years {
		slice := ix.byYear[year]
		for _, region := range slice.regions {
			if region == "" {
				continue
			}
			total += slice.entries[region].Sum
		}
	}
	return total
}

// Summary counts groups across the whole index.
type Summary struct {
	Years   int
	Groups  int
	NoData  int
	Records int
}

// Summary reports group and no-data counts.
func (ix *Index) Summary() Summary {
	s := Summary{Years: len(ix.years)}
	for _, year := range ix.years {
		slice := ix.byYear[year]
		for _, region := range slice.regions {
			e := slice.entries[region]
			s.Groups++
			s.Records += e.Count
			if !e.HasData() {
				s.NoData++
			}
		}
	}
	return s
}

type group struct {
	amounts []float64
}

// Aggregate groups records by year, then region, and reduces each group to an
// Entry. Amounts are summed in sorted order so the result does not depend on
// the order of the input.
func Aggregate(records []ingest.Record, populations PopulationLookup) *Index {
	var years []int
	regionOrder := map[int][]string{}
	groups := map[int]map[string]*group{}

	for _, r := range records {
		byRegion, ok := groups[r.Year]
		if !ok {
			byRegion = map[string]*group{}
			groups[r.Year] = byRegion
			years = append(years, r.Year)
		}
		g, ok := byRegion[r.Region]
		if !ok {
			g = &group{}
			byRegion[r.Region] = g
			regionOrder[r.Year] = append(regionOrder[r.Year], r.Region)
		}
		g.amounts = append(g.amounts, r.Amount)
	}

	ix := &Index{years: years, byYear: make(map[int]YearSlice, len(years))}
	for _, year := range years {
		regions := regionOrder[year]
		slice := YearSlice{
			Year:    year,
			regions: regions,
			entries: make(map[string]Entry, len(regions)),
		}
		for _, region := range regions {
			slice.entries[region] = reduce(year, region, groups[year][region], populations)
		}
		ix.byYear[year] = slice
	}
	return ix
}

func reduce(year int, region string, g *group, populations PopulationLookup) Entry {
	slices.Sort(g.amounts)
	var sum float64
	for _, a := range g.amounts {
		sum += a
	}
	return Entry{
		Year:            year,
		Region:          region,
		Sum:             sum,
		Count:           len(g.amounts),
		NormalizedTotal: normalize(sum, region, populations),
	}
}

func normalize(sum float64, region string, populations PopulationLookup) float64 {
	if region == "" || populations == nil {
		return math.NaN()
	}
	pop, ok := populations.Population(region)
	if !ok || pop <= 0 {
		return math.NaN()
	}
	return sum / float64(pop)
}
