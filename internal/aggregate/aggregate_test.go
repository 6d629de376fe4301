package aggregate

import (
	"math"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"loanmap/internal/ingest"
	"loanmap/internal/region"
)

type populations map[string]int64

func (p populations) Population(code string) (int64, bool) {
	v, ok := p[code]
	return v, ok
}

func rec(year int, region string, amount float64) ingest.Record {
	return ingest.NewRecord(time.Date(year, 6, 1, 0, 0, 0, 0, time.UTC), region, amount)
}

type AggregateSuite struct {
	suite.Suite
	pops populations
}

func TestAggregateSuite(t *testing.T) {
	suite.Run(t, new(AggregateSuite))
}

func (s *AggregateSuite) SetupTest() {
	s.pops = populations{"CA": 37254522, "TX": 25145561, "NY": 19378102, "ZP": 0}
}

func (s *AggregateSuite) TestCaliforniaExample() {
	ix := Aggregate([]ingest.Record{rec(2008, "CA", 1000), rec(2008, "CA", 2000)}, region.Default())

	e, ok := ix.Lookup(2008, "CA")
	s.Require().True(ok)
	s.Equal(3000.0, e.Sum)
	s.Equal(2, e.Count)
	s.InDelta(8.05e-5, e.NormalizedTotal, 1e-7)
	s.Equal(3000.0/37254522.0, e.NormalizedTotal)
	s.True(e.HasData())
}

func (s *AggregateSuite) TestOrderingAndLookup() {
	ix := Aggregate([]ingest.Record{
		rec(2010, "TX", 10),
		rec(2008, "NY", 20),
		rec(2010, "CA", 30),
		rec(2008, "TX", 40),
		rec(2010, "TX", 50),
	}, s.pops)

	s.Equal([]int{2010, 2008}, ix.Years())

	first, ok := ix.First()
	s.Require().True(ok)
	s.Equal(2010, first.Year)
	s.Equal([]string{"TX", "CA"}, first.Regions())

	y2008, ok := ix.Year(2008)
	s.Require().True(ok)
	s.Equal([]string{"NY", "TX"}, y2008.Regions())

	e, ok := ix.Lookup(2010, "TX")
	s.Require().True(ok)
	s.Equal(60.0, e.Sum)

	_, ok = ix.Lookup(2011, "TX")
	s.False(ok)
	_, ok = ix.Lookup(2010, "NY")
	s.False(ok)
}

func (s *AggregateSuite) TestNoDataCases() {
	ix := Aggregate([]ingest.Record{
		rec(2009, "ZP", 500),
		rec(2009, "GU", 500),
		rec(2009, "", 500),
		rec(2009, "CA", 500),
	}, s.pops)

	s.Run("zero population", func() {
		e, ok := ix.Lookup(2009, "ZP")
		s.Require().True(ok)
		s.True(math.IsNaN(e.NormalizedTotal))
		s.False(e.HasData())
		s.Equal(500.0, e.Sum)
	})

	s.Run("unknown population", func() {
		e, ok := ix.Lookup(2009, "GU")
		s.Require().True(ok)
		s.False(e.HasData())
	})

	s.Run("empty region is kept structurally but has no data", func() {
		e, ok := ix.Lookup(2009, "")
		s.Require().True(ok)
		s.False(e.HasData())
	})

	s.Run("summary", func() {
		sum := ix.Summary()
		s.Equal(Summary{Years: 1, Groups: 4, NoData: 3, Records: 4}, sum)
	})

	s.Run("nil lookup", func() {
		e, ok := Aggregate([]ingest.Record{rec(2009, "CA", 1)}, nil).Lookup(2009, "CA")
		s.Require().True(ok)
		s.False(e.HasData())
	})

	s.Run("nil registry", func() {
		var registry *region.Registry
		var ix *Index
		s.Require().NotPanics(func() {
			ix = Aggregate([]ingest.Record{rec(2009, "CA", 1)}, registry)
		})
		e, ok := ix.Lookup(2009, "CA")
		s.Require().True(ok)
		s.Equal(1.0, e.Sum)
		s.False(e.HasData())
	})
}

func (s *AggregateSuite) TestConservation() {
	var records []ingest.Record
	var want float64
	r := rand.New(rand.NewPCG(1, 2))
	codes := []string{"CA", "TX", "NY", "ZP", ""}
	for i := 0; i < 500; i++ {
		code := codes[r.IntN(len(codes))]
		amount := float64(r.IntN(35000) + 1000)
		records = append(records, rec(2006+r.IntN(8), code, amount))
		if code != "" {
			want += amount
		}
	}

	ix := Aggregate(records, s.pops)
	s.Equal(want, ix.Totals())
	s.Equal(len(records), ix.Summary().Records)
}

func (s *AggregateSuite) TestMonotonic() {
	base := Aggregate([]ingest.Record{rec(2012, "TX", 1000)}, s.pops)
	more := Aggregate([]ingest.Record{rec(2012, "TX", 1000), rec(2012, "TX", 0.01)}, s.pops)

	a, _ := base.Lookup(2012, "TX")
	b, _ := more.Lookup(2012, "TX")
	s.Greater(b.NormalizedTotal, a.NormalizedTotal)
}

func (s *AggregateSuite) TestOrderIndependent() {
	records := []ingest.Record{
		rec(2011, "CA", 0.1), rec(2011, "CA", 0.2), rec(2011, "CA", 0.3),
		rec(2011, "TX", 1e16), rec(2011, "TX", 1), rec(2011, "TX", -0),
		rec(2012, "NY", 7), rec(2012, "NY", 11),
	}
	want := Aggregate(records, s.pops)

	r := rand.New(rand.NewPCG(7, 7))
	for i := 0; i < 20; i++ {
		shuffled := append([]ingest.Record(nil), records...)
		r.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })
		got := Aggregate(shuffled, s.pops)

		s.ElementsMatch(want.Years(), got.Years())
		for _, year := range want.Years() {
			ws, _ := want.Year(year)
			gs, _ := got.Year(year)
			s.ElementsMatch(ws.Regions(), gs.Regions())
			for _, code := range ws.Regions() {
				we, _ := ws.Entry(code)
				ge, _ := gs.Entry(code)
				s.Equal(we, ge)
			}
		}
	}
}

func (s *AggregateSuite) TestEmptyInput() {
	ix := Aggregate(nil, s.pops)
	s.Zero(ix.Len())
	_, ok := ix.First()
	s.False(ok)
	s.Zero(ix.Totals())
}

func (s *AggregateSuite) TestAccessorsCopy() {
	ix := Aggregate([]ingest.Record{rec(2008, "CA", 1), rec(2009, "CA", 1)}, s.pops)
	years := ix.Years()
	years[0] = 1999
	s.Equal([]int{2008, 2009}, ix.Years())
}
