package ingest

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "loanmap/pkg/domain-errors"
)

const sampleCSV = `ListingKey,LoanOriginationDate,BorrowerState,LoanOriginalAmount
a,2008-03-01 00:00:00,CA,1000
b,2008-07-15 00:00:00,CA,2000
c,2009-01-02 00:00:00,,5000
d,2014-02-01 00:00:00,TX,4000
e,not-a-date,TX,4000
f,2010-05-05 00:00:00,TX,-1
g,2010-05-05 00:00:00,NY,abc
h,2010-05-05
i,2013-12-31 23:59:59,NY,1500.5
`

func TestReadRecords(t *testing.T) {
	records, stats, err := ReadRecords(strings.NewReader(sampleCSV), FilterPolicy{ExcludedYear: 2014})
	require.NoError(t, err)

	require.Len(t, records, 3)
	assert.Equal(t, Record{
		OriginationDate: time.Date(2008, 3, 1, 0, 0, 0, 0, time.UTC),
		Year:            2008,
		Region:          "CA",
		Amount:          1000,
	}, records[0])
	assert.Equal(t, 2013, records[2].Year)
	assert.Equal(t, 1500.5, records[2].Amount)

	assert.Equal(t, Stats{
		Rows:          9,
		Kept:          3,
		EmptyRegion:   1,
		ExcludedYear:  1,
		BadDate:       1,
		BadAmount:     2,
		ShortRowCount: 1,
	}, stats)
	assert.Equal(t, 6, stats.Skipped())
}

func TestReadRecordsKeepEmptyRegion(t *testing.T) {
	records, stats, err := ReadRecords(strings.NewReader(sampleCSV), FilterPolicy{KeepEmptyRegion: true})
	require.NoError(t, err)

	assert.Equal(t, 0, stats.EmptyRegion)
	assert.Equal(t, 0, stats.ExcludedYear)
	var empty int
	for _, r := range records {
		if r.Region == "" {
			empty++
		}
	}
	assert.Equal(t, 1, empty)
}

func TestReadRecordsErrors(t *testing.T) {
	t.Run("empty input", func(t *testing.T) {
		_, _, err := ReadRecords(strings.NewReader(""), FilterPolicy{})
		assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
	})

	t.Run("missing column", func(t *testing.T) {
		_, _, err := ReadRecords(strings.NewReader("LoanOriginationDate,BorrowerState\n2008-01-01,CA\n"), FilterPolicy{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), ColumnAmount)
	})

	t.Run("byte order mark on header", func(t *testing.T) {
		in := "\ufeffLoanOriginationDate,BorrowerState,LoanOriginalAmount\n2008-01-01,CA,10\n"
		records, _, err := ReadRecords(strings.NewReader(in), FilterPolicy{})
		require.NoError(t, err)
		assert.Len(t, records, 1)
	})
}

func TestCSVRecordSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "loans.csv")
	require.NoError(t, os.WriteFile(path, []byte(sampleCSV), 0o600))

	src := &CSVRecordSource{Path: path, Policy: FilterPolicy{ExcludedYear: 2014}}
	records, stats, err := src.Records(context.Background())
	require.NoError(t, err)
	assert.Len(t, records, 3)
	assert.Equal(t, 3, stats.Kept)

	t.Run("missing file", func(t *testing.T) {
		missing := &CSVRecordSource{Path: filepath.Join(t.TempDir(), "nope.csv")}
		_, _, err := missing.Records(context.Background())
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, _, err := src.Records(ctx)
		assert.ErrorIs(t, err, context.Canceled)
	})
}
