package ingest

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	dErrors "loanmap/pkg/domain-errors"
)

// Column names in the Prosper loan export.
const (
	ColumnOriginationDate = "LoanOriginationDate"
	ColumnRegion          = "BorrowerState"
	ColumnAmount          = "LoanOriginalAmount"
)

var dateLayouts = []string{
	"2006-01-02 15:04:05",
	time.RFC3339,
	"2006-01-02",
	"1/2/2006",
}

// Record is one loan. Year is the UTC year of OriginationDate.
type Record struct {
	OriginationDate time.Time
	Year            int
	Region          string
	Amount          float64
}

// NewRecord derives Year from the origination date.
func NewRecord(originated time.Time, region string, amount float64) Record {
	return Record{
		OriginationDate: originated,
		Year:            originated.UTC().Year(),
		Region:          region,
		Amount:          amount,
	}
}

// FilterPolicy decides which parsed rows reach the aggregator.
type FilterPolicy struct {
	// ExcludedYear drops every record originating in that year; zero disables.
	ExcludedYear int
	// KeepEmptyRegion retains rows with no borrower state.
	KeepEmptyRegion bool
}

// Stats counts what the reader did with each row.
type Stats struct {
	Rows          int
	Kept          int
	EmptyRegion   int
	ExcludedYear  int
	BadDate       int
	BadAmount     int
	ShortRowCount int
}

// Skipped is the number of rows that did not become records.
func (s Stats) Skipped() int {
	return s.Rows - s.Kept
}

// ReadRecords parses a loan CSV with a header row. Malformed rows are skipped
// and counted; a missing required column is an error.
func ReadRecords(r io.Reader, policy FilterPolicy) ([]Record, Stats, error) {
	var stats Stats

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.ReuseRecord = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, stats, dErrors.New(dErrors.CodeValidation, "records file is empty")
	}
	if err != nil {
		return nil, stats, fmt.Errorf("read header: %w", err)
	}
	cols, err := columnIndex(header)
	if err != nil {
		return nil, stats, err
	}

	var records []Record
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, stats, fmt.Errorf("read row %d: %w", stats.Rows+1, err)
		}
		stats.Rows++

		if len(row) <= cols.max {
			stats.ShortRowCount++
			continue
		}
		region := strings.TrimSpace(row[cols.region])
		if region == "" && !policy.KeepEmptyRegion {
			stats.EmptyRegion++
			continue
		}
		originated, ok := parseDate(row[cols.date])
		if !ok {
			stats.BadDate++
			continue
		}
		amount, err := strconv.ParseFloat(strings.TrimSpace(row[cols.amount]), 64)
		if err != nil || amount < 0 || math.IsNaN(amount) || math.IsInf(amount, 0) {
			stats.BadAmount++
			continue
		}
		rec := NewRecord(originated, region, amount)
		if policy.ExcludedYear != 0 && rec.Year == policy.ExcludedYear {
			stats.ExcludedYear++
			continue
		}
		records = append(records, rec)
		stats.Kept++
	}
	return records, stats, nil
}

type columns struct {
	date, region, amount, max int
}

func columnIndex(header []string) (columns, error) {
	idx := map[string]int{}
	for i, h := range header {
		idx[strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))] = i
	}
	var c columns
	for name, dst := range map[string]*int{
		ColumnOriginationDate: &c.date,
		ColumnRegion:          &c.region,
		ColumnAmount:          &c.amount,
	} {
		i, ok := idx[name]
		if !ok {
			return c, dErrors.New(dErrors.CodeValidation, fmt.Sprintf("records file is missing column %q", name))
		}
		*dst = i
	}
	c.max = max(c.date, c.region, c.amount)
	return c, nil
}

func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// CSVRecordSource loads records from a CSV file on disk.
type CSVRecordSource struct {
	Path   string
	Policy FilterPolicy
	Logger *slog.Logger
}

// Records reads and filters the file. The context is checked before the read
// starts; parsing itself is not interruptible.
func (s *CSVRecordSource) Records(ctx context.Context) ([]Record, Stats, error) {
	if err := ctx.Err(); err != nil {
		return nil, Stats{}, err
	}
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, Stats{}, fmt.Errorf("open records: %w", err)
	}
	defer f.Close()

	records, stats, err := ReadRecords(f, s.Policy)
	if err != nil {
		return nil, stats, fmt.Errorf("%s: %w", s.Path, err)
	}
	if s.Logger != nil {
		s.Logger.InfoContext(ctx, "loan records read",
			"path", s.Path,
			"rows", stats.Rows,
			"kept", stats.Kept,
			"empty_region", stats.EmptyRegion,
			"excluded_year", stats.ExcludedYear,
			"bad_date", stats.BadDate,
			"bad_amount", stats.BadAmount,
		)
	}
	return records, stats, nil
}
