package dataprocessing

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/volatiletech/null/v8"

	"nascli/pkg/contracts/domain"
)

// Dataset is the normalized, read-only form of one survey file. It is
// immutable after ParseFile returns; every summary query derives new
// slices instead of mutating it.
type Dataset struct {
	Records        []domain.SurveyRecord
	Classification Classification
	OutcomeCodes   []string // file order, deduplicated

	// Data-quality counters exposed so summary consumers can audit
	// what was silently absorbed into "absent" semantics.
	MalformedYears int
	SkippedRows    int
}

// ParseFile reads a NAS survey CSV from disk. A missing or unreadable
// file is a load-time structural failure: the error wraps the
// underlying fs error so callers can match os.ErrNotExist.
func ParseFile(path string, logger *slog.Logger) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset file: %w", err)
	}
	defer f.Close()

	ds, err := Parse(f, logger)
	if err != nil {
		return nil, fmt.Errorf("parse dataset %s: %w", path, err)
	}
	return ds, nil
}

// Parse reads a survey table from r. The header row is cleaned and
// mapped by name, so column order beyond the convention of identity
// columns first is not assumed.
func Parse(r io.Reader, logger *slog.Logger) (*Dataset, error) {
	if logger == nil {
		logger = slog.Default()
	}

	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	rawHeader, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header row: %w", err)
	}

	cols, err := mapColumns(CleanHeaders(rawHeader))
	if err != nil {
		return nil, err
	}

	ds := &Dataset{
		OutcomeCodes:   cols.outcomeOrder,
		Classification: Classify(cols.outcomeOrder),
	}

	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// A structurally broken row degrades to skipped, not fatal;
			// one bad row must never discard the whole analysis.
			logger.Warn("skipping unreadable row", slog.String("error", err.Error()))
			ds.SkippedRows++
			continue
		}

		record, malformedYear := parseRow(row, cols)
		if record == nil {
			ds.SkippedRows++
			continue
		}
		if malformedYear {
			ds.MalformedYears++
		}
		ds.Records = append(ds.Records, *record)
	}

	logger.Info("dataset parsed",
		slog.Int("records", len(ds.Records)),
		slog.Int("outcome_columns", len(ds.OutcomeCodes)),
		slog.Int("malformed_years", ds.MalformedYears),
		slog.Int("skipped_rows", ds.SkippedRows))

	return ds, nil
}

// columnMap resolves cleaned header names to column indexes, mirroring
// the by-name mapping the raw file requires (column positions are not
// guaranteed beyond convention).
type columnMap struct {
	country, state, district, year, class int
	schools, students                     int
	outcomes                              map[string]int // code -> column index
	outcomeOrder                          []string
}

func mapColumns(cleaned []string) (*columnMap, error) {
	cols := &columnMap{
		country: -1, state: -1, district: -1, year: -1, class: -1,
		schools: -1, students: -1,
		outcomes: make(map[string]int),
	}

	for i, name := range cleaned {
		if code, ok := OutcomeCode(name); ok {
			if _, dup := cols.outcomes[code]; dup {
				continue
			}
			cols.outcomes[code] = i
			cols.outcomeOrder = append(cols.outcomeOrder, code)
			continue
		}

		switch {
		case name == "Country":
			cols.country = i
		case name == "State":
			cols.state = i
		case name == "District":
			cols.district = i
		case name == "Year":
			cols.year = i
		case name == "Class":
			cols.class = i
		case strings.Contains(name, "Schools_Surveyed"):
			cols.schools = i
		case strings.Contains(name, "Students_Surveyed"):
			cols.students = i
		}
	}

	// Identity columns are required; measurement columns vary by
	// dataset shape and may legitimately be sparse.
	required := map[string]int{
		"State":    cols.state,
		"District": cols.district,
		"Year":     cols.year,
	}
	for name, idx := range required {
		if idx < 0 {
			return nil, fmt.Errorf("required column %q not found in header", name)
		}
	}

	return cols, nil
}

// parseRow converts one CSV row into a SurveyRecord. It returns nil for
// rows that carry no usable identity, and reports whether the year
// label had no four-digit run.
func parseRow(row []string, cols *columnMap) (*domain.SurveyRecord, bool) {
	field := func(idx int) string {
		if idx < 0 || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	state := field(cols.state)
	district := field(cols.district)
	if state == "" && district == "" {
		return nil, false
	}

	record := &domain.SurveyRecord{
		Country:  field(cols.country),
		State:    state,
		District: district,
		Scores:   make(map[string]float64, len(cols.outcomes)),
	}

	malformedYear := false
	if year, ok := ExtractYear(field(cols.year)); ok {
		record.Year = null.IntFrom(year)
	} else {
		malformedYear = true
	}

	if v, err := strconv.Atoi(field(cols.class)); err == nil {
		record.Class = v
	}
	if v, err := strconv.ParseInt(field(cols.schools), 10, 64); err == nil {
		record.SchoolsSurveyed = v
	}
	if v, err := strconv.ParseInt(field(cols.students), 10, 64); err == nil {
		record.StudentsSurveyed = v
	}

	// Non-numeric or empty measurement cells stay absent from the map:
	// skip-missing semantics, never zero-fill.
	for code, idx := range cols.outcomes {
		cell := field(idx)
		if cell == "" {
			continue
		}
		v, err := strconv.ParseFloat(strings.ReplaceAll(cell, ",", ""), 64)
		if err != nil {
			continue
		}
		record.Scores[code] = v
	}

	return record, malformedYear
}
