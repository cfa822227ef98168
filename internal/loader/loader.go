// Package loader reads the quarterback season workbook into a stats.Dataset.
package loader

import (
	"errors"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/albapepper/qbscore/internal/stats"
)

// DefaultPath is the workbook read when no input is configured.
const DefaultPath = "qb_stats.xlsx"

var (
	ErrNoSheets      = errors.New("workbook has no sheets")
	ErrSheetNotFound = errors.New("sheet not found")
	ErrNoHeader      = errors.New("sheet has no header row")
	ErrMissingColumn = errors.New("missing required column")
	ErrInvalidValue  = errors.New("invalid numeric value")
)

// LoadError reports why a workbook could not be turned into a dataset.
// Row is 1-based as shown in the spreadsheet; zero means the whole file.
type LoadError struct {
	Path   string
	Sheet  string
	Row    int
	Column string
	Err    error
}

func (e *LoadError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "load %s", e.Path)
	if e.Sheet != "" {
		fmt.Fprintf(&b, " [%s]", e.Sheet)
	}
	if e.Row > 0 {
		fmt.Fprintf(&b, " row %d", e.Row)
	}
	if e.Column != "" {
		fmt.Fprintf(&b, " column %q", e.Column)
	}
	fmt.Fprintf(&b, ": %v", e.Err)
	return b.String()
}

func (e *LoadError) Unwrap() error { return e.Err }

// Load opens the workbook at path and reads sheet (the first sheet when
// empty). The header row must carry the player column and every metric in
// stats.Metrics; other columns are ignored and blank rows are skipped.
func Load(path, sheet string) (stats.Dataset, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	defer f.Close()

	return read(f, path, sheet)
}

func read(f *excelize.File, path, sheet string) (stats.Dataset, error) {
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, &LoadError{Path: path, Err: ErrNoSheets}
	}
	if sheet == "" {
		sheet = sheets[0]
	} else if !contains(sheets, sheet) {
		return nil, &LoadError{Path: path, Sheet: sheet, Err: ErrSheetNotFound}
	}

	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, &LoadError{Path: path, Sheet: sheet, Err: fmt.Errorf("read rows: %w", err)}
	}
	if len(rows) == 0 {
		return nil, &LoadError{Path: path, Sheet: sheet, Err: ErrNoHeader}
	}

	cols, err := headerIndex(rows[0])
	if err != nil {
		return nil, &LoadError{Path: path, Sheet: sheet, Row: 1, Err: err}
	}

	ds := make(stats.Dataset, 0, len(rows)-1)
	for i, row := range rows[1:] {
		if blank(row) {
			continue
		}
		rowNum := i + 2
		rec := stats.PlayerRecord{Player: strings.TrimSpace(cell(row, cols[stats.PlayerColumn]))}
		for _, m := range stats.Metrics {
			raw := cell(row, cols[string(m)])
			v, ok := stats.ParseValue(raw)
			if !ok {
				return nil, &LoadError{
					Path: path, Sheet: sheet, Row: rowNum, Column: string(m),
					Err: fmt.Errorf("%w: %q", ErrInvalidValue, raw),
				}
			}
			rec = rec.WithValue(m, v)
		}
		ds = append(ds, rec)
	}
	return ds, nil
}

// headerIndex maps each required header to its column position.
func headerIndex(header []string) (map[string]int, error) {
	idx := make(map[string]int, len(header))
	for i, h := range header {
		name := strings.TrimSpace(h)
		if _, dup := idx[name]; !dup {
			idx[name] = i
		}
	}

	var missing []string
	for _, name := range requiredColumns() {
		if _, ok := idx[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumn, strings.Join(missing, ", "))
	}
	return idx, nil
}

func requiredColumns() []string {
	out := []string{stats.PlayerColumn}
	for _, m := range stats.Metrics {
		out = append(out, string(m))
	}
	return out
}

// cell tolerates short rows; excelize trims trailing empty cells.
func cell(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}

func blank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
