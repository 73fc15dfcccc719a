// Package report exports decomposed S-parameter series as an xlsx workbook,
// one sheet per series.
package report

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-sparam/sparam"
	"github.com/cwbudde/algo-sparam/units"
	"github.com/xuri/excelize/v2"
)

// Errors returned by WriteWorkbook.
var (
	ErrNoSeries = errors.New("report: no series to write")
)

const maxSheetName = 31

// Header returns the column titles of a series sheet.
func Header(unit units.Unit) []string {
	return []string{
		"Freq [" + unit.Symbol() + "]",
		"Re",
		"Im",
		"Mag",
		"dB",
		"Angle [rad]",
		"Phase [deg]",
	}
}

// WriteWorkbook writes one sheet per series to w. unit labels the frequency
// column and must be the unit the series were decorated with.
//
// Non-finite values (the dB of a zero magnitude) are written as text, since
// spreadsheet cells cannot hold them as numbers.
func WriteWorkbook(w io.Writer, series []sparam.Decorated, unit units.Unit) error {
	if len(series) == 0 {
		return ErrNoSeries
	}
	if !unit.Valid() {
		return fmt.Errorf("report: %w: %q", units.ErrInvalidUnit, unit)
	}

	f := excelize.NewFile()
	defer f.Close()

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("report: header style: %w", err)
	}

	names := SheetNames(series)
	for i, d := range series {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", names[0]); err != nil {
				return fmt.Errorf("report: rename sheet: %w", err)
			}
		} else if _, err := f.NewSheet(names[i]); err != nil {
			return fmt.Errorf("report: create sheet %q: %w", names[i], err)
		}
		if err := writeSheet(f, names[i], d, unit, headerStyle); err != nil {
			return fmt.Errorf("report: sheet %q: %w", names[i], err)
		}
	}
	f.SetActiveSheet(0)

	if err := f.Write(w); err != nil {
		return fmt.Errorf("report: write workbook: %w", err)
	}
	return nil
}

func writeSheet(f *excelize.File, sheet string, d sparam.Decorated, unit units.Unit, headerStyle int) error {
	if len(d.Freq) != d.Len() {
		return fmt.Errorf("%w: %d frequencies, %d samples", sparam.ErrMalformedSeries, len(d.Freq), d.Len())
	}

	header := Header(unit)
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}
	last, err := excelize.CoordinatesToCellName(len(header), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", last, headerStyle); err != nil {
		return err
	}
	if err := f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return err
	}
	if err := f.SetColWidth(sheet, "A", "G", 14); err != nil {
		return err
	}

	for i := range d.Freq {
		row := []any{
			cellValue(d.Freq[i]),
			cellValue(d.Re[i]),
			cellValue(d.Im[i]),
			cellValue(d.Mag[i]),
			cellValue(d.DB[i]),
			cellValue(d.Angle[i]),
			cellValue(d.Deg[i]),
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}

func cellValue(v float64) any {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	return v
}

// SheetNames returns a valid, unique sheet name for each series. Characters
// that xlsx forbids are replaced, names are cut to 31 characters and
// unnamed series are numbered.
func SheetNames(series []sparam.Decorated) []string {
	out := make([]string, len(series))
	seen := make(map[string]bool, len(series))

	for i, d := range series {
		base := sanitizeSheetName(d.Name)
		if base == "" {
			base = fmt.Sprintf("Series %d", i+1)
		}

		name := base
		for n := 2; seen[strings.ToLower(name)]; n++ {
			suffix := fmt.Sprintf(" (%d)", n)
			name = truncate(base, maxSheetName-len(suffix)) + suffix
		}
		seen[strings.ToLower(name)] = true
		out[i] = name
	}
	return out
}

func sanitizeSheetName(name string) string {
	name = strings.Map(func(r rune) rune {
		switch r {
		case ':', '\\', '/', '?', '*', '[', ']':
			return '_'
		}
		return r
	}, strings.TrimSpace(name))
	name = strings.Trim(name, "'")
	return truncate(name, maxSheetName)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
