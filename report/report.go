// SPDX-License-Identifier: MIT
// Package: clusternet/report
//
// report.go - text and CSV writers.
//
// Contract:
//   • Every writer returns the first error from w; partial output may
//     already have been written.
//   • Node numbers are printed 1-based.

package report

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"
	"unicode/utf8"

	"github.com/katalvlaran/clusternet/builder"
	"github.com/katalvlaran/clusternet/matrix"
	"github.com/katalvlaran/clusternet/metrics"
)

// ErrNilWriter indicates a nil io.Writer.
var ErrNilWriter = errors.New("report: nil writer")

// CSVHeader is the first record written by WriteSweepCSV.
var CSVHeader = []string{"family", "N", "D", "aD", "S", "C", "T"}

// formatValue prints integers without a fractional part and everything else
// in the shortest exact form.
func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// WriteMatrix prints m with 1-based headers inside a box-drawing frame:
//
//	┌───┬───────┐
//	│   │ 1 2 3 │
//	├───┼───────┤
//	│ 1 │ 0 1 0 │
//	...
//	└───┴───────┘
func WriteMatrix(w io.Writer, m matrix.Matrix) error {
	if w == nil {
		return ErrNilWriter
	}
	if err := matrix.ValidateNotNil(m); err != nil {
		return fmt.Errorf("report: %w", err)
	}

	rows, cols := m.Rows(), m.Cols()
	cells := make([][]string, rows)
	width := len(strconv.Itoa(cols))
	for i := 0; i < rows; i++ {
		cells[i] = make([]string, cols)
		for j := 0; j < cols; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return fmt.Errorf("report: %w", err)
			}
			cells[i][j] = formatValue(v)
			width = max(width, utf8.RuneCountInString(cells[i][j]))
		}
	}
	label := len(strconv.Itoa(rows))

	header := make([]string, cols)
	for j := range header {
		header[j] = pad(strconv.Itoa(j+1), width)
	}
	body := max(cols*(width+1)-1, 0)

	var b strings.Builder
	b.WriteString("┌" + strings.Repeat("─", label+2) + "┬" + strings.Repeat("─", body+2) + "┐\n")
	b.WriteString("│ " + strings.Repeat(" ", label) + " │ " + strings.Join(header, " ") + " │\n")
	b.WriteString("├" + strings.Repeat("─", label+2) + "┼" + strings.Repeat("─", body+2) + "┤\n")
	for i := 0; i < rows; i++ {
		row := make([]string, cols)
		for j, c := range cells[i] {
			row[j] = pad(c, width)
		}
		b.WriteString("│ " + pad(strconv.Itoa(i+1), label) + " │ " + strings.Join(row, " ") + " │\n")
	}
	b.WriteString("└" + strings.Repeat("─", label+2) + "┴" + strings.Repeat("─", body+2) + "┘\n")

	_, err := io.WriteString(w, b.String())

	return err
}

// pad right-aligns s to width runes.
func pad(s string, width int) string {
	if n := utf8.RuneCountInString(s); n < width {
		return strings.Repeat(" ", width-n) + s
	}

	return s
}

// WriteMetrics prints one "label: value" line per metrics field.
func WriteMetrics(w io.Writer, m metrics.Metrics) error {
	if w == nil {
		return ErrNilWriter
	}
	for _, f := range m.Fields() {
		if _, err := fmt.Fprintln(w, f.String()); err != nil {
			return err
		}
	}

	return nil
}

// WriteEdges prints the classified edge list as aligned columns
// "from to category rule", 1-based. Substituted links are marked with '*'.
func WriteEdges(w io.Writer, edges []builder.Edge) error {
	if w == nil {
		return ErrNilWriter
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintln(tw, "FROM\tTO\tCATEGORY\tRULE"); err != nil {
		return err
	}
	for _, e := range edges {
		rule := e.Rule
		if e.Clamped {
			rule += "*"
		}
		if _, err := fmt.Fprintf(tw, "%d\t%d\t%s\t%s\n", e.From+1, e.To+1, e.Category, rule); err != nil {
			return err
		}
	}

	return tw.Flush()
}

// WriteSweepTable prints one aligned row per scale.
func WriteSweepTable(w io.Writer, family builder.Family, rows []metrics.SweepRow) error {
	if w == nil {
		return ErrNilWriter
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	if _, err := fmt.Fprintf(tw, "%s\tclusters\tN\tD\taD\tS\tC\tT\t\n", family); err != nil {
		return err
	}
	for _, r := range rows {
		if _, err := fmt.Fprintf(tw, "\t%d\t%d\t%s\t%.4f\t%d\t%d\t%.4f\t\n",
			r.Clusters, r.Processors, formatValue(r.Diameter), r.AvgDiameter, r.MaxDegree, r.Cost, r.Traffic); err != nil {
			return err
		}
	}

	return tw.Flush()
}

// WriteSweepCSV writes CSVHeader followed by one record per scale.
func WriteSweepCSV(w io.Writer, family builder.Family, rows []metrics.SweepRow) error {
	if w == nil {
		return ErrNilWriter
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(CSVHeader); err != nil {
		return err
	}
	for _, r := range rows {
		rec := []string{
			family.String(),
			strconv.Itoa(r.Processors),
			formatValue(r.Diameter),
			formatValue(r.AvgDiameter),
			strconv.Itoa(r.MaxDegree),
			strconv.Itoa(r.Cost),
			formatValue(r.Traffic),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}
