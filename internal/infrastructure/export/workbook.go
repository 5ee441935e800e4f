package export

import (
	"fmt"
	"io"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/hireloop/hireloop/internal/domain/analytics"
)

const (
	SheetOverview      = "Overview"
	SheetDistributions = "Distributions"
	SheetHeatmap       = "Heatmap"
	SheetFunnel        = "Funnel"
	SheetDiamonds      = "Diamonds"

	ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// Exporter adapts the package functions to the analytics export use case.
type Exporter struct{}

func NewExporter() *Exporter { return &Exporter{} }

func (Exporter) Filename(jobCode string, generated time.Time) string {
	return Filename(jobCode, generated)
}

func (Exporter) WriteJobDetail(w io.Writer, detail *analytics.JobDetail, generated time.Time) error {
	return WriteJobDetail(w, detail, generated)
}

// Filename is the download name for a job's analytics workbook.
func Filename(jobCode string, generated time.Time) string {
	return fmt.Sprintf("analytics_%s_%s.xlsx", jobCode, generated.Format("20060102"))
}

// WriteJobDetail renders the job analytics as an xlsx workbook.
func WriteJobDetail(w io.Writer, detail *analytics.JobDetail, generated time.Time) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetOverview); err != nil {
		return fmt.Errorf("failed to rename sheet: %w", err)
	}
	for _, name := range []string{SheetDistributions, SheetHeatmap, SheetFunnel, SheetDiamonds} {
		if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("failed to create sheet %s: %w", name, err)
		}
	}

	styles, err := newStyles(f)
	if err != nil {
		return fmt.Errorf("failed to create styles: %w", err)
	}

	builders := []struct {
		name  string
		build func(*excelize.File, *analytics.JobDetail, sheetStyles) error
	}{
		{SheetOverview, func(f *excelize.File, d *analytics.JobDetail, s sheetStyles) error {
			return writeOverview(f, d, s, generated)
		}},
		{SheetDistributions, writeDistributions},
		{SheetHeatmap, writeHeatmap},
		{SheetFunnel, writeFunnel},
		{SheetDiamonds, writeDiamonds},
	}
	for _, b := range builders {
		if err := b.build(f, detail, styles); err != nil {
			return fmt.Errorf("failed to create %s sheet: %w", b.name, err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

type sheetStyles struct {
	header int
	label  int
}

func newStyles(f *excelize.File) (sheetStyles, error) {
	header, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return sheetStyles{}, err
	}
	label, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return sheetStyles{}, err
	}
	return sheetStyles{header: header, label: label}, nil
}

// setRow writes values from column A of row.
func setRow(f *excelize.File, sheet string, row int, values ...interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &values)
}

func setHeader(f *excelize.File, sheet string, row int, style int, titles ...interface{}) error {
	if err := setRow(f, sheet, row, titles...); err != nil {
		return err
	}
	first, _ := excelize.CoordinatesToCellName(1, row)
	last, _ := excelize.CoordinatesToCellName(len(titles), row)
	return f.SetCellStyle(sheet, first, last, style)
}

func writeOverview(f *excelize.File, d *analytics.JobDetail, s sheetStyles, generated time.Time) error {
	sheet := SheetOverview
	if err := f.SetColWidth(sheet, "A", "A", 24); err != nil {
		return err
	}
	if err := f.SetColWidth(sheet, "B", "B", 40); err != nil {
		return err
	}

	posted := ""
	if d.JD.Posted != nil {
		posted = *d.JD.Posted
	}
	rows := [][2]interface{}{
		{"Job Code", d.JD.Code},
		{"Title", d.JD.Title},
		{"Status", d.JD.Status},
		{"Department", d.JD.Department},
		{"Team", d.JD.Team},
		{"Posted", posted},
		{"Applied", d.Totals.Applied},
		{"Completed", d.Totals.Completed},
		{"Completion %", d.Totals.CompletionPct},
		{"Diamonds Found", d.Totals.DiamondsFound},
		{"Time Saved (hours)", d.ROI.Calculated.TimeSavedHours},
		{"Cost Saved (USD)", d.ROI.Calculated.CostSaved},
		{"Last Updated", d.Summary.LastUpdated.UTC().Format(time.RFC3339)},
		{"Generated", generated.UTC().Format(time.RFC3339)},
	}
	for i, r := range rows {
		row := i + 1
		if err := setRow(f, sheet, row, r[0], r[1]); err != nil {
			return err
		}
		cell, _ := excelize.CoordinatesToCellName(1, row)
		if err := f.SetCellStyle(sheet, cell, cell, s.label); err != nil {
			return err
		}
	}
	return nil
}

func writeDistributions(f *excelize.File, d *analytics.JobDetail, s sheetStyles) error {
	sheet := SheetDistributions
	if err := setHeader(f, sheet, 1, s.header, "Bucket", "Claim Validity", "Relevancy"); err != nil {
		return err
	}
	for i := 0; i < 5; i++ {
		label := fmt.Sprintf("%d/5", i+1)
		if err := setRow(f, sheet, i+2, label, d.Distributions.ClaimValidity[i], d.Distributions.Relevancy[i]); err != nil {
			return err
		}
	}
	return nil
}

// writeHeatmap lays the matrix out with relevancy rows and claim validity columns, both
// from 5 down to 1.
func writeHeatmap(f *excelize.File, d *analytics.JobDetail, s sheetStyles) error {
	sheet := SheetHeatmap
	header := []interface{}{"Relevancy \\ Claim Validity"}
	for _, label := range d.Heatmap.Axes.ClaimValidity {
		header = append(header, label)
	}
	if err := setHeader(f, sheet, 1, s.header, header...); err != nil {
		return err
	}

	for i := 0; i < 5; i++ {
		rel := 5 - i
		values := []interface{}{fmt.Sprintf("%d/5", rel)}
		for claim := 5; claim >= 1; claim-- {
			values = append(values, d.Heatmap.Matrix[rel-1][claim-1])
		}
		if err := setRow(f, sheet, i+2, values...); err != nil {
			return err
		}
	}
	return f.SetColWidth(sheet, "A", "A", 26)
}

func writeFunnel(f *excelize.File, d *analytics.JobDetail, s sheetStyles) error {
	sheet := SheetFunnel
	if err := setHeader(f, sheet, 1, s.header, "Stage", "Count", "Percentage"); err != nil {
		return err
	}
	for i, stage := range d.CompletionFunnel {
		if err := setRow(f, sheet, i+2, stage.Stage, stage.Count, stage.Percentage); err != nil {
			return err
		}
	}
	return f.SetColWidth(sheet, "A", "A", 28)
}

func writeDiamonds(f *excelize.File, d *analytics.JobDetail, s sheetStyles) error {
	sheet := SheetDiamonds
	if err := setHeader(f, sheet, 1, s.header, "Candidate ID", "Name", "Claim Validity", "Relevancy", "Combined"); err != nil {
		return err
	}
	for i, c := range d.Diamonds {
		if err := setRow(f, sheet, i+2, c.ID, c.Name, c.ClaimValidityScore, c.RelevancyScore, c.CombinedScore); err != nil {
			return err
		}
	}
	return f.SetColWidth(sheet, "B", "B", 30)
}
