// Package report turns a student's result history into exportable
// progress reports.
package report

import (
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/hedef100/academia-core/internal/models"
	"github.com/hedef100/academia-core/internal/store"
	"github.com/hedef100/academia-core/pkg/export"
)

// Service builds progress report tables from store views and renders
// them as CSV or PDF.
type Service struct {
	store  *store.Store
	csv    *export.CSVExporter
	pdf    *export.PDFExporter
	logger *zap.Logger
}

// NewService constructs the service.
func NewService(st *store.Store, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		store:  st,
		csv:    export.NewCSVExporter(),
		pdf:    export.NewPDFExporter(),
		logger: logger,
	}
}

// StudentProgress builds the report table: one row per exam in
// chronological order plus an average summary footer.
func (s *Service) StudentProgress(studentID string) (*export.Table, error) {
	student, err := s.store.UserByID(studentID)
	if err != nil {
		return nil, err
	}
	results := s.store.ResultsForStudent(studentID)
	stats, err := s.store.StudentStats(studentID)
	if err != nil {
		return nil, err
	}

	table := &export.Table{
		Title:   fmt.Sprintf("%s - Gelisim Raporu", student.Name),
		Headers: []string{"Tarih", "Deneme", "Net", "Puan Ort."},
	}
	// Store views are newest first; reports read top to bottom in time.
	for i := len(results) - 1; i >= 0; i-- {
		result := results[i]
		table.Rows = append(table.Rows, []string{
			result.Date.Format("2006-01-02"),
			result.Title,
			formatOptional(result.TotalNet),
			formatOptional(result.AverageScore),
		})
	}
	table.Footer = []string{
		fmt.Sprintf("%d deneme", stats.Summary.TotalCount),
		"ORTALAMA",
		formatFloat(stats.Summary.AvgNet),
		"",
	}
	return table, nil
}

// RenderCSV renders the student's progress report as CSV bytes.
func (s *Service) RenderCSV(studentID string) ([]byte, error) {
	table, err := s.StudentProgress(studentID)
	if err != nil {
		return nil, err
	}
	return s.csv.Render(*table)
}

// RenderPDF renders the student's progress report as PDF bytes.
func (s *Service) RenderPDF(studentID string) ([]byte, error) {
	table, err := s.StudentProgress(studentID)
	if err != nil {
		return nil, err
	}
	return s.pdf.Render(*table)
}

// ErrorSummary formats the accumulated error-cause totals with their
// display labels, for the report appendix.
func (s *Service) ErrorSummary(studentID string) ([]string, error) {
	stats, err := s.store.StudentStats(studentID)
	if err != nil {
		return nil, err
	}
	totals := stats.ErrorTotals
	lines := []string{
		fmt.Sprintf("%s: %d", models.ErrorLabels["knowledge"], totals.Knowledge),
		fmt.Sprintf("%s: %d", models.ErrorLabels["attention"], totals.Attention),
		fmt.Sprintf("%s: %d", models.ErrorLabels["calculation"], totals.Calculation),
		fmt.Sprintf("%s: %d", models.ErrorLabels["time"], totals.Time),
		fmt.Sprintf("%s: %d", models.ErrorLabels["other"], totals.Other),
	}
	return lines, nil
}

func formatOptional(v *float64) string {
	if v == nil {
		return "-"
	}
	return formatFloat(*v)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
