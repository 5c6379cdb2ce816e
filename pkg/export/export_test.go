package export

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTable() Table {
	return Table{
		Title:   "Gelisim Raporu",
		Headers: []string{"Tarih", "Deneme", "Net"},
		Rows: [][]string{
			{"2024-04-01", "Deneme 1", "7.50"},
			{"2024-04-08", "Deneme 2", "11.00"},
		},
		Footer: []string{"2 deneme", "ORTALAMA", "9.25"},
	}
}

func TestCSVExporterRendersHeaderRowsAndFooter(t *testing.T) {
	data, err := NewCSVExporter().Render(sampleTable())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "Tarih,Deneme,Net", lines[0])
	assert.Equal(t, "2024-04-01,Deneme 1,7.50", lines[1])
	assert.Equal(t, "2 deneme,ORTALAMA,9.25", lines[3])
}

func TestCSVExporterPadsShortRows(t *testing.T) {
	table := sampleTable()
	table.Rows = [][]string{{"2024-04-01"}}

	data, err := NewCSVExporter().Render(table)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	assert.Equal(t, "2024-04-01,,", lines[1])
}

func TestCSVExporterRequiresHeaders(t *testing.T) {
	_, err := NewCSVExporter().Render(Table{})
	require.Error(t, err)
}

func TestPDFExporterProducesDocument(t *testing.T) {
	data, err := NewPDFExporter().Render(sampleTable())
	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.True(t, strings.HasPrefix(string(data), "%PDF"))
}

func TestPDFExporterRequiresHeaders(t *testing.T) {
	_, err := NewPDFExporter().Render(Table{})
	require.Error(t, err)
}
