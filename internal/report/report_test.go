package report

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/hedef100/academia-core/internal/models"
	"github.com/hedef100/academia-core/internal/store"
)

func floatPtr(v float64) *float64 {
	return &v
}

func newServiceForTest(t *testing.T) (*Service, *store.Store) {
	t.Helper()
	st, err := store.Open(context.Background(), nil, store.Options{})
	require.NoError(t, err)

	_, err = st.AddExamResult(store.AddExamResultRequest{
		StudentID: "s1",
		Title:     "TYT Deneme 1",
		Date:      time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
		SubjectResults: map[string]models.SubjectResult{
			"mat": {Correct: floatPtr(8), Wrong: floatPtr(2)},
		},
		ErrorBreakdown: &models.ErrorBreakdown{Knowledge: 2, Attention: 1},
	})
	require.NoError(t, err)

	_, err = st.AddExamResult(store.AddExamResultRequest{
		StudentID: "s1",
		Title:     "TYT Deneme 2",
		Date:      time.Date(2024, 4, 8, 0, 0, 0, 0, time.UTC),
		SubjectResults: map[string]models.SubjectResult{
			"mat": {Correct: floatPtr(12), Wrong: floatPtr(4)},
		},
	})
	require.NoError(t, err)

	return NewService(st, zap.NewNop()), st
}

func TestStudentProgressBuildsChronologicalTable(t *testing.T) {
	svc, _ := newServiceForTest(t)

	table, err := svc.StudentProgress("s1")
	require.NoError(t, err)

	assert.Contains(t, table.Title, "Selim Çalışkan")
	require.Len(t, table.Rows, 2)
	assert.Equal(t, "2024-04-01", table.Rows[0][0])
	assert.Equal(t, "TYT Deneme 1", table.Rows[0][1])
	assert.Equal(t, "7.50", table.Rows[0][2])
	assert.Equal(t, "-", table.Rows[0][3])
	assert.Equal(t, "2024-04-08", table.Rows[1][0])
	assert.Equal(t, "11.00", table.Rows[1][2])

	require.Len(t, table.Footer, 4)
	assert.Equal(t, "2 deneme", table.Footer[0])
	assert.Equal(t, "ORTALAMA", table.Footer[1])
	assert.Equal(t, "9.25", table.Footer[2])
}

func TestStudentProgressUnknownStudent(t *testing.T) {
	svc, _ := newServiceForTest(t)

	_, err := svc.StudentProgress("yok")
	require.Error(t, err)
}

func TestRenderCSV(t *testing.T) {
	svc, _ := newServiceForTest(t)

	data, err := svc.RenderCSV("s1")
	require.NoError(t, err)

	content := string(data)
	assert.Contains(t, content, "Tarih,Deneme,Net,Puan Ort.")
	assert.Contains(t, content, "TYT Deneme 1")
	assert.Contains(t, content, "ORTALAMA")
}

func TestRenderPDF(t *testing.T) {
	svc, _ := newServiceForTest(t)

	data, err := svc.RenderPDF("s1")
	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.True(t, strings.HasPrefix(string(data), "%PDF"))
}

func TestErrorSummaryUsesDisplayLabels(t *testing.T) {
	svc, _ := newServiceForTest(t)

	lines, err := svc.ErrorSummary("s1")
	require.NoError(t, err)
	require.Len(t, lines, 5)
	assert.Equal(t, "Bilgi Eksikliği: 2", lines[0])
	assert.Equal(t, "Dikkat Hatası: 1", lines[1])
	assert.Equal(t, "Diğer: 0", lines[4])
}
