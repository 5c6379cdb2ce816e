package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hedef100/academia-core/internal/models"
	appErrors "github.com/hedef100/academia-core/pkg/errors"
)

func TestUpsertScheduleFillsAllWeekdays(t *testing.T) {
	s := newTestStore(t, Options{})

	schedule, err := s.UpsertWeeklySchedule(UpsertScheduleRequest{
		StudentID: "s1",
		TeacherID: "t1",
		Days: map[string]string{
			"monday": "40 soru matematik",
			"friday": "Paragraf denemesi",
		},
	})
	require.NoError(t, err)

	require.Len(t, schedule.Days, len(models.Weekdays))
	assert.Equal(t, "40 soru matematik", schedule.Days["monday"])
	assert.Equal(t, "Paragraf denemesi", schedule.Days["friday"])
	assert.Empty(t, schedule.Days["sunday"])
}

func TestUpsertScheduleReplacesExisting(t *testing.T) {
	s := newTestStore(t, Options{})

	_, err := s.UpsertWeeklySchedule(UpsertScheduleRequest{
		StudentID: "s1",
		TeacherID: "t1",
		Days:      map[string]string{"monday": "eski plan"},
	})
	require.NoError(t, err)

	_, err = s.UpsertWeeklySchedule(UpsertScheduleRequest{
		StudentID: "s1",
		TeacherID: "t1",
		Days:      map[string]string{"tuesday": "yeni plan"},
	})
	require.NoError(t, err)

	schedule := s.ScheduleForStudent("s1")
	require.NotNil(t, schedule)
	// Full overwrite, not a merge.
	assert.Empty(t, schedule.Days["monday"])
	assert.Equal(t, "yeni plan", schedule.Days["tuesday"])
}

func TestUpsertScheduleRejectsUnknownDayKey(t *testing.T) {
	s := newTestStore(t, Options{})

	_, err := s.UpsertWeeklySchedule(UpsertScheduleRequest{
		StudentID: "s1",
		TeacherID: "t1",
		Days:      map[string]string{"pazartesi": "plan"},
	})
	require.Error(t, err)
	assert.True(t, appErrors.Is(err, appErrors.ErrValidation))
	assert.Nil(t, s.ScheduleForStudent("s1"))
}

func TestScheduleForStudentNilWhenAbsent(t *testing.T) {
	s := newTestStore(t, Options{})
	assert.Nil(t, s.ScheduleForStudent("s1"))
}
