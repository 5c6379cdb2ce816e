package store

import (
	"fmt"

	"github.com/hedef100/academia-core/internal/models"
	appErrors "github.com/hedef100/academia-core/pkg/errors"
)

// UpsertScheduleRequest describes a weekly plan write. Days not
// present in the map become rest days.
type UpsertScheduleRequest struct {
	StudentID string            `json:"studentId" validate:"required"`
	TeacherID string            `json:"teacherId" validate:"required"`
	Days      map[string]string `json:"days"`
}

// UpsertWeeklySchedule replaces the student's schedule as a whole.
// There is never more than one schedule per student and the write is
// a full overwrite, not a merge.
func (s *Store) UpsertWeeklySchedule(req UpsertScheduleRequest) (*models.WeeklySchedule, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	schedule, err := s.upsertWeeklySchedule(req)
	s.finish("upsert_weekly_schedule", err)
	return schedule, err
}

func (s *Store) upsertWeeklySchedule(req UpsertScheduleRequest) (*models.WeeklySchedule, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}
	for key := range req.Days {
		if !models.ValidWeekday(key) {
			return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unknown day %q", key))
		}
	}

	days := make(map[string]string, len(models.Weekdays))
	for _, day := range models.Weekdays {
		days[day] = req.Days[day]
	}
	schedule := models.WeeklySchedule{
		StudentID: req.StudentID,
		TeacherID: req.TeacherID,
		Days:      days,
	}

	kept := s.state.WeeklySchedules[:0]
	for _, existing := range s.state.WeeklySchedules {
		if existing.StudentID != req.StudentID {
			kept = append(kept, existing)
		}
	}
	s.state.WeeklySchedules = append(kept, schedule)

	upserted := schedule.Clone()
	return &upserted, nil
}
