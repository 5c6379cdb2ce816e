package store

import (
	"github.com/hedef100/academia-core/internal/models"
	"github.com/hedef100/academia-core/internal/scoring"
	appErrors "github.com/hedef100/academia-core/pkg/errors"
)

// Read views. Everything returned is a copy; holding on to a view
// never observes later transitions.

// UserByID resolves a user.
func (s *Store) UserByID(id string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := s.userIndex(id)
	if idx < 0 {
		return nil, appErrors.Clone(appErrors.ErrUserNotFound, "")
	}
	user := s.state.Users[idx].Clone()
	return &user, nil
}

// ResultsForStudent returns the student's results, newest first.
func (s *Store) ResultsForStudent(studentID string) []models.ExamResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	results := make([]models.ExamResult, 0)
	for i := range s.state.ExamResults {
		if s.state.ExamResults[i].StudentID == studentID {
			results = append(results, s.state.ExamResults[i].Clone())
		}
	}
	return results
}

// RequestsForStudent returns the coaching requests the student opened.
func (s *Store) RequestsForStudent(studentID string) []models.CoachingRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	requests := make([]models.CoachingRequest, 0)
	for _, request := range s.state.CoachingRequests {
		if request.StudentID == studentID {
			requests = append(requests, request)
		}
	}
	return requests
}

// RequestsForTeacher returns the coaching requests aimed at the
// teacher.
func (s *Store) RequestsForTeacher(teacherID string) []models.CoachingRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	requests := make([]models.CoachingRequest, 0)
	for _, request := range s.state.CoachingRequests {
		if request.TeacherID == teacherID {
			requests = append(requests, request)
		}
	}
	return requests
}

// StudentsOfTeacher returns the students currently assigned to the
// teacher.
func (s *Store) StudentsOfTeacher(teacherID string) []models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	students := make([]models.User, 0)
	for i := range s.state.Users {
		if s.state.Users[i].AssignedTeacherID == teacherID {
			students = append(students, s.state.Users[i].Clone())
		}
	}
	return students
}

// Students returns every student account.
func (s *Store) Students() []models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	students := make([]models.User, 0)
	for i := range s.state.Users {
		if s.state.Users[i].Role == models.RoleStudent {
			students = append(students, s.state.Users[i].Clone())
		}
	}
	return students
}

// OpenTeachers returns the teachers currently accepting coaching
// requests, the coaching-market view.
func (s *Store) OpenTeachers() []models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	teachers := make([]models.User, 0)
	for i := range s.state.Users {
		if s.state.Users[i].Role == models.RoleTeacher && s.state.Users[i].IsCoachingOpen {
			teachers = append(teachers, s.state.Users[i].Clone())
		}
	}
	return teachers
}

// ScheduleForStudent returns the student's live schedule, or nil.
func (s *Store) ScheduleForStudent(studentID string) *models.WeeklySchedule {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, schedule := range s.state.WeeklySchedules {
		if schedule.StudentID == studentID {
			clone := schedule.Clone()
			return &clone
		}
	}
	return nil
}

// GlobalAnnouncement returns the currently featured broadcast, or nil.
func (s *Store) GlobalAnnouncement() *models.Announcement {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, announcement := range s.state.Announcements {
		if announcement.IsGlobal {
			found := announcement
			return &found
		}
	}
	return nil
}

// Announcements returns all announcements, newest first.
func (s *Store) Announcements() []models.Announcement {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Announcement{}, s.state.Announcements...)
}

// AdminMessages returns the admin inbox, newest first.
func (s *Store) AdminMessages() []models.AdminMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.AdminMessage{}, s.state.AdminMessages...)
}

// Settings returns the current preferences.
func (s *Store) Settings() models.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Settings
}

// Counts returns headline totals for the admin panel.
func (s *Store) Counts() (totalUsers, totalExams int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.state.Users), len(s.state.ExamResults)
}

// StudentStatistics bundles every derived aggregate the statistics
// screen reads for one student.
type StudentStatistics struct {
	Summary        scoring.Summary       `json:"summary"`
	Radar          []scoring.RadarPoint  `json:"radar"`
	WrongTotals    []scoring.WrongTotal  `json:"wrongTotals"`
	ErrorTotals    models.ErrorBreakdown `json:"errorTotals"`
	TargetProgress float64               `json:"targetProgress"`
}

// StudentStats recomputes the aggregates from current state. Pure and
// cache-free; acceptable at expected data volumes.
func (s *Store) StudentStats(studentID string) (*StudentStatistics, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.userIndex(studentID)
	if idx < 0 {
		return nil, appErrors.Clone(appErrors.ErrUserNotFound, "student not found")
	}
	student := &s.state.Users[idx]

	results := make([]models.ExamResult, 0)
	for i := range s.state.ExamResults {
		if s.state.ExamResults[i].StudentID == studentID {
			results = append(results, s.state.ExamResults[i])
		}
	}

	summary := scoring.Aggregate(results)
	return &StudentStatistics{
		Summary:        summary,
		Radar:          scoring.RadarSeries(student.Subjects, results),
		WrongTotals:    scoring.WrongTotals(student.Subjects, results),
		ErrorTotals:    scoring.ErrorTotals(results),
		TargetProgress: scoring.ProgressPercent(summary.AvgNet, student.TargetNet),
	}, nil
}
