package store

import (
	"fmt"
	"time"

	"github.com/hedef100/academia-core/internal/models"
	"github.com/hedef100/academia-core/internal/scoring"
	appErrors "github.com/hedef100/academia-core/pkg/errors"
)

// AddExamResultRequest describes a submitted exam entry. Entry keys
// must belong to the student's subject catalogue.
type AddExamResultRequest struct {
	StudentID      string                          `json:"studentId" validate:"required"`
	Title          string                          `json:"title" validate:"required"`
	Date           time.Time                       `json:"date"`
	SubjectResults map[string]models.SubjectResult `json:"subjectResults" validate:"required,min=1"`
	ErrorBreakdown *models.ErrorBreakdown          `json:"errorBreakdown"`
}

// AddExamResult computes the net and average scores for the entry and
// prepends the immutable result to the collection.
func (s *Store) AddExamResult(req AddExamResultRequest) (*models.ExamResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	result, err := s.addExamResult(req)
	s.finish("add_exam_result", err)
	return result, err
}

func (s *Store) addExamResult(req AddExamResultRequest) (*models.ExamResult, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}

	idx := s.userIndex(req.StudentID)
	if idx < 0 {
		return nil, appErrors.Clone(appErrors.ErrUserNotFound, "student not found")
	}
	student := &s.state.Users[idx]
	if student.Role != models.RoleStudent {
		return nil, appErrors.Clone(appErrors.ErrForbidden, "only students record exam results")
	}

	entries := make(map[string]models.SubjectResult, len(req.SubjectResults))
	for subjectID, entry := range req.SubjectResults {
		subject, ok := student.SubjectByID(subjectID)
		if !ok {
			return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unknown subject %q", subjectID))
		}
		entry = entry.Clone()
		if subject.EvaluationType == models.EvaluationScore && entry.Score != nil {
			clamped := scoring.ClampScore(*entry.Score)
			entry.Score = &clamped
		}
		entries[subjectID] = entry
	}

	date := req.Date
	if date.IsZero() {
		date = s.now()
	}

	result := models.ExamResult{
		ID:             s.newID(),
		StudentID:      req.StudentID,
		Date:           date,
		Title:          req.Title,
		SubjectResults: entries,
		TotalNet:       scoring.Net(student.Subjects, entries),
		AverageScore:   scoring.AverageScore(student.Subjects, entries),
	}
	if req.ErrorBreakdown != nil {
		breakdown := *req.ErrorBreakdown
		result.ErrorBreakdown = &breakdown
	}

	s.state.ExamResults = append([]models.ExamResult{result}, s.state.ExamResults...)
	created := result.Clone()
	return &created, nil
}
