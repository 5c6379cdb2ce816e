package store

import (
	"github.com/hedef100/academia-core/internal/models"
	appErrors "github.com/hedef100/academia-core/pkg/errors"
)

// RequestCoaching opens a pending pairing request from a student
// towards a teacher. A student may not hold more than one live
// (pending or accepted) request to the same teacher.
func (s *Store) RequestCoaching(studentID, teacherID string) (*models.CoachingRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	request, err := s.requestCoaching(studentID, teacherID)
	s.finish("request_coaching", err)
	return request, err
}

func (s *Store) requestCoaching(studentID, teacherID string) (*models.CoachingRequest, error) {
	studentIdx := s.userIndex(studentID)
	if studentIdx < 0 || s.state.Users[studentIdx].Role != models.RoleStudent {
		return nil, appErrors.Clone(appErrors.ErrUserNotFound, "student not found")
	}
	teacherIdx := s.userIndex(teacherID)
	if teacherIdx < 0 || s.state.Users[teacherIdx].Role != models.RoleTeacher {
		return nil, appErrors.Clone(appErrors.ErrUserNotFound, "teacher not found")
	}

	for i := range s.state.CoachingRequests {
		existing := &s.state.CoachingRequests[i]
		if existing.StudentID == studentID && existing.TeacherID == teacherID && existing.Status != models.RequestRejected {
			return nil, appErrors.Clone(appErrors.ErrDuplicateRequest, "")
		}
	}

	request := models.CoachingRequest{
		ID:          s.newID(),
		StudentID:   studentID,
		StudentName: s.state.Users[studentIdx].Name,
		TeacherID:   teacherID,
		Status:      models.RequestPending,
		Date:        s.now(),
	}
	s.state.CoachingRequests = append(s.state.CoachingRequests, request)
	created := request
	return &created, nil
}

// UpdateCoachingStatus decides a pending request. Accepting also
// assigns the teacher to the student in the same transition, so no
// observable state ever has an accepted request without the matching
// assignment.
func (s *Store) UpdateCoachingStatus(requestID string, status models.RequestStatus) (*models.CoachingRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	request, err := s.updateCoachingStatus(requestID, status)
	s.finish("update_coaching_status", err)
	return request, err
}

func (s *Store) updateCoachingStatus(requestID string, status models.RequestStatus) (*models.CoachingRequest, error) {
	if !status.Decided() {
		return nil, appErrors.Clone(appErrors.ErrValidation, "status must be accepted or rejected")
	}

	var request *models.CoachingRequest
	for i := range s.state.CoachingRequests {
		if s.state.CoachingRequests[i].ID == requestID {
			request = &s.state.CoachingRequests[i]
			break
		}
	}
	if request == nil {
		return nil, appErrors.Clone(appErrors.ErrRequestNotFound, "")
	}
	if request.Status.Decided() {
		return nil, appErrors.Clone(appErrors.ErrRequestDecided, "")
	}

	request.Status = status
	if status == models.RequestAccepted {
		if idx := s.userIndex(request.StudentID); idx >= 0 {
			s.state.Users[idx].AssignedTeacherID = request.TeacherID
		}
		s.refreshSession()
	}
	decided := *request
	return &decided, nil
}
