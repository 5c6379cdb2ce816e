package models

import "time"

// RequestStatus is the lifecycle state of a coaching request. Once
// decided the status is terminal.
type RequestStatus string

const (
	RequestPending  RequestStatus = "pending"
	RequestAccepted RequestStatus = "accepted"
	RequestRejected RequestStatus = "rejected"
)

// Decided reports whether the status is terminal.
func (s RequestStatus) Decided() bool {
	return s == RequestAccepted || s == RequestRejected
}

// CoachingRequest is a student-initiated pairing request towards a
// teacher. StudentName is a snapshot taken at request time and is
// deliberately not kept in sync with later profile edits.
type CoachingRequest struct {
	ID          string        `json:"id"`
	StudentID   string        `json:"studentId"`
	StudentName string        `json:"studentName"`
	TeacherID   string        `json:"teacherId"`
	Status      RequestStatus `json:"status"`
	Date        time.Time     `json:"date"`
}
