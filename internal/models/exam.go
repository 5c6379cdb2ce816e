package models

import "time"

// ErrorBreakdown categorises wrong answers by cause.
type ErrorBreakdown struct {
	Knowledge   int `json:"knowledge"`
	Attention   int `json:"attention"`
	Calculation int `json:"calculation"`
	Time        int `json:"time"`
	Other       int `json:"other"`
}

// Add accumulates another breakdown element-wise.
func (b *ErrorBreakdown) Add(other ErrorBreakdown) {
	b.Knowledge += other.Knowledge
	b.Attention += other.Attention
	b.Calculation += other.Calculation
	b.Time += other.Time
	b.Other += other.Other
}

// ExamResult is a student-owned record of one practice exam. It is
// created once and never mutated; TotalNet and AverageScore are
// computed at creation time and stay nil when the student has no
// subject of the matching evaluation type.
type ExamResult struct {
	ID             string                   `json:"id"`
	StudentID      string                   `json:"studentId"`
	Date           time.Time                `json:"date"`
	Title          string                   `json:"title"`
	SubjectResults map[string]SubjectResult `json:"subjectResults"`
	TotalNet       *float64                 `json:"totalNet,omitempty"`
	AverageScore   *float64                 `json:"averageScore,omitempty"`
	ErrorBreakdown *ErrorBreakdown          `json:"errorBreakdown,omitempty"`
}
