package models

import "time"

// Role identifies the capability set of a user account.
type Role string

const (
	RoleStudent Role = "STUDENT"
	RoleTeacher Role = "TEACHER"
	RoleAdmin   Role = "ADMIN"
)

// Valid reports whether the role is one of the known variants.
func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleTeacher, RoleAdmin:
		return true
	default:
		return false
	}
}

// ExamType selects the default subject catalogue for a student.
type ExamType string

const (
	ExamTypeYKS        ExamType = "YKS"
	ExamTypeLGS        ExamType = "LGS"
	ExamTypeKPSS       ExamType = "KPSS"
	ExamTypeALES       ExamType = "ALES"
	ExamTypeGenel      ExamType = "GENEL"
	ExamTypeUniversite ExamType = "UNIVERSITE"
)

// Valid reports whether the exam type is part of the fixed enumeration.
func (t ExamType) Valid() bool {
	switch t {
	case ExamTypeYKS, ExamTypeLGS, ExamTypeKPSS, ExamTypeALES, ExamTypeGenel, ExamTypeUniversite:
		return true
	default:
		return false
	}
}

// User is an account with a role-dependent profile. Students carry a
// subject catalogue and numeric goals; teachers carry a branch and the
// coaching-open flag; the assigned teacher is a weak id reference
// resolved by lookup.
type User struct {
	ID                string              `json:"id"`
	Name              string              `json:"name"`
	Username          string              `json:"username"`
	Password          string              `json:"password"`
	Role              Role                `json:"role"`
	ExamType          ExamType            `json:"examType"`
	Branch            string              `json:"branch,omitempty"`
	Subjects          []SubjectDefinition `json:"subjects"`
	TargetNet         float64             `json:"targetNet"`
	TargetGPA         float64             `json:"targetGPA"`
	Streak            int                 `json:"streak"`
	LastEntryDate     *time.Time          `json:"lastEntryDate,omitempty"`
	IsCoachingOpen    bool                `json:"isCoachingOpen,omitempty"`
	AssignedTeacherID string              `json:"assignedTeacherId,omitempty"`
}

// SubjectByID resolves one of the user's subject definitions.
func (u *User) SubjectByID(id string) (SubjectDefinition, bool) {
	for _, subject := range u.Subjects {
		if subject.ID == id {
			return subject, true
		}
	}
	return SubjectDefinition{}, false
}
