package models

import "time"

// Settings holds presentation preferences persisted with the state.
type Settings struct {
	IsDarkMode       bool `json:"isDarkMode"`
	SidebarCollapsed bool `json:"sidebarCollapsed"`
}

// AppState is the root aggregate. It exclusively owns every collection;
// entities reference each other only by id. CurrentUser is the
// transient session pointer and is never serialized.
type AppState struct {
	Users            []User            `json:"users"`
	ExamResults      []ExamResult      `json:"examResults"`
	Announcements    []Announcement    `json:"announcements"`
	AdminMessages    []AdminMessage    `json:"adminMessages"`
	CoachingRequests []CoachingRequest `json:"coachingRequests"`
	WeeklySchedules  []WeeklySchedule  `json:"weeklySchedules"`
	Settings         Settings          `json:"settings"`

	CurrentUser *User `json:"-"`
}

// Clone returns a deep copy of the state. The session pointer is not
// carried over.
func (s *AppState) Clone() *AppState {
	clone := &AppState{
		Users:            make([]User, len(s.Users)),
		ExamResults:      make([]ExamResult, len(s.ExamResults)),
		Announcements:    append([]Announcement(nil), s.Announcements...),
		AdminMessages:    append([]AdminMessage(nil), s.AdminMessages...),
		CoachingRequests: append([]CoachingRequest(nil), s.CoachingRequests...),
		WeeklySchedules:  make([]WeeklySchedule, len(s.WeeklySchedules)),
		Settings:         s.Settings,
	}
	for i, user := range s.Users {
		clone.Users[i] = user.Clone()
	}
	for i, result := range s.ExamResults {
		clone.ExamResults[i] = result.Clone()
	}
	for i, schedule := range s.WeeklySchedules {
		clone.WeeklySchedules[i] = schedule.Clone()
	}
	return clone
}

// Normalize replaces nil collections with empty ones so a partially
// populated snapshot loads as absent collections, not as an error.
func (s *AppState) Normalize() {
	if s.Users == nil {
		s.Users = []User{}
	}
	if s.ExamResults == nil {
		s.ExamResults = []ExamResult{}
	}
	if s.Announcements == nil {
		s.Announcements = []Announcement{}
	}
	if s.AdminMessages == nil {
		s.AdminMessages = []AdminMessage{}
	}
	if s.CoachingRequests == nil {
		s.CoachingRequests = []CoachingRequest{}
	}
	if s.WeeklySchedules == nil {
		s.WeeklySchedules = []WeeklySchedule{}
	}
	s.CurrentUser = nil
}

// Clone returns a deep copy of the user.
func (u User) Clone() User {
	u.Subjects = append([]SubjectDefinition(nil), u.Subjects...)
	if u.LastEntryDate != nil {
		date := *u.LastEntryDate
		u.LastEntryDate = &date
	}
	return u
}

// Clone returns a deep copy of the exam result.
func (r ExamResult) Clone() ExamResult {
	entries := make(map[string]SubjectResult, len(r.SubjectResults))
	for k, v := range r.SubjectResults {
		entries[k] = v.Clone()
	}
	r.SubjectResults = entries
	r.TotalNet = cloneFloat(r.TotalNet)
	r.AverageScore = cloneFloat(r.AverageScore)
	if r.ErrorBreakdown != nil {
		breakdown := *r.ErrorBreakdown
		r.ErrorBreakdown = &breakdown
	}
	return r
}

// Clone returns a deep copy of the subject entry.
func (e SubjectResult) Clone() SubjectResult {
	e.Correct = cloneFloat(e.Correct)
	e.Wrong = cloneFloat(e.Wrong)
	e.Score = cloneFloat(e.Score)
	return e
}

// Clone returns a deep copy of the schedule.
func (w WeeklySchedule) Clone() WeeklySchedule {
	days := make(map[string]string, len(w.Days))
	for k, v := range w.Days {
		days[k] = v
	}
	w.Days = days
	return w
}

func cloneFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	value := *v
	return &value
}

// DefaultState seeds a fresh installation with one admin, one teacher
// and one student account plus a single global announcement.
func DefaultState(now time.Time) *AppState {
	return &AppState{
		Users: []User{
			{
				ID:       "admin",
				Name:     "Sistem Yöneticisi",
				Username: "admin",
				Password: "admin123",
				Role:     RoleAdmin,
				ExamType: ExamTypeGenel,
				Subjects: []SubjectDefinition{},
			},
			{
				ID:             "t1",
				Name:           "Caner Hoca",
				Username:       "hocacaner",
				Password:       "123456",
				Role:           RoleTeacher,
				Branch:         "Matematik",
				ExamType:       ExamTypeYKS,
				Subjects:       []SubjectDefinition{},
				Streak:         8,
				IsCoachingOpen: true,
			},
			{
				ID:        "s1",
				Name:      "Selim Çalışkan",
				Username:  "ogrenciselim",
				Password:  "123456",
				Role:      RoleStudent,
				ExamType:  ExamTypeYKS,
				Subjects:  DefaultSubjects(ExamTypeYKS),
				TargetNet: 95,
				TargetGPA: 3.8,
				Streak:    12,
			},
		},
		ExamResults: []ExamResult{},
		Announcements: []Announcement{
			{
				ID:       "a1",
				Title:    "ACADEMIA",
				Message:  "Branş odaklı koçluk sistemi aktif!",
				Date:     now,
				IsGlobal: true,
			},
		},
		AdminMessages:    []AdminMessage{},
		CoachingRequests: []CoachingRequest{},
		WeeklySchedules:  []WeeklySchedule{},
		Settings:         Settings{},
	}
}
