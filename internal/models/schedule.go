package models

// Weekdays lists the fixed day keys of a weekly schedule, in display
// order.
var Weekdays = []string{
	"monday",
	"tuesday",
	"wednesday",
	"thursday",
	"friday",
	"saturday",
	"sunday",
}

// ValidWeekday reports whether key is one of the seven schedule keys.
func ValidWeekday(key string) bool {
	for _, day := range Weekdays {
		if day == key {
			return true
		}
	}
	return false
}

// WeeklySchedule is the per-student task plan authored by the assigned
// teacher. At most one schedule exists per student; replacing it is a
// full overwrite, never a merge. An empty task string marks a rest day.
type WeeklySchedule struct {
	StudentID string            `json:"studentId"`
	TeacherID string            `json:"teacherId"`
	Days      map[string]string `json:"days"`
}
