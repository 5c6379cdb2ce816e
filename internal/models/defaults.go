package models

// DefaultSubjects returns the subject catalogue a freshly registered
// student starts with for the given exam type. The returned slice is a
// copy; callers may mutate it freely.
func DefaultSubjects(examType ExamType) []SubjectDefinition {
	var catalogue []SubjectDefinition
	switch examType {
	case ExamTypeYKS:
		catalogue = []SubjectDefinition{
			{ID: "mat", Name: "Matematik", Color: "#f97316", EvaluationType: EvaluationTest},
			{ID: "tur", Name: "Türkçe", Color: "#3b82f6", EvaluationType: EvaluationTest},
			{ID: "fiz", Name: "Fizik", Color: "#a855f7", EvaluationType: EvaluationTest},
			{ID: "kim", Name: "Kimya", Color: "#22c55e", EvaluationType: EvaluationTest},
			{ID: "biy", Name: "Biyoloji", Color: "#ef4444", EvaluationType: EvaluationTest},
		}
	case ExamTypeLGS:
		catalogue = []SubjectDefinition{
			{ID: "mat", Name: "Matematik", Color: "#f97316", EvaluationType: EvaluationTest},
			{ID: "tur", Name: "Türkçe", Color: "#3b82f6", EvaluationType: EvaluationTest},
			{ID: "fen", Name: "Fen Bilimleri", Color: "#22c55e", EvaluationType: EvaluationTest},
		}
	case ExamTypeKPSS:
		catalogue = []SubjectDefinition{
			{ID: "gy", Name: "Genel Yetenek", Color: "#3b82f6", EvaluationType: EvaluationTest},
			{ID: "gk", Name: "Genel Kültür", Color: "#f97316", EvaluationType: EvaluationTest},
		}
	case ExamTypeALES:
		catalogue = []SubjectDefinition{
			{ID: "say", Name: "Sayısal", Color: "#f97316", EvaluationType: EvaluationTest},
			{ID: "soz", Name: "Sözel", Color: "#3b82f6", EvaluationType: EvaluationTest},
		}
	case ExamTypeGenel:
		catalogue = []SubjectDefinition{
			{ID: "ders1", Name: "Ders 1", Color: "#64748b", EvaluationType: EvaluationScore},
		}
	case ExamTypeUniversite:
		catalogue = []SubjectDefinition{
			{ID: "vize", Name: "Vize", Color: "#a855f7", EvaluationType: EvaluationScore},
			{ID: "final", Name: "Final", Color: "#ef4444", EvaluationType: EvaluationScore},
		}
	default:
		return []SubjectDefinition{}
	}
	return append([]SubjectDefinition{}, catalogue...)
}

// ErrorLabels maps error breakdown categories to display names.
var ErrorLabels = map[string]string{
	"knowledge":   "Bilgi Eksikliği",
	"attention":   "Dikkat Hatası",
	"calculation": "İşlem Hatası",
	"time":        "Yetiştirememe",
	"other":       "Diğer",
}

// DayLabels maps weekday keys to display names.
var DayLabels = map[string]string{
	"monday":    "Pazartesi",
	"tuesday":   "Salı",
	"wednesday": "Çarşamba",
	"thursday":  "Perşembe",
	"friday":    "Cuma",
	"saturday":  "Cumartesi",
	"sunday":    "Pazar",
}

// TeacherBranches lists the selectable teacher specializations.
var TeacherBranches = []string{
	"Matematik",
	"Fizik",
	"Kimya",
	"Biyoloji",
	"Türkçe / Edebiyat",
	"Tarih",
	"Coğrafya",
	"İngilizce",
	"Rehberlik",
	"Diğer",
}
