package models

// EvaluationType determines which scoring formula applies to a subject
// and which input shape its exam entries use.
type EvaluationType string

const (
	// EvaluationTest subjects record correct/wrong pairs and score with
	// negative marking.
	EvaluationTest EvaluationType = "test"
	// EvaluationScore subjects record a single 0-100 score.
	EvaluationScore EvaluationType = "score"
)

// SubjectDefinition describes one subject in a student's catalogue.
// Color is a display hint for charts.
type SubjectDefinition struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	Color          string         `json:"color"`
	EvaluationType EvaluationType `json:"evaluationType"`
}

// SubjectResult is one subject's entry within an exam result. Test
// subjects fill Correct/Wrong, score subjects fill Score; missing
// values count as zero.
type SubjectResult struct {
	Correct *float64 `json:"correct,omitempty"`
	Wrong   *float64 `json:"wrong,omitempty"`
	Score   *float64 `json:"score,omitempty"`
}
