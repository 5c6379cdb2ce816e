// Package scoring implements the pure score computations of the
// tracker: negative-marked net scores for test subjects, 0-100
// averages for score subjects, and the aggregate statistics behind the
// charts. All functions are stateless and recomputed on demand.
package scoring

import "github.com/hedef100/academia-core/internal/models"

// WrongPenalty is the standard negative-marking factor: every four
// wrong answers cancel one correct answer.
const WrongPenalty = 0.25

// Net sums correct - 0.25*wrong over the student's test-evaluated
// subjects. It returns nil when the student has no test subject at
// all: "no test score" is distinct from "zero net". Missing entries
// and missing correct/wrong values count as zero, and the result may
// be negative.
func Net(subjects []models.SubjectDefinition, entries map[string]models.SubjectResult) *float64 {
	total := 0.0
	applicable := false
	for _, subject := range subjects {
		if subject.EvaluationType != models.EvaluationTest {
			continue
		}
		applicable = true
		entry := entries[subject.ID]
		total += value(entry.Correct) - WrongPenalty*value(entry.Wrong)
	}
	if !applicable {
		return nil
	}
	return &total
}

// AverageScore returns the arithmetic mean of the score-evaluated
// subject entries, or nil when the student has no score subject.
// Individual scores are clamped to [0,100] at entry time, not here.
func AverageScore(subjects []models.SubjectDefinition, entries map[string]models.SubjectResult) *float64 {
	total := 0.0
	count := 0
	for _, subject := range subjects {
		if subject.EvaluationType != models.EvaluationScore {
			continue
		}
		entry := entries[subject.ID]
		total += value(entry.Score)
		count++
	}
	if count == 0 {
		return nil
	}
	avg := total / float64(count)
	return &avg
}

// ClampScore bounds a raw score entry to the [0,100] range.
func ClampScore(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

func value(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
