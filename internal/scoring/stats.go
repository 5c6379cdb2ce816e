package scoring

import "github.com/hedef100/academia-core/internal/models"

// Summary aggregates a student's result collection.
type Summary struct {
	AvgNet     float64 `json:"avgNet"`
	LastNet    float64 `json:"lastNet"`
	TotalCount int     `json:"totalCount"`
}

// Aggregate computes the headline statistics over a result collection.
// Results without a net score are excluded from the average entirely
// (they contribute to neither numerator nor denominator) but still
// count towards TotalCount. LastNet is the net of the most recently
// dated result, or 0 when that result has no net or the collection is
// empty.
func Aggregate(results []models.ExamResult) Summary {
	summary := Summary{TotalCount: len(results)}

	sum := 0.0
	counted := 0
	var latest *models.ExamResult
	for i := range results {
		result := &results[i]
		if result.TotalNet != nil {
			sum += *result.TotalNet
			counted++
		}
		if latest == nil || result.Date.After(latest.Date) {
			latest = result
		}
	}
	if counted > 0 {
		summary.AvgNet = sum / float64(counted)
	}
	if latest != nil && latest.TotalNet != nil {
		summary.LastNet = *latest.TotalNet
	}
	return summary
}

// RadarPoint is one axis of the per-subject performance radar.
type RadarPoint struct {
	SubjectID  string  `json:"subjectId"`
	Subject    string  `json:"subject"`
	AvgCorrect float64 `json:"avgCorrect"`
}

// RadarSeries computes, per subject, the mean correct count across the
// results that contain an entry for that subject. Results lacking the
// entry are excluded from that subject's mean, not counted as zero.
func RadarSeries(subjects []models.SubjectDefinition, results []models.ExamResult) []RadarPoint {
	series := make([]RadarPoint, 0, len(subjects))
	for _, subject := range subjects {
		sum := 0.0
		count := 0
		for _, result := range results {
			entry, ok := result.SubjectResults[subject.ID]
			if !ok {
				continue
			}
			sum += value(entry.Correct)
			count++
		}
		point := RadarPoint{SubjectID: subject.ID, Subject: subject.Name}
		if count > 0 {
			point.AvgCorrect = sum / float64(count)
		}
		series = append(series, point)
	}
	return series
}

// WrongTotal is one bar of the per-subject wrong-answer chart.
type WrongTotal struct {
	SubjectID  string  `json:"subjectId"`
	Subject    string  `json:"subject"`
	TotalWrong float64 `json:"totalWrong"`
}

// WrongTotals sums wrong answers per subject across all results.
func WrongTotals(subjects []models.SubjectDefinition, results []models.ExamResult) []WrongTotal {
	totals := make([]WrongTotal, 0, len(subjects))
	for _, subject := range subjects {
		total := 0.0
		for _, result := range results {
			if entry, ok := result.SubjectResults[subject.ID]; ok {
				total += value(entry.Wrong)
			}
		}
		totals = append(totals, WrongTotal{SubjectID: subject.ID, Subject: subject.Name, TotalWrong: total})
	}
	return totals
}

// ErrorTotals sums the optional error breakdowns element-wise across
// the five fixed categories. Results without a breakdown contribute
// nothing.
func ErrorTotals(results []models.ExamResult) models.ErrorBreakdown {
	var totals models.ErrorBreakdown
	for _, result := range results {
		if result.ErrorBreakdown != nil {
			totals.Add(*result.ErrorBreakdown)
		}
	}
	return totals
}

// ProgressPercent converts an achieved value against a target into a
// 0-100 percentage. A zero or negative target yields 0 rather than a
// division artefact.
func ProgressPercent(achieved, target float64) float64 {
	if target <= 0 {
		return 0
	}
	pct := achieved / target * 100
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}
