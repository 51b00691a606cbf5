package rubric

// Component is one scored element inside a criterion
type Component struct {
	Name   string
	Points int
	Guide  string
}

// Criterion is a single rubric line item with its scoring breakdown
type Criterion struct {
	Name        string
	MaxPoints   int
	Description string
	Components  []Component
}

// Category groups related criteria
type Category struct {
	Name     string
	Criteria []Criterion
}

// MaxScore is the sum of the category's criterion maximums
func (c Category) MaxScore() int {
	total := 0
	for _, crit := range c.Criteria {
		total += crit.MaxPoints
	}
	return total
}

// CriterionScore is the model's awarded score for one criterion
type CriterionScore struct {
	Name               string
	Points             int
	MaxPoints          int
	Description        string
	Justification      string
	SupportingEvidence string
}

// CategoryResult accumulates criterion scores for one category
type CategoryResult struct {
	Name     string
	Criteria []CriterionScore
}

// TotalScore sums awarded points across the category
func (r CategoryResult) TotalScore() int {
	total := 0
	for _, c := range r.Criteria {
		total += c.Points
	}
	return total
}

// MaxScore sums possible points across the category
func (r CategoryResult) MaxScore() int {
	total := 0
	for _, c := range r.Criteria {
		total += c.MaxPoints
	}
	return total
}

// Percentage is the category score as a percentage of its maximum
func (r CategoryResult) Percentage() float64 {
	if r.MaxScore() == 0 {
		return 0
	}
	return float64(r.TotalScore()) / float64(r.MaxScore()) * 100
}

// Content quality scales to 75 points, foreman attendance is worth 25,
// for a 100-point final score.
const (
	contentScaleMax    = 75.0
	attendanceMax      = 25.0
	foremanScoreWeight = attendanceMax
)

// Evaluation is the complete scoring result for one document
type Evaluation struct {
	DocumentName   string
	ProjectName    string
	EvaluationDate string
	ModelUsed      string

	Categories      []CategoryResult
	Strengths       []string
	Improvements    []string
	Recommendations []string

	ForemanPresent bool
	ForemanNotes   []string
}

// TotalRawScore is the raw rubric total (out of 180)
func (e Evaluation) TotalRawScore() int {
	total := 0
	for _, cat := range e.Categories {
		total += cat.TotalScore()
	}
	return total
}

// MaxRawScore is the maximum raw rubric total
func (e Evaluation) MaxRawScore() int {
	total := 0
	for _, cat := range e.Categories {
		total += cat.MaxScore()
	}
	return total
}

// ContentPercentage is the raw content score as a percentage
func (e Evaluation) ContentPercentage() float64 {
	if e.MaxRawScore() == 0 {
		return 0
	}
	return float64(e.TotalRawScore()) / float64(e.MaxRawScore()) * 100
}

// ScaledContentScore is the content score scaled to 75 points
func (e Evaluation) ScaledContentScore() float64 {
	if e.MaxRawScore() == 0 {
		return 0
	}
	return float64(e.TotalRawScore()) / float64(e.MaxRawScore()) * contentScaleMax
}

// AttendanceScore is 25 points when a foreman attended, otherwise 0
func (e Evaluation) AttendanceScore() float64 {
	if e.ForemanPresent {
		return foremanScoreWeight
	}
	return 0
}

// FinalScore is the scaled content score plus attendance, out of 100
func (e Evaluation) FinalScore() float64 {
	return e.ScaledContentScore() + e.AttendanceScore()
}

// PerformanceLevel maps the final score to a rating band
func (e Evaluation) PerformanceLevel() string {
	score := e.FinalScore()
	switch {
	case score >= 90:
		return "EXCELLENT"
	case score >= 80:
		return "GOOD"
	case score >= 70:
		return "SATISFACTORY"
	case score >= 60:
		return "NEEDS IMPROVEMENT"
	default:
		return "UNSATISFACTORY"
	}
}
