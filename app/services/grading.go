package services

// gradeBand maps a minimum percentage to a letter grade. Bands are evaluated
// top-down on the first match.
type gradeBand struct {
	minPercent float64
	grade      string
}

var gradeBands = []gradeBand{
	{90, "A+"},
	{80, "A"},
	{70, "B"},
	{60, "C"},
	{50, "D"},
}

// ComputeGrade derives the letter grade for marksObtained out of totalMarks.
// Returns "F" for anything under 50%, and for a non-positive totalMarks.
func ComputeGrade(marksObtained, totalMarks float64) string {
	if totalMarks <= 0 {
		return "F"
	}
	percentage := marksObtained / totalMarks * 100
	for _, band := range gradeBands {
		if percentage >= band.minPercent {
			return band.grade
		}
	}
	return "F"
}
