package service

import "github.com/AyeOrcine/Academic-Records-Enrollment-Admin-System-AREAS/internal/model"

// gradeBand maps the lower bound of an overall-score band to its grade
// points. Bounds are inclusive, ties resolve to the higher band.
type gradeBand struct {
	atLeast float64
	points  float64
}

var gradeBands = []gradeBand{
	{93, 4.0},
	{90, 3.7},
	{87, 3.3},
	{83, 3.0},
	{80, 2.7},
	{77, 2.3},
	{73, 2.0},
	{70, 1.7},
	{67, 1.3},
	{60, 1.0},
}

// GradeToPoint maps a 0-100 overall score to a 0.0-4.0 grade point via
// descending thresholds. Scores below the lowest band earn 0.0.
func GradeToPoint(overall float64) float64 {
	for _, band := range gradeBands {
		if overall >= band.atLeast {
			return band.points
		}
	}
	return 0.0
}

// GPA returns the arithmetic mean of the per-enrollment grade points.
// An empty sequence yields 0.0, not an error.
func GPA(enrollments []*model.Enrollment) float64 {
	if len(enrollments) == 0 {
		return 0.0
	}
	total := 0.0
	for _, e := range enrollments {
		total += GradeToPoint(e.Overall())
	}
	return total / float64(len(enrollments))
}
