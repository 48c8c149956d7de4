package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/AyeOrcine/Academic-Records-Enrollment-Admin-System-AREAS/internal/model"
)

func TestGradeToPoint(t *testing.T) {
	tests := []struct {
		overall float64
		points  float64
	}{
		{100, 4.0},
		{95, 4.0},
		{93, 4.0}, // boundary, inclusive on the lower end
		{92.9, 3.7},
		{90, 3.7},
		{87, 3.3},
		{83, 3.0},
		{81, 2.7},
		{80, 2.7},
		{77, 2.3},
		{73, 2.0},
		{70, 1.7},
		{67, 1.3},
		{60, 1.0},
		{59.9, 0.0},
		{0, 0.0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.points, GradeToPoint(tt.overall), "overall %v", tt.overall)
	}
}

func TestOverall_Bounds(t *testing.T) {
	full := &model.Enrollment{AssignmentScore: 100, QuizScore: 100, FinalScore: 100}
	assert.InDelta(t, 100.0, full.Overall(), 1e-9)

	zero := &model.Enrollment{}
	assert.Equal(t, 0.0, zero.Overall())
}

func TestGPA_Empty(t *testing.T) {
	assert.Equal(t, 0.0, GPA(nil))
	assert.Equal(t, 0.0, GPA([]*model.Enrollment{}))
}

func TestGPA_SingleEnrollment(t *testing.T) {
	// Overall 95 lands in the 4.0 band.
	e := &model.Enrollment{AssignmentScore: 95, QuizScore: 95, FinalScore: 95}
	assert.Equal(t, 4.0, GPA([]*model.Enrollment{e}))
}

func TestGPA_Mean(t *testing.T) {
	a := &model.Enrollment{AssignmentScore: 95, QuizScore: 95, FinalScore: 95} // 4.0
	b := &model.Enrollment{AssignmentScore: 90, QuizScore: 80, FinalScore: 70} // 81.0 -> 2.7
	assert.InDelta(t, 3.35, GPA([]*model.Enrollment{a, b}), 1e-9)
}

func TestAttendancePercentage(t *testing.T) {
	assert.Equal(t, 0.0, (&model.Enrollment{}).AttendancePercentage())
	assert.InDelta(t, 50.0, (&model.Enrollment{AttendanceCount: 1, TotalSessions: 2}).AttendancePercentage(), 1e-9)
	assert.InDelta(t, 100.0, (&model.Enrollment{AttendanceCount: 3, TotalSessions: 3}).AttendancePercentage(), 1e-9)
}
