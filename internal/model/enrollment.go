package model

// Weighting policy for the overall grade. The three components always
// sum to 1.
const (
	WeightAssignment = 0.4
	WeightQuiz       = 0.3
	WeightFinal      = 0.3
)

// Enrollment links one student to one course and is the single source
// of truth for that pair's grades and attendance. The pair
// (StudentID, CourseCode) is the unique key. Invariant:
// AttendanceCount <= TotalSessions, maintained by clamping
// TotalSessions upward.
type Enrollment struct {
	StudentID       string
	CourseCode      string
	AssignmentScore float64
	QuizScore       float64
	FinalScore      float64
	AttendanceCount int
	TotalSessions   int
}

// SetGrades overwrites the three component scores unconditionally.
// Range validation is the caller's concern.
func (e *Enrollment) SetGrades(assignment, quiz, final float64) {
	e.AssignmentScore = assignment
	e.QuizScore = quiz
	e.FinalScore = final
}

// RecordAttendance counts one session. A present mark increments the
// attendance count and, if needed, grows TotalSessions to keep the
// invariant.
func (e *Enrollment) RecordAttendance(present bool) {
	if present {
		e.AttendanceCount++
	}
	if e.AttendanceCount > e.TotalSessions {
		e.TotalSessions = e.AttendanceCount
	}
}

// Overall computes the weighted overall grade.
func (e *Enrollment) Overall() float64 {
	return e.AssignmentScore*WeightAssignment +
		e.QuizScore*WeightQuiz +
		e.FinalScore*WeightFinal
}

// AttendancePercentage returns attendance as a 0-100 percentage, or 0
// when no sessions are recorded.
func (e *Enrollment) AttendancePercentage() float64 {
	if e.TotalSessions <= 0 {
		return 0.0
	}
	return float64(e.AttendanceCount) * 100.0 / float64(e.TotalSessions)
}

// EnrollmentStore is the master ledger of enrollments, authoritative
// over per-student indices. At most one enrollment exists per
// (student, course) pair.
type EnrollmentStore interface {
	Append(e *Enrollment) error
	Find(studentID, courseCode string) (*Enrollment, bool)
	Enrollments() []*Enrollment
}
