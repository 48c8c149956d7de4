package service

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/AyeOrcine/Academic-Records-Enrollment-Admin-System-AREAS/internal/audit"
	"github.com/AyeOrcine/Academic-Records-Enrollment-Admin-System-AREAS/internal/logger"
	"github.com/AyeOrcine/Academic-Records-Enrollment-Admin-System-AREAS/internal/model"
)

// Report exports per-student transcripts as CSV. The export is a
// derived, write-only view; it is never read back into the system.
type Report struct {
	dir      string
	identity model.IdentityStore
	courses  model.CourseStore
	trail    *audit.Trail
	logger   *logger.Logger
}

func NewReport(
	dir string,
	identity model.IdentityStore,
	courses model.CourseStore,
	trail *audit.Trail,
	logger *logger.Logger,
) *Report {
	return &Report{
		dir:      dir,
		identity: identity,
		courses:  courses,
		trail:    trail,
		logger:   logger,
	}
}

// Export writes the student's transcript to
// student_report_<id>.csv in the report directory and returns the
// path. Layout: header block, blank line, per-enrollment rows, blank
// line, GPA summary line.
func (r *Report) Export(ctx context.Context, studentID string) (string, error) {
	student, ok := r.identity.Student(studentID)
	if !ok {
		return "", model.ErrStudentNotFound
	}

	path := filepath.Join(r.dir, fmt.Sprintf("student_report_%s.csv", student.ID))
	f, err := os.Create(path)
	if err != nil {
		return "", &model.PersistenceError{Op: "export", Path: path, Err: err}
	}
	defer f.Close()

	w := csv.NewWriter(f)
	records := [][]string{
		{"Student ID", "Name", "Email"},
		{student.ID, student.Name, student.Email},
		{""},
		{"CourseCode", "CourseTitle", "Assignment", "Quiz", "FinalExam", "Overall", "AttendanceCount", "TotalSessions", "Attendance%"},
	}
	for _, e := range student.Enrollments {
		title := ""
		if course, ok := r.courses.Get(e.CourseCode); ok {
			title = course.Title
		}
		records = append(records, []string{
			e.CourseCode,
			title,
			fmt.Sprintf("%.2f", e.AssignmentScore),
			fmt.Sprintf("%.2f", e.QuizScore),
			fmt.Sprintf("%.2f", e.FinalScore),
			fmt.Sprintf("%.2f", e.Overall()),
			fmt.Sprintf("%d", e.AttendanceCount),
			fmt.Sprintf("%d", e.TotalSessions),
			fmt.Sprintf("%.1f", e.AttendancePercentage()),
		})
	}
	records = append(records,
		[]string{""},
		[]string{"GPA", fmt.Sprintf("%.2f", GPA(student.Enrollments))},
	)
	if err := w.WriteAll(records); err != nil {
		return "", &model.PersistenceError{Op: "export", Path: path, Err: err}
	}

	r.trail.Recordf("Exported report for student %s", student.ID)
	r.logger.Info("Report service: transcript exported",
		"student_id", student.ID,
		"path", path)
	return path, nil
}
