// Package csvfile is the persistence gateway. Each collection lives in
// one delimited text file with standard CSV quoting; a flush rewrites a
// collection's file wholly from the in-memory snapshot, and a load
// reconciles the files back into a consistent object graph.
package csvfile

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/AyeOrcine/Academic-Records-Enrollment-Admin-System-AREAS/internal/logger"
	"github.com/AyeOrcine/Academic-Records-Enrollment-Admin-System-AREAS/internal/model"
)

// Gateway serializes the identity store, course registry and enrollment
// ledger to their backing files and hydrates them again in dependency
// order: users, then courses, then enrollments.
type Gateway struct {
	usersPath       string
	coursesPath     string
	enrollmentsPath string
	logger          *logger.Logger
}

func NewGateway(usersPath, coursesPath, enrollmentsPath string, logger *logger.Logger) *Gateway {
	return &Gateway{
		usersPath:       usersPath,
		coursesPath:     coursesPath,
		enrollmentsPath: enrollmentsPath,
		logger:          logger,
	}
}

// Load hydrates the three stores from disk. Missing files are treated
// as empty collections. Loading is best effort: a failing file is
// reported but does not stop the remaining collections from loading,
// since partial data beats a load failure.
func (g *Gateway) Load(ctx context.Context, identity model.IdentityStore, courses model.CourseStore, ledger model.EnrollmentStore) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var errs []error
	if err := g.loadUsers(identity); err != nil {
		errs = append(errs, &model.PersistenceError{Op: "load", Path: g.usersPath, Err: err})
	}
	if err := g.loadCourses(identity, courses); err != nil {
		errs = append(errs, &model.PersistenceError{Op: "load", Path: g.coursesPath, Err: err})
	}
	if err := g.loadEnrollments(identity, courses, ledger); err != nil {
		errs = append(errs, &model.PersistenceError{Op: "load", Path: g.enrollmentsPath, Err: err})
	}
	return errors.Join(errs...)
}

// Flush rewrites all three backing files from the current in-memory
// snapshot, last writer wins. A failing file is reported but the other
// collections still flush.
func (g *Gateway) Flush(ctx context.Context, identity model.IdentityStore, courses model.CourseStore, ledger model.EnrollmentStore) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var errs []error
	if err := g.flushUsers(identity); err != nil {
		errs = append(errs, &model.PersistenceError{Op: "flush", Path: g.usersPath, Err: err})
	}
	if err := g.flushCourses(courses); err != nil {
		errs = append(errs, &model.PersistenceError{Op: "flush", Path: g.coursesPath, Err: err})
	}
	if err := g.flushEnrollments(ledger); err != nil {
		errs = append(errs, &model.PersistenceError{Op: "flush", Path: g.enrollmentsPath, Err: err})
	}
	return errors.Join(errs...)
}

// Users file rows: type(S|I), id, name, email, credentialDigestHex.
// The file's history can accumulate several definitions of one id; the
// last definition wins, keeping the slot's first-appearance position.
// A row that reuses an id under the other role is a conflicting
// definition and is dropped.
func (g *Gateway) loadUsers(identity model.IdentityStore) error {
	rows, err := g.readRows(g.usersPath)
	if err != nil {
		return err
	}

	loaded := 0
	for _, row := range rows {
		if len(row) < 5 {
			continue
		}
		role, id, name, email, digest := row[0], row[1], row[2], row[3], row[4]
		switch model.Role(role) {
		case model.RoleStudent:
			if existing, ok := identity.Student(id); ok {
				existing.Name, existing.Email, existing.CredentialDigest = name, email, digest
				loaded++
				continue
			}
			s := &model.Student{User: model.User{ID: id, Name: name, Email: email, CredentialDigest: digest}}
			if err := identity.AddStudent(s); err != nil {
				g.logger.Debug("Gateway: dropped conflicting user definition",
					"id", id,
					"role", role)
				continue
			}
			loaded++
		case model.RoleInstructor:
			if existing, ok := identity.Instructor(id); ok {
				existing.Name, existing.Email, existing.CredentialDigest = name, email, digest
				loaded++
				continue
			}
			i := &model.Instructor{User: model.User{ID: id, Name: name, Email: email, CredentialDigest: digest}}
			if err := identity.AddInstructor(i); err != nil {
				g.logger.Debug("Gateway: dropped conflicting user definition",
					"id", id,
					"role", role)
				continue
			}
			loaded++
		}
	}

	g.logger.Info("Gateway: loaded users",
		"path", g.usersPath,
		"rows", loaded)
	return nil
}

// Courses file rows: code, title, instructorIdOrNone, totalSessions.
// An instructor id that does not resolve loads the course without an
// instructor; the reference is weak, dropping it is not an error.
func (g *Gateway) loadCourses(identity model.IdentityStore, courses model.CourseStore) error {
	rows, err := g.readRows(g.coursesPath)
	if err != nil {
		return err
	}

	loaded := 0
	for _, row := range rows {
		if len(row) < 4 {
			continue
		}
		code, title, instructorID := row[0], row[1], row[2]
		totalSessions := parseIntDefault(row[3], 0)

		if instructorID == model.NoInstructor {
			instructorID = ""
		}
		instructor, instructorKnown := (*model.Instructor)(nil), false
		if instructorID != "" {
			instructor, instructorKnown = identity.Instructor(instructorID)
			if !instructorKnown {
				instructorID = ""
			}
		}

		course, exists := courses.Get(code)
		if exists {
			// Later definition wins, slot keeps its position.
			course.Title = title
			course.InstructorID = instructorID
			course.TotalSessions = totalSessions
		} else {
			course = &model.Course{Code: code, Title: title, InstructorID: instructorID, TotalSessions: totalSessions}
			if err := courses.Add(course); err != nil {
				continue
			}
		}
		if instructorKnown {
			instructor.AddCourse(course)
		}
		loaded++
	}

	g.logger.Info("Gateway: loaded courses",
		"path", g.coursesPath,
		"rows", loaded)
	return nil
}

// Enrollments file rows: studentId, courseCode, assignmentScore,
// quizScore, finalScore, attendanceCount, totalSessions. A row is only
// materialized when both references resolve; the first row for a pair
// wins since the ledger allows at most one enrollment per pair.
func (g *Gateway) loadEnrollments(identity model.IdentityStore, courses model.CourseStore, ledger model.EnrollmentStore) error {
	rows, err := g.readRows(g.enrollmentsPath)
	if err != nil {
		return err
	}

	loaded, dropped := 0, 0
	for _, row := range rows {
		if len(row) < 7 {
			continue
		}
		studentID, courseCode := row[0], row[1]

		student, studentOK := identity.Student(studentID)
		course, courseOK := courses.Get(courseCode)
		if !studentOK || !courseOK {
			dropped++
			continue
		}

		e := &model.Enrollment{
			StudentID:       studentID,
			CourseCode:      course.Code,
			AssignmentScore: parseFloatDefault(row[2], 0.0),
			QuizScore:       parseFloatDefault(row[3], 0.0),
			FinalScore:      parseFloatDefault(row[4], 0.0),
			AttendanceCount: parseIntDefault(row[5], 0),
			TotalSessions:   parseIntDefault(row[6], 0),
		}
		if e.AttendanceCount > e.TotalSessions {
			e.TotalSessions = e.AttendanceCount
		}
		if err := ledger.Append(e); err != nil {
			dropped++
			continue
		}
		student.AttachEnrollment(e)
		loaded++
	}

	g.logger.Info("Gateway: loaded enrollments",
		"path", g.enrollmentsPath,
		"rows", loaded,
		"dropped", dropped)
	return nil
}

func (g *Gateway) flushUsers(identity model.IdentityStore) error {
	var records [][]string
	for _, s := range identity.Students() {
		records = append(records, []string{string(model.RoleStudent), s.ID, s.Name, s.Email, s.CredentialDigest})
	}
	for _, i := range identity.Instructors() {
		records = append(records, []string{string(model.RoleInstructor), i.ID, i.Name, i.Email, i.CredentialDigest})
	}
	return g.writeRows(g.usersPath, records)
}

func (g *Gateway) flushCourses(courses model.CourseStore) error {
	var records [][]string
	for _, c := range courses.Courses() {
		instructorID := c.InstructorID
		if instructorID == "" {
			instructorID = model.NoInstructor
		}
		records = append(records, []string{c.Code, c.Title, instructorID, strconv.Itoa(c.TotalSessions)})
	}
	return g.writeRows(g.coursesPath, records)
}

func (g *Gateway) flushEnrollments(ledger model.EnrollmentStore) error {
	var records [][]string
	for _, e := range ledger.Enrollments() {
		records = append(records, []string{
			e.StudentID,
			e.CourseCode,
			formatFloat(e.AssignmentScore),
			formatFloat(e.QuizScore),
			formatFloat(e.FinalScore),
			strconv.Itoa(e.AttendanceCount),
			strconv.Itoa(e.TotalSessions),
		})
	}
	return g.writeRows(g.enrollmentsPath, records)
}

func (g *Gateway) readRows(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse csv: %w", err)
	}
	for _, row := range rows {
		for i := range row {
			row[i] = strings.TrimSpace(row[i])
		}
	}
	return rows, nil
}

func (g *Gateway) writeRows(path string, records [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.WriteAll(records); err != nil {
		return fmt.Errorf("failed to write csv: %w", err)
	}
	return nil
}

// Numeric fields parse with a safe default rather than aborting the
// load; malformed rows are tolerated, not rejected.
func parseIntDefault(s string, def int) int {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return def
	}
	return v
}

func parseFloatDefault(s string, def float64) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return def
	}
	return v
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
