package service

import (
	"context"
	"sync"

	"github.com/AyeOrcine/Academic-Records-Enrollment-Admin-System-AREAS/internal/audit"
	"github.com/AyeOrcine/Academic-Records-Enrollment-Admin-System-AREAS/internal/logger"
	"github.com/AyeOrcine/Academic-Records-Enrollment-Admin-System-AREAS/internal/model"
)

// Ledger coordinates enrollments, grades and attendance. The
// enrollment store is the canonical owner of every enrollment; students
// hold back-references reconciled here. The service mutex spans the
// find-or-create sequences, which are read-then-write and not atomic on
// the stores alone.
type Ledger struct {
	mu          sync.Mutex
	identity    model.IdentityStore
	courses     model.CourseStore
	enrollments model.EnrollmentStore
	trail       *audit.Trail
	logger      *logger.Logger
}

func NewLedger(
	identity model.IdentityStore,
	courses model.CourseStore,
	enrollments model.EnrollmentStore,
	trail *audit.Trail,
	logger *logger.Logger,
) *Ledger {
	return &Ledger{
		identity:    identity,
		courses:     courses,
		enrollments: enrollments,
		trail:       trail,
		logger:      logger,
	}
}

// GetOrCreate returns the enrollment for the pair, creating it lazily
// on first use. Search order: the student's own index first, then the
// master ledger, re-attaching to the student's index when found only
// there — this reconciles enrollments loaded independently of their
// student. A new enrollment seeds its session count from the course.
func (l *Ledger) GetOrCreate(ctx context.Context, studentID, courseCode string) (*model.Enrollment, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.getOrCreateLocked(studentID, courseCode)
}

func (l *Ledger) getOrCreateLocked(studentID, courseCode string) (*model.Enrollment, error) {
	student, ok := l.identity.Student(studentID)
	if !ok {
		return nil, model.ErrStudentNotFound
	}
	course, ok := l.courses.Get(courseCode)
	if !ok {
		return nil, model.ErrCourseNotFound
	}

	if e, ok := student.EnrollmentFor(course.Code); ok {
		return e, nil
	}
	if e, ok := l.enrollments.Find(studentID, course.Code); ok {
		student.AttachEnrollment(e)
		return e, nil
	}

	e := &model.Enrollment{
		StudentID:     student.ID,
		CourseCode:    course.Code,
		TotalSessions: course.TotalSessions,
	}
	if err := l.enrollments.Append(e); err != nil {
		return nil, err
	}
	student.AttachEnrollment(e)
	return e, nil
}

// Enroll is the explicit student-initiated action. Unlike GetOrCreate
// it fails when an enrollment for the pair already exists.
func (l *Ledger) Enroll(ctx context.Context, studentID, courseCode string) (*model.Enrollment, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	student, ok := l.identity.Student(studentID)
	if !ok {
		return nil, model.ErrStudentNotFound
	}
	course, ok := l.courses.Get(courseCode)
	if !ok {
		return nil, model.ErrCourseNotFound
	}

	if _, ok := student.EnrollmentFor(course.Code); ok {
		return nil, model.ErrAlreadyEnrolled
	}
	if _, ok := l.enrollments.Find(studentID, course.Code); ok {
		return nil, model.ErrAlreadyEnrolled
	}

	e := &model.Enrollment{
		StudentID:     student.ID,
		CourseCode:    course.Code,
		TotalSessions: course.TotalSessions,
	}
	if err := l.enrollments.Append(e); err != nil {
		return nil, err
	}
	student.AttachEnrollment(e)

	l.trail.Recordf("Student %s enrolled in %s", student.ID, course.Code)
	l.logger.Info("Ledger service: student enrolled",
		"student_id", student.ID,
		"course_code", course.Code)
	return e, nil
}

// SetGrades overwrites the three component scores. No range validation
// happens at this layer; callers validate.
func (l *Ledger) SetGrades(ctx context.Context, e *model.Enrollment, assignment, quiz, final float64) {
	e.SetGrades(assignment, quiz, final)
	l.trail.Recordf("Grades set for student %s in %s", e.StudentID, e.CourseCode)
}

// RecordAttendance counts one session for the enrollment and grows the
// owning course's session count to match. Attendance can only grow
// session counts, never shrink them.
func (l *Ledger) RecordAttendance(ctx context.Context, e *model.Enrollment, present bool) {
	e.RecordAttendance(present)

	if course, ok := l.courses.Get(e.CourseCode); ok {
		if e.TotalSessions > course.TotalSessions {
			course.TotalSessions = e.TotalSessions
		}
	}
	l.trail.Recordf("Recorded attendance for student %s in %s present=%t", e.StudentID, e.CourseCode, present)
}

// AssignGrades is the instructor-initiated grading flow: it verifies
// the instructor teaches the course, finds or creates the enrollment
// and overwrites its scores.
func (l *Ledger) AssignGrades(ctx context.Context, instructorID, studentID, courseCode string, assignment, quiz, final float64) (*model.Enrollment, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.requireOwnerLocked(instructorID, courseCode); err != nil {
		return nil, err
	}
	e, err := l.getOrCreateLocked(studentID, courseCode)
	if err != nil {
		return nil, err
	}
	e.SetGrades(assignment, quiz, final)

	l.trail.Recordf("Instructor %s assigned grades for student %s in %s", instructorID, e.StudentID, e.CourseCode)
	l.logger.Info("Ledger service: grades assigned",
		"instructor_id", instructorID,
		"student_id", e.StudentID,
		"course_code", e.CourseCode)
	return e, nil
}

// TakeAttendance is the instructor-initiated attendance flow with the
// same ownership check and lazy enrollment creation.
func (l *Ledger) TakeAttendance(ctx context.Context, instructorID, studentID, courseCode string, present bool) (*model.Enrollment, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.requireOwnerLocked(instructorID, courseCode); err != nil {
		return nil, err
	}
	e, err := l.getOrCreateLocked(studentID, courseCode)
	if err != nil {
		return nil, err
	}
	e.RecordAttendance(present)
	if course, ok := l.courses.Get(e.CourseCode); ok {
		if e.TotalSessions > course.TotalSessions {
			course.TotalSessions = e.TotalSessions
		}
	}

	l.trail.Recordf("Instructor %s recorded attendance for student %s in %s present=%t", instructorID, e.StudentID, e.CourseCode, present)
	return e, nil
}

func (l *Ledger) requireOwnerLocked(instructorID, courseCode string) error {
	instructor, ok := l.identity.Instructor(instructorID)
	if !ok {
		return model.ErrInstructorNotFound
	}
	course, ok := l.courses.Get(courseCode)
	if !ok {
		return model.ErrCourseNotFound
	}
	if course.InstructorID != instructor.ID && !instructor.Teaches(course.Code) {
		return model.ErrNotCourseOwner
	}
	return nil
}
