package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AyeOrcine/Academic-Records-Enrollment-Admin-System-AREAS/internal/model"
	"github.com/AyeOrcine/Academic-Records-Enrollment-Admin-System-AREAS/internal/repository/memory"
	"github.com/AyeOrcine/Academic-Records-Enrollment-Admin-System-AREAS/internal/testutil"
)

type ledgerFixture struct {
	svc      *Ledger
	identity *memory.IdentityRepository
	courses  *memory.CourseRepository
	ledger   *memory.EnrollmentRepository
	student  *model.Student
	course   *model.Course
}

func newLedgerFixture(t *testing.T) *ledgerFixture {
	t.Helper()
	identity := memory.NewIdentityRepository()
	courses := memory.NewCourseRepository()
	ledger := memory.NewEnrollmentRepository()

	student := &model.Student{User: model.User{ID: "10001", Name: "Ana Cruz"}}
	require.NoError(t, identity.AddStudent(student))
	course := &model.Course{Code: "CS121", Title: "Advanced Computer Programming", TotalSessions: 0}
	require.NoError(t, courses.Add(course))

	return &ledgerFixture{
		svc:      NewLedger(identity, courses, ledger, testutil.MakeNoopTrail(), testutil.MakeNoopLogger()),
		identity: identity,
		courses:  courses,
		ledger:   ledger,
		student:  student,
		course:   course,
	}
}

func TestLedger_GetOrCreate_Idempotent(t *testing.T) {
	f := newLedgerFixture(t)
	ctx := context.Background()

	first, err := f.svc.GetOrCreate(ctx, "10001", "CS121")
	require.NoError(t, err)
	second, err := f.svc.GetOrCreate(ctx, "10001", "CS121")
	require.NoError(t, err)
	assert.Same(t, first, second)

	f.svc.RecordAttendance(ctx, first, true)

	third, err := f.svc.GetOrCreate(ctx, "10001", " cs 121 ")
	require.NoError(t, err)
	assert.Same(t, first, third)
	assert.Equal(t, 1, third.AttendanceCount)

	assert.Len(t, f.ledger.Enrollments(), 1)
}

func TestLedger_GetOrCreate_SeedsSessionsFromCourse(t *testing.T) {
	f := newLedgerFixture(t)
	f.course.TotalSessions = 12

	e, err := f.svc.GetOrCreate(context.Background(), "10001", "CS121")
	require.NoError(t, err)
	assert.Equal(t, 12, e.TotalSessions)
	assert.Equal(t, 0, e.AttendanceCount)
	assert.Equal(t, 0.0, e.AssignmentScore)
}

func TestLedger_GetOrCreate_ReattachesFromMasterLedger(t *testing.T) {
	f := newLedgerFixture(t)

	// Enrollment present in the ledger but not in the student's index,
	// as after a load where the student row came later.
	loose := &model.Enrollment{StudentID: "10001", CourseCode: "CS121", QuizScore: 77}
	require.NoError(t, f.ledger.Append(loose))
	require.Empty(t, f.student.Enrollments)

	e, err := f.svc.GetOrCreate(context.Background(), "10001", "CS121")
	require.NoError(t, err)
	assert.Same(t, loose, e)

	attached, ok := f.student.EnrollmentFor("CS121")
	require.True(t, ok)
	assert.Same(t, loose, attached)
}

func TestLedger_GetOrCreate_NotFound(t *testing.T) {
	f := newLedgerFixture(t)
	ctx := context.Background()

	_, err := f.svc.GetOrCreate(ctx, "99999", "CS121")
	assert.ErrorIs(t, err, model.ErrStudentNotFound)

	_, err = f.svc.GetOrCreate(ctx, "10001", "XX999")
	assert.ErrorIs(t, err, model.ErrCourseNotFound)
}

func TestLedger_Enroll(t *testing.T) {
	f := newLedgerFixture(t)
	ctx := context.Background()

	e, err := f.svc.Enroll(ctx, "10001", "CS121")
	require.NoError(t, err)
	assert.Equal(t, "10001", e.StudentID)
	assert.Equal(t, "CS121", e.CourseCode)

	// Unlike GetOrCreate, a second explicit enrollment fails.
	_, err = f.svc.Enroll(ctx, "10001", " cs 121 ")
	assert.ErrorIs(t, err, model.ErrAlreadyEnrolled)

	_, err = f.svc.Enroll(ctx, "10001", "XX999")
	assert.ErrorIs(t, err, model.ErrCourseNotFound)
	_, err = f.svc.Enroll(ctx, "99999", "CS121")
	assert.ErrorIs(t, err, model.ErrStudentNotFound)
}

func TestLedger_AttendanceScenario(t *testing.T) {
	f := newLedgerFixture(t)
	ctx := context.Background()

	e, err := f.svc.Enroll(ctx, "10001", "CS121")
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		f.svc.RecordAttendance(ctx, e, true)
	}

	assert.Equal(t, 3, e.AttendanceCount)
	assert.Equal(t, 3, e.TotalSessions)
	assert.Equal(t, 100.0, e.AttendancePercentage())
	// Growth propagates from enrollment to course.
	assert.Equal(t, 3, f.course.TotalSessions)
}

func TestLedger_RecordAttendance_InvariantHolds(t *testing.T) {
	f := newLedgerFixture(t)
	ctx := context.Background()

	e, err := f.svc.GetOrCreate(ctx, "10001", "CS121")
	require.NoError(t, err)
	e.AttendanceCount = 2
	e.TotalSessions = 5

	for _, present := range []bool{true, false, true, true, false, true} {
		f.svc.RecordAttendance(ctx, e, present)
		assert.LessOrEqual(t, e.AttendanceCount, e.TotalSessions)
	}
	assert.Equal(t, 6, e.AttendanceCount)
	assert.Equal(t, 6, e.TotalSessions)
}

func TestLedger_GradesScenario(t *testing.T) {
	f := newLedgerFixture(t)
	ctx := context.Background()

	e, err := f.svc.GetOrCreate(ctx, "10001", "CS121")
	require.NoError(t, err)

	f.svc.SetGrades(ctx, e, 90, 80, 70)
	assert.InDelta(t, 81.0, e.Overall(), 1e-9)
	assert.Equal(t, 2.7, GradeToPoint(e.Overall()))
}

func TestLedger_AssignGrades_OwnershipChecked(t *testing.T) {
	f := newLedgerFixture(t)
	ctx := context.Background()

	owner := &model.Instructor{User: model.User{ID: "20001", Name: "Ben Reyes"}}
	require.NoError(t, f.identity.AddInstructor(owner))
	outsider := &model.Instructor{User: model.User{ID: "20002", Name: "Cara Lim"}}
	require.NoError(t, f.identity.AddInstructor(outsider))
	f.course.InstructorID = "20001"

	e, err := f.svc.AssignGrades(ctx, "20001", "10001", "CS121", 90, 80, 70)
	require.NoError(t, err)
	assert.Equal(t, 90.0, e.AssignmentScore)

	_, err = f.svc.AssignGrades(ctx, "20002", "10001", "CS121", 0, 0, 0)
	assert.ErrorIs(t, err, model.ErrNotCourseOwner)

	_, err = f.svc.AssignGrades(ctx, "99999", "10001", "CS121", 0, 0, 0)
	assert.ErrorIs(t, err, model.ErrInstructorNotFound)
}

func TestLedger_TakeAttendance_CreatesLazily(t *testing.T) {
	f := newLedgerFixture(t)
	ctx := context.Background()

	owner := &model.Instructor{User: model.User{ID: "20001", Name: "Ben Reyes"}}
	require.NoError(t, f.identity.AddInstructor(owner))
	f.course.InstructorID = "20001"

	// No prior enrollment: the attendance flow creates it.
	e, err := f.svc.TakeAttendance(ctx, "20001", "10001", "CS121", true)
	require.NoError(t, err)
	assert.Equal(t, 1, e.AttendanceCount)
	assert.Equal(t, 1, e.TotalSessions)
	assert.Equal(t, 1, f.course.TotalSessions)

	absent, err := f.svc.TakeAttendance(ctx, "20001", "10001", "CS121", false)
	require.NoError(t, err)
	assert.Same(t, e, absent)
	assert.Equal(t, 1, e.AttendanceCount)
}
