package model

import "strings"

// Role distinguishes the two account kinds. The values double as the
// row tag in the users file.
type Role string

const (
	// RoleStudent marks a student account.
	RoleStudent Role = "S"
	// RoleInstructor marks an instructor account.
	RoleInstructor Role = "I"
)

// User carries the identity fields shared by students and instructors.
// CredentialDigest holds an opaque one-way digest of the secret, never
// the secret itself.
type User struct {
	ID               string
	Name             string
	Email            string
	CredentialDigest string
}

// Matches reports whether the query is a case-insensitive substring of
// the user's id or name.
func (u *User) Matches(query string) bool {
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(u.ID), q) ||
		strings.Contains(strings.ToLower(u.Name), q)
}

// Account is implemented by Student and Instructor so that callers can
// work with either role through one handle.
type Account interface {
	Identity() *User
	Role() Role
}

// Student owns a set of back-references into the enrollment ledger.
// The ledger is the canonical owner of every enrollment; the slice here
// is a lookup index, not a copy.
type Student struct {
	User
	Enrollments []*Enrollment
}

// Identity returns the shared identity fields.
func (s *Student) Identity() *User { return &s.User }

// Role returns RoleStudent.
func (s *Student) Role() Role { return RoleStudent }

// EnrollmentFor returns the student's enrollment for the course, if the
// student's index already references it. Code comparison uses the
// normalized form.
func (s *Student) EnrollmentFor(courseCode string) (*Enrollment, bool) {
	want := NormalizeCode(courseCode)
	for _, e := range s.Enrollments {
		if NormalizeCode(e.CourseCode) == want {
			return e, true
		}
	}
	return nil, false
}

// AttachEnrollment adds a ledger enrollment to the student's index.
// A second enrollment for the same course is ignored so the index never
// holds two entries for one pair.
func (s *Student) AttachEnrollment(e *Enrollment) {
	if _, ok := s.EnrollmentFor(e.CourseCode); ok {
		return
	}
	s.Enrollments = append(s.Enrollments, e)
}

// Instructor owns the set of courses it teaches.
type Instructor struct {
	User
	Teaching []*Course
}

// Identity returns the shared identity fields.
func (i *Instructor) Identity() *User { return &i.User }

// Role returns RoleInstructor.
func (i *Instructor) Role() Role { return RoleInstructor }

// AddCourse links a course to the instructor, ignoring duplicates.
func (i *Instructor) AddCourse(c *Course) {
	for _, have := range i.Teaching {
		if NormalizeCode(have.Code) == NormalizeCode(c.Code) {
			return
		}
	}
	i.Teaching = append(i.Teaching, c)
}

// Teaches reports whether the instructor is linked to the course.
func (i *Instructor) Teaches(courseCode string) bool {
	want := NormalizeCode(courseCode)
	for _, c := range i.Teaching {
		if NormalizeCode(c.Code) == want {
			return true
		}
	}
	return false
}

// IdentityStore holds students and instructors keyed by unique id and
// enforces id uniqueness across both roles. Listing methods return
// entries in insertion order.
type IdentityStore interface {
	AddStudent(s *Student) error
	AddInstructor(i *Instructor) error
	Student(id string) (*Student, bool)
	Instructor(id string) (*Instructor, bool)
	Contains(id string) bool
	Students() []*Student
	Instructors() []*Instructor
}

// Digester produces and verifies opaque credential digests.
type Digester interface {
	Digest(secret string) (string, error)
	Verify(digest, secret string) bool
}

// TokenManager mints and validates session tokens for authenticated
// accounts.
type TokenManager interface {
	GenerateSessionToken(userID string, role Role) (string, error)
	ParseSessionToken(token string) (string, Role, error)
}
