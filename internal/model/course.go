package model

import "strings"

// NoInstructor is the on-disk marker for a course without an assigned
// instructor.
const NoInstructor = "None"

// Course describes one course offering. InstructorID is a weak
// reference resolved through the identity store at use time; the empty
// string means no instructor is assigned. TotalSessions only ever
// grows (attendance recording clamps it upward, nothing shrinks it).
type Course struct {
	Code          string
	Title         string
	InstructorID  string
	TotalSessions int
}

// Matches reports whether the query is a case-insensitive substring of
// the course code or title.
func (c *Course) Matches(query string) bool {
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(c.Code), q) ||
		strings.Contains(strings.ToLower(c.Title), q)
}

// NormalizeCode strips all whitespace from a course code and
// upper-cases it. Lookups match normalized forms, so " cs 121 " and
// "CS121" name the same course.
func NormalizeCode(code string) string {
	var b strings.Builder
	for _, r := range code {
		switch r {
		case ' ', '\t', '\n', '\r':
		default:
			b.WriteRune(r)
		}
	}
	return strings.ToUpper(b.String())
}

// CourseStore holds courses keyed by normalized code. Courses returns
// entries in insertion order.
type CourseStore interface {
	Add(c *Course) error
	Get(code string) (*Course, bool)
	Courses() []*Course
	Len() int
}
