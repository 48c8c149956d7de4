package service

import (
	"context"
	"strings"

	"github.com/AyeOrcine/Academic-Records-Enrollment-Admin-System-AREAS/internal/audit"
	"github.com/AyeOrcine/Academic-Records-Enrollment-Admin-System-AREAS/internal/logger"
	"github.com/AyeOrcine/Academic-Records-Enrollment-Admin-System-AREAS/internal/model"
)

// Registry manages the course catalogue. Course lookups match codes
// after stripping whitespace and upper-casing, so catalogue entries are
// found regardless of how the caller spells the code.
type Registry struct {
	courses  model.CourseStore
	identity model.IdentityStore
	trail    *audit.Trail
	logger   *logger.Logger
}

func NewRegistry(
	courses model.CourseStore,
	identity model.IdentityStore,
	trail *audit.Trail,
	logger *logger.Logger,
) *Registry {
	return &Registry{
		courses:  courses,
		identity: identity,
		trail:    trail,
		logger:   logger,
	}
}

// CreateCourseParams contains the fields of a course creation request.
type CreateCourseParams struct {
	Code          string
	Title         string
	InstructorID  string
	TotalSessions int
}

// CreateCourse registers a new course. The code must be unique under
// normalization. An instructor id, when given, must resolve; the new
// course is then linked to that instructor's teaching set.
func (r *Registry) CreateCourse(ctx context.Context, params CreateCourseParams) (*model.Course, error) {
	code := strings.TrimSpace(params.Code)
	if code == "" {
		return nil, model.NewValidationError("code", "cannot be empty")
	}
	if params.TotalSessions < 0 {
		return nil, model.NewValidationError("totalSessions", "cannot be negative")
	}

	var instructor *model.Instructor
	if params.InstructorID != "" {
		var ok bool
		instructor, ok = r.identity.Instructor(params.InstructorID)
		if !ok {
			return nil, model.ErrInstructorNotFound
		}
	}

	course := &model.Course{
		Code:          code,
		Title:         strings.TrimSpace(params.Title),
		InstructorID:  params.InstructorID,
		TotalSessions: params.TotalSessions,
	}
	if err := r.courses.Add(course); err != nil {
		r.logger.Info("Registry service: course creation rejected",
			"code", code,
			"error", err.Error())
		return nil, err
	}
	if instructor != nil {
		instructor.AddCourse(course)
		r.trail.Recordf("Course added %s by instructor %s", course.Code, instructor.ID)
	} else {
		r.trail.Recordf("Course added %s", course.Code)
	}

	r.logger.Info("Registry service: course created",
		"code", course.Code)
	return course, nil
}

// AssignInstructor links an instructor to an existing course. The
// supplied code is normalized before matching, so " cs 121 " assigns to
// a course stored as "CS121".
func (r *Registry) AssignInstructor(ctx context.Context, code, instructorID string) error {
	instructor, ok := r.identity.Instructor(instructorID)
	if !ok {
		return model.ErrInstructorNotFound
	}
	course, ok := r.courses.Get(code)
	if !ok {
		return model.ErrCourseNotFound
	}

	course.InstructorID = instructor.ID
	instructor.AddCourse(course)

	r.trail.Recordf("Instructor %s assigned to %s", instructor.ID, course.Code)
	r.logger.Info("Registry service: instructor assigned",
		"code", course.Code,
		"instructor_id", instructor.ID)
	return nil
}

// Lookup returns every course whose code or title contains the query,
// case-insensitively, in insertion order.
func (r *Registry) Lookup(ctx context.Context, query string) []*model.Course {
	query = strings.TrimSpace(query)

	var matches []*model.Course
	for _, course := range r.courses.Courses() {
		if course.Matches(query) {
			matches = append(matches, course)
		}
	}
	return matches
}

// defaultCatalogue is the course list installed on first run.
var defaultCatalogue = []model.Course{
	{Code: "Litr 102", Title: "ASEAN Literature"},
	{Code: "PATHFIT 3", Title: "Traditional and Recreational Games"},
	{Code: "CS 121", Title: "Advanced Computer Programming"},
	{Code: "Phy 101", Title: "Calculus-Based Physics"},
	{Code: "CPE 405", Title: "Discrete Mathematics"},
	{Code: "IT 212", Title: "Computer Networking 1"},
	{Code: "IT 211", Title: "Database Management System"},
	{Code: "CS 211", Title: "Object-Oriented Programming"},
}

// SeedDefaults installs the default catalogue when the registry
// hydrated empty. A non-empty registry is left untouched.
func (r *Registry) SeedDefaults(ctx context.Context) {
	if r.courses.Len() > 0 {
		return
	}
	for i := range defaultCatalogue {
		course := defaultCatalogue[i]
		if err := r.courses.Add(&course); err != nil {
			continue
		}
	}
	r.trail.Record("Initialized default courses.")
	r.logger.Info("Registry service: default catalogue installed",
		"count", len(defaultCatalogue))
}
