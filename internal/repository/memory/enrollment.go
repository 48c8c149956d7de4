package memory

import (
	"sync"

	"github.com/AyeOrcine/Academic-Records-Enrollment-Admin-System-AREAS/internal/model"
)

var _ model.EnrollmentStore = (*EnrollmentRepository)(nil)

// EnrollmentRepository is the master ledger. It keeps the append order
// of enrollments and an index keyed by (student id, normalized course
// code) to enforce at-most-one enrollment per pair.
type EnrollmentRepository struct {
	mu    sync.RWMutex
	list  []*model.Enrollment
	index map[pairKey]*model.Enrollment
}

type pairKey struct {
	studentID  string
	courseCode string
}

func newPairKey(studentID, courseCode string) pairKey {
	return pairKey{studentID: studentID, courseCode: model.NormalizeCode(courseCode)}
}

func NewEnrollmentRepository() *EnrollmentRepository {
	return &EnrollmentRepository{
		index: make(map[pairKey]*model.Enrollment),
	}
}

func (r *EnrollmentRepository) Append(e *model.Enrollment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := newPairKey(e.StudentID, e.CourseCode)
	if _, exists := r.index[key]; exists {
		return model.ErrAlreadyEnrolled
	}
	r.index[key] = e
	r.list = append(r.list, e)
	return nil
}

func (r *EnrollmentRepository) Find(studentID, courseCode string) (*model.Enrollment, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.index[newPairKey(studentID, courseCode)]
	return e, ok
}

func (r *EnrollmentRepository) Enrollments() []*model.Enrollment {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*model.Enrollment, len(r.list))
	copy(out, r.list)
	return out
}
