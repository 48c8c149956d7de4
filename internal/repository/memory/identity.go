package memory

import (
	"sync"

	"github.com/AyeOrcine/Academic-Records-Enrollment-Admin-System-AREAS/internal/model"
)

var _ model.IdentityStore = (*IdentityRepository)(nil)

// IdentityRepository keeps students and instructors in memory, keyed by
// id, preserving insertion order for listings. Uniqueness is enforced
// across both roles.
type IdentityRepository struct {
	mu              sync.RWMutex
	students        map[string]*model.Student
	instructors     map[string]*model.Instructor
	studentOrder    []string
	instructorOrder []string
}

func NewIdentityRepository() *IdentityRepository {
	return &IdentityRepository{
		students:    make(map[string]*model.Student),
		instructors: make(map[string]*model.Instructor),
	}
}

func (r *IdentityRepository) AddStudent(s *model.Student) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.containsLocked(s.ID) {
		return model.ErrDuplicateID
	}
	r.students[s.ID] = s
	r.studentOrder = append(r.studentOrder, s.ID)
	return nil
}

func (r *IdentityRepository) AddInstructor(i *model.Instructor) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.containsLocked(i.ID) {
		return model.ErrDuplicateID
	}
	r.instructors[i.ID] = i
	r.instructorOrder = append(r.instructorOrder, i.ID)
	return nil
}

func (r *IdentityRepository) Student(id string) (*model.Student, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.students[id]
	return s, ok
}

func (r *IdentityRepository) Instructor(id string) (*model.Instructor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.instructors[id]
	return i, ok
}

func (r *IdentityRepository) Contains(id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.containsLocked(id)
}

func (r *IdentityRepository) containsLocked(id string) bool {
	_, isStudent := r.students[id]
	_, isInstructor := r.instructors[id]
	return isStudent || isInstructor
}

func (r *IdentityRepository) Students() []*model.Student {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*model.Student, 0, len(r.studentOrder))
	for _, id := range r.studentOrder {
		out = append(out, r.students[id])
	}
	return out
}

func (r *IdentityRepository) Instructors() []*model.Instructor {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*model.Instructor, 0, len(r.instructorOrder))
	for _, id := range r.instructorOrder {
		out = append(out, r.instructors[id])
	}
	return out
}
