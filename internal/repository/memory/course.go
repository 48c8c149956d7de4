package memory

import (
	"sync"

	"github.com/AyeOrcine/Academic-Records-Enrollment-Admin-System-AREAS/internal/model"
)

var _ model.CourseStore = (*CourseRepository)(nil)

// CourseRepository keeps courses in memory keyed by normalized code, so
// lookups succeed regardless of casing and spacing differences.
type CourseRepository struct {
	mu     sync.RWMutex
	byCode map[string]*model.Course
	order  []string
}

func NewCourseRepository() *CourseRepository {
	return &CourseRepository{
		byCode: make(map[string]*model.Course),
	}
}

func (r *CourseRepository) Add(c *model.Course) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := model.NormalizeCode(c.Code)
	if _, exists := r.byCode[key]; exists {
		return model.ErrDuplicateCode
	}
	r.byCode[key] = c
	r.order = append(r.order, key)
	return nil
}

func (r *CourseRepository) Get(code string) (*model.Course, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.byCode[model.NormalizeCode(code)]
	return c, ok
}

func (r *CourseRepository) Courses() []*model.Course {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*model.Course, 0, len(r.order))
	for _, key := range r.order {
		out = append(out, r.byCode[key])
	}
	return out
}

func (r *CourseRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.order)
}
