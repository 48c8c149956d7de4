package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/AyeOrcine/Academic-Records-Enrollment-Admin-System-AREAS/internal/audit"
	"github.com/AyeOrcine/Academic-Records-Enrollment-Admin-System-AREAS/internal/logger"
	"github.com/AyeOrcine/Academic-Records-Enrollment-Admin-System-AREAS/internal/model"
)

var (
	idPattern   = regexp.MustCompile(`^\d{5}$`)
	namePattern = regexp.MustCompile(`^[a-zA-Z ]+$`)
)

const minSecretLength = 4

// Identity manages student and instructor accounts: registration,
// authentication and search.
type Identity struct {
	store    model.IdentityStore
	digester model.Digester
	tokens   model.TokenManager
	trail    *audit.Trail
	logger   *logger.Logger
}

func NewIdentity(
	store model.IdentityStore,
	digester model.Digester,
	tokens model.TokenManager,
	trail *audit.Trail,
	logger *logger.Logger,
) *Identity {
	return &Identity{
		store:    store,
		digester: digester,
		tokens:   tokens,
		trail:    trail,
		logger:   logger,
	}
}

// RegisterParams contains the fields of a registration request.
type RegisterParams struct {
	ID     string
	Name   string
	Email  string
	Secret string
}

// RegisterStudent validates the request, enforces id uniqueness across
// both roles and stores the new student with a digested secret.
func (s *Identity) RegisterStudent(ctx context.Context, params RegisterParams) (*model.Student, error) {
	user, err := s.newUser(params)
	if err != nil {
		return nil, err
	}

	student := &model.Student{User: *user}
	if err := s.store.AddStudent(student); err != nil {
		s.logger.Info("Identity service: student registration rejected",
			"id", params.ID,
			"error", err.Error())
		return nil, err
	}

	s.trail.Recordf("Registered new student: %s", student.ID)
	s.logger.Info("Identity service: student registered",
		"id", student.ID)
	return student, nil
}

// RegisterInstructor is symmetric to RegisterStudent, with the same
// uniqueness check against both roles.
func (s *Identity) RegisterInstructor(ctx context.Context, params RegisterParams) (*model.Instructor, error) {
	user, err := s.newUser(params)
	if err != nil {
		return nil, err
	}

	instructor := &model.Instructor{User: *user}
	if err := s.store.AddInstructor(instructor); err != nil {
		s.logger.Info("Identity service: instructor registration rejected",
			"id", params.ID,
			"error", err.Error())
		return nil, err
	}

	s.trail.Recordf("Registered new instructor: %s", instructor.ID)
	s.logger.Info("Identity service: instructor registered",
		"id", instructor.ID)
	return instructor, nil
}

func (s *Identity) newUser(params RegisterParams) (*model.User, error) {
	id := strings.TrimSpace(params.ID)
	if !idPattern.MatchString(id) {
		return nil, model.NewValidationError("id", "must be exactly 5 digits")
	}
	name := strings.TrimSpace(params.Name)
	if name == "" || !namePattern.MatchString(name) {
		return nil, model.NewValidationError("name", "letters and spaces only, non-empty")
	}
	email := strings.TrimSpace(params.Email)
	if !validEmail(email) {
		return nil, model.NewValidationError("email", "must contain exactly one @ before the last dot")
	}
	if len(params.Secret) < minSecretLength {
		return nil, model.NewValidationError("secret", fmt.Sprintf("must be at least %d characters", minSecretLength))
	}

	digest, err := s.digester.Digest(params.Secret)
	if err != nil {
		return nil, fmt.Errorf("failed to digest secret: %w", err)
	}

	return &model.User{ID: id, Name: name, Email: email, CredentialDigest: digest}, nil
}

// validEmail requires exactly one @, with the last dot after it.
func validEmail(email string) bool {
	if strings.Count(email, "@") != 1 {
		return false
	}
	at := strings.Index(email, "@")
	dot := strings.LastIndex(email, ".")
	return dot > at
}

// Authenticate looks up the id among both roles and compares the
// digest of the supplied secret against the stored digest. There is no
// lockout or retry policy.
func (s *Identity) Authenticate(ctx context.Context, id, secret string) (model.Account, error) {
	var account model.Account
	if student, ok := s.store.Student(id); ok {
		account = student
	} else if instructor, ok := s.store.Instructor(id); ok {
		account = instructor
	} else {
		return nil, model.ErrInvalidCredentials
	}

	if !s.digester.Verify(account.Identity().CredentialDigest, secret) {
		s.logger.Info("Identity service: authentication failed",
			"id", id)
		return nil, model.ErrInvalidCredentials
	}
	return account, nil
}

// Login authenticates and additionally mints a session token so that
// external callers can carry the identity between operations.
func (s *Identity) Login(ctx context.Context, id, secret string) (model.Account, string, error) {
	account, err := s.Authenticate(ctx, id, secret)
	if err != nil {
		return nil, "", err
	}

	tokenString, err := s.tokens.GenerateSessionToken(account.Identity().ID, account.Role())
	if err != nil {
		return nil, "", fmt.Errorf("failed to issue session token: %w", err)
	}

	switch account.Role() {
	case model.RoleStudent:
		s.trail.Recordf("Student %s logged in.", id)
	case model.RoleInstructor:
		s.trail.Recordf("Instructor %s logged in.", id)
	}
	return account, tokenString, nil
}

// Find returns every account whose id or name contains the query,
// case-insensitively: students first, then instructors, each in the
// insertion order of the backing store.
func (s *Identity) Find(ctx context.Context, query string) []model.Account {
	query = strings.TrimSpace(query)

	var matches []model.Account
	for _, student := range s.store.Students() {
		if student.Matches(query) {
			matches = append(matches, student)
		}
	}
	for _, instructor := range s.store.Instructors() {
		if instructor.Matches(query) {
			matches = append(matches, instructor)
		}
	}
	return matches
}
