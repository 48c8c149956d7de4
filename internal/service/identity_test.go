package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AyeOrcine/Academic-Records-Enrollment-Admin-System-AREAS/internal/digest"
	"github.com/AyeOrcine/Academic-Records-Enrollment-Admin-System-AREAS/internal/model"
	"github.com/AyeOrcine/Academic-Records-Enrollment-Admin-System-AREAS/internal/repository/memory"
	"github.com/AyeOrcine/Academic-Records-Enrollment-Admin-System-AREAS/internal/testutil"
	"github.com/AyeOrcine/Academic-Records-Enrollment-Admin-System-AREAS/internal/token"
)

func newIdentityService() (*Identity, *memory.IdentityRepository) {
	repo := memory.NewIdentityRepository()
	svc := NewIdentity(repo, &digest.SHA256{}, token.NewJWT("test-secret"), testutil.MakeNoopTrail(), testutil.MakeNoopLogger())
	return svc, repo
}

func validStudentParams() RegisterParams {
	return RegisterParams{ID: "10001", Name: "Ana Cruz", Email: "ana@uni.edu", Secret: "pass1234"}
}

func TestIdentity_RegisterStudent(t *testing.T) {
	svc, repo := newIdentityService()

	student, err := svc.RegisterStudent(context.Background(), validStudentParams())
	require.NoError(t, err)
	assert.Equal(t, "10001", student.ID)
	assert.NotEmpty(t, student.CredentialDigest)
	assert.NotEqual(t, "pass1234", student.CredentialDigest)
	assert.True(t, repo.Contains("10001"))
}

func TestIdentity_Register_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*RegisterParams)
	}{
		{"id too short", func(p *RegisterParams) { p.ID = "1001" }},
		{"id not numeric", func(p *RegisterParams) { p.ID = "1000a" }},
		{"empty name", func(p *RegisterParams) { p.Name = "   " }},
		{"name with digits", func(p *RegisterParams) { p.Name = "Ana Cruz 3rd" }},
		{"email without at", func(p *RegisterParams) { p.Email = "ana.uni.edu" }},
		{"email with two ats", func(p *RegisterParams) { p.Email = "ana@@uni.edu" }},
		{"email dot before at", func(p *RegisterParams) { p.Email = "ana.cruz@uniedu" }},
		{"secret too short", func(p *RegisterParams) { p.Secret = "abc" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newIdentityService()
			params := validStudentParams()
			tt.mutate(&params)

			_, err := svc.RegisterStudent(context.Background(), params)
			var verr *model.ValidationError
			require.ErrorAs(t, err, &verr)
		})
	}
}

func TestIdentity_Register_DuplicateAcrossRoles(t *testing.T) {
	svc, _ := newIdentityService()
	ctx := context.Background()

	_, err := svc.RegisterStudent(ctx, validStudentParams())
	require.NoError(t, err)

	// Same id again, either role, always ErrDuplicateID.
	_, err = svc.RegisterStudent(ctx, validStudentParams())
	assert.ErrorIs(t, err, model.ErrDuplicateID)

	_, err = svc.RegisterInstructor(ctx, RegisterParams{ID: "10001", Name: "Ana Reyes", Email: "ar@uni.edu", Secret: "pass1234"})
	assert.ErrorIs(t, err, model.ErrDuplicateID)
}

func TestIdentity_Authenticate(t *testing.T) {
	svc, _ := newIdentityService()
	ctx := context.Background()

	_, err := svc.RegisterStudent(ctx, validStudentParams())
	require.NoError(t, err)
	_, err = svc.RegisterInstructor(ctx, RegisterParams{ID: "20001", Name: "Ben Reyes", Email: "ben@uni.edu", Secret: "teach123"})
	require.NoError(t, err)

	account, err := svc.Authenticate(ctx, "10001", "pass1234")
	require.NoError(t, err)
	assert.Equal(t, model.RoleStudent, account.Role())

	account, err = svc.Authenticate(ctx, "20001", "teach123")
	require.NoError(t, err)
	assert.Equal(t, model.RoleInstructor, account.Role())

	_, err = svc.Authenticate(ctx, "10001", "wrongpass")
	assert.ErrorIs(t, err, model.ErrInvalidCredentials)

	_, err = svc.Authenticate(ctx, "99999", "pass1234")
	assert.ErrorIs(t, err, model.ErrInvalidCredentials)
}

func TestIdentity_Login_IssuesToken(t *testing.T) {
	svc, _ := newIdentityService()
	ctx := context.Background()

	_, err := svc.RegisterStudent(ctx, validStudentParams())
	require.NoError(t, err)

	account, tokenString, err := svc.Login(ctx, "10001", "pass1234")
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	id, role, err := token.NewJWT("test-secret").ParseSessionToken(tokenString)
	require.NoError(t, err)
	assert.Equal(t, account.Identity().ID, id)
	assert.Equal(t, model.RoleStudent, role)
}

func TestIdentity_Find(t *testing.T) {
	svc, _ := newIdentityService()
	ctx := context.Background()

	_, err := svc.RegisterStudent(ctx, RegisterParams{ID: "10002", Name: "Carla Santos", Email: "cs@uni.edu", Secret: "pass1234"})
	require.NoError(t, err)
	_, err = svc.RegisterStudent(ctx, RegisterParams{ID: "10001", Name: "Ana Cruz", Email: "ana@uni.edu", Secret: "pass1234"})
	require.NoError(t, err)
	_, err = svc.RegisterInstructor(ctx, RegisterParams{ID: "20001", Name: "Santiago Cruz", Email: "sc@uni.edu", Secret: "teach123"})
	require.NoError(t, err)

	// Case-insensitive substring over id and name, students first in
	// insertion order, then instructors.
	matches := svc.Find(ctx, "cruz")
	require.Len(t, matches, 2)
	assert.Equal(t, "10001", matches[0].Identity().ID)
	assert.Equal(t, "20001", matches[1].Identity().ID)

	matches = svc.Find(ctx, "100")
	require.Len(t, matches, 2)
	assert.Equal(t, "10002", matches[0].Identity().ID)
	assert.Equal(t, "10001", matches[1].Identity().ID)

	assert.Empty(t, svc.Find(ctx, "zzz"))
}
