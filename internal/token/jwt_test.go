package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AyeOrcine/Academic-Records-Enrollment-Admin-System-AREAS/internal/model"
)

func TestJWT_SessionToken_RoundTrip(t *testing.T) {
	manager := NewJWT("test-secret")

	tokenString, err := manager.GenerateSessionToken("10001", model.RoleStudent)
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	id, role, err := manager.ParseSessionToken(tokenString)
	require.NoError(t, err)
	assert.Equal(t, "10001", id)
	assert.Equal(t, model.RoleStudent, role)
}

func TestJWT_SessionToken_RolePreserved(t *testing.T) {
	manager := NewJWT("test-secret")

	tokenString, err := manager.GenerateSessionToken("20001", model.RoleInstructor)
	require.NoError(t, err)

	_, role, err := manager.ParseSessionToken(tokenString)
	require.NoError(t, err)
	assert.Equal(t, model.RoleInstructor, role)
}

func TestJWT_ParseSessionToken_WrongSecret(t *testing.T) {
	tokenString, err := NewJWT("secret-a").GenerateSessionToken("10001", model.RoleStudent)
	require.NoError(t, err)

	_, _, err = NewJWT("secret-b").ParseSessionToken(tokenString)
	require.Error(t, err)
}

func TestJWT_ParseSessionToken_Garbage(t *testing.T) {
	_, _, err := NewJWT("test-secret").ParseSessionToken("not.a.token")
	require.Error(t, err)
}
