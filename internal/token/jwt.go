package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/AyeOrcine/Academic-Records-Enrollment-Admin-System-AREAS/internal/model"
)

// Claims represents session token claims carrying the account id and
// role.
type Claims struct {
	jwt.RegisteredClaims
	UserID    string     `json:"user_id"`
	Role      model.Role `json:"role"`
	TokenType string     `json:"typ"`
}

// JWT implements model.TokenManager backed by symmetric HMAC.
type JWT struct {
	secretKey string
}

// NewJWT creates a new JWT token manager with the provided secret key.
func NewJWT(secretKey string) model.TokenManager {
	return &JWT{secretKey: secretKey}
}

const (
	sessionTTL  = 8 * time.Hour
	typeSession = "session"
)

// GenerateSessionToken creates a signed session token for an
// authenticated account.
func (j *JWT) GenerateSessionToken(userID string, role model.Role) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(sessionTTL)),
		},
		UserID:    userID,
		Role:      role,
		TokenType: typeSession,
	})

	tokenString, err := token.SignedString([]byte(j.secretKey))
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}

	return tokenString, nil
}

// ParseSessionToken validates a session token and extracts the account
// id and role.
func (j *JWT) ParseSessionToken(tokenString string) (string, model.Role, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("wrong signing method %v", t.Header["alg"])
		}
		return []byte(j.secretKey), nil
	})
	if err != nil {
		return "", "", fmt.Errorf("failed to parse session token: %w", err)
	}
	if !token.Valid {
		return "", "", fmt.Errorf("session token is invalid")
	}
	if claims.TokenType != typeSession {
		return "", "", fmt.Errorf("token type mismatch: %s", claims.TokenType)
	}
	return claims.UserID, claims.Role, nil
}
