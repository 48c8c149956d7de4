// Package digest implements the credential digesters behind
// model.Digester. The digest is treated as an opaque hex string by the
// rest of the system and by the users file.
package digest

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/AyeOrcine/Academic-Records-Enrollment-Admin-System-AREAS/internal/model"
)

var (
	_ model.Digester = (*SHA256)(nil)
	_ model.Digester = (*Bcrypt)(nil)
)

// New returns the digester for the configured algorithm name.
func New(algorithm string) (model.Digester, error) {
	switch algorithm {
	case "sha256":
		return &SHA256{}, nil
	case "bcrypt":
		return NewBcrypt(bcrypt.DefaultCost), nil
	default:
		return nil, fmt.Errorf("unknown digest algorithm: %q", algorithm)
	}
}

// SHA256 produces deterministic hex digests. This is the historical
// on-disk format of the users file, so it stays the default.
type SHA256 struct{}

func (d *SHA256) Digest(secret string) (string, error) {
	sum := sha256.Sum256([]byte(secret))
	return hex.EncodeToString(sum[:]), nil
}

func (d *SHA256) Verify(digest, secret string) bool {
	sum := sha256.Sum256([]byte(secret))
	want, err := hex.DecodeString(digest)
	if err != nil {
		return false
	}
	return subtle.ConstantTimeCompare(sum[:], want) == 1
}

// Bcrypt produces salted, non-deterministic digests, hex-encoded to fit
// the same file field as SHA-256 output.
type Bcrypt struct {
	cost int
}

func NewBcrypt(cost int) *Bcrypt {
	return &Bcrypt{cost: cost}
}

func (d *Bcrypt) Digest(secret string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(secret), d.cost)
	if err != nil {
		return "", fmt.Errorf("failed to generate bcrypt digest: %w", err)
	}
	return hex.EncodeToString(hash), nil
}

func (d *Bcrypt) Verify(digest, secret string) bool {
	hash, err := hex.DecodeString(digest)
	if err != nil {
		return false
	}
	return bcrypt.CompareHashAndPassword(hash, []byte(secret)) == nil
}
