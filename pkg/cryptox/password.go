package cryptox

import (
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/bcrypt"
)

// DefaultCost is the bcrypt work factor used when a Hasher has no cost set.
const DefaultCost = 10

var (
	ErrMismatch         = errors.New("cryptox: password does not match")
	ErrUnknownHash      = errors.New("cryptox: unrecognised hash format")
	ErrPasswordTooLong  = errors.New("cryptox: password exceeds 72 bytes")
	ErrInvalidArgonHash = errors.New("cryptox: invalid argon2id hash")
)

// Hasher produces and checks salted password digests. New digests are always
// bcrypt at Cost; Verify also understands PHC-style argon2id digests so older
// records keep working.
type Hasher struct {
	Cost int
}

// NewHasher clamps cost into the range bcrypt accepts. Zero selects
// DefaultCost.
func NewHasher(cost int) Hasher {
	switch {
	case cost == 0:
		cost = DefaultCost
	case cost < bcrypt.MinCost:
		cost = bcrypt.MinCost
	case cost > bcrypt.MaxCost:
		cost = bcrypt.MaxCost
	}
	return Hasher{Cost: cost}
}

// Hash returns a bcrypt digest for password.
func (h Hasher) Hash(password string) (string, error) {
	if len(password) > 72 {
		return "", ErrPasswordTooLong
	}

	cost := h.Cost
	if cost == 0 {
		cost = DefaultCost
	}

	digest, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("cryptox: bcrypt: %w", err)
	}
	return string(digest), nil
}

// Verify compares password against digest. The cost embedded in the digest is
// used, not h.Cost, so raising the configured cost never locks anyone out.
func (h Hasher) Verify(password, digest string) error {
	switch {
	case strings.HasPrefix(digest, "$2a$"),
		strings.HasPrefix(digest, "$2b$"),
		strings.HasPrefix(digest, "$2y$"):
		err := bcrypt.CompareHashAndPassword([]byte(digest), []byte(password))
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrMismatch
		}
		if err != nil {
			return fmt.Errorf("cryptox: bcrypt: %w", err)
		}
		return nil

	case strings.HasPrefix(digest, "$argon2id$"):
		return verifyArgon2id(password, digest)

	default:
		return ErrUnknownHash
	}
}

// NeedsRehash reports whether digest was produced with different parameters
// than h would use today.
func (h Hasher) NeedsRehash(digest string) bool {
	cost, err := bcrypt.Cost([]byte(digest))
	if err != nil {
		return true
	}
	want := h.Cost
	if want == 0 {
		want = DefaultCost
	}
	return cost != want
}

// verifyArgon2id checks a $argon2id$v=19$m=X,t=Y,p=Z$salt$hash digest.
func verifyArgon2id(password, encoded string) error {
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[1] != "argon2id" || parts[2] != "v=19" {
		return ErrInvalidArgonHash
	}

	var mem, iters uint32
	var par uint8
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &mem, &iters, &par); err != nil {
		return fmt.Errorf("%w: parameters: %v", ErrInvalidArgonHash, err)
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return fmt.Errorf("%w: salt: %v", ErrInvalidArgonHash, err)
	}
	want, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil || len(want) == 0 {
		return fmt.Errorf("%w: hash", ErrInvalidArgonHash)
	}

	got := argon2.IDKey([]byte(password), salt, iters, mem, par, uint32(len(want))) // #nosec G115
	if subtle.ConstantTimeCompare(got, want) != 1 {
		return ErrMismatch
	}
	return nil
}
