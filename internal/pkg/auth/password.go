package auth

import (
	"regexp"

	"golang.org/x/crypto/bcrypt"
)

// Password hashing cost
const BcryptCost = 12

// bcryptShape matches the modular crypt format bcrypt emits:
// $2a$/$2b$/$2y$, two-digit cost, 53 chars of salt+digest.
var bcryptShape = regexp.MustCompile(`^\$2[aby]\$\d{2}\$[./A-Za-z0-9]{53}$`)

// HashPassword hashes a plaintext password
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// CheckPassword verifies a plaintext password against a stored hash.
// bcrypt's comparison is constant-time.
func CheckPassword(hashedPassword, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	return err == nil
}

// IsHash reports whether a value already looks like a bcrypt hash.
// Used to refuse hashing an already-hashed value on write, and to refuse
// authenticating against a stored value that is not a valid hash.
func IsHash(value string) bool {
	return bcryptShape.MatchString(value)
}
