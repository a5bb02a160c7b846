package security

import (
	"golang.org/x/crypto/bcrypt"
)

// dummyHash is compared against when no account matches a login email, so the
// request takes the same time as a real password check.
const dummyHash = "$2a$10$7EqJtq98hPqEX7fNZaFWoOHi6VbU5h6K9v8u5rO0m3j0h6dX5r8e"

// HashPassword creates a bcrypt hash from the given plaintext password.
func HashPassword(password string) (string, error) {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashedBytes), nil
}

// VerifyPassword checks the plaintext password against the stored bcrypt hash.
func VerifyPassword(hashedPassword, providedPassword string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(providedPassword))
}

// DummyVerify burns a bcrypt comparison to mitigate timing attacks.
func DummyVerify(providedPassword string) {
	_ = bcrypt.CompareHashAndPassword([]byte(dummyHash), []byte(providedPassword))
}
