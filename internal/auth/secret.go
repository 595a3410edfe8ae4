package auth

import (
	"crypto/subtle"

	"golang.org/x/crypto/bcrypt"
)

// VerifySecret reports whether the presented secret matches the configured
// admin credential. When a bcrypt hash is configured it takes precedence;
// otherwise the plain secret is compared in constant time.
func VerifySecret(presented, plain, hash string) bool {
	if hash != "" {
		return bcrypt.CompareHashAndPassword([]byte(hash), []byte(presented)) == nil
	}
	if plain == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(presented), []byte(plain)) == 1
}

// HashSecret produces a bcrypt hash suitable for the admin.password_hash
// config field.
func HashSecret(secret string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}
