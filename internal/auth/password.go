package auth

import "golang.org/x/crypto/bcrypt"

// HashPassword derives a salted bcrypt digest. The same password yields a
// different digest on every call; only CheckPassword can match them.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether password matches the stored digest.
// A malformed digest fails closed: the comparison returns false.
func CheckPassword(password, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}
