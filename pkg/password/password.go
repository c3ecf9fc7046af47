package password

import (
	"golang.org/x/crypto/bcrypt"
)

// Encode hashes a plain password with bcrypt. The hash is one-way and salted,
// so two encodes of the same password produce different hashes.
func Encode(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Verify reports whether plain matches the stored hash.
func Verify(plain, storedHash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(plain)) == nil
}
