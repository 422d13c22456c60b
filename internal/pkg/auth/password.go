package auth

import (
	"golang.org/x/crypto/bcrypt"
)

// BcryptCost is the fixed bcrypt work factor for stored passwords.
const BcryptCost = 10

// HashPassword hashes a plain password with bcrypt.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// CheckPassword reports whether the plain password matches the stored hash.
func CheckPassword(hashedPassword, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	return err == nil
}
