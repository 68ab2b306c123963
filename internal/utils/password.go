package utils

import (
	"golang.org/x/crypto/bcrypt"
)

// HashPassword hashes a plaintext password using bcrypt.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(hash), err
}

// CheckPasswordHash compares a plaintext password with a bcrypt hash.
func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// HashPIN hashes a free-tier device PIN. PINs share the password hashing
// scheme so a leaked snapshot never contains recoverable secrets.
func HashPIN(pin string) (string, error) {
	return HashPassword(pin)
}

// CheckPINHash compares a plaintext PIN with its stored hash.
func CheckPINHash(pin, hash string) bool {
	return CheckPasswordHash(pin, hash)
}
