package util

import "golang.org/x/crypto/bcrypt"

// PasswordCost is the bcrypt work factor used for every stored password.
const PasswordCost = 10

// MaxPasswordBytes is the longest input bcrypt hashes. Longer passwords are
// truncated on both hash and verify, so only their first 72 bytes count.
const MaxPasswordBytes = 72

func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword(clip(password), PasswordCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func VerifyPassword(password, hashed string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashed), clip(password))
}

func clip(password string) []byte {
	b := []byte(password)
	if len(b) > MaxPasswordBytes {
		b = b[:MaxPasswordBytes]
	}
	return b
}
