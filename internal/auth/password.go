package auth

import "golang.org/x/crypto/bcrypt"

// CredentialVerifier checks a plaintext password against a stored credential.
// The directory seeds bcrypt hashes, but any hashing or storage backend can
// be substituted without touching the Authenticator contract.
type CredentialVerifier interface {
	Verify(storedCredential, plainPassword string) bool
}

// BcryptVerifier verifies bcrypt-hashed credentials.
type BcryptVerifier struct{}

// Verify reports whether plain matches the bcrypt hash.
func (BcryptVerifier) Verify(hashed, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain)) == nil
}

// HashPassword hashes a plaintext password with configured cost.
func HashPassword(password string, cost int) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// MustHashPassword hashes or panics; used only for static seed data at startup.
func MustHashPassword(password string, cost int) string {
	hashed, err := HashPassword(password, cost)
	if err != nil {
		panic(err)
	}
	return hashed
}
