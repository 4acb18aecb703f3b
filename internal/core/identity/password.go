package identity

import "golang.org/x/crypto/bcrypt"

// PasswordScheme decides how a password is persisted at registration and
// checked at login. Plaintext matches what existing deployments store;
// Bcrypt is the drop-in hardened variant.
type PasswordScheme interface {
	Store(plain string) string
	Verify(plain, stored string) bool
}

type Plaintext struct{}

func (Plaintext) Store(plain string) string        { return plain }
func (Plaintext) Verify(plain, stored string) bool { return plain == stored }

type Bcrypt struct{}

func (Bcrypt) Store(plain string) string {
	b, _ := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	return string(b)
}

func (Bcrypt) Verify(plain, stored string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(plain)) == nil
}
