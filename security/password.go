package security

import (
	"crypto/subtle"

	"learnex/models"

	"golang.org/x/crypto/bcrypt"
)

// PasswordVerifier checks a presented secret against a stored credential.
// The storage policy differs per account variant; keeping it behind this
// interface lets a variant's policy change without touching call sites.
type PasswordVerifier interface {
	Verify(presented, stored string) bool
}

// BcryptVerifier compares against a bcrypt hash.
type BcryptVerifier struct{}

func (BcryptVerifier) Verify(presented, stored string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(presented)) == nil
}

// PlaintextVerifier compares byte-for-byte in constant time. Kept for the
// fixed admin credential pair and any legacy plaintext records.
type PlaintextVerifier struct{}

func (PlaintextVerifier) Verify(presented, stored string) bool {
	return subtle.ConstantTimeCompare([]byte(presented), []byte(stored)) == 1
}

// verifiers wires each role to its storage policy. Student and instructor
// secrets are bcrypt-hashed at registration; the admin pair is a config
// constant compared as-is.
var verifiers = map[models.Role]PasswordVerifier{
	models.RoleStudent:    BcryptVerifier{},
	models.RoleInstructor: BcryptVerifier{},
	models.RoleAdmin:      PlaintextVerifier{},
}

// VerifierFor returns the verifier wired for the given role. Unknown roles
// get the bcrypt verifier, which rejects anything that is not a valid hash.
func VerifierFor(role models.Role) PasswordVerifier {
	if v, ok := verifiers[role]; ok {
		return v
	}
	return BcryptVerifier{}
}

// HashPassword hashes a secret for storage with the configured cost.
func HashPassword(password string, cost int) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}
