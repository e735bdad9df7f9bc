package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"

	"golang.org/x/crypto/scrypt"

	"github.com/irabeny89/ebbs-io/internal/domain/service"
	"github.com/irabeny89/ebbs-io/internal/errors"
)

// scrypt parameters. KeyLen is the derived hash length in bytes, saltLen the
// raw salt length before hex encoding.
const (
	scryptN      = 16384
	scryptR      = 8
	scryptP      = 1
	scryptKeyLen = 64
	saltLen      = 32
)

// scryptCredential is a concrete implementation of the CredentialService
// interface using the scrypt key derivation function.
type scryptCredential struct{}

// NewScryptCredential is the constructor for scryptCredential.
// It returns the implementation as a service.CredentialService interface.
func NewScryptCredential() service.CredentialService {
	return &scryptCredential{}
}

// Hash derives a hex-encoded hash from the password with a fresh random salt.
// The salt is hex encoded before derivation, so the stored salt string is the
// exact KDF input and can be fed back to Compare verbatim.
func (c *scryptCredential) Hash(password string) (string, string, error) {
	raw := make([]byte, saltLen)
	if _, err := rand.Read(raw); err != nil {
		return "", "", errors.Wrap(err, "generate salt")
	}
	salt := hex.EncodeToString(raw)

	key, err := scrypt.Key([]byte(password), []byte(salt), scryptN, scryptR, scryptP, scryptKeyLen)
	if err != nil {
		return "", "", errors.Wrap(err, "derive key")
	}

	return hex.EncodeToString(key), salt, nil
}

// Compare re-derives the key from the password and stored salt and checks it
// against the stored hash in constant time. Any internal failure reports a
// mismatch so a broken input can never authenticate.
func (c *scryptCredential) Compare(password, salt, hash string) bool {
	expected, err := hex.DecodeString(hash)
	if err != nil {
		return false
	}

	key, err := scrypt.Key([]byte(password), []byte(salt), scryptN, scryptR, scryptP, scryptKeyLen)
	if err != nil {
		return false
	}

	return subtle.ConstantTimeCompare(key, expected) == 1
}
