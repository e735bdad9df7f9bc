package service

// CredentialService defines the interface for password hashing and verification.
// This abstracts the underlying key derivation function, keeping the domain pure.
type CredentialService interface {
	// Hash derives a salted hash from a plaintext password using a fresh salt.
	// Both return values are hex encoded.
	Hash(password string) (hash string, salt string, err error)

	// Compare re-derives the hash from the password and the stored salt and
	// checks it against the stored hash in constant time. Any internal failure
	// reports a mismatch.
	Compare(password, salt, hash string) bool
}

// PassCodeService handles the one-time codes mailed out for passwordless
// actions such as password recovery.
type PassCodeService interface {
	// Generate produces a fresh numeric code together with its hash.
	Generate() (code string, hash string, err error)

	// Seal signs the hashed code and the requesting email into a short-lived
	// token, using the plaintext code as the signing secret.
	Seal(email, codeHash, code string) (string, error)

	// Open validates a sealed token against the submitted code and returns
	// the email it was issued for.
	Open(token, code string) (email string, err error)
}
