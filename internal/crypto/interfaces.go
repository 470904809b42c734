package crypto

// CredentialService hashes and verifies user passwords with a keyed,
// salted one-way function. Implementations are pure CPU-bound computation:
// no I/O, no logging of raw passwords.
type CredentialService interface {
	// HashPassword derives an encoded credential from the plaintext
	// password. The result embeds the KDF parameters and salt so that
	// VerifyPassword can recompute it later. The stored value never
	// equals, or reveals, the plaintext.
	HashPassword(password string) (string, error)

	// VerifyPassword recomputes the hash of candidate under the
	// parameters embedded in encoded and compares in constant time.
	// A genuine mismatch returns (false, nil); an error is returned only
	// for malformed input (e.g. an undecodable stored credential).
	VerifyPassword(encoded, candidate string) (bool, error)
}
