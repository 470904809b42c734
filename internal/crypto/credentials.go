// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto implements the credential manager: keyed password hashing
// and verification for forum accounts.
//
// Passwords are first peppered with HMAC-SHA256 under the application-wide
// secret, then stretched with Argon2id over a per-credential random salt.
// The pepper means a leaked database alone is not enough to mount an
// offline attack; the attacker also needs the process secret.
package crypto

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/argon2"
)

// credentialService is the private implementation of [CredentialService].
type credentialService struct {
	// secret is the application-wide pepper mixed into every hash.
	secret []byte

	// Argon2id tuning parameters. Stored in the struct so they can be
	// adjusted per deployment target.
	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8
	argonKeyLen  uint32
}

// NewCredentialService constructs a [CredentialService] peppered with the
// given secret, using the Argon2id parameters recommended by OWASP (2024):
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
//   - key length:  32 bytes (256 bits)
//
// Returns [ErrNoSecretKey] if secret is empty.
func NewCredentialService(secret string) (CredentialService, error) {
	if secret == "" {
		return nil, ErrNoSecretKey
	}

	return &credentialService{
		secret:       []byte(secret),
		argonTime:    1,
		argonMemory:  64 * 1024, // 64 MiB
		argonThreads: 4,
		argonKeyLen:  32, // 256 bits
	}, nil
}

// HashPassword implements [CredentialService]. It reads a 16-byte salt from
// the OS CSPRNG, derives the Argon2id key from the peppered password, and
// returns the result in PHC string format:
//
//	$argon2id$v=19$m=65536,t=1,p=4$<base64 salt>$<base64 key>
func (c *credentialService) HashPassword(password string) (string, error) {
	salt := make([]byte, 16)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return "", fmt.Errorf("error reading credential salt: %w", err)
	}

	key := c.deriveKey(password, salt)

	encoded := fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		c.argonMemory,
		c.argonTime,
		c.argonThreads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	)

	return encoded, nil
}

// VerifyPassword implements [CredentialService]. It decodes the stored
// credential, re-derives the key from candidate under the stored salt and
// parameters, and compares the two in constant time.
//
// Returns (false, nil) on a genuine mismatch and [ErrMalformedHash] if the
// stored credential cannot be decoded.
func (c *credentialService) VerifyPassword(encoded, candidate string) (bool, error) {
	params, salt, key, err := decodeCredential(encoded)
	if err != nil {
		return false, err
	}

	derived := argon2.IDKey(
		c.pepper(candidate),
		salt,
		params.time,
		params.memory,
		params.threads,
		uint32(len(key)),
	)

	return subtle.ConstantTimeCompare(derived, key) == 1, nil
}

// deriveKey runs the full pepper-then-stretch pipeline for password and salt
// using the receiver's parameters.
func (c *credentialService) deriveKey(password string, salt []byte) []byte {
	return argon2.IDKey(
		c.pepper(password),
		salt,
		c.argonTime,
		c.argonMemory,
		c.argonThreads,
		c.argonKeyLen,
	)
}

// pepper computes HMAC-SHA256(password, secret). Keying the HMAC with the
// process secret domain-separates stored hashes from anything derivable
// from the database contents alone.
func (c *credentialService) pepper(password string) []byte {
	mac := hmac.New(sha256.New, c.secret)
	mac.Write([]byte(password))
	return mac.Sum(nil)
}

// argonParams is the parameter set recovered from a PHC-encoded credential.
type argonParams struct {
	memory  uint32
	time    uint32
	threads uint8
}

// decodeCredential splits a PHC-format Argon2id string into its parameter
// set, salt, and derived key. Any structural problem is reported as
// [ErrMalformedHash] with detail wrapped in.
func decodeCredential(encoded string) (argonParams, []byte, []byte, error) {
	var params argonParams

	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[1] != "argon2id" {
		return params, nil, nil, fmt.Errorf("%w: unexpected format", ErrMalformedHash)
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return params, nil, nil, fmt.Errorf("%w: %w", ErrMalformedHash, err)
	}
	if version != argon2.Version {
		return params, nil, nil, fmt.Errorf("%w: unsupported argon2 version %d", ErrMalformedHash, version)
	}

	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &params.memory, &params.time, &params.threads); err != nil {
		return params, nil, nil, fmt.Errorf("%w: %w", ErrMalformedHash, err)
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return params, nil, nil, fmt.Errorf("%w: %w", ErrMalformedHash, err)
	}

	key, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return params, nil, nil, fmt.Errorf("%w: %w", ErrMalformedHash, err)
	}

	return params, salt, key, nil
}
