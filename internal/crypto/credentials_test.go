// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) CredentialService {
	t.Helper()

	svc, err := NewCredentialService("test-pepper-secret")
	require.NoError(t, err)
	return svc
}

func TestNewCredentialService_EmptySecret(t *testing.T) {
	_, err := NewCredentialService("")
	require.ErrorIs(t, err, ErrNoSecretKey)
}

func TestHashPassword_RoundTrip(t *testing.T) {
	svc := newTestService(t)

	encoded, err := svc.HashPassword("correct horse battery staple")
	require.NoError(t, err)

	match, err := svc.VerifyPassword(encoded, "correct horse battery staple")
	require.NoError(t, err)
	assert.True(t, match)
}

func TestHashPassword_NeverEqualsPlaintext(t *testing.T) {
	svc := newTestService(t)

	password := "hunter2"
	encoded, err := svc.HashPassword(password)
	require.NoError(t, err)

	assert.NotEqual(t, password, encoded)
	assert.NotContains(t, encoded, password)
	assert.True(t, strings.HasPrefix(encoded, "$argon2id$"))
}

func TestHashPassword_SaltedPerCredential(t *testing.T) {
	svc := newTestService(t)

	first, err := svc.HashPassword("same password")
	require.NoError(t, err)

	second, err := svc.HashPassword("same password")
	require.NoError(t, err)

	// random per-credential salts must make identical passwords diverge
	assert.NotEqual(t, first, second)

	match, err := svc.VerifyPassword(first, "same password")
	require.NoError(t, err)
	assert.True(t, match)

	match, err = svc.VerifyPassword(second, "same password")
	require.NoError(t, err)
	assert.True(t, match)
}

func TestVerifyPassword_Mismatch(t *testing.T) {
	svc := newTestService(t)

	encoded, err := svc.HashPassword("right password")
	require.NoError(t, err)

	match, err := svc.VerifyPassword(encoded, "wrong password")
	require.NoError(t, err)
	assert.False(t, match)
}

func TestVerifyPassword_DifferentPepper(t *testing.T) {
	svc := newTestService(t)

	encoded, err := svc.HashPassword("shared password")
	require.NoError(t, err)

	other, err := NewCredentialService("a different pepper")
	require.NoError(t, err)

	// same password, same stored credential, wrong process secret
	match, err := other.VerifyPassword(encoded, "shared password")
	require.NoError(t, err)
	assert.False(t, match)
}

func TestVerifyPassword_MalformedHash(t *testing.T) {
	svc := newTestService(t)

	cases := []struct {
		name    string
		encoded string
	}{
		{"empty", ""},
		{"garbage", "not-a-credential"},
		{"wrong algorithm", "$bcrypt$v=19$m=65536,t=1,p=4$c2FsdA$aGFzaA"},
		{"missing sections", "$argon2id$v=19$m=65536,t=1,p=4"},
		{"bad salt encoding", "$argon2id$v=19$m=65536,t=1,p=4$!!!$aGFzaA"},
		{"bad key encoding", "$argon2id$v=19$m=65536,t=1,p=4$c2FsdA$!!!"},
		{"unsupported version", "$argon2id$v=18$m=65536,t=1,p=4$c2FsdA$aGFzaA"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.VerifyPassword(tc.encoded, "whatever")
			require.ErrorIs(t, err, ErrMalformedHash)
		})
	}
}

func TestVerifyPassword_EmptyCandidate(t *testing.T) {
	svc := newTestService(t)

	encoded, err := svc.HashPassword("non-empty")
	require.NoError(t, err)

	match, err := svc.VerifyPassword(encoded, "")
	require.NoError(t, err)
	assert.False(t, match)
}
