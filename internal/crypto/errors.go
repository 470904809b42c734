package crypto

import "errors"

// Sentinel errors returned by the credential service. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrNoSecretKey is returned when a credential service is constructed
	// without an application secret. This is a configuration fault and is
	// expected to abort startup.
	ErrNoSecretKey = errors.New("credential secret key is absent")

	// ErrMalformedHash is returned when a stored credential cannot be
	// decoded (truncated, wrong algorithm tag, undecodable base64). A
	// plain password mismatch is NOT an error; it is reported as a false
	// verification result.
	ErrMalformedHash = errors.New("stored credential is malformed")
)
