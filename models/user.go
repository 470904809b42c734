package models

// User represents a registered forum account.
// It is created once at registration and is immutable afterwards;
// accounts are never deleted.
type User struct {
	// ID is the internal surrogate key assigned by the store.
	// It is not exposed via JSON and is used only at the persistence layer.
	ID int64 `json:"-"`

	// Username is the unique public identifier of the account.
	// Used during authentication and shown next to threads and comments.
	Username string `json:"username"`

	// Email is the contact address supplied at registration.
	// Never serialized into responses; it exists only for the account record.
	Email string `json:"-"`

	// PasswordHash is the encoded keyed hash of the user's password.
	// The plaintext password never reaches this struct; the hash is never
	// serialized outside the persistence layer.
	PasswordHash string `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Credentials carries the registration/login form fields as received from
// the transport layer. The Password field exists only in memory for the
// duration of a single request; it is hashed before any persistence.
type Credentials struct {
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
	Password string `json:"password"`
}
