package models

// User is the session identity reconstructed from the auth token claims.
// The auth service owns the canonical record; the client only ever sees
// what the token carries.
type User struct {
	Username string `json:"username"`
}
