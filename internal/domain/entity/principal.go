package entity

import "github.com/google/uuid"

// Principal is the authenticated identity resolved from a request credential.
// It lives only for the duration of one request and is derived from a stored
// User by the authentication middleware.
type Principal struct {
	UserID   uuid.UUID // Identifier of the underlying User.
	Username string    // Username of the underlying User, for responses and logs.
}

// PrincipalFromUser builds the request-scoped identity for a loaded user.
func PrincipalFromUser(user *User) Principal {
	return Principal{UserID: user.ID, Username: user.Username}
}
