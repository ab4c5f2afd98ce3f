package service

import (
	"errors"

	"github.com/google/uuid"
)

// ErrInvalidCredential is returned by Decode for any token that does not
// verify: malformed, wrong signature, disallowed algorithm, or a payload
// without a usable user id. Callers treat it as "no identity", never as a
// process fault.
var ErrInvalidCredential = errors.New("invalid credential")

// TokenCodec encodes and decodes the signed credential that asserts a user
// identity on every request. Tokens carry only the user id and do not
// expire; rotating the signing secret invalidates all of them at once.
type TokenCodec interface {
	// Encode issues a signed credential for the given user.
	Encode(userID uuid.UUID) (string, error)

	// Decode verifies a credential and recovers the user id it asserts.
	Decode(credential string) (uuid.UUID, error)
}
