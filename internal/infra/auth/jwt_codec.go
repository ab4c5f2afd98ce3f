package auth

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"tasktag/config"
	"tasktag/internal/domain/service"
)

// jwtCodec is a concrete implementation of the TokenCodec interface using the JWT standard.
// Tokens are signed with HS256 over a single process-wide secret and carry a
// single claim, user_id. No expiry is set: a token stays valid until the
// secret rotates.
type jwtCodec struct {
	secret []byte
}

// NewJWTCodec is the constructor for jwtCodec. The signing secret comes from
// configuration at construction time; the codec never reads ambient state.
func NewJWTCodec(cfg *config.Config) (service.TokenCodec, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	return &jwtCodec{secret: []byte(cfg.SecretKey.Access)}, nil
}

// Encode issues a signed credential asserting the given user id.
func (c *jwtCodec) Encode(userID uuid.UUID) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID.String(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString(c.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign credential")
	}

	return signed, nil
}

// Decode verifies a credential and recovers the user id it asserts.
// Every failure mode collapses into service.ErrInvalidCredential so callers
// cannot distinguish a malformed token from a forged one.
func (c *jwtCodec) Decode(credential string) (uuid.UUID, error) {
	token, err := jwt.Parse(credential, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return c.secret, nil
	})
	if err != nil || !token.Valid {
		return uuid.Nil, service.ErrInvalidCredential
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, service.ErrInvalidCredential
	}

	rawID, ok := claims["user_id"].(string)
	if !ok {
		return uuid.Nil, service.ErrInvalidCredential
	}

	userID, err := uuid.Parse(rawID)
	if err != nil {
		return uuid.Nil, service.ErrInvalidCredential
	}

	return userID, nil
}
