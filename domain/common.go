package domain

import (
	"errors"

	"github.com/google/uuid"
)

const (
	RoleBuyer  = "buyer"
	RoleSeller = "seller"
)

var (
	MessageFailedBodyRequest  = "failed to process request body"
	MessageFailedGetToken     = "failed to get token"
	MessageFailedTokenInvalid = "token is invalid or expired"

	ErrParseUUID     = errors.New("failed to parse UUID")
	ErrTokenNotFound = errors.New("token not found")
	ErrTokenInvalid  = errors.New("token invalid")
	ErrTokenExpired  = errors.New("token expired")
	ErrNotAuthorized = errors.New("not authorized")
)

// Owned is implemented by entities that belong to a single user.
type Owned interface {
	OwnerID() uuid.UUID
}

// Owns is the one place ownership is decided: the principal must match the
// resource's owner field exactly.
func Owns(principalID string, resource Owned) bool {
	return resource.OwnerID().String() == principalID
}
