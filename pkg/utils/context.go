package utils

import (
	"context"

	"github.com/google/uuid"
)

type contextKey struct{}

// identityKey holds the *Identity of an authenticated caller.
var identityKey = contextKey{}

const RoleAdmin = "admin"

func SetUserContext(ctx context.Context, userID uuid.UUID, role string) context.Context {
	return context.WithValue(ctx, identityKey, &Identity{UserID: userID, Role: role})
}

// IdentityFromContext returns nil for anonymous requests.
func IdentityFromContext(ctx context.Context) *Identity {
	identity, _ := ctx.Value(identityKey).(*Identity)
	return identity
}

func GetUserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	identity := IdentityFromContext(ctx)
	if identity == nil || identity.UserID == uuid.Nil {
		return uuid.Nil, false
	}
	return identity.UserID, true
}

func GetRoleFromContext(ctx context.Context) (string, bool) {
	identity := IdentityFromContext(ctx)
	if identity == nil {
		return "", false
	}
	return identity.Role, true
}

func IsAdmin(ctx context.Context) bool {
	role, _ := GetRoleFromContext(ctx)
	return role == RoleAdmin
}
