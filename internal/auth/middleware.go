package auth

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/healthcare-service/internal/domain"
	apperrors "github.com/spec-kit/healthcare-service/pkg/util/errorutil"
)

const identityKey = "auth_identity"

type identityCtxKey struct{}

// TokenVerifier resolves a raw token to the user id it was issued for.
type TokenVerifier interface {
	Verify(token string) (int64, error)
}

// AuthMiddleware gates protected routes behind a valid token in a custom header.
type AuthMiddleware struct {
	tokens TokenVerifier
	header string
}

// NewAuthMiddleware constructs middleware reading the token from header.
func NewAuthMiddleware(tokens TokenVerifier, header string) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens, header: header}
}

// Handle enforces authentication for protected routes. Expired and invalid
// tokens produce the same response.
func (m *AuthMiddleware) Handle(c *fiber.Ctx) error {
	token := strings.TrimSpace(c.Get(m.header))
	if token == "" {
		return apperrors.NewUnauthorized(apperrors.CodeTokenMissing, "no token, authorization denied")
	}

	userID, err := m.tokens.Verify(token)
	if err != nil {
		return apperrors.NewUnauthorized(apperrors.CodeTokenInvalid, "token is not valid")
	}

	identity := domain.Identity{UserID: userID}
	c.Locals(identityKey, identity)
	c.SetUserContext(WithIdentity(c.UserContext(), identity))
	return c.Next()
}

// IdentityFromContext retrieves the authenticated caller.
func IdentityFromContext(c *fiber.Ctx) (domain.Identity, bool) {
	identity, ok := c.Locals(identityKey).(domain.Identity)
	return identity, ok
}

// WithIdentity stores the caller on a context.Context.
func WithIdentity(ctx context.Context, identity domain.Identity) context.Context {
	return context.WithValue(ctx, identityCtxKey{}, identity)
}

// IdentityFrom reads the caller stored by WithIdentity.
func IdentityFrom(ctx context.Context) (domain.Identity, bool) {
	identity, ok := ctx.Value(identityCtxKey{}).(domain.Identity)
	return identity, ok
}
