package middleware

import (
	"context"

	"github.com/campuscore/college_erp_app/internal/utils"
)

// sessionKey is the key used to store the authenticated session claims in the
// request context. The session travels with the request; there is no
// process-global logged-in state.
const sessionKey = contextKey("session")

// GetSessionFromCtx retrieves the authenticated session claims from the
// context. It returns the claims and a boolean indicating if they were found.
func GetSessionFromCtx(ctx context.Context) (*utils.SessionClaims, bool) {
	claims, ok := ctx.Value(sessionKey).(*utils.SessionClaims)
	return claims, ok
}

// GetUsernameFromCtx returns the authenticated username, or "" when the
// request carries no session.
func GetUsernameFromCtx(ctx context.Context) string {
	if claims, ok := GetSessionFromCtx(ctx); ok {
		return claims.Subject
	}
	return ""
}
