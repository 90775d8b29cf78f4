package utils

import (
	"context"
	"net/http"
	"strings"
	"telemed-service/internal/app/models"
	"telemed-service/internal/pkg/constvars"
	"telemed-service/internal/pkg/exceptions"
)

// SessionFromContext returns the identity placed on the context by the
// authentication middleware.
func SessionFromContext(ctx context.Context) (*models.Session, error) {
	session, ok := ctx.Value(constvars.CONTEXT_SESSION_KEY).(*models.Session)
	if !ok || session == nil {
		return nil, exceptions.ErrSessionInvalidOrExpired(nil)
	}
	return session, nil
}

// BearerTokenFromRequest extracts the token from the Authorization header.
func BearerTokenFromRequest(r *http.Request) (string, error) {
	header := r.Header.Get(constvars.HeaderAuthorization)
	if header == "" {
		return "", exceptions.ErrTokenMissing(nil)
	}

	token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	if token == "" {
		return "", exceptions.ErrTokenMissing(nil)
	}

	return token, nil
}
