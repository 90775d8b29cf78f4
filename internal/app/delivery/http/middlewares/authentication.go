package middlewares

import (
	"context"
	"fmt"
	"net/http"
	"telemed-service/internal/app/models"
	"telemed-service/internal/pkg/constvars"
	"telemed-service/internal/pkg/exceptions"
	"telemed-service/internal/pkg/utils"

	"github.com/goccy/go-json"
)

// Authenticate resolves the bearer token to a Redis-backed session and puts
// the session on the request context. Requests without a live session never
// reach the protected handlers.
func (m *Middlewares) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, err := utils.BearerTokenFromRequest(r)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		sessionID, err := utils.ParseSessionJWT(token, m.InternalConfig.JWT.Secret)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenInvalidOrExpired(err))
			return
		}

		sessionKey := fmt.Sprintf(constvars.SessionKeyFormat, sessionID)
		sessionData, err := m.RedisRepository.Get(r.Context(), sessionKey)
		if err != nil || sessionData == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrSessionInvalidOrExpired(err))
			return
		}

		session := new(models.Session)
		if err := json.Unmarshal([]byte(sessionData), session); err != nil {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrSessionInvalidOrExpired(err))
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_SESSION_KEY, session)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireRole gates a subtree to a single role. Authenticate must run first.
func (m *Middlewares) RequireRole(role, clientMessage string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session, err := utils.SessionFromContext(r.Context())
			if err != nil {
				utils.BuildErrorResponse(m.Log, w, err)
				return
			}

			if session.Role != role {
				utils.BuildErrorResponse(m.Log, w, exceptions.ErrNotMatchRoleType(nil, clientMessage))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
