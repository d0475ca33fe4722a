package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/heartmarshall/cerego-backend/internal/service/auth"
	"github.com/heartmarshall/cerego-backend/pkg/ctxutil"
)

type tokenValidator interface {
	ResolveToken(ctx context.Context, token string) (auth.Identity, error)
}

// Auth resolves the bearer token into a caller identity. Requests without
// a token pass through anonymous; handlers reject them where identity is
// required. Requests with an invalid token are rejected outright.
func Auth(validator tokenValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r) // Anonymous
				return
			}
			identity, err := validator.ResolveToken(r.Context(), token)
			if err != nil {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}
			ctx := ctxutil.WithUserID(r.Context(), identity.UserID)
			ctx = ctxutil.WithAdmin(ctx, identity.IsAdmin)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func extractBearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
