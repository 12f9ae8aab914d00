package httpx

import (
	"context"
	"net/http"
	"strings"

	"github.com/feroxapp/ferox/pkg/jwtx"
	"github.com/feroxapp/ferox/pkg/slogx"
)

// AuthTokenHeader is the request header carrying the session JWT.
const AuthTokenHeader = "X-Auth-Token" // #nosec G101 - header name, not a credential

// AuthnMiddleware verifies the session token header and injects the account
// identity into the request context. Requests without a valid token get a 401
// with the standard error envelope.
func AuthnMiddleware(v jwtx.Verifier) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			raw := strings.TrimSpace(r.Header.Get(AuthTokenHeader))
			if raw == "" {
				writeAuthError(w, "missing auth token")
				return
			}

			claims, err := v.Verify(raw)
			if err != nil {
				log.Warn("jwt verify failed", "err", err)
				writeAuthError(w, "token verification failed")
				return
			}

			if err := claims.ValidateExpiry(); err != nil {
				writeAuthError(w, "token expired")
				return
			}

			ctx = contextWithAuth(ctx, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func contextWithAuth(ctx context.Context, c jwtx.Claims) context.Context {
	ctx = context.WithValue(ctx, CtxKeyAccountID, c.Subject)
	ctx = context.WithValue(ctx, CtxKeyUsername, c.Username)
	ctx = context.WithValue(ctx, CtxKeyClaims, c)
	return ctx
}

func writeAuthError(w http.ResponseWriter, desc string) {
	WriteJSON(w, http.StatusUnauthorized, map[string]string{
		"error":             "invalid_token",
		"error_description": desc,
	})
}
