package httpx

import (
	"errors"
	"net/http"
	"strings"

	"github.com/procurehub/eproc/pkg/api"
	"github.com/procurehub/eproc/pkg/jwtx"
	"github.com/procurehub/eproc/pkg/slogx"
)

// AuthnMiddleware is the access gate for protected routes. It extracts the
// bearer token from the Authorization header, verifies it, and attaches the
// claims to the request context. Each rejection reason gets its own message
// so clients can tell an expired session from a bad one.
func AuthnMiddleware(v *jwtx.Verifier) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			authz := r.Header.Get("Authorization")
			if authz == "" {
				writeUnauthorized(w, "Access denied. No token provided.")
				return
			}
			if !strings.HasPrefix(authz, "Bearer ") {
				writeUnauthorized(w, "Access denied. Invalid token format. Use: Bearer <token>")
				return
			}
			raw := strings.TrimSpace(strings.TrimPrefix(authz, "Bearer "))
			if raw == "" {
				writeUnauthorized(w, "Access denied. Token is required.")
				return
			}

			claims, err := v.Verify(raw)
			if err != nil {
				switch {
				case errors.Is(err, jwtx.ErrExpired):
					writeUnauthorized(w, "Access denied. Token has expired. Please login again.")
				case errors.Is(err, jwtx.ErrMalformed),
					errors.Is(err, jwtx.ErrInvalidSig),
					errors.Is(err, jwtx.ErrIssuer):
					log.Warn("token verification failed", "err", err)
					writeUnauthorized(w, "Access denied. Invalid token.")
				default:
					log.Error("token verification fault", "err", err)
					WriteJSON(w, http.StatusInternalServerError,
						api.Error("Internal server error during authentication."))
				}
				return
			}

			next.ServeHTTP(w, r.WithContext(ContextWithClaims(ctx, claims)))
		})
	}
}

// RFC 6750-style rejection: machine-readable header plus the envelope body
// the rest of the API speaks.
func writeUnauthorized(w http.ResponseWriter, msg string) {
	w.Header().Set("WWW-Authenticate", `Bearer error="invalid_token"`)
	WriteJSON(w, http.StatusUnauthorized, api.Error(msg))
}
