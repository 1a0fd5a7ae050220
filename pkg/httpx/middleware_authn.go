package httpx

import (
	"net/http"
	"strings"

	"github.com/aussiebroadwan/carbon/pkg/slogx"
)

// UnauthorizedMessage is the only text a failed authentication ever returns,
// whatever the underlying reason.
const UnauthorizedMessage = "Unauthorized"

// SubjectVerifier turns a bearer token into the subject it was issued for.
type SubjectVerifier interface {
	Verify(token string) (string, error)
}

func AuthnMiddleware(v SubjectVerifier) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			authz := r.Header.Get("Authorization")
			if authz == "" || !strings.HasPrefix(authz, "Bearer ") {
				log.Debug("missing bearer token")
				writeBearerError(w, "missing bearer token")
				return
			}
			raw := strings.TrimSpace(strings.TrimPrefix(authz, "Bearer"))

			subject, err := v.Verify(raw)
			if err != nil {
				log.Warn("bearer token rejected", "err", err)
				writeBearerError(w, "token verification failed")
				return
			}

			ctx = ContextWithUserID(ctx, subject)
			ctx = slogx.WithContext(ctx, log.With("user_id", subject))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RFC 6750-compliant error response for bearer auth. The body stays uniform
// so clients cannot tell a bad signature from an expired token.
func writeBearerError(w http.ResponseWriter, desc string) {
	w.Header().Set("WWW-Authenticate", `Bearer error="invalid_token", error_description="`+desc+`"`)
	WriteError(w, http.StatusUnauthorized, UnauthorizedMessage)
}
