package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/saulo-duarte/langassess/internal/config"
)

type contextKey string

const passClaimsKey contextKey = "pass_claims"

var ErrNoPassToken = errors.New("no pass token in context")

// PassTokenMiddleware validates an optional bearer pass token. A present but invalid
// token is always rejected; a missing one is rejected only when required is set.
func PassTokenMiddleware(required bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := config.WithContext(r.Context())

			tokenStr := bearerToken(r)
			if tokenStr == "" {
				if required {
					log.Warn("Upload attempted without pass token")
					config.Message(w, http.StatusUnauthorized, "A passing assessment is required")
					return
				}
				next.ServeHTTP(w, r)
				return
			}

			claims, err := ValidatePassToken(tokenStr)
			if err != nil {
				log.WithError(err).Warn("Invalid pass token")
				config.Message(w, http.StatusUnauthorized, "Invalid or expired pass token")
				return
			}

			ctx := context.WithValue(r.Context(), passClaimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func GetPassClaimsFromContext(ctx context.Context) (*PassClaims, error) {
	claims, ok := ctx.Value(passClaimsKey).(*PassClaims)
	if !ok || claims == nil {
		return nil, ErrNoPassToken
	}
	return claims, nil
}

func bearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	if h == "" {
		return ""
	}
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
