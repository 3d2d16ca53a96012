package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/IsuruKaushika/UNITUNES-sub000/config"
	"github.com/IsuruKaushika/UNITUNES-sub000/ownership"
	"github.com/IsuruKaushika/UNITUNES-sub000/utils"
)

type contextKey string

const principalKey = contextKey("principal")

// PrincipalFrom returns the authenticated principal stored by Auth.
func PrincipalFrom(ctx context.Context) (ownership.Principal, bool) {
	p, ok := ctx.Value(principalKey).(ownership.Principal)
	return p, ok
}

// WithPrincipal is used by handler tests to pre-authenticate a request.
func WithPrincipal(ctx context.Context, p ownership.Principal) context.Context {
	return context.WithValue(ctx, principalKey, p)
}

// Auth validates the token on mutating routes and stores the principal in the
// request context. The mobile and dashboard clients send the token under a
// bare "token" header; Authorization: Bearer is accepted as well. Failures
// answer the standard {success:false} envelope, which the clients parse
// instead of the status code.
func Auth(cfg *config.Config) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenStr := r.Header.Get("token")
			if tokenStr == "" {
				if bearer := r.Header.Get("Authorization"); strings.HasPrefix(bearer, "Bearer ") {
					tokenStr = strings.TrimPrefix(bearer, "Bearer ")
				}
			}
			if tokenStr == "" {
				log.Warn().Str("path", r.URL.Path).Msg("missing auth token")
				denied(w, "Not Authorized Login Again")
				return
			}

			p, err := utils.ValidateJWT(cfg.JWTSecret, tokenStr)
			if err != nil {
				log.Warn().Err(err).Str("path", r.URL.Path).Msg("token validation failed")
				denied(w, "Not Authorized Login Again")
				return
			}

			ctx := WithPrincipal(r.Context(), p)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin guards the resources that have no per-record ownership; any
// valid admin token passes, everything else is refused.
func RequireAdmin(cfg *config.Config) func(http.Handler) http.Handler {
	auth := Auth(cfg)
	return func(next http.Handler) http.Handler {
		return auth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			p, ok := PrincipalFrom(r.Context())
			if !ok || p.Role != ownership.RoleAdmin {
				denied(w, "Admin access only")
				return
			}
			next.ServeHTTP(w, r)
		}))
	}
}

func denied(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"success": false, "message": message})
}
