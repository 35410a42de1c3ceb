package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gestion-eventos/internal/auth"
	"github.com/gestion-eventos/internal/metrics"
	"github.com/gestion-eventos/internal/model"
)

type contextKey string

const ClaimsContextKey contextKey = "claims"

const (
	MsgTokenMissing = "Token no proporcionado."
	MsgTokenBadForm = "Token inválido."
	MsgTokenInvalid = "Token no válido."
	MsgAccessDenied = "Acceso denegado."
)

// TokenVerifier checks a bearer token of the given kind.
type TokenVerifier interface {
	VerifyKind(tokenStr string, kind auth.TokenKind) (*model.TokenClaims, error)
}

type AuthMiddleware struct {
	tokens TokenVerifier
}

func NewAuthMiddleware(tokens TokenVerifier) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

// Authenticate requires an access token in the Authorization header and
// attaches its claims to the request context.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" {
			metrics.TokensRejected.WithLabelValues("missing").Inc()
			writeMessage(w, http.StatusUnauthorized, MsgTokenMissing)
			return
		}

		tokenStr := bearerToken(header)
		if tokenStr == "" {
			metrics.TokensRejected.WithLabelValues("malformed").Inc()
			writeMessage(w, http.StatusUnauthorized, MsgTokenBadForm)
			return
		}

		claims, err := m.tokens.VerifyKind(tokenStr, auth.KindAccess)
		if err != nil {
			metrics.TokensRejected.WithLabelValues("invalid").Inc()
			LoggerFromContext(r.Context()).Debug().Err(err).Msg("token rejected")
			writeMessage(w, http.StatusForbidden, MsgTokenInvalid)
			return
		}

		ctx := context.WithValue(r.Context(), ClaimsContextKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireRole admits only requests whose claims carry one of roles. It must
// run after Authenticate; missing claims are a denial.
func RequireRole(roles ...model.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims := ClaimsFromContext(r.Context())
			if claims == nil || !hasRole(claims.Role, roles) {
				metrics.TokensRejected.WithLabelValues("role").Inc()
				writeMessage(w, http.StatusForbidden, MsgAccessDenied)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func hasRole(role model.Role, allowed []model.Role) bool {
	for _, a := range allowed {
		if role == a {
			return true
		}
	}
	return false
}

// bearerToken returns the second space-separated segment of the header.
func bearerToken(header string) string {
	_, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found {
		return ""
	}
	return strings.TrimSpace(token)
}

func ClaimsFromContext(ctx context.Context) *model.TokenClaims {
	claims, ok := ctx.Value(ClaimsContextKey).(*model.TokenClaims)
	if !ok {
		return nil
	}
	return claims
}

// WithClaims attaches claims to ctx the way Authenticate does.
func WithClaims(ctx context.Context, claims *model.TokenClaims) context.Context {
	return context.WithValue(ctx, ClaimsContextKey, claims)
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"message": message})
}
