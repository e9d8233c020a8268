package middlewares

import (
	"context"
	"crypto/subtle"
	"errors"
	"net/http"
	"strings"

	"kpireport/utils"

	"github.com/golang-jwt/jwt/v5"
)

// Authenticator checks a bearer credential and names the caller. Pluggable so
// the comparison strategy can change without touching call sites.
type Authenticator interface {
	Authenticate(credential string) (principal string, err error)
}

var errBadCredential = errors.New("invalid credential")

// StaticTokenAuthenticator compares the credential against a single
// process-wide secret in constant time.
type StaticTokenAuthenticator struct {
	secret string
}

func NewStaticTokenAuthenticator(secret string) *StaticTokenAuthenticator {
	return &StaticTokenAuthenticator{secret: secret}
}

func (a *StaticTokenAuthenticator) Authenticate(credential string) (string, error) {
	if subtle.ConstantTimeCompare([]byte(credential), []byte(a.secret)) != 1 {
		return "", errBadCredential
	}
	return "", nil
}

type Claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// JWTAuthenticator accepts HMAC-signed tokens carrying a username claim.
type JWTAuthenticator struct {
	secret []byte
}

func NewJWTAuthenticator(secret string) *JWTAuthenticator {
	return &JWTAuthenticator{secret: []byte(secret)}
}

func (a *JWTAuthenticator) Authenticate(credential string) (string, error) {
	token, err := jwt.ParseWithClaims(credential, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return a.secret, nil
	})
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return "", errBadCredential
	}

	return claims.Username, nil
}

type contextKey string

const PrincipalContextKey contextKey = "principal"

// BearerMiddleware guards the mutating routes: it extracts the
// "Authorization: Bearer <credential>" header, runs the authenticator, and
// stores the resulting principal in the request context.
func BearerMiddleware(auth Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				utils.HandleMessageResponse(w, "Authorization header required", http.StatusUnauthorized)
				return
			}

			credential := strings.TrimPrefix(authHeader, "Bearer ")
			if credential == authHeader {
				utils.HandleMessageResponse(w, "Invalid authorization header format", http.StatusUnauthorized)
				return
			}

			principal, err := auth.Authenticate(credential)
			if err != nil {
				utils.HandleMessageResponse(w, "Invalid token", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), PrincipalContextKey, principal)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func GetPrincipalFromContext(ctx context.Context) string {
	if principal, ok := ctx.Value(PrincipalContextKey).(string); ok {
		return principal
	}
	return ""
}
