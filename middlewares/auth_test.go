package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestStaticTokenAuthenticator(t *testing.T) {
	auth := NewStaticTokenAuthenticator("s3cret")

	if _, err := auth.Authenticate("s3cret"); err != nil {
		t.Errorf("expected matching token to pass, got %v", err)
	}
	if _, err := auth.Authenticate("wrong"); err == nil {
		t.Error("expected mismatched token to fail")
	}
	if _, err := auth.Authenticate(""); err == nil {
		t.Error("expected empty token to fail")
	}
}

func signTestToken(t *testing.T, secret, username string) string {
	t.Helper()

	claims := Claims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return signed
}

func TestJWTAuthenticator(t *testing.T) {
	auth := NewJWTAuthenticator("jwt-secret")

	principal, err := auth.Authenticate(signTestToken(t, "jwt-secret", "manager"))
	if err != nil {
		t.Fatalf("expected valid token to pass, got %v", err)
	}
	if principal != "manager" {
		t.Errorf("expected principal %q, got %q", "manager", principal)
	}

	if _, err := auth.Authenticate(signTestToken(t, "other-secret", "manager")); err == nil {
		t.Error("expected token signed with a different key to fail")
	}
	if _, err := auth.Authenticate("not-a-token"); err == nil {
		t.Error("expected malformed token to fail")
	}
}

func TestBearerMiddleware(t *testing.T) {
	auth := NewStaticTokenAuthenticator("s3cret")

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	protected := BearerMiddleware(auth)(next)

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{"valid token", "Bearer s3cret", http.StatusNoContent},
		{"missing header", "", http.StatusUnauthorized},
		{"not bearer", "Basic s3cret", http.StatusUnauthorized},
		{"wrong token", "Bearer nope", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/kpi/update", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()

			protected.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("expected status %d, got %d", tt.wantStatus, w.Code)
			}
		})
	}
}

func TestBearerMiddleware_PrincipalFromJWT(t *testing.T) {
	auth := NewJWTAuthenticator("jwt-secret")

	var gotPrincipal string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPrincipal = GetPrincipalFromContext(r.Context())
	})
	protected := BearerMiddleware(auth)(next)

	req := httptest.NewRequest("POST", "/kpi/update", nil)
	req.Header.Set("Authorization", "Bearer "+signTestToken(t, "jwt-secret", "manager"))
	protected.ServeHTTP(httptest.NewRecorder(), req)

	if gotPrincipal != "manager" {
		t.Errorf("expected principal %q in context, got %q", "manager", gotPrincipal)
	}
}
