package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestVerifyJWT(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	valid, err := SignJWT("secret", NewTokenClaims("user-1", now.Add(time.Hour)))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	expired, _ := SignJWT("secret", NewTokenClaims("user-1", now.Add(-time.Minute)))
	noSub, _ := SignJWT("secret", NewTokenClaims("", now.Add(time.Hour)))
	noExp, _ := SignJWT("secret", TokenClaims{RegisteredClaims: jwt.RegisteredClaims{Subject: "user-1"}})
	hs512, _ := jwt.NewWithClaims(jwt.SigningMethodHS512, NewTokenClaims("user-1", now.Add(time.Hour))).SignedString([]byte("secret"))
	unsigned, _ := jwt.NewWithClaims(jwt.SigningMethodNone, NewTokenClaims("user-1", now.Add(time.Hour))).SignedString(jwt.UnsafeAllowNoneSignatureType)

	tests := []struct {
		name    string
		token   string
		secret  string
		wantErr error
	}{
		{name: "valid", token: valid, secret: "secret"},
		{name: "wrong secret", token: valid, secret: "other", wantErr: ErrInvalidToken},
		{name: "expired", token: expired, secret: "secret", wantErr: ErrTokenExpired},
		{name: "missing subject", token: noSub, secret: "secret", wantErr: ErrInvalidToken},
		{name: "missing expiry", token: noExp, secret: "secret", wantErr: ErrInvalidToken},
		{name: "other algorithm", token: hs512, secret: "secret", wantErr: ErrInvalidToken},
		{name: "unsigned", token: unsigned, secret: "secret", wantErr: ErrInvalidToken},
		{name: "malformed", token: "abc.def", secret: "secret", wantErr: ErrInvalidToken},
		{name: "tampered payload", token: tamper(valid), secret: "secret", wantErr: ErrInvalidToken},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			claims, err := VerifyJWT(tc.secret, tc.token, now)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("err = %v, want %v", err, tc.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if claims.Subject != "user-1" {
				t.Fatalf("sub = %q", claims.Subject)
			}
		})
	}
}

func tamper(token string) string {
	parts := strings.Split(token, ".")
	parts[1] = parts[1][:len(parts[1])-2] + "xx"
	return strings.Join(parts, ".")
}

func TestAuthJWTMiddleware(t *testing.T) {
	token, _ := SignJWT("secret", NewTokenClaims("user-42", time.Now().Add(time.Hour)))
	var gotUser string
	h := AuthJWT("secret")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUser = UserIDFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/v1/pages", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK || gotUser != "user-42" {
		t.Fatalf("status = %d user = %q", rr.Code, gotUser)
	}

	for _, header := range []string{"", "Basic abc", "Bearer nope"} {
		req := httptest.NewRequest(http.MethodGet, "/v1/pages", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)
		if rr.Code != http.StatusUnauthorized {
			t.Fatalf("header %q: status = %d", header, rr.Code)
		}
		if !strings.Contains(rr.Body.String(), `"code":"unauthorized"`) {
			t.Fatalf("header %q: body = %s", header, rr.Body.String())
		}
	}
}

func TestVerifyJWTNeverAcceptsTokenWithoutExpiry(t *testing.T) {
	token, err := SignJWT("secret", TokenClaims{RegisteredClaims: jwt.RegisteredClaims{Subject: "user-1"}})
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	farFuture := time.Now().AddDate(100, 0, 0)
	if _, err := VerifyJWT("secret", token, farFuture); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("err = %v, want %v", err, ErrInvalidToken)
	}
}
