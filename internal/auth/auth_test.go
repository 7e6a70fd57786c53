package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func newEnv(t *testing.T) *Authenv {
	t.Helper()
	env, err := NewAuthenv([]byte("test-key"), "admin", "s3cret")
	if err != nil {
		t.Fatalf("NewAuthenv: %v", err)
	}
	return env
}

func TestNewAuthenv_EmptyKey(t *testing.T) {
	if _, err := NewAuthenv(nil, "admin", "pw"); err == nil {
		t.Error("expected error for empty key")
	}
}

func TestAuthHandler(t *testing.T) {
	env := newEnv(t)
	tests := []struct {
		name   string
		body   string
		status int
	}{
		{"ok", `{"login":" admin ","password":"s3cret"}`, http.StatusOK},
		{"wrong_password", `{"login":"admin","password":"nope"}`, http.StatusUnauthorized},
		{"wrong_login", `{"login":"root","password":"s3cret"}`, http.StatusUnauthorized},
		{"empty", `{"login":"","password":""}`, http.StatusBadRequest},
		{"bad_json", `{`, http.StatusBadRequest},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			env.AuthHandler(rec, httptest.NewRequest("POST", "/api/login", strings.NewReader(tc.body)))
			if rec.Code != tc.status {
				t.Fatalf("status = %d, want %d", rec.Code, tc.status)
			}
			if tc.status != http.StatusOK {
				return
			}
			if len(rec.Result().Cookies()) == 0 || rec.Result().Cookies()[0].Name != CookieName {
				t.Errorf("session cookie not set")
			}
			var out map[string]string
			if err := json.NewDecoder(rec.Body).Decode(&out); err != nil || out["token"] == "" {
				t.Errorf("token missing: %v %v", out, err)
			}
		})
	}
}

func TestAuthMiddleware(t *testing.T) {
	env := newEnv(t)
	var seen string
	h := env.AuthMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = LoginFrom(r.Context())
	}))

	good, err := env.NewToken("admin", time.Now())
	if err != nil {
		t.Fatal(err)
	}
	expired, _ := env.NewToken("admin", time.Now().Add(-2*sessionTTL))
	other, _ := (&Authenv{JWTkey: []byte("other")}).NewToken("admin", time.Now())
	none := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"login": "admin"})
	noneStr, _ := none.SignedString(jwt.UnsafeAllowNoneSignatureType)

	tests := []struct {
		name   string
		setup  func(r *http.Request)
		status int
	}{
		{"bearer", func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+good) }, http.StatusOK},
		{"cookie", func(r *http.Request) { r.AddCookie(&http.Cookie{Name: CookieName, Value: good}) }, http.StatusOK},
		{"missing", func(r *http.Request) {}, http.StatusUnauthorized},
		{"expired", func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+expired) }, http.StatusUnauthorized},
		{"wrong_key", func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+other) }, http.StatusUnauthorized},
		{"alg_none", func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+noneStr) }, http.StatusUnauthorized},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			seen = ""
			req := httptest.NewRequest("GET", "/api/user/x", nil)
			tc.setup(req)
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			if rec.Code != tc.status {
				t.Fatalf("status = %d, want %d", rec.Code, tc.status)
			}
			if tc.status == http.StatusOK && seen != "admin" {
				t.Errorf("login in context = %q", seen)
			}
		})
	}
}

func TestLimitMiddleware(t *testing.T) {
	l := NewIPRateLimiter(0.001, 2)
	h := l.LimitMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	hit := func(addr string) int {
		req := httptest.NewRequest("GET", "/api/x", nil)
		req.RemoteAddr = addr
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec.Code
	}
	for i := 0; i < 2; i++ {
		if code := hit("10.0.0.1:1000"); code != http.StatusOK {
			t.Fatalf("request %d: status %d", i, code)
		}
	}
	// a new source port is still the same client
	if code := hit("10.0.0.1:2000"); code != http.StatusTooManyRequests {
		t.Errorf("status = %d, want 429", code)
	}
	if code := hit("10.0.0.2:1000"); code != http.StatusOK {
		t.Errorf("other client status = %d", code)
	}
}
