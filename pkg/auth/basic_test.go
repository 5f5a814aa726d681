package auth

import (
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestValidateCredentials(t *testing.T) {
	ba := NewBasicAuth(map[string]string{"admin": "secret"})

	tests := []struct {
		name     string
		username string
		password string
		expected bool
	}{
		{"valid credentials", "admin", "secret", true},
		{"wrong password", "admin", "wrong", false},
		{"unknown user", "nobody", "secret", false},
		{"empty password", "admin", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ba.ValidateCredentials(tt.username, tt.password); got != tt.expected {
				t.Errorf("ValidateCredentials(%q, %q) = %v, want %v", tt.username, tt.password, got, tt.expected)
			}
		})
	}
}

func TestParseBasicAuth(t *testing.T) {
	ba := NewBasicAuth(nil)

	tests := []struct {
		name    string
		header  string
		wantErr error
	}{
		{"missing header", "", ErrMissingAuthHeader},
		{"bearer token", "Bearer abc123", ErrUnsupportedAuthType},
		{"empty payload", "Basic ", ErrInvalidAuthHeader},
		{"not base64", "Basic !!!", ErrInvalidAuthHeader},
		{"no colon", "Basic " + base64.StdEncoding.EncodeToString([]byte("adminsecret")), ErrInvalidAuthHeader},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := ba.ParseBasicAuth(tt.header)
			if err != tt.wantErr {
				t.Errorf("ParseBasicAuth(%q) error = %v, want %v", tt.header, err, tt.wantErr)
			}
		})
	}

	t.Run("valid header", func(t *testing.T) {
		header := "Basic " + base64.StdEncoding.EncodeToString([]byte("admin:secret"))
		username, password, err := ba.ParseBasicAuth(header)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if username != "admin" || password != "secret" {
			t.Errorf("got %q/%q, want admin/secret", username, password)
		}
	})
}

func TestMiddleware(t *testing.T) {
	ba := NewBasicAuth(map[string]string{"admin": "secret"})

	var gotUser string
	protected := ba.Middleware(func(w http.ResponseWriter, r *http.Request) {
		gotUser, _ = UserFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	t.Run("unauthenticated request rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/admin/feedback", nil)
		rec := httptest.NewRecorder()
		protected(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", rec.Code)
		}
		if rec.Header().Get("WWW-Authenticate") == "" {
			t.Error("expected WWW-Authenticate header")
		}
	})

	t.Run("authenticated request passes with user in context", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/admin/feedback", nil)
		req.SetBasicAuth("admin", "secret")
		rec := httptest.NewRecorder()
		protected(rec, req)

		if rec.Code != http.StatusOK {
			t.Errorf("expected 200, got %d", rec.Code)
		}
		if gotUser != "admin" {
			t.Errorf("expected user admin in context, got %q", gotUser)
		}
	})
}
