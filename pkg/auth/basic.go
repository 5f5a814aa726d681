package auth

import (
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"net/http"
	"strings"
)

var (
	ErrMissingAuthHeader   = errors.New("missing authorization header")
	ErrInvalidAuthHeader   = errors.New("invalid authorization header format")
	ErrInvalidCredentials  = errors.New("invalid username or password")
	ErrUnsupportedAuthType = errors.New("unsupported authorization type")
)

// BasicAuth validates HTTP Basic credentials against a fixed user set.
type BasicAuth struct {
	users map[string]string
}

// NewBasicAuth creates a new BasicAuth instance with the provided users
func NewBasicAuth(users map[string]string) *BasicAuth {
	if users == nil {
		users = make(map[string]string)
	}
	return &BasicAuth{
		users: users,
	}
}

// AddUser adds a user to the authentication system
func (ba *BasicAuth) AddUser(username, password string) {
	ba.users[username] = password
}

// ValidateCredentials validates the provided username and password
func (ba *BasicAuth) ValidateCredentials(username, password string) bool {
	storedPassword, exists := ba.users[username]
	if !exists {
		return false
	}

	// Constant time comparison to prevent timing attacks
	return subtle.ConstantTimeCompare([]byte(password), []byte(storedPassword)) == 1
}

// ParseBasicAuth parses the Authorization header and extracts username and password
func (ba *BasicAuth) ParseBasicAuth(authHeader string) (username, password string, err error) {
	if authHeader == "" {
		return "", "", ErrMissingAuthHeader
	}

	const basicPrefix = "Basic "
	if !strings.HasPrefix(authHeader, basicPrefix) {
		return "", "", ErrUnsupportedAuthType
	}

	encoded := strings.TrimPrefix(authHeader, basicPrefix)
	if encoded == "" {
		return "", "", ErrInvalidAuthHeader
	}

	decoded, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", "", ErrInvalidAuthHeader
	}

	parts := strings.SplitN(string(decoded), ":", 2)
	if len(parts) != 2 {
		return "", "", ErrInvalidAuthHeader
	}

	return parts[0], parts[1], nil
}

// Authenticate validates the Authorization header from an HTTP request
func (ba *BasicAuth) Authenticate(authHeader string) (string, error) {
	username, password, err := ba.ParseBasicAuth(authHeader)
	if err != nil {
		return "", err
	}

	if !ba.ValidateCredentials(username, password) {
		return "", ErrInvalidCredentials
	}

	return username, nil
}

// Middleware returns an HTTP middleware that validates Basic Auth
func (ba *BasicAuth) Middleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		username, err := ba.Authenticate(authHeader)
		if err != nil {
			w.Header().Set("WWW-Authenticate", `Basic realm="Restricted"`)
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		ctx := WithUser(r.Context(), username)
		next(w, r.WithContext(ctx))
	}
}
