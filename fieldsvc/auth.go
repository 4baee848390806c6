package fieldsvc

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// IssueToken signs an HS256 token for subject that a Service built with
// WithTokenKey(key) accepts until ttl elapses.
func IssueToken(key []byte, subject string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(key)
}

// authorize checks the handshake token, taken from the "token" query
// parameter or an "Authorization: Bearer" header, and returns its subject.
func (s *Service) authorize(r *http.Request) (string, error) {
	raw := r.URL.Query().Get("token")
	if h := r.Header.Get("Authorization"); raw == "" && strings.HasPrefix(h, "Bearer ") {
		raw = strings.TrimPrefix(h, "Bearer ")
	}
	if raw == "" {
		return "", fmt.Errorf("no token: %w", ErrUnauthorized)
	}

	var claims jwt.RegisteredClaims
	token, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("signing method %v", t.Header["alg"])
		}
		return s.cfg.tokenKey, nil
	})
	if err != nil {
		return "", fmt.Errorf("%v: %w", err, ErrUnauthorized)
	}
	if !token.Valid {
		return "", ErrUnauthorized
	}

	return claims.Subject, nil
}
