package credentials

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// cookieClaims wraps the upstream credential in a signed envelope so a
// tampered cookie is rejected before the credential inside it is ever used.
type cookieClaims struct {
	jwt.RegisteredClaims
	Credential string `json:"cred"`
}

// CookieStore persists the upstream bearer credential in an HS256-signed,
// HttpOnly cookie. The signature covers only the envelope; the credential
// itself stays opaque.
type CookieStore struct {
	name   string
	secret []byte
	ttl    time.Duration
	secure bool
}

// NewCookieStore creates a cookie-backed credential store.
func NewCookieStore(name, secret string, ttl time.Duration, secure bool) *CookieStore {
	return &CookieStore{
		name:   name,
		secret: []byte(secret),
		ttl:    ttl,
		secure: secure,
	}
}

// Read extracts and verifies the credential from the request cookie.
func (s *CookieStore) Read(r *http.Request) (string, error) {
	c, err := r.Cookie(s.name)
	if err != nil {
		return "", ErrNoCredential
	}

	token, err := jwt.ParseWithClaims(c.Value, &cookieClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidCookie
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrExpiredCookie
		}
		return "", ErrInvalidCookie
	}

	claims, ok := token.Claims.(*cookieClaims)
	if !ok || !token.Valid || claims.Credential == "" {
		return "", ErrInvalidCookie
	}

	return claims.Credential, nil
}

// Write persists the credential on the response.
func (s *CookieStore) Write(w http.ResponseWriter, credential string) error {
	now := time.Now()
	claims := &cookieClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
		Credential: credential,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return fmt.Errorf("failed to sign credential cookie: %w", err)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     s.name,
		Value:    signed,
		Path:     "/",
		MaxAge:   int(s.ttl.Seconds()),
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// Clear removes the credential cookie.
func (s *CookieStore) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     s.name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
}
