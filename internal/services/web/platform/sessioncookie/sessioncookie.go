// Package sessioncookie centralizes web session cookie behavior. Sessions are
// stateless: the cookie value is a signed JWT carrying the viewer claims, so
// no server-side session store is needed.
package sessioncookie

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	apperrors "github.com/louisbranch/carbonledger/internal/platform/errors"
)

// Name is the canonical session cookie name.
const Name = "carbonledger_session"

// DefaultTTL bounds session lifetime when no TTL is configured.
const DefaultTTL = 24 * time.Hour

// Session is the authenticated browser state carried in the cookie.
type Session struct {
	UserID   int64
	Email    string
	UserType string
	// Pending marks a signup that has not chosen an identity yet.
	Pending bool
}

type claims struct {
	Email    string `json:"email"`
	UserType string `json:"user_type,omitempty"`
	Pending  bool   `json:"pending,omitempty"`
	jwt.RegisteredClaims
}

// Codec signs and verifies session tokens.
type Codec struct {
	key []byte
	ttl time.Duration
	now func() time.Time
}

// NewCodec builds a codec signing with the given key. A non-positive ttl
// falls back to DefaultTTL.
func NewCodec(key []byte, ttl time.Duration) (*Codec, error) {
	if len(key) == 0 {
		return nil, errors.New("session key is required")
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Codec{key: key, ttl: ttl, now: time.Now}, nil
}

// Encode signs the session into a compact token.
func (c *Codec) Encode(session Session) (string, error) {
	if c == nil {
		return "", errors.New("session codec is nil")
	}
	now := c.now().UTC()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Email:    session.Email,
		UserType: session.UserType,
		Pending:  session.Pending,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(session.UserID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
	})
	return token.SignedString(c.key)
}

// Decode verifies a token and returns the session it carries.
func (c *Codec) Decode(token string) (Session, error) {
	if c == nil {
		return Session{}, errors.New("session codec is nil")
	}
	var parsed claims
	_, err := jwt.ParseWithClaims(token, &parsed,
		func(*jwt.Token) (any, error) { return c.key, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(func() time.Time { return c.now() }),
	)
	if err != nil {
		return Session{}, apperrors.Wrap(apperrors.CodeSessionInvalid, "invalid session token", err)
	}
	userID, err := strconv.ParseInt(parsed.Subject, 10, 64)
	if err != nil || userID <= 0 {
		return Session{}, apperrors.New(apperrors.CodeSessionInvalid, "invalid session subject")
	}
	return Session{
		UserID:   userID,
		Email:    parsed.Email,
		UserType: parsed.UserType,
		Pending:  parsed.Pending,
	}, nil
}

// Read returns the trimmed session cookie value when present.
func Read(r *http.Request) (string, bool) {
	if r == nil {
		return "", false
	}
	cookie, err := r.Cookie(Name)
	if err != nil || cookie == nil {
		return "", false
	}
	value := strings.TrimSpace(cookie.Value)
	if value == "" {
		return "", false
	}
	return value, true
}

// Write sets the session cookie for the current request context.
func Write(w http.ResponseWriter, r *http.Request, token string) {
	if w == nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     Name,
		Value:    strings.TrimSpace(token),
		Path:     "/",
		HttpOnly: true,
		Secure:   isHTTPS(r),
		SameSite: http.SameSiteLaxMode,
	})
}

// Clear expires the session cookie for the current request context.
func Clear(w http.ResponseWriter, r *http.Request) {
	if w == nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     Name,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   isHTTPS(r),
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}

func isHTTPS(r *http.Request) bool {
	if r == nil {
		return false
	}
	if r.TLS != nil {
		return true
	}
	return strings.EqualFold(strings.TrimSpace(r.Header.Get("X-Forwarded-Proto")), "https")
}
