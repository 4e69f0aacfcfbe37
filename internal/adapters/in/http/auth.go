package http

import (
	"context"
	"errors"
	"strings"
	"time"

	"dispatch/internal/core/application/session"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/profile"
	"dispatch/internal/core/ports"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"
)

const sessionContextKey = "dispatch.session"

var (
	// ErrInvalidCredentials is returned on unknown email or wrong password.
	// Both cases map to the same error so login failures do not reveal which
	// part was wrong.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrAccountNotActive is returned when the credentials are correct but the
	// account is pending approval or suspended.
	ErrAccountNotActive = errors.New("account is not active")

	errInvalidToken = errors.New("invalid or expired token")
)

// sessionClaims is the JWT payload: the registered claims plus the user id
// and role needed to rebuild a session without a database round trip.
type sessionClaims struct {
	jwt.RegisteredClaims
	UserID string `json:"uid"`
	Role   string `json:"role"`
}

// TokenService issues and verifies the signed session tokens used by the API.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenService creates a token service signing with the given secret.
func NewTokenService(secret string, ttl time.Duration) TokenService {
	return TokenService{secret: []byte(secret), ttl: ttl}
}

// Issue signs a token for the given profile.
func (t TokenService) Issue(p *profile.Profile) (string, error) {
	now := time.Now().UTC()
	claims := sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   p.UserID().String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
		UserID: p.UserID().String(),
		Role:   p.Role().String(),
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
}

// Parse verifies a token and rebuilds the caller's session from its claims.
func (t TokenService) Parse(token string) (session.Session, error) {
	var claims sessionClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(tok *jwt.Token) (interface{}, error) {
		if _, ok := tok.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errInvalidToken
		}
		return t.secret, nil
	})
	if err != nil || !parsed.Valid {
		return session.Session{}, errInvalidToken
	}

	userID, err := kernel.UUIDFromString(claims.UserID)
	if err != nil {
		return session.Session{}, errInvalidToken
	}

	role, err := profile.RoleFromString(claims.Role)
	if err != nil {
		return session.Session{}, errInvalidToken
	}

	return session.NewSession(userID, role)
}

// Authenticator verifies credentials against stored profiles and issues
// session tokens for active accounts.
type Authenticator struct {
	profiles ports.ProfileRepository
	tokens   TokenService
}

// NewAuthenticator creates an authenticator over the given profile store.
func NewAuthenticator(profiles ports.ProfileRepository, tokens TokenService) Authenticator {
	return Authenticator{profiles: profiles, tokens: tokens}
}

// Login verifies the email and password and returns a signed token with the
// authenticated profile. Pending and suspended accounts are rejected even
// with correct credentials.
func (a Authenticator) Login(ctx context.Context, email, password string) (string, *profile.Profile, error) {
	p, err := a.profiles.GetByEmail(ctx, email)
	if err != nil {
		return "", nil, ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(p.PasswordHash()), []byte(password)) != nil {
		return "", nil, ErrInvalidCredentials
	}

	if !p.IsActive() {
		return "", nil, ErrAccountNotActive
	}

	token, err := a.tokens.Issue(p)
	if err != nil {
		return "", nil, err
	}

	return token, p, nil
}

// sessionMiddleware resolves the caller's session from the Authorization
// header once per request and stores it in the echo context.
func sessionMiddleware(tokens TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				return echo.NewHTTPError(401, "missing bearer token")
			}

			sess, err := tokens.Parse(token)
			if err != nil {
				return echo.NewHTTPError(401, "invalid or expired token")
			}

			c.Set(sessionContextKey, sess)
			return next(c)
		}
	}
}

// requireRole rejects requests whose session fails the given check.
func requireRole(check func(session.Session) bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sess, ok := c.Get(sessionContextKey).(session.Session)
			if !ok {
				return echo.NewHTTPError(401, "missing session")
			}
			if !check(sess) {
				return echo.NewHTTPError(403, "insufficient role")
			}
			return next(c)
		}
	}
}

func currentSession(c echo.Context) (session.Session, bool) {
	sess, ok := c.Get(sessionContextKey).(session.Session)
	return sess, ok
}
