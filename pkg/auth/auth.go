package auth

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

var ErrInvalidToken = errors.New("invalid token")

type Config struct {
	Secret string        `yaml:"secret" envconfig:"JWT_SECRET" json:"-"`
	TTL    time.Duration `yaml:"ttl" envconfig:"JWT_TTL" default:"24h"`
}

// Session is the authenticated caller of a request.
// Only admin sessions may write.
type Session struct {
	UserID  string `json:"userId"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"isAdmin"`
}

type Claims struct {
	Email string `json:"email"`
	Admin bool   `json:"admin"`
	jwt.RegisteredClaims
}

type TokenManager struct {
	key []byte
	ttl time.Duration
}

func NewTokenManager(cfg Config) *TokenManager {
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &TokenManager{key: []byte(cfg.Secret), ttl: ttl}
}

func (m *TokenManager) Issue(s Session) (string, error) {
	now := time.Now()
	claims := Claims{
		Email: s.Email,
		Admin: s.IsAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   s.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.key)
	if err != nil {
		return "", errors.Wrap(err, "sign token")
	}
	return token, nil
}

func (m *TokenManager) Parse(tokenStr string) (Session, error) {
	claims := new(Claims)
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		return m.key, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil || !token.Valid {
		return Session{}, ErrInvalidToken
	}
	return Session{
		UserID:  claims.Subject,
		Email:   claims.Email,
		IsAdmin: claims.Admin,
	}, nil
}

type sessionKey struct{}

func WithSession(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, s)
}

func FromContext(ctx context.Context) (Session, bool) {
	s, ok := ctx.Value(sessionKey{}).(Session)
	return s, ok
}
