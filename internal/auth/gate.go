package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const (
	AccessTTL  = 15 * time.Minute
	RefreshTTL = 7 * 24 * time.Hour

	roleAdmin = "admin"

	// bcrypt ignores everything past 72 bytes, so longer inputs could never be
	// told apart from the secret.
	maxSecretBytes = 72
)

var (
	ErrInvalidSecret = errors.New("invalid admin secret")
	ErrSecretTooLong = errors.New("admin secret too long")
	ErrInvalidToken  = errors.New("invalid or expired token")
)

// Gate guards the admin surface with a shared secret and signed tokens.
type Gate struct {
	hash          []byte
	accessSecret  []byte
	refreshSecret []byte
	now           func() time.Time
}

// NewGate builds a gate from either a bcrypt hash or the plain secret.
func NewGate(secret, secretHash, accessSecret, refreshSecret string) (*Gate, error) {
	if accessSecret == "" || refreshSecret == "" {
		return nil, errors.New("token secrets are required")
	}

	var hash []byte
	switch {
	case secretHash != "":
		if _, err := bcrypt.Cost([]byte(secretHash)); err != nil {
			return nil, fmt.Errorf("parse admin secret hash: %w", err)
		}
		hash = []byte(secretHash)
	case secret != "":
		if len(secret) > maxSecretBytes {
			return nil, ErrSecretTooLong
		}
		h, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hash admin secret: %w", err)
		}
		hash = h
	default:
		return nil, errors.New("admin secret is required")
	}

	return &Gate{
		hash:          hash,
		accessSecret:  []byte(accessSecret),
		refreshSecret: []byte(refreshSecret),
		now:           time.Now,
	}, nil
}

// Verify checks candidate against the stored secret.
func (g *Gate) Verify(candidate string) error {
	if len(candidate) > maxSecretBytes {
		return ErrSecretTooLong
	}
	if err := bcrypt.CompareHashAndPassword(g.hash, []byte(candidate)); err != nil {
		return ErrInvalidSecret
	}
	return nil
}

// Issue returns a fresh access and refresh token pair.
func (g *Gate) Issue() (access, refresh string, err error) {
	access, err = g.sign(AccessTTL, g.accessSecret)
	if err != nil {
		return "", "", fmt.Errorf("sign access token: %w", err)
	}
	refresh, err = g.sign(RefreshTTL, g.refreshSecret)
	if err != nil {
		return "", "", fmt.Errorf("sign refresh token: %w", err)
	}
	return access, refresh, nil
}

// Refresh validates a refresh token and rotates the pair.
func (g *Gate) Refresh(refreshToken string) (access, refresh string, err error) {
	if err := g.parse(refreshToken, g.refreshSecret); err != nil {
		return "", "", err
	}
	return g.Issue()
}

// ValidateAccess checks an access token.
func (g *Gate) ValidateAccess(token string) error {
	return g.parse(token, g.accessSecret)
}

func (g *Gate) sign(ttl time.Duration, secret []byte) (string, error) {
	now := g.now()
	claims := jwt.MapClaims{
		"role": roleAdmin,
		"exp":  now.Add(ttl).Unix(),
		"iat":  now.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

func (g *Gate) parse(tokenString string, secret []byte) error {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(g.now),
	)
	if err != nil || !token.Valid {
		return ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return ErrInvalidToken
	}
	if role, _ := claims["role"].(string); role != roleAdmin {
		return ErrInvalidToken
	}
	return nil
}
