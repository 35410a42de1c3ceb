package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/gestion-eventos/internal/apperror"
	"github.com/gestion-eventos/internal/model"
)

const (
	DefaultAccessTTL  = 3600 * time.Second
	DefaultRefreshTTL = 2592000 * time.Second
)

// TokenKind distinguishes access tokens from refresh tokens. Both are
// signed with the same secret.
type TokenKind string

const (
	KindAccess  TokenKind = "access"
	KindRefresh TokenKind = "refresh"
)

type tokenClaims struct {
	model.TokenClaims
	Kind TokenKind `json:"kind"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies HS256 identity tokens.
type TokenService struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
	now        func() time.Time
}

func NewTokenService(secret string, accessTTL, refreshTTL time.Duration) *TokenService {
	if accessTTL <= 0 {
		accessTTL = DefaultAccessTTL
	}
	if refreshTTL <= 0 {
		refreshTTL = DefaultRefreshTTL
	}
	return &TokenService{
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		now:        time.Now,
	}
}

// GenerateToken issues an access token using the configured lifetime.
func (s *TokenService) GenerateToken(claims model.TokenClaims) (string, error) {
	return s.sign(claims, KindAccess, s.accessTTL)
}

// GenerateTokenWithTTL issues an access token that expires after ttl.
func (s *TokenService) GenerateTokenWithTTL(claims model.TokenClaims, ttl time.Duration) (string, error) {
	return s.sign(claims, KindAccess, ttl)
}

func (s *TokenService) GenerateRefreshToken(claims model.TokenClaims) (string, error) {
	return s.sign(claims, KindRefresh, s.refreshTTL)
}

func (s *TokenService) GenerateRefreshTokenWithTTL(claims model.TokenClaims, ttl time.Duration) (string, error) {
	return s.sign(claims, KindRefresh, ttl)
}

func (s *TokenService) sign(claims model.TokenClaims, kind TokenKind, ttl time.Duration) (string, error) {
	now := s.now()
	tc := tokenClaims{
		TokenClaims: claims,
		Kind:        kind,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, tc)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// VerifyToken checks signature and expiry and returns the claims exactly
// as issued, whatever the token kind.
func (s *TokenService) VerifyToken(tokenStr string) (*model.TokenClaims, error) {
	tc, err := s.parse(tokenStr)
	if err != nil {
		return nil, err
	}
	return &tc.TokenClaims, nil
}

// VerifyKind is VerifyToken restricted to one token kind.
func (s *TokenService) VerifyKind(tokenStr string, kind TokenKind) (*model.TokenClaims, error) {
	tc, err := s.parse(tokenStr)
	if err != nil {
		return nil, err
	}
	if tc.Kind != kind {
		return nil, fmt.Errorf("%w: expected %s token, got %q", apperror.ErrInvalidToken, kind, tc.Kind)
	}
	return &tc.TokenClaims, nil
}

func (s *TokenService) parse(tokenStr string) (*tokenClaims, error) {
	var tc tokenClaims
	parsed, err := jwt.ParseWithClaims(tokenStr, &tc, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now), jwt.WithExpirationRequired())
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, fmt.Errorf("%w: token expired", apperror.ErrInvalidToken)
		}
		return nil, fmt.Errorf("%w: %v", apperror.ErrInvalidToken, err)
	}
	if !parsed.Valid {
		return nil, apperror.ErrInvalidToken
	}
	return &tc, nil
}
