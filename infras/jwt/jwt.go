package jwt

//go:generate go run go.uber.org/mock/mockgen -source=./jwt.go -destination=./mocks/jwt_mock.go -package=mocks

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"cleanrate/config"
	"cleanrate/shared/constant"
	"cleanrate/shared/timezone"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// fallbackSecret is only meant for local development; deployments set JWT_ACCESS_SECRET.
const fallbackSecret = "your-secret-key"

var (
	ErrInvalidToken  = errors.New("invalid token")
	ErrExpiredToken  = errors.New("token has expired")
	ErrInvalidClaim  = errors.New("invalid token claim")
	ErrMissingHeader = errors.New("authorization header is required")
	ErrInvalidHeader = errors.New("authorization header must start with 'Bearer '")
)

type TokenType string

const (
	AccessToken  TokenType = "access"
	RefreshToken TokenType = "refresh"
)

// Identity is the subject a token pair is issued for.
type Identity struct {
	UserID   string
	Email    string
	IsAdmin  bool
	UserType string
}

// Role maps the admin flag to the role names used by the permission table.
func (i Identity) Role() string {
	if i.IsAdmin {
		return constant.RoleAdmin
	}

	return constant.RoleEmployee
}

type Claims struct {
	UserID   string    `json:"user_id"`
	Email    string    `json:"email"`
	IsAdmin  bool      `json:"is_admin"`
	UserType string    `json:"user_type"`
	Role     string    `json:"role,omitempty"`
	TokenID  string    `json:"token_id"`
	Type     TokenType `json:"type"`
	jwt.RegisteredClaims
}

func (c *Claims) Identity() Identity {
	return Identity{
		UserID:   c.UserID,
		Email:    c.Email,
		IsAdmin:  c.IsAdmin,
		UserType: c.UserType,
	}
}

type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
}

type JWT interface {
	GenerateTokenPair(identity Identity) (*TokenPair, error)
	ValidateToken(tokenString string, tokenType TokenType) (*Claims, error)
	RefreshTokens(refreshToken string) (*TokenPair, error)
}

type Service struct {
	config *config.Config
}

func New(cfg *config.Config) JWT {
	if cfg.JWT.AccessSecret == "" || cfg.JWT.RefreshSecret == "" {
		log.Warn().Msg("JWT secrets are not configured, falling back to the development secret")
	}

	return &Service{
		config: cfg,
	}
}

func (s *Service) GenerateTokenPair(identity Identity) (*TokenPair, error) {
	now := timezone.Now()

	accessToken, err := s.generateToken(identity, AccessToken, now, s.expireMin(AccessToken))
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, err := s.generateToken(identity, RefreshToken, now, s.expireMin(RefreshToken))
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	return &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "Bearer",
		ExpiresIn:    int64(s.expireMin(AccessToken) * constant.MinutesToSeconds),
	}, nil
}

func (s *Service) generateToken(identity Identity, tokenType TokenType, issuedAt time.Time, expireMin int) (string, error) {
	expiresAt := issuedAt.Add(time.Duration(expireMin) * time.Minute)
	tokenID := uuid.New().String()

	claims := Claims{
		UserID:   identity.UserID,
		Email:    identity.Email,
		IsAdmin:  identity.IsAdmin,
		UserType: identity.UserType,
		Role:     identity.Role(),
		TokenID:  tokenID,
		Type:     tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			NotBefore: jwt.NewNumericDate(issuedAt),
			Issuer:    s.config.App.Name,
			Subject:   identity.UserID,
			ID:        tokenID,
		},
	}

	secret, err := s.secret(tokenType)
	if err != nil {
		return "", err
	}

	signedToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signedToken, nil
}

func (s *Service) ValidateToken(tokenString string, tokenType TokenType) (*Claims, error) {
	secret, err := s.secret(tokenType)
	if err != nil {
		return nil, err
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}

		return secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}

		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	if claims.Type != tokenType || claims.UserID == "" || claims.Email == "" {
		return nil, ErrInvalidClaim
	}

	return claims, nil
}

func (s *Service) RefreshTokens(refreshToken string) (*TokenPair, error) {
	claims, err := s.ValidateToken(refreshToken, RefreshToken)
	if err != nil {
		return nil, fmt.Errorf("invalid refresh token: %w", err)
	}

	return s.GenerateTokenPair(claims.Identity())
}

func (s *Service) secret(tokenType TokenType) ([]byte, error) {
	var secret string

	switch tokenType {
	case AccessToken:
		secret = s.config.JWT.AccessSecret
	case RefreshToken:
		secret = s.config.JWT.RefreshSecret
		if secret == "" {
			secret = s.config.JWT.AccessSecret
		}
	default:
		return nil, fmt.Errorf("unknown token type: %s", tokenType)
	}

	if secret == "" {
		secret = fallbackSecret
	}

	return []byte(secret), nil
}

func (s *Service) expireMin(tokenType TokenType) int {
	if tokenType == RefreshToken && s.config.JWT.RefreshExpireMin > 0 {
		return s.config.JWT.RefreshExpireMin
	}

	if tokenType == AccessToken && s.config.JWT.AccessExpireMin > 0 {
		return s.config.JWT.AccessExpireMin
	}

	// 24h access, 7 days refresh
	if tokenType == RefreshToken {
		return 7 * 24 * 60
	}

	return 24 * 60
}

// ExtractTokenFromHeader extracts the bearer token from an Authorization header.
func ExtractTokenFromHeader(authHeader string) (string, error) {
	if authHeader == "" {
		return "", ErrMissingHeader
	}

	const prefix = "Bearer "
	if !strings.HasPrefix(authHeader, prefix) || strings.TrimSpace(authHeader[len(prefix):]) == "" {
		return "", ErrInvalidHeader
	}

	return strings.TrimSpace(authHeader[len(prefix):]), nil
}
