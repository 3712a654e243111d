package services

import (
	"fmt"
	"time"

	"blog-api/internal/config"
	"blog-api/internal/models"
	"blog-api/pkg/utils"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type JWTClaims struct {
	UserID uuid.UUID `json:"userId"`
	jwt.RegisteredClaims
}

type JWTService struct {
	tokenExpiry time.Duration
	secretKey   []byte
}

func NewJWTService() *JWTService {
	// Parse expiry once during service creation
	expiry, err := time.ParseDuration(config.App.Auth.Token.Expiry)
	if err != nil {
		// Use default if parsing fails
		expiry = time.Hour
	}

	return &JWTService{
		tokenExpiry: expiry,
		secretKey:   []byte(utils.GetEnv("JWT_SECRET")),
	}
}

// GenerateToken creates a signed, time-bounded session token for a user
func (s *JWTService) GenerateToken(user models.User) (string, error) {
	now := time.Now()
	claims := JWTClaims{
		UserID: user.ID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenExpiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    "blog-api",
			Subject:   user.ID.String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.secretKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// ValidateToken parses a session token and returns its claims. It fails when
// the signature is invalid, the token is malformed, or it has expired; the
// store is never consulted.
func (s *JWTService) ValidateToken(tokenString string) (*JWTClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secretKey, nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims, ok := token.Claims.(*JWTClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token claims")
}
