package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/yungbote/portfolio-backend/internal/logger"
	"github.com/yungbote/portfolio-backend/internal/requestdata"
)

// AuthService authenticates the single admin identity. There is no user
// table: the admin email and bcrypt password hash come from configuration,
// and a successful login yields a short-lived HS256 access token whose
// subject is the admin email.
type AuthService interface {
	Login(ctx context.Context, email, password string) (string, error)
	ValidateToken(ctx context.Context, tokenString string) (string, error)
	SetContextFromToken(ctx context.Context, tokenString string) (context.Context, error)
	AccessTTL() time.Duration
}

type JWTClaims struct {
	jwt.RegisteredClaims
}

type authService struct {
	log               *logger.Logger
	adminEmail        string
	adminPasswordHash string
	jwtSecretKey      string
	accessTTL         time.Duration
}

func NewAuthService(log *logger.Logger, adminEmail, adminPasswordHash, jwtSecretKey string, accessTTL time.Duration) (AuthService, error) {
	serviceLog := log.With("service", "AuthService")
	adminEmail = normalizeEmail(adminEmail)
	if adminEmail == "" {
		return nil, fmt.Errorf("admin email is required")
	}
	if adminPasswordHash == "" {
		return nil, fmt.Errorf("admin password hash is required")
	}
	if jwtSecretKey == "" {
		return nil, fmt.Errorf("jwt secret key is required")
	}
	return &authService{
		log:               serviceLog,
		adminEmail:        adminEmail,
		adminPasswordHash: adminPasswordHash,
		jwtSecretKey:      jwtSecretKey,
		accessTTL:         accessTTL,
	}, nil
}

func (as *authService) Login(ctx context.Context, email, password string) (string, error) {
	email = normalizeEmail(email)
	if email == "" {
		return "", fmt.Errorf("Email is required to login")
	}
	if password == "" {
		return "", fmt.Errorf("Password is required to login")
	}
	if email != as.adminEmail {
		return "", fmt.Errorf("Invalid email or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(as.adminPasswordHash), []byte(password)); err != nil {
		return "", fmt.Errorf("Invalid email or password")
	}

	claims := JWTClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   as.adminEmail,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(as.accessTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(as.jwtSecretKey))
}

// ValidateToken parses and verifies the token and checks its subject against
// the configured admin identity. Any failure, including a wrong identity, is
// reported the same way the absence of a token is.
func (as *authService) ValidateToken(ctx context.Context, tokenString string) (string, error) {
	claims := &JWTClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(as.jwtSecretKey), nil
	})
	if err != nil {
		return "", fmt.Errorf("invalid token: %w", err)
	}
	if !token.Valid {
		return "", fmt.Errorf("invalid token")
	}
	if normalizeEmail(claims.Subject) != as.adminEmail {
		return "", fmt.Errorf("token subject is not the admin")
	}
	return as.adminEmail, nil
}

func (as *authService) SetContextFromToken(ctx context.Context, tokenString string) (context.Context, error) {
	email, err := as.ValidateToken(ctx, tokenString)
	if err != nil {
		return ctx, err
	}
	return requestdata.WithRequestData(ctx, &requestdata.RequestData{
		TokenString: tokenString,
		AdminEmail:  email,
	}), nil
}

func (as *authService) AccessTTL() time.Duration {
	return as.accessTTL
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
