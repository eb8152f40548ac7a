package services

import (
	"context"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/yungbote/portfolio-backend/internal/logger"
	"github.com/yungbote/portfolio-backend/internal/requestdata"
)

const (
	testAdminEmail = "admin@example.com"
	testSecret     = "test-secret-key"
	testPassword   = "correct horse battery staple"
)

func newTestAuthService(t *testing.T, ttl time.Duration) AuthService {
	t.Helper()
	log, err := logger.New("development")
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	svc, err := NewAuthService(log, testAdminEmail, string(hash), testSecret, ttl)
	if err != nil {
		t.Fatalf("NewAuthService: %v", err)
	}
	return svc
}

func TestLoginAndValidateRoundTrip(t *testing.T) {
	svc := newTestAuthService(t, time.Hour)
	ctx := context.Background()

	token, err := svc.Login(ctx, "Admin@Example.COM", testPassword)
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	email, err := svc.ValidateToken(ctx, token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if email != testAdminEmail {
		t.Fatalf("validated email = %q, want %q", email, testAdminEmail)
	}
}

func TestLoginRejectsWrongCredentials(t *testing.T) {
	svc := newTestAuthService(t, time.Hour)
	ctx := context.Background()

	if _, err := svc.Login(ctx, testAdminEmail, "wrong password"); err == nil {
		t.Fatal("wrong password must fail")
	}
	if _, err := svc.Login(ctx, "other@example.com", testPassword); err == nil {
		t.Fatal("wrong email must fail")
	}
	if _, err := svc.Login(ctx, "", ""); err == nil {
		t.Fatal("empty credentials must fail")
	}
}

func TestValidateRejectsGarbageAndForeignTokens(t *testing.T) {
	svc := newTestAuthService(t, time.Hour)
	ctx := context.Background()

	if _, err := svc.ValidateToken(ctx, "not-a-token"); err == nil {
		t.Fatal("garbage token must fail")
	}

	// token signed with a different secret
	log, _ := logger.New("development")
	hash, _ := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	other, err := NewAuthService(log, testAdminEmail, string(hash), "different-secret", time.Hour)
	if err != nil {
		t.Fatalf("NewAuthService: %v", err)
	}
	foreign, err := other.Login(ctx, testAdminEmail, testPassword)
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if _, err := svc.ValidateToken(ctx, foreign); err == nil {
		t.Fatal("token signed with a different secret must fail")
	}
}

func TestValidateRejectsExpiredToken(t *testing.T) {
	svc := newTestAuthService(t, -time.Minute)
	ctx := context.Background()

	token, err := svc.Login(ctx, testAdminEmail, testPassword)
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if _, err := svc.ValidateToken(ctx, token); err == nil {
		t.Fatal("expired token must fail validation")
	}
}

func TestSetContextFromToken(t *testing.T) {
	svc := newTestAuthService(t, time.Hour)
	ctx := context.Background()

	token, err := svc.Login(ctx, testAdminEmail, testPassword)
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	ctx, err = svc.SetContextFromToken(ctx, token)
	if err != nil {
		t.Fatalf("SetContextFromToken: %v", err)
	}
	rd := requestdata.GetRequestData(ctx)
	if rd == nil || rd.AdminEmail != testAdminEmail {
		t.Fatalf("request data = %+v", rd)
	}
}
