package app

import (
	"context"
	"testing"
	"time"

	"hirewire/internal/common"
	"hirewire/internal/domain/user"
	"hirewire/internal/security"
)

func newAuthService(users user.Repository) *AuthService {
	return NewAuthService(users, security.NewJWTProvider("secret"), time.Hour)
}

func TestAuthServiceRegister_IssuesToken(t *testing.T) {
	users := newFakeUserRepo()
	service := newAuthService(users)

	result, err := service.Register(context.Background(), "Dana Reyes", "dana@mail.test", "hunter22", "candidate")
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if result.Token == "" {
		t.Fatal("expected token to be issued")
	}
	if result.User.Role != user.RoleCandidate {
		t.Fatalf("expected candidate role, got %s", result.User.Role)
	}
	if result.User.PasswordHash == "hunter22" {
		t.Fatal("password stored in plaintext")
	}

	claims, err := security.NewJWTProvider("secret").Parse(result.Token)
	if err != nil {
		t.Fatalf("expected token to parse, got %v", err)
	}
	if claims.UserID != result.User.ID.String() {
		t.Fatalf("expected user_id claim %s, got %s", result.User.ID, claims.UserID)
	}
	if claims.Role != "candidate" {
		t.Fatalf("expected candidate role claim, got %s", claims.Role)
	}
}

func TestAuthServiceRegister_MissingFields(t *testing.T) {
	service := newAuthService(newFakeUserRepo())

	_, err := service.Register(context.Background(), "", "dana@mail.test", "", "candidate")
	if !common.Is(err, common.CodeValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestAuthServiceRegister_InvalidRole(t *testing.T) {
	service := newAuthService(newFakeUserRepo())

	_, err := service.Register(context.Background(), "Dana", "dana@mail.test", "hunter22", "admin")
	if !common.Is(err, common.CodeValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestAuthServiceRegister_DuplicateEmail(t *testing.T) {
	users := newFakeUserRepo()
	service := newAuthService(users)

	if _, err := service.Register(context.Background(), "Dana", "dana@mail.test", "hunter22", "candidate"); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	_, err := service.Register(context.Background(), "Other", "dana@mail.test", "hunter22", "employer")
	if !common.Is(err, common.CodeConflict) {
		t.Fatalf("expected conflict error, got %v", err)
	}
}

func TestAuthServiceLogin(t *testing.T) {
	users := newFakeUserRepo()
	service := newAuthService(users)
	if _, err := service.Register(context.Background(), "Dana", "dana@mail.test", "hunter22", "candidate"); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	result, err := service.Login(context.Background(), "dana@mail.test", "hunter22")
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if result.Token == "" {
		t.Fatal("expected token to be issued")
	}
}

func TestAuthServiceLogin_WrongPassword(t *testing.T) {
	users := newFakeUserRepo()
	service := newAuthService(users)
	if _, err := service.Register(context.Background(), "Dana", "dana@mail.test", "hunter22", "candidate"); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	_, err := service.Login(context.Background(), "dana@mail.test", "wrong")
	if !common.Is(err, common.CodeUnauthorized) {
		t.Fatalf("expected unauthorized error, got %v", err)
	}
}

func TestAuthServiceLogin_UnknownEmail(t *testing.T) {
	service := newAuthService(newFakeUserRepo())

	_, err := service.Login(context.Background(), "nobody@mail.test", "hunter22")
	if !common.Is(err, common.CodeUnauthorized) {
		t.Fatalf("expected unauthorized error, got %v", err)
	}
}
