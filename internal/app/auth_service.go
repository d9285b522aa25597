package app

import (
	"context"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"hirewire/internal/common"
	"hirewire/internal/domain/user"
	"hirewire/internal/security"
)

const bcryptCost = 10

type AuthService struct {
	users    user.Repository
	jwt      *security.JWTProvider
	tokenTTL time.Duration
}

func NewAuthService(users user.Repository, jwt *security.JWTProvider, tokenTTL time.Duration) *AuthService {
	return &AuthService{users: users, jwt: jwt, tokenTTL: tokenTTL}
}

type AuthResult struct {
	Token string     `json:"token"`
	User  *user.User `json:"user"`
}

func (s *AuthService) Register(ctx context.Context, name, email, password, role string) (*AuthResult, error) {
	fields := map[string]string{}
	if strings.TrimSpace(name) == "" {
		fields["name"] = "name is required"
	}
	if strings.TrimSpace(email) == "" {
		fields["email"] = "email is required"
	}
	if password == "" {
		fields["password"] = "password is required"
	}
	if len(fields) > 0 {
		return nil, common.NewValidationError("missing fields", fields)
	}
	parsedRole, err := user.ParseRole(role)
	if err != nil {
		return nil, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to hash password", err)
	}
	account, err := s.users.Create(ctx, user.User{
		Name:         strings.TrimSpace(name),
		Email:        email,
		PasswordHash: string(hash),
		Role:         parsedRole,
	})
	if err != nil {
		return nil, err
	}
	return s.issueToken(account)
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	if strings.TrimSpace(email) == "" || password == "" {
		return nil, common.NewValidationError("missing fields", map[string]string{"email": "email and password are required"})
	}
	account, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if common.Is(err, common.CodeNotFound) {
			return nil, common.NewError(common.CodeUnauthorized, "invalid credentials", err)
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return nil, common.NewError(common.CodeUnauthorized, "invalid credentials", err)
	}
	return s.issueToken(account)
}

func (s *AuthService) Me(ctx context.Context, userID common.UUID) (*user.User, error) {
	return s.users.GetByID(ctx, userID)
}

func (s *AuthService) issueToken(account *user.User) (*AuthResult, error) {
	token, _, err := s.jwt.Generate(account.ID, string(account.Role), s.tokenTTL)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to issue token", err)
	}
	return &AuthResult{Token: token, User: account}, nil
}
