package service

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"go-admin-console/internal/model"
	"go-admin-console/internal/repository"
	"go-admin-console/pkg/jwt"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrAccountForbidden   = errors.New("account is forbidden")
)

type AuthService interface {
	Login(username, password string) (*LoginResponse, error)
}

type LoginResponse struct {
	Token   string                `json:"token"`
	Account model.AccountResponse `json:"account"`
}

type authService struct {
	accountRepo repository.AccountRepository
}

func NewAuthService(accountRepo repository.AccountRepository) AuthService {
	return &authService{accountRepo: accountRepo}
}

func (s *authService) Login(username, password string) (*LoginResponse, error) {
	// 1. Find account by username
	account, err := s.accountRepo.FindByUsername(username)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, ErrInvalidCredentials
	}

	// 2. Check account status
	if account.Status != model.StatusNormal {
		return nil, ErrAccountForbidden
	}

	// 3. Verify password
	if !account.CheckPassword(password) {
		return nil, ErrInvalidCredentials
	}

	// 4. Single session: rotate token version
	now := time.Now()
	account.TokenVersion = uuid.New().String()
	account.LastLoginAt = &now
	if err := s.accountRepo.Update(account); err != nil {
		return nil, errors.New("failed to update session")
	}

	// 5. Generate JWT carrying the identity flag for menu resolution
	token, err := jwt.GenerateToken(account.ID, account.Username, int(account.Identity), account.TokenVersion)
	if err != nil {
		return nil, errors.New("failed to generate token")
	}

	return &LoginResponse{
		Token:   token,
		Account: account.ToResponse(),
	}, nil
}
