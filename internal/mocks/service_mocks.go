package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"vita/internal/domain/entity"
	"vita/internal/domain/service"
)

// TokenService is a mock implementation of service.TokenService.
type TokenService struct {
	mock.Mock
}

func (m *TokenService) Issue(identity entity.Identity, kind service.TokenKind) (string, error) {
	args := m.Called(identity, kind)

	return args.String(0), args.Error(1)
}

func (m *TokenService) Verify(token string, kind service.TokenKind) (*entity.Identity, error) {
	args := m.Called(token, kind)
	if identity, ok := args.Get(0).(*entity.Identity); ok {
		return identity, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *TokenService) HashToken(token string) string {
	return m.Called(token).String(0)
}

func (m *TokenService) AccessTokenDuration() time.Duration {
	return m.Called().Get(0).(time.Duration)
}

func (m *TokenService) RefreshTokenDuration() time.Duration {
	return m.Called().Get(0).(time.Duration)
}

// PasswordHasher is a mock implementation of service.PasswordHasher.
type PasswordHasher struct {
	mock.Mock
}

func (m *PasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)

	return args.String(0), args.Error(1)
}

func (m *PasswordHasher) Compare(hash string, password string) error {
	return m.Called(hash, password).Error(0)
}

func (m *PasswordHasher) CheckStrength(password string) error {
	return m.Called(password).Error(0)
}

// ChatCompletionService is a mock implementation of service.ChatCompletionService.
type ChatCompletionService struct {
	mock.Mock
}

func (m *ChatCompletionService) Complete(ctx context.Context, req service.ChatRequest) (*service.ChatResponse, error) {
	args := m.Called(ctx, req)
	if resp, ok := args.Get(0).(*service.ChatResponse); ok {
		return resp, args.Error(1)
	}

	return nil, args.Error(1)
}
