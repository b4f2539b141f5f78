package impl

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"vita/internal/domain/entity"
	domainerrors "vita/internal/domain/errors"
	"vita/internal/domain/repository"
	"vita/internal/domain/service"
	"vita/internal/mocks"
	"vita/internal/usecase"
)

type userServiceMocks struct {
	txManager        *mocks.TransactionManager
	userRepo         *mocks.UserRepository
	refreshTokenRepo *mocks.RefreshTokenRepository
	hasher           *mocks.PasswordHasher
	tokenService     *mocks.TokenService
}

func newUserService(t *testing.T) (usecase.UserUsecase, *userServiceMocks) {
	t.Helper()

	m := &userServiceMocks{
		userRepo:         &mocks.UserRepository{},
		refreshTokenRepo: &mocks.RefreshTokenRepository{},
		hasher:           &mocks.PasswordHasher{},
		tokenService:     &mocks.TokenService{},
	}
	m.txManager = &mocks.TransactionManager{
		Factory: &mocks.RepositoryFactory{
			UserRepoMock:         m.userRepo,
			RefreshTokenRepoMock: m.refreshTokenRepo,
		},
	}

	srv := NewUserService(UserServiceParams{
		TxManager:        m.txManager,
		UserRepo:         m.userRepo,
		RefreshTokenRepo: m.refreshTokenRepo,
		Hasher:           m.hasher,
		TokenService:     m.tokenService,
		Logger:           slog.Default(),
	})

	return srv, m
}

func expectSession(m *userServiceMocks, userID uint64, email string) {
	identity := entity.Identity{ID: userID, Email: email}
	m.tokenService.On("Issue", identity, service.TokenKindAccess).Return("access-token", nil)
	m.tokenService.On("Issue", identity, service.TokenKindRefresh).Return("refresh-token", nil)
	m.tokenService.On("HashToken", "refresh-token").Return("refresh-hash")
	m.tokenService.On("RefreshTokenDuration").Return(7 * 24 * time.Hour)
	m.refreshTokenRepo.On("CreateRefreshToken", mock.Anything, mock.MatchedBy(func(tok *entity.RefreshToken) bool {
		return tok.UserID == userID && tok.TokenHash == "refresh-hash" && tok.ExpiresAt.After(time.Now())
	})).Return(nil)
}

func TestUserService_Register(t *testing.T) {
	srv, m := newUserService(t)

	m.hasher.On("CheckStrength", "StrongPass123").Return(nil)
	m.hasher.On("Hash", "StrongPass123").Return("hashed", nil)
	m.txManager.On("Execute", mock.Anything, mock.Anything).Return(nil)
	m.userRepo.On("FindByEmail", mock.Anything, "new@example.com").Return(nil, repository.ErrUserNotFound)
	m.userRepo.On("Create", mock.Anything, mock.MatchedBy(func(u *entity.User) bool {
		return u.Email == "new@example.com" && u.PasswordHash == "hashed"
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*entity.User).ID = 11
	}).Return(nil)
	expectSession(m, 11, "new@example.com")

	out, err := srv.Register(context.Background(), usecase.RegisterInput{
		Name:     "New User",
		Email:    "new@example.com",
		Password: "StrongPass123",
	})
	require.NoError(t, err)
	assert.Equal(t, uint64(11), out.User.ID)
	assert.Equal(t, "access-token", out.AccessToken)
	assert.Equal(t, "refresh-token", out.RefreshToken)

	m.userRepo.AssertExpectations(t)
	m.refreshTokenRepo.AssertExpectations(t)
}

func TestUserService_RegisterDuplicateEmail(t *testing.T) {
	srv, m := newUserService(t)

	m.hasher.On("CheckStrength", "StrongPass123").Return(nil)
	m.hasher.On("Hash", "StrongPass123").Return("hashed", nil)
	m.txManager.On("Execute", mock.Anything, mock.Anything).Return(nil)
	m.userRepo.On("FindByEmail", mock.Anything, "dup@example.com").Return(&entity.User{ID: 3, Email: "dup@example.com"}, nil)

	out, err := srv.Register(context.Background(), usecase.RegisterInput{
		Email:    "dup@example.com",
		Password: "StrongPass123",
	})
	assert.Nil(t, out)
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
	m.userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUserService_RegisterWeakPassword(t *testing.T) {
	srv, m := newUserService(t)

	m.hasher.On("CheckStrength", "weak").Return(domainerrors.ErrPasswordStrength)

	out, err := srv.Register(context.Background(), usecase.RegisterInput{
		Email:    "weak@example.com",
		Password: "weak",
	})
	assert.Nil(t, out)
	assert.ErrorIs(t, err, domainerrors.ErrPasswordStrength)
	m.hasher.AssertNotCalled(t, "Hash", mock.Anything)
}

func TestUserService_Login(t *testing.T) {
	srv, m := newUserService(t)

	user := &entity.User{ID: 7, Email: "user@example.com", PasswordHash: "stored-hash"}
	m.userRepo.On("FindByEmail", mock.Anything, "user@example.com").Return(user, nil)
	m.hasher.On("Compare", "stored-hash", "StrongPass123").Return(nil)
	expectSession(m, 7, "user@example.com")

	out, err := srv.Login(context.Background(), usecase.LoginInput{
		Email:    "user@example.com",
		Password: "StrongPass123",
	})
	require.NoError(t, err)
	assert.Equal(t, user, out.User)
	assert.Equal(t, "access-token", out.AccessToken)
	assert.Equal(t, "refresh-token", out.RefreshToken)
}

func TestUserService_LoginUnknownEmail(t *testing.T) {
	srv, m := newUserService(t)

	m.userRepo.On("FindByEmail", mock.Anything, "ghost@example.com").Return(nil, repository.ErrUserNotFound)

	out, err := srv.Login(context.Background(), usecase.LoginInput{
		Email:    "ghost@example.com",
		Password: "whatever",
	})
	assert.Nil(t, out)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_LoginWrongPassword(t *testing.T) {
	srv, m := newUserService(t)

	user := &entity.User{ID: 7, Email: "user@example.com", PasswordHash: "stored-hash"}
	m.userRepo.On("FindByEmail", mock.Anything, "user@example.com").Return(user, nil)
	m.hasher.On("Compare", "stored-hash", "wrong").Return(domainerrors.ErrInvalidCredentials)

	out, err := srv.Login(context.Background(), usecase.LoginInput{
		Email:    "user@example.com",
		Password: "wrong",
	})
	assert.Nil(t, out)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	m.tokenService.AssertNotCalled(t, "Issue", mock.Anything, mock.Anything)
}

func TestUserService_Refresh(t *testing.T) {
	srv, m := newUserService(t)

	identity := &entity.Identity{ID: 7, Email: "user@example.com"}
	m.tokenService.On("Verify", "old-refresh", service.TokenKindRefresh).Return(identity, nil)
	m.tokenService.On("HashToken", "old-refresh").Return("old-hash")
	m.refreshTokenRepo.On("FindRefreshTokenByHash", mock.Anything, "old-hash").Return(&entity.RefreshToken{
		ID:        1,
		UserID:    7,
		TokenHash: "old-hash",
		ExpiresAt: time.Now().Add(time.Hour),
	}, nil)
	user := &entity.User{ID: 7, Email: "user@example.com"}
	m.userRepo.On("FindByID", mock.Anything, uint64(7)).Return(user, nil)
	m.refreshTokenRepo.On("DeleteRefreshTokenByHash", mock.Anything, "old-hash").Return(nil)
	expectSession(m, 7, "user@example.com")

	out, err := srv.Refresh(context.Background(), "old-refresh")
	require.NoError(t, err)
	assert.Equal(t, "access-token", out.AccessToken)
	assert.Equal(t, "refresh-token", out.RefreshToken)

	// Old session is rotated out.
	m.refreshTokenRepo.AssertCalled(t, "DeleteRefreshTokenByHash", mock.Anything, "old-hash")
}

func TestUserService_RefreshInvalidToken(t *testing.T) {
	srv, m := newUserService(t)

	m.tokenService.On("Verify", "garbage", service.TokenKindRefresh).Return(nil, domainerrors.ErrInvalidToken)

	out, err := srv.Refresh(context.Background(), "garbage")
	assert.Nil(t, out)
	assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
	m.refreshTokenRepo.AssertNotCalled(t, "FindRefreshTokenByHash", mock.Anything, mock.Anything)
}

func TestUserService_RefreshRevokedSession(t *testing.T) {
	srv, m := newUserService(t)

	identity := &entity.Identity{ID: 7, Email: "user@example.com"}
	m.tokenService.On("Verify", "revoked", service.TokenKindRefresh).Return(identity, nil)
	m.tokenService.On("HashToken", "revoked").Return("revoked-hash")
	m.refreshTokenRepo.On("FindRefreshTokenByHash", mock.Anything, "revoked-hash").Return(nil, repository.ErrRefreshTokenNotFound)

	out, err := srv.Refresh(context.Background(), "revoked")
	assert.Nil(t, out)
	assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
}

func TestUserService_RefreshUserMismatch(t *testing.T) {
	srv, m := newUserService(t)

	identity := &entity.Identity{ID: 7, Email: "user@example.com"}
	m.tokenService.On("Verify", "stolen", service.TokenKindRefresh).Return(identity, nil)
	m.tokenService.On("HashToken", "stolen").Return("stolen-hash")
	m.refreshTokenRepo.On("FindRefreshTokenByHash", mock.Anything, "stolen-hash").Return(&entity.RefreshToken{
		UserID:    99,
		TokenHash: "stolen-hash",
		ExpiresAt: time.Now().Add(time.Hour),
	}, nil)

	out, err := srv.Refresh(context.Background(), "stolen")
	assert.Nil(t, out)
	assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
}

func TestUserService_Logout(t *testing.T) {
	srv, m := newUserService(t)

	m.tokenService.On("HashToken", "refresh-token").Return("refresh-hash")
	m.refreshTokenRepo.On("DeleteRefreshTokenByHash", mock.Anything, "refresh-hash").Return(nil)

	err := srv.Logout(context.Background(), "refresh-token")
	assert.NoError(t, err)
}

func TestUserService_LogoutEmptyToken(t *testing.T) {
	srv, m := newUserService(t)

	err := srv.Logout(context.Background(), "")
	assert.NoError(t, err)
	m.refreshTokenRepo.AssertNotCalled(t, "DeleteRefreshTokenByHash", mock.Anything, mock.Anything)
}

func TestUserService_GetUser(t *testing.T) {
	srv, m := newUserService(t)

	user := &entity.User{ID: 7, Email: "user@example.com", Profile: &entity.HealthProfile{UserID: 7, Age: 30}}
	m.userRepo.On("FindByID", mock.Anything, uint64(7)).Return(user, nil)

	got, err := srv.GetUser(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, user, got)
}

func TestUserService_GetUserNotFound(t *testing.T) {
	srv, m := newUserService(t)

	m.userRepo.On("FindByID", mock.Anything, uint64(404)).Return(nil, repository.ErrUserNotFound)

	got, err := srv.GetUser(context.Background(), 404)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}
