// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/fx"

	deliverycontext "vita/internal/delivery/context"
	"vita/internal/domain/entity"
	domainerrors "vita/internal/domain/errors"
	"vita/internal/domain/repository"
	"vita/internal/domain/service"
	"vita/internal/usecase"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager        repository.TransactionManager
	userRepo         repository.UserRepository
	refreshTokenRepo repository.RefreshTokenRepository
	hasher           service.PasswordHasher
	tokenService     service.TokenService
	logger           *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	UserRepo         repository.UserRepository
	RefreshTokenRepo repository.RefreshTokenRepository
	Hasher           service.PasswordHasher
	TokenService     service.TokenService
	Logger           *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager:        params.TxManager,
		userRepo:         params.UserRepo,
		refreshTokenRepo: params.RefreshTokenRepo,
		hasher:           params.Hasher,
		tokenService:     params.TokenService,
		logger:           params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register orchestrates the complete user registration process.
func (srv *userService) Register(ctx context.Context, input usecase.RegisterInput) (*usecase.AuthOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.String("email", input.Email))

	if err := srv.hasher.CheckStrength(input.Password); err != nil {
		srv.log(ctx).Warn("Password validation failed during registration", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	newUser := &entity.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hashedPassword,
	}

	if err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		if _, findErr := userRepo.FindByEmail(ctx, input.Email); findErr == nil {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("email already registered")
		} else if !errors.Is(findErr, repository.ErrUserNotFound) {
			return errors.Wrap(findErr, "failed to check existing account")
		}

		return userRepo.Create(ctx, newUser)
	}); err != nil {
		srv.log(ctx).Error("Failed to execute registration transaction", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	accessToken, refreshToken, err := srv.openSession(ctx, newUser)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Debug("Registration completed", slog.Uint64("userID", newUser.ID))

	return &usecase.AuthOutput{
		User:         newUser,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// Login orchestrates the user login process.
func (srv *userService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.AuthOutput, error) {
	srv.log(ctx).Debug("Starting user login", slog.String("email", input.Email))

	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", err))

		if errors.Is(err, repository.ErrUserNotFound) {
			// Unknown account and wrong password are indistinguishable to callers.
			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	// Check password outside transaction (bcrypt is CPU-bound).
	if err := srv.hasher.Compare(user.PasswordHash, input.Password); err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", domainerrors.ErrInvalidCredentials))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	accessToken, refreshToken, err := srv.openSession(ctx, user)
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("User logged in successfully", slog.Uint64("userID", user.ID))

	return &usecase.AuthOutput{
		User:         user,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// Refresh exchanges a valid refresh token for a new token pair, rotating
// the stored session record.
func (srv *userService) Refresh(ctx context.Context, refreshToken string) (*usecase.RefreshOutput, error) {
	identity, err := srv.tokenService.Verify(refreshToken, service.TokenKindRefresh)
	if err != nil {
		srv.log(ctx).Warn("Refresh token verification failed", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "refresh failed")
	}

	tokenHash := srv.tokenService.HashToken(refreshToken)

	// The token must still be backed by a live session record; a logout or
	// rotation in the meantime invalidates it even before expiry.
	stored, err := srv.refreshTokenRepo.FindRefreshTokenByHash(ctx, tokenHash)
	if err != nil {
		srv.log(ctx).Warn("Refresh session lookup failed", slog.Any("error", err))

		if errors.Is(err, repository.ErrRefreshTokenNotFound) || errors.Is(err, repository.ErrRefreshTokenExpired) {
			return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "refresh failed")
		}

		return nil, errors.Wrap(err, "failed to find refresh token by hash")
	}

	if stored.UserID != identity.ID {
		srv.log(ctx).Warn("Refresh token user mismatch", slog.Uint64("tokenUserID", stored.UserID), slog.Uint64("claimUserID", identity.ID))

		return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "refresh failed")
	}

	user, err := srv.userRepo.FindByID(ctx, stored.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "refresh failed")
		}

		return nil, errors.Wrap(err, "failed to load user during refresh")
	}

	if err := srv.refreshTokenRepo.DeleteRefreshTokenByHash(ctx, tokenHash); err != nil {
		return nil, errors.Wrap(err, "failed to rotate refresh token")
	}

	accessToken, newRefreshToken, err := srv.openSession(ctx, user)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Debug("Session refreshed", slog.Uint64("userID", user.ID))

	return &usecase.RefreshOutput{
		User:         user,
		AccessToken:  accessToken,
		RefreshToken: newRefreshToken,
	}, nil
}

// Logout ends the session owning the given refresh token. Unknown tokens
// are ignored so logout stays idempotent.
func (srv *userService) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}

	tokenHash := srv.tokenService.HashToken(refreshToken)
	if err := srv.refreshTokenRepo.DeleteRefreshTokenByHash(ctx, tokenHash); err != nil {
		srv.log(ctx).Error("Failed to delete refresh token during logout", slog.Any("error", err))

		return errors.Wrap(err, "failed to delete refresh token during logout")
	}

	return nil
}

// GetUser retrieves a user by ID with their profile attached.
func (srv *userService) GetUser(ctx context.Context, userID uint64) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return user, nil
}

// openSession mints a token pair and persists the refresh token hash as a
// new session record.
func (srv *userService) openSession(ctx context.Context, user *entity.User) (accessToken string, refreshToken string, err error) {
	identity := entity.Identity{ID: user.ID, Email: user.Email}

	accessToken, err = srv.tokenService.Issue(identity, service.TokenKindAccess)
	if err != nil {
		return "", "", errors.Wrap(err, "failed to issue access token")
	}

	refreshToken, err = srv.tokenService.Issue(identity, service.TokenKindRefresh)
	if err != nil {
		return "", "", errors.Wrap(err, "failed to issue refresh token")
	}

	record := &entity.RefreshToken{
		UserID:    user.ID,
		TokenHash: srv.tokenService.HashToken(refreshToken),
		ExpiresAt: time.Now().Add(srv.tokenService.RefreshTokenDuration()),
	}
	if err = srv.refreshTokenRepo.CreateRefreshToken(ctx, record); err != nil {
		return "", "", errors.Wrap(err, "failed to persist refresh token")
	}

	return accessToken, refreshToken, nil
}
