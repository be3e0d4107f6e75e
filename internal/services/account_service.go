package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/usamabinnadeem-10/realtime-feedback/internal/models/db_models"
	"github.com/usamabinnadeem-10/realtime-feedback/internal/models/request_models"
	"github.com/usamabinnadeem-10/realtime-feedback/internal/repositories"
	"github.com/usamabinnadeem-10/realtime-feedback/pkg/memcache"
	"github.com/usamabinnadeem-10/realtime-feedback/pkg/utils"
)

type AccountServiceInterface interface {
	CreateAccount(ctx context.Context, request request_models.SignUpRequest) error
	Login(ctx context.Context, request request_models.LoginRequest) (string, *db_models.Account, error)
	Logout(token string)
}

type AccountService struct {
	accountRepo repositories.AccountRepository
	revoked     memcache.RevokedTokenStore
	logger      *zap.Logger
}

func NewAccountService(accountRepo repositories.AccountRepository, revoked memcache.RevokedTokenStore, logger *zap.Logger) AccountServiceInterface {
	return &AccountService{
		accountRepo: accountRepo,
		revoked:     revoked,
		logger:      logger,
	}
}

func (a *AccountService) CreateAccount(ctx context.Context, request request_models.SignUpRequest) error {
	existingAccount, err := a.accountRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if existingAccount != nil {
		return utils.ErrEmailAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		a.logger.Error("failed to hash password", zap.Error(err))
		return utils.ErrDatabaseError
	}

	newAccount := &db_models.Account{
		DisplayName:  request.DisplayName,
		Email:        request.Email,
		PasswordHash: hashedPassword,
	}

	if err := a.accountRepo.Insert(ctx, newAccount); err != nil {
		a.logger.Error("failed to insert account", zap.Error(err))
		return utils.ErrDatabaseError
	}

	return nil
}

func (a *AccountService) Login(ctx context.Context, request request_models.LoginRequest) (string, *db_models.Account, error) {
	account, err := a.accountRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return "", nil, utils.ErrDatabaseError
	}
	if account == nil {
		return "", nil, utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(account.PasswordHash, request.Password); err != nil {
		return "", nil, utils.ErrInvalidCredentials
	}

	token, err := utils.CreateToken(account.ID, account.Email)
	if err != nil {
		a.logger.Error("failed to sign token", zap.Error(err))
		return "", nil, utils.ErrInvalidCredentials
	}

	return token, account, nil
}

// Logout revokes the presented token until it would have expired on its own.
func (a *AccountService) Logout(token string) {
	claims, err := utils.ValidateToken(token)
	if err != nil {
		// Invalid tokens cannot authenticate anyway.
		return
	}

	ttl := time.Until(claims.ExpiresAt.Time)
	a.revoked.Revoke(token, ttl)
}
