package account_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/usamabinnadeem-10/realtime-feedback/internal/api/controllers"
	"github.com/usamabinnadeem-10/realtime-feedback/internal/repositories"
	"github.com/usamabinnadeem-10/realtime-feedback/internal/services"
	mem "github.com/usamabinnadeem-10/realtime-feedback/pkg/memcache"
)

var Module = fx.Provide(
	provideAccountRepo, provideAccountService, provideAccountController,
)

func provideAccountRepo(db *gorm.DB) repositories.AccountRepository {
	return repositories.NewAccountRepository(db)
}

func provideAccountService(accountRepo repositories.AccountRepository, revoked mem.RevokedTokenStore, logger *zap.Logger) services.AccountServiceInterface {
	return services.NewAccountService(accountRepo, revoked, logger)
}

func provideAccountController(accountService services.AccountServiceInterface) *controllers.AccountController {
	return controllers.NewAccountController(accountService)
}
