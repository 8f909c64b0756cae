package app

import (
	"gorm.io/gorm"

	"github.com/tanaoroshi/masterdata-backend/internal/platform/logger"
	"github.com/tanaoroshi/masterdata-backend/internal/services"
)

type Services struct {
	Customer services.CustomerService
	Factory  services.FactoryService
	User     services.UserService
}

func wireServices(db *gorm.DB, log *logger.Logger, reposet Repos) Services {
	log.Info("Wiring services...")
	return Services{
		Customer: services.NewCustomerService(db, log, reposet.Customer),
		Factory:  services.NewFactoryService(db, log, reposet.Factory),
		User:     services.NewUserService(db, log, reposet.User),
	}
}
