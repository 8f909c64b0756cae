package app

import (
	"gorm.io/gorm"

	"github.com/tanaoroshi/masterdata-backend/internal/platform/logger"
	"github.com/tanaoroshi/masterdata-backend/internal/repos"
)

type Repos struct {
	Customer repos.CustomerRepo
	Factory  repos.FactoryRepo
	User     repos.UserRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		Customer: repos.NewCustomerRepo(db, log),
		Factory:  repos.NewFactoryRepo(db, log),
		User:     repos.NewUserRepo(db, log),
	}
}
