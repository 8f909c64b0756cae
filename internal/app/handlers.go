package app

import (
	"github.com/gin-gonic/gin"

	"github.com/tanaoroshi/masterdata-backend/internal/http"
	httpH "github.com/tanaoroshi/masterdata-backend/internal/http/handlers"
	"github.com/tanaoroshi/masterdata-backend/internal/platform/logger"
)

type Handlers struct {
	Health   *httpH.HealthHandler
	Customer *httpH.CustomerHandler
	Factory  *httpH.FactoryHandler
	User     *httpH.UserHandler
}

func wireHandlers(log *logger.Logger, serviceset Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Health:   httpH.NewHealthHandler(),
		Customer: httpH.NewCustomerHandler(serviceset.Customer, log),
		Factory:  httpH.NewFactoryHandler(serviceset.Factory, log),
		User:     httpH.NewUserHandler(serviceset.User, log),
	}
}

func wireRouter(cfg Config, log *logger.Logger, handlerset Handlers) *gin.Engine {
	return http.NewRouter(http.RouterConfig{
		Mode:            cfg.Server.Mode,
		AllowOrigins:    cfg.Server.AllowOrigins,
		Log:             log,
		HealthHandler:   handlerset.Health,
		CustomerHandler: handlerset.Customer,
		FactoryHandler:  handlerset.Factory,
		UserHandler:     handlerset.User,
	})
}
