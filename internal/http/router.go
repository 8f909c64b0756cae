package http

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	httpH "github.com/tanaoroshi/masterdata-backend/internal/http/handlers"
	httpMW "github.com/tanaoroshi/masterdata-backend/internal/http/middleware"
	"github.com/tanaoroshi/masterdata-backend/internal/platform/logger"
)

type RouterConfig struct {
	Mode         string
	AllowOrigins []string
	Log          *logger.Logger

	HealthHandler   *httpH.HealthHandler
	CustomerHandler *httpH.CustomerHandler
	FactoryHandler  *httpH.FactoryHandler
	UserHandler     *httpH.UserHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	if cfg.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()
	r.Use(httpMW.AttachRequestContext())
	r.Use(httpMW.RequestLogger(cfg.Log))

	corsCfg := cors.DefaultConfig()
	if len(cfg.AllowOrigins) > 0 {
		corsCfg.AllowOrigins = cfg.AllowOrigins
	} else {
		corsCfg.AllowAllOrigins = true
	}
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
	r.Use(cors.New(corsCfg))

	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
	}

	if cfg.CustomerHandler != nil {
		customers := r.Group("/custom-masters")
		{
			customers.GET("", cfg.CustomerHandler.List)
			customers.POST("", cfg.CustomerHandler.Create)
			customers.POST("/multiple", cfg.CustomerHandler.CreateMultiple)
			customers.PUT("/multiple", cfg.CustomerHandler.UpdateMultiple)
			customers.DELETE("/multiple", cfg.CustomerHandler.DeleteMultiple)
			customers.GET("/:corporate_cd/:toku_cd/:ty_date_from", cfg.CustomerHandler.Get)
			customers.PUT("/:corporate_cd/:toku_cd/:ty_date_from", cfg.CustomerHandler.Update)
			customers.DELETE("/:corporate_cd/:toku_cd/:ty_date_from", cfg.CustomerHandler.Delete)
		}
	}

	if cfg.FactoryHandler != nil {
		inventory := r.Group("/inventory")
		{
			inventory.GET("/record-list", cfg.FactoryHandler.List)
			inventory.POST("/record", cfg.FactoryHandler.Create)
			inventory.PUT("/record", cfg.FactoryHandler.Update)
			inventory.POST("/record-batch", cfg.FactoryHandler.CreateBatch)
			inventory.POST("/record/multiple", cfg.FactoryHandler.CreateMultiple)
			inventory.PUT("/record/multiple", cfg.FactoryHandler.UpdateMultiple)
			inventory.DELETE("/record/multiple", cfg.FactoryHandler.DeleteMultiple)
			inventory.POST("/record/check-integrity", cfg.FactoryHandler.CheckIntegrity)
		}
	}

	if cfg.UserHandler != nil {
		users := r.Group("/user")
		{
			users.GET("/list", cfg.UserHandler.List)
			users.POST("", cfg.UserHandler.Create)
			users.PUT("", cfg.UserHandler.Update)
			users.POST("/list", cfg.UserHandler.CreateMultiple)
			users.PUT("/list", cfg.UserHandler.UpdateMultiple)
			users.DELETE("/list", cfg.UserHandler.DeleteMultiple)
		}
	}

	return r
}
