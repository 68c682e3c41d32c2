package capture_routers

import (
	"github.com/gin-gonic/gin"
	sessionApi "github.com/rapidaai/capture/api/capture-api/api/session"
	config "github.com/rapidaai/capture/api/capture-api/config"
	"github.com/rapidaai/capture/pkg/commons"
	"github.com/rapidaai/capture/pkg/connectors"
)

func SessionRoutes(cfg *config.AppConfig, engine *gin.Engine, logger commons.Logger, database connectors.DatabaseConnector) {
	logger.Info("Internal SessionRoutes and Connectors added to engine.")
	apiv1 := engine.Group("/v1/sessions")
	sApi := sessionApi.NewSessionApi(cfg, logger, database)
	{
		apiv1.POST("", sApi.Create)
		apiv1.GET("/:sessionId", sApi.Get)
		apiv1.POST("/:sessionId/start", sApi.Start)
		apiv1.POST("/:sessionId/complete", sApi.Complete)
		apiv1.POST("/:sessionId/fail", sApi.Fail)
	}
}
