package capture_routers

import (
	"github.com/gin-gonic/gin"
	engineApi "github.com/rapidaai/capture/api/capture-api/api/engine"
	config "github.com/rapidaai/capture/api/capture-api/config"
	"github.com/rapidaai/capture/pkg/commons"
)

func EngineRoutes(cfg *config.AppConfig, engine *gin.Engine, logger commons.Logger) {
	logger.Info("Internal EngineRoutes added to engine.")
	apiv1 := engine.Group("/v1/engine")
	eApi := engineApi.NewEngineApi(cfg, logger)
	{
		apiv1.GET("/formats", eApi.SupportedFormats)
		apiv1.GET("/compatibility", eApi.IsFormatCompatible)
		apiv1.GET("/recommended-qualities", eApi.RecommendedQualities)
		apiv1.POST("/estimate", eApi.EstimateFileSize)
		apiv1.POST("/optimal-format", eApi.OptimalFormat)
		apiv1.POST("/optimal-quality", eApi.OptimalQuality)
		apiv1.POST("/optimal-configuration", eApi.OptimalConfiguration)
		apiv1.POST("/recommendation", eApi.FormatRecommendation)
	}
}
