package healthcheck_api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	config "github.com/rapidaai/capture/api/capture-api/config"
	commons "github.com/rapidaai/capture/pkg/commons"
	"github.com/rapidaai/capture/pkg/connectors"
)

type healthCheckApi struct {
	cfg      *config.AppConfig
	logger   commons.Logger
	database connectors.DatabaseConnector
}

func New(config *config.AppConfig, logger commons.Logger, database connectors.DatabaseConnector) *healthCheckApi {
	return &healthCheckApi{
		cfg:      config,
		logger:   logger,
		database: database,
	}
}

// Healthz reports process liveness only.
func (h *healthCheckApi) Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"name":    h.cfg.Name,
		"version": h.cfg.Version,
	})
}

// Readiness reports whether downstream dependencies answer.
func (h *healthCheckApi) Readiness(c *gin.Context) {
	if err := h.database.Ping(c.Request.Context()); err != nil {
		h.logger.Errorf("readiness check failed: %+v", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}
