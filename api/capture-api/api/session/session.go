package session_api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	config "github.com/rapidaai/capture/api/capture-api/config"
	internal_session "github.com/rapidaai/capture/api/capture-api/internal/session"
	commons "github.com/rapidaai/capture/pkg/commons"
	"github.com/rapidaai/capture/pkg/connectors"
	"github.com/rapidaai/capture/pkg/utils"
)

type sessionApi struct {
	cfg            *config.AppConfig
	logger         commons.Logger
	database       connectors.DatabaseConnector
	sessionService internal_session.Service
}

func NewSessionApi(config *config.AppConfig, logger commons.Logger, database connectors.DatabaseConnector) *sessionApi {
	return &sessionApi{
		cfg:            config,
		logger:         logger,
		database:       database,
		sessionService: internal_session.NewService(internal_session.NewStore(database, logger), logger),
	}
}

type createSessionRequest struct {
	RecordingType     string   `json:"recordingType" binding:"required"`
	PrioritizeQuality bool     `json:"prioritizeQuality"`
	PrioritizeSize    bool     `json:"prioritizeSize"`
	MaxFileSizeMB     *float64 `json:"maxFileSizeMb" binding:"omitempty,gt=0"`
	DurationSeconds   *float64 `json:"durationSeconds" binding:"omitempty,gt=0"`
}

// Create plans a configuration for the request and persists a pending
// session carrying it.
func (s *sessionApi) Create(c *gin.Context) {
	var req createSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var expected *time.Duration
	if req.DurationSeconds != nil {
		expected = utils.Ptr(time.Duration(*req.DurationSeconds * float64(time.Second)))
	}

	rs, err := s.sessionService.Create(c.Request.Context(), internal_session.CreateRequest{
		RecordingType:     req.RecordingType,
		PrioritizeQuality: req.PrioritizeQuality,
		PrioritizeSize:    req.PrioritizeSize,
		MaxFileSizeMB:     req.MaxFileSizeMB,
		ExpectedDuration:  expected,
	})
	if err != nil {
		s.logger.Errorf("unable to create recording session: %+v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "unable to create recording session"})
		return
	}
	c.JSON(http.StatusCreated, rs)
}

func (s *sessionApi) Get(c *gin.Context) {
	rs, err := s.sessionService.Get(c.Request.Context(), c.Param("sessionId"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "recording session not found"})
		return
	}
	c.JSON(http.StatusOK, rs)
}

// Start claims a pending session for recording. Losing a concurrent claim
// race reports conflict, not server error.
func (s *sessionApi) Start(c *gin.Context) {
	rs, err := s.sessionService.Start(c.Request.Context(), c.Param("sessionId"))
	if err != nil {
		s.logger.Warnf("unable to start session %s: %+v", c.Param("sessionId"), err)
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, rs)
}

type completeSessionRequest struct {
	ActualSizeMB    float64 `json:"actualSizeMb" binding:"required,gt=0"`
	DurationSeconds float64 `json:"durationSeconds" binding:"required,gt=0"`
}

func (s *sessionApi) Complete(c *gin.Context) {
	var req completeSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	rs, err := s.sessionService.Complete(c.Request.Context(), c.Param("sessionId"),
		req.ActualSizeMB, time.Duration(req.DurationSeconds*float64(time.Second)))
	if err != nil {
		s.logger.Errorf("unable to complete session %s: %+v", c.Param("sessionId"), err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "unable to complete recording session"})
		return
	}
	c.JSON(http.StatusOK, rs)
}

func (s *sessionApi) Fail(c *gin.Context) {
	if err := s.sessionService.Fail(c.Request.Context(), c.Param("sessionId")); err != nil {
		s.logger.Errorf("unable to fail session %s: %+v", c.Param("sessionId"), err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "unable to update recording session"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": internal_session.StatusFailed})
}
