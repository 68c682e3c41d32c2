package engine_api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	config "github.com/rapidaai/capture/api/capture-api/config"
	"github.com/rapidaai/capture/pkg/audio"
	commons "github.com/rapidaai/capture/pkg/commons"
	"github.com/rapidaai/capture/pkg/utils"
)

type engineApi struct {
	cfg    *config.AppConfig
	logger commons.Logger
}

func NewEngineApi(config *config.AppConfig, logger commons.Logger) *engineApi {
	return &engineApi{
		cfg:    config,
		logger: logger,
	}
}

type formatDescription struct {
	Format           string  `json:"format"`
	Band             string  `json:"band"`
	VariableBitrate  bool    `json:"variableBitrate"`
	CompressionRatio float64 `json:"compressionRatio"`
}

func bandName(band audio.CompressionBand) string {
	switch band {
	case audio.BandLossless:
		return "lossless"
	case audio.BandBalanced:
		return "balanced"
	default:
		return "compact"
	}
}

// SupportedFormats lists the catalog in its fixed order.
func (e *engineApi) SupportedFormats(c *gin.Context) {
	formats := audio.SupportedFormats()
	out := make([]formatDescription, 0, len(formats))
	for _, f := range formats {
		out = append(out, formatDescription{
			Format:           f.String(),
			Band:             bandName(f.Band()),
			VariableBitrate:  f.SupportsVBR(),
			CompressionRatio: f.CompressionRatio(),
		})
	}
	c.JSON(http.StatusOK, gin.H{"formats": out})
}

type estimateRequest struct {
	Format          string  `json:"format" binding:"required"`
	Quality         string  `json:"quality" binding:"required"`
	DurationSeconds float64 `json:"durationSeconds" binding:"required,gt=0"`
}

func (e *engineApi) EstimateFileSize(c *gin.Context) {
	var req estimateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	format, err := audio.ParseFormat(req.Format)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	quality, err := audio.ParseQuality(req.Quality)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	duration := time.Duration(req.DurationSeconds * float64(time.Second))
	sizeMB, err := audio.EstimateFileSize(format, quality, duration)
	if err != nil {
		e.logger.Errorf("estimate failed for %s/%s: %+v", format, quality, err)
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"format":          format,
		"quality":         quality,
		"durationSeconds": req.DurationSeconds,
		"estimatedSizeMb": sizeMB,
	})
}

type optimalFormatRequest struct {
	Quality           string   `json:"quality" binding:"required"`
	PrioritizeQuality bool     `json:"prioritizeQuality"`
	PrioritizeSize    bool     `json:"prioritizeSize"`
	MaxFileSizeMB     *float64 `json:"maxFileSizeMb" binding:"omitempty,gt=0"`
	DurationSeconds   *float64 `json:"durationSeconds" binding:"omitempty,gt=0"`
}

func (e *engineApi) OptimalFormat(c *gin.Context) {
	var req optimalFormatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	quality, err := audio.ParseQuality(req.Quality)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	format := audio.OptimalFormat(audio.OptimalFormatRequest{
		Quality:           quality,
		PrioritizeQuality: req.PrioritizeQuality,
		PrioritizeSize:    req.PrioritizeSize,
		MaxFileSizeMB:     req.MaxFileSizeMB,
		ExpectedDuration:  secondsPtr(req.DurationSeconds),
	})
	c.JSON(http.StatusOK, gin.H{"format": format})
}

type optimalQualityRequest struct {
	Format          string   `json:"format" binding:"required"`
	RecordingType   string   `json:"recordingType"`
	MaxFileSizeMB   *float64 `json:"maxFileSizeMb" binding:"omitempty,gt=0"`
	DurationSeconds *float64 `json:"durationSeconds" binding:"omitempty,gt=0"`
}

func (e *engineApi) OptimalQuality(c *gin.Context) {
	var req optimalQualityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	format, err := audio.ParseFormat(req.Format)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	quality := audio.OptimalQuality(audio.OptimalQualityRequest{
		Format:           format,
		RecordingType:    req.RecordingType,
		MaxFileSizeMB:    req.MaxFileSizeMB,
		ExpectedDuration: secondsPtr(req.DurationSeconds),
	})
	c.JSON(http.StatusOK, gin.H{"quality": quality, "sampleRate": quality.SampleRate()})
}

type optimalConfigurationRequest struct {
	RecordingType     string   `json:"recordingType"`
	PrioritizeQuality bool     `json:"prioritizeQuality"`
	PrioritizeSize    bool     `json:"prioritizeSize"`
	MaxFileSizeMB     *float64 `json:"maxFileSizeMb" binding:"omitempty,gt=0"`
	DurationSeconds   *float64 `json:"durationSeconds" binding:"omitempty,gt=0"`
}

func (e *engineApi) OptimalConfiguration(c *gin.Context) {
	var req optimalConfigurationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	cfg := audio.OptimalConfiguration(audio.OptimalConfigurationRequest{
		RecordingType:     req.RecordingType,
		PrioritizeQuality: req.PrioritizeQuality,
		PrioritizeSize:    req.PrioritizeSize,
		MaxFileSizeMB:     req.MaxFileSizeMB,
		ExpectedDuration:  secondsPtr(req.DurationSeconds),
	})
	c.JSON(http.StatusOK, cfg)
}

// RecommendedQualities answers which tiers the selector could settle on for
// a recording type and format.
func (e *engineApi) RecommendedQualities(c *gin.Context) {
	recordingType := c.Query("recordingType")
	format, err := audio.ParseFormat(c.Query("format"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"recordingType": recordingType,
		"format":        format,
		"qualities":     audio.RecommendedQualities(recordingType, format),
	})
}

type recommendationRequest struct {
	Format        string `json:"format" binding:"required"`
	Quality       string `json:"quality" binding:"required"`
	RecordingType string `json:"recordingType"`
}

func (e *engineApi) FormatRecommendation(c *gin.Context) {
	var req recommendationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	format, err := audio.ParseFormat(req.Format)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	quality, err := audio.ParseQuality(req.Quality)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"recommendation": audio.FormatRecommendation(format, quality, req.RecordingType),
		"compatible":     audio.IsFormatCompatible(format, quality),
	})
}

// IsFormatCompatible never fails; unrecognized values report incompatible.
func (e *engineApi) IsFormatCompatible(c *gin.Context) {
	format := audio.Format(c.Query("format"))
	compatible := false
	if quality, err := audio.ParseQuality(c.Query("quality")); err == nil {
		compatible = audio.IsFormatCompatible(format, quality)
	}
	c.JSON(http.StatusOK, gin.H{"compatible": compatible})
}

func secondsPtr(seconds *float64) *time.Duration {
	if seconds == nil {
		return nil
	}
	return utils.Ptr(time.Duration(*seconds * float64(time.Second)))
}
