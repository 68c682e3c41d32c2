// Copyright (c) 2023-2025 RapidaAI
// Author: Prashant Srivastav <prashant@rapida.ai>
//
// Licensed under GPL-2.0 with Rapida Additional Terms.
// See LICENSE.md or contact sales@rapida.ai for commercial usage.

package internal_session

import (
	"sync/atomic"
	"time"

	"gorm.io/gorm"

	"github.com/rapidaai/capture/pkg/audio"
)

// Recording session status constants.
const (
	StatusPending   = "pending"   // Created with a planned configuration, capture not started
	StatusRecording = "recording" // Capture pipeline claimed the session and is writing audio
	StatusCompleted = "completed" // Recording finished, actuals recorded
	StatusFailed    = "failed"    // Capture setup or execution failed
)

// RecordingSession binds a planned recording configuration to the capture
// that follows. The row is created when the caller asks for a configuration,
// claimed when the capture pipeline starts, and kept after completion so the
// predicted-versus-actual numbers stay queryable.
//
// The status field provides atomic claiming: only one capture pipeline can
// transition pending→recording.
type RecordingSession struct {
	Id            uint64 `json:"id" gorm:"type:bigint;primaryKey;autoIncrement:false;<-:create"`
	SessionID     string `json:"sessionId" gorm:"column:session_id;type:varchar(36);not null;uniqueIndex"`
	Status        string `json:"status" gorm:"column:status;type:varchar(20);not null;default:pending"`
	RecordingType string `json:"recordingType" gorm:"column:recording_type;type:varchar(50);not null;default:''"`

	// Chosen configuration, flattened into columns.
	Format          string  `json:"format" gorm:"column:format;type:varchar(10);not null"`
	Quality         string  `json:"quality" gorm:"column:quality;type:varchar(10);not null"`
	SampleRate      uint32  `json:"sampleRate" gorm:"column:sample_rate;type:int;not null"`
	Channels        uint8   `json:"channels" gorm:"column:channels;type:smallint;not null;default:1"`
	NoiseReduction  bool    `json:"noiseReduction" gorm:"column:noise_reduction;not null;default:false"`
	VariableBitrate bool    `json:"variableBitrate" gorm:"column:variable_bitrate;not null;default:false"`
	PredictedSizeMB float64 `json:"predictedSizeMb" gorm:"column:predicted_size_mb;not null;default:0"`

	// Constraint inputs as supplied by the caller; zero means unconstrained.
	MaxFileSizeMB   float64 `json:"maxFileSizeMb" gorm:"column:max_file_size_mb;not null;default:0"`
	ExpectedSeconds uint64  `json:"expectedSeconds" gorm:"column:expected_seconds;not null;default:0"`

	// Actuals filled in on completion.
	ActualSizeMB  float64 `json:"actualSizeMb" gorm:"column:actual_size_mb;not null;default:0"`
	ActualSeconds uint64  `json:"actualSeconds" gorm:"column:actual_seconds;not null;default:0"`

	CreatedDate time.Time `json:"createdDate" gorm:"type:timestamp;not null;<-:create"`
	UpdatedDate time.Time `json:"updatedDate" gorm:"type:timestamp;default:null"`
}

func (RecordingSession) TableName() string {
	return "recording_sessions"
}

// idCounter disambiguates ids generated within the same nanosecond.
var idCounter uint64

func nextID() uint64 {
	return uint64(time.Now().UnixNano())<<8 | (atomic.AddUint64(&idCounter, 1) & 0xff)
}

func (rs *RecordingSession) BeforeCreate(tx *gorm.DB) (err error) {
	if rs.Id <= 0 {
		rs.Id = nextID()
	}
	if rs.CreatedDate.IsZero() {
		rs.CreatedDate = time.Now()
	}
	return nil
}

// IsPending returns true if the session has not yet been claimed.
func (rs *RecordingSession) IsPending() bool {
	return rs.Status == StatusPending
}

// IsRecording returns true if a capture pipeline holds the session.
func (rs *RecordingSession) IsRecording() bool {
	return rs.Status == StatusRecording
}

// Configuration reassembles the typed recording configuration from the
// flattened columns.
func (rs *RecordingSession) Configuration() audio.RecordingConfiguration {
	quality, _ := audio.ParseQuality(rs.Quality)
	return audio.RecordingConfiguration{
		Format:          audio.Format(rs.Format),
		Quality:         quality,
		SampleRate:      rs.SampleRate,
		Channels:        rs.Channels,
		NoiseReduction:  rs.NoiseReduction,
		VariableBitrate: rs.VariableBitrate,
	}
}

// ApplyConfiguration flattens a configuration onto the session columns.
func (rs *RecordingSession) ApplyConfiguration(cfg audio.RecordingConfiguration) {
	rs.Format = cfg.Format.String()
	rs.Quality = cfg.Quality.String()
	rs.SampleRate = cfg.SampleRate
	rs.Channels = cfg.Channels
	rs.NoiseReduction = cfg.NoiseReduction
	rs.VariableBitrate = cfg.VariableBitrate
}
