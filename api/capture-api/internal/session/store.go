// Copyright (c) 2023-2025 RapidaAI
// Author: Prashant Srivastav <prashant@rapida.ai>
//
// Licensed under GPL-2.0 with Rapida Additional Terms.
// See LICENSE.md or contact sales@rapida.ai for commercial usage.

package internal_session

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/rapidaai/capture/pkg/commons"
	"github.com/rapidaai/capture/pkg/connectors"
)

// Store provides operations to save and retrieve recording sessions.
//
// Sessions are long-lived records: the capture pipeline, the transcription
// workers and the settings UI all resolve the same row at different times,
// including after the recording has ended. The row is therefore never
// deleted during the session lifecycle; it only transitions through
// statuses: pending → recording → completed/failed.
type Store interface {
	// Save stores a session with a generated sessionId (UUID).
	// Returns the generated sessionId.
	Save(ctx context.Context, rs *RecordingSession) (string, error)

	// Get retrieves a session by sessionId regardless of its current status.
	// Completed and failed rows stay readable so late consumers (upload
	// workers, transcript fetchers) can still resolve them.
	Get(ctx context.Context, sessionID string) (*RecordingSession, error)

	// Start atomically transitions a session from "pending" to "recording".
	// Only one concurrent capture pipeline can win the claim — subsequent
	// callers get an error because the row is no longer pending.
	Start(ctx context.Context, sessionID string) (*RecordingSession, error)

	// Complete marks a session as completed and records the measured output
	// size and duration next to the prediction.
	Complete(ctx context.Context, sessionID string, actualSizeMB float64, actualSeconds uint64) error

	// Fail marks a session as failed.
	Fail(ctx context.Context, sessionID string) error

	// Delete removes a session row. Only intended for cleanup (TTL-based
	// garbage collection), never during active capture flows.
	Delete(ctx context.Context, sessionID string) error
}

type databaseStore struct {
	database connectors.DatabaseConnector
	logger   commons.Logger
}

// NewStore creates a session store backed by the configured database.
func NewStore(database connectors.DatabaseConnector, logger commons.Logger) Store {
	return &databaseStore{
		database: database,
		logger:   logger,
	}
}

func (s *databaseStore) Save(ctx context.Context, rs *RecordingSession) (string, error) {
	if rs.SessionID == "" {
		rs.SessionID = uuid.New().String()
	}
	if rs.Status == "" {
		rs.Status = StatusPending
	}

	db := s.database.DB(ctx)
	if err := db.Create(rs).Error; err != nil {
		return "", fmt.Errorf("failed to save recording session %s: %w", rs.SessionID, err)
	}

	s.logger.Infof("saved recording session: sessionId=%s, type=%s, format=%s, quality=%s",
		rs.SessionID, rs.RecordingType, rs.Format, rs.Quality)

	return rs.SessionID, nil
}

func (s *databaseStore) Get(ctx context.Context, sessionID string) (*RecordingSession, error) {
	db := s.database.DB(ctx)
	var rs RecordingSession
	if err := db.Where("session_id = ?", sessionID).First(&rs).Error; err != nil {
		return nil, fmt.Errorf("recording session not found: %s: %w", sessionID, err)
	}

	s.logger.Debugf("resolved recording session: sessionId=%s, status=%s", rs.SessionID, rs.Status)

	return &rs, nil
}

// Start claims the session with an atomic UPDATE ... WHERE status='pending'.
// Only one concurrent caller can win; the row stays in the database for
// everything that reads it later.
func (s *databaseStore) Start(ctx context.Context, sessionID string) (*RecordingSession, error) {
	db := s.database.DB(ctx)

	result := db.Model(&RecordingSession{}).
		Where("session_id = ? AND status = ?", sessionID, StatusPending).
		Updates(map[string]interface{}{
			"status":       StatusRecording,
			"updated_date": time.Now(),
		})

	if result.Error != nil {
		return nil, fmt.Errorf("failed to start recording session %s: %w", sessionID, result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, fmt.Errorf("recording session %s not found or already started", sessionID)
	}

	var rs RecordingSession
	if err := db.Where("session_id = ?", sessionID).First(&rs).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch started recording session %s: %w", sessionID, err)
	}

	s.logger.Debugf("started recording session: sessionId=%s, format=%s, quality=%s",
		rs.SessionID, rs.Format, rs.Quality)

	return &rs, nil
}

func (s *databaseStore) Complete(ctx context.Context, sessionID string, actualSizeMB float64, actualSeconds uint64) error {
	db := s.database.DB(ctx)
	result := db.Model(&RecordingSession{}).
		Where("session_id = ?", sessionID).
		Updates(map[string]interface{}{
			"status":         StatusCompleted,
			"actual_size_mb": actualSizeMB,
			"actual_seconds": actualSeconds,
			"updated_date":   time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to complete recording session %s: %w", sessionID, result.Error)
	}

	s.logger.Debugf("completed recording session: sessionId=%s, actualSize=%.2fMB", sessionID, actualSizeMB)
	return nil
}

func (s *databaseStore) Fail(ctx context.Context, sessionID string) error {
	db := s.database.DB(ctx)
	result := db.Model(&RecordingSession{}).
		Where("session_id = ?", sessionID).
		Updates(map[string]interface{}{
			"status":       StatusFailed,
			"updated_date": time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to fail recording session %s: %w", sessionID, result.Error)
	}

	s.logger.Debugf("failed recording session: sessionId=%s", sessionID)
	return nil
}

func (s *databaseStore) Delete(ctx context.Context, sessionID string) error {
	db := s.database.DB(ctx)
	if err := db.Where("session_id = ?", sessionID).Delete(&RecordingSession{}).Error; err != nil {
		return fmt.Errorf("failed to delete recording session %s: %w", sessionID, err)
	}

	s.logger.Debugf("deleted recording session: sessionId=%s", sessionID)
	return nil
}
