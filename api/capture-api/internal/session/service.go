// Copyright (c) 2023-2025 RapidaAI
// Author: Prashant Srivastav <prashant@rapida.ai>
//
// Licensed under GPL-2.0 with Rapida Additional Terms.
// See LICENSE.md or contact sales@rapida.ai for commercial usage.

package internal_session

import (
	"context"
	"time"

	"github.com/rapidaai/capture/pkg/audio"
	"github.com/rapidaai/capture/pkg/commons"
)

// CreateRequest carries the planning inputs for a new recording session.
// The optional fields follow the engine's recognized-options pattern.
type CreateRequest struct {
	RecordingType     string
	PrioritizeQuality bool
	PrioritizeSize    bool
	MaxFileSizeMB     *float64
	ExpectedDuration  *time.Duration
}

// Service plans and tracks recording sessions. Planning runs the selection
// engine; tracking goes through the store.
type Service interface {
	Create(ctx context.Context, req CreateRequest) (*RecordingSession, error)
	Start(ctx context.Context, sessionID string) (*RecordingSession, error)
	Complete(ctx context.Context, sessionID string, actualSizeMB float64, actualDuration time.Duration) (*RecordingSession, error)
	Fail(ctx context.Context, sessionID string) error
	Get(ctx context.Context, sessionID string) (*RecordingSession, error)
}

type sessionService struct {
	store  Store
	logger commons.Logger
}

func NewService(store Store, logger commons.Logger) Service {
	return &sessionService{
		store:  store,
		logger: logger,
	}
}

// Create plans the configuration for the request and persists the session.
// A constraint the engine could not fully satisfy is not an error; the
// session records the bound next to the prediction so callers can re-check.
func (s *sessionService) Create(ctx context.Context, req CreateRequest) (*RecordingSession, error) {
	cfg := audio.OptimalConfiguration(audio.OptimalConfigurationRequest{
		RecordingType:     req.RecordingType,
		PrioritizeQuality: req.PrioritizeQuality,
		PrioritizeSize:    req.PrioritizeSize,
		MaxFileSizeMB:     req.MaxFileSizeMB,
		ExpectedDuration:  req.ExpectedDuration,
	})

	rs := &RecordingSession{
		RecordingType: req.RecordingType,
		Status:        StatusPending,
	}
	rs.ApplyConfiguration(cfg)

	if req.MaxFileSizeMB != nil && req.ExpectedDuration != nil {
		rs.MaxFileSizeMB = *req.MaxFileSizeMB
		rs.ExpectedSeconds = uint64(req.ExpectedDuration.Seconds())

		predicted, err := audio.EstimateFileSize(cfg.Format, cfg.Quality, *req.ExpectedDuration)
		if err != nil {
			return nil, err
		}
		rs.PredictedSizeMB = predicted

		if predicted > *req.MaxFileSizeMB {
			s.logger.Warnf("session plan exceeds requested bound: predicted=%.2fMB, max=%.2fMB, pair=%s/%s",
				predicted, *req.MaxFileSizeMB, cfg.Format, cfg.Quality)
		}
	}

	if _, err := s.store.Save(ctx, rs); err != nil {
		return nil, err
	}
	return rs, nil
}

func (s *sessionService) Start(ctx context.Context, sessionID string) (*RecordingSession, error) {
	return s.store.Start(ctx, sessionID)
}

// Complete records the measured output and logs how far the prediction was
// off; the drift numbers feed byte-cost table tuning.
func (s *sessionService) Complete(ctx context.Context, sessionID string, actualSizeMB float64, actualDuration time.Duration) (*RecordingSession, error) {
	if err := s.store.Complete(ctx, sessionID, actualSizeMB, uint64(actualDuration.Seconds())); err != nil {
		return nil, err
	}

	rs, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	cfg := rs.Configuration()
	if predicted, err := audio.EstimateFileSize(cfg.Format, cfg.Quality, actualDuration); err == nil && predicted > 0 {
		s.logger.Infof("session %s: predicted=%.2fMB actual=%.2fMB over %s",
			sessionID, predicted, actualSizeMB, actualDuration)
	}
	return rs, nil
}

func (s *sessionService) Fail(ctx context.Context, sessionID string) error {
	return s.store.Fail(ctx, sessionID)
}

func (s *sessionService) Get(ctx context.Context, sessionID string) (*RecordingSession, error) {
	return s.store.Get(ctx, sessionID)
}
