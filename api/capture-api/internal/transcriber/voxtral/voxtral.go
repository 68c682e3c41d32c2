// Copyright (c) 2023-2025 RapidaAI
// Author: Prashant Srivastav <prashant@rapida.ai>
//
// Licensed under GPL-2.0 with Rapida Additional Terms.
// See LICENSE.md or contact sales@rapida.ai for commercial usage.

package internal_transcriber_voxtral

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	internal_transcriber "github.com/rapidaai/capture/api/capture-api/internal/transcriber"
	"github.com/rapidaai/capture/pkg/commons"
	"github.com/rapidaai/capture/pkg/utils"
	"github.com/rapidaai/capture/pkg/vault"
	"golang.org/x/sync/errgroup"
)

const (
	DefaultBaseURL = "https://api.mistral.ai"
	DefaultModel   = "voxtral-mini-latest"

	// Upper bound on concurrent segment uploads on the fan-out path.
	maxConcurrentUploads = 4
)

type voxtralOption struct {
	logger  commons.Logger
	key     string
	mdlOpts utils.Option
}

func NewVoxtralOption(
	logger commons.Logger,
	vaultCredential *vault.Credential,
	mdlOpts utils.Option) (*voxtralOption, error) {
	cx, ok := vaultCredential.GetValue().AsMap()["key"]
	if !ok {
		return nil, fmt.Errorf("illegal vault config")
	}
	key, ok := cx.(string)
	if !ok || utils.IsEmpty(key) {
		return nil, fmt.Errorf("illegal vault config")
	}
	return &voxtralOption{
		logger:  logger,
		mdlOpts: mdlOpts,
		key:     key,
	}, nil
}

func (co *voxtralOption) GetKey() string {
	return co.key
}

func (co *voxtralOption) GetBaseURL() string {
	if baseURL, err := co.mdlOpts.GetString("transcribe.base_url"); err == nil {
		return baseURL
	}
	return DefaultBaseURL
}

func (co *voxtralOption) GetModel() string {
	if model, err := co.mdlOpts.GetString("transcribe.model"); err == nil {
		return model
	}
	return DefaultModel
}

// transcriptionResponse matches the Mistral transcription API response.
type transcriptionResponse struct {
	Text     string `json:"text"`
	Segments []struct {
		Speaker string `json:"speaker"`
		Text    string `json:"text"`
	} `json:"segments"`
}

type voxtralTranscriber struct {
	*voxtralOption
	logger commons.Logger
	client *resty.Client
}

// Name implements internal_transcriber.BatchTranscriber.
func (*voxtralTranscriber) Name() string {
	return "voxtral-transcriber"
}

func NewVoxtralTranscriber(
	logger commons.Logger,
	credential *vault.Credential,
	mdlOpts utils.Option,
) (internal_transcriber.BatchTranscriber, error) {
	voxtralOpts, err := NewVoxtralOption(logger, credential, mdlOpts)
	if err != nil {
		logger.Errorf("voxtral: intializing voxtral failed %+v", err)
		return nil, err
	}

	client := resty.New().
		SetBaseURL(voxtralOpts.GetBaseURL()).
		SetAuthToken(voxtralOpts.GetKey()).
		SetTimeout(2 * time.Minute)

	return &voxtralTranscriber{
		voxtralOption: voxtralOpts,
		logger:        logger,
		client:        client,
	}, nil
}

// Transcribe uploads one complete recording and returns its transcript.
func (vt *voxtralTranscriber) Transcribe(ctx context.Context, filename string, in []byte) (*internal_transcriber.Transcript, error) {
	var out transcriptionResponse
	resp, err := vt.client.R().
		SetContext(ctx).
		SetFileReader("file", filename, bytes.NewReader(in)).
		SetFormData(map[string]string{
			"model":   vt.GetModel(),
			"diarize": "true",
		}).
		SetResult(&out).
		Post("/v1/audio/transcriptions")
	if err != nil {
		return nil, fmt.Errorf("voxtral: transcription request failed: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("voxtral: transcription failed (HTTP %d): %s", resp.StatusCode(), resp.String())
	}

	transcript := &internal_transcriber.Transcript{Text: out.Text}
	for _, seg := range out.Segments {
		transcript.Segments = append(transcript.Segments, internal_transcriber.TranscriptSegment{
			Speaker: seg.Speaker,
			Text:    seg.Text,
		})
	}
	return transcript, nil
}

// Segment is one independently transcribable slice of a long recording.
type Segment struct {
	Filename string
	Audio    []byte
}

// TranscribeSegments fans segment uploads out with bounded concurrency and
// returns transcripts in segment order. The first failure cancels the rest.
func (vt *voxtralTranscriber) TranscribeSegments(ctx context.Context, segments []Segment) ([]*internal_transcriber.Transcript, error) {
	results := make([]*internal_transcriber.Transcript, len(segments))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentUploads)
	for i, segment := range segments {
		g.Go(func() error {
			transcript, err := vt.Transcribe(ctx, segment.Filename, segment.Audio)
			if err != nil {
				return fmt.Errorf("segment %s: %w", segment.Filename, err)
			}
			results[i] = transcript
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
