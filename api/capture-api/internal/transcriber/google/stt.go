// Copyright (c) 2023-2025 RapidaAI
// Author: Prashant Srivastav <prashant@rapida.ai>
//
// Licensed under GPL-2.0 with Rapida Additional Terms.
// See LICENSE.md or contact sales@rapida.ai for commercial usage.

package internal_transcriber_google

import (
	"context"
	"fmt"
	"sync"

	speech "cloud.google.com/go/speech/apiv2"
	"cloud.google.com/go/speech/apiv2/speechpb"
	internal_transcriber "github.com/rapidaai/capture/api/capture-api/internal/transcriber"
	"github.com/rapidaai/capture/pkg/commons"
	"github.com/rapidaai/capture/pkg/vault"
)

type googleSpeechToText struct {
	*googleOption
	mu                 sync.Mutex
	logger             commons.Logger
	ctx                context.Context
	client             *speech.Client
	transcriberOptions *internal_transcriber.InitializeOptions
}

// Name implements internal_transcriber.SpeechToTextTranscriber.
func (*googleSpeechToText) Name() string {
	return "google-speech-to-text"
}

func NewGoogleSpeechToText(ctx context.Context,
	logger commons.Logger,
	credential *vault.Credential,
	transcriberOptions *internal_transcriber.InitializeOptions,
) (internal_transcriber.SpeechToTextTranscriber, error) {
	googleOpts, err := NewGoogleOption(logger,
		credential,
		transcriberOptions.AudioConfig,
		transcriberOptions.ModelOptions)
	if err != nil {
		logger.Errorf("google-stt: intializing google failed %+v", err)
		return nil, err
	}

	return &googleSpeechToText{
		ctx:                ctx,
		logger:             logger,
		googleOption:       googleOpts,
		transcriberOptions: transcriberOptions,
	}, nil
}

func (gst *googleSpeechToText) Initialize() error {
	gst.mu.Lock()
	defer gst.mu.Unlock()

	client, err := speech.NewClient(gst.ctx, gst.GetSpeechToTextClientOptions()...)
	if err != nil {
		return fmt.Errorf("google-stt: failed to create speech client: %w", err)
	}
	gst.client = client
	return nil
}

func (gst *googleSpeechToText) Transcribe(ctx context.Context, in []byte) error {
	gst.mu.Lock()
	defer gst.mu.Unlock()

	if gst.client == nil {
		return fmt.Errorf("google-stt: speech client is not initialized")
	}

	resp, err := gst.client.Recognize(ctx, &speechpb.RecognizeRequest{
		Recognizer: gst.GetRecognizer(),
		Config:     gst.SpeechToTextOptions(),
		AudioSource: &speechpb.RecognizeRequest_Content{
			Content: in,
		},
	})
	if err != nil {
		return fmt.Errorf("google-stt: recognize failed: %w", err)
	}

	for _, result := range resp.GetResults() {
		alternatives := result.GetAlternatives()
		if len(alternatives) == 0 {
			continue
		}
		best := alternatives[0]
		gst.logger.Debugf("google-stt: received transcription: %s", best.GetTranscript())
		if gst.transcriberOptions.OnTranscript != nil {
			gst.transcriberOptions.OnTranscript(
				best.GetTranscript(),
				best.GetConfidence(),
				result.GetLanguageCode(),
				true,
			)
		}
	}
	return nil
}

func (gst *googleSpeechToText) Close(ctx context.Context) error {
	if gst.client != nil {
		if err := gst.client.Close(); err != nil {
			return fmt.Errorf("error closing speech client: %w", err)
		}
		gst.logger.Info("google-stt: google speech client closed")
	}
	return nil
}
