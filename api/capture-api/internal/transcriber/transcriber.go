// Copyright (c) 2023-2025 RapidaAI
// Author: Prashant Srivastav <prashant@rapida.ai>
//
// Licensed under GPL-2.0 with Rapida Additional Terms.
// See LICENSE.md or contact sales@rapida.ai for commercial usage.

package internal_transcriber

import (
	"context"

	"github.com/rapidaai/capture/pkg/audio"
	"github.com/rapidaai/capture/pkg/utils"
)

// OnTranscript receives recognized text as it becomes available.
type OnTranscript func(text string, confidence float32, language string, isFinal bool)

// InitializeOptions configures a transcription provider for one recording.
// AudioConfig is the session's planned recording configuration; providers
// derive their encoding, sample rate and channel parameters from it.
// ModelOptions carries provider-specific recognized options.
type InitializeOptions struct {
	AudioConfig  audio.RecordingConfiguration
	ModelOptions utils.Option
	OnTranscript OnTranscript
}

// SpeechToTextTranscriber streams audio to a provider and emits transcripts
// through the OnTranscript callback.
type SpeechToTextTranscriber interface {
	Name() string
	Initialize() error
	Transcribe(ctx context.Context, audio []byte) error
	Close(ctx context.Context) error
}

// TranscriptSegment is a diarized span of a batch transcript.
type TranscriptSegment struct {
	Speaker string `json:"speaker"`
	Text    string `json:"text"`
}

// Transcript is the result of a batch transcription.
type Transcript struct {
	Text     string              `json:"text"`
	Segments []TranscriptSegment `json:"segments"`
}

// BatchTranscriber uploads a complete recording and returns the transcript
// in one round trip. Used on the post-meeting path where latency does not
// matter.
type BatchTranscriber interface {
	Name() string
	Transcribe(ctx context.Context, filename string, audio []byte) (*Transcript, error)
}
