// Copyright (c) 2023-2025 RapidaAI
// Author: Prashant Srivastav <prashant@rapida.ai>
//
// Licensed under GPL-2.0 with Rapida Additional Terms.
// See LICENSE.md or contact sales@rapida.ai for commercial usage.

package internal_transcriber_deepgram

import (
	"fmt"

	interfaces "github.com/deepgram/deepgram-go-sdk/v3/pkg/client/interfaces"
	"github.com/rapidaai/capture/pkg/audio"
	"github.com/rapidaai/capture/pkg/commons"
	"github.com/rapidaai/capture/pkg/utils"
	"github.com/rapidaai/capture/pkg/vault"
)

const (
	DefaultLanguage = "en-US"
	DefaultModel    = "nova"
)

type deepgramOption struct {
	logger      commons.Logger
	key         string
	audioConfig audio.RecordingConfiguration
	mdlOpts     utils.Option
}

func NewDeepgramOption(
	logger commons.Logger,
	vaultCredential *vault.Credential,
	audioConfig audio.RecordingConfiguration,
	mdlOpts utils.Option) (*deepgramOption, error) {
	cx, ok := vaultCredential.GetValue().AsMap()["key"]
	if !ok {
		return nil, fmt.Errorf("illegal vault config")
	}
	key, ok := cx.(string)
	if !ok || utils.IsEmpty(key) {
		return nil, fmt.Errorf("illegal vault config")
	}
	return &deepgramOption{
		logger:      logger,
		audioConfig: audioConfig,
		mdlOpts:     mdlOpts,
		key:         key,
	}, nil
}

func (co *deepgramOption) GetKey() string {
	return co.key
}

// GetEncoding maps the session's container to a Deepgram raw stream encoding.
// Compressed containers Deepgram cannot take over the live socket fall back
// to linear16 since the capture pipeline can always hand over decoded PCM.
func (co *deepgramOption) GetEncoding() string {
	switch co.audioConfig.Format {
	case audio.FormatFLAC:
		return "flac"
	case audio.FormatOpus:
		return "opus"
	case audio.FormatAMR:
		if co.audioConfig.SampleRate >= 16000 {
			return "amr-wb"
		}
		return "amr-nb"
	default:
		return "linear16"
	}
}

// SpeechToTextOptions builds live transcription options from the session's
// recording configuration. Defaults are overridable via mdlOpts.
func (co *deepgramOption) SpeechToTextOptions() *interfaces.LiveTranscriptionOptions {
	opts := &interfaces.LiveTranscriptionOptions{
		Model:          DefaultModel,
		Language:       DefaultLanguage,
		Channels:       int(co.audioConfig.Channels),
		SmartFormat:    true,
		InterimResults: true,
		FillerWords:    true,
		VadEvents:      false,
		Endpointing:    "5",
		Punctuate:      true,
		NoDelay:        true,
		Encoding:       co.GetEncoding(),
		SampleRate:     int(co.audioConfig.SampleRate),
		Diarize:        false,
		Multichannel:   false,
	}

	if language, err := co.mdlOpts.GetString("listen.language"); err == nil {
		opts.Language = language
	}
	if model, err := co.mdlOpts.GetString("listen.model"); err == nil {
		opts.Model = model
	}
	if smartFormat, err := co.mdlOpts.GetBool("listen.smart_format"); err == nil {
		opts.SmartFormat = smartFormat
	}
	if fillerWords, err := co.mdlOpts.GetBool("listen.filler_words"); err == nil {
		opts.FillerWords = fillerWords
	}
	if vadEvents, err := co.mdlOpts.GetBool("listen.vad_events"); err == nil {
		opts.VadEvents = vadEvents
	}
	if endpointing, err := co.mdlOpts.GetString("listen.endpointing"); err == nil {
		opts.Endpointing = endpointing
	}
	if multichannel, err := co.mdlOpts.GetBool("listen.multichannel"); err == nil {
		opts.Multichannel = multichannel
	}
	if diarize, err := co.mdlOpts.GetBool("listen.diarize"); err == nil {
		opts.Diarize = diarize
	}

	// nova-3 replaced the keyword boosting parameter with keyterm prompting.
	if keywords, err := co.mdlOpts.GetStringSlice("listen.keyword"); err == nil {
		if opts.Model == "nova-3" {
			opts.Keyterm = keywords
		} else {
			opts.Keywords = keywords
		}
	}

	return opts
}
