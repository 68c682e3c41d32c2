// Copyright (c) 2023-2025 RapidaAI
// Author: Prashant Srivastav <prashant@rapida.ai>
//
// Licensed under GPL-2.0 with Rapida Additional Terms.
// See LICENSE.md or contact sales@rapida.ai for commercial usage.

package internal_transcriber_google

import (
	"fmt"
	"strings"

	"cloud.google.com/go/speech/apiv2/speechpb"
	"github.com/rapidaai/capture/pkg/audio"
	"github.com/rapidaai/capture/pkg/commons"
	"github.com/rapidaai/capture/pkg/utils"
	"github.com/rapidaai/capture/pkg/vault"
	"google.golang.org/api/option"
)

// Introduced constants for default values
const (
	DefaultLanguageCode = "en-US" // Default language code for Speech-to-Text
	DefaultModel        = "long"  // Default model used for Speech recognition
)

// googleOption is the primary configuration structure for Google speech services
type googleOption struct {
	logger       commons.Logger
	clientOptons []option.ClientOption
	audioConfig  audio.RecordingConfiguration
	mdlOpts      utils.Option
	projectId    string
}

// NewGoogleOption initializes googleOption with provided credentials, the
// session's recording configuration, and recognized model options.
func NewGoogleOption(logger commons.Logger, vaultCredential *vault.Credential, audioConfig audio.RecordingConfiguration, opts utils.Option) (*googleOption, error) {

	co := make([]option.ClientOption, 0)
	var projectID string
	credentialsMap := vaultCredential.GetValue().AsMap()
	if v, ok := credentialsMap["key"]; ok {
		if key, ok := v.(string); ok && key != "" {
			co = append(co, option.WithAPIKey(key))
		}
	}

	if v, ok := credentialsMap["project_id"]; ok {
		if prj, ok := v.(string); ok && prj != "" {
			projectID = prj
			co = append(co, option.WithQuotaProject(prj))
		}
	}

	if v, ok := credentialsMap["service_account_key"]; ok {
		if serviceCrd, ok := v.(string); ok && serviceCrd != "" {
			co = append(co, option.WithCredentialsJSON([]byte(serviceCrd)))
		}
	}

	if len(co) == 0 {
		return nil, fmt.Errorf("google: illegal vault config")
	}

	return &googleOption{
		logger:       logger,
		mdlOpts:      opts,
		audioConfig:  audioConfig,
		clientOptons: co,
		projectId:    projectID,
	}, nil
}

// GetSpeechToTextClientOptions returns all configured Google API client options.
func (gO *googleOption) GetSpeechToTextClientOptions() []option.ClientOption {
	return gO.clientOptons
}

// SpeechToTextOptions generates a recognition configuration from the session's
// recording configuration. Uncompressed recordings declare an explicit PCM
// decoding so the recognizer does not have to sniff headerless chunks;
// compressed containers carry their own framing and are auto-detected.
// Default language and model are used unless overridden via mdlOpts.
func (gog *googleOption) SpeechToTextOptions() *speechpb.RecognitionConfig {
	opts := &speechpb.RecognitionConfig{
		Features: &speechpb.RecognitionFeatures{
			EnableAutomaticPunctuation: true,
			EnableWordConfidence:       true,
			ProfanityFilter:            true,
			EnableSpokenPunctuation:    true,
		},
		LanguageCodes: []string{DefaultLanguageCode},
		Model:         DefaultModel,
	}

	if gog.audioConfig.Format == audio.FormatWAV {
		opts.DecodingConfig = &speechpb.RecognitionConfig_ExplicitDecodingConfig{
			ExplicitDecodingConfig: &speechpb.ExplicitDecodingConfig{
				Encoding:          speechpb.ExplicitDecodingConfig_LINEAR16,
				SampleRateHertz:   int32(gog.audioConfig.SampleRate),
				AudioChannelCount: int32(gog.audioConfig.Channels),
			},
		}
	} else {
		opts.DecodingConfig = &speechpb.RecognitionConfig_AutoDecodingConfig{
			AutoDecodingConfig: &speechpb.AutoDetectDecodingConfig{},
		}
	}

	if language, err := gog.mdlOpts.GetString("listen.language"); err == nil {
		codes := strings.Split(language, commons.SEPARATOR)
		nonEmptyCodes := []string{}
		for _, code := range codes {
			code = strings.TrimSpace(code)
			if code != "" {
				nonEmptyCodes = append(nonEmptyCodes, code)
			}
		}
		opts.LanguageCodes = nonEmptyCodes
	} else {
		gog.logger.Warn("Language not specified, defaulting to " + DefaultLanguageCode)
	}

	if model, err := gog.mdlOpts.GetString("listen.model"); err == nil {
		opts.Model = model
	} else {
		gog.logger.Warn("Model not specified, defaulting to " + DefaultModel)
	}

	return opts
}

func (gog *googleOption) GetRecognizer() string {
	if region, err := gog.mdlOpts.GetString("listen.region"); err == nil {
		if region != "global" {
			return fmt.Sprintf("projects/%s/locations/%s/recognizers/_", gog.projectId, region)
		}
	}
	return fmt.Sprintf("projects/%s/locations/global/recognizers/_", gog.projectId)
}
