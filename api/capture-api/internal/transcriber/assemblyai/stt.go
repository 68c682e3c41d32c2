// Copyright (c) 2023-2025 RapidaAI
// Author: Prashant Srivastav <prashant@rapida.ai>
//
// Licensed under GPL-2.0 with Rapida Additional Terms.
// See LICENSE.md or contact sales@rapida.ai for commercial usage.

package internal_transcriber_assemblyai

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	internal_transcriber "github.com/rapidaai/capture/api/capture-api/internal/transcriber"
	"github.com/rapidaai/capture/pkg/commons"
	"github.com/rapidaai/capture/pkg/vault"
)

// streamingMessage is the subset of the v3 streaming payload we act on.
type streamingMessage struct {
	Type       string  `json:"type"`
	Transcript string  `json:"transcript"`
	EndOfTurn  bool    `json:"end_of_turn"`
	Confidence float32 `json:"end_of_turn_confidence"`
}

type assemblyaiSpeechToText struct {
	*assemblyaiOption
	mu                 sync.Mutex
	logger             commons.Logger
	ctx                context.Context
	connection         *websocket.Conn
	transcriberOptions *internal_transcriber.InitializeOptions
}

// Name implements internal_transcriber.SpeechToTextTranscriber.
func (*assemblyaiSpeechToText) Name() string {
	return "assemblyai-speech-to-text"
}

func NewAssemblyaiSpeechToText(ctx context.Context,
	logger commons.Logger,
	credential *vault.Credential,
	transcriberOptions *internal_transcriber.InitializeOptions,
) (internal_transcriber.SpeechToTextTranscriber, error) {
	assemblyaiOpts, err := NewAssemblyaiOption(logger,
		credential,
		transcriberOptions.AudioConfig,
		transcriberOptions.ModelOptions)
	if err != nil {
		logger.Errorf("assemblyai-stt: intializing assemblyai failed %+v", err)
		return nil, err
	}

	return &assemblyaiSpeechToText{
		ctx:                ctx,
		logger:             logger,
		assemblyaiOption:   assemblyaiOpts,
		transcriberOptions: transcriberOptions,
	}, nil
}

// speechToTextCallback processes streaming responses asynchronously.
func (ast *assemblyaiSpeechToText) speechToTextCallback(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			ast.logger.Infof("assemblyai-stt: context cancelled, stopping response listener")
			return
		default:
			_, msg, err := ast.connection.ReadMessage()
			if err != nil {
				ast.logger.Error("assemblyai-stt: error reading from AssemblyAI WebSocket: ", err)
				return
			}
			var resp streamingMessage
			if err := json.Unmarshal(msg, &resp); err == nil && resp.Type == "Turn" && resp.Transcript != "" {
				ast.logger.Debugf("assemblyai-stt: received transcription: %+v", resp)
				if ast.transcriberOptions.OnTranscript != nil {
					ast.transcriberOptions.OnTranscript(
						resp.Transcript,
						resp.Confidence,
						"",
						resp.EndOfTurn,
					)
				}
			}
		}
	}
}

func (ast *assemblyaiSpeechToText) Initialize() error {
	ast.mu.Lock()
	defer ast.mu.Unlock()

	header := http.Header{}
	header.Set("Authorization", ast.GetKey())
	conn, _, err := websocket.DefaultDialer.Dial(ast.GetSpeechToTextConnectionString(), header)
	if err != nil {
		return fmt.Errorf("assemblyai-stt: failed to connect to AssemblyAI WebSocket: %w", err)
	}
	ast.connection = conn
	go ast.speechToTextCallback(ast.ctx)
	return nil
}

func (ast *assemblyaiSpeechToText) Transcribe(ctx context.Context, in []byte) error {
	ast.mu.Lock()
	defer ast.mu.Unlock()

	if ast.connection == nil {
		return fmt.Errorf("assemblyai-stt: websocket connection is not initialized")
	}
	if err := ast.connection.WriteMessage(
		websocket.BinaryMessage, in); err != nil {
		return fmt.Errorf("failed to send audio data: %w", err)
	}

	return nil
}

func (ast *assemblyaiSpeechToText) Close(ctx context.Context) error {
	if ast.connection != nil {
		err := ast.connection.Close()
		if err != nil {
			return fmt.Errorf("error closing WebSocket connection: %w", err)
		}
		ast.logger.Info("assemblyai-stt: assemblyai websocket connection closed")
	}
	return nil
}
