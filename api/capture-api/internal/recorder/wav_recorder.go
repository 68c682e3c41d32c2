// Copyright (c) 2023-2025 RapidaAI
// Author: Prashant Srivastav <prashant@rapida.ai>
//
// Licensed under GPL-2.0 with Rapida Additional Terms.
// See LICENSE.md or contact sales@rapida.ai for commercial usage.
package internal_recorder

import (
	"bytes"
	"context"
	"encoding/binary"
	"fmt"
	"sync"
	"time"

	"github.com/rapidaai/capture/pkg/audio"
	"github.com/rapidaai/capture/pkg/commons"
)

const (
	AudioBytesPerSample = 2  // LINEAR16 → 2 bytes per sample
	AudioBitsPerSample  = 16 // LINEAR16 → 16 bits per sample
	AudioPCMFormat      = 1  // WAV PCM format tag
)

// chunk is a recorded audio fragment placed at a specific position on the
// timeline. ByteOffset is the byte position relative to Start().
type chunk struct {
	ByteOffset int
	Data       []byte
}

type wavRecorder struct {
	logger    commons.Logger
	cfg       audio.RecordingConfiguration
	mu        sync.Mutex
	startTime time.Time
	started   bool
	chunks    []chunk
	// cursor is the byte position just past the last written byte. Sources
	// that deliver faster than real time (buffered capture flushes) are
	// paced from the cursor; only the first chunk after a gap uses
	// wall-clock to anchor position.
	cursor int
	// clock is injectable for testing; defaults to time.Now.
	clock func() time.Time
}

// NewWAVRecorder builds a capture sink for the session's configuration.
// The sink renders linear PCM; sessions planned on a compressed format go
// through a downstream encoder instead.
func NewWAVRecorder(logger commons.Logger, cfg audio.RecordingConfiguration) (Recorder, error) {
	if cfg.Format != audio.FormatWAV {
		return nil, fmt.Errorf("wav recorder cannot capture %s sessions", cfg.Format)
	}
	if cfg.SampleRate == 0 || cfg.Channels == 0 {
		return nil, fmt.Errorf("illegal recording configuration: sampleRate=%d channels=%d", cfg.SampleRate, cfg.Channels)
	}
	return &wavRecorder{
		logger: logger,
		cfg:    cfg,
		clock:  time.Now,
	}, nil
}

// Start begins the recording session. Audio is placed on the timeline based
// on when it arrives relative to this moment.
func (r *wavRecorder) Start() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.startTime = r.clock()
	r.started = true
}

func (r *wavRecorder) bytesPerSecond() int {
	return int(r.cfg.SampleRate) * int(r.cfg.Channels) * AudioBytesPerSample
}

// durationBytes converts a wall-clock duration to a frame-aligned byte count.
func (r *wavRecorder) durationBytes(d time.Duration) int {
	raw := int(d.Seconds() * float64(r.bytesPerSecond()))
	frameSize := AudioBytesPerSample * int(r.cfg.Channels)
	return (raw / frameSize) * frameSize
}

// Record places audio on the timeline at the current wall-clock position.
// Each chunk is positioned based on WHEN it arrives, not just appended.
func (r *wavRecorder) Record(ctx context.Context, data []byte) error {
	if len(data) == 0 {
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	wallOffset := 0
	if r.started {
		wallOffset = r.durationBytes(r.clock().Sub(r.startTime))
	}

	// Burst continuation (cursor past wall-clock): pace from the cursor so
	// audio stays continuous at the playback rate with no gaps or
	// overlaps. Otherwise anchor at wall-clock.
	offset := wallOffset
	if r.cursor > wallOffset {
		offset = r.cursor
	}

	// Copy to avoid caller mutations.
	buf := make([]byte, len(data))
	copy(buf, data)

	r.chunks = append(r.chunks, chunk{
		ByteOffset: offset,
		Data:       buf,
	})
	r.cursor = offset + len(buf)
	return nil
}

// Persist renders the WAV file. It spans the full session duration
// (Start → Persist): chunks sit at their recorded timeline positions and
// gaps are silence.
func (r *wavRecorder) Persist() ([]byte, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.chunks) == 0 {
		return nil, fmt.Errorf("no audio chunks to persist")
	}

	sessionBytes := 0
	if r.started {
		sessionBytes = r.durationBytes(r.clock().Sub(r.startTime))
	}

	// Minimum buffer size: max(sessionBytes, furthest chunk end).
	totalLen := sessionBytes
	for _, c := range r.chunks {
		end := c.ByteOffset + len(c.Data)
		if end > totalLen {
			totalLen = end
		}
	}

	pcm := make([]byte, totalLen)
	audioBytes := 0
	for _, c := range r.chunks {
		copy(pcm[c.ByteOffset:], c.Data)
		audioBytes += len(c.Data)
	}

	r.logger.Info(fmt.Sprintf(
		"Audio persist: audio=%d (%.2fs), totalLen=%d (%.2fs), chunks=%d",
		audioBytes, float64(audioBytes)/float64(r.bytesPerSecond()),
		totalLen, float64(totalLen)/float64(r.bytesPerSecond()),
		len(r.chunks),
	))

	return r.createWAVFile(pcm), nil
}

func (r *wavRecorder) createWAVFile(pcmData []byte) []byte {
	var buf bytes.Buffer
	sampleRate := r.cfg.SampleRate
	channels := r.cfg.Channels
	bps := r.bytesPerSecond()

	buf.Write([]byte("RIFF"))
	binary.Write(&buf, binary.LittleEndian, uint32(36+len(pcmData)))
	buf.Write([]byte("WAVE"))

	buf.Write([]byte("fmt "))
	binary.Write(&buf, binary.LittleEndian, uint32(16))
	binary.Write(&buf, binary.LittleEndian, uint16(AudioPCMFormat))
	binary.Write(&buf, binary.LittleEndian, uint16(channels))
	binary.Write(&buf, binary.LittleEndian, uint32(sampleRate))
	binary.Write(&buf, binary.LittleEndian, uint32(bps))
	binary.Write(&buf, binary.LittleEndian, uint16(AudioBytesPerSample*int(channels)))
	binary.Write(&buf, binary.LittleEndian, uint16(AudioBitsPerSample))

	// data chunk
	buf.Write([]byte("data"))
	binary.Write(&buf, binary.LittleEndian, uint32(len(pcmData)))
	buf.Write(pcmData)

	return buf.Bytes()
}
