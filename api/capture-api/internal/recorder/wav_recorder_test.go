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
	"testing"
	"time"

	"github.com/rapidaai/capture/pkg/audio"
	"github.com/rapidaai/capture/pkg/commons"
)

func newTestLogger(t *testing.T) commons.Logger {
	t.Helper()
	logger, err := commons.NewApplicationLogger(
		commons.Name("test-recorder"),
		commons.Path(t.TempDir()),
		commons.Level("debug"),
	)
	if err != nil {
		t.Fatalf("failed to create test logger: %v", err)
	}
	return logger
}

func testConfiguration() audio.RecordingConfiguration {
	return audio.RecordingConfiguration{
		Format:     audio.FormatWAV,
		Quality:    audio.QualityLow,
		SampleRate: 16000,
		Channels:   1,
	}
}

func newTestRecorder(t *testing.T) *wavRecorder {
	t.Helper()
	rec, err := NewWAVRecorder(newTestLogger(t), testConfiguration())
	if err != nil {
		t.Fatalf("failed to create recorder: %v", err)
	}
	return rec.(*wavRecorder)
}

func pcm(val byte, length int) []byte {
	buf := make([]byte, length)
	for i := range buf {
		buf[i] = val
	}
	return buf
}

func TestNewWAVRecorderRejectsCompressedFormats(t *testing.T) {
	cfg := testConfiguration()
	cfg.Format = audio.FormatOpus
	if _, err := NewWAVRecorder(newTestLogger(t), cfg); err == nil {
		t.Fatal("expected error for a non-wav configuration")
	}
}

func TestRecordPlacesChunk(t *testing.T) {
	rec := newTestRecorder(t)
	data := pcm(0x01, 320)
	rec.Record(context.Background(), data)

	if len(rec.chunks) != 1 {
		t.Fatalf("expected 1 chunk, got %d", len(rec.chunks))
	}
	if !bytes.Equal(rec.chunks[0].Data, data) {
		t.Errorf("data mismatch")
	}
}

func TestRecordEmptyDataIsIgnored(t *testing.T) {
	rec := newTestRecorder(t)
	ctx := context.Background()
	rec.Record(ctx, nil)
	rec.Record(ctx, []byte{})

	if len(rec.chunks) != 0 {
		t.Fatalf("expected 0 chunks, got %d", len(rec.chunks))
	}
}

func TestBurstChunksPreserveOrder(t *testing.T) {
	rec := newTestRecorder(t)
	ctx := context.Background()
	for i := 0; i < 5; i++ {
		rec.Record(ctx, pcm(byte(i+1), 320))
	}
	if len(rec.chunks) != 5 {
		t.Fatalf("expected 5 chunks, got %d", len(rec.chunks))
	}
	for i, c := range rec.chunks {
		if c.Data[0] != byte(i+1) {
			t.Errorf("chunk %d: expected first byte %d, got %d", i, i+1, c.Data[0])
		}
	}
	// Burst chunks pace continuously from the cursor.
	for i := 1; i < len(rec.chunks); i++ {
		prevEnd := rec.chunks[i-1].ByteOffset + len(rec.chunks[i-1].Data)
		if rec.chunks[i].ByteOffset != prevEnd {
			t.Errorf("chunk %d: expected offset %d, got %d", i, prevEnd, rec.chunks[i].ByteOffset)
		}
	}
}

func TestRecordCopiesData(t *testing.T) {
	rec := newTestRecorder(t)
	data := pcm(0xFF, 100)
	rec.Record(context.Background(), data)
	data[0] = 0x00
	if rec.chunks[0].Data[0] != 0xFF {
		t.Error("record must copy data")
	}
}

func TestWallClockPlacementAfterGap(t *testing.T) {
	rec := newTestRecorder(t)
	now := time.Now()
	rec.clock = func() time.Time { return now }
	rec.Start()

	// Two seconds pass before the first chunk arrives; it lands at the
	// two-second byte offset, leaving silence in front.
	rec.clock = func() time.Time { return now.Add(2 * time.Second) }
	rec.Record(context.Background(), pcm(0x01, 320))

	expected := rec.durationBytes(2 * time.Second)
	if rec.chunks[0].ByteOffset != expected {
		t.Errorf("expected offset %d, got %d", expected, rec.chunks[0].ByteOffset)
	}
}

func TestPersistEmptyReturnsError(t *testing.T) {
	rec := newTestRecorder(t)
	if _, err := rec.Persist(); err == nil {
		t.Fatal("expected error for empty recorder")
	}
}

func TestPersistProducesValidWAV(t *testing.T) {
	rec := newTestRecorder(t)
	ctx := context.Background()
	rec.Record(ctx, pcm(0x01, 3200))
	rec.Record(ctx, pcm(0x02, 6400))

	wav, err := rec.Persist()
	if err != nil {
		t.Fatalf("Persist error: %v", err)
	}
	if len(wav) < 44 {
		t.Fatal("WAV too short")
	}
	if string(wav[0:4]) != "RIFF" || string(wav[8:12]) != "WAVE" {
		t.Error("missing RIFF/WAVE markers")
	}

	// fmt header carries the session configuration, not a fixed global.
	channels := binary.LittleEndian.Uint16(wav[22:24])
	sampleRate := binary.LittleEndian.Uint32(wav[24:28])
	if channels != 1 {
		t.Errorf("expected 1 channel, got %d", channels)
	}
	if sampleRate != 16000 {
		t.Errorf("expected 16000 Hz, got %d", sampleRate)
	}

	dataLen := binary.LittleEndian.Uint32(wav[40:44])
	if int(dataLen) != len(wav)-44 {
		t.Errorf("data length %d does not match payload %d", dataLen, len(wav)-44)
	}
}

func TestPersistUsesConfiguredSampleRate(t *testing.T) {
	cfg := testConfiguration()
	cfg.Quality = audio.QualityHigh
	cfg.SampleRate = 44100
	cfg.Channels = 2
	rec, err := NewWAVRecorder(newTestLogger(t), cfg)
	if err != nil {
		t.Fatal(err)
	}
	rec.Record(context.Background(), pcm(0x01, 1764))

	wav, err := rec.Persist()
	if err != nil {
		t.Fatal(err)
	}
	if got := binary.LittleEndian.Uint32(wav[24:28]); got != 44100 {
		t.Errorf("expected 44100 Hz, got %d", got)
	}
	if got := binary.LittleEndian.Uint16(wav[22:24]); got != 2 {
		t.Errorf("expected 2 channels, got %d", got)
	}
}
