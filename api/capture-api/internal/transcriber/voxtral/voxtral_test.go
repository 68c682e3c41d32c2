package internal_transcriber_voxtral

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rapidaai/capture/pkg/commons"
	"github.com/rapidaai/capture/pkg/utils"
	"github.com/rapidaai/capture/pkg/vault"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger(t *testing.T) commons.Logger {
	t.Helper()
	logger, err := commons.NewApplicationLogger(
		commons.Name("voxtral-test"),
		commons.Path(t.TempDir()),
		commons.Level("debug"),
	)
	require.NoError(t, err)
	return logger
}

func newVaultCredential(t *testing.T, m map[string]interface{}) *vault.Credential {
	t.Helper()
	cred, err := vault.NewCredential(m)
	require.NoError(t, err)
	return cred
}

func TestNewVoxtralTranscriber_MissingKey(t *testing.T) {
	cred := newVaultCredential(t, map[string]interface{}{"other": "value"})
	tr, err := NewVoxtralTranscriber(newTestLogger(t), cred, utils.Option{})
	assert.Error(t, err)
	assert.Nil(t, tr)
	assert.Contains(t, err.Error(), "illegal vault config")
}

func TestVoxtralTranscribe(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/audio/transcriptions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "voxtral-mini-latest", r.FormValue("model"))
		assert.Equal(t, "true", r.FormValue("diarize"))

		_, header, err := r.FormFile("file")
		require.NoError(t, err)
		assert.Equal(t, "meeting.wav", header.Filename)

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"text":"hello there","segments":[{"speaker":"speaker_0","text":"hello"},{"speaker":"speaker_1","text":"there"}]}`)
	}))
	defer server.Close()

	cred := newVaultCredential(t, map[string]interface{}{"key": "test-key"})
	tr, err := NewVoxtralTranscriber(newTestLogger(t), cred, utils.Option{
		"transcribe.base_url": server.URL,
	})
	require.NoError(t, err)

	transcript, err := tr.Transcribe(context.Background(), "meeting.wav", []byte("audio-bytes"))
	require.NoError(t, err)
	assert.Equal(t, "hello there", transcript.Text)
	require.Len(t, transcript.Segments, 2)
	assert.Equal(t, "speaker_0", transcript.Segments[0].Speaker)
	assert.Equal(t, "there", transcript.Segments[1].Text)
}

func TestVoxtralTranscribe_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		fmt.Fprint(w, `{"message":"Unauthorized"}`)
	}))
	defer server.Close()

	cred := newVaultCredential(t, map[string]interface{}{"key": "bad-key"})
	tr, err := NewVoxtralTranscriber(newTestLogger(t), cred, utils.Option{
		"transcribe.base_url": server.URL,
	})
	require.NoError(t, err)

	transcript, err := tr.Transcribe(context.Background(), "meeting.wav", []byte("audio-bytes"))
	assert.Error(t, err)
	assert.Nil(t, transcript)
	assert.Contains(t, err.Error(), "HTTP 401")
}

func TestVoxtralTranscribeSegments_PreservesOrder(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		_, header, err := r.FormFile("file")
		require.NoError(t, err)
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"text":"transcript of %s","segments":[]}`, header.Filename)
	}))
	defer server.Close()

	cred := newVaultCredential(t, map[string]interface{}{"key": "test-key"})
	tr, err := NewVoxtralTranscriber(newTestLogger(t), cred, utils.Option{
		"transcribe.base_url": server.URL,
	})
	require.NoError(t, err)

	segments := []Segment{
		{Filename: "part-0.wav", Audio: []byte("a")},
		{Filename: "part-1.wav", Audio: []byte("b")},
		{Filename: "part-2.wav", Audio: []byte("c")},
	}
	vt := tr.(*voxtralTranscriber)
	transcripts, err := vt.TranscribeSegments(context.Background(), segments)
	require.NoError(t, err)
	require.Len(t, transcripts, 3)
	for i, transcript := range transcripts {
		assert.Equal(t, fmt.Sprintf("transcript of part-%d.wav", i), transcript.Text)
	}
}
