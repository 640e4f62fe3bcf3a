package stt

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nguyentantai21042004/scribe/internal/config"
	"github.com/nguyentantai21042004/scribe/internal/logger"
	"github.com/nguyentantai21042004/scribe/internal/openai"
	"github.com/nguyentantai21042004/scribe/internal/transcript"
)

const verboseJSON = `{"task":"transcribe","language":"english","duration":66.0,"text":"Hello World","segments":[{"id":0,"start":0.0,"end":2.0,"text":" Hello"},{"id":1,"start":65.0,"end":66.0,"text":" World"}]}`

func discard() logger.Logger {
	return logger.NewWithWriter(io.Discard, "debug")
}

func writeAudio(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.mp3")
	require.NoError(t, os.WriteFile(path, []byte("dummy audio data"), 0644))
	return path
}

func newOpenAI(t *testing.T, url string) Transcriber {
	t.Helper()
	cfg := config.Default().OpenAI
	cfg.BaseURL = url
	cfg.APIKey = "sk-test"
	tr, err := NewOpenAI(cfg, nil, discard())
	require.NoError(t, err)
	return tr
}

func TestOpenAITranscribe(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/audio/transcriptions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))

		if !assert.NoError(t, r.ParseMultipartForm(1<<20)) {
			return
		}
		assert.Equal(t, "whisper-1", r.FormValue("model"))
		assert.Equal(t, "verbose_json", r.FormValue("response_format"))

		file, header, err := r.FormFile("file")
		if !assert.NoError(t, err) {
			return
		}
		defer file.Close()
		assert.Equal(t, "test.mp3", header.Filename)
		data, _ := io.ReadAll(file)
		assert.Equal(t, "dummy audio data", string(data))

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, verboseJSON)
	}))
	defer server.Close()

	got, err := newOpenAI(t, server.URL).Transcribe(context.Background(), writeAudio(t))
	require.NoError(t, err)
	assert.Equal(t, []transcript.Segment{
		{Start: 0, End: 2, Text: " Hello"},
		{Start: 65, End: 66, Text: " World"},
	}, got.Segments)
	assert.Equal(t, "english", got.Language)
}

func TestOpenAITranscribeMalformedResponse(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not json", "upstream said hi"},
		{"no segments", `{"text":"Hello"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, tt.body)
			}))
			defer server.Close()

			_, err := newOpenAI(t, server.URL).Transcribe(context.Background(), writeAudio(t))
			require.Error(t, err)
			assert.True(t, errors.Is(err, transcript.ErrMalformed))
		})
	}
}

func TestOpenAITranscribeStatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusRequestEntityTooLarge)
		fmt.Fprint(w, `{"error":{"message":"Maximum content size limit exceeded"}}`)
	}))
	defer server.Close()

	_, err := newOpenAI(t, server.URL).Transcribe(context.Background(), writeAudio(t))
	require.Error(t, err)
	assert.True(t, errors.Is(err, openai.ErrStatus))
	assert.Contains(t, err.Error(), "Maximum content size limit exceeded")
}

func TestOpenAITranscribeMissingAudio(t *testing.T) {
	tr := newOpenAI(t, "http://127.0.0.1:1")
	_, err := tr.Transcribe(context.Background(), filepath.Join(t.TempDir(), "missing.mp3"))
	assert.Error(t, err)
}

func TestNewRequiresAPIKey(t *testing.T) {
	cfg := config.Default()
	cfg.OpenAI.APIKey = ""
	_, err := New(cfg, nil, discard())
	assert.Error(t, err)
}

func TestNewWhisperCPPBackend(t *testing.T) {
	cfg := config.Default()
	cfg.STT.Backend = config.BackendWhisperCPP
	cfg.Whisper.ModelPath = "models/ggml-base.bin"

	tr, err := New(cfg, &fakeExecutor{}, discard())
	require.NoError(t, err)
	assert.IsType(t, &whisperCPPTranscriber{}, tr)
}

// fakeExecutor stands in for whisper.cpp and writes its JSON output
type fakeExecutor struct {
	output string
	err    error
	args   []string
}

func (f *fakeExecutor) Execute(ctx context.Context, name string, args ...string) (string, error) {
	f.args = args
	if f.err != nil {
		return "", f.err
	}
	for i, a := range args {
		if a == "-of" {
			if err := os.WriteFile(args[i+1]+".json", []byte(f.output), 0644); err != nil {
				return "", err
			}
		}
	}
	return "", nil
}

func TestWhisperCPPTranscribe(t *testing.T) {
	fake := &fakeExecutor{output: `{
		"result": {"language": "en"},
		"transcription": [
			{"timestamps": {"from": "00:00:00,000", "to": "00:00:02,000"}, "offsets": {"from": 0, "to": 2000}, "text": " Hello"},
			{"timestamps": {"from": "00:01:05,000", "to": "00:01:06,500"}, "offsets": {"from": 65000, "to": 66500}, "text": " World"}
		]
	}`}
	cfg := config.Default().Whisper
	cfg.ModelPath = "models/ggml-base.bin"

	audio := writeAudio(t)
	got, err := NewWhisperCPP(cfg, fake, discard()).Transcribe(context.Background(), audio)
	require.NoError(t, err)

	assert.Equal(t, []transcript.Segment{
		{Start: 0, End: 2, Text: " Hello"},
		{Start: 65, End: 66.5, Text: " World"},
	}, got.Segments)
	assert.Equal(t, "en", got.Language)
	assert.Equal(t, "Hello World", got.Text)
	assert.Contains(t, fake.args, "models/ggml-base.bin")

	// The JSON side output is removed after reading.
	entries, err := os.ReadDir(filepath.Dir(audio))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestWhisperCPPTranscribeFailure(t *testing.T) {
	fake := &fakeExecutor{err: errors.New("exit status 1")}
	_, err := NewWhisperCPP(config.Default().Whisper, fake, discard()).Transcribe(context.Background(), writeAudio(t))
	assert.Error(t, err)
}

func TestWhisperCPPTranscribeMalformed(t *testing.T) {
	fake := &fakeExecutor{output: "not json"}
	_, err := NewWhisperCPP(config.Default().Whisper, fake, discard()).Transcribe(context.Background(), writeAudio(t))
	assert.True(t, errors.Is(err, transcript.ErrMalformed))
}
