package config

import (
	"fmt"
	"time"
)

const (
	BackendOpenAI     = "openai"
	BackendWhisperCPP = "whisper-cpp"

	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

type Config struct {
	OpenAI  OpenAIConfig  `yaml:"openai"`
	Gemini  GeminiConfig  `yaml:"gemini"`
	STT     STTConfig     `yaml:"stt"`
	Whisper WhisperConfig `yaml:"whisper"`
	FFmpeg  FFmpegConfig  `yaml:"ffmpeg"`
	Paths   PathsConfig   `yaml:"paths"`
	Input   InputConfig   `yaml:"input"`
	Summary SummaryConfig `yaml:"summary"`
	Logging LoggingConfig `yaml:"logging"`
}

// OpenAIConfig is handed to the speech-to-text and chat clients at construction.
type OpenAIConfig struct {
	APIKey    string `yaml:"api_key"`
	BaseURL   string `yaml:"base_url"`
	STTModel  string `yaml:"stt_model"`
	ChatModel string `yaml:"chat_model"`
}

type GeminiConfig struct {
	APIKey  string `yaml:"api_key"`
	BaseURL string `yaml:"base_url"`
	Model   string `yaml:"model"`
}

type STTConfig struct {
	Backend string `yaml:"backend"`
}

// WhisperConfig configures the local whisper.cpp backend
type WhisperConfig struct {
	BinaryPath string `yaml:"binary_path"`
	ModelPath  string `yaml:"model_path"`
	Language   string `yaml:"language"`
	Threads    int    `yaml:"threads"`
}

type FFmpegConfig struct {
	BinaryPath   string `yaml:"binary_path"`
	ProbePath    string `yaml:"probe_path"`
	SampleRate   int    `yaml:"sample_rate"`
	Bitrate      string `yaml:"bitrate"`
	CleanupAudio bool   `yaml:"cleanup_audio"`
}

type PathsConfig struct {
	// AudioDir receives the intermediate audio. Empty means the working directory.
	AudioDir string `yaml:"audio_dir"`
}

type InputConfig struct {
	Dir     string        `yaml:"dir"`
	Pattern string        `yaml:"pattern"`
	Settle  time.Duration `yaml:"settle"`
}

type SummaryConfig struct {
	Provider string `yaml:"provider"`
	Docx     bool   `yaml:"docx"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Default returns a configuration with every default filled in
func Default() *Config {
	cfg := &Config{}
	_ = cfg.Validate()
	return cfg
}

func (c *Config) Validate() error {
	if c.OpenAI.BaseURL == "" {
		c.OpenAI.BaseURL = "https://api.openai.com/v1"
	}
	if c.OpenAI.STTModel == "" {
		c.OpenAI.STTModel = "whisper-1"
	}
	if c.OpenAI.ChatModel == "" {
		c.OpenAI.ChatModel = "gpt-4o-mini"
	}
	if c.Gemini.Model == "" {
		c.Gemini.Model = "gemini-2.5-flash"
	}
	if c.STT.Backend == "" {
		c.STT.Backend = BackendOpenAI
	}
	if c.Whisper.BinaryPath == "" {
		c.Whisper.BinaryPath = "whisper-cli"
	}
	if c.Whisper.Language == "" {
		c.Whisper.Language = "auto"
	}
	if c.Whisper.Threads == 0 {
		c.Whisper.Threads = 4
	}
	if c.FFmpeg.BinaryPath == "" {
		c.FFmpeg.BinaryPath = "ffmpeg"
	}
	if c.FFmpeg.ProbePath == "" {
		c.FFmpeg.ProbePath = "ffprobe"
	}
	if c.FFmpeg.SampleRate == 0 {
		c.FFmpeg.SampleRate = 16000
	}
	if c.FFmpeg.Bitrate == "" {
		c.FFmpeg.Bitrate = "32k"
	}
	if c.Input.Dir == "" {
		c.Input.Dir = "."
	}
	if c.Input.Pattern == "" {
		c.Input.Pattern = "*.mp4"
	}
	if c.Summary.Provider == "" {
		c.Summary.Provider = ProviderOpenAI
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "debug"
	}

	switch c.STT.Backend {
	case BackendOpenAI:
	case BackendWhisperCPP:
		if c.Whisper.ModelPath == "" {
			return fmt.Errorf("whisper.model_path is required for stt.backend %q", BackendWhisperCPP)
		}
	default:
		return fmt.Errorf("stt.backend %q is not supported", c.STT.Backend)
	}

	switch c.Summary.Provider {
	case ProviderOpenAI, ProviderGemini:
	default:
		return fmt.Errorf("summary.provider %q is not supported", c.Summary.Provider)
	}

	if c.FFmpeg.SampleRate < 0 {
		return fmt.Errorf("ffmpeg.sample_rate must be positive")
	}
	if c.Input.Settle < 0 {
		return fmt.Errorf("input.settle must not be negative")
	}

	return nil
}
