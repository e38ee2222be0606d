package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// ----------------------------------------------------------------------
// 設定構造体
// ----------------------------------------------------------------------

// Config はアプリケーション全体の設定です。
// YAMLファイルを基礎とし、環境変数が存在すればそちらを優先します。
type Config struct {
	API     APIConfig     `yaml:"api"`
	Output  OutputConfig  `yaml:"output"`
	Server  ServerConfig  `yaml:"server"`
	Logging LoggingConfig `yaml:"logging"`
}

// APIConfig はGemini TTS API呼び出しの設定です。
type APIConfig struct {
	Key               string `yaml:"key"`
	BaseURL           string `yaml:"base_url"`
	Model             string `yaml:"model"`
	DefaultVoice      string `yaml:"default_voice"`
	TimeoutSeconds    int    `yaml:"timeout_seconds"`
	MaxAttempts       int    `yaml:"max_attempts"`
	InitialBackoffMS  int    `yaml:"initial_backoff_ms"`
	RequestIntervalMS int    `yaml:"request_interval_ms"`
}

// Timeout はHTTPクライアントのタイムアウトを返します。
func (a APIConfig) Timeout() time.Duration {
	return time.Duration(a.TimeoutSeconds) * time.Second
}

// InitialBackoff はレート制限リトライの初期待機時間を返します。
func (a APIConfig) InitialBackoff() time.Duration {
	return time.Duration(a.InitialBackoffMS) * time.Millisecond
}

// RequestInterval は連続する生成リクエストの最小間隔を返します。
func (a APIConfig) RequestInterval() time.Duration {
	return time.Duration(a.RequestIntervalMS) * time.Millisecond
}

// OutputConfig はCLIの出力設定です。
type OutputConfig struct {
	Path string `yaml:"path"`
}

// ServerConfig はHTTPサーバーの設定です。
type ServerConfig struct {
	Address        string `yaml:"address"`
	MetricsAddress string `yaml:"metrics_address"`
}

// LoggingConfig はログ出力の設定です。
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// SlogLevel は設定文字列を slog.Level に変換します。未知の値はInfoです。
func (l LoggingConfig) SlogLevel() slog.Level {
	switch l.Level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ----------------------------------------------------------------------
// ロード
// ----------------------------------------------------------------------

// defaults は組み込みの既定値を返します。
func defaults() *Config {
	return &Config{
		API: APIConfig{
			BaseURL:           "https://generativelanguage.googleapis.com/v1beta",
			Model:             "gemini-2.5-flash-preview-tts",
			TimeoutSeconds:    60,
			MaxAttempts:       5,
			InitialBackoffMS:  1000,
			RequestIntervalMS: 1000,
		},
		Output: OutputConfig{
			Path: "azan-voice.wav",
		},
		Server: ServerConfig{
			Address:        ":8080",
			MetricsAddress: ":9090",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load は設定を読み込みます。path が空でなければYAMLファイルを読み、
// その後に環境変数の上書きを適用して検証します。
// ルートの .env は存在すれば読み込みます（なければ無視）。
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := defaults()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("設定ファイルの読み込みに失敗しました (%s): %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("設定ファイルの解析に失敗しました (%s): %w", path, err)
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("設定の検証に失敗しました: %w", err)
	}

	return cfg, nil
}

// applyEnv は環境変数による上書きを適用します。
func (c *Config) applyEnv() {
	c.API.Key = getEnv("GEMINI_API_KEY", c.API.Key)
	c.API.BaseURL = getEnv("GEMINI_API_BASE_URL", c.API.BaseURL)
	c.API.Model = getEnv("GEMINI_TTS_MODEL", c.API.Model)
	c.API.DefaultVoice = getEnv("AZAN_DEFAULT_VOICE", c.API.DefaultVoice)
	c.API.TimeoutSeconds = getEnvInt("AZAN_API_TIMEOUT_SECONDS", c.API.TimeoutSeconds)
	c.Output.Path = getEnv("AZAN_OUTPUT_PATH", c.Output.Path)
	c.Server.Address = getEnv("AZAN_HTTP_ADDR", c.Server.Address)
	c.Server.MetricsAddress = getEnv("AZAN_METRICS_ADDR", c.Server.MetricsAddress)
	c.Logging.Level = getEnv("AZAN_LOG_LEVEL", c.Logging.Level)
}

// Validate は設定値の整合性を検証します。
func (c *Config) Validate() error {
	if c.API.BaseURL == "" {
		return fmt.Errorf("api.base_url が空です")
	}
	if c.API.Model == "" {
		return fmt.Errorf("api.model が空です")
	}
	if c.API.TimeoutSeconds <= 0 {
		return fmt.Errorf("api.timeout_seconds は正の値である必要があります (指定値: %d)", c.API.TimeoutSeconds)
	}
	if c.API.MaxAttempts < 1 {
		return fmt.Errorf("api.max_attempts は1以上である必要があります (指定値: %d)", c.API.MaxAttempts)
	}
	if c.API.InitialBackoffMS <= 0 {
		return fmt.Errorf("api.initial_backoff_ms は正の値である必要があります (指定値: %d)", c.API.InitialBackoffMS)
	}
	if c.API.RequestIntervalMS <= 0 {
		return fmt.Errorf("api.request_interval_ms は正の値である必要があります (指定値: %d)", c.API.RequestIntervalMS)
	}
	if c.Server.Address == "" {
		return fmt.Errorf("server.address が空です")
	}
	if c.Server.MetricsAddress == "" {
		return fmt.Errorf("server.metrics_address が空です")
	}
	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
