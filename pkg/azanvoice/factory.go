package azanvoice

import (
	"context"
	"log/slog"

	"github.com/AzanKhan68/voice-tool-azan/pkg/azanvoice/api"
	"github.com/AzanKhan68/voice-tool-azan/pkg/azanvoice/audio"
	"github.com/AzanKhan68/voice-tool-azan/pkg/azanvoice/config"
	"github.com/AzanKhan68/voice-tool-azan/pkg/azanvoice/voice"
)

// ----------------------------------------------------------------------
// No-op パターン
// ----------------------------------------------------------------------

// noopSpeechGenerator は SpeechGenerator インターフェースを満たすダミー実装です。
// API呼び出しを行わず、空のWAV（ヘッダーのみ）を返します。
type noopSpeechGenerator struct{}

func (n *noopSpeechGenerator) Generate(ctx context.Context, text string, voiceName string) (*Artifact, error) {
	slog.InfoContext(ctx, "音声生成機能は無効です。無音のWAVを返します。", "text_length", len(text))

	wavBytes, err := audio.EncodeWAV(nil, noopSampleRate)
	if err != nil {
		return nil, err
	}
	return newArtifact(wavBytes, noopSampleRate)
}

func (n *noopSpeechGenerator) LastArtifact() *Artifact { return nil }

func (n *noopSpeechGenerator) Close() error { return nil }

// ----------------------------------------------------------------------
// Factory 関数
// ----------------------------------------------------------------------

// NewSpeechGenerator は設定からAPIクライアント・音声カタログ・Engineを組み立て、
// SpeechGeneratorインターフェースを実装した具象型を返します。
// ttsOutput が false の場合はダミーのGeneratorを返します (No-opパターン)。
func NewSpeechGenerator(ctx context.Context, cfg *config.Config, ttsOutput bool) (SpeechGenerator, error) {
	if !ttsOutput {
		slog.Info("音声生成機能は無効です。ダミーのGeneratorを返します。", "action", "skip_initialization")
		return &noopSpeechGenerator{}, nil
	}

	if cfg.API.Key == "" {
		return nil, &ErrMissingAPIKey{}
	}

	client := api.NewClient(cfg.API.BaseURL, cfg.API.Key, cfg.API.Timeout(),
		api.WithModelID(cfg.API.Model),
		api.WithRetryPolicy(cfg.API.InitialBackoff(), uint64(cfg.API.MaxAttempts)),
	)

	catalog := voice.NewCatalog(cfg.API.DefaultVoice)

	engine := NewEngine(client, catalog, EngineConfig{
		RequestInterval: cfg.API.RequestInterval(),
	})

	slog.InfoContext(ctx, "音声生成エンジンの初期化が完了しました。",
		"model", cfg.API.Model,
		"default_voice", catalog.Default().Name,
		"max_attempts", cfg.API.MaxAttempts)

	return engine, nil
}
