package azanvoice

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"golang.org/x/time/rate"

	"github.com/AzanKhan68/voice-tool-azan/pkg/azanvoice/api"
	"github.com/AzanKhan68/voice-tool-azan/pkg/azanvoice/audio"
	"github.com/AzanKhan68/voice-tool-azan/pkg/azanvoice/voice"
)

// Engine はテキスト→音声生成の全工程（API呼び出し、復号、WAVエンコード、
// 生成物のライフサイクル管理）を統括します。
type Engine struct {
	client  SynthesisClient
	voices  *voice.Catalog
	limiter *rate.Limiter
	config  EngineConfig

	// 生成は直列に実行される。同時に生存する生成物は常に1つまで。
	mu           sync.Mutex
	lastArtifact *Artifact
}

// EngineConfig は Engine の動作設定です。
type EngineConfig struct {
	RequestInterval time.Duration
}

// NewEngine は新しい Engine インスタンスを作成し、依存関係を注入します。
func NewEngine(client SynthesisClient, voices *voice.Catalog, config EngineConfig) *Engine {
	if config.RequestInterval == 0 {
		config.RequestInterval = DefaultRequestInterval
	}

	return &Engine{
		client:  client,
		voices:  voices,
		limiter: rate.NewLimiter(rate.Every(config.RequestInterval), 1),
		config:  config,
	}
}

// Voices は音声カタログを返します。
func (e *Engine) Voices() *voice.Catalog {
	return e.voices
}

// ----------------------------------------------------------------------
// メイン処理 (Generate メソッド)
// ----------------------------------------------------------------------

// Generate はテキストを音声合成し、WAV生成物を返します。
// 直前の生成物が残っている場合、新しい生成物に差し替える前に解放します。
func (e *Engine) Generate(ctx context.Context, text string, voiceName string) (*Artifact, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, &ErrEmptyInput{}
	}

	v, err := e.voices.Resolve(voiceName)
	if err != nil {
		return nil, err
	}

	// 生成は直列に実行する（同時に飛行中のリクエストは持たない）
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("リクエスト間隔の待機が中断されました: %w", err)
	}

	slog.InfoContext(ctx, "音声生成を開始します。",
		"voice", v.Name,
		"text_chars", utf8.RuneCountInString(trimmed))

	inline, err := e.client.GenerateSpeech(ctx, trimmed, v.Name)
	if err != nil {
		return nil, err
	}

	artifact, err := e.buildArtifact(inline)
	if err != nil {
		return nil, err
	}

	// 直前の生成物のハンドルを解放してから差し替える
	if e.lastArtifact != nil {
		if relErr := e.lastArtifact.Release(); relErr != nil {
			slog.WarnContext(ctx, "直前の生成物の解放に失敗しました。", "error", relErr)
		}
	}
	e.lastArtifact = artifact

	slog.InfoContext(ctx, "音声生成が完了しました。",
		"sample_rate", artifact.SampleRate,
		"wav_bytes", len(artifact.Data))

	return artifact, nil
}

// buildArtifact は応答の音声ペイロードを復号し、WAVコンテナへ詰め直します。
func (e *Engine) buildArtifact(inline *api.InlineData) (*Artifact, error) {
	sampleRate, err := api.ParseSampleRate(inline.MimeType)
	if err != nil {
		return nil, err
	}

	raw, err := audio.DecodeBase64(inline.Data)
	if err != nil {
		return nil, err
	}

	samples, err := audio.SamplesFromBytes(raw)
	if err != nil {
		return nil, err
	}

	wavBytes, err := audio.EncodeWAV(samples, sampleRate)
	if err != nil {
		return nil, err
	}

	return newArtifact(wavBytes, sampleRate)
}

// LastArtifact は直近の生成物を返します。未生成の場合は nil です。
func (e *Engine) LastArtifact() *Artifact {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.lastArtifact
}

// Close は保持している生成物を解放します。
func (e *Engine) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.lastArtifact == nil {
		return nil
	}

	err := e.lastArtifact.Release()
	e.lastArtifact = nil
	return err
}

// ----------------------------------------------------------------------
// 文字数カウンター (表示用、ハードリミットではない)
// ----------------------------------------------------------------------

// CharacterCount は入力テキストの文字数と表示上限の関係を表します。
type CharacterCount struct {
	Count    int  `json:"count"`
	Limit    int  `json:"limit"`
	Exceeded bool `json:"exceeded"`
}

// CountCharacters はテキストの文字数（ルーン数）を表示上限とともに返します。
func CountCharacters(text string) CharacterCount {
	n := utf8.RuneCountInString(text)
	return CharacterCount{
		Count:    n,
		Limit:    DisplayCharLimit,
		Exceeded: n > DisplayCharLimit,
	}
}
