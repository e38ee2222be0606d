package azanvoice

import (
	"context"

	"github.com/AzanKhan68/voice-tool-azan/pkg/azanvoice/api"
)

// ----------------------------------------------------------------------
// インターフェース
// ----------------------------------------------------------------------

// SpeechGenerator は、テキストからWAV生成物を作るための契約を定義します。
// 生成物のライフサイクル（直前の生成物の解放）は実装側が管理します。
type SpeechGenerator interface {
	// Generate はテキストを音声合成し、WAV生成物を返します。
	// voiceName が空の場合は既定音声を使用します。
	Generate(ctx context.Context, text string, voiceName string) (*Artifact, error)

	// LastArtifact は直近の生成物を返します。未生成の場合は nil です。
	LastArtifact() *Artifact

	// Close は保持している生成物を解放します。
	Close() error
}

// SynthesisClient は Engine が必要とするAPI呼び出しインターフェースです。
type SynthesisClient interface {
	GenerateSpeech(ctx context.Context, text string, voiceName string) (*api.InlineData, error)
}
