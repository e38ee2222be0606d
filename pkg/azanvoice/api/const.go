package api

import "time"

// ----------------------------------------------------------------------
// Gemini API 定数
// ----------------------------------------------------------------------

const (
	// DefaultAPIBaseURL はGemini REST APIのベースURLです。
	DefaultAPIBaseURL = "https://generativelanguage.googleapis.com/v1beta"

	// DefaultModelID は音声出力に対応したデフォルトのTTSモデルです。
	DefaultModelID = "gemini-2.5-flash-preview-tts"

	// PromptPrefix は入力テキストを読み上げ指示として包むための接頭辞です。
	PromptPrefix = "Say: "

	// ModalityAudio は generationConfig.responseModalities に指定する音声出力の識別子です。
	ModalityAudio = "AUDIO"
)

// ----------------------------------------------------------------------
// リトライポリシー定数 (429 のみ再試行)
// ----------------------------------------------------------------------

const (
	// DefaultMaxAttempts はレート制限時の最大試行回数（初回を含む）です。
	DefaultMaxAttempts = 5

	// DefaultInitialBackoff は初回リトライまでの待機時間です。以降は倍々に延びます。
	DefaultInitialBackoff = 1000 * time.Millisecond

	// BackoffMultiplier はリトライ間隔の倍率です。
	BackoffMultiplier = 2.0
)
