package azanvoice

import "time"

// ----------------------------------------------------------------------
// 生成処理定数
// ----------------------------------------------------------------------

const (
	// DefaultOutputFilename は生成物の推奨ファイル名です。
	DefaultOutputFilename = "azan-voice.wav"

	// DisplayCharLimit は入力テキストの表示用文字数カウンターの上限です。
	// ハードリミットではなく、超過してもコアは生成を拒否しません。
	DisplayCharLimit = 80000

	// DefaultRequestInterval は連続する生成リクエストの最小間隔です。
	DefaultRequestInterval = 1 * time.Second

	// noopSampleRate は無効化時のダミー生成で使用するサンプリングレートです。
	noopSampleRate = 24000
)
