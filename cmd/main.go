package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/AzanKhan68/voice-tool-azan/pkg/azanvoice"
	"github.com/AzanKhan68/voice-tool-azan/pkg/azanvoice/config"
)

func main() {
	configPath := flag.String("config", "", "設定ファイル (YAML) のパス")
	text := flag.String("text", "", "読み上げるテキスト")
	voiceName := flag.String("voice", "", "使用する音声名 (省略時は既定音声)")
	outputPath := flag.String("o", "", "出力WAVファイルのパス (省略時は設定値)")
	flag.Parse()

	// 設定のロード
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "設定の読み込みに失敗しました: %v\n", err)
		os.Exit(1)
	}

	// ログ設定
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.Logging.SlogLevel(),
	})))

	// 入力テキスト: -text フラグ、なければ残余引数を結合
	inputText := *text
	if inputText == "" {
		inputText = strings.Join(flag.Args(), " ")
	}

	// 表示用カウンター (ハードリミットではない)
	if cc := azanvoice.CountCharacters(inputText); cc.Exceeded {
		slog.Warn("入力テキストが表示上限を超えています。そのまま処理を続行します。",
			"count", cc.Count, "limit", cc.Limit)
	}

	ctx := context.Background()

	slog.Info("音声生成エンジンの初期化を開始します...")

	generator, err := azanvoice.NewSpeechGenerator(ctx, cfg, true)
	if err != nil {
		slog.Error("音声生成エンジンの初期化に失敗しました。", "error", err)
		slog.Error("APIキー (GEMINI_API_KEY) が設定されているか確認してください。")
		os.Exit(1)
	}
	defer generator.Close()

	// 音声合成の実行
	output := *outputPath
	if output == "" {
		output = cfg.Output.Path
	}
	slog.Info("音声合成処理を開始します。", "output", output)

	artifact, err := generator.Generate(ctx, inputText, *voiceName)
	if err != nil {
		slog.Error("音声合成の実行に失敗しました。", "error", err)
		os.Exit(1)
	}

	if err := artifact.SaveTo(output); err != nil {
		slog.Error("WAVファイルの書き込みに失敗しました。", "error", err)
		os.Exit(1)
	}

	absPath, _ := filepath.Abs(output)
	slog.Info(fmt.Sprintf("✅ 音声合成が正常に完了しました。ファイル: %s", absPath),
		"sample_rate", artifact.SampleRate,
		"bytes", len(artifact.Data))
}
