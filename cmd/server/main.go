package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/AzanKhan68/voice-tool-azan/pkg/azanvoice"
	"github.com/AzanKhan68/voice-tool-azan/pkg/azanvoice/config"
	"github.com/AzanKhan68/voice-tool-azan/pkg/azanvoice/server"
	"github.com/AzanKhan68/voice-tool-azan/pkg/azanvoice/voice"
)

const shutdownTimeout = 10 * time.Second

func main() {
	configPath := flag.String("config", "", "設定ファイル (YAML) のパス")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "設定の読み込みに失敗しました: %v\n", err)
		os.Exit(1)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.Logging.SlogLevel(),
	})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 1. 音声生成エンジンの組み立て
	generator, err := azanvoice.NewSpeechGenerator(ctx, cfg, true)
	if err != nil {
		slog.Error("音声生成エンジンの初期化に失敗しました。", "error", err)
		os.Exit(1)
	}
	defer generator.Close()

	// 2. メトリクスの登録
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	metrics := server.NewMetrics(registry)

	// 3. HTTPアプリケーションの構築
	app := fiber.New(fiber.Config{
		AppName:               "azan-voice",
		DisableStartupMessage: true,
	})
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		slog.Info("HTTPリクエスト",
			"method", c.Method(),
			"path", c.Path(),
			"status", c.Response().StatusCode(),
			"duration", time.Since(start).String(),
			"request_id", c.Locals(requestid.ConfigDefault.ContextKey))
		return err
	})

	handler := server.NewHandler(generator, voice.NewCatalog(cfg.API.DefaultVoice), metrics)
	handler.Register(app)

	// 4. 監視用リスナー (メトリクスはアプリ本体とは別ポートで公開)
	metricsMux := http.NewServeMux()
	metricsMux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	metricsSrv := &http.Server{
		Addr:    cfg.Server.MetricsAddress,
		Handler: metricsMux,
	}

	go func() {
		slog.Info("メトリクスサーバーを起動します。", "address", cfg.Server.MetricsAddress)
		if err := metricsSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("メトリクスサーバーが異常終了しました。", "error", err)
		}
	}()

	go func() {
		slog.Info("HTTPサーバーを起動します。", "address", cfg.Server.Address)
		if err := app.Listen(cfg.Server.Address); err != nil {
			slog.Error("HTTPサーバーが異常終了しました。", "error", err)
			stop()
		}
	}()

	// 5. シグナル待機とグレースフルシャットダウン
	<-ctx.Done()
	slog.Info("シャットダウンを開始します。")

	if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil {
		slog.Warn("HTTPサーバーの停止でエラーが発生しました。", "error", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := metricsSrv.Shutdown(shutdownCtx); err != nil {
		slog.Warn("メトリクスサーバーの停止でエラーが発生しました。", "error", err)
	}

	slog.Info("シャットダウンが完了しました。")
}
