package server

import (
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/AzanKhan68/voice-tool-azan/pkg/azanvoice"
	"github.com/AzanKhan68/voice-tool-azan/pkg/azanvoice/api"
	"github.com/AzanKhan68/voice-tool-azan/pkg/azanvoice/voice"
)

// ----------------------------------------------------------------------
// ハンドラー構造体とルート登録
// ----------------------------------------------------------------------

// Handler はUIページと音声生成APIを提供します。
// 生成は一度に1件のみ受け付け、飛行中に届いた2件目は 409 で拒否します。
type Handler struct {
	generator azanvoice.SpeechGenerator
	voices    *voice.Catalog
	metrics   *Metrics

	busy atomic.Bool
}

// NewHandler は新しい Handler を作成します。
func NewHandler(generator azanvoice.SpeechGenerator, voices *voice.Catalog, metrics *Metrics) *Handler {
	return &Handler{
		generator: generator,
		voices:    voices,
		metrics:   metrics,
	}
}

// Register は全ルートをfiberアプリに登録します。
func (h *Handler) Register(app *fiber.App) {
	app.Get("/", h.handleIndex)
	app.Get("/healthz", h.handleHealthz)
	app.Get("/api/voices", h.handleVoices)
	app.Post("/api/generate", h.handleGenerate)
	app.Get("/api/download", h.handleDownload)
}

// ----------------------------------------------------------------------
// リクエスト/レスポンス型
// ----------------------------------------------------------------------

type generateRequest struct {
	Text  string `json:"text"`
	Voice string `json:"voice"`
}

type generateResponse struct {
	AudioContent string `json:"audioContent"` // Base64エンコード済みWAV
	MimeType     string `json:"mimeType"`
	SampleRate   int    `json:"sampleRate"`
	Size         int    `json:"size"`
	Filename     string `json:"filename"`
}

type voicesResponse struct {
	Voices    []voice.Voice `json:"voices"`
	Default   string        `json:"default"`
	CharLimit int           `json:"charLimit"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// ----------------------------------------------------------------------
// ハンドラー実装
// ----------------------------------------------------------------------

func (h *Handler) handleIndex(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(indexPage)
}

func (h *Handler) handleHealthz(c *fiber.Ctx) error {
	return c.SendString("ok")
}

func (h *Handler) handleVoices(c *fiber.Ctx) error {
	return c.JSON(voicesResponse{
		Voices:    h.voices.All(),
		Default:   h.voices.Default().Name,
		CharLimit: azanvoice.DisplayCharLimit,
	})
}

func (h *Handler) handleGenerate(c *fiber.Ctx) error {
	// 生成は直列: ボタンが無効化されている間の2件目は拒否する
	if !h.busy.CompareAndSwap(false, true) {
		return h.fail(c, fiber.StatusConflict, "busy", errors.New("別の生成リクエストが処理中です"))
	}
	defer h.busy.Store(false)

	var req generateRequest
	if err := c.BodyParser(&req); err != nil {
		return h.fail(c, fiber.StatusBadRequest, "bad_request", fmt.Errorf("リクエストボディの解析に失敗しました: %w", err))
	}

	if cc := azanvoice.CountCharacters(req.Text); cc.Exceeded {
		slog.Warn("入力テキストが表示上限を超えています。そのまま処理を続行します。",
			"count", cc.Count, "limit", cc.Limit)
	}

	h.metrics.GenerationsInFlight.Inc()
	defer h.metrics.GenerationsInFlight.Dec()

	start := time.Now()
	artifact, err := h.generator.Generate(c.UserContext(), req.Text, req.Voice)
	if err != nil {
		kind, status := classifyError(err)
		h.metrics.GenerationFailures.WithLabelValues(kind).Inc()
		return h.fail(c, status, kind, err)
	}

	h.metrics.GenerationsTotal.Inc()
	h.metrics.GenerationDuration.Observe(time.Since(start).Seconds())
	h.countRequest(c.Path(), fiber.StatusOK)

	return c.JSON(generateResponse{
		AudioContent: base64.StdEncoding.EncodeToString(artifact.Data),
		MimeType:     artifact.MimeType,
		SampleRate:   artifact.SampleRate,
		Size:         len(artifact.Data),
		Filename:     artifact.Filename,
	})
}

func (h *Handler) handleDownload(c *fiber.Ctx) error {
	artifact := h.generator.LastArtifact()
	if artifact == nil || artifact.Released() {
		return h.fail(c, fiber.StatusNotFound, "not_found", errors.New("ダウンロード可能な生成物がありません"))
	}

	c.Set(fiber.HeaderContentType, artifact.MimeType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", artifact.Filename))
	h.countRequest(c.Path(), fiber.StatusOK)
	return c.Send(artifact.Data)
}

// ----------------------------------------------------------------------
// エラーマッピング
// ----------------------------------------------------------------------

// fail はエラー応答を返し、メトリクスとログを記録します。
func (h *Handler) fail(c *fiber.Ctx, status int, kind string, err error) error {
	slog.Warn("リクエストがエラーで終了しました。",
		"path", c.Path(),
		"status", status,
		"kind", kind,
		"error", err)
	h.countRequest(c.Path(), status)
	return c.Status(status).JSON(errorResponse{Error: err.Error()})
}

func (h *Handler) countRequest(path string, status int) {
	h.metrics.HTTPRequests.WithLabelValues(path, strconv.Itoa(status)).Inc()
}

// classifyError は生成エラーをメトリクス用の種別とHTTPステータスに対応付けます。
func classifyError(err error) (kind string, status int) {
	var emptyErr *azanvoice.ErrEmptyInput
	if errors.As(err, &emptyErr) {
		return "empty_input", fiber.StatusBadRequest
	}

	var unknownVoiceErr *voice.ErrUnknownVoice
	if errors.As(err, &unknownVoiceErr) {
		return "unknown_voice", fiber.StatusBadRequest
	}

	var exhaustedErr *api.ErrRateLimitExhausted
	if errors.As(err, &exhaustedErr) {
		return "rate_limit", fiber.StatusTooManyRequests
	}

	var netErr *api.ErrAPINetwork
	if errors.As(err, &netErr) {
		return "network", fiber.StatusGatewayTimeout
	}

	var apiErr *api.ErrAPIError
	if errors.As(err, &apiErr) {
		return "api", fiber.StatusBadGateway
	}

	var respErr *api.ErrAPIResponse
	if errors.As(err, &respErr) {
		return "api", fiber.StatusBadGateway
	}

	var malformedErr *api.ErrMalformedResponse
	if errors.As(err, &malformedErr) {
		return "malformed_response", fiber.StatusBadGateway
	}

	var jsonErr *api.ErrInvalidJSON
	if errors.As(err, &jsonErr) {
		return "malformed_response", fiber.StatusBadGateway
	}

	return "unexpected", http.StatusInternalServerError
}
