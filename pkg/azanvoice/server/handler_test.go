package server

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/AzanKhan68/voice-tool-azan/pkg/azanvoice"
	"github.com/AzanKhan68/voice-tool-azan/pkg/azanvoice/api"
	"github.com/AzanKhan68/voice-tool-azan/pkg/azanvoice/audio"
	"github.com/AzanKhan68/voice-tool-azan/pkg/azanvoice/voice"
)

// stubGenerator は SpeechGenerator のテスト用実装です。
type stubGenerator struct {
	artifact *azanvoice.Artifact
	err      error
}

func (s *stubGenerator) Generate(ctx context.Context, text string, voiceName string) (*azanvoice.Artifact, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.artifact, nil
}

func (s *stubGenerator) LastArtifact() *azanvoice.Artifact { return s.artifact }

func (s *stubGenerator) Close() error { return nil }

func newTestApp(t *testing.T, gen azanvoice.SpeechGenerator) *fiber.App {
	t.Helper()

	app := fiber.New()
	h := NewHandler(gen, voice.NewCatalog(""), NewMetrics(prometheus.NewRegistry()))
	h.Register(app)
	return app
}

func testArtifact(t *testing.T) *azanvoice.Artifact {
	t.Helper()

	wavBytes, err := audio.EncodeWAV([]int16{1, 2, 3, 4}, 24000)
	if err != nil {
		t.Fatal(err)
	}
	return &azanvoice.Artifact{
		Filename:   "azan-voice.wav",
		MimeType:   "audio/wav",
		SampleRate: 24000,
		Data:       wavBytes,
	}
}

func postGenerate(t *testing.T, app *fiber.App, body string) (int, []byte) {
	t.Helper()

	req := httptest.NewRequest("POST", "/api/generate", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("応答ボディの読み取り失敗: %v", err)
	}
	return resp.StatusCode, data
}

func TestHandleHealthz(t *testing.T) {
	app := newTestApp(t, &stubGenerator{})

	resp, err := app.Test(httptest.NewRequest("GET", "/healthz", nil))
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
}

func TestHandleVoices(t *testing.T) {
	app := newTestApp(t, &stubGenerator{})

	resp, err := app.Test(httptest.NewRequest("GET", "/api/voices", nil))
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var body voicesResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("応答のデコード失敗: %v", err)
	}

	if len(body.Voices) != len(voice.SupportedVoices) {
		t.Errorf("voices count = %d, want %d", len(body.Voices), len(voice.SupportedVoices))
	}
	if body.Default != voice.DefaultVoiceName {
		t.Errorf("default = %q, want %q", body.Default, voice.DefaultVoiceName)
	}
	if body.CharLimit != azanvoice.DisplayCharLimit {
		t.Errorf("charLimit = %d, want %d", body.CharLimit, azanvoice.DisplayCharLimit)
	}
}

func TestHandleGenerate_Success(t *testing.T) {
	artifact := testArtifact(t)
	app := newTestApp(t, &stubGenerator{artifact: artifact})

	status, respBody := postGenerate(t, app, `{"text":"アザーン","voice":"Kore"}`)
	if status != fiber.StatusOK {
		t.Fatalf("status = %d, want 200 (body: %s)", status, respBody)
	}

	var body generateResponse
	if err := json.Unmarshal(respBody, &body); err != nil {
		t.Fatalf("応答のデコード失敗: %v", err)
	}

	decoded, err := base64.StdEncoding.DecodeString(body.AudioContent)
	if err != nil {
		t.Fatalf("audioContentの復号失敗: %v", err)
	}
	if !bytes.Equal(decoded, artifact.Data) {
		t.Error("audioContent がWAVデータと一致しません")
	}
	if body.Filename != "azan-voice.wav" {
		t.Errorf("filename = %q, want %q", body.Filename, "azan-voice.wav")
	}
	if body.SampleRate != 24000 {
		t.Errorf("sampleRate = %d, want 24000", body.SampleRate)
	}
	if body.Size != len(artifact.Data) {
		t.Errorf("size = %d, want %d", body.Size, len(artifact.Data))
	}
}

func TestHandleGenerate_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "空入力", err: &azanvoice.ErrEmptyInput{}, wantStatus: fiber.StatusBadRequest},
		{name: "未知の音声", err: &voice.ErrUnknownVoice{Name: "X"}, wantStatus: fiber.StatusBadRequest},
		{name: "レート制限", err: &api.ErrRateLimitExhausted{Attempts: 5}, wantStatus: fiber.StatusTooManyRequests},
		{name: "通信エラー", err: &api.ErrAPINetwork{Endpoint: "/x"}, wantStatus: fiber.StatusGatewayTimeout},
		{name: "APIエラー", err: &api.ErrAPIError{Code: 400}, wantStatus: fiber.StatusBadGateway},
		{name: "不正な応答", err: &api.ErrMalformedResponse{Details: "x"}, wantStatus: fiber.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApp(t, &stubGenerator{err: tt.err})

			status, respBody := postGenerate(t, app, `{"text":"テスト"}`)
			if status != tt.wantStatus {
				t.Errorf("status = %d, want %d", status, tt.wantStatus)
			}

			var body errorResponse
			if err := json.Unmarshal(respBody, &body); err != nil {
				t.Fatalf("応答のデコード失敗: %v", err)
			}
			if body.Error == "" {
				t.Error("error メッセージが空です")
			}
		})
	}
}

func TestHandleDownload(t *testing.T) {
	artifact := testArtifact(t)
	app := newTestApp(t, &stubGenerator{artifact: artifact})

	resp, err := app.Test(httptest.NewRequest("GET", "/api/download", nil))
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	if got := resp.Header.Get(fiber.HeaderContentDisposition); got != `attachment; filename="azan-voice.wav"` {
		t.Errorf("Content-Disposition = %q", got)
	}

	data, _ := io.ReadAll(resp.Body)
	if !bytes.Equal(data, artifact.Data) {
		t.Error("ダウンロード内容がWAVデータと一致しません")
	}
}

func TestHandleDownload_NoArtifact(t *testing.T) {
	app := newTestApp(t, &stubGenerator{})

	resp, err := app.Test(httptest.NewRequest("GET", "/api/download", nil))
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	if resp.StatusCode != fiber.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}
}
