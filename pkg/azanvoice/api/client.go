package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// ----------------------------------------------------------------------
// クライアント構造体とコンストラクタ
// ----------------------------------------------------------------------

// Client はGemini TTS APIへのリクエストを処理するクライアントです。
// HTTP 429 のみを指数バックオフで再試行し、それ以外のエラーは即時に返します。
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	modelID    string

	maxAttempts    uint64
	initialBackoff time.Duration
	timer          backoff.Timer // テストで待機を仮想化するために差し替え可能
}

// Option は Client の構築オプションです。
type Option func(*Client)

// WithHTTPClient はカスタムのHTTPクライアントを設定します。
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithModelID は使用するTTSモデルを設定します。
func WithModelID(modelID string) Option {
	return func(c *Client) {
		if modelID != "" {
			c.modelID = modelID
		}
	}
}

// WithRetryPolicy はレート制限リトライの初期待機時間と最大試行回数を設定します。
func WithRetryPolicy(initial time.Duration, maxAttempts uint64) Option {
	return func(c *Client) {
		if initial > 0 {
			c.initialBackoff = initial
		}
		if maxAttempts > 0 {
			c.maxAttempts = maxAttempts
		}
	}
}

// WithBackoffTimer はリトライ待機に使うタイマーを差し替えます（テスト用）。
func WithBackoffTimer(t backoff.Timer) Option {
	return func(c *Client) {
		c.timer = t
	}
}

// NewClient は新しいClientインスタンスを初期化します。
func NewClient(baseURL string, apiKey string, timeout time.Duration, opts ...Option) *Client {
	c := &Client{
		httpClient:     &http.Client{Timeout: timeout},
		baseURL:        baseURL,
		apiKey:         apiKey,
		modelID:        DefaultModelID,
		maxAttempts:    DefaultMaxAttempts,
		initialBackoff: DefaultInitialBackoff,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// ----------------------------------------------------------------------
// ヘルパー: API URLの構築
// ----------------------------------------------------------------------

// buildURL はベースURLとエンドポイントを結合し、APIキーを付与します。
func (c *Client) buildURL(endpoint string) (*url.URL, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, &ErrAPINetwork{Endpoint: endpoint, WrappedErr: fmt.Errorf("API URLのパース失敗: %w", err)}
	}

	u.Path, err = url.JoinPath(u.Path, endpoint)
	if err != nil {
		return nil, &ErrAPINetwork{Endpoint: endpoint, WrappedErr: fmt.Errorf("エンドポイント結合失敗: %w", err)}
	}

	q := u.Query()
	q.Set("key", c.apiKey)
	u.RawQuery = q.Encode()

	return u, nil
}

// ----------------------------------------------------------------------
// API呼び出しロジック
// ----------------------------------------------------------------------

// GenerateSpeech は generateContent APIを呼び出し、応答に埋め込まれた
// Base64エンコード済み音声データを返します。
// HTTP 429 は initialBackoff から倍々の間隔で maxAttempts 回まで再試行し、
// それでも失敗した場合は ErrRateLimitExhausted を返します。
func (c *Client) GenerateSpeech(ctx context.Context, text string, voiceName string) (*InlineData, error) {
	endpoint := fmt.Sprintf("/models/%s:generateContent", c.modelID)

	u, err := c.buildURL(endpoint)
	if err != nil {
		return nil, err
	}

	reqBody, err := json.Marshal(NewGenerateRequest(text, voiceName))
	if err != nil {
		return nil, fmt.Errorf("リクエストボディの構築失敗: %w", err)
	}

	operation := func() (*InlineData, error) {
		return c.doGenerate(ctx, endpoint, u.String(), reqBody)
	}

	notify := func(opErr error, wait time.Duration) {
		slog.WarnContext(ctx, "APIがレート制限を返しました。待機後に再試行します。",
			"endpoint", endpoint,
			"wait", wait.String(),
			"error", opErr)
	}

	inline, err := backoff.RetryNotifyWithTimerAndData(operation, c.newBackOff(ctx), notify, c.timer)
	if err != nil {
		var respErr *ErrAPIResponse
		if errors.As(err, &respErr) && respErr.StatusCode == http.StatusTooManyRequests {
			return nil, &ErrRateLimitExhausted{Attempts: c.maxAttempts, WrappedErr: err}
		}
		return nil, err
	}

	return inline, nil
}

// doGenerate は単一のHTTPリクエストを実行し、応答を検証します。
// 再試行対象 (429) 以外の失敗はすべて backoff.Permanent で包んで即時に確定させます。
func (c *Client) doGenerate(ctx context.Context, endpoint string, requestURL string, reqBody []byte) (*InlineData, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, requestURL, bytes.NewReader(reqBody))
	if err != nil {
		return nil, backoff.Permanent(&ErrAPINetwork{Endpoint: endpoint, WrappedErr: fmt.Errorf("リクエスト構築失敗: %w", err)})
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, backoff.Permanent(&ErrAPINetwork{Endpoint: endpoint, WrappedErr: err})
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, backoff.Permanent(&ErrAPINetwork{Endpoint: endpoint, WrappedErr: fmt.Errorf("応答ボディの読み取り失敗: %w", err)})
	}

	if resp.StatusCode == http.StatusTooManyRequests {
		// 429 のみ再試行対象
		return nil, &ErrAPIResponse{Endpoint: endpoint, StatusCode: resp.StatusCode, Body: string(bodyBytes)}
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, backoff.Permanent(&ErrAPIResponse{Endpoint: endpoint, StatusCode: resp.StatusCode, Body: string(bodyBytes)})
	}

	var gr GenerateResponse
	if err := json.Unmarshal(bodyBytes, &gr); err != nil {
		return nil, backoff.Permanent(&ErrInvalidJSON{Details: endpoint + " 応答JSONのデコード", WrappedErr: err})
	}

	if gr.Error != nil {
		return nil, backoff.Permanent(&ErrAPIError{Code: gr.Error.Code, Status: gr.Error.Status, Message: gr.Error.Message})
	}

	inline, err := gr.InlineAudio()
	if err != nil {
		return nil, backoff.Permanent(err)
	}

	return inline, nil
}

// newBackOff は決定的（ジッターなし）な指数バックオフポリシーを構築します。
func (c *Client) newBackOff(ctx context.Context) backoff.BackOffContext {
	eb := backoff.NewExponentialBackOff()
	eb.InitialInterval = c.initialBackoff
	eb.Multiplier = BackoffMultiplier
	eb.RandomizationFactor = 0
	eb.MaxInterval = time.Hour
	eb.MaxElapsedTime = 0

	// maxAttempts は初回を含むため、リトライ回数は maxAttempts - 1
	return backoff.WithContext(backoff.WithMaxRetries(eb, c.maxAttempts-1), ctx)
}
