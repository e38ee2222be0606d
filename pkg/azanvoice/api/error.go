package api

import (
	"fmt"
)

// ErrAPINetwork はAPI呼び出しにおける通信エラーを示すカスタムエラー型です。
type ErrAPINetwork struct {
	Endpoint   string
	WrappedErr error
}

func (e *ErrAPINetwork) Error() string {
	return fmt.Sprintf("API通信エラー (%s): %v", e.Endpoint, e.WrappedErr)
}

func (e *ErrAPINetwork) Unwrap() error {
	return e.WrappedErr
}

// ErrAPIResponse はAPIが 4xx や 5xx などの異常なステータスコードを返したことを示します。
type ErrAPIResponse struct {
	Endpoint   string
	StatusCode int
	Body       string
}

func (e *ErrAPIResponse) Error() string {
	// 応答ボディが長すぎる場合は切り詰める
	bodyDisplay := e.Body
	if len(bodyDisplay) > 100 {
		bodyDisplay = bodyDisplay[:100] + "..."
	}
	return fmt.Sprintf("API応答エラー (%s)。ステータスコード %d: %s", e.Endpoint, e.StatusCode, bodyDisplay)
}

// ErrRateLimitExhausted はHTTP 429を規定回数リトライしても成功しなかったことを示します。
type ErrRateLimitExhausted struct {
	Attempts   uint64
	WrappedErr error
}

func (e *ErrRateLimitExhausted) Error() string {
	return fmt.Sprintf("レート制限により %d 回の試行がすべて失敗しました: %v", e.Attempts, e.WrappedErr)
}

func (e *ErrRateLimitExhausted) Unwrap() error {
	return e.WrappedErr
}

// ErrAPIError はAPI応答のJSONボディが error フィールドを含んでいたことを示します。
type ErrAPIError struct {
	Code    int
	Status  string
	Message string
}

func (e *ErrAPIError) Error() string {
	return fmt.Sprintf("APIがエラーを報告しました (code=%d, status=%s): %s", e.Code, e.Status, e.Message)
}

// ErrMalformedResponse はAPI応答に必要な音声フィールドが欠けている、
// またはmimeTypeが期待形式でないことを示します。
type ErrMalformedResponse struct {
	Details string
}

func (e *ErrMalformedResponse) Error() string {
	return fmt.Sprintf("API応答の形式が不正です: %s", e.Details)
}

// ErrInvalidJSON はAPI応答が期待されるJSON形式でなかったことを示します。
type ErrInvalidJSON struct {
	Details    string
	WrappedErr error
}

func (e *ErrInvalidJSON) Error() string {
	return fmt.Sprintf("不正なJSONデータ: %s (詳細: %v)", e.Details, e.WrappedErr)
}

func (e *ErrInvalidJSON) Unwrap() error {
	return e.WrappedErr
}
