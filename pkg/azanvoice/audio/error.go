package audio

import "fmt"

// ErrInvalidBase64 はBase64テキストが標準アルファベットとして復号できないことを示します。
type ErrInvalidBase64 struct {
	WrappedErr error
}

func (e *ErrInvalidBase64) Error() string {
	return fmt.Sprintf("Base64データの復号に失敗しました: %v", e.WrappedErr)
}

func (e *ErrInvalidBase64) Unwrap() error {
	return e.WrappedErr
}

// ErrOddPCMData は生バイト列の長さが奇数で、16bitサンプル列として解釈できないことを示します。
type ErrOddPCMData struct {
	Length int
}

func (e *ErrOddPCMData) Error() string {
	return fmt.Sprintf("PCMデータ長 (%dバイト) が奇数のため、16bitサンプル列として解釈できません", e.Length)
}

// ErrInvalidSampleRate はサンプリングレートが正の整数でないことを示します。
type ErrInvalidSampleRate struct {
	Rate int
}

func (e *ErrInvalidSampleRate) Error() string {
	return fmt.Sprintf("サンプリングレートは正の整数である必要があります (指定値: %d)", e.Rate)
}

// ErrInvalidWAVHeader はWAVデータが短すぎる、または必須チャンクが見つからないなど、
// ヘッダーに問題があることを示します。
type ErrInvalidWAVHeader struct {
	Details string
}

func (e *ErrInvalidWAVHeader) Error() string {
	return fmt.Sprintf("WAVヘッダーが無効です: %s", e.Details)
}
