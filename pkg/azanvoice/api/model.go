package api

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ----------------------------------------------------------------------
// データモデル (APIリクエスト)
// ----------------------------------------------------------------------

// GenerateRequest は models/{model}:generateContent へのリクエストボディです。
type GenerateRequest struct {
	Contents         []Content        `json:"contents"`
	GenerationConfig GenerationConfig `json:"generationConfig"`
}

type Content struct {
	Parts []Part `json:"parts"`
}

type Part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *InlineData `json:"inlineData,omitempty"`
}

type GenerationConfig struct {
	ResponseModalities []string      `json:"responseModalities"`
	SpeechConfig       *SpeechConfig `json:"speechConfig,omitempty"`
}

type SpeechConfig struct {
	VoiceConfig VoiceConfig `json:"voiceConfig"`
}

type VoiceConfig struct {
	PrebuiltVoiceConfig PrebuiltVoiceConfig `json:"prebuiltVoiceConfig"`
}

type PrebuiltVoiceConfig struct {
	VoiceName string `json:"voiceName"`
}

// NewGenerateRequest は入力テキストを読み上げ指示で包み、指定音声での
// 音声出力を要求するリクエストボディを構築します。
func NewGenerateRequest(text string, voiceName string) *GenerateRequest {
	return &GenerateRequest{
		Contents: []Content{
			{Parts: []Part{{Text: PromptPrefix + text}}},
		},
		GenerationConfig: GenerationConfig{
			ResponseModalities: []string{ModalityAudio},
			SpeechConfig: &SpeechConfig{
				VoiceConfig: VoiceConfig{
					PrebuiltVoiceConfig: PrebuiltVoiceConfig{VoiceName: voiceName},
				},
			},
		},
	}
}

// ----------------------------------------------------------------------
// データモデル (API応答)
// ----------------------------------------------------------------------

// GenerateResponse は generateContent APIの応答構造の一部に対応する型です。
type GenerateResponse struct {
	Candidates []Candidate   `json:"candidates"`
	Error      *APIErrorBody `json:"error,omitempty"`
}

type Candidate struct {
	Content *Content `json:"content"`
}

// InlineData は応答に埋め込まれたBase64エンコード済み音声データです。
// MimeType は "audio/<codec>;rate=<sampleRate>" の形式を取ります。
type InlineData struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"`
}

// APIErrorBody はAPI応答のJSONに含まれる error フィールドの内容です。
type APIErrorBody struct {
	Code    int    `json:"code"`
	Status  string `json:"status"`
	Message string `json:"message"`
}

// InlineAudio は candidates[0].content.parts[0].inlineData のネストされた
// フィールドパスを明示的に検証しながら辿り、音声データを取り出します。
// 欠落や audio/ で始まらないmimeTypeは、それぞれ独立したエラー分岐として扱います。
func (r *GenerateResponse) InlineAudio() (*InlineData, error) {
	if len(r.Candidates) == 0 {
		return nil, &ErrMalformedResponse{Details: "candidates が空です"}
	}

	content := r.Candidates[0].Content
	if content == nil || len(content.Parts) == 0 {
		return nil, &ErrMalformedResponse{Details: "candidates[0].content.parts が見つかりません"}
	}

	inline := content.Parts[0].InlineData
	if inline == nil || inline.Data == "" {
		return nil, &ErrMalformedResponse{Details: "parts[0].inlineData に音声データがありません"}
	}

	if !strings.HasPrefix(inline.MimeType, "audio/") {
		return nil, &ErrMalformedResponse{
			Details: fmt.Sprintf("mimeType %q が audio/ で始まっていません", inline.MimeType),
		}
	}

	return inline, nil
}

// ----------------------------------------------------------------------
// mimeType 解析
// ----------------------------------------------------------------------

// mimeType 中のサンプリングレート指定: "audio/L16;rate=24000" など
var reMimeRate = regexp.MustCompile(`;\s*rate=(\d+)`)

// ParseSampleRate は "audio/...;rate=<digits>" 形式のmimeTypeから
// サンプリングレート (Hz) を抽出します。
func ParseSampleRate(mimeType string) (int, error) {
	if !strings.HasPrefix(mimeType, "audio/") {
		return 0, &ErrMalformedResponse{
			Details: fmt.Sprintf("mimeType %q が audio/ で始まっていません", mimeType),
		}
	}

	matches := reMimeRate.FindStringSubmatch(mimeType)
	if len(matches) < 2 {
		return 0, &ErrMalformedResponse{
			Details: fmt.Sprintf("mimeType %q に rate 指定が見つかりません", mimeType),
		}
	}

	rate, err := strconv.Atoi(matches[1])
	if err != nil || rate <= 0 {
		return 0, &ErrMalformedResponse{
			Details: fmt.Sprintf("mimeType %q の rate 指定が正の整数ではありません", mimeType),
		}
	}

	return rate, nil
}
