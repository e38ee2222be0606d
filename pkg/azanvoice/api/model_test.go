package api

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestParseSampleRate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		mimeType string
		want     int
		wantErr  bool
	}{
		{name: "L16 24kHz", mimeType: "audio/L16;rate=24000", want: 24000},
		{name: "codec=pcm パラメータ付き", mimeType: "audio/L16;codec=pcm;rate=16000", want: 16000},
		{name: "rate指定なし", mimeType: "audio/L16", wantErr: true},
		{name: "audio/以外", mimeType: "video/mp4;rate=24000", wantErr: true},
		{name: "空文字", mimeType: "", wantErr: true},
		{name: "rateが数値でない", mimeType: "audio/L16;rate=abc", wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseSampleRate(tt.mimeType)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseSampleRate(%q) error = nil, want error", tt.mimeType)
				}
				var malformedErr *ErrMalformedResponse
				if !errors.As(err, &malformedErr) {
					t.Errorf("error type = %T, want *ErrMalformedResponse", err)
				}
				return
			}

			if err != nil {
				t.Fatalf("ParseSampleRate(%q) error = %v", tt.mimeType, err)
			}
			if got != tt.want {
				t.Errorf("ParseSampleRate(%q) = %d, want %d", tt.mimeType, got, tt.want)
			}
		})
	}
}

func TestGenerateResponse_InlineAudio(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{
			name: "正常な応答",
			body: `{"candidates":[{"content":{"parts":[{"inlineData":{"mimeType":"audio/L16;rate=24000","data":"AAAA"}}]}}]}`,
		},
		{
			name:    "candidatesが空",
			body:    `{"candidates":[]}`,
			wantErr: true,
		},
		{
			name:    "contentがない",
			body:    `{"candidates":[{}]}`,
			wantErr: true,
		},
		{
			name:    "partsが空",
			body:    `{"candidates":[{"content":{"parts":[]}}]}`,
			wantErr: true,
		},
		{
			name:    "inlineDataがない",
			body:    `{"candidates":[{"content":{"parts":[{"text":"音声ではない"}]}}]}`,
			wantErr: true,
		},
		{
			name:    "mimeTypeがaudio/で始まらない",
			body:    `{"candidates":[{"content":{"parts":[{"inlineData":{"mimeType":"text/plain","data":"AAAA"}}]}}]}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var resp GenerateResponse
			if err := json.Unmarshal([]byte(tt.body), &resp); err != nil {
				t.Fatalf("テストデータのデコード失敗: %v", err)
			}

			inline, err := resp.InlineAudio()
			if tt.wantErr {
				if err == nil {
					t.Fatal("InlineAudio() error = nil, want error")
				}
				var malformedErr *ErrMalformedResponse
				if !errors.As(err, &malformedErr) {
					t.Errorf("error type = %T, want *ErrMalformedResponse", err)
				}
				return
			}

			if err != nil {
				t.Fatalf("InlineAudio() error = %v", err)
			}
			if inline.Data != "AAAA" {
				t.Errorf("inline.Data = %q, want %q", inline.Data, "AAAA")
			}
		})
	}
}

func TestNewGenerateRequest(t *testing.T) {
	t.Parallel()

	req := NewGenerateRequest("こんにちは", "Kore")

	if len(req.Contents) != 1 || len(req.Contents[0].Parts) != 1 {
		t.Fatalf("contents/parts の形が不正: %+v", req)
	}
	if got := req.Contents[0].Parts[0].Text; got != "Say: こんにちは" {
		t.Errorf("text = %q, want %q", got, "Say: こんにちは")
	}
	if got := req.GenerationConfig.ResponseModalities; len(got) != 1 || got[0] != ModalityAudio {
		t.Errorf("responseModalities = %v, want [%s]", got, ModalityAudio)
	}
	if got := req.GenerationConfig.SpeechConfig.VoiceConfig.PrebuiltVoiceConfig.VoiceName; got != "Kore" {
		t.Errorf("voiceName = %q, want %q", got, "Kore")
	}
}
