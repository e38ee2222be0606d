package voice

import (
	"errors"
	"testing"
)

func TestCatalog_Find(t *testing.T) {
	t.Parallel()

	c := NewCatalog("")

	v, ok := c.Find("Charon")
	if !ok {
		t.Fatal("Find(\"Charon\") ok = false, want true")
	}
	if v.Description != "Informative" {
		t.Errorf("Description = %q, want %q", v.Description, "Informative")
	}

	if _, ok := c.Find("存在しない音声"); ok {
		t.Error("Find(未知の音声) ok = true, want false")
	}
}

func TestCatalog_Resolve(t *testing.T) {
	t.Parallel()

	c := NewCatalog("")

	// 空文字は既定音声に解決される
	v, err := c.Resolve("")
	if err != nil {
		t.Fatalf("Resolve(\"\") error = %v", err)
	}
	if v.Name != DefaultVoiceName {
		t.Errorf("Resolve(\"\") = %q, want %q", v.Name, DefaultVoiceName)
	}

	// 未知の音声名は ErrUnknownVoice
	_, err = c.Resolve("Nonexistent")
	if err == nil {
		t.Fatal("Resolve(未知の音声) error = nil, want error")
	}
	var unknownErr *ErrUnknownVoice
	if !errors.As(err, &unknownErr) {
		t.Fatalf("error type = %T, want *ErrUnknownVoice", err)
	}
	if unknownErr.Name != "Nonexistent" {
		t.Errorf("ErrUnknownVoice.Name = %q, want %q", unknownErr.Name, "Nonexistent")
	}
}

func TestCatalog_DefaultOverride(t *testing.T) {
	t.Parallel()

	c := NewCatalog("Puck")
	if got := c.Default().Name; got != "Puck" {
		t.Errorf("Default() = %q, want %q", got, "Puck")
	}

	// カタログにない既定指定は標準の既定音声にフォールバック
	c = NewCatalog("Unknown")
	if got := c.Default().Name; got != DefaultVoiceName {
		t.Errorf("Default() = %q, want %q", got, DefaultVoiceName)
	}
}
