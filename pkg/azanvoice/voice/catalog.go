package voice

import (
	"log/slog"
)

// ----------------------------------------------------------------------
// データモデル
// ----------------------------------------------------------------------

// Voice はプリビルト音声の1エントリです。
type Voice struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Catalog は音声名から音声エントリへの検索と、既定音声の解決を提供します。
// 構築後は読み取り専用です。
type Catalog struct {
	voices      []Voice
	index       map[string]Voice
	defaultName string
}

// ----------------------------------------------------------------------
// 構築と検索
// ----------------------------------------------------------------------

// NewCatalog はサポート音声一覧からカタログを構築します。
// defaultName が空、または一覧に存在しない場合は DefaultVoiceName を既定とします。
func NewCatalog(defaultName string) *Catalog {
	c := &Catalog{
		voices:      SupportedVoices,
		index:       make(map[string]Voice, len(SupportedVoices)),
		defaultName: DefaultVoiceName,
	}

	for _, v := range SupportedVoices {
		c.index[v.Name] = v
	}

	if defaultName != "" {
		if _, ok := c.index[defaultName]; ok {
			c.defaultName = defaultName
		} else {
			slog.Warn("既定音声がカタログに存在しないため、標準の既定音声を使用します。",
				"requested", defaultName,
				"fallback", DefaultVoiceName)
		}
	}

	return c
}

// All はサポート音声の一覧を返します。
func (c *Catalog) All() []Voice {
	return c.voices
}

// Default は既定の音声を返します。
func (c *Catalog) Default() Voice {
	return c.index[c.defaultName]
}

// Find は音声名でカタログを検索します。
func (c *Catalog) Find(name string) (Voice, bool) {
	v, ok := c.index[name]
	return v, ok
}

// Resolve は音声名を解決します。空文字の場合は既定音声を返し、
// 未知の音声名は ErrUnknownVoice を返します。
func (c *Catalog) Resolve(name string) (Voice, error) {
	if name == "" {
		return c.Default(), nil
	}

	v, ok := c.index[name]
	if !ok {
		return Voice{}, &ErrUnknownVoice{Name: name}
	}
	return v, nil
}
