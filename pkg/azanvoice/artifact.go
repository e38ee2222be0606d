package azanvoice

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// ----------------------------------------------------------------------
// 生成物 (Artifact)
// ----------------------------------------------------------------------

// Artifact は1回の生成で得られた完全なWAVファイルを表します。
// 一時ファイルのハンドルを1つ保持し、Release で明示的に解放します。
type Artifact struct {
	Filename   string
	MimeType   string
	SampleRate int
	Data       []byte

	mu       sync.Mutex
	tempPath string
	released bool
}

// newArtifact はWAVバイト列を一時ファイルに書き出し、生成物として包みます。
func newArtifact(wavBytes []byte, sampleRate int) (*Artifact, error) {
	f, err := os.CreateTemp("", "azan-voice-*.wav")
	if err != nil {
		return nil, fmt.Errorf("一時ファイルの作成に失敗しました: %w", err)
	}

	if _, err := f.Write(wavBytes); err != nil {
		f.Close()
		os.Remove(f.Name())
		return nil, fmt.Errorf("一時ファイルへの書き込みに失敗しました: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return nil, fmt.Errorf("一時ファイルのクローズに失敗しました: %w", err)
	}

	return &Artifact{
		Filename:   DefaultOutputFilename,
		MimeType:   "audio/wav",
		SampleRate: sampleRate,
		Data:       wavBytes,
		tempPath:   f.Name(),
	}, nil
}

// TempPath は生成物を保持する一時ファイルのパスを返します。
// 解放済みの場合は空文字を返します。
func (a *Artifact) TempPath() string {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.released {
		return ""
	}
	return a.tempPath
}

// Released は生成物が解放済みかどうかを返します。
func (a *Artifact) Released() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.released
}

// Release は一時ファイルを削除し、ハンドルを解放します。冪等です。
func (a *Artifact) Release() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.released {
		return nil
	}
	a.released = true

	if a.tempPath == "" {
		return nil
	}

	if err := os.Remove(a.tempPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("一時ファイルの削除に失敗しました (%s): %w", a.tempPath, err)
	}
	return nil
}

// SaveTo はWAVデータを指定パスに書き出します。親ディレクトリがなければ作成します。
func (a *Artifact) SaveTo(path string) error {
	dir := filepath.Dir(path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("出力ディレクトリの作成に失敗しました (%s): %w", dir, err)
		}
	}

	return os.WriteFile(path, a.Data, 0644)
}
