package voice

import "fmt"

// ErrUnknownVoice は指定された音声名がカタログに存在しないことを示します。
type ErrUnknownVoice struct {
	Name string
}

func (e *ErrUnknownVoice) Error() string {
	return fmt.Sprintf("音声 %q はサポートされていません", e.Name)
}
