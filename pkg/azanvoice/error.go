package azanvoice

// ErrEmptyInput はテキストが空（または空白のみ）で生成できないことを示します。
type ErrEmptyInput struct{}

func (e *ErrEmptyInput) Error() string {
	return "合成するテキストが入力されていません"
}

// ErrMissingAPIKey はAPIキーが設定されていないことを示します。
type ErrMissingAPIKey struct{}

func (e *ErrMissingAPIKey) Error() string {
	return "APIキーが設定されていません (環境変数 GEMINI_API_KEY を確認してください)"
}
