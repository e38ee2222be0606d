package audio

// ----------------------------------------------------------------------
// WAV ファイル定数
// ----------------------------------------------------------------------

const (
	// RIFF 構造の必須サイズ定数
	RiffChunkIDSize   = 4 // "RIFF" チャンクIDのサイズ
	RiffChunkSizeSize = 4 // ファイルサイズフィールドのサイズ
	WaveIDSize        = 4 // "WAVE" 識別子のサイズ

	// データチャンクの必須サイズ定数
	DataChunkIDSize   = 4 // "data" チャンクIDのサイズ
	DataChunkSizeSize = 4 // データサイズフィールドのサイズ
)

const (
	// 必須複合サイズ (ロジックで利用)
	DataChunkHeaderSize = DataChunkIDSize + DataChunkSizeSize              // "data"チャンクヘッダーの合計サイズ (8バイト)
	WavRiffHeaderSize   = RiffChunkIDSize + RiffChunkSizeSize + WaveIDSize // RIFFヘッダーの合計サイズ (12バイト)
	WavFmtChunkSize     = 24                                               // "fmt " + サイズフィールド + フォーマット本体 (24バイト)
	WavTotalHeaderSize  = WavRiffHeaderSize + WavFmtChunkSize + DataChunkHeaderSize // 44バイト
)

const (
	// 必須オフセット (ロジックで利用)
	RiffChunkSizeOffset = RiffChunkIDSize                     // RIFFチャンクサイズが書き込まれる位置 (4)
	FmtChunkOffset      = WavRiffHeaderSize                   // "fmt " チャンクの開始位置 (12)
	FmtChunkSizeOffset  = FmtChunkOffset + 4                  // fmtチャンクサイズが書き込まれる位置 (16)
	AudioFormatOffset   = 20                                  // オーディオフォーマット (PCM=1) の位置
	NumChannelsOffset   = 22                                  // チャンネル数の位置
	SampleRateOffset    = 24                                  // サンプリングレートの位置
	ByteRateOffset      = 28                                  // バイトレートの位置
	BlockAlignOffset    = 32                                  // ブロックアラインの位置
	BitsPerSampleOffset = 34                                  // ビット深度の位置
	DataChunkOffset     = WavRiffHeaderSize + WavFmtChunkSize // "data" チャンクの開始位置 (36)
	DataChunkSizeOffset = DataChunkOffset + DataChunkIDSize   // dataチャンクのサイズが書き込まれる位置 (40)
)

// ----------------------------------------------------------------------
// PCM フォーマット定数 (モノラル 16bit リニアPCM 固定)
// ----------------------------------------------------------------------

const (
	AudioFormatPCM = 1  // 無圧縮リニアPCM
	NumChannels    = 1  // モノラル
	BitsPerSample  = 16 // 16bit 符号付き
	BytesPerSample = BitsPerSample / 8
)
