package audio

import (
	"encoding/base64"
	"encoding/binary"
	"fmt"
)

// ----------------------------------------------------------------------
// 公開ロジック
// ----------------------------------------------------------------------

// DecodeBase64 は標準アルファベット（パディングあり）のBase64テキストを復号し、
// 新しいバイト列を返します。副作用はありません。
func DecodeBase64(data string) ([]byte, error) {
	raw, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return nil, &ErrInvalidBase64{WrappedErr: err}
	}
	return raw, nil
}

// SamplesFromBytes は生バイト列をリトルエンディアンの16bit符号付きサンプル列として
// 解釈します。奇数長の入力は不正データとして扱い、切り捨てずにエラーを返します。
func SamplesFromBytes(raw []byte) ([]int16, error) {
	if len(raw)%BytesPerSample != 0 {
		return nil, &ErrOddPCMData{Length: len(raw)}
	}

	samples := make([]int16, len(raw)/BytesPerSample)
	for i := range samples {
		samples[i] = int16(binary.LittleEndian.Uint16(raw[i*BytesPerSample:]))
	}
	return samples, nil
}

// EncodeWAV はモノラル16bitリニアPCMのサンプル列から、44バイトの正規ヘッダーを持つ
// 完全なWAVファイル（バイトスライス）を生成します。
// サンプル値自体は検査しません（符号付き16bitの全範囲が有効）。
func EncodeWAV(samples []int16, sampleRate int) ([]byte, error) {
	if sampleRate <= 0 {
		return nil, &ErrInvalidSampleRate{Rate: sampleRate}
	}

	dataSize := len(samples) * BytesPerSample

	// RIFFチャンクサイズは (全体サイズ) - ("RIFF" + サイズフィールド)
	riffSize := dataSize + WavTotalHeaderSize - (RiffChunkIDSize + RiffChunkSizeSize)

	wav := make([]byte, WavTotalHeaderSize+dataSize)

	// RIFF ヘッダー (12バイト)
	copy(wav[0:RiffChunkIDSize], "RIFF")
	binary.LittleEndian.PutUint32(wav[RiffChunkSizeOffset:], uint32(riffSize))
	copy(wav[RiffChunkSizeOffset+RiffChunkSizeSize:FmtChunkOffset], "WAVE")

	// fmt チャンク (24バイト)
	copy(wav[FmtChunkOffset:FmtChunkSizeOffset], "fmt ")
	binary.LittleEndian.PutUint32(wav[FmtChunkSizeOffset:], uint32(WavFmtChunkSize-DataChunkHeaderSize)) // 16
	binary.LittleEndian.PutUint16(wav[AudioFormatOffset:], AudioFormatPCM)
	binary.LittleEndian.PutUint16(wav[NumChannelsOffset:], NumChannels)
	binary.LittleEndian.PutUint32(wav[SampleRateOffset:], uint32(sampleRate))
	binary.LittleEndian.PutUint32(wav[ByteRateOffset:], uint32(sampleRate*NumChannels*BytesPerSample))
	binary.LittleEndian.PutUint16(wav[BlockAlignOffset:], NumChannels*BytesPerSample)
	binary.LittleEndian.PutUint16(wav[BitsPerSampleOffset:], BitsPerSample)

	// data チャンク (8バイト + ペイロード)
	copy(wav[DataChunkOffset:DataChunkSizeOffset], "data")
	binary.LittleEndian.PutUint32(wav[DataChunkSizeOffset:], uint32(dataSize))

	for i, s := range samples {
		binary.LittleEndian.PutUint16(wav[WavTotalHeaderSize+i*BytesPerSample:], uint16(s))
	}

	return wav, nil
}

// ----------------------------------------------------------------------
// WAV メタデータ読み戻し
// ----------------------------------------------------------------------

// WAVInfo はエンコード済みWAVコンテナから読み戻した基本情報です。
type WAVInfo struct {
	SampleRate      uint32  `json:"sample_rate"`
	NumSamples      uint32  `json:"num_samples"`
	DataSize        uint32  `json:"data_size_bytes"`
	DurationSeconds float64 `json:"duration_seconds"`
}

// Info はWAVバイト列のヘッダーを検証し、メタデータを抽出します。
func Info(wavBytes []byte) (*WAVInfo, error) {
	if len(wavBytes) < WavTotalHeaderSize {
		return nil, &ErrInvalidWAVHeader{
			Details: fmt.Sprintf("WAVデータのサイズが短すぎます (%dバイト)", len(wavBytes)),
		}
	}

	if string(wavBytes[0:RiffChunkIDSize]) != "RIFF" {
		return nil, &ErrInvalidWAVHeader{Details: "RIFFチャンクIDが見つかりません"}
	}
	if string(wavBytes[FmtChunkOffset-WaveIDSize:FmtChunkOffset]) != "WAVE" {
		return nil, &ErrInvalidWAVHeader{Details: "WAVE識別子が見つかりません"}
	}
	if string(wavBytes[FmtChunkOffset:FmtChunkSizeOffset]) != "fmt " {
		return nil, &ErrInvalidWAVHeader{Details: "fmt チャンクが見つかりません"}
	}
	if string(wavBytes[DataChunkOffset:DataChunkSizeOffset]) != "data" {
		return nil, &ErrInvalidWAVHeader{Details: "dataチャンクが見つかりません"}
	}

	sampleRate := binary.LittleEndian.Uint32(wavBytes[SampleRateOffset:])
	if sampleRate == 0 {
		return nil, &ErrInvalidWAVHeader{Details: "サンプリングレートが0です"}
	}

	dataSize := binary.LittleEndian.Uint32(wavBytes[DataChunkSizeOffset:])
	numSamples := dataSize / BytesPerSample

	return &WAVInfo{
		SampleRate:      sampleRate,
		NumSamples:      numSamples,
		DataSize:        dataSize,
		DurationSeconds: float64(numSamples) / float64(sampleRate),
	}, nil
}
