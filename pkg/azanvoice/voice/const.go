package voice

// ----------------------------------------------------------------------
// Gemini TTS プリビルト音声の一覧
// ----------------------------------------------------------------------

// DefaultVoiceName は音声指定がない場合に使用する既定の音声です。
const DefaultVoiceName = "Kore"

// SupportedVoices は、このツールがサポートするプリビルト音声の一覧です。
// Description はAPIドキュメントが示す音声の特徴をそのまま保持します。
var SupportedVoices = []Voice{
	{Name: "Zephyr", Description: "Bright"},
	{Name: "Puck", Description: "Upbeat"},
	{Name: "Charon", Description: "Informative"},
	{Name: "Kore", Description: "Firm"},
	{Name: "Fenrir", Description: "Excitable"},
	{Name: "Leda", Description: "Youthful"},
	{Name: "Orus", Description: "Firm"},
	{Name: "Aoede", Description: "Breezy"},
	{Name: "Callirrhoe", Description: "Easy-going"},
	{Name: "Autonoe", Description: "Bright"},
	{Name: "Enceladus", Description: "Breathy"},
	{Name: "Iapetus", Description: "Clear"},
	{Name: "Umbriel", Description: "Easy-going"},
	{Name: "Algieba", Description: "Smooth"},
	{Name: "Despina", Description: "Smooth"},
	{Name: "Erinome", Description: "Clear"},
	{Name: "Algenib", Description: "Gravelly"},
	{Name: "Rasalgethi", Description: "Informative"},
	{Name: "Laomedeia", Description: "Upbeat"},
	{Name: "Achernar", Description: "Soft"},
	{Name: "Alnilam", Description: "Firm"},
	{Name: "Schedar", Description: "Even"},
	{Name: "Gacrux", Description: "Mature"},
	{Name: "Pulcherrima", Description: "Forward"},
	{Name: "Achird", Description: "Friendly"},
	{Name: "Zubenelgenubi", Description: "Casual"},
	{Name: "Vindemiatrix", Description: "Gentle"},
	{Name: "Sadachbia", Description: "Lively"},
	{Name: "Sadaltager", Description: "Knowledgeable"},
	{Name: "Sulafat", Description: "Warm"},
}
