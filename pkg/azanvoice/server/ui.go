package server

// indexPage は配信するUIページです。
// 文字数カウンターは表示専用で、超過しても送信自体は妨げません。
// 再生URLは新しい生成のたびに直前のURLを解放してから作り直します。
const indexPage = `<!DOCTYPE html>
<html lang="ja">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>azan-voice</title>
<style>
  body { font-family: sans-serif; max-width: 720px; margin: 2rem auto; padding: 0 1rem; }
  textarea { width: 100%; height: 10rem; }
  .counter { color: #666; font-size: 0.85rem; text-align: right; }
  .hidden { display: none; }
  .fade-in { animation: fadeIn 0.4s ease-in; }
  @keyframes fadeIn { from { opacity: 0; } to { opacity: 1; } }
  #error { color: #b00020; }
  #thanks { color: #2e7d32; }
</style>
</head>
<body>
<h1>azan-voice</h1>

<textarea id="text" placeholder="読み上げるテキストを入力してください"></textarea>
<div class="counter"><span id="charCount">0</span> / 80,000</div>

<label>音声:
  <select id="voice"></select>
</label>
<button id="generate">生成</button>

<p id="loading" class="hidden">生成中...</p>
<p id="error" class="hidden"></p>
<p id="thanks" class="hidden">ご利用ありがとうございます。</p>

<div id="player" class="hidden">
  <audio id="audio" controls></audio>
  <a id="download">ダウンロード</a>
</div>

<script>
const textEl = document.getElementById('text');
const voiceEl = document.getElementById('voice');
const generateEl = document.getElementById('generate');
const loadingEl = document.getElementById('loading');
const errorEl = document.getElementById('error');
const thanksEl = document.getElementById('thanks');
const playerEl = document.getElementById('player');
const audioEl = document.getElementById('audio');
const downloadEl = document.getElementById('download');

let lastAudioURL = null;

textEl.addEventListener('input', () => {
  document.getElementById('charCount').textContent =
    [...textEl.value].length.toLocaleString();
});

fetch('/api/voices')
  .then(r => r.json())
  .then(data => {
    for (const v of data.voices) {
      const opt = document.createElement('option');
      opt.value = v.name;
      opt.textContent = v.name + ' — ' + v.description;
      if (v.name === data.default) opt.selected = true;
      voiceEl.appendChild(opt);
    }
  });

generateEl.addEventListener('click', async () => {
  generateEl.disabled = true;
  loadingEl.classList.remove('hidden');
  errorEl.classList.add('hidden');
  thanksEl.classList.add('hidden');

  try {
    const resp = await fetch('/api/generate', {
      method: 'POST',
      headers: { 'Content-Type': 'application/json' },
      body: JSON.stringify({ text: textEl.value, voice: voiceEl.value }),
    });
    const body = await resp.json();
    if (!resp.ok) {
      throw new Error(body.error || 'HTTP ' + resp.status);
    }

    const bytes = Uint8Array.from(atob(body.audioContent), c => c.charCodeAt(0));
    const blob = new Blob([bytes], { type: body.mimeType });

    // 直前の再生URLを解放してから新しいURLを作る
    if (lastAudioURL) {
      URL.revokeObjectURL(lastAudioURL);
    }
    lastAudioURL = URL.createObjectURL(blob);

    audioEl.src = lastAudioURL;
    downloadEl.href = lastAudioURL;
    downloadEl.download = body.filename;
    playerEl.classList.remove('hidden');
    playerEl.classList.add('fade-in');
    thanksEl.classList.remove('hidden');
  } catch (err) {
    errorEl.textContent = 'エラー: ' + err.message;
    errorEl.classList.remove('hidden');
  } finally {
    // どの終了経路でも必ずボタンを再有効化し、ローディング表示を隠す
    generateEl.disabled = false;
    loadingEl.classList.add('hidden');
  }
});
</script>
</body>
</html>
`
