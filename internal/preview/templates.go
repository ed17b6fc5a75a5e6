package preview

import "html/template"

// The HTML card mirrors the mini-app's own preview styling so the frame
// image and the web UI read as one product.
var htmlTmpl = template.Must(template.New("card.html").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
{{- if .IsEmpty}}
<style>
  body {
    margin: 0;
    padding: 0;
    width: {{.Width}}px;
    height: {{.Height}}px;
    background: linear-gradient(135deg, #8b5cf6 0%, #3b82f6 50%, #14b8a6 100%);
    font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', sans-serif;
    display: flex;
    flex-direction: column;
    justify-content: center;
    align-items: center;
    text-align: center;
    color: white;
  }
  .title { font-size: 48px; font-weight: bold; margin-bottom: 20px; }
  .subtitle { font-size: 24px; margin-bottom: 15px; opacity: 0.9; }
  .instruction { font-size: 18px; margin-bottom: 10px; opacity: 0.8; }
  .detail { font-size: 16px; opacity: 0.7; }
</style>
</head>
<body>
  <div class="title">🏰 CastKeepr</div>
  <div class="subtitle">📭 No saved casts yet</div>
  <div class="instruction">Reply "@infinitehomie save this" to any cast</div>
  <div class="detail">to start building your collection</div>
</body>
</html>
{{- else}}
<style>
  body {
    margin: 0;
    padding: 20px;
    width: {{.Width}}px;
    height: {{.Height}}px;
    background: linear-gradient(135deg, #8b5cf6 0%, #3b82f6 50%, #14b8a6 100%);
    font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', sans-serif;
    color: white;
    box-sizing: border-box;
  }
  .header { text-align: center; margin-bottom: 30px; }
  .title { font-size: 32px; font-weight: bold; margin-bottom: 10px; }
  .subtitle { font-size: 18px; opacity: 0.8; }
  .cast {
    background: rgba(255,255,255,0.1);
    border: 1px solid rgba(255,255,255,0.2);
    border-radius: 12px;
    padding: 20px;
    margin-bottom: 15px;
  }
  .cast-header { display: flex; align-items: center; margin-bottom: 10px; }
  .author-avatar {
    width: 32px;
    height: 32px;
    border-radius: 50%;
    background: rgba(167,139,250,0.8);
    display: flex;
    align-items: center;
    justify-content: center;
    font-weight: bold;
    margin-right: 15px;
  }
  .author-name { font-weight: 600; }
  .timestamp { margin-left: auto; font-size: 12px; opacity: 0.6; }
  .cast-text { font-size: 14px; line-height: 1.4; opacity: 0.9; }
  .footer { text-align: center; margin-top: 20px; font-size: 14px; opacity: 0.6; }
</style>
</head>
<body>
  <div class="header">
    <div class="title">🏰 CastKeepr - Page {{.Page}}</div>
    <div class="subtitle">Your saved Farcaster casts</div>
  </div>
{{- range .Casts}}
  <div class="cast">
    <div class="cast-header">
      <div class="author-avatar">{{.Initial}}</div>
      <div class="author-info">
        <div class="author-name">@{{.Author}}</div>
      </div>
      <div class="timestamp">{{.Date}}</div>
    </div>
    <div class="cast-text">{{.Text}}</div>
  </div>
{{- end}}
  <div class="footer">Showing {{.Total}} saved casts</div>
</body>
</html>
{{- end}}
`))

var svgTmpl = template.Must(template.New("card.svg").Parse(`<svg xmlns="http://www.w3.org/2000/svg" width="{{.Width}}" height="{{.Height}}" viewBox="0 0 {{.Width}} {{.Height}}">
<defs>
  <linearGradient id="bg" x1="0%" y1="0%" x2="100%" y2="100%">
    <stop offset="0%" stop-color="#8b5cf6"/>
    <stop offset="50%" stop-color="#3b82f6"/>
    <stop offset="100%" stop-color="#14b8a6"/>
  </linearGradient>
</defs>
<rect width="{{.Width}}" height="{{.Height}}" fill="url(#bg)"/>
{{- if .IsEmpty}}
<text x="477" y="190" text-anchor="middle" fill="#ffffff" font-family="sans-serif" font-size="48" font-weight="bold">🏰 CastKeepr</text>
<text x="477" y="255" text-anchor="middle" fill="#ffffff" font-family="sans-serif" font-size="24" opacity="0.9">📭 No saved casts yet</text>
<text x="477" y="300" text-anchor="middle" fill="#ffffff" font-family="sans-serif" font-size="18" opacity="0.8">Reply "@infinitehomie save this" to any cast</text>
<text x="477" y="335" text-anchor="middle" fill="#ffffff" font-family="sans-serif" font-size="16" opacity="0.7">to start building your collection</text>
{{- else}}
<text x="477" y="55" text-anchor="middle" fill="#ffffff" font-family="sans-serif" font-size="32" font-weight="bold">🏰 CastKeepr - Page {{.Page}}</text>
<text x="477" y="90" text-anchor="middle" fill="#ffffff" font-family="sans-serif" font-size="18" opacity="0.8">Your saved Farcaster casts</text>
{{- range .Casts}}
<g>
  <rect x="40" y="{{.BoxY}}" width="875" height="95" rx="12" fill="rgba(255,255,255,0.1)" stroke="rgba(255,255,255,0.2)"/>
  <circle cx="76" cy="{{.HeadY}}" r="16" fill="rgba(167,139,250,0.8)"/>
  <text x="76" y="{{.InitY}}" text-anchor="middle" fill="#ffffff" font-family="sans-serif" font-size="14" font-weight="bold">{{.Initial}}</text>
  <text x="104" y="{{.InitY}}" fill="#ffffff" font-family="sans-serif" font-size="15" font-weight="600">@{{.Author}}</text>
  <text x="895" y="{{.InitY}}" text-anchor="end" fill="#ffffff" font-family="sans-serif" font-size="12" opacity="0.6">{{.Date}}</text>
  <text x="64" y="{{.TextY}}" fill="#ffffff" font-family="sans-serif" font-size="14" opacity="0.9">{{.Text}}</text>
</g>
{{- end}}
<text x="477" y="480" text-anchor="middle" fill="#ffffff" font-family="sans-serif" font-size="14" opacity="0.6">Showing {{.Total}} saved casts</text>
{{- end}}
</svg>
`))
