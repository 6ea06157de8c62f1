package web

import "strconv"

func formatPercent(percent float64) string {
	return strconv.FormatFloat(percent, 'f', 2, 64)
}

const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<meta http-equiv="refresh" content="{{.Refresh}}">
<title>{{.Title}}</title>
<link rel="icon" type="image/png" href="/favicon.png">
<style>
body { font-family: system-ui, sans-serif; background: #0f172a; color: #e2e8f0; display: flex; justify-content: center; padding-top: 4rem; }
main { width: 22rem; text-align: center; }
.badge { display: inline-block; padding: .25rem .75rem; border-radius: 999px; background: #334155; }
.badge.break { background: #f59e0b; color: #0f172a; }
.countdown { font-size: 4rem; font-variant-numeric: tabular-nums; margin: 1rem 0; }
.bar { height: .5rem; border-radius: .25rem; background: #334155; overflow: hidden; }
.fill { height: 100%; background: #38bdf8; }
.muted { color: #94a3b8; font-size: .9rem; }
</style>
</head>
<body>
<main>
<h1>{{.Heading}}</h1>
<span class="badge{{if .Break}} break{{end}}">{{.Badge}}</span>
<div class="countdown" id="countdown">{{.Countdown}}</div>
<div class="bar"><div class="fill" style="width: {{.Percent}}%"></div></div>
<p id="next-phase-text">{{.Next}}</p>
<p class="muted">{{.State}}</p>
<p class="muted">{{.Footer}}</p>
</main>
</body>
</html>
`
