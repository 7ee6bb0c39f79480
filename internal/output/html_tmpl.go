package output

const htmlTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
<style>
:root {
  --bg: #f3f4f6; --fg: #1f2937; --card-bg: #fff; --border: #e5e7eb; --muted: #6b7280;
  --good: #059669; --fair: #ca8a04; --poor: #dc2626;
  --green: #16a34a; --blue: #2563eb; --purple: #9333ea; --orange: #ea580c;
}
@media (prefers-color-scheme: dark) {
  :root { --bg: #111827; --fg: #e5e7eb; --card-bg: #1f2937; --border: #374151; --muted: #9ca3af; }
}
* { box-sizing: border-box; margin: 0; padding: 0; }
body { font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif; background: var(--bg); color: var(--fg); line-height: 1.5; }
header { background: linear-gradient(90deg, #16a34a, #2563eb); color: #fff; padding: 1.5rem; }
header .inner, nav .inner, main, footer .inner { max-width: 1200px; margin: 0 auto; }
header .inner { display: flex; justify-content: space-between; align-items: center; gap: 1rem; flex-wrap: wrap; }
header h1 { font-size: 1.75rem; }
header p { opacity: .85; }
header select { background: rgba(255,255,255,.2); color: #fff; border: 1px solid rgba(255,255,255,.3); border-radius: 6px; padding: .4rem .8rem; }
header option { color: #111; }
nav { background: var(--card-bg); border-bottom: 1px solid var(--border); }
nav .inner { display: flex; gap: 2rem; padding: 0 1.5rem; }
nav a { display: block; padding: 1rem .5rem; border-bottom: 2px solid transparent; color: var(--muted); text-decoration: none; font-weight: 500; font-size: .875rem; }
nav a.active { border-color: var(--green); color: var(--green); }
main { padding: 1.5rem; display: grid; gap: 1.5rem; }
.box { background: var(--card-bg); border-radius: 8px; box-shadow: 0 1px 3px rgba(0,0,0,.1); padding: 1.5rem; }
.box h3 { font-size: 1.125rem; margin-bottom: 1rem; }
.cards { display: grid; grid-template-columns: repeat(auto-fit, minmax(200px, 1fr)); gap: 1rem; }
.card .label { font-size: .875rem; color: var(--muted); }
.card .value { font-size: 2rem; font-weight: 700; }
.card .caption { font-size: .75rem; color: var(--muted); margin-top: .5rem; }
.band-good { color: var(--good); } .band-fair { color: var(--fair); } .band-poor { color: var(--poor); }
.risk-head { display: flex; justify-content: space-between; align-items: center; margin-bottom: 1rem; }
.pill { padding: .4rem 1rem; border-radius: 999px; font-weight: 600; font-size: .875rem; }
.pill-good { background: #dcfce7; color: var(--good); } .pill-fair { background: #fef9c3; color: var(--fair); } .pill-poor { background: #fee2e2; color: var(--poor); }
.two { display: grid; grid-template-columns: repeat(auto-fit, minmax(300px, 1fr)); gap: 1.5rem; }
.row { display: flex; justify-content: space-between; align-items: center; padding: .5rem; margin-bottom: .5rem; border-radius: 4px; background: var(--bg); font-size: .875rem; }
.sev { width: 4rem; height: .5rem; border-radius: 999px; display: inline-block; margin-left: .5rem; }
.sev-high { background: #ef4444; } .sev-elevated { background: #eab308; } .sev-low { background: #22c55e; }
.status-ok, .status-Compliant { color: var(--good); font-weight: 600; }
.status-watch, .status-Partial { color: var(--fair); font-weight: 600; }
.status-Material { color: var(--poor); font-weight: 600; }
.metric { padding: 1rem; border-radius: 8px; background: var(--bg); }
.metric .value { font-size: 1.5rem; font-weight: 700; }
.tcfd { padding: 1rem; border-radius: 8px; background: var(--bg); }
.tcfd p:first-child { font-weight: 600; margin-bottom: .5rem; font-size: .875rem; }
.tcfd p:last-child { font-size: .75rem; color: var(--muted); }
button.download { width: 100%; display: flex; justify-content: space-between; padding: 1rem; margin-bottom: .75rem; border: 0; border-radius: 8px; background: var(--bg); color: var(--muted); font-size: .875rem; cursor: not-allowed; }
svg text { fill: currentColor; font-size: 11px; }
.legend span { display: inline-block; margin-right: 1rem; font-size: .8rem; }
.legend i { display: inline-block; width: .8rem; height: .8rem; margin-right: .3rem; border-radius: 2px; vertical-align: middle; }
footer { background: var(--card-bg); border-top: 1px solid var(--border); margin-top: 2rem; }
footer .inner { display: grid; grid-template-columns: repeat(auto-fit, minmax(150px, 1fr)); text-align: center; padding: 1rem 1.5rem; }
footer .value { font-size: 1.5rem; font-weight: 700; }
footer .label { font-size: .75rem; color: var(--muted); }
.green { color: var(--green); } .blue { color: var(--blue); } .purple { color: var(--purple); } .orange { color: var(--orange); }
.muted { color: var(--muted); font-size: .875rem; }
</style>
</head>
<body>
<header>
  <div class="inner">
    <div>
      <h1>{{.Title}}</h1>
      <p>{{.Subtitle}}</p>
    </div>
    <form method="get" action="{{.BasePath}}">
      <input type="hidden" name="tab" value="{{.Tab}}">
      <select name="period" aria-label="Reporting period" onchange="this.form.submit()">
        {{range .Periods}}<option value="{{.Value}}"{{if .Selected}} selected{{end}}>{{.Label}}</option>{{end}}
      </select>
      <noscript><button type="submit">Apply</button></noscript>
    </form>
  </div>
</header>

<nav>
  <div class="inner">
    {{range .Tabs}}<a href="{{.Href}}"{{if .Active}} class="active" aria-current="page"{{end}}>{{.Label}}</a>{{end}}
  </div>
</nav>

<main id="{{.Tab}}">
{{if eq .Tab "dashboard"}}
  <section class="cards">
    {{range .Panel.Cards}}
    <div class="box card">
      <div class="label">{{.Label}}</div>
      <div class="value band-{{.Band}}">{{score .Score}}</div>
      <div class="caption">{{.Caption}}</div>
    </div>
    {{end}}
  </section>

  <section class="box">
    <div class="risk-head">
      <h3>Sustainability Risk Level</h3>
      <span class="pill pill-{{.Panel.Risk.Band}}">{{.Panel.Risk}} Risk</span>
    </div>
    <div class="two">
      <div>
        <h4>Risk Matrix</h4>
        {{range .Catalog.Risks}}
        <div class="row"><span>{{.Category}}</span><span class="muted">Score: {{.Score}}<i class="sev sev-{{.Severity}}"></i></span></div>
        {{end}}
      </div>
      <div>
        <h4>Key Risk Indicators</h4>
        {{range .Catalog.Indicators}}
        <div class="row"><span>{{.Name}}</span><span class="status-{{.Status}}">{{.Status}}</span></div>
        {{end}}
      </div>
    </div>
  </section>

  <section class="box">
    <h3>ESG Performance Trends</h3>
    <svg viewBox="0 0 600 260" width="100%" role="img" aria-label="ESG performance trends">
      <line x1="40" y1="220" x2="560" y2="220" stroke="#9ca3af"/>
      <line x1="40" y1="20" x2="40" y2="220" stroke="#9ca3af"/>
      <text x="34" y="224" text-anchor="end">0</text>
      <text x="34" y="124" text-anchor="end">50</text>
      <text x="34" y="24" text-anchor="end">100</text>
      {{range .TrendLines}}<polyline fill="none" stroke="{{.Color}}" stroke-width="{{.Width}}" points="{{.Points}}"/>
      {{end}}
      {{range .TrendAxis}}<text x="{{.X}}" y="240" text-anchor="middle">{{.Text}}</text>
      {{end}}
    </svg>
    <div class="legend">{{range .TrendLines}}<span><i style="background: {{.Color}}"></i>{{.Name}}</span>{{end}}</div>
  </section>
{{end}}

{{if eq .Tab "metrics"}}
  {{if .Panel.Computed}}
  <section class="box"><h3>Environmental Metrics</h3><div class="cards">
    {{range .Panel.MetricsFor "environmental"}}<div class="metric"><div class="muted">{{.Label}}</div><div class="value green">{{.Value}}</div><div class="muted">{{.Caption}}</div></div>{{end}}
  </div></section>
  <section class="box"><h3>Social Metrics</h3><div class="cards">
    {{range .Panel.MetricsFor "social"}}<div class="metric"><div class="muted">{{.Label}}</div><div class="value blue">{{.Value}}</div><div class="muted">{{.Caption}}</div></div>{{end}}
  </div></section>
  <section class="box"><h3>Governance Metrics</h3><div class="cards">
    {{range .Panel.MetricsFor "governance"}}<div class="metric"><div class="muted">{{.Label}}</div><div class="value purple">{{.Value}}</div><div class="muted">{{.Caption}}</div></div>{{end}}
  </div></section>
  {{else}}
  <section class="box"><p class="muted">No scores computed yet.</p></section>
  {{end}}
  <section class="box">
    <h3>Data Analysis Summary</h3>
    {{with .Catalog.Summary}}
    <p><strong>Total Data Points Analyzed:</strong> {{(index $.Footer 0).Value}}</p>
    <p><strong>Reporting Period:</strong> {{.ReportingPeriod}}</p>
    <p><strong>Data Sources:</strong> {{range $i, $s := .DataSources}}{{if $i}}, {{end}}{{$s}}{{end}}</p>
    <p><strong>Accuracy Rate:</strong> {{score .AccuracyRate}}% ({{.AccuracyImprovementPct}}% improvement vs. manual reporting)</p>
    {{end}}
  </section>
{{end}}

{{if eq .Tab "regulatory"}}
  <section class="box">
    <h3>Regulatory Framework Alignment</h3>
    <svg viewBox="0 0 600 260" width="100%" role="img" aria-label="Framework alignment scores">
      <line x1="40" y1="220" x2="560" y2="220" stroke="#9ca3af"/>
      {{range .Bars}}<rect x="{{.X}}" y="{{.Y}}" width="{{.Width}}" height="{{.Height}}" fill="#3b82f6" rx="3"/>
      <text x="{{.X}}" y="240">{{.Label}}</text><text x="{{.X}}" y="{{.Y}}" dy="-4">{{.Score}}</text>
      {{end}}
    </svg>
  </section>
  <div class="two">
    <section class="box">
      <h3>GRI Standards Compliance</h3>
      {{range .Catalog.GRI}}<div class="row"><span>{{.Standard}}</span><span class="status-{{.Status}}">{{.Status}}</span></div>{{end}}
    </section>
    <section class="box">
      <h3>SASB Materiality Assessment</h3>
      {{range .Catalog.SASB}}<div class="row"><span>{{.Topic}}</span><span class="status-{{.Assessment}}">{{.Assessment}}</span></div>{{end}}
    </section>
  </div>
  <section class="box">
    <h3>TCFD Climate Disclosure</h3>
    <div class="two">{{range .Catalog.TCFD}}<div class="tcfd"><p>{{.Pillar}}</p><p>{{.Disclosure}}</p></div>{{end}}</div>
  </section>
  <section class="box">
    <h3>Report Generation</h3>
    {{range .Catalog.Downloads}}<button class="download" type="button" data-id="{{.ID}}" disabled><span>{{.Title}}</span><span>&#8615;</span></button>{{end}}
  </section>
{{end}}
</main>

<footer>
  <div class="inner">
    {{range .Footer}}<div><div class="value {{.Class}}">{{.Value}}</div><div class="label">{{.Label}}</div></div>{{end}}
  </div>
</footer>
<p class="muted" style="text-align:center;padding:.5rem">Generated {{.GeneratedAt}}</p>
</body>
</html>`
