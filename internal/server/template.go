package server

import "html/template"

// dashboardTemplate is the single server-rendered page: stat tiles, the
// campaign form, the last run's per-candidate results, and the full log.
const dashboardTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
  body { font-family: -apple-system, "Segoe UI", sans-serif; margin: 2rem auto; max-width: 64rem; color: #1f2430; }
  h1 { font-size: 1.6rem; }
  .tiles { display: flex; gap: 1rem; margin: 1.5rem 0; }
  .tile { flex: 1; border: 1px solid #d8dee9; border-radius: 8px; padding: 1rem; text-align: center; }
  .tile .value { font-size: 1.8rem; font-weight: 600; }
  .tile .label { color: #5b6473; font-size: 0.85rem; }
  .flash { padding: 0.75rem 1rem; border-radius: 6px; margin: 1rem 0; }
  .flash.error { background: #fdecea; color: #8a1f11; }
  .flash.success { background: #e6f4ea; color: #1e4620; }
  form.campaign { display: flex; gap: 0.75rem; align-items: end; margin: 1rem 0; }
  form.campaign label { display: block; font-size: 0.85rem; color: #5b6473; }
  table { border-collapse: collapse; width: 100%; margin-top: 1rem; }
  th, td { border-bottom: 1px solid #e3e8f0; padding: 0.5rem 0.6rem; text-align: left; font-size: 0.9rem; }
  th { color: #5b6473; font-weight: 600; }
  .outcome-sent { color: #1e7e34; }
  .outcome-skipped { color: #8a6d3b; }
  .outcome-failed { color: #b02a37; }
  a.refresh { font-size: 0.9rem; }
</style>
</head>
<body>
<h1>{{.Title}}</h1>

{{if .Flash}}<div class="flash {{.FlashKind}}">{{.Flash}}</div>{{end}}

<div class="tiles">
  <div class="tile"><div class="value">{{.Summary.TotalBrands}}</div><div class="label">Total Brands</div></div>
  <div class="tile"><div class="value">{{.Summary.EmailsSent}}</div><div class="label">Emails Sent</div></div>
  <div class="tile"><div class="value">{{.Summary.FollowUps}}</div><div class="label">Follow-ups</div></div>
  <div class="tile"><div class="value">{{.Summary.SuccessRate}}%</div><div class="label">Success Rate</div></div>
</div>

<form class="campaign" method="post" action="/campaign">
  <div>
    <label for="query">Search query</label>
    <input type="text" id="query" name="query" value="{{.DefaultQuery}}" size="40">
  </div>
  <div>
    <label for="num_results">Results</label>
    <input type="number" id="num_results" name="num_results" value="{{.DefaultNumResults}}" min="1" max="20">
  </div>
  <button type="submit">Start Campaign</button>
</form>

{{if .Report}}
<h2>Last run</h2>
<p>Query &ldquo;{{.Report.Query}}&rdquo; &mdash; {{.Report.State}}, {{.Report.EmailsSent}} sent</p>
<table>
  <tr><th>Brand</th><th>URL</th><th>Emails</th><th>Instagram</th><th>Outcome</th></tr>
  {{range .Report.Candidates}}
  <tr>
    <td>{{.Name}}</td>
    <td><a href="{{.URL}}">{{.URL}}</a></td>
    <td>{{range $i, $e := .Emails}}{{if $i}}, {{end}}{{$e}}{{end}}</td>
    <td>{{.Instagram}}</td>
    <td class="outcome-{{.Outcome}}">{{.Outcome}}{{if .Error}} &mdash; {{.Error}}{{end}}</td>
  </tr>
  {{end}}
</table>
{{end}}

<h2>Outreach log <a class="refresh" href="/">refresh</a></h2>
{{if .Rows}}
<table>
  <tr><th>Brand Name</th><th>URL</th><th>Email</th><th>Instagram</th><th>Status</th><th>Timestamp</th><th>Follow Up</th></tr>
  {{range .Rows}}
  <tr>
    <td>{{.BrandName}}</td>
    <td><a href="{{.URL}}">{{.URL}}</a></td>
    <td>{{.Email}}</td>
    <td>{{.Instagram}}</td>
    <td>{{.Status}}</td>
    <td>{{.Timestamp}}</td>
    <td>{{.FollowUp}}</td>
  </tr>
  {{end}}
</table>
{{else}}
<p>No outreach sent yet.</p>
{{end}}

</body>
</html>
`

func parseDashboardTemplate() *template.Template {
	return template.Must(template.New("dashboard").Parse(dashboardTemplate))
}
