// Package report renders the digest email body. html/template does the
// escaping, so scraped titles and company names can't smuggle markup into
// the mail.
package report

import (
	"fmt"
	"html/template"
	"strings"

	"jobdigest/internal/domain"
)

type Params struct {
	Heading string // e.g. "Daily Remote Data Analyst Jobs — Consolidated"
	Intro   string // one-line source attribution under the heading
}

const tableTmpl = `<h2>{{.Heading}}</h2>
<p>{{.Intro}}</p>
<table border='1' cellpadding='6' style='border-collapse:collapse;'>
<thead><tr><th>Title</th><th>Company</th><th>Location</th><th>Source</th><th>Link</th><th>Keywords</th><th>Skills</th></tr></thead>
<tbody>
{{- range .Listings}}
<tr><td>{{.Title}}</td><td>{{.Company}}</td><td>{{.Location}}</td><td>{{.Source}}</td><td><a href='{{.URL}}'>Apply</a></td><td>{{.Keywords}}</td><td>{{.Skills}}</td></tr>
{{- end}}
</tbody></table>
`

var tmpl = template.Must(template.New("digest").Parse(tableTmpl))

// Render builds the HTML table for the email. An empty listing slice still
// renders a complete (headers-only) table.
func Render(p Params, listings []domain.Listing) (string, error) {
	var b strings.Builder
	data := struct {
		Params
		Listings []domain.Listing
	}{p, listings}
	if err := tmpl.Execute(&b, data); err != nil {
		return "", err
	}
	return b.String(), nil
}

// StatusHTML is the short body sent when every source came back empty.
func StatusHTML(search string) string {
	return fmt.Sprintf("<p>No remote %s jobs found today.</p>", template.HTMLEscapeString(search))
}

// PlainSummary is the text/plain counterpart SendGrid requires alongside the
// HTML part.
func PlainSummary(search string, count int) string {
	if count == 0 {
		return fmt.Sprintf("No remote %s jobs found today.", search)
	}
	return fmt.Sprintf("Found %d remote %s listing(s) today. Open the HTML version for the full table.", count, search)
}
