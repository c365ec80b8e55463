package util

import (
	"net/url"
	"strings"
)

// CleanText collapses runs of whitespace (and non-breaking spaces) into
// single spaces and trims the result.
func CleanText(s string) string {
	s = strings.ReplaceAll(s, "\u00a0", " ")
	s = strings.Join(strings.Fields(s), " ")
	return strings.TrimSpace(s)
}

// TitleMatches reports whether text looks like a posting for the search
// phrase: either the whole phrase appears, or every word of it does.
// "Data Analyst II" and "Analyst, Data Platform" both match "data analyst".
func TitleMatches(text, phrase string) bool {
	t := strings.ToLower(text)
	p := strings.ToLower(strings.TrimSpace(phrase))
	if p == "" {
		return false
	}
	if strings.Contains(t, p) {
		return true
	}
	words := strings.Fields(p)
	if len(words) < 2 {
		return false
	}
	for _, w := range words {
		if !strings.Contains(t, w) {
			return false
		}
	}
	return true
}

// AbsURL resolves href against base. Absolute hrefs pass through untouched;
// anything unparseable comes back as-is.
func AbsURL(base, href string) string {
	href = strings.TrimSpace(href)
	if href == "" {
		return ""
	}
	if strings.HasPrefix(href, "http://") || strings.HasPrefix(href, "https://") {
		return href
	}
	b, err := url.Parse(base)
	if err != nil {
		return href
	}
	h, err := url.Parse(href)
	if err != nil {
		return href
	}
	return b.ResolveReference(h).String()
}
