// Package digest turns raw source leads into the final deduplicated set of
// listings that goes into the report. Nothing here touches the network or
// any storage; a run's listings live only for that run.
package digest

import (
	"strings"

	"jobdigest/internal/domain"
	"jobdigest/internal/fetch/util"
)

// Normalize maps raw leads onto the common Listing shape: whitespace cleaned,
// missing optional fields left as empty strings, identity key computed. The
// only thing that disqualifies a lead is having no identity at all (no URL
// and no company+title). Normalize never fails.
func Normalize(leads []domain.Lead) []domain.Listing {
	out := make([]domain.Listing, 0, len(leads))
	for _, lead := range leads {
		l := domain.Listing{
			Title:    util.CleanText(lead.Title),
			Company:  util.CleanText(lead.Company),
			Location: util.CleanText(lead.Location),
			Source:   util.CleanText(lead.Source),
			URL:      strings.TrimSpace(lead.URL),
			Keywords: util.CleanText(lead.Keywords),
			Skills:   util.CleanText(lead.Skills),
			PostedAt: lead.PostedAt,
		}
		l.Key = IdentityKey(l)
		if l.Key == "" {
			continue
		}
		out = append(out, l)
	}
	return out
}

// IdentityKey derives the dedupe key for a listing: the canonical URL when
// one exists, otherwise company|title. Empty means the listing has no usable
// identity.
func IdentityKey(l domain.Listing) string {
	if u := util.CanonicalURL(l.URL); u != "" {
		return util.HashString("url:" + u)
	}
	company := strings.ToLower(strings.TrimSpace(l.Company))
	title := strings.ToLower(strings.TrimSpace(l.Title))
	if company == "" && title == "" {
		return ""
	}
	return util.HashString("ct:" + company + "|" + title)
}
