package digest

import "jobdigest/internal/domain"

// Dedupe collapses listings sharing an identity key, keeping the first-seen
// occurrence. Input order is preserved, so with fetch results flattened in
// source order the tie-break is "first source wins". Running Dedupe on its
// own output is a no-op.
func Dedupe(in []domain.Listing) []domain.Listing {
	seen := make(map[string]struct{}, len(in))
	out := make([]domain.Listing, 0, len(in))
	for _, l := range in {
		key := l.Key
		if key == "" {
			key = IdentityKey(l)
		}
		if key == "" {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, l)
	}
	return out
}
