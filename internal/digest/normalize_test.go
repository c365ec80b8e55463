package digest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobdigest/internal/domain"
)

func TestNormalize_EmptyDefaults(t *testing.T) {
	// Only a URL: every optional field stays an empty string, nothing blows up.
	out := Normalize([]domain.Lead{{URL: "https://example.com/job/1"}})

	require.Len(t, out, 1)
	assert.Equal(t, "", out[0].Title)
	assert.Equal(t, "", out[0].Company)
	assert.Equal(t, "", out[0].Location)
	assert.Equal(t, "", out[0].Source)
	assert.Nil(t, out[0].PostedAt)
	assert.NotEmpty(t, out[0].Key)
}

func TestNormalize_CleansWhitespace(t *testing.T) {
	out := Normalize([]domain.Lead{{
		Title:   "  Data  Analyst ",
		Company: " Acme Corp ",
		URL:     " https://example.com/j/2 ",
	}})

	require.Len(t, out, 1)
	assert.Equal(t, "Data Analyst", out[0].Title)
	assert.Equal(t, "Acme Corp", out[0].Company)
	assert.Equal(t, "https://example.com/j/2", out[0].URL)
}

func TestNormalize_DropsLeadsWithoutIdentity(t *testing.T) {
	out := Normalize([]domain.Lead{
		{Location: "Remote", Keywords: "data"}, // no url, no company, no title
		{Title: "Data Analyst", Company: "Acme"},
	})

	require.Len(t, out, 1)
	assert.Equal(t, "Acme", out[0].Company)
}

func TestIdentityKey_URLWins(t *testing.T) {
	a := domain.Listing{Title: "Data Analyst", Company: "Acme", URL: "https://x.io/j/1"}
	b := domain.Listing{Title: "Data Analyst II", Company: "Other", URL: "https://x.io/j/1"}
	c := domain.Listing{Title: "Data Analyst", Company: "Acme"}

	assert.Equal(t, IdentityKey(a), IdentityKey(b), "same URL means same identity")
	assert.NotEqual(t, IdentityKey(a), IdentityKey(c), "url-less fallback is a different key space")
}

func TestIdentityKey_CanonicalizesTracking(t *testing.T) {
	a := domain.Listing{URL: "https://x.io/j/1?utm_source=digest&ref=email"}
	b := domain.Listing{URL: "https://X.IO/j/1"}
	assert.Equal(t, IdentityKey(a), IdentityKey(b))
}

func TestIdentityKey_FallbackIsCaseInsensitive(t *testing.T) {
	a := domain.Listing{Title: "Data Analyst", Company: "Acme"}
	b := domain.Listing{Title: "data analyst", Company: "ACME"}
	assert.Equal(t, IdentityKey(a), IdentityKey(b))
}
