package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobdigest/internal/config"
	"jobdigest/internal/domain"
)

func digestConfig(skipEmpty bool) config.Config {
	var cfg config.Config
	cfg.Search.Term = "data analyst"
	cfg.Email.Subject = "Daily Remote Data Analyst Jobs"
	cfg.Email.SkipEmpty = skipEmpty
	return cfg
}

func TestDigestBody_EmptySendsStatus(t *testing.T) {
	html, send, err := digestBody(digestConfig(false), "Source: remotive", nil)
	require.NoError(t, err)

	assert.True(t, send, "empty run still sends by default")
	assert.Equal(t, "<p>No remote data analyst jobs found today.</p>", html)
}

func TestDigestBody_EmptySkippedWhenConfigured(t *testing.T) {
	html, send, err := digestBody(digestConfig(true), "Source: remotive", nil)
	require.NoError(t, err)

	assert.False(t, send)
	assert.Empty(t, html)
}

func TestDigestBody_ListingsRenderTable(t *testing.T) {
	listings := []domain.Listing{
		{Title: "Data Analyst", Company: "Acme", Source: "Remotive", URL: "https://x.io/j/1"},
	}

	// skip_empty only applies to empty runs.
	html, send, err := digestBody(digestConfig(true), "Source: remotive", listings)
	require.NoError(t, err)

	assert.True(t, send)
	assert.Contains(t, html, "<h2>Daily Remote Data Analyst Jobs</h2>")
	assert.Contains(t, html, "Source: remotive")
	assert.Contains(t, html, "<td>Acme</td>")
}
