package remotive

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleBody = `{
  "jobs": [
    {"title": "Data Analyst", "company_name": "Acme", "candidate_required_location": "Worldwide", "url": "https://remotive.com/remote-jobs/data/1", "publication_date": "2026-08-20T09:30:00"},
    {"title": "Senior Data Platform Analyst", "company_name": "Globex", "candidate_required_location": "", "url": "https://remotive.com/remote-jobs/data/2", "publication_date": ""},
    {"title": "Frontend Engineer", "company_name": "Initech", "candidate_required_location": "USA", "url": "https://remotive.com/remote-jobs/dev/3", "publication_date": "2026-08-19"}
  ]
}`

func TestFetch_FiltersAndNormalizes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/remote-jobs", r.URL.Path)
		assert.Equal(t, "data analyst", r.URL.Query().Get("search"))
		assert.NotContains(t, r.Header.Get("User-Agent"), "Go-http-client")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(sampleBody))
	}))
	defer srv.Close()

	f := New(Config{BaseURL: srv.URL, Search: "data analyst"}, nil)
	res, err := f.Fetch(context.Background())
	require.NoError(t, err)

	// Frontend Engineer doesn't match; the platform analyst matches on words.
	require.Len(t, res.Leads, 2)
	assert.Equal(t, "Acme", res.Leads[0].Company)
	assert.Equal(t, "Worldwide", res.Leads[0].Location)
	require.NotNil(t, res.Leads[0].PostedAt)
	assert.Equal(t, 2026, res.Leads[0].PostedAt.Year())

	// Empty location defaults to Remote, missing date stays nil.
	assert.Equal(t, "Remote", res.Leads[1].Location)
	assert.Nil(t, res.Leads[1].PostedAt)

	for _, l := range res.Leads {
		assert.Equal(t, "Remotive", l.Source)
		assert.NotEmpty(t, l.URL)
		assert.NotEmpty(t, l.Keywords)
		assert.NotEmpty(t, l.Skills)
	}
}

func TestFetch_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusBadGateway)
	}))
	defer srv.Close()

	f := New(Config{BaseURL: srv.URL, Search: "data analyst"}, nil)
	_, err := f.Fetch(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestFetch_BadJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>not json</html>"))
	}))
	defer srv.Close()

	f := New(Config{BaseURL: srv.URL, Search: "data analyst"}, nil)
	_, err := f.Fetch(context.Background())
	require.Error(t, err)
}

func TestFetch_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	f := New(Config{BaseURL: srv.URL, Search: "data analyst"}, nil)
	_, err := f.Fetch(context.Background())
	require.Error(t, err)
}
