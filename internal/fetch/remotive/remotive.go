package remotive

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"jobdigest/internal/domain"
	"jobdigest/internal/fetch"
	"jobdigest/internal/fetch/types"
	"jobdigest/internal/fetch/util"
)

const defaultBaseURL = "https://remotive.com"

// Remotive postings are all remote by definition, so keywords/skills are a
// fixed blurb rather than anything parsed from the listing.
const (
	keywords = "analysis; reporting; dashboards; metrics; data"
	skills   = "Python; SQL; Excel; BI tools; statistics"
)

type Config struct {
	BaseURL string // override for tests; defaults to remotive.com
	Search  string // e.g. "data analyst"
}

// Fetcher pulls postings from the Remotive public API, the one structured
// (non-scraped) source in the digest.
type Fetcher struct {
	cfg     Config
	hc      *http.Client
	limiter *util.HostLimiter
}

func New(cfg Config, limiter *util.HostLimiter) *Fetcher {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	return &Fetcher{
		cfg:     cfg,
		hc:      &http.Client{Timeout: 15 * time.Second},
		limiter: limiter,
	}
}

func (f *Fetcher) Name() string { return "remotive" }

type apiResponse struct {
	Jobs []apiJob `json:"jobs"`
}

type apiJob struct {
	Title           string `json:"title"`
	CompanyName     string `json:"company_name"`
	Location        string `json:"candidate_required_location"`
	URL             string `json:"url"`
	PublicationDate string `json:"publication_date"` // "2006-01-02T15:04:05"
}

func (f *Fetcher) Fetch(ctx context.Context) (types.Result, error) {
	endpoint := f.cfg.BaseURL + "/api/remote-jobs?" + url.Values{"search": {f.cfg.Search}}.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return types.Result{Source: f.Name()}, err
	}
	req.Header.Set("User-Agent", fetch.UserAgent)
	req.Header.Set("Accept", "application/json")

	if f.limiter != nil {
		if err := f.limiter.WaitURL(ctx, endpoint); err != nil {
			return types.Result{Source: f.Name()}, err
		}
	}

	res, err := f.hc.Do(req)
	if err != nil {
		return types.Result{Source: f.Name()}, fmt.Errorf("remotive get: %w", err)
	}
	defer res.Body.Close()
	if res.StatusCode >= 400 {
		return types.Result{Source: f.Name()}, fmt.Errorf("remotive status %d", res.StatusCode)
	}

	var body apiResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return types.Result{Source: f.Name()}, fmt.Errorf("remotive decode: %w", err)
	}

	leads := make([]domain.Lead, 0, len(body.Jobs))
	for _, j := range body.Jobs {
		if !util.TitleMatches(j.Title, f.cfg.Search) {
			continue
		}
		loc := util.CleanText(j.Location)
		if loc == "" {
			loc = "Remote"
		}
		leads = append(leads, domain.Lead{
			Source:   "Remotive",
			Company:  j.CompanyName,
			Title:    j.Title,
			Location: loc,
			URL:      j.URL,
			Keywords: keywords,
			Skills:   skills,
			PostedAt: parseDate(j.PublicationDate),
		})
	}
	return types.Result{Source: f.Name(), Leads: leads}, nil
}

func parseDate(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	for _, layout := range []string{"2006-01-02T15:04:05", time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}
