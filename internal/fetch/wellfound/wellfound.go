package wellfound

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/PuerkitoBio/goquery"

	"jobdigest/internal/domain"
	"jobdigest/internal/fetch"
	"jobdigest/internal/fetch/types"
	"jobdigest/internal/fetch/util"
)

const defaultBaseURL = "https://wellfound.com"

const (
	keywords = "data; metrics; reporting; dashboards; insights"
	skills   = "SQL; Python; Looker/Tableau; Excel; stats"
)

type Config struct {
	BaseURL string // override for tests
	Role    string // e.g. "data analyst"; also names the /role/r/ path slug
}

// Fetcher scrapes the Wellfound role landing page. Wellfound is heavily
// script-rendered, so the server HTML often carries no postings at all —
// that degrades silently to zero leads rather than an error.
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

func (f *Fetcher) Name() string { return "wellfound" }

func (f *Fetcher) Fetch(ctx context.Context) (types.Result, error) {
	page := f.cfg.BaseURL + "/role/r/" + roleSlug(f.cfg.Role)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, page, nil)
	if err != nil {
		return types.Result{Source: f.Name()}, err
	}
	req.Header.Set("User-Agent", fetch.UserAgent)

	if f.limiter != nil {
		if err := f.limiter.WaitURL(ctx, page); err != nil {
			return types.Result{Source: f.Name()}, err
		}
	}

	res, err := f.hc.Do(req)
	if err != nil {
		return types.Result{Source: f.Name()}, fmt.Errorf("wellfound get: %w", err)
	}
	defer res.Body.Close()
	if res.StatusCode >= 400 {
		return types.Result{Source: f.Name()}, fmt.Errorf("wellfound status %d", res.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(res.Body)
	if err != nil {
		return types.Result{Source: f.Name()}, fmt.Errorf("wellfound parse html: %w", err)
	}

	var leads []domain.Lead
	doc.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
		href, ok := a.Attr("href")
		if !ok {
			return
		}
		txt := util.CleanText(a.Text())
		if txt == "" {
			return
		}
		if !util.TitleMatches(txt, f.cfg.Role) {
			return
		}
		abs := util.AbsURL(f.cfg.BaseURL, href)
		if abs == "" {
			return
		}
		leads = append(leads, domain.Lead{
			Source:   "Wellfound",
			Title:    txt,
			Location: "Remote",
			URL:      abs,
			Keywords: keywords,
			Skills:   skills,
		})
	})

	return types.Result{Source: f.Name(), Leads: leads}, nil
}

func roleSlug(role string) string {
	out := make([]rune, 0, len(role))
	for _, r := range role {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			out = append(out, r)
		case r >= 'A' && r <= 'Z':
			out = append(out, r+('a'-'A'))
		case r == ' ' || r == '_':
			out = append(out, '-')
		case r == '-':
			out = append(out, r)
		}
	}
	return string(out)
}
