package topstartups

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/PuerkitoBio/goquery"

	"jobdigest/internal/domain"
	"jobdigest/internal/fetch"
	"jobdigest/internal/fetch/types"
	"jobdigest/internal/fetch/util"
)

const defaultBaseURL = "https://topstartups.io"

const (
	keywords = "data; metrics; dashboards; insights; reporting"
	skills   = "SQL; Python; visualization; data pipelines; statistics"
)

// Anchor text longer than this is almost never a job title — usually a blob
// of card text the selector swallowed whole.
const maxTitleLen = 200

type Config struct {
	BaseURL string // override for tests
	Role    string // e.g. "Data Analyst"
}

// Fetcher is a best-effort scrape of the TopStartups jobs page: walk every
// anchor and keep the ones whose text looks like a matching job title. The
// page may render client-side, in which case this yields nothing and the
// source silently contributes zero leads.
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

func (f *Fetcher) Name() string { return "topstartups" }

func (f *Fetcher) Fetch(ctx context.Context) (types.Result, error) {
	page := f.cfg.BaseURL + "/jobs/?" + url.Values{"role": {f.cfg.Role}}.Encode()

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
		return types.Result{Source: f.Name()}, fmt.Errorf("topstartups get: %w", err)
	}
	defer res.Body.Close()
	if res.StatusCode >= 400 {
		return types.Result{Source: f.Name()}, fmt.Errorf("topstartups status %d", res.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(res.Body)
	if err != nil {
		return types.Result{Source: f.Name()}, fmt.Errorf("topstartups parse html: %w", err)
	}

	var leads []domain.Lead
	doc.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
		href, ok := a.Attr("href")
		if !ok {
			return
		}
		txt := util.CleanText(a.Text())
		if txt == "" || len(txt) >= maxTitleLen {
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
			Source:   "TopStartups",
			Title:    txt,
			Location: "Remote",
			URL:      abs,
			Keywords: keywords,
			Skills:   skills,
		})
	})

	return types.Result{Source: f.Name(), Leads: leads}, nil
}
