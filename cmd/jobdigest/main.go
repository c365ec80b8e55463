package main

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofrs/flock"
	"github.com/joho/godotenv"

	"jobdigest/internal/config"
	"jobdigest/internal/digest"
	"jobdigest/internal/domain"
	"jobdigest/internal/fetch"
	"jobdigest/internal/fetch/remotive"
	"jobdigest/internal/fetch/topstartups"
	"jobdigest/internal/fetch/types"
	"jobdigest/internal/fetch/util"
	"jobdigest/internal/fetch/wellfound"
	"jobdigest/internal/mail"
	"jobdigest/internal/report"
)

func main() {
	// .env is optional; in CI the scheduler injects the environment directly.
	_ = godotenv.Load()

	cfgPath := os.Getenv("JOBDIGEST_CONFIG")
	if cfgPath == "" {
		cfgPath = filepath.Join("config", "config.yml")
	}
	dataDir := os.Getenv("JOBDIGEST_DATA_DIR")
	if dataDir == "" {
		dataDir = "."
	}

	// One digest at a time: if yesterday's run is somehow still going, bail
	// out quietly rather than double-send.
	runLock := flock.New(filepath.Join(dataDir, "jobdigest.lock"))
	locked, err := runLock.TryLock()
	if err != nil {
		log.Fatalf("run lock: %v", err)
	}
	if !locked {
		log.Println("another run is still in progress; exiting")
		return
	}
	defer runLock.Unlock()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("config load failed (%s): %v", cfgPath, err)
	}
	cfg = config.ApplyEnv(cfg)
	cfg, v := config.NormalizeAndValidate(cfg)
	for _, w := range v.Warnings {
		log.Printf("[config] warning: %s", w)
	}
	if !v.OK() {
		for _, e := range v.Errors {
			log.Printf("[config] error: %s", e)
		}
		os.Exit(1)
	}

	ctx := context.Background()

	limiter := util.NewHostLimiter(cfg.Fetch.HostRatePerSec, cfg.Fetch.HostBurst)

	var fetchers []types.Fetcher
	if cfg.Sources.Remotive.Enabled {
		fetchers = append(fetchers, remotive.New(remotive.Config{
			BaseURL: cfg.Sources.Remotive.BaseURL,
			Search:  cfg.Search.Term,
		}, limiter))
	}
	if cfg.Sources.TopStartups.Enabled {
		fetchers = append(fetchers, topstartups.New(topstartups.Config{
			BaseURL: cfg.Sources.TopStartups.BaseURL,
			Role:    cfg.Search.Term,
		}, limiter))
	}
	if cfg.Sources.Wellfound.Enabled {
		fetchers = append(fetchers, wellfound.New(wellfound.Config{
			BaseURL: cfg.Sources.Wellfound.BaseURL,
			Role:    cfg.Search.Term,
		}, limiter))
	}

	timeout := time.Duration(cfg.Fetch.TimeoutSeconds) * time.Second
	leads := fetch.RunOnce(ctx, timeout, fetchers)
	listings := digest.Dedupe(digest.Normalize(leads))
	log.Printf("[digest] %d lead(s) -> %d unique listing(s)", len(leads), len(listings))

	intro := "Source: " + sourceLine(fetchers) + " (best-effort scraping)"
	htmlBody, send, err := digestBody(cfg, intro, listings)
	if err != nil {
		log.Fatalf("render report: %v", err)
	}
	if !send {
		log.Println("[digest] nothing found and email.skip_empty is set; not sending")
		return
	}

	mailer, err := mail.New(mail.Config{
		APIKey: os.Getenv("SENDGRID_API_KEY"),
		From:   cfg.Email.From,
		To:     cfg.Email.To,
	})
	if err != nil {
		log.Fatalf("mail setup: %v", err)
	}

	sctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	plain := report.PlainSummary(cfg.Search.Term, len(listings))
	if err := mailer.Send(sctx, cfg.Email.Subject, plain, htmlBody); err != nil {
		log.Fatalf("send digest: %v", err)
	}
	log.Printf("[mail] digest sent to %s (%d listing(s))", cfg.Email.To, len(listings))
}

// digestBody picks the email body for this run's listings. An empty run
// still gets the short status body unless email.skip_empty says otherwise.
func digestBody(cfg config.Config, intro string, listings []domain.Listing) (html string, send bool, err error) {
	if len(listings) == 0 {
		if cfg.Email.SkipEmpty {
			return "", false, nil
		}
		return report.StatusHTML(cfg.Search.Term), true, nil
	}
	html, err = report.Render(report.Params{
		Heading: cfg.Email.Subject,
		Intro:   intro,
	}, listings)
	if err != nil {
		return "", false, err
	}
	return html, true, nil
}

func sourceLine(fetchers []types.Fetcher) string {
	names := make([]string, 0, len(fetchers))
	for _, f := range fetchers {
		names = append(names, f.Name())
	}
	if len(names) == 0 {
		return "no sources enabled"
	}
	return strings.Join(names, " + ")
}
