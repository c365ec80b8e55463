package config

import (
	"fmt"
	"strings"
)

type Validation struct {
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

func (v *Validation) addErr(format string, args ...any) {
	v.Errors = append(v.Errors, fmt.Sprintf(format, args...))
}
func (v *Validation) addWarn(format string, args ...any) {
	v.Warnings = append(v.Warnings, fmt.Sprintf(format, args...))
}
func (v Validation) OK() bool { return len(v.Errors) == 0 }

// NormalizeAndValidate returns a normalized copy plus everything wrong or
// suspicious about it. Defaults are filled here so the rest of the program
// can trust the config as-is.
func NormalizeAndValidate(cfg Config) (Config, Validation) {
	out := cfg
	var res Validation

	out.Search.Term = strings.TrimSpace(out.Search.Term)
	out.Email.To = strings.TrimSpace(out.Email.To)
	out.Email.From = strings.TrimSpace(out.Email.From)
	out.Email.Subject = strings.TrimSpace(out.Email.Subject)

	// ---- Defaults ----

	if out.Email.From == "" {
		out.Email.From = out.Email.To
	}
	if out.Email.Subject == "" {
		out.Email.Subject = "Daily Remote Job Digest"
	}
	if out.Fetch.TimeoutSeconds == 0 {
		out.Fetch.TimeoutSeconds = 15
	}
	if out.Fetch.HostRatePerSec == 0 {
		out.Fetch.HostRatePerSec = 1
	}
	if out.Fetch.HostBurst == 0 {
		out.Fetch.HostBurst = 1
	}

	// ---- Validation rules ----

	if out.Search.Term == "" {
		res.addErr("search.term is required")
	}
	if out.Email.To == "" {
		res.addErr("email.to is required (yaml or TO_EMAIL)")
	} else if !strings.Contains(out.Email.To, "@") {
		res.addErr("email.to does not look like an address: %q", out.Email.To)
	}

	if out.Fetch.TimeoutSeconds < 0 {
		res.addErr("fetch.timeout_seconds must be >= 0")
	} else if out.Fetch.TimeoutSeconds > 120 {
		res.addWarn("fetch.timeout_seconds is very high (%d); a hung source delays the whole digest.", out.Fetch.TimeoutSeconds)
	}

	if !out.Sources.Remotive.Enabled && !out.Sources.TopStartups.Enabled && !out.Sources.Wellfound.Enabled {
		res.addWarn("no sources enabled; the digest will always be empty.")
	}

	return out, res
}
