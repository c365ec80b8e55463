package domain

import "time"

// Lead is what a fetcher emits: the common superset of whatever fields a
// source happens to expose. Fields a source can't supply stay empty.
type Lead struct {
	Source   string
	Company  string
	Title    string
	Location string
	URL      string
	Keywords string
	Skills   string
	PostedAt *time.Time
}

// Listing is one normalized job posting. Key is the dedupe identity:
// canonical URL when present, company|title otherwise.
type Listing struct {
	Title    string     `json:"title"`
	Company  string     `json:"company"`
	Location string     `json:"location"`
	Source   string     `json:"source"`
	URL      string     `json:"url"`
	Keywords string     `json:"keywords,omitempty"`
	Skills   string     `json:"skills,omitempty"`
	PostedAt *time.Time `json:"posted_at,omitempty"`
	Key      string     `json:"-"`
}
