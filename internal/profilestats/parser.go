package profilestats

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"
)

// ProfileStats holds the numbers scraped from a public social profile page.
type ProfileStats struct {
	ProfileURL string    `json:"profile_url"`
	Followers  *int      `json:"followers,omitempty"`
	Verified   bool      `json:"verified"`
	FetchedAt  time.Time `json:"fetched_at"`
}

// Fetcher scrapes follower counts from public profile pages. Platforms render
// the count in wildly different markup, so it scans common counter patterns
// rather than binding to one site's DOM.
type Fetcher struct {
	httpClient *http.Client
	log        *zap.Logger
	maxRetries int
}

func NewFetcher(timeoutMS, maxRetries int, log *zap.Logger) *Fetcher {
	return &Fetcher{
		httpClient: &http.Client{
			Timeout: time.Duration(timeoutMS) * time.Millisecond,
		},
		log:        log,
		maxRetries: maxRetries,
	}
}

func (f *Fetcher) Fetch(ctx context.Context, profileURL string) (*ProfileStats, error) {
	if _, err := url.ParseRequestURI(profileURL); err != nil {
		return nil, fmt.Errorf("invalid profile url: %w", err)
	}

	var doc *goquery.Document
	var lastErr error

	for attempt := 0; attempt <= f.maxRetries; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, profileURL, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("User-Agent", "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36")
		req.Header.Set("Accept-Language", "en-US,en;q=0.9")

		resp, err := f.httpClient.Do(req)
		if err != nil {
			lastErr = err
			time.Sleep(time.Duration(attempt+1) * 500 * time.Millisecond)
			continue
		}

		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			lastErr = fmt.Errorf("HTTP %d for %s", resp.StatusCode, profileURL)
			time.Sleep(time.Duration(attempt+1) * 500 * time.Millisecond)
			continue
		}

		doc, err = goquery.NewDocumentFromReader(resp.Body)
		resp.Body.Close()
		if err != nil {
			lastErr = err
			continue
		}
		lastErr = nil
		break
	}

	if lastErr != nil {
		return nil, lastErr
	}

	stats := &ProfileStats{
		ProfileURL: profileURL,
		FetchedAt:  time.Now(),
	}

	if n := extractFollowers(doc); n > 0 {
		stats.Followers = &n
	}
	stats.Verified = doc.Find(".verified-icon, [aria-label='Verified']").Length() > 0

	return stats, nil
}

// Counter labels that mean "audience size" across platforms.
var followerLabels = []string{"follower", "subscriber", "member", "fan"}

func extractFollowers(doc *goquery.Document) int {
	found := 0

	// Structured counters: a value element next to a label element.
	doc.Find(".counter_value, [data-count], .profile-stat-value").EachWithBreak(func(i int, s *goquery.Selection) bool {
		label := strings.ToLower(s.Parent().Text())
		if !hasFollowerLabel(label) {
			return true
		}
		if n := parseCount(strings.TrimSpace(s.Text())); n > 0 {
			found = n
			return false
		}
		return true
	})
	if found > 0 {
		return found
	}

	// Fallback: any element whose own text reads like "12.5K followers".
	doc.Find("span, div, a").EachWithBreak(func(i int, s *goquery.Selection) bool {
		text := strings.TrimSpace(s.Text())
		if len(text) > 64 || !hasFollowerLabel(strings.ToLower(text)) {
			return true
		}
		if n := parseCount(text); n > 0 {
			found = n
			return false
		}
		return true
	})

	return found
}

func hasFollowerLabel(text string) bool {
	for _, l := range followerLabels {
		if strings.Contains(text, l) {
			return true
		}
	}
	return false
}

var countRE = regexp.MustCompile(`[\d,.]+[KkMm]?`)

// parseCount turns a human formatted counter like "12.5K" or "1,234" into an
// integer. Returns 0 when no number is present.
func parseCount(text string) int {
	text = strings.ReplaceAll(text, " ", "")
	text = strings.ReplaceAll(text, ",", "")

	match := countRE.FindString(text)
	if match == "" {
		return 0
	}

	multiplier := 1
	if strings.HasSuffix(match, "K") || strings.HasSuffix(match, "k") {
		multiplier = 1000
		match = match[:len(match)-1]
	} else if strings.HasSuffix(match, "M") || strings.HasSuffix(match, "m") {
		multiplier = 1000000
		match = match[:len(match)-1]
	}

	f, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return 0
	}
	return int(f * float64(multiplier))
}
