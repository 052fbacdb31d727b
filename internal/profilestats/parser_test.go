package profilestats

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

func TestParseCount(t *testing.T) {
	tests := []struct {
		input    string
		expected int
	}{
		{"1.2K", 1200},
		{"1.5M", 1500000},
		{"123", 123},
		{"12,345", 12345},
		{"1 234", 1234},
		{"5.6K followers", 5600},
		{"100K", 100000},
		{"0", 0},
		{"", 0},
		{"no number", 0},
		{"42k", 42000},
		{"3.14k", 3140},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := parseCount(tt.input)
			if result != tt.expected {
				t.Errorf("parseCount(%q) = %d, want %d", tt.input, result, tt.expected)
			}
		})
	}
}

func TestExtractFollowers(t *testing.T) {
	tests := []struct {
		name     string
		html     string
		expected int
	}{
		{
			"structured counter",
			`<div class="counter"><span class="counter_value">12.5K</span> <span class="counter_type">followers</span></div>`,
			12500,
		},
		{
			"inline text",
			`<div><span>1,234 Followers</span></div>`,
			1234,
		},
		{
			"subscriber label",
			`<div class="counter"><span class="counter_value">890</span> <span class="counter_type">subscribers</span></div>`,
			890,
		},
		{
			"counter with wrong label ignored",
			`<div class="counter"><span class="counter_value">42</span> <span class="counter_type">posts</span></div>`,
			0,
		},
		{
			"no counters",
			`<p>About this profile</p>`,
			0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := goquery.NewDocumentFromReader(strings.NewReader(tt.html))
			if err != nil {
				t.Fatalf("parse html: %v", err)
			}
			if got := extractFollowers(doc); got != tt.expected {
				t.Errorf("extractFollowers() = %d, want %d", got, tt.expected)
			}
		})
	}
}
