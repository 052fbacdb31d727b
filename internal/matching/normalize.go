// Package matching implements the keyword-overlap relevance scoring used to
// rank influencers against a campaign brief.
package matching

import (
	"strings"
	"unicode"
)

// TokenSet is a set of normalized lowercase tokens.
type TokenSet map[string]struct{}

// Tokenize turns free text into a set of lowercase word tokens. Punctuation is
// stripped before splitting on whitespace, so "coffee." and "coffee" produce
// the same token. Empty input yields an empty set.
func Tokenize(text string) TokenSet {
	clean := strings.Map(func(r rune) rune {
		if unicode.IsPunct(r) || unicode.IsSymbol(r) {
			return -1
		}
		return unicode.ToLower(r)
	}, text)

	set := make(TokenSet)
	for _, word := range strings.Fields(clean) {
		set[word] = struct{}{}
	}
	return set
}

// TokenizeCSV turns a comma-delimited keyword list into a set of lowercase,
// whitespace-trimmed tokens. Commas are the only delimiter: punctuation inside
// a keyword is preserved, so a compound keyword survives intact here even
// though Tokenize would split it.
func TokenizeCSV(text string) TokenSet {
	set := make(TokenSet)
	for _, part := range strings.Split(text, ",") {
		kw := strings.TrimSpace(strings.ToLower(part))
		if kw != "" {
			set[kw] = struct{}{}
		}
	}
	return set
}

// Overlap returns the size of the intersection of two token sets.
func Overlap(a, b TokenSet) int {
	if len(b) < len(a) {
		a, b = b, a
	}
	n := 0
	for tok := range a {
		if _, ok := b[tok]; ok {
			n++
		}
	}
	return n
}

// Score computes the match score between a campaign brief and an influencer's
// comma-delimited keyword list.
func Score(brief, keywords string) int {
	return Overlap(Tokenize(brief), TokenizeCSV(keywords))
}
