package faq

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/clipperhouse/uax29/v2/words"
)

const minTokenRunes = 3

// normalizer turns raw text into the canonical token sequence the model is
// trained on. It is pure relative to its stopword set.
type normalizer struct {
	stopwords map[string]struct{}
}

func newNormalizer(base []string) *normalizer {
	if len(base) == 0 {
		base = DefaultStopwords()
	}
	return &normalizer{stopwords: newStopwordSet(base)}
}

// Normalize lowercases the text, segments it into words and drops every
// token that is not purely alphabetic, is a stopword, or is shorter than
// three runes. The same input always yields the same sequence.
func (n *normalizer) Normalize(text string) []string {
	lowered := strings.ToLower(text)
	raw := segmentWords(lowered)
	if len(raw) == 0 {
		raw = splitSimple(lowered)
	}

	out := make([]string, 0, len(raw))
	for _, tok := range raw {
		if !isAlphabetic(tok) {
			continue
		}
		if utf8.RuneCountInString(tok) < minTokenRunes {
			continue
		}
		if _, stop := n.stopwords[tok]; stop {
			continue
		}
		out = append(out, tok)
	}
	return out
}

// segmentWords applies UAX #29 word segmentation. The segmenter also emits
// whitespace and punctuation runs; those are filtered here, the alphabetic
// filter above handles the rest.
func segmentWords(text string) []string {
	tokens := words.FromString(text)
	var out []string
	for tokens.Next() {
		tok := strings.TrimSpace(tokens.Value())
		if tok == "" {
			continue
		}
		out = append(out, tok)
	}
	return out
}

// splitSimple is the whitespace/punctuation fallback splitter used when
// segmentation produced nothing for a non-empty input.
func splitSimple(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

func isAlphabetic(tok string) bool {
	if tok == "" {
		return false
	}
	for _, r := range tok {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
