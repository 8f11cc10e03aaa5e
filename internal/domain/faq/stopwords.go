package faq

import (
	_ "embed"
	"strings"
)

//go:embed stopwords/lithuanian.txt
var lithuanianStopwords string

//go:embed stopwords/english.txt
var englishStopwords string

// supplementaryStopwords are short function words the base lists miss.
// They are always excluded regardless of the configured base list.
var supplementaryStopwords = []string{
	"ir", "bei", "arba", "taip", "ne", "kad", "kur", "kaip", "kokie", "kokia",
}

// DefaultStopwords returns the embedded Lithuanian base list.
func DefaultStopwords() []string {
	return splitWordList(lithuanianStopwords)
}

// EnglishStopwords returns the embedded English list used as the documented
// fallback when the Lithuanian resource is unavailable.
func EnglishStopwords() []string {
	return splitWordList(englishStopwords)
}

// ParseStopwords reads one stopword per line, ignoring blanks and comments.
func ParseStopwords(data []byte) []string {
	return splitWordList(string(data))
}

func splitWordList(data string) []string {
	lines := strings.Split(data, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		word := strings.TrimSpace(line)
		if word == "" || strings.HasPrefix(word, "#") {
			continue
		}
		out = append(out, word)
	}
	return out
}

func newStopwordSet(base []string) map[string]struct{} {
	set := make(map[string]struct{}, len(base)+len(supplementaryStopwords))
	for _, word := range base {
		word = strings.ToLower(strings.TrimSpace(word))
		if word != "" {
			set[word] = struct{}{}
		}
	}
	for _, word := range supplementaryStopwords {
		set[word] = struct{}{}
	}
	return set
}
