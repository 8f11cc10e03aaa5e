package faq

import (
	"testing"
	"unicode/utf8"
)

func TestNormalizeDropsShortAndStopwordTokens(t *testing.T) {
	n := newNormalizer(nil)

	inputs := []string{
		"Kaip atidaryti sąskaitą?",
		"IR arba BEI kokie kokia",
		"Mokesčiai 2024 už pavedimą į kitą banką!",
		"nes tai yra tik testas",
	}
	for _, in := range inputs {
		for _, tok := range n.Normalize(in) {
			if utf8.RuneCountInString(tok) < minTokenRunes {
				t.Fatalf("input %q: token %q is too short", in, tok)
			}
			if _, stop := n.stopwords[tok]; stop {
				t.Fatalf("input %q: stopword %q survived normalization", in, tok)
			}
			if !isAlphabetic(tok) {
				t.Fatalf("input %q: non-alphabetic token %q survived", in, tok)
			}
		}
	}
}

func TestNormalizeEmptyInputs(t *testing.T) {
	n := newNormalizer(nil)
	if got := n.Normalize(""); len(got) != 0 {
		t.Fatalf("expected empty sequence for empty input, got %v", got)
	}
	if got := n.Normalize("   "); len(got) != 0 {
		t.Fatalf("expected empty sequence for blank input, got %v", got)
	}
	if got := n.Normalize("ir"); len(got) != 0 {
		t.Fatalf("expected empty sequence for lone stopword, got %v", got)
	}
}

func TestNormalizeLowercasesAndKeepsOrder(t *testing.T) {
	n := newNormalizer(nil)
	got := n.Normalize("Kokie MOKESČIAI už Pavedimą?")
	want := []string{"mokesčiai", "pavedimą"}
	if len(got) != len(want) {
		t.Fatalf("expected %v got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v got %v", want, got)
		}
	}
}

func TestNormalizeDeterministic(t *testing.T) {
	n := newNormalizer(nil)
	in := "Kiek kainuoja pavedimas į kitą banką?"
	first := n.Normalize(in)
	second := n.Normalize(in)
	if len(first) != len(second) {
		t.Fatalf("normalization not deterministic: %v vs %v", first, second)
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("normalization not deterministic: %v vs %v", first, second)
		}
	}
}

func TestNormalizeEnglishFallbackList(t *testing.T) {
	n := newNormalizer(EnglishStopwords())
	got := n.Normalize("How do I open the account?")
	for _, tok := range got {
		if tok == "the" || tok == "how" {
			t.Fatalf("english stopword %q survived", tok)
		}
	}
	// supplementary Lithuanian function words apply on top of any base list
	if res := n.Normalize("kaip ir arba"); len(res) != 0 {
		t.Fatalf("supplementary stopwords not applied, got %v", res)
	}
}
