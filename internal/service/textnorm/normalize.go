// Package textnorm canonicalizes text for comparison and provides the
// similarity scorer used throughout the QC engine. Normalized text is
// the sole basis for equality and similarity decisions downstream.
package textnorm

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks decomposes text and removes combining marks, so that
// accented and bare letters compare equal ("наго́с" == "нагос").
var stripMarks = transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)))

var hyphenVariants = strings.NewReplacer(
	"–", "-", // en dash
	"—", "-", // em dash
	"‑", "-", // non-breaking hyphen
)

// Normalizer canonicalizes text using a set of per-language number-word
// lexicons. The zero value is usable but folds no number words.
type Normalizer struct {
	replacer *strings.Replacer
}

// NewNormalizer builds a normalizer from the given lexicons.
func NewNormalizer(lexicons ...Lexicon) *Normalizer {
	return &Normalizer{replacer: buildReplacer(lexicons)}
}

var defaultNormalizer = NewNormalizer(DefaultLexicons()...)

// Normalize canonicalizes text using the default lexicons (Russian and
// Ukrainian number words). See Normalizer.Normalize.
func Normalize(text string) string {
	return defaultNormalizer.Normalize(text)
}

// Normalize canonicalizes text for comparison. Steps, in order:
// diacritics stripped, hyphen variants unified, number words folded to
// digits, ё folded to е, whitespace collapsed, lower-cased. The
// function is total and idempotent; empty input yields "".
func (n *Normalizer) Normalize(text string) string {
	if text == "" {
		return ""
	}

	out, _, err := transform.String(stripMarks, text)
	if err != nil {
		out = text
	}

	out = hyphenVariants.Replace(out)

	if n != nil && n.replacer != nil {
		out = n.replacer.Replace(out)
	}

	out = strings.ReplaceAll(out, "Ё", "Е")
	out = strings.ReplaceAll(out, "ё", "е")

	out = strings.Join(strings.Fields(out), " ")

	return strings.ToLower(out)
}

// buildReplacer flattens lexicons into a single replacer. Longer words
// are listed first so "двадцать" wins over its substring "два", and
// every word also gets a capitalized variant. Keys pass through the
// same mark stripping as the input text, otherwise words containing
// decomposable letters (й, ё) would never match.
func buildReplacer(lexicons []Lexicon) *strings.Replacer {
	var entries []Entry
	for _, lex := range lexicons {
		entries = append(entries, lex.Entries...)
	}
	if len(entries) == 0 {
		return nil
	}

	pairs := make([]string, 0, len(entries)*4)
	seen := make(map[string]bool, len(entries)*2)
	add := func(word, digit string) {
		if word == "" || seen[word] {
			return
		}
		seen[word] = true
		pairs = append(pairs, word, digit)
	}

	// Stable longest-first ordering across all lexicons.
	sorted := make([]Entry, len(entries))
	copy(sorted, entries)
	for i := 1; i < len(sorted); i++ {
		for j := i; j > 0 && len(sorted[j].Word) > len(sorted[j-1].Word); j-- {
			sorted[j], sorted[j-1] = sorted[j-1], sorted[j]
		}
	}

	for _, e := range sorted {
		word, _, err := transform.String(stripMarks, e.Word)
		if err != nil {
			word = e.Word
		}
		add(word, e.Digit)
		add(capitalize(word), e.Digit)
	}

	return strings.NewReplacer(pairs...)
}

func capitalize(s string) string {
	r := []rune(s)
	if len(r) == 0 {
		return s
	}
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
