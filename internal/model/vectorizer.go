package model

import (
	"sort"
	"strings"
	"unicode"
)

// TermCounts is a sparse bag-of-words vector: vocabulary index to the number
// of times that term occurred in the document.
type TermCounts map[int]float64

// Vectorizer converts raw text into term-count vectors over a learned
// vocabulary. Fit builds the vocabulary once per training run; Transform is
// deterministic for a fitted vocabulary. Fields are exported so fitted
// vectorizers can be serialized as artifacts.
type Vectorizer struct {
	Vocabulary map[string]int `json:"vocabulary"`
}

// Fit builds the vocabulary from the union of all corpus tokens.
// Indices are assigned in sorted term order so repeated fits over the same
// corpus produce the same mapping.
func (v *Vectorizer) Fit(corpus []string) {
	seen := make(map[string]struct{})
	for _, doc := range corpus {
		for _, term := range Tokenize(doc) {
			seen[term] = struct{}{}
		}
	}

	terms := make([]string, 0, len(seen))
	for term := range seen {
		terms = append(terms, term)
	}
	sort.Strings(terms)

	v.Vocabulary = make(map[string]int, len(terms))
	for i, term := range terms {
		v.Vocabulary[term] = i
	}
}

// Transform counts the occurrences of each vocabulary term in text.
// Terms unseen at fit time are dropped.
func (v *Vectorizer) Transform(text string) TermCounts {
	counts := make(TermCounts)
	for _, term := range Tokenize(text) {
		idx, ok := v.Vocabulary[term]
		if !ok {
			continue
		}
		counts[idx]++
	}
	return counts
}

// VocabularySize returns the width of vectors produced by Transform.
func (v *Vectorizer) VocabularySize() int {
	return len(v.Vocabulary)
}

// Tokenize lowercases text and splits it into runs of letters and digits,
// dropping single-rune tokens. Order-insensitive consumers count duplicates.
func Tokenize(text string) []string {
	var tokens []string
	var sb strings.Builder

	flush := func() {
		if sb.Len() > 0 {
			token := sb.String()
			if len([]rune(token)) >= 2 {
				tokens = append(tokens, token)
			}
			sb.Reset()
		}
	}

	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			sb.WriteRune(unicode.ToLower(r))
		} else {
			flush()
		}
	}
	flush()

	return tokens
}
