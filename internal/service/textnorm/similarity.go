package textnorm

import (
	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"
)

// Scorer computes a fuzzy similarity in [0, 1] between two texts.
type Scorer func(a, b string) float64

// Similarity scores two texts using the default normalizer. It is the
// single source of truth for "how similar are these texts": both inputs
// are normalized, then compared with a token-set ratio, which tolerates
// word reordering and partial token overlap. Returns 0 when either
// normalized text is empty.
func Similarity(a, b string) float64 {
	return defaultNormalizer.Similarity(a, b)
}

// Similarity scores two texts using this normalizer's lexicons.
func (n *Normalizer) Similarity(a, b string) float64 {
	na := n.Normalize(a)
	nb := n.Normalize(b)
	if na == "" || nb == "" {
		return 0.0
	}
	return float64(fuzzy.TokenSetRatio(na, nb)) / 100.0
}
