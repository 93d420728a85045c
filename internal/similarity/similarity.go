// Package similarity scores lexical overlap between two documents with
// TF-IDF weighted cosine similarity.
//
// The vector space is fitted on exactly the two documents being compared, so
// document frequency is either 1 or 2 for every term. Scores depend on the
// pair and are not comparable with a corpus-wide IDF. Keep it this way:
// reported scores must stay identical to the established scorer.
package similarity

import (
	"math"
	"sort"

	"github.com/spigell/resume-scorer/internal/textnorm"
)

// corpusSize is the number of documents in every fitted space.
const corpusSize = 2

// minTokenLength drops single letter words from the vocabulary.
const minTokenLength = 2

// Space is a TF-IDF vector space fitted on a pair of documents.
type Space struct {
	// Vocabulary is sorted alphabetically; vector components follow it.
	Vocabulary []string
	IDF        []float64
	Vectors    [corpusSize][]float64
}

// Vectorize fits a TF-IDF space on a and b. Both texts are normalized first.
func Vectorize(a, b string) (*Space, error) {
	docs := [corpusSize][]string{Tokens(a), Tokens(b)}

	var empty []int
	for i, tokens := range docs {
		if len(tokens) == 0 {
			empty = append(empty, i)
		}
	}
	if len(empty) > 0 {
		return nil, &EmptyVocabularyError{Documents: empty}
	}

	var counts [corpusSize]map[string]int
	df := make(map[string]int)
	for i, tokens := range docs {
		counts[i] = make(map[string]int, len(tokens))
		for _, token := range tokens {
			if counts[i][token] == 0 {
				df[token]++
			}
			counts[i][token]++
		}
	}

	vocabulary := make([]string, 0, len(df))
	for term := range df {
		vocabulary = append(vocabulary, term)
	}
	sort.Strings(vocabulary)

	space := &Space{
		Vocabulary: vocabulary,
		IDF:        make([]float64, len(vocabulary)),
	}
	for i := range space.Vectors {
		space.Vectors[i] = make([]float64, len(vocabulary))
	}

	for j, term := range vocabulary {
		idf := smoothIDF(df[term])
		space.IDF[j] = idf
		for i := range space.Vectors {
			space.Vectors[i][j] = float64(counts[i][term]) * idf
		}
	}

	return space, nil
}

// Cosine returns the cosine of the angle between the two document vectors,
// clamped to [0, 1].
func (s *Space) Cosine() float64 {
	a, b := s.Vectors[0], s.Vectors[1]

	var dot, normA, normB float64
	for j := range s.Vocabulary {
		dot += a[j] * b[j]
		normA += a[j] * a[j]
		normB += b[j] * b[j]
	}

	if normA == 0 || normB == 0 {
		return 0
	}

	cos := dot / math.Sqrt(normA*normB)
	return math.Max(0, math.Min(1, cos))
}

// Score returns the similarity of a and b on a 0..100 scale. It fails with
// *EmptyVocabularyError when either text has no usable tokens.
func Score(a, b string) (float64, error) {
	space, err := Vectorize(a, b)
	if err != nil {
		return 0, err
	}

	return space.Cosine() * 100, nil
}

// Tokens returns the vocabulary terms of text in order of appearance: runs of
// at least two letters after normalization.
func Tokens(text string) []string {
	words := textnorm.Words(textnorm.Normalize(text))

	tokens := words[:0]
	for _, word := range words {
		if len(word) >= minTokenLength {
			tokens = append(tokens, word)
		}
	}
	return tokens
}

func smoothIDF(df int) float64 {
	return math.Log(float64(1+corpusSize)/float64(1+df)) + 1
}
