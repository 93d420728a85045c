package similarity

import (
	"fmt"
	"strings"
)

// EmptyVocabularyError is returned when a document has no tokens to build a
// vector from.
type EmptyVocabularyError struct {
	// Documents holds zero based positions of the offending documents.
	Documents []int
}

func (e *EmptyVocabularyError) Error() string {
	positions := make([]string, 0, len(e.Documents))
	for _, idx := range e.Documents {
		positions = append(positions, fmt.Sprintf("#%d", idx+1))
	}

	noun, verb := "document", "has"
	if len(positions) > 1 {
		noun, verb = "documents", "have"
	}

	return fmt.Sprintf("empty vocabulary: %s %s %s no usable words", noun, strings.Join(positions, " and "), verb)
}
