// Package report renders evaluation and screening results for people.
package report

import (
	"fmt"
	"math"
	"strconv"
)

const documentTemplate = `AI RESUME FEEDBACK REPORT

ATS Score: %s%%
Selection Probability: %s%%

Key Recommendations:
- Improve keyword alignment
- Quantify experience
- Optimize bullet structure
- Follow ATS-safe formatting

Final Insight:
Focus on impact-driven bullets and keyword optimization.
`

// Document renders the downloadable feedback report. The output depends on
// the two scores only.
func Document(ats, probability float64) string {
	return fmt.Sprintf(documentTemplate, FormatATS(ats), FormatProbability(probability))
}

// FormatATS prints the score with two decimals.
func FormatATS(ats float64) string {
	return strconv.FormatFloat(ats, 'f', 2, 64)
}

// FormatProbability prints the selection probability with the shortest
// decimal form and at least one fractional digit ("78.0", "52.5"). The cap
// is printed as a whole number ("95").
func FormatProbability(p float64) string {
	if p >= 95 {
		return "95"
	}

	s := strconv.FormatFloat(p, 'f', -1, 64)
	if p == math.Trunc(p) {
		s += ".0"
	}
	return s
}
