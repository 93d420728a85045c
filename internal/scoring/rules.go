package scoring

import (
	"math"

	"github.com/spigell/resume-scorer/internal/textnorm"
)

const (
	// MaxSelectionProbability caps the probability so it never implies certainty.
	MaxSelectionProbability = 95.0

	selectionSlope = 0.85
	selectionFloor = 10.0

	strongThreshold  = 75.0
	averageThreshold = 50.0

	formattingThreshold = 60.0
	formattingGood      = 85.0
	formattingPoor      = 60.0

	coverageFull    = 90.0
	coveragePartial = 50.0

	readableMinWords = 400
	readableMaxWords = 900
	readabilityGood  = 80.0
	readabilityPoor  = 55.0

	// LowDiversityRatio is the keyword diversity below which content is
	// considered repetitive.
	LowDiversityRatio = 0.35
)

// Sections are checked in this order.
var Sections = []string{"skills", "experience", "projects", "education", "certifications"}

// coverageSections must all be present for full section coverage.
var coverageSections = []string{"skills", "experience"}

// SelectionProbability rescales the ATS score: ats*0.85+10 rounded to one
// decimal, exact halves to even, and capped at MaxSelectionProbability.
func SelectionProbability(ats float64) float64 {
	p := math.RoundToEven((ats*selectionSlope+selectionFloor)*10) / 10
	return math.Min(MaxSelectionProbability, p)
}

// VerdictFor maps the ATS score to the recruiter verdict.
func VerdictFor(ats float64) Verdict {
	switch {
	case ats > strongThreshold:
		return VerdictStrong
	case ats > averageThreshold:
		return VerdictAverage
	default:
		return VerdictWeak
	}
}

// ScanFor maps the ATS score to the outcome of a quick recruiter scan. It
// uses the verdict cut points with the opposite boundary inclusion.
func ScanFor(ats float64) ScanResult {
	switch {
	case ats < averageThreshold:
		return ScanLikelyRejected
	case ats < strongThreshold:
		return ScanAverageInterest
	default:
		return ScanStrongImpression
	}
}

// FormattingScore approximates ATS-safe formatting from the ATS score.
func FormattingScore(ats float64) float64 {
	if ats > formattingThreshold {
		return formattingGood
	}
	return formattingPoor
}

// SectionCoverageScore is 90 when the normalized text contains both "skills"
// and "experience" and 50 otherwise.
func SectionCoverageScore(normalized string) float64 {
	for _, section := range coverageSections {
		if !textnorm.Contains(normalized, section) {
			return coveragePartial
		}
	}
	return coverageFull
}

// ReadabilityScore rewards resumes of 400 to 900 raw words inclusive.
func ReadabilityScore(rawWordCount int) float64 {
	if rawWordCount >= readableMinWords && rawWordCount <= readableMaxWords {
		return readabilityGood
	}
	return readabilityPoor
}

// DetectSections flags every known section by substring containment.
func DetectSections(normalized string) []Section {
	found := make([]Section, 0, len(Sections))
	for _, name := range Sections {
		found = append(found, Section{Name: name, Present: textnorm.Contains(normalized, name)})
	}
	return found
}

// KeywordDiversity is the number of unique words divided by the number of
// words of the normalized text.
func KeywordDiversity(normalized string) float64 {
	words := textnorm.Words(normalized)

	unique := make(map[string]struct{}, len(words))
	for _, w := range words {
		unique[w] = struct{}{}
	}

	return float64(len(unique)) / float64(max(len(words), 1))
}

// IsLowDiversity reports whether the ratio should raise a repetition warning.
func IsLowDiversity(ratio float64) bool {
	return ratio < LowDiversityRatio
}
