package scoring

// Verdict is the recruiter level summary of a resume.
type Verdict string

const (
	VerdictStrong  Verdict = "Strong"
	VerdictAverage Verdict = "Average"
	VerdictWeak    Verdict = "Weak"
)

// ScanResult describes the likely outcome of a six second recruiter scan.
type ScanResult string

const (
	ScanLikelyRejected   ScanResult = "likely rejected"
	ScanAverageInterest  ScanResult = "average interest"
	ScanStrongImpression ScanResult = "strong impression"
)

// Breakdown holds the per-category scores, each in 0..100.
type Breakdown struct {
	KeywordMatch    float64 `json:"keyword_match" mapstructure:"keyword_match"`
	Formatting      float64 `json:"formatting" mapstructure:"formatting"`
	SectionCoverage float64 `json:"section_coverage" mapstructure:"section_coverage"`
	Readability     float64 `json:"readability" mapstructure:"readability"`
}

// Section tells whether a known resume section was found.
type Section struct {
	Name    string `json:"name" mapstructure:"name"`
	Present bool   `json:"present" mapstructure:"present"`
}

// Report is the evaluation of a single resume.
type Report struct {
	DocumentID           string     `json:"document" mapstructure:"document"`
	ATS                  float64    `json:"ats_score" mapstructure:"ats_score"`
	SelectionProbability float64    `json:"selection_probability" mapstructure:"selection_probability"`
	Verdict              Verdict    `json:"recruiter_verdict" mapstructure:"recruiter_verdict"`
	Scan                 ScanResult `json:"scan_result" mapstructure:"scan_result"`
	Breakdown            Breakdown  `json:"breakdown" mapstructure:"breakdown"`
	Sections             []Section  `json:"sections" mapstructure:"sections"`
	WordCount            int        `json:"word_count" mapstructure:"word_count"`
	KeywordDiversity     float64    `json:"keyword_diversity" mapstructure:"keyword_diversity"`
	LowDiversity         bool       `json:"low_diversity" mapstructure:"low_diversity"`
}

// MissingSections returns names of the sections not found in the resume.
func (r *Report) MissingSections() []string {
	var missing []string
	for _, s := range r.Sections {
		if !s.Present {
			missing = append(missing, s.Name)
		}
	}
	return missing
}
