// Package scoring derives the resume evaluation report from the similarity
// of a resume to the competency benchmark.
package scoring

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/spigell/resume-scorer/internal/document"
	"github.com/spigell/resume-scorer/internal/similarity"
	"github.com/spigell/resume-scorer/internal/textnorm"
)

// Policy evaluates resumes against a benchmark corpus.
type Policy struct {
	benchmark string
	logger    *zap.Logger
}

// Option configures a Policy.
type Option func(*Policy)

// WithBenchmark replaces the default competency corpus.
func WithBenchmark(benchmark string) Option {
	return func(p *Policy) {
		p.benchmark = benchmark
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(logger *zap.Logger) Option {
	return func(p *Policy) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// New creates a Policy. Without options it scores against
// document.DefaultBenchmark.
func New(opts ...Option) *Policy {
	p := &Policy{
		benchmark: document.DefaultBenchmark,
		logger:    zap.NewNop(),
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Benchmark returns the corpus resumes are compared with.
func (p *Policy) Benchmark() string {
	return p.benchmark
}

// Evaluate builds the report for a resume.
func (p *Policy) Evaluate(resume document.Document) (*Report, error) {
	if resume.IsBlank() {
		return nil, document.Missing("resume")
	}

	normalized := resume.Normalized()

	ats, err := similarity.Score(normalized, p.benchmark)
	if err != nil {
		return nil, fmt.Errorf("scoring %q against benchmark: %w", resume.ID, err)
	}

	wordCount := textnorm.WordCount(resume.Raw)
	diversity := KeywordDiversity(normalized)

	report := &Report{
		DocumentID:           resume.ID,
		ATS:                  ats,
		SelectionProbability: SelectionProbability(ats),
		Verdict:              VerdictFor(ats),
		Scan:                 ScanFor(ats),
		Breakdown: Breakdown{
			KeywordMatch:    ats,
			Formatting:      FormattingScore(ats),
			SectionCoverage: SectionCoverageScore(normalized),
			Readability:     ReadabilityScore(wordCount),
		},
		Sections:         DetectSections(normalized),
		WordCount:        wordCount,
		KeywordDiversity: diversity,
		LowDiversity:     IsLowDiversity(diversity),
	}

	p.logger.Debug("resume evaluated",
		zap.String("document", resume.ID),
		zap.Float64("ats", report.ATS),
		zap.Float64("selection_probability", report.SelectionProbability),
		zap.String("verdict", string(report.Verdict)),
		zap.Int("word_count", report.WordCount),
		zap.Float64("keyword_diversity", report.KeywordDiversity),
	)

	return report, nil
}
