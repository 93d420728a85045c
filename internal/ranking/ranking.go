// Package ranking screens a batch of candidate resumes against one job
// description.
package ranking

import (
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/spigell/resume-scorer/internal/document"
	"github.com/spigell/resume-scorer/internal/similarity"
	"github.com/spigell/resume-scorer/internal/textnorm"
)

// DefaultShortlistThreshold is the minimum match score for shortlisting.
const DefaultShortlistThreshold = 70.0

// Decision is the screening outcome for a candidate.
type Decision string

const (
	Shortlisted Decision = "Shortlisted"
	Rejected    Decision = "Rejected"
)

// Row is a single line of the ranking.
type Row struct {
	Candidate string   `json:"candidate" mapstructure:"candidate"`
	Score     float64  `json:"match_score" mapstructure:"match_score"`
	Decision  Decision `json:"decision" mapstructure:"decision"`
}

// Ranker scores candidates against a job description.
type Ranker struct {
	threshold float64
	logger    *zap.Logger
	score     func(a, b string) (float64, error)
}

// New creates a Ranker. A non-positive threshold falls back to
// DefaultShortlistThreshold.
func New(threshold float64, logger *zap.Logger) *Ranker {
	if threshold <= 0 {
		threshold = DefaultShortlistThreshold
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Ranker{
		threshold: threshold,
		logger:    logger,
		score:     similarity.Score,
	}
}

// Threshold returns the shortlist threshold.
func (r *Ranker) Threshold() float64 {
	return r.threshold
}

// Decide maps a match score to a decision.
func (r *Ranker) Decide(score float64) Decision {
	if score >= r.threshold {
		return Shortlisted
	}
	return Rejected
}

// Rank scores every candidate against the job description and returns rows
// sorted by score, best first. Candidates with equal scores keep their input
// order. Every candidate is paired with the job description in its own
// two-document vector space.
func (r *Ranker) Rank(jobDescription string, candidates []document.Document) (*Ranking, error) {
	if strings.TrimSpace(jobDescription) == "" {
		return nil, document.Missing("job description")
	}
	if len(candidates) == 0 {
		return nil, document.Missing("candidate resumes")
	}

	job := textnorm.Normalize(jobDescription)

	rows := make([]*Row, 0, len(candidates))
	for _, candidate := range candidates {
		score, err := r.score(candidate.Normalized(), job)
		if err != nil {
			return nil, fmt.Errorf("scoring candidate %q: %w", candidate.ID, err)
		}

		row := &Row{
			Candidate: candidate.ID,
			Score:     score,
			Decision:  r.Decide(score),
		}

		r.logger.Debug("candidate scored",
			zap.String("candidate", row.Candidate),
			zap.Float64("match_score", row.Score),
			zap.String("decision", string(row.Decision)),
		)

		rows = append(rows, row)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Score > rows[j].Score
	})

	ranking := &Ranking{Items: rows}

	r.logger.Info("screening completed",
		zap.Int("candidates", ranking.Len()),
		zap.Int("shortlisted", len(ranking.Shortlisted())),
		zap.Float64("threshold", r.threshold),
	)

	return ranking, nil
}
