package ranking

import (
	"encoding/json"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/spigell/resume-scorer/internal/document"
	"github.com/spigell/resume-scorer/internal/similarity"
)

const job = "Senior Go engineer: Kubernetes, PostgreSQL, gRPC and observability."

func TestDecide(t *testing.T) {
	r := New(0, nil)
	assert.Equal(t, DefaultShortlistThreshold, r.Threshold())

	assert.Equal(t, Shortlisted, r.Decide(72))
	assert.Equal(t, Rejected, r.Decide(69))
	assert.Equal(t, Shortlisted, r.Decide(70))
	assert.Equal(t, Rejected, r.Decide(69.999))
}

func TestRankOrdersByScoreWithStableTies(t *testing.T) {
	scores := map[string]float64{"alpha": 72, "bravo": 69, "charlie": 70, "delta": 70}

	r := New(70, nil)
	r.score = func(candidate, _ string) (float64, error) {
		return scores[candidate], nil
	}

	candidates := []document.Document{
		document.New("A", "alpha"),
		document.New("B", "bravo"),
		document.New("C", "charlie"),
		document.New("D", "delta"),
	}

	ranking, err := r.Rank(job, candidates)
	require.NoError(t, err)

	got := make([]string, 0, ranking.Len())
	decisions := make(map[string]Decision, ranking.Len())
	for _, row := range ranking.Items {
		got = append(got, row.Candidate)
		decisions[row.Candidate] = row.Decision
	}

	assert.Equal(t, []string{"A", "C", "D", "B"}, got)
	assert.Equal(t, map[string]Decision{"A": Shortlisted, "B": Rejected, "C": Shortlisted, "D": Shortlisted}, decisions)
	assert.Equal(t, []string{"A", "C", "D"}, ranking.Shortlisted())
	assert.Equal(t, []string{"B"}, ranking.Rejected())
}

func TestRank(t *testing.T) {
	candidates := []document.Document{
		document.New("unrelated.txt", "Pastry chef, sourdough with croissants."),
		document.New("exact.txt", job),
		document.New("partial.txt", "Go engineer with Kubernetes experience"),
		document.New("twin.txt", job),
	}

	ranking, err := New(70, nil).Rank(job, candidates)
	require.NoError(t, err)
	require.Equal(t, 4, ranking.Len())

	assert.Equal(t, "exact.txt", ranking.Items[0].Candidate)
	assert.Equal(t, 100.0, ranking.Items[0].Score)
	assert.Equal(t, "twin.txt", ranking.Items[1].Candidate)
	assert.Equal(t, "partial.txt", ranking.Items[2].Candidate)
	assert.Equal(t, "unrelated.txt", ranking.Items[3].Candidate)
	assert.Equal(t, 0.0, ranking.Items[3].Score)

	assert.Equal(t, []string{"exact.txt", "twin.txt"}, ranking.Shortlisted())

	partial := ranking.FindByCandidate("partial.txt")
	require.NotNil(t, partial)
	expected, err := similarity.Score(candidates[2].Normalized(), job)
	require.NoError(t, err)
	assert.Equal(t, expected, partial.Score)
	assert.Equal(t, Rejected, partial.Decision)

	assert.Nil(t, ranking.FindByCandidate("absent.txt"))
}

func TestRankPreconditions(t *testing.T) {
	r := New(70, nil)

	_, err := r.Rank("  \n", []document.Document{document.New("a", "go")})
	var missing *document.MissingInputError
	require.True(t, errors.As(err, &missing), "unexpected error: %v", err)
	assert.Equal(t, "job description", missing.Input)

	_, err = r.Rank(job, nil)
	require.True(t, errors.As(err, &missing), "unexpected error: %v", err)
	assert.Equal(t, "candidate resumes", missing.Input)
}

func TestRankFailsOnEmptyCandidateVocabulary(t *testing.T) {
	candidates := []document.Document{
		document.New("ok.txt", "go engineer"),
		document.New("scan.pdf", "   "),
	}

	_, err := New(70, nil).Rank(job, candidates)

	var vocab *similarity.EmptyVocabularyError
	require.True(t, errors.As(err, &vocab), "unexpected error: %v", err)
	assert.Contains(t, err.Error(), `"scan.pdf"`)
}

func TestRankLogsSummary(t *testing.T) {
	core, observed := observer.New(zapcore.InfoLevel)

	_, err := New(70, zap.New(core)).Rank(job, []document.Document{document.New("a.txt", job)})
	require.NoError(t, err)

	entries := observed.FilterMessage("screening completed").All()
	require.Len(t, entries, 1)
	ctx := entries[0].ContextMap()
	assert.EqualValues(t, 1, ctx["candidates"])
	assert.EqualValues(t, 1, ctx["shortlisted"])
}

func TestDumpToTmpFile(t *testing.T) {
	ranking := &Ranking{Items: []*Row{{Candidate: "a.txt", Score: 71.5, Decision: Shortlisted}}}

	name, err := ranking.DumpToTmpFile()
	require.NoError(t, err)
	t.Cleanup(func() { os.Remove(name) })

	data, err := os.ReadFile(name)
	require.NoError(t, err)

	var decoded Ranking
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Len(t, decoded.Items, 1)
	assert.Equal(t, *ranking.Items[0], *decoded.Items[0])
}
