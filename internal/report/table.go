package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/spigell/resume-scorer/internal/ranking"
)

var rankingHeader = []string{"Candidate", "Match Score (%)", "Decision"}

// WriteTable prints the ranking as aligned columns.
func WriteTable(w io.Writer, r *ranking.Ranking) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "%s\t%s\t%s\n", rankingHeader[0], rankingHeader[1], rankingHeader[2])
	for _, row := range r.Items {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", row.Candidate, FormatATS(row.Score), row.Decision)
	}

	return tw.Flush()
}

// WriteCSV prints the ranking as CSV with a header line.
func WriteCSV(w io.Writer, r *ranking.Ranking) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(rankingHeader); err != nil {
		return err
	}

	for _, row := range r.Items {
		record := []string{row.Candidate, strconv.FormatFloat(row.Score, 'f', 2, 64), string(row.Decision)}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteRankingJSON prints the ranking rows as a JSON array. Scores are
// rounded to two decimals like in the table.
func WriteRankingJSON(w io.Writer, r *ranking.Ranking) error {
	rows := make([]ranking.Row, 0, len(r.Items))
	for _, row := range r.Items {
		rounded := *row

		score, err := strconv.ParseFloat(FormatATS(row.Score), 64)
		if err != nil {
			return err
		}
		rounded.Score = score

		rows = append(rows, rounded)
	}

	return WriteJSON(w, rows)
}

// WriteJSON prints v as indented JSON.
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
