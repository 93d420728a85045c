package cmd

import (
	"fmt"
	"os"

	"github.com/spigell/resume-scorer/internal/document"
	"github.com/spigell/resume-scorer/internal/extract"
	"github.com/spigell/resume-scorer/internal/report"
	"github.com/spigell/resume-scorer/internal/scoring"
	"github.com/spigell/resume-scorer/internal/textnorm"
	"github.com/spigell/resume-scorer/internal/utils"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	OutputText  = "text"
	OutputTable = "table"
	OutputCSV   = "csv"
	OutputJSON  = "json"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <resume>",
	Short: "Evaluate a resume (txt, pdf, docx) against the competency benchmark",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		analyze(cmd, args[0])
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringP("report-file", "r", "", "write the plain text feedback report to this file")
	analyzeCmd.Flags().BoolP("guide", "g", false, "print the improvement guide and the checklist")
	analyzeCmd.Flags().StringP("output", "o", OutputText, "output format: text or json")
	analyzeCmd.Flags().String("benchmark", "", "override the competency benchmark text")

	viper.BindPFlag("scoring.benchmark", analyzeCmd.Flags().Lookup("benchmark"))
}

func analyze(cmd *cobra.Command, path string) {
	logger := newLogger("")

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	if config == nil || config.Scoring == nil {
		logger.Fatal("config is required")
	}

	logger.Info("starting the resume analysis", zap.String("version", version), zap.String("resume", path))

	output, _ := cmd.Flags().GetString("output")
	if output != OutputText && output != OutputJSON {
		logger.Fatal("unsupported output format", zap.String("output", output), zap.Strings("supported", []string{OutputText, OutputJSON}))
	}

	resume, err := document.Load(document.Source{Name: "resume", File: path}, extract.Text)
	if err != nil {
		logger.Fatal("loading resume", zap.Error(err), zap.Strings("supported formats", extract.Supported()))
	}

	candidateLogger(logger, resume.ID).Debug("resume extracted",
		zap.Int("words", textnorm.WordCount(resume.Raw)),
		zap.String("preview", utils.Preview(resume.Raw)),
	)

	policy := scoring.New(
		scoring.WithBenchmark(config.Scoring.Benchmark),
		scoring.WithLogger(logger),
	)

	logger.Debug("scoring against benchmark", zap.String("benchmark", utils.Preview(policy.Benchmark())))

	evaluation, err := policy.Evaluate(resume)
	if err != nil {
		logger.Fatal("evaluating resume", zap.Error(err))
	}

	logger.Info("resume evaluated", summaryFields(evaluation)...)

	if missing := evaluation.MissingSections(); len(missing) > 0 {
		logger.Info("sections not found", zap.Strings("sections", missing))
	}

	out := cmd.OutOrStdout()

	switch output {
	case OutputJSON:
		err = report.WriteJSON(out, evaluation)
	default:
		guide, _ := cmd.Flags().GetBool("guide")
		err = report.WriteEvaluation(out, evaluation, report.EvaluationOptions{
			Guide: guide,
			Color: !viper.GetBool("no-color") && !color.NoColor,
		})
	}
	if err != nil {
		logger.Fatal("printing evaluation", zap.Error(err))
	}

	reportFile, _ := cmd.Flags().GetString("report-file")
	if reportFile == "" {
		return
	}

	if err := writeReportFile(reportFile, evaluation); err != nil {
		logger.Fatal("writing feedback report", zap.Error(err))
	}

	logger.Info("feedback report written", zap.String("filename", reportFile))
}

func writeReportFile(path string, evaluation *scoring.Report) error {
	content := report.Document(evaluation.ATS, evaluation.SelectionProbability)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write %q: %w", path, err)
	}
	return nil
}
