package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spigell/resume-scorer/internal/document"
	"github.com/spigell/resume-scorer/internal/extract"
	"github.com/spigell/resume-scorer/internal/filtering"
	"github.com/spigell/resume-scorer/internal/ranking"
	"github.com/spigell/resume-scorer/internal/report"
	"github.com/spigell/resume-scorer/internal/textnorm"
	"github.com/spigell/resume-scorer/internal/utils"

	"github.com/google/uuid"
	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	PromptShowShortlist       = "Show shortlisted candidates"
	PromptRankingToFile       = "Dump ranking to file"
	PromptAppendToExcludeFile = "Append rejected candidates to exclude file"
	PromptExit                = "Exit"

	excludeReason = "rejected"
)

var errExit = errors.New("exit requested")

var screenCmd = &cobra.Command{
	Use:   "screen <resumes...>",
	Short: "Rank candidate resumes against a job description",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		screen(cmd, args)
	},
}

func init() {
	rootCmd.AddCommand(screenCmd)

	screenCmd.Flags().String("job-description", "", "job description text")
	screenCmd.Flags().StringP("job-description-file", "f", "", "file with the job description (txt, pdf, docx). Takes precedence over --job-description")
	screenCmd.Flags().StringP("exclude-file", "e", "", "special file with candidates to exclude. Default is unset.")
	screenCmd.Flags().Float64P("threshold", "t", ranking.DefaultShortlistThreshold, "minimum match score for shortlisting")
	screenCmd.Flags().StringP("output", "o", OutputTable, "output format: table, csv or json")
	screenCmd.Flags().BoolP("auto-approve", "y", false, "do not show the follow-up menu")
	screenCmd.Flags().StringSlice("skip-filter", nil, "filters to disable: duplicates, exclude_file")

	viper.BindPFlag("screening.job-description", screenCmd.Flags().Lookup("job-description"))
	viper.BindPFlag("screening.job-description-file", screenCmd.Flags().Lookup("job-description-file"))
	viper.BindPFlag("screening.exclude-file", screenCmd.Flags().Lookup("exclude-file"))
	viper.BindPFlag("screening.shortlist-threshold", screenCmd.Flags().Lookup("threshold"))
}

// screen runs a single screening pass over the given resumes.
func screen(cmd *cobra.Command, paths []string) {
	ctx := context.Background()
	run := uuid.NewString()

	logger := newLogger(run)

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	if config == nil || config.Screening == nil {
		logger.Fatal("config is required")
	}

	output, _ := cmd.Flags().GetString("output")
	switch output {
	case OutputTable, OutputCSV, OutputJSON:
	default:
		logger.Fatal("unsupported output format", zap.String("output", output), zap.Strings("supported", []string{OutputTable, OutputCSV, OutputJSON}))
	}

	logger.Info("starting the screening", zap.String("version", version), zap.Int("resumes", len(paths)))

	job, err := document.Load(document.Source{
		Name:  "job description",
		Value: config.Screening.JobDescription,
		File:  config.Screening.JobDescriptionFile,
	}, extract.Text)
	if err != nil {
		logger.Fatal(
			"loading job description",
			zap.Error(err),
			zap.String("hint", "use --job-description, --job-description-file or the 'screening' section of the configuration file"),
		)
	}

	logger.Debug("job description loaded",
		zap.String("source", job.ID),
		zap.String("preview", utils.Preview(job.Raw)),
	)

	docs, err := document.LoadFiles(paths, extract.Text)
	if err != nil {
		logger.Fatal("loading resumes", zap.Error(err), zap.Strings("supported formats", extract.Supported()))
	}

	for _, doc := range docs {
		candidateLogger(logger, doc.ID).Debug("resume extracted",
			zap.Int("words", textnorm.WordCount(doc.Raw)),
			zap.String("preview", utils.Preview(doc.Raw)),
		)
	}

	filters := filtering.New([]filtering.Filter{
		filtering.NewDuplicates(logger),
		filtering.NewExcludeFile(config.Screening.ExcludeFile, logger),
	}, logger)

	skip, _ := cmd.Flags().GetStringSlice("skip-filter")
	for _, name := range skip {
		filters.DisableByName(name, "disabled by --skip-filter")
	}

	candidates, err := filters.RunFilters(ctx, filtering.NewCandidates(docs))
	if err != nil {
		logger.Fatal("filtering failed", zap.Error(err))
	}

	if candidates.Len() == 0 {
		logger.Info("exiting", zap.String("reason", "no candidates left after filters"))
		return
	}

	ranker := ranking.New(config.Screening.ShortlistThreshold, logger)
	logger.Info("ranking candidates", zap.Int("candidates", candidates.Len()), zap.Float64("threshold", ranker.Threshold()))

	result, err := ranker.Rank(job.Raw, candidates.Items)
	if err != nil {
		logger.Fatal("ranking candidates", zap.Error(err))
	}

	if err := writeRanking(cmd.OutOrStdout(), output, result); err != nil {
		logger.Fatal("printing ranking", zap.Error(err))
	}

	if autoApprove, _ := cmd.Flags().GetBool("auto-approve"); autoApprove {
		return
	}

	for {
		prompt := promptui.Select{
			Label: "What next?",
			Items: menuItems(config.Screening.ExcludeFile, result),
		}

		_, action, err := prompt.Run()
		if err != nil {
			logger.Fatal("exiting", zap.Error(err))
		}

		if err := handleAction(action, logger, config, result); err != nil {
			if errors.Is(err, errExit) {
				return
			}
			logger.Fatal("exiting", zap.Error(err))
		}
	}
}

func writeRanking(w io.Writer, output string, result *ranking.Ranking) error {
	switch output {
	case OutputCSV:
		return report.WriteCSV(w, result)
	case OutputJSON:
		return report.WriteRankingJSON(w, result)
	default:
		return report.WriteTable(w, result)
	}
}

func menuItems(excludeFile string, result *ranking.Ranking) []string {
	items := []string{PromptShowShortlist, PromptRankingToFile}
	if excludeFile != "" && len(result.Rejected()) != 0 {
		items = append(items, PromptAppendToExcludeFile)
	}
	return append(items, PromptExit)
}

func handleAction(action string, logger *zap.Logger, config *Config, result *ranking.Ranking) error {
	switch action {
	case PromptShowShortlist:
		shortlisted := result.Shortlisted()
		for _, id := range shortlisted {
			candidateLogger(logger, id).Info("shortlisted", zap.Float64("match_score", result.FindByCandidate(id).Score))
		}
		logger.Info("shortlisted candidates",
			zap.Int("shortlisted count", len(shortlisted)),
			zap.Int("rejected count", len(result.Rejected())),
		)
		return nil
	case PromptRankingToFile:
		filename, err := result.DumpToTmpFile()
		if err != nil {
			return fmt.Errorf("dump ranking to file: %w", err)
		}
		logger.Info("dumping ranking to file", zap.String("filename", filename))
		return nil
	case PromptAppendToExcludeFile:
		if err := appendRejected(config.Screening.ExcludeFile, result); err != nil {
			return fmt.Errorf("append to exclude file: %w", err)
		}
		logger.Info("rejected candidates appended to exclude file",
			zap.String("filename", config.Screening.ExcludeFile),
			zap.Int("count", len(result.Rejected())),
		)
		return nil
	case PromptExit:
		logger.Info("exiting", zap.String("reason", "got exit from prompt"))
		return errExit
	default:
		return fmt.Errorf("invalid action: %s", action)
	}
}

// appendRejected records rejected candidates in the exclude file so the next
// screening run skips them.
func appendRejected(excludeFile string, result *ranking.Ranking) error {
	excluded, err := filtering.LoadExcluded(excludeFile)
	if err != nil {
		return err
	}

	excluded.Append(filtering.ToExcluded(result.Rejected(), excludeReason))

	return excluded.ToFile(excludeFile)
}
