package cmd

import (
	"errors"
	"io/fs"
	"log"
	"strings"

	"github.com/spigell/resume-scorer/internal/document"
	"github.com/spigell/resume-scorer/internal/logger"
	"github.com/spigell/resume-scorer/internal/ranking"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	app       = "resume-scorer"
	envPrefix = "RESUME_SCORER"
)

type Config struct {
	Scoring   *ScoringConfig   `mapstructure:"scoring"`
	Screening *ScreeningConfig `mapstructure:"screening"`
}

type ScoringConfig struct {
	Benchmark string `mapstructure:"benchmark"`
}

type ScreeningConfig struct {
	JobDescription     string  `mapstructure:"job-description"`
	JobDescriptionFile string  `mapstructure:"job-description-file"`
	ShortlistThreshold float64 `mapstructure:"shortlist-threshold"`
	ExcludeFile        string  `mapstructure:"exclude-file"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "resume-scorer rates resumes against a competency benchmark or a job description",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is resume-scorer.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")
	rootCmd.PersistentFlags().String("log-file", "", "also write json logs to this file, rotated by size")
	rootCmd.PersistentFlags().Bool("no-color", false, "disable colored output")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
	viper.BindPFlag("log-file", rootCmd.PersistentFlags().Lookup("log-file"))
	viper.BindPFlag("no-color", rootCmd.PersistentFlags().Lookup("no-color"))

	viper.SetDefault("scoring.benchmark", document.DefaultBenchmark)
	viper.SetDefault("screening.job-description", "")
	viper.SetDefault("screening.job-description-file", "")
	viper.SetDefault("screening.shortlist-threshold", ranking.DefaultShortlistThreshold)
	viper.SetDefault("screening.exclude-file", "")
}

func initConfig() {
	// The version command works without any configuration.
	if versionCmd.CalledAs() != "" {
		return
	}

	// A missing .env is fine, a broken one is not.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("loading .env file: %v", err)
	}

	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app)
		viper.SetConfigType("yaml")
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		// Only an explicitly requested config file is mandatory.
		if cfgFile != "" || !errors.As(err, &notFound) {
			log.Fatal(err)
		}
	}
}

func getConfig() (*Config, error) {
	var config *Config
	err := viper.Unmarshal(&config)
	if err != nil {
		return config, err
	}

	return config, nil
}

// newLogger builds the command logger. A non-empty run id is attached to
// every entry.
func newLogger(run string) *zap.Logger {
	l, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"), viper.GetString("log-file"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	return logger.WithCommonFields(l, run, "")
}

func candidateLogger(l *zap.Logger, candidate string) *zap.Logger {
	return logger.WithCommonFields(l, "", candidate)
}

func summaryFields(v any) []zap.Field {
	fields, err := logger.StructFields(v)
	if err != nil {
		return []zap.Field{zap.NamedError("summary_error", err)}
	}
	return fields
}
