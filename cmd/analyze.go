package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/ashmarin/hh-market-stats/internal/filtering"
	"github.com/ashmarin/hh-market-stats/internal/headhunter"
	"github.com/ashmarin/hh-market-stats/internal/logger"
	"github.com/ashmarin/hh-market-stats/internal/market"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Report is the full market snapshot printed by the analyze command.
type Report struct {
	Query     string                `json:"query"`
	Vacancies int                   `json:"vacancies"`
	Salary    market.Summary        `json:"salary"`
	Points    []market.Point        `json:"points"`
	Hourly    market.Summary        `json:"hourly"`
	Employers []string              `json:"employers"`
	Companies []market.CompanyStat  `json:"companies"`
	Resumes   *market.ResumeSummary `json:"resumes,omitempty"`
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Collect vacancies for the configured search and print salary statistics",
	Run: func(cmd *cobra.Command, _ []string) {
		analyze(cmd)
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().Bool("dump", false, "dump raw vacancies to a temporary file before filtering")
}

func analyze(cmd *cobra.Command) {
	ctx := context.Background()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	logger.Info("starting the hh-market-stats", zap.String("version", version))

	// do not bother error since there is a valid parseable config
	pretty, _ := json.MarshalIndent(config, "", "  ")
	logger.Debug(fmt.Sprintf("starting with config: \n %s", pretty))

	hh, vacancies := collectVacancies(ctx, config, logger)

	if cmd.Flag("dump").Value.String() == "true" {
		filename, err := vacancies.DumpToTmpFile()
		if err != nil {
			logger.Fatal("dumping vacancies to file", zap.Error(err))
		}
		logger.Info("dumped raw vacancies", zap.String("filename", filename))
	}

	filtered, err := filtering.Run(ctx,
		&filtering.Config{Employers: config.excludedEmployers()},
		filtering.Deps{Logger: logger},
		filtering.Default(),
		vacancies,
	)
	if err != nil {
		logger.Fatal("filtering vacancies", zap.Error(err))
	}

	if filtered.Len() == 0 {
		logger.Info("exiting", zap.String("reason", "no vacancies left after filters"))
		return
	}

	records := filtered.ToRecords(true)

	points, salary := market.Points(records, config.Thresholds.PointsMinSalary)

	report := &Report{
		Query:     config.Search.Text,
		Vacancies: len(records),
		Salary:    salary,
		Points:    points,
		Hourly:    market.HourlyStats(records, config.Hours.PerMonth, config.Thresholds.SummaryMinSalary, ""),
		Employers: market.RankEmployers(records),
		Companies: market.CompanyStats(records, config.Hours.CompanyPerMonth, config.Thresholds.SummaryMinSalary),
	}

	if config.Resumes != nil && config.Resumes.Enabled {
		report.Resumes = resumeStats(hh, config, len(records), logger)
	}

	printJSON(report, logger)
}

// collectVacancies builds the client and runs the vacancy search. Fatal
// on errors, exits when nothing is found.
func collectVacancies(ctx context.Context, config *Config, logger *zap.Logger) (*headhunter.Client, *headhunter.Vacancies) {
	token, err := resolveToken(config)
	if err != nil {
		logger.Fatal("loading headhunter token",
			zap.Error(err),
			zap.String("hint", "set HH_TOKEN_FILE environment variable or the 'token-file' key in the configuration file"),
		)
	}

	hh := headhunter.New(ctx, logger, token)

	if config.UserAgent != "" {
		hh.UserAgent = config.UserAgent
	}

	logger.Info("starting the search", zap.String("search", config.Search.Text))

	vacancies, err := hh.Search(config.Search)
	if err != nil {
		logger.Fatal("getting available vacancies", zap.Error(err))
	}

	logger.Info("getting vacancies", zap.Int("count", vacancies.Len()))

	if vacancies.Len() == 0 {
		logger.Info("exiting", zap.String("reason", "no vacancies found"))
		os.Exit(0)
	}

	return hh, vacancies
}

// resumeStats runs the demand-side resume search. Non-fatal: resume
// search needs an employer token, the rest of the report is still useful
// without it.
func resumeStats(hh *headhunter.Client, config *Config, vacancyCount int, logger *zap.Logger) *market.ResumeSummary {
	resumes, err := hh.SearchResumes(config.Search)
	if err != nil {
		logger.Warn("skipping resume stats", zap.Error(err))
		return nil
	}

	logger.Info("getting resumes", zap.Int("count", resumes.Len()))

	stats := market.ResumeStats(resumes.ToRecords(), vacancyCount)
	return &stats
}
