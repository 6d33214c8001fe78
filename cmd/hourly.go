package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/ashmarin/hh-market-stats/internal/filtering"
	"github.com/ashmarin/hh-market-stats/internal/logger"
	"github.com/ashmarin/hh-market-stats/internal/market"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const promptAllEmployers = "All employers"

var hourlyCmd = &cobra.Command{
	Use:   "hourly",
	Short: "Print hourly rate statistics, overall or for a chosen employer",
	Run: func(cmd *cobra.Command, _ []string) {
		hourly(cmd)
	},
}

func init() {
	rootCmd.AddCommand(hourlyCmd)

	hourlyCmd.Flags().Bool("by-company", false, "print the per-company hourly breakdown instead of the prompt")
	hourlyCmd.Flags().String("employer", "", "compute for this employer without prompting")
	hourlyCmd.Flags().BoolP("all", "y", false, "compute over all employers without prompting")
}

func hourly(cmd *cobra.Command) {
	ctx := context.Background()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	_, vacancies := collectVacancies(ctx, config, logger)

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

	records := filtered.ToRecords(false)

	if cmd.Flag("by-company").Value.String() == "true" {
		stats := market.CompanyStats(records, config.Hours.CompanyPerMonth, config.Thresholds.SummaryMinSalary)
		printJSON(stats, logger)
		return
	}

	employer := cmd.Flag("employer").Value.String()
	if employer == "" && cmd.Flag("all").Value.String() != "true" {
		selected, err := selectEmployer(records)
		if err != nil {
			logger.Fatal("exiting", zap.Error(err))
		}
		if selected != promptAllEmployers {
			employer = selected
		}
	}

	stats := market.HourlyStats(records, config.Hours.PerMonth, config.Thresholds.SummaryMinSalary, employer)
	printJSON(struct {
		Employer string         `json:"employer,omitempty"`
		Hourly   market.Summary `json:"hourly"`
	}{Employer: employer, Hourly: stats}, logger)
}

// selectEmployer prompts with employers ordered by vacancy count.
func selectEmployer(records []market.Record) (string, error) {
	items := append([]string{promptAllEmployers}, market.RankEmployers(records)...)

	prompt := promptui.Select{
		Label: "Choose an employer and press ENTER",
		Items: items,
	}

	_, selected, err := prompt.Run()
	if err != nil {
		return "", err
	}

	return selected, nil
}

func printJSON(v any, logger *zap.Logger) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		logger.Fatal("marshaling output", zap.Error(err))
	}

	fmt.Println(string(out))
}
