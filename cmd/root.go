package cmd

import (
	"errors"
	"log"
	"strings"

	"github.com/ashmarin/hh-market-stats/internal/headhunter"
	"github.com/ashmarin/hh-market-stats/internal/market"
	"github.com/ashmarin/hh-market-stats/internal/secrets"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	app = "hh-market-stats"
)

type Config struct {
	Search  *headhunter.SearchParams `mapstructure:"search"`
	Exclude *struct {
		Employers []string
	}
	Thresholds *ThresholdsConfig `mapstructure:"thresholds"`
	Hours      *HoursConfig      `mapstructure:"hours"`
	Resumes    *ResumesConfig    `mapstructure:"resumes"`
	UserAgent  string            `mapstructure:"user-agent"`
	TokenFile  string            `mapstructure:"token-file"`
}

// ThresholdsConfig holds the minimum plausible monthly salaries. Values
// below a threshold are treated as per-shift leftovers or typos.
type ThresholdsConfig struct {
	SummaryMinSalary float64 `mapstructure:"summary-min-salary"`
	PointsMinSalary  float64 `mapstructure:"points-min-salary"`
}

// HoursConfig holds the assumed working hours per month for hourly rates.
type HoursConfig struct {
	PerMonth        float64 `mapstructure:"per-month"`
	CompanyPerMonth float64 `mapstructure:"company-per-month"`
}

// ResumesConfig enables the demand-side resume stats. Requires a token.
type ResumesConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "hh-market-stats is a cli for collecting salary statistics for a profession from hh.ru",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	if err := viper.BindEnv("token-file", "HH_TOKEN_FILE"); err != nil {
		log.Fatalf("binding HH_TOKEN_FILE environment variable: %v", err)
	}

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is hh-market-stats.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
}

func initConfig() {
	// Config needed only for the data commands. If there is no config, we
	// can skip initialization.
	if analyzeCmd.CalledAs() == "" && hourlyCmd.CalledAs() == "" {
		return
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app + ".yaml")
	}

	// We can't proceed if the config file parsed with error.
	if err := viper.ReadInConfig(); err != nil {
		log.Fatal(err)
	}
}

func getConfig() (*Config, error) {
	var config *Config
	if err := viper.Unmarshal(&config); err != nil {
		return config, err
	}

	if config == nil {
		return nil, errors.New("config is required")
	}
	if config.Search == nil || strings.TrimSpace(config.Search.Text) == "" {
		return nil, errors.New("search.text is required")
	}

	config.applyDefaults()

	return config, nil
}

func (c *Config) applyDefaults() {
	if c.Thresholds == nil {
		c.Thresholds = &ThresholdsConfig{}
	}
	if c.Thresholds.SummaryMinSalary <= 0 {
		c.Thresholds.SummaryMinSalary = market.DefaultMinMonthlySummary
	}
	if c.Thresholds.PointsMinSalary <= 0 {
		c.Thresholds.PointsMinSalary = market.DefaultMinMonthlyPoints
	}

	if c.Hours == nil {
		c.Hours = &HoursConfig{}
	}
	if c.Hours.PerMonth <= 0 {
		c.Hours.PerMonth = market.DefaultHoursPerMonth
	}
	if c.Hours.CompanyPerMonth <= 0 {
		c.Hours.CompanyPerMonth = market.DefaultCompanyHoursPerMonth
	}
}

func (c *Config) excludedEmployers() []string {
	if c.Exclude == nil {
		return nil
	}
	return c.Exclude.Employers
}

// resolveToken loads the optional hh.ru token. An unconfigured token is
// not an error, anonymous vacancy search works without one.
func resolveToken(config *Config) (string, error) {
	tokenFile := strings.TrimSpace(config.TokenFile)
	if tokenFile == "" {
		tokenFile = strings.TrimSpace(viper.GetString("token-file"))
	}

	if tokenFile == "" {
		return "", nil
	}

	return secrets.Load(secrets.Source{
		Name: "headhunter token",
		File: tokenFile,
	})
}
