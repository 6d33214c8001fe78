// Package filtering curates the raw vacancy list before it reaches the
// statistics engine: rotation-schedule postings, archived postings and
// explicitly excluded employers are dropped, step by step.
package filtering

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/ashmarin/hh-market-stats/internal/headhunter"
)

// Filter represents a single curation step applied to vacancies.
type Filter interface {
	Name() string
	Validate(cfg *Config) error
	Apply(ctx context.Context, deps Deps, v *headhunter.Vacancies) (*headhunter.Vacancies, Step, error)
}

// Deps aggregates dependencies shared across all filtering steps.
type Deps struct {
	Logger *zap.Logger
}

// Step describes the result of executing a filtering step.
type Step struct {
	Initial int
	Dropped int
	Left    int
}

// Config contains configuration settings consumed by the filters.
type Config struct {
	Employers []string
}

// Default returns the curation steps in execution order.
func Default() []Filter {
	return []Filter{
		NewArchived(),
		NewRotationSchedule(),
		NewExcludedEmployers(),
	}
}

// Run executes the supplied filters sequentially and returns the
// resulting vacancies list.
func Run(ctx context.Context, cfg *Config, deps Deps, steps []Filter, v *headhunter.Vacancies) (*headhunter.Vacancies, error) {
	for _, step := range steps {
		if err := step.Validate(cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", step.Name(), err)
		}
	}

	for _, step := range steps {
		next, info, err := step.Apply(ctx, deps, v)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", step.Name(), err)
		}

		if deps.Logger != nil {
			deps.Logger.Info("filter step",
				zap.String("name", step.Name()),
				zap.Int("initial", info.Initial),
				zap.Int("dropped", info.Dropped),
				zap.Int("left", info.Left),
			)
		}

		v = next
	}

	return v, nil
}
