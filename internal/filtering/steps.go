package filtering

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/ashmarin/hh-market-stats/internal/headhunter"
)

type archivedFilter struct{}

// NewArchived creates a filter that removes archived vacancies. Their
// salaries may be long out of date.
func NewArchived() Filter {
	return &archivedFilter{}
}

func (f *archivedFilter) Name() string { return "archived" }

func (f *archivedFilter) Validate(*Config) error { return nil }

func (f *archivedFilter) Apply(_ context.Context, deps Deps, v *headhunter.Vacancies) (*headhunter.Vacancies, Step, error) {
	initial := v.Len()
	excluded := v.ExcludeArchived()
	if deps.Logger != nil && len(excluded) > 0 {
		deps.Logger.Info("excluding archived vacancies",
			zap.Strings("excluded_vacancies", excluded),
			zap.Int("vacancies_left", v.Len()),
		)
	}

	return v, Step{Initial: initial, Dropped: len(excluded), Left: v.Len()}, nil
}

type rotationScheduleFilter struct{}

// NewRotationSchedule creates a filter that removes fly-in/fly-out
// vacancies. Rotation pay covers room and board and would skew local
// salary statistics.
func NewRotationSchedule() Filter {
	return &rotationScheduleFilter{}
}

func (f *rotationScheduleFilter) Name() string { return "rotation_schedule" }

func (f *rotationScheduleFilter) Validate(*Config) error { return nil }

func (f *rotationScheduleFilter) Apply(_ context.Context, deps Deps, v *headhunter.Vacancies) (*headhunter.Vacancies, Step, error) {
	initial := v.Len()
	excluded := v.Exclude(headhunter.VacancyScheduleNameField, []string{headhunter.RotationScheduleName})
	if deps.Logger != nil && len(excluded) > 0 {
		deps.Logger.Info("excluding rotation schedule vacancies",
			zap.Strings("excluded_vacancies", excluded),
			zap.Int("vacancies_left", v.Len()),
		)
	}

	return v, Step{Initial: initial, Dropped: len(excluded), Left: v.Len()}, nil
}

type excludedEmployersFilter struct {
	employers []string
}

// NewExcludedEmployers creates a filter that removes vacancies by
// employers configured in the config.
func NewExcludedEmployers() Filter {
	return &excludedEmployersFilter{}
}

func (f *excludedEmployersFilter) Name() string { return "employers" }

func (f *excludedEmployersFilter) Validate(cfg *Config) error {
	f.employers = nil
	if cfg == nil {
		return nil
	}
	for _, employer := range cfg.Employers {
		if trimmed := strings.TrimSpace(employer); trimmed != "" {
			f.employers = append(f.employers, trimmed)
		}
	}
	return nil
}

func (f *excludedEmployersFilter) Apply(_ context.Context, deps Deps, v *headhunter.Vacancies) (*headhunter.Vacancies, Step, error) {
	initial := v.Len()
	if len(f.employers) == 0 {
		return v, Step{Initial: initial, Dropped: 0, Left: v.Len()}, nil
	}

	excluded := v.Exclude(headhunter.VacancyEmployerNameField, f.employers)
	if deps.Logger != nil && len(excluded) > 0 {
		deps.Logger.Info("excluding vacancies by employers",
			zap.Strings("excluded_employers", f.employers),
			zap.Strings("excluded_vacancies", excluded),
			zap.Int("vacancies_left", v.Len()),
		)
	}

	return v, Step{Initial: initial, Dropped: len(excluded), Left: v.Len()}, nil
}
