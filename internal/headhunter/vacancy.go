package headhunter

import (
	"encoding/json"
	"os"

	"github.com/ashmarin/hh-market-stats/internal/market"
	"github.com/ashmarin/hh-market-stats/internal/shiftpay"
)

// Field names accepted by Exclude.
const (
	VacancyEmployerNameField = "employer_name"
	VacancyScheduleNameField = "schedule_name"
)

// RotationScheduleName is the hh.ru schedule name for fly-in/fly-out work.
// Its pay is not comparable to local monthly salaries.
const RotationScheduleName = "Вахтовый метод"

type Vacancies struct {
	Items []*Vacancy
}

// Vacancy mirrors the hh.ru API vacancy item. Salary bounds are pointers:
// the API omits a bound rather than sending zero, and the difference
// matters for range midpoints.
type Vacancy struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name,omitempty"`
	Area struct {
		ID   string `json:"id,omitempty"`
		Name string `json:"name,omitempty"`
	} `json:"area,omitempty"`
	Salary *struct {
		From     *float64 `json:"from,omitempty"`
		To       *float64 `json:"to,omitempty"`
		Currency string   `json:"currency,omitempty"`
		Gross    bool     `json:"gross,omitempty"`
	} `json:"salary,omitempty"`
	Schedule struct {
		ID   string `json:"id,omitempty"`
		Name string `json:"name,omitempty"`
	} `json:"schedule,omitempty"`
	Employer struct {
		ID      string `json:"id,omitempty"`
		Name    string `json:"name,omitempty"`
		Trusted bool   `json:"trusted,omitempty"`
	} `json:"employer,omitempty"`
	Snippet struct {
		Requirement    string `json:"requirement,omitempty"`
		Responsibility string `json:"responsibility,omitempty"`
	} `json:"snippet,omitempty"`
	Experience struct {
		ID   string `json:"id,omitempty"`
		Name string `json:"name,omitempty"`
	} `json:"experience,omitempty"`
	Description  string `json:"description,omitempty"`
	AlternateURL string `json:"alternate_url,omitempty"`
	PublishedAt  string `json:"published_at,omitempty"`
	Archived     bool   `json:"archived,omitempty"`
}

func (v *Vacancies) Len() int {
	return len(v.Items)
}

func (v *Vacancies) DumpToTmpFile() (string, error) {
	file, err := os.CreateTemp("", "vacancies_*.json")
	if err != nil {
		return "", err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return "", err
	}
	return file.Name(), nil
}

// StringField returns the value of a field addressable by Exclude.
func (va *Vacancy) StringField(name string) string {
	switch name {
	case VacancyEmployerNameField:
		return va.Employer.Name
	case VacancyScheduleNameField:
		return va.Schedule.Name
	}
	return ""
}

// Exclude removes vacancies whose field matches any of the targets and
// returns the IDs of removed vacancies. Order is preserved.
func (v *Vacancies) Exclude(field string, targets []string) []string {
	drop := make(map[string]struct{}, len(targets))
	for _, t := range targets {
		drop[t] = struct{}{}
	}

	var excluded []string
	kept := v.Items[:0]
	for _, vacancy := range v.Items {
		if _, ok := drop[vacancy.StringField(field)]; ok {
			excluded = append(excluded, vacancy.ID)
			continue
		}
		kept = append(kept, vacancy)
	}
	v.Items = kept

	return excluded
}

// ExcludeArchived removes archived vacancies and returns their IDs.
func (v *Vacancies) ExcludeArchived() []string {
	var excluded []string
	kept := v.Items[:0]
	for _, vacancy := range v.Items {
		if vacancy.Archived {
			excluded = append(excluded, vacancy.ID)
			continue
		}
		kept = append(kept, vacancy)
	}
	v.Items = kept

	return excluded
}

// salaryAvg collapses the API salary object to a single monthly value:
// the midpoint of the range, or the one present bound.
func (va *Vacancy) salaryAvg() *float64 {
	if va.Salary == nil {
		return nil
	}
	from, to := va.Salary.From, va.Salary.To
	switch {
	case from != nil && to != nil:
		mid := (*from + *to) / 2
		return &mid
	case from != nil:
		v := *from
		return &v
	case to != nil:
		v := *to
		return &v
	}
	return nil
}

// ToRecords converts API vacancies into engine records. Per-shift pay is
// estimated from the title, snippet and description texts. When withMarks
// is set, computed employer marks are attached to each record.
func (v *Vacancies) ToRecords(withMarks bool) []market.Record {
	var marks map[string]float64
	if withMarks {
		marks = v.EmployerMarks()
	}

	records := make([]market.Record, 0, len(v.Items))
	for _, item := range v.Items {
		record := market.Record{
			Title:        item.Name,
			EmployerName: item.Employer.Name,
			SalaryAvg:    item.salaryAvg(),
			Schedule:     item.Schedule.Name,
		}

		if item.Salary != nil {
			record.Salary = &market.Range{From: item.Salary.From, To: item.Salary.To}
		}

		if estimate, ok := shiftpay.EstimateMonthly(
			item.Name,
			item.Snippet.Responsibility,
			item.Snippet.Requirement,
			item.Description,
		); ok {
			record.SalaryEstimatedMonthly = &estimate
			record.SalaryPerShift = true
		}

		if mark, ok := marks[item.Employer.ID]; ok {
			m := mark
			record.EmployerMark = &m
		}

		records = append(records, record)
	}

	return records
}
