// Package market converts heterogeneous hh.ru vacancy records into
// comparable monthly and hourly compensation figures and summary
// statistics. All functions are pure: they never mutate their input and
// hold no state between calls.
package market

import "strings"

// Thresholds and divisors used by the dashboard call sites. The two views
// disagree on purpose; every function takes them as explicit parameters so
// a caller can never pick one up silently.
const (
	// DefaultMinMonthlySummary is the minimum plausible monthly salary for
	// summary statistics. Values below it are data-entry noise, not pay.
	DefaultMinMonthlySummary = 10000.0
	// DefaultMinMonthlyPoints is the stricter minimum used by the
	// salary/rating chart.
	DefaultMinMonthlyPoints = 13000.0
	// DefaultHoursPerMonth is the assumed working hours per month for the
	// standalone hourly-rate aggregator.
	DefaultHoursPerMonth = 164.0
	// DefaultCompanyHoursPerMonth is used by the per-company breakdown when
	// no production-calendar figure is supplied.
	DefaultCompanyHoursPerMonth = 168.0
)

// Range is a vacancy salary range. Either bound may be absent.
type Range struct {
	From *float64
	To   *float64
}

// Record is a single vacancy as seen by the aggregation engine. Optional
// numeric fields are pointers: nil means the source record did not carry
// the value.
type Record struct {
	Title        string
	EmployerName string
	// EmployerMark is an employer rating in [0,5].
	EmployerMark *float64
	// SalaryAvg is the already-normalized monthly salary from the API
	// salary object. Not monthly when SalaryPerShift is set.
	SalaryAvg *float64
	Salary    *Range
	// SalaryEstimatedMonthly is the monthly estimate derived from per-shift
	// pay mentions. Only meaningful when SalaryPerShift is set.
	SalaryEstimatedMonthly *float64
	// SalaryPerShift marks vacancies whose quoted pay is per shift, not per
	// month.
	SalaryPerShift bool
	// Schedule is the schedule name, empty when the vacancy has none.
	Schedule string
}

// Monthly returns the best-estimate monthly salary for the record. The
// second return value is false when no usable source field exists.
//
// Per-shift records use the estimated monthly value exclusively: their
// SalaryAvg and Salary range are shift-denominated and would corrupt
// monthly comparisons if used.
func (r *Record) Monthly() (float64, bool) {
	if r.SalaryPerShift {
		if r.SalaryEstimatedMonthly != nil {
			return *r.SalaryEstimatedMonthly, true
		}
		return 0, false
	}

	if r.SalaryAvg != nil {
		return *r.SalaryAvg, true
	}

	if r.Salary != nil {
		from, to := r.Salary.From, r.Salary.To
		switch {
		case from != nil && to != nil:
			return (*from + *to) / 2, true
		case from != nil:
			return *from, true
		case to != nil:
			return *to, true
		}
	}

	return 0, false
}

// Employer returns the trimmed employer name, empty when the record has no
// usable employer.
func (r *Record) Employer() string {
	return strings.TrimSpace(r.EmployerName)
}

// HasSchedule reports whether the vacancy carries a schedule. Hourly-rate
// derivation treats schedule-less vacancies as non-hourly roles.
func (r *Record) HasSchedule() bool {
	return strings.TrimSpace(r.Schedule) != ""
}
