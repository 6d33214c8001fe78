package market

// HourlyStats derives hourly-rate (ЧТС) statistics from the records.
//
// employer narrows the sample to one employer (trimmed exact match); pass
// an empty string to keep the whole market. Per-shift vacancies and
// vacancies without a schedule never contribute: the first quote pay per
// shift, the second give no ground to assume standard hours. Monthly
// values below minMonthly are discarded. No outlier filtering is applied
// in this path.
func HourlyStats(records []Record, hoursPerMonth, minMonthly float64, employer string) Summary {
	if hoursPerMonth <= 0 {
		return Summary{}
	}

	rates := hourlyRates(records, hoursPerMonth, minMonthly, employer)
	return Summarize(rates)
}

func hourlyRates(records []Record, hoursPerMonth, minMonthly float64, employer string) []float64 {
	rates := make([]float64, 0, len(records))
	for i := range records {
		r := &records[i]
		if employer != "" && r.Employer() != employer {
			continue
		}
		if r.SalaryPerShift || !r.HasSchedule() {
			continue
		}
		monthly, ok := r.Monthly()
		if !ok || monthly < minMonthly {
			continue
		}
		rates = append(rates, monthly/hoursPerMonth)
	}
	return rates
}

// CompanyStat is the per-employer slice of the hourly benchmark.
type CompanyStat struct {
	Employer string `json:"employer"`
	// Vacancies is the employer's total vacancy count in the sample.
	Vacancies int `json:"vacancies"`
	// WithSalary counts vacancies that produced a usable monthly value.
	WithSalary int `json:"with_salary"`
	// SalaryCoverage is WithSalary / Vacancies.
	SalaryCoverage float64 `json:"salary_coverage"`
	Hourly         Summary `json:"hourly"`
}

// CompanyStats groups the records by employer and benchmarks each one:
// vacancy counts, salary-field coverage and an hourly-rate summary using
// the supplied working-hours figure. Employers are ordered the same way
// RankEmployers orders them. Records without an employer are skipped.
func CompanyStats(records []Record, hoursPerMonth, minMonthly float64) []CompanyStat {
	if hoursPerMonth <= 0 {
		return nil
	}

	stats := make([]CompanyStat, 0)
	for _, name := range RankEmployers(records) {
		stat := CompanyStat{Employer: name}
		for i := range records {
			r := &records[i]
			if r.Employer() != name {
				continue
			}
			stat.Vacancies++
			if _, ok := r.Monthly(); ok {
				stat.WithSalary++
			}
		}
		if stat.Vacancies > 0 {
			stat.SalaryCoverage = float64(stat.WithSalary) / float64(stat.Vacancies)
		}
		stat.Hourly = HourlyStats(records, hoursPerMonth, minMonthly, name)
		stats = append(stats, stat)
	}

	return stats
}
