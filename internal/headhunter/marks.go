package headhunter

// Mark weights. Trust dominates, then how often the employer publishes
// salaries, then how those salaries compare to the rest of the sample,
// then sheer posting volume.
const (
	markTrustedWeight  = 0.4
	markCoverageWeight = 0.3
	markSalaryWeight   = 0.2
	markVolumeWeight   = 0.1
)

type employerAccum struct {
	trusted   bool
	vacancies int
	salaries  []float64
}

// EmployerMarks scores every employer in the set on a 1..5 scale and
// returns the marks keyed by employer ID. The score blends the hh.ru
// trusted flag, the share of vacancies that publish a salary, the
// employer's average salary normalized across the sample, and the
// employer's share of the largest posting volume.
func (v *Vacancies) EmployerMarks() map[string]float64 {
	accums := make(map[string]*employerAccum)
	for _, item := range v.Items {
		id := item.Employer.ID
		if id == "" {
			continue
		}
		acc, ok := accums[id]
		if !ok {
			acc = &employerAccum{}
			accums[id] = acc
		}
		acc.vacancies++
		if item.Employer.Trusted {
			acc.trusted = true
		}
		if avg := item.salaryAvg(); avg != nil {
			acc.salaries = append(acc.salaries, *avg)
		}
	}
	if len(accums) == 0 {
		return nil
	}

	avgs := make(map[string]float64, len(accums))

	minAvg, maxAvg := 0.0, 0.0
	haveAvg := false
	maxCount := 0
	for id, acc := range accums {
		if acc.vacancies > maxCount {
			maxCount = acc.vacancies
		}
		if len(acc.salaries) == 0 {
			continue
		}
		sum := 0.0
		for _, s := range acc.salaries {
			sum += s
		}
		avg := sum / float64(len(acc.salaries))
		avgs[id] = avg
		if !haveAvg || avg < minAvg {
			minAvg = avg
		}
		if !haveAvg || avg > maxAvg {
			maxAvg = avg
		}
		haveAvg = true
	}

	marks := make(map[string]float64, len(accums))
	for id, acc := range accums {
		score := 0.0
		if acc.trusted {
			score += markTrustedWeight
		}
		score += markCoverageWeight * float64(len(acc.salaries)) / float64(acc.vacancies)
		if avg, ok := avgs[id]; ok && maxAvg > minAvg {
			score += markSalaryWeight * (avg - minAvg) / (maxAvg - minAvg)
		}
		if maxCount > 0 {
			score += markVolumeWeight * float64(acc.vacancies) / float64(maxCount)
		}

		mark := 1 + score*4
		if mark < 1 {
			mark = 1
		}
		if mark > 5 {
			mark = 5
		}
		marks[id] = mark
	}
	return marks
}
