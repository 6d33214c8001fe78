package market

import "sort"

// Point is one vacancy on the salary/rating chart.
type Point struct {
	Salary   float64 `json:"salary"`
	Mark     float64 `json:"mark"`
	Title    string  `json:"title"`
	Employer string  `json:"employer"`
}

// Points converts records into chart points and a salary summary.
//
// A point needs a monthly value at or above minMonthly and an employer
// mark; records missing either are silently dropped, that is the display
// policy rather than an error. Points whose salary exceeds the Tukey
// upper fence of the valid monthly sample are hidden from the chart.
//
// The returned Summary is computed over the unfiltered valid sample: the
// summary card deliberately keeps the outliers the chart hides.
func Points(records []Record, minMonthly float64) ([]Point, Summary) {
	valid := make([]float64, 0, len(records))
	for i := range records {
		monthly, ok := records[i].Monthly()
		if ok && monthly >= minMonthly {
			valid = append(valid, monthly)
		}
	}
	sort.Float64s(valid)

	fences := IQRFences(valid)

	points := make([]Point, 0, len(records))
	for i := range records {
		r := &records[i]
		monthly, ok := r.Monthly()
		if !ok || monthly < minMonthly || r.EmployerMark == nil {
			continue
		}
		if fences.Outlier(monthly) {
			continue
		}
		points = append(points, Point{
			Salary:   monthly,
			Mark:     *r.EmployerMark,
			Title:    r.Title,
			Employer: r.EmployerName,
		})
	}

	return points, Summarize(valid)
}
