package market

import "strings"

// Job-search status phrases that count a résumé as an active job seeker.
var activeStatusPhrases = []string{
	"активно ищу работу",
	"рассматриваю предложения",
}

// ResumeRecord is a single résumé as seen by the supply/demand stats.
type ResumeRecord struct {
	Title string
	// JobSearchStatus is the declared search status, free-form text.
	JobSearchStatus string
}

// ResumeSummary describes résumé supply against vacancy demand.
type ResumeSummary struct {
	Total  int `json:"total"`
	Active int `json:"active"`
	// ActiveShare is Active / Total, nil when there are no résumés.
	ActiveShare *float64 `json:"active_share,omitempty"`
	// PerVacancy is active résumés per vacancy, nil when vacancyCount is
	// zero.
	PerVacancy *float64 `json:"per_vacancy,omitempty"`
}

// Active reports whether the résumé declares an active job search.
func (r *ResumeRecord) Active() bool {
	status := strings.ToLower(strings.TrimSpace(r.JobSearchStatus))
	if status == "" {
		status = strings.ToLower(r.Title)
	}
	for _, phrase := range activeStatusPhrases {
		if strings.Contains(status, phrase) {
			return true
		}
	}
	return false
}

// ResumeStats counts active résumés and relates them to the number of
// open vacancies for the same query.
func ResumeStats(resumes []ResumeRecord, vacancyCount int) ResumeSummary {
	summary := ResumeSummary{Total: len(resumes)}
	for i := range resumes {
		if resumes[i].Active() {
			summary.Active++
		}
	}

	if summary.Total > 0 {
		share := float64(summary.Active) / float64(summary.Total)
		summary.ActiveShare = &share
	}
	if vacancyCount > 0 {
		perVacancy := float64(summary.Active) / float64(vacancyCount)
		summary.PerVacancy = &perVacancy
	}

	return summary
}
