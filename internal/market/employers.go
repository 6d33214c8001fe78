package market

import "sort"

// RankEmployers returns distinct employer names ordered by how many
// vacancies each one posted, descending. Ties keep first-encountered
// order, so the ranking is stable across calls with the same input.
// Records with an empty or whitespace-only employer are ignored.
func RankEmployers(records []Record) []string {
	counts := make(map[string]int)
	names := make([]string, 0)

	for i := range records {
		name := records[i].Employer()
		if name == "" {
			continue
		}
		if _, seen := counts[name]; !seen {
			names = append(names, name)
		}
		counts[name]++
	}

	sort.SliceStable(names, func(i, j int) bool {
		return counts[names[i]] > counts[names[j]]
	})

	return names
}
