package headhunter

import (
	"fmt"

	"github.com/mitchellh/mapstructure"

	"github.com/ashmarin/hh-market-stats/internal/market"
)

type Resumes struct {
	Items []*Resume
}

// Resume is a resume search item. Only the fields the demand-side stats
// need are kept.
type Resume struct {
	ID              string `json:"id,omitempty"`
	Title           string `json:"title,omitempty"`
	JobSearchStatus struct {
		ID   string `json:"id,omitempty"`
		Name string `json:"name,omitempty"`
	} `json:"job_search_status,omitempty"`
}

func (r *Resumes) Len() int {
	return len(r.Items)
}

// searchResumes queries the employer-side resume search. Requires an
// authorized client, the API rejects anonymous resume searches.
func (c *Client) searchResumes(params *SearchParams) (*Resumes, error) {
	if c.token == "" {
		return nil, fmt.Errorf("resume search requires an api token")
	}

	if params.PerPage == "" {
		params.PerPage = perPage
	}

	q := buildParams(params)
	apiURLResumes := fmt.Sprintf("%s%s", c.APIURL, ResumesSearchPath)

	items, err := c.GetItems(apiURLResumes, q)
	if err != nil {
		return nil, err
	}

	var resumes []*Resume
	cfg := &mapstructure.DecoderConfig{
		Metadata: nil,
		Result:   &resumes,
		TagName:  "json",
	}
	decoder, _ := mapstructure.NewDecoder(cfg)
	decoder.Decode(items)

	return &Resumes{
		Items: resumes,
	}, nil
}

// ToRecords converts resume items into engine records.
func (r *Resumes) ToRecords() []market.ResumeRecord {
	records := make([]market.ResumeRecord, 0, len(r.Items))
	for _, item := range r.Items {
		records = append(records, market.ResumeRecord{
			Title:           item.Title,
			JobSearchStatus: item.JobSearchStatus.Name,
		})
	}

	return records
}
