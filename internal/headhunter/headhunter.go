package headhunter

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"
)

const (
	apiURL    = "https://api.hh.ru"
	userAgent = "ashmarin/hh-market-stats (ashmarin.dev@gmail.com)"
	// Max value for search per page.
	perPage = "100"
	// Delay between page requests. The API throttles impatient clients.
	pageDelay = 500 * time.Millisecond
)

type Client struct {
	// ctx used only for http requests right now
	ctx        context.Context
	token      string
	logger     *zap.Logger
	HTTPClient *http.Client
	UserAgent  string
	APIURL     string
	PageDelay  time.Duration
}

// New creates a client for the hh.ru API. The token is optional: vacancy
// search works anonymously, resume search does not.
func New(ctx context.Context, logger *zap.Logger, token string) *Client {
	return &Client{
		ctx:    ctx,
		token:  token,
		APIURL: apiURL,
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		logger:    logger,
		UserAgent: userAgent,
		PageDelay: pageDelay,
	}
}

func (c *Client) Search(params *SearchParams) (*Vacancies, error) {
	return c.search(params)
}

func (c *Client) SearchResumes(params *SearchParams) (*Resumes, error) {
	return c.searchResumes(params)
}
