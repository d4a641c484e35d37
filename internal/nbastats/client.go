package nbastats

import (
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/dghubble/sling"
)

const (
	// BaseURL is the NBA Stats API root.
	BaseURL = "https://stats.nba.com/stats"

	// RefererURL must accompany every request or the API rejects it.
	RefererURL = "https://www.nba.com/"

	// UserAgent mimics a browser; the API blocks unknown agents.
	UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

	// LeagueID identifies the NBA in league-scoped endpoints.
	LeagueID = "00"
)

// Client is a client for the NBA Stats API
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
	UserAgent  string
	Season     string
	SeasonType string
	Delay      time.Duration // courtesy pause before each request
}

// New creates a new NBA Stats API client for one season.
func New(season, seasonType string, delay, timeout time.Duration) *Client {
	return &Client{
		BaseURL: BaseURL,
		HTTPClient: &http.Client{
			Timeout: timeout,
		},
		UserAgent:  UserAgent,
		Season:     season,
		SeasonType: seasonType,
		Delay:      delay,
	}
}

// base returns a sling builder preconfigured with the client's base URL and
// the headers stats.nba.com requires.
func (c *Client) base() *sling.Sling {
	return sling.New().
		Client(c.HTTPClient).
		Base(strings.TrimRight(c.BaseURL, "/") + "/").
		Set("User-Agent", c.UserAgent).
		Set("Referer", RefererURL).
		Set("Accept", "application/json")
}

// get fetches one endpoint into the resultSets envelope.
func (c *Client) get(endpoint string, params interface{}) (*statsResponse, error) {
	time.Sleep(c.Delay)

	payload := new(statsResponse)
	resp, err := c.base().New().Get(endpoint).QueryStruct(params).ReceiveSuccess(payload)
	if err != nil {
		return nil, fmt.Errorf("requesting %s: %w", endpoint, err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s returned status %d", endpoint, resp.StatusCode)
	}

	return payload, nil
}

// statsResponse is the envelope every stats.nba.com endpoint returns:
// one or more result sets, each a parallel pair of column headers and
// untyped row arrays.
type statsResponse struct {
	Resource   string      `json:"resource"`
	ResultSets []resultSet `json:"resultSets"`
}

type resultSet struct {
	Name    string          `json:"name"`
	Headers []string        `json:"headers"`
	RowSet  [][]interface{} `json:"rowSet"`
}

// first returns the primary result set of a response.
func (p *statsResponse) first(endpoint string) (*resultSet, error) {
	if len(p.ResultSets) == 0 {
		return nil, fmt.Errorf("%s response contained no result sets", endpoint)
	}
	return &p.ResultSets[0], nil
}

// columnIndex maps uppercased header names to column positions. Header
// casing differs between endpoints (TeamID vs TEAM_ID), so lookups are
// normalized the same way.
func (rs *resultSet) columnIndex() map[string]int {
	idx := make(map[string]int, len(rs.Headers))
	for i, h := range rs.Headers {
		idx[strings.ToUpper(h)] = i
	}
	return idx
}

// column resolves a required column or reports which one is missing.
func (rs *resultSet) column(idx map[string]int, name, endpoint string) (int, error) {
	i, ok := idx[name]
	if !ok {
		return 0, fmt.Errorf("%s response missing column %q", endpoint, name)
	}
	return i, nil
}

// cellFloat coerces an untyped row cell to a float. JSON numbers decode as
// float64; some fields occasionally arrive as numeric strings.
func cellFloat(row []interface{}, i int) (float64, bool) {
	if i < 0 || i >= len(row) {
		return 0, false
	}
	switch v := row[i].(type) {
	case float64:
		return v, true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// cellString coerces an untyped row cell to a string.
func cellString(row []interface{}, i int) (string, bool) {
	if i < 0 || i >= len(row) {
		return "", false
	}
	s, ok := row[i].(string)
	return s, ok
}

// teamID renders a numeric team ID cell as its canonical decimal string.
func teamID(row []interface{}, i int) (string, bool) {
	f, ok := cellFloat(row, i)
	if !ok {
		return "", false
	}
	return strconv.FormatInt(int64(f), 10), true
}

// roundTo rounds v to the given number of decimal places.
func roundTo(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
