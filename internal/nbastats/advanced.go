package nbastats

import (
	"fmt"
)

// TeamAdvanced is one team's efficiency metrics from the advanced stats
// endpoint. Ratings carry 1 decimal, percentages 3, pace 2.
type TeamAdvanced struct {
	OffRating float64
	DefRating float64
	NetRating float64
	AstPct    float64
	RebPct    float64
	TsPct     float64
	Pace      float64
}

// advancedParams are the query parameters for leaguedashteamstats.
type advancedParams struct {
	Season      string `url:"Season"`
	SeasonType  string `url:"SeasonType"`
	MeasureType string `url:"MeasureType"`
	PerMode     string `url:"PerMode"`
}

// advancedColumns maps each metric to its column name and rounding
// precision, in the order the fields are filled.
var advancedColumns = []struct {
	name   string
	places int
	set    func(*TeamAdvanced, float64)
}{
	{"OFF_RATING", 1, func(a *TeamAdvanced, v float64) { a.OffRating = v }},
	{"DEF_RATING", 1, func(a *TeamAdvanced, v float64) { a.DefRating = v }},
	{"NET_RATING", 1, func(a *TeamAdvanced, v float64) { a.NetRating = v }},
	{"AST_PCT", 3, func(a *TeamAdvanced, v float64) { a.AstPct = v }},
	{"REB_PCT", 3, func(a *TeamAdvanced, v float64) { a.RebPct = v }},
	{"TS_PCT", 3, func(a *TeamAdvanced, v float64) { a.TsPct = v }},
	{"PACE", 2, func(a *TeamAdvanced, v float64) { a.Pace = v }},
}

// FetchAdvanced pulls per-game advanced team stats and returns a map keyed
// by team ID (decimal string), with each metric rounded to its precision.
func (c *Client) FetchAdvanced() (map[string]TeamAdvanced, error) {
	fmt.Printf("  [2/2] Fetching advanced stats for %s...\n", c.Season)

	payload, err := c.get("leaguedashteamstats", &advancedParams{
		Season:      c.Season,
		SeasonType:  c.SeasonType,
		MeasureType: "Advanced",
		PerMode:     "PerGame",
	})
	if err != nil {
		return nil, err
	}

	rs, err := payload.first("leaguedashteamstats")
	if err != nil {
		return nil, err
	}

	idx := rs.columnIndex()
	idCol, err := rs.column(idx, "TEAM_ID", "advanced stats")
	if err != nil {
		return nil, err
	}
	metricCols := make([]int, len(advancedColumns))
	for i, col := range advancedColumns {
		if metricCols[i], err = rs.column(idx, col.name, "advanced stats"); err != nil {
			return nil, err
		}
	}

	stats := make(map[string]TeamAdvanced, len(rs.RowSet))
	for _, row := range rs.RowSet {
		tid, ok := teamID(row, idCol)
		if !ok {
			return nil, fmt.Errorf("advanced stats row has malformed team ID: %v", row)
		}

		var adv TeamAdvanced
		for i, col := range advancedColumns {
			v, ok := cellFloat(row, metricCols[i])
			if !ok {
				return nil, fmt.Errorf("advanced stats row for team %s has malformed %s", tid, col.name)
			}
			col.set(&adv, roundTo(v, col.places))
		}
		stats[tid] = adv
	}

	fmt.Printf("  Advanced stats fetched (%d teams)\n", len(stats))
	return stats, nil
}
