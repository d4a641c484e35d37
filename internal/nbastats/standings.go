package nbastats

import (
	"fmt"
)

// TeamStanding is one team's win/loss record from the standings endpoint.
type TeamStanding struct {
	TeamName string
	WinPct   float64
}

// standingsParams are the query parameters for leaguestandingsv3.
type standingsParams struct {
	LeagueID   string `url:"LeagueID"`
	Season     string `url:"Season"`
	SeasonType string `url:"SeasonType"`
}

// FetchStandings pulls the league standings and returns a map keyed by
// team ID (decimal string). Win percentage is computed from raw win/loss
// counts, rounded to 3 decimals, and 0.0 for a team with no games played.
func (c *Client) FetchStandings() (map[string]TeamStanding, error) {
	fmt.Printf("  [1/2] Fetching standings for %s...\n", c.Season)

	payload, err := c.get("leaguestandingsv3", &standingsParams{
		LeagueID:   LeagueID,
		Season:     c.Season,
		SeasonType: c.SeasonType,
	})
	if err != nil {
		return nil, err
	}

	rs, err := payload.first("leaguestandingsv3")
	if err != nil {
		return nil, err
	}

	idx := rs.columnIndex()
	var cols struct{ id, name, wins, losses int }
	if cols.id, err = rs.column(idx, "TEAMID", "standings"); err != nil {
		return nil, err
	}
	if cols.name, err = rs.column(idx, "TEAMNAME", "standings"); err != nil {
		return nil, err
	}
	if cols.wins, err = rs.column(idx, "WINS", "standings"); err != nil {
		return nil, err
	}
	if cols.losses, err = rs.column(idx, "LOSSES", "standings"); err != nil {
		return nil, err
	}

	standings := make(map[string]TeamStanding, len(rs.RowSet))
	for _, row := range rs.RowSet {
		tid, ok := teamID(row, cols.id)
		if !ok {
			return nil, fmt.Errorf("standings row has malformed team ID: %v", row)
		}
		name, ok := cellString(row, cols.name)
		if !ok {
			return nil, fmt.Errorf("standings row for team %s has malformed name", tid)
		}
		wins, ok := cellFloat(row, cols.wins)
		if !ok {
			return nil, fmt.Errorf("standings row for team %s has malformed win count", tid)
		}
		losses, ok := cellFloat(row, cols.losses)
		if !ok {
			return nil, fmt.Errorf("standings row for team %s has malformed loss count", tid)
		}

		standings[tid] = TeamStanding{
			TeamName: name,
			WinPct:   WinPct(int(wins), int(losses)),
		}
	}

	fmt.Printf("  Standings fetched (%d teams)\n", len(standings))
	return standings, nil
}

// WinPct computes wins/(wins+losses) rounded to 3 decimals.
// A team with no games played has a win percentage of 0.0.
func WinPct(wins, losses int) float64 {
	games := wins + losses
	if games == 0 {
		return 0.0
	}
	return roundTo(float64(wins)/float64(games), 3)
}
