package season

import (
	"sort"

	"github.com/pfrederiksen/nba-season-fetch/internal/logger"
	"github.com/pfrederiksen/nba-season-fetch/internal/nbastats"
)

// Row is one team's merged record: identity and win percentage from the
// standings, efficiency metrics from the advanced stats, stamped with the
// season label.
type Row struct {
	TeamID    string
	TeamName  string
	WinPct    float64
	OffRating float64
	DefRating float64
	NetRating float64
	AstPct    float64
	RebPct    float64
	TsPct     float64
	Pace      float64
	Season    string
}

// BuildRows joins the two stat maps on team ID. A team present in the
// standings but absent from the advanced stats is skipped with a warning,
// never an error; partial coverage is acceptable. Rows come back sorted by
// team name ascending.
func BuildRows(standings map[string]nbastats.TeamStanding, advanced map[string]nbastats.TeamAdvanced, seasonLabel string) []Row {
	rows := make([]Row, 0, len(standings))

	for tid, s := range standings {
		adv, ok := advanced[tid]
		if !ok {
			logger.Warn("Skipping team missing from advanced stats", logger.Fields{
				"team_id": tid,
				"team":    s.TeamName,
			})
			logger.IncrCounter("merge.skipped")
			continue
		}

		rows = append(rows, Row{
			TeamID:    tid,
			TeamName:  s.TeamName,
			WinPct:    s.WinPct,
			OffRating: adv.OffRating,
			DefRating: adv.DefRating,
			NetRating: adv.NetRating,
			AstPct:    adv.AstPct,
			RebPct:    adv.RebPct,
			TsPct:     adv.TsPct,
			Pace:      adv.Pace,
			Season:    seasonLabel,
		})
	}
	logger.AddCounter("merge.rows", int64(len(rows)))

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].TeamName != rows[j].TeamName {
			return rows[i].TeamName < rows[j].TeamName
		}
		// Equal names get an ID tie-break so output order is deterministic
		return rows[i].TeamID < rows[j].TeamID
	})

	return rows
}
