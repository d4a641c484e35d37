package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/pfrederiksen/nba-season-fetch/internal/export"
	"github.com/pfrederiksen/nba-season-fetch/internal/season"
)

// previewLimit caps how many rows the preview table shows.
const previewLimit = 5

// WritePreview prints a truncated human-readable sample of the merged rows.
// Purely diagnostic; the written file is not affected.
func WritePreview(w io.Writer, rows []season.Row) {
	fmt.Fprintf(w, "\n  %-32s %5s  %5s  %5s  %5s\n", "TEAM", "W_PCT", "NET", "DEF", "PACE")
	fmt.Fprintf(w, "  %s\n", strings.Repeat("-", 55))

	for i, r := range rows {
		if i == previewLimit {
			break
		}
		fmt.Fprintf(w, "  %-32s %5s  %5s  %5s  %5s\n",
			r.TeamName,
			export.FormatStat(r.WinPct),
			export.FormatStat(r.NetRating),
			export.FormatStat(r.DefRating),
			export.FormatStat(r.Pace))
	}

	if len(rows) > previewLimit {
		fmt.Fprintf(w, "  ... and %d more teams\n", len(rows)-previewLimit)
	}
}
