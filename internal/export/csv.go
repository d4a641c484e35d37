package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pfrederiksen/nba-season-fetch/internal/season"
)

// Columns is the fixed output header, in order. The downstream consumer
// matches on these names exactly.
var Columns = []string{
	"TEAM_ID", "TEAM_NAME", "W_PCT",
	"OFF_RATING", "DEF_RATING", "NET_RATING",
	"AST_PCT", "REB_PCT", "TS_PCT", "PACE",
	"Season",
}

// WriteCSV writes the rows to path, overwriting any existing file. The
// header is written even for an empty row set. Output is UTF-8 with \n
// line endings on every platform.
func WriteCSV(path string, rows []season.Row) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)

	if err := w.Write(Columns); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, r := range rows {
		record := []string{
			r.TeamID,
			r.TeamName,
			FormatStat(r.WinPct),
			FormatStat(r.OffRating),
			FormatStat(r.DefRating),
			FormatStat(r.NetRating),
			FormatStat(r.AstPct),
			FormatStat(r.RebPct),
			FormatStat(r.TsPct),
			FormatStat(r.Pace),
			r.Season,
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("writing row for team %s: %w", r.TeamID, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flushing output: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing output file: %w", err)
	}

	return nil
}

// FormatStat renders a stat value in its shortest decimal form while always
// keeping at least one fractional digit, so whole-number ratings still read
// as floats (110 → "110.0") and rounded values carry no padding
// (0.55 stays "0.55").
func FormatStat(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
