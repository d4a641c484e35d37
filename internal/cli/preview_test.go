package cli

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/pfrederiksen/nba-season-fetch/internal/season"
)

func sampleRows(n int) []season.Row {
	rows := make([]season.Row, 0, n)
	for i := 0; i < n; i++ {
		rows = append(rows, season.Row{
			TeamID:    fmt.Sprintf("%d", i+1),
			TeamName:  fmt.Sprintf("Team %c", 'A'+i),
			WinPct:    0.6,
			NetRating: 4.5,
			DefRating: 110.8,
			Pace:      98.77,
			Season:    "2025-26",
		})
	}
	return rows
}

func TestWritePreview_Truncates(t *testing.T) {
	var buf bytes.Buffer
	WritePreview(&buf, sampleRows(7))

	out := buf.String()

	if !strings.Contains(out, "TEAM") || !strings.Contains(out, "W_PCT") {
		t.Errorf("preview missing header: %q", out)
	}
	if !strings.Contains(out, "Team A") || !strings.Contains(out, "Team E") {
		t.Errorf("preview should show the first 5 teams: %q", out)
	}
	if strings.Contains(out, "Team F") {
		t.Errorf("preview should not show teams past the limit: %q", out)
	}
	if !strings.Contains(out, "... and 2 more teams") {
		t.Errorf("preview missing remainder count: %q", out)
	}
}

func TestWritePreview_ShortList(t *testing.T) {
	var buf bytes.Buffer
	WritePreview(&buf, sampleRows(3))

	out := buf.String()

	if strings.Contains(out, "more teams") {
		t.Errorf("no remainder line expected for short lists: %q", out)
	}
	if !strings.Contains(out, "Team C") {
		t.Errorf("all rows should be shown: %q", out)
	}
}

func TestWritePreview_FormatsStats(t *testing.T) {
	var buf bytes.Buffer
	WritePreview(&buf, []season.Row{{
		TeamName:  "Alpha",
		WinPct:    0.6,
		NetRating: 5.0,
		DefRating: 105.0,
		Pace:      98.0,
	}})

	out := buf.String()
	for _, want := range []string{"0.6", "5.0", "105.0", "98.0"} {
		if !strings.Contains(out, want) {
			t.Errorf("preview missing formatted stat %q: %q", want, out)
		}
	}
}
