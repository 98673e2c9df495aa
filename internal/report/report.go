// Package report renders analytics tables to a writer. Layout follows one
// convention everywhere: right-aligned data cells, centered headers, "—" for
// cells with nothing to say.
package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/tacticpad/go-corner-stats/internal/model"
)

func newTable(w io.Writer) *tablewriter.Table {
	return tablewriter.NewTable(w, tablewriter.WithConfig(tablewriter.Config{
		Row:    tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignRight}},
		Header: tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignCenter}},
	}))
}

// PrintPositionTable prints (player, role) average positions. COLOR repeats
// the role's semantic color key so the table matches the exported diagram.
func PrintPositionTable(w io.Writer, avgs []model.PositionAverage) {
	table := newTable(w)
	table.Header("#", "PLAYER", "ROLE", "MEAN_X", "MEAN_Y", "CORNERS", "COLOR")

	for _, a := range avgs {
		table.Append(
			strconv.Itoa(a.Number),
			a.PlayerName,
			string(a.Role),
			fmt.Sprintf("%.1f", a.MeanX),
			fmt.Sprintf("%.1f", a.MeanY),
			strconv.Itoa(a.Count),
			a.Role.Color(),
		)
	}
	table.Render()
}

// PrintOutcomeTable prints the outcome frequency distribution.
func PrintOutcomeTable(w io.Writer, counts []model.OutcomeCount) {
	table := newTable(w)
	table.Header("OUTCOME", "N", "%")

	for _, c := range counts {
		table.Append(
			string(c.Outcome),
			strconv.Itoa(c.Count),
			fmt.Sprintf("%.0f%%", c.Pct),
		)
	}
	table.Render()
}

// PrintZoneTable prints the landing-zone distribution. Corners without a
// recorded zone are already excluded upstream.
func PrintZoneTable(w io.Writer, counts []model.ZoneCount) {
	table := newTable(w)
	table.Header("ZONE", "N", "%")

	for _, c := range counts {
		table.Append(c.Zone, strconv.Itoa(c.Count), fmt.Sprintf("%.0f%%", c.Pct))
	}
	table.Render()
}

// PrintCrossTab prints the side × zone joint frequency table.
func PrintCrossTab(w io.Writer, cells []model.SideZoneShare) {
	table := newTable(w)
	table.Header("SIDE", "ZONE", "N", "SHARE")

	for _, c := range cells {
		table.Append(
			string(c.Side),
			c.Zone,
			strconv.Itoa(c.Count),
			fmt.Sprintf("%.0f%%", c.Share*100),
		)
	}
	table.Render()
}

// PrintEffectiveness prints the three-bucket defensive summary.
func PrintEffectiveness(w io.Writer, e model.Effectiveness) {
	table := newTable(w)
	table.Header("BUCKET", "N", "%")

	table.Append("Goles encajados", strconv.Itoa(e.Goals), fmt.Sprintf("%.1f%%", e.GoalPct()))
	table.Append("Remates concedidos", strconv.Itoa(e.Shots), fmt.Sprintf("%.1f%%", e.ShotPct()))
	table.Append("Neutralizados", strconv.Itoa(e.Neutralized), fmt.Sprintf("%.1f%%", e.NeutralizedPct()))
	table.Render()
	fmt.Fprintf(w, "\nTotal: %d corners\n", e.Total)
}

// PrintZoneEffectiveness prints the per-zone three-bucket split.
func PrintZoneEffectiveness(w io.Writer, zones []model.ZoneEffectiveness) {
	table := newTable(w)
	table.Header("ZONE", "N", "GOALS", "GOAL%", "SHOTS", "SHOT%", "NEUTRAL", "NEUTRAL%")

	for _, z := range zones {
		table.Append(
			z.Zone,
			strconv.Itoa(z.Total),
			strconv.Itoa(z.Goals),
			fmt.Sprintf("%.0f%%", z.GoalPct()),
			strconv.Itoa(z.Shots),
			fmt.Sprintf("%.0f%%", z.ShotPct()),
			strconv.Itoa(z.Neutralized),
			fmt.Sprintf("%.0f%%", z.NeutralizedPct()),
		)
	}
	table.Render()
}

// PrintHistory prints a player's corner participations, newest first, with an
// aligned trend column when provided. trend is chronological (oldest first),
// so row i maps to trend[len(trend)-1-i].
func PrintHistory(w io.Writer, parts []model.Participation, trend []float64) {
	table := newTable(w)
	table.Header("DATE", "OPPONENT", "MIN", "SIDE", "ROLE", "X", "Y", "OUTCOME", "TREND")

	for i, p := range parts {
		trendStr := "—"
		if idx := len(trend) - 1 - i; idx >= 0 && idx < len(trend) {
			trendStr = fmt.Sprintf("%.2f", trend[idx])
		}
		table.Append(
			p.Date,
			p.Opponent,
			strconv.Itoa(p.Minute),
			string(p.Side),
			string(p.Role),
			fmt.Sprintf("%.1f", p.X),
			fmt.Sprintf("%.1f", p.Y),
			string(p.Outcome),
			trendStr,
		)
	}
	table.Render()
}

// PrintCornerList prints the corners of one match.
func PrintCornerList(w io.Writer, corners []model.Corner, attackerNames map[int64]string) {
	table := newTable(w)
	table.Header("ID", "MIN", "ATTACKER", "SIDE", "OUTCOME", "ZONE")

	for _, c := range corners {
		zone := c.Zone
		if zone == "" {
			zone = "—"
		}
		name := attackerNames[c.AttackingTeamID]
		if name == "" {
			name = strconv.FormatInt(c.AttackingTeamID, 10)
		}
		table.Append(
			strconv.FormatInt(c.ID, 10),
			strconv.Itoa(c.Minute),
			name,
			string(c.Side),
			string(c.Outcome),
			zone,
		)
	}
	table.Render()
}
