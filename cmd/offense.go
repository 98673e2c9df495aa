package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/tacticpad/go-corner-stats/internal/aggregator"
	"github.com/tacticpad/go-corner-stats/internal/model"
	"github.com/tacticpad/go-corner-stats/internal/report"
)

var offenseOpponent int64

var offenseCmd = &cobra.Command{
	Use:   "offense <team-id>",
	Short: "Attacking corner analysis for a team",
	Long: `Aggregate a team's attacking corners: average player positions per role,
outcome distribution, landing-zone distribution, and the side-by-zone
cross-tabulation. Filter to corners against one opponent with --opponent.`,
	Args: cobra.ExactArgs(1),
	RunE: runOffense,
}

func init() {
	offenseCmd.Flags().Int64Var(&offenseOpponent, "opponent", 0, "restrict to matches against this team id")
}

func runOffense(cmd *cobra.Command, args []string) error {
	teamID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid team id %q: %w", args[0], err)
	}
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	team, err := db.GetTeam(teamID)
	if err != nil {
		return err
	}

	rows, err := db.PositionRows(teamID, model.TagOffense, true, offenseOpponent)
	if err != nil {
		return fmt.Errorf("query positions: %w", err)
	}
	corners, err := db.AttackingCorners(teamID)
	if err != nil {
		return fmt.Errorf("query corners: %w", err)
	}
	if offenseOpponent != 0 {
		opp, err := db.GetTeam(offenseOpponent)
		if err != nil {
			return err
		}
		corners = filterByOpponent(corners, opp.Name)
	}
	if len(corners) == 0 {
		fmt.Fprintf(os.Stdout, "No attacking corners recorded for %s.\n", team.Name)
		return nil
	}

	fmt.Fprintf(os.Stdout, "Attacking corners: %s (%d corners)\n\n", team.Name, len(corners))

	avgs := aggregator.AveragePositions(rows)
	if len(avgs) > 0 {
		report.PrintPositionTable(os.Stdout, avgs)
		fmt.Fprintln(os.Stdout)
	}

	report.PrintOutcomeTable(os.Stdout, aggregator.OutcomeDistribution(corners))

	if zones := aggregator.ZoneDistribution(corners); len(zones) > 0 {
		fmt.Fprintln(os.Stdout)
		report.PrintZoneTable(os.Stdout, zones)
	}
	if cells := aggregator.SideZoneCrossTab(corners); len(cells) > 0 {
		fmt.Fprintln(os.Stdout)
		report.PrintCrossTab(os.Stdout, cells)
	}
	return nil
}

func filterByOpponent(corners []model.CornerRecord, opponent string) []model.CornerRecord {
	out := corners[:0]
	for _, c := range corners {
		if c.Opponent == opponent {
			out = append(out, c)
		}
	}
	return out
}
