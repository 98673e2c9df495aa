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

var defenseOpponent int64

var defenseCmd = &cobra.Command{
	Use:   "defense <team-id>",
	Short: "Defensive corner analysis for a team",
	Long: `Aggregate the corners taken against a team: average defender positions per
role, the three-bucket effectiveness split (goals conceded, shots conceded,
neutralized), and the per-zone breakdown of where opponents hurt the team.`,
	Args: cobra.ExactArgs(1),
	RunE: runDefense,
}

func init() {
	defenseCmd.Flags().Int64Var(&defenseOpponent, "opponent", 0, "restrict to matches against this team id")
}

func runDefense(cmd *cobra.Command, args []string) error {
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

	rows, err := db.PositionRows(teamID, model.TagDefense, false, defenseOpponent)
	if err != nil {
		return fmt.Errorf("query positions: %w", err)
	}
	corners, err := db.DefendingCorners(teamID)
	if err != nil {
		return fmt.Errorf("query corners: %w", err)
	}
	if defenseOpponent != 0 {
		opp, err := db.GetTeam(defenseOpponent)
		if err != nil {
			return err
		}
		corners = filterByOpponent(corners, opp.Name)
	}
	if len(corners) == 0 {
		fmt.Fprintf(os.Stdout, "No corners against %s recorded yet.\n", team.Name)
		return nil
	}

	fmt.Fprintf(os.Stdout, "Defending corners: %s (%d corners)\n\n", team.Name, len(corners))

	avgs := aggregator.AveragePositions(rows)
	if len(avgs) > 0 {
		report.PrintPositionTable(os.Stdout, avgs)
		fmt.Fprintln(os.Stdout)
	}

	report.PrintEffectiveness(os.Stdout, aggregator.Effectiveness(corners))

	if zones := aggregator.ZoneEffectiveness(corners); len(zones) > 0 {
		fmt.Fprintln(os.Stdout)
		report.PrintZoneEffectiveness(os.Stdout, zones)
	}
	return nil
}
