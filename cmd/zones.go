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

var zonesDefense bool

var zonesCmd = &cobra.Command{
	Use:   "zones <team-id>",
	Short: "Landing-zone breakdown for a team's corners",
	Long: `Show where a team's corners land: the per-zone frequency table and the
side-by-zone cross-tabulation. By default attacking corners are analyzed;
--defense switches to the corners taken against the team.`,
	Args: cobra.ExactArgs(1),
	RunE: runZones,
}

func init() {
	zonesCmd.Flags().BoolVar(&zonesDefense, "defense", false, "analyze corners conceded instead of taken")
}

func runZones(cmd *cobra.Command, args []string) error {
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

	var corners []model.CornerRecord
	label := "taken by"
	if zonesDefense {
		corners, err = db.DefendingCorners(teamID)
		label = "against"
	} else {
		corners, err = db.AttackingCorners(teamID)
	}
	if err != nil {
		return fmt.Errorf("query corners: %w", err)
	}

	zones := aggregator.ZoneDistribution(corners)
	if len(zones) == 0 {
		fmt.Fprintf(os.Stdout, "No corners %s %s carry a recorded landing zone.\n", label, team.Name)
		return nil
	}

	fmt.Fprintf(os.Stdout, "Landing zones for corners %s %s\n\n", label, team.Name)
	report.PrintZoneTable(os.Stdout, zones)

	if cells := aggregator.SideZoneCrossTab(corners); len(cells) > 0 {
		fmt.Fprintln(os.Stdout)
		report.PrintCrossTab(os.Stdout, cells)
	}
	return nil
}
