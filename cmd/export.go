package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/tacticpad/go-corner-stats/internal/aggregator"
	"github.com/tacticpad/go-corner-stats/internal/geometry"
	"github.com/tacticpad/go-corner-stats/internal/model"
	"github.com/tacticpad/go-corner-stats/internal/pitch"
)

var (
	exportDefense    bool
	exportRaw        bool
	exportOut        string
	exportBackground string
	exportCurvature  float64
)

var exportCmd = &cobra.Command{
	Use:   "export <team-id>",
	Short: "Export a team's corner diagram as SVG",
	Long: `Render a team's corner analysis onto a pitch diagram: one marker per
(player, role) average position, sized by how many corners it aggregates, plus
one delivery arrow per side-by-zone cell with stroke width proportional to
that cell's share of all corners. Attacking setups by default; --defense
renders the defensive picture instead. --raw skips the averaging and plots
every recorded position, colored by the corner's outcome.

Example:
  cornerstats export 1 --out corners.svg
  cornerstats export 1 --defense --out defense.svg
  cornerstats export 1 --raw --out raw.svg`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func init() {
	exportCmd.Flags().BoolVar(&exportDefense, "defense", false, "render the defensive setup")
	exportCmd.Flags().BoolVar(&exportRaw, "raw", false, "plot every raw position colored by outcome")
	exportCmd.Flags().StringVar(&exportOut, "out", "corners.svg", "output SVG path")
	exportCmd.Flags().StringVar(&exportBackground, "background", "", "optional pitch image to draw under the markers")
	exportCmd.Flags().Float64Var(&exportCurvature, "curvature", 0.15, "arrow bow as a fraction of travel distance")
}

func runExport(cmd *cobra.Command, args []string) error {
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

	tag, attacking := model.TagOffense, true
	title := fmt.Sprintf("%s, attacking corners", team.Name)
	if exportDefense {
		tag, attacking = model.TagDefense, false
		title = fmt.Sprintf("%s, defending corners", team.Name)
	}

	rows, err := db.PositionRows(teamID, tag, attacking, 0)
	if err != nil {
		return fmt.Errorf("query positions: %w", err)
	}
	var corners []model.CornerRecord
	if attacking {
		corners, err = db.AttackingCorners(teamID)
	} else {
		corners, err = db.DefendingCorners(teamID)
	}
	if err != nil {
		return fmt.Errorf("query corners: %w", err)
	}
	if len(rows) == 0 && len(corners) == 0 {
		return fmt.Errorf("no data recorded for %s", team.Name)
	}

	d := pitch.Diagram{
		Title:      title,
		Background: exportBackground,
		PathColor:  "white",
	}

	if exportRaw {
		seen := make(map[model.Outcome]bool)
		for _, r := range rows {
			d.Markers = append(d.Markers, pitch.Marker{
				At:     geometry.Point{X: r.X, Y: r.Y},
				Color:  r.Outcome.Color(),
				Label:  strconv.Itoa(r.Number),
				Radius: pitch.MarkerRadius(1),
			})
			if !seen[r.Outcome] {
				seen[r.Outcome] = true
				d.Legend = append(d.Legend, pitch.Legend{
					Color: r.Outcome.Color(),
					Text:  string(r.Outcome),
				})
			}
		}
	} else {
		seen := make(map[model.Role]bool)
		for _, a := range aggregator.AveragePositions(rows) {
			d.Markers = append(d.Markers, pitch.Marker{
				At:     geometry.Point{X: a.MeanX, Y: a.MeanY},
				Color:  a.Role.Color(),
				Label:  strconv.Itoa(a.Number),
				Radius: pitch.MarkerRadius(a.Count),
			})
			if !seen[a.Role] {
				seen[a.Role] = true
				d.Legend = append(d.Legend, pitch.Legend{
					Color: a.Role.Color(),
					Text:  string(a.Role),
				})
			}
		}
	}

	// One arrow per side×zone cell; share of total drives its midpoint width.
	for _, cell := range aggregator.SideZoneCrossTab(corners) {
		origin := geometry.Origin(cell.Side)
		landing := geometry.ZoneCoordinate(cell.Side, cell.Zone)
		width := 1 + cell.Share*8
		d.Paths = append(d.Paths, geometry.SummaryTrajectory(origin, landing, exportCurvature, 0, width))
	}

	f, err := os.Create(exportOut)
	if err != nil {
		return fmt.Errorf("create %s: %w", exportOut, err)
	}
	defer f.Close()

	pitch.Render(f, d)
	fmt.Fprintf(os.Stdout, "Wrote %s\n", exportOut)
	return nil
}
