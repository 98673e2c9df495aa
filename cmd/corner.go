package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tacticpad/go-corner-stats/internal/draft"
	"github.com/tacticpad/go-corner-stats/internal/geometry"
	"github.com/tacticpad/go-corner-stats/internal/model"
	"github.com/tacticpad/go-corner-stats/internal/report"
)

var cornerCmd = &cobra.Command{
	Use:   "corner",
	Short: "Record and inspect corner kicks",
}

var (
	cornerMatch    int64
	cornerAttacker int64
	cornerMinute   int
	cornerSide     string
	cornerOutcome  string
	cornerZone     string
	cornerLanding  string
	cornerOffense  []string
	cornerDefense  []string
)

var cornerRecordCmd = &cobra.Command{
	Use:   "record",
	Short: "Record one corner with its player setups",
	Long: `Record a corner kick header and the positions of every involved player.

Positions are given as repeated --off and --def flags, one per player, each in
the form <player-id>:<role>:<x>:<y> with coordinates in percent of field
(goal at low y). Offense roles: Lanzador, Rematador, Bloqueador, Arrastre,
Rechace, Atrás. Defense roles: Zona, Al hombre, Poste, Arriba.

The landing point defaults to the named zone's coordinate for the given side;
--landing x,y overrides it. The whole corner saves atomically: if any position
is rejected, nothing is stored.

Example:
  cornerstats corner record --match 1 --attacker 2 --minute 37 \
    --side Derecha --outcome "Remate a puerta" --zone "Primer Palo" \
    --off "5:Lanzador:96:6" --off "9:Rematador:55:10" --def "14:Zona:46:8"`,
	Args: cobra.NoArgs,
	RunE: runCornerRecord,
}

var cornerListCmd = &cobra.Command{
	Use:   "list <match-id>",
	Short: "List the corners of a match",
	Args:  cobra.ExactArgs(1),
	RunE:  runCornerList,
}

var cornerShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one corner with its full setup",
	Args:  cobra.ExactArgs(1),
	RunE:  runCornerShow,
}

var cornerRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a corner and its positions",
	Args:  cobra.ExactArgs(1),
	RunE:  runCornerRm,
}

func init() {
	f := cornerRecordCmd.Flags()
	f.Int64Var(&cornerMatch, "match", 0, "match id")
	f.Int64Var(&cornerAttacker, "attacker", 0, "attacking team id")
	f.IntVar(&cornerMinute, "minute", 0, "match minute (1-120)")
	f.StringVar(&cornerSide, "side", "", "corner side: Derecha or Izquierda")
	f.StringVar(&cornerOutcome, "outcome", "", "corner outcome")
	f.StringVar(&cornerZone, "zone", "", "landing zone name (optional)")
	f.StringVar(&cornerLanding, "landing", "", "landing point x,y overriding the zone coordinate")
	f.StringArrayVar(&cornerOffense, "off", nil, "offense placement <player-id>:<role>:<x>:<y> (repeatable)")
	f.StringArrayVar(&cornerDefense, "def", nil, "defense placement <player-id>:<role>:<x>:<y> (repeatable)")
	cornerRecordCmd.MarkFlagRequired("match")
	cornerRecordCmd.MarkFlagRequired("attacker")
	cornerRecordCmd.MarkFlagRequired("minute")
	cornerRecordCmd.MarkFlagRequired("side")
	cornerRecordCmd.MarkFlagRequired("outcome")

	cornerCmd.AddCommand(cornerRecordCmd)
	cornerCmd.AddCommand(cornerListCmd)
	cornerCmd.AddCommand(cornerShowCmd)
	cornerCmd.AddCommand(cornerRmCmd)
}

func runCornerRecord(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	match, err := db.GetMatch(cornerMatch)
	if err != nil {
		return err
	}
	if cornerAttacker != match.HomeTeamID && cornerAttacker != match.AwayTeamID {
		return fmt.Errorf("team %d is not playing match %d", cornerAttacker, cornerMatch)
	}
	defenderID := match.HomeTeamID
	if cornerAttacker == match.HomeTeamID {
		defenderID = match.AwayTeamID
	}

	c := model.Corner{
		MatchID:         cornerMatch,
		AttackingTeamID: cornerAttacker,
		Minute:          cornerMinute,
		Side:            model.Side(cornerSide),
		Outcome:         model.Outcome(cornerOutcome),
		Zone:            cornerZone,
	}
	if err := c.Validate(); err != nil {
		return err
	}

	switch {
	case cornerLanding != "":
		x, y, err := parsePoint(cornerLanding)
		if err != nil {
			return fmt.Errorf("invalid --landing: %w", err)
		}
		c.LandingX, c.LandingY, c.HasLanding = x, y, true
	case cornerZone != "":
		p := geometry.ZoneCoordinate(c.Side, cornerZone)
		c.LandingX, c.LandingY, c.HasLanding = p.X, p.Y, true
	}

	var d draft.CornerDraft
	for _, spec := range cornerOffense {
		if err := addPlacement(&d, spec, cornerAttacker, model.TagOffense); err != nil {
			return err
		}
	}
	for _, spec := range cornerDefense {
		if err := addPlacement(&d, spec, defenderID, model.TagDefense); err != nil {
			return err
		}
	}

	id, err := db.SaveCorner(c, d.Positions())
	if err != nil {
		return fmt.Errorf("save corner: %w", err)
	}
	fmt.Fprintf(os.Stdout, "Corner %d recorded (%d positions)\n", id, d.Len())
	return nil
}

// addPlacement parses one <player-id>:<role>:<x>:<y> flag value into the draft.
func addPlacement(d *draft.CornerDraft, spec string, teamID int64, tag model.SideTag) error {
	parts := strings.Split(spec, ":")
	if len(parts) != 4 {
		return fmt.Errorf("invalid placement %q, want <player-id>:<role>:<x>:<y>", spec)
	}
	playerID, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid player id in %q: %w", spec, err)
	}
	x, err := strconv.ParseFloat(parts[2], 64)
	if err != nil {
		return fmt.Errorf("invalid x in %q: %w", spec, err)
	}
	y, err := strconv.ParseFloat(parts[3], 64)
	if err != nil {
		return fmt.Errorf("invalid y in %q: %w", spec, err)
	}
	return d.Set(playerID, teamID, x, y, model.Role(parts[1]), tag)
}

func parsePoint(s string) (x, y float64, err error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("%q is not x,y", s)
	}
	x, err = strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, 0, err
	}
	y, err = strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	return x, y, err
}

func runCornerList(cmd *cobra.Command, args []string) error {
	matchID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid match id %q: %w", args[0], err)
	}
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	match, err := db.GetMatch(matchID)
	if err != nil {
		return err
	}
	corners, err := db.ListCorners(matchID)
	if err != nil {
		return fmt.Errorf("list corners: %w", err)
	}
	if len(corners) == 0 {
		fmt.Fprintln(os.Stdout, "No corners recorded for this match.")
		return nil
	}

	names := map[int64]string{
		match.HomeTeamID: match.HomeName,
		match.AwayTeamID: match.AwayName,
	}
	fmt.Fprintf(os.Stdout, "%s vs %s (%s)\n\n", match.HomeName, match.AwayName, match.Date)
	report.PrintCornerList(os.Stdout, corners, names)
	return nil
}

func runCornerShow(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid corner id %q: %w", args[0], err)
	}
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	c, positions, err := db.GetCorner(id)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "Corner %d  minute %d  %s  %s\n", c.ID, c.Minute, c.Side, c.Outcome)
	if c.Zone != "" {
		fmt.Fprintf(os.Stdout, "Zone: %s\n", c.Zone)
	}
	if c.HasLanding {
		fmt.Fprintf(os.Stdout, "Landing: (%.1f, %.1f)\n", c.LandingX, c.LandingY)
	}
	fmt.Fprintln(os.Stdout)

	for _, tag := range []model.SideTag{model.TagOffense, model.TagDefense} {
		printed := false
		for _, p := range positions {
			if p.Tag != tag {
				continue
			}
			if !printed {
				fmt.Fprintf(os.Stdout, "%s:\n", tag)
				printed = true
			}
			fmt.Fprintf(os.Stdout, "  player %-4d %-12s (%.1f, %.1f)\n", p.PlayerID, p.Role, p.X, p.Y)
		}
	}
	return nil
}

func runCornerRm(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid corner id %q: %w", args[0], err)
	}
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.DeleteCorner(id); err != nil {
		return fmt.Errorf("delete corner: %w", err)
	}
	fmt.Fprintf(os.Stdout, "Deleted corner %d\n", id)
	return nil
}
