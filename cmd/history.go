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

var historyDefense bool

var historyCmd = &cobra.Command{
	Use:   "history <player-id>",
	Short: "A player's corner participation history with outcome trend",
	Long: `List every corner a player took part in, newest first, with a rolling
moving average over the outcome threat scores. Offensive participations by
default; --defense switches to the player's defensive setups.`,
	Args: cobra.ExactArgs(1),
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().BoolVar(&historyDefense, "defense", false, "show defensive participations")
}

func runHistory(cmd *cobra.Command, args []string) error {
	playerID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid player id %q: %w", args[0], err)
	}
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	player, err := db.GetPlayer(playerID)
	if err != nil {
		return err
	}

	tag := model.TagOffense
	if historyDefense {
		tag = model.TagDefense
	}
	parts, err := db.PlayerParticipations(playerID, tag)
	if err != nil {
		return fmt.Errorf("query participations: %w", err)
	}
	if len(parts) == 0 {
		fmt.Fprintf(os.Stdout, "No %s participations for #%d %s.\n", tag, player.Number, player.Name)
		return nil
	}

	trend := aggregator.OutcomeTrend(parts, aggregator.TrendWindow)

	fmt.Fprintf(os.Stdout, "#%d %s, %d corner(s)\n\n", player.Number, player.Name, len(parts))
	report.PrintHistory(os.Stdout, parts, trend)
	return nil
}
