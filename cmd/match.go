package cmd

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Manage matches",
}

var matchAddCmd = &cobra.Command{
	Use:   "add <home-id> <away-id> <date>",
	Short: "Register a match (date YYYY-MM-DD)",
	Args:  cobra.ExactArgs(3),
	RunE:  runMatchAdd,
}

var matchListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all matches, newest first",
	Args:  cobra.NoArgs,
	RunE:  runMatchList,
}

var matchRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a match and its corners",
	Args:  cobra.ExactArgs(1),
	RunE:  runMatchRm,
}

func init() {
	matchCmd.AddCommand(matchAddCmd)
	matchCmd.AddCommand(matchListCmd)
	matchCmd.AddCommand(matchRmCmd)
}

func runMatchAdd(cmd *cobra.Command, args []string) error {
	homeID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid home team id %q: %w", args[0], err)
	}
	awayID, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid away team id %q: %w", args[1], err)
	}
	if _, err := time.Parse("2006-01-02", args[2]); err != nil {
		return fmt.Errorf("invalid date %q, want YYYY-MM-DD", args[2])
	}
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	if _, err := db.GetTeam(homeID); err != nil {
		return err
	}
	if _, err := db.GetTeam(awayID); err != nil {
		return err
	}
	id, err := db.InsertMatch(homeID, awayID, args[2])
	if err != nil {
		return fmt.Errorf("add match: %w", err)
	}
	fmt.Fprintf(os.Stdout, "Match %d registered\n", id)
	return nil
}

func runMatchList(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	matches, err := db.ListMatches()
	if err != nil {
		return fmt.Errorf("list matches: %w", err)
	}
	if len(matches) == 0 {
		fmt.Fprintln(os.Stdout, "No matches yet. Run 'cornerstats match add <home> <away> <date>' to create one.")
		return nil
	}
	for _, m := range matches {
		fmt.Fprintf(os.Stdout, "%4d  %s  %s vs %s\n", m.ID, m.Date, m.HomeName, m.AwayName)
	}
	return nil
}

func runMatchRm(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid match id %q: %w", args[0], err)
	}
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.DeleteMatch(id); err != nil {
		return fmt.Errorf("delete match: %w", err)
	}
	fmt.Fprintf(os.Stdout, "Deleted match %d\n", id)
	return nil
}
