package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
)

var playerCmd = &cobra.Command{
	Use:   "player",
	Short: "Manage players",
}

var playerAddCmd = &cobra.Command{
	Use:   "add <team-id> <number> <name>",
	Short: "Add a player to a team roster",
	Args:  cobra.ExactArgs(3),
	RunE:  runPlayerAdd,
}

var playerListCmd = &cobra.Command{
	Use:   "list <team-id>",
	Short: "List a team's roster",
	Args:  cobra.ExactArgs(1),
	RunE:  runPlayerList,
}

var playerUpdateCmd = &cobra.Command{
	Use:   "update <id> <number> <name>",
	Short: "Change a player's number and name",
	Args:  cobra.ExactArgs(3),
	RunE:  runPlayerUpdate,
}

var playerRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a player and their recorded positions",
	Args:  cobra.ExactArgs(1),
	RunE:  runPlayerRm,
}

func init() {
	playerCmd.AddCommand(playerAddCmd)
	playerCmd.AddCommand(playerListCmd)
	playerCmd.AddCommand(playerUpdateCmd)
	playerCmd.AddCommand(playerRmCmd)
}

func runPlayerAdd(cmd *cobra.Command, args []string) error {
	teamID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid team id %q: %w", args[0], err)
	}
	number, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid number %q: %w", args[1], err)
	}
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	if _, err := db.GetTeam(teamID); err != nil {
		return err
	}
	id, err := db.InsertPlayer(args[2], teamID, number)
	if err != nil {
		return fmt.Errorf("add player: %w", err)
	}
	fmt.Fprintf(os.Stdout, "Player %d: #%d %s\n", id, number, args[2])
	return nil
}

func runPlayerList(cmd *cobra.Command, args []string) error {
	teamID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid team id %q: %w", args[0], err)
	}
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	players, err := db.ListPlayers(teamID)
	if err != nil {
		return fmt.Errorf("list players: %w", err)
	}
	if len(players) == 0 {
		fmt.Fprintln(os.Stdout, "No players on this roster yet.")
		return nil
	}
	for _, p := range players {
		fmt.Fprintf(os.Stdout, "%4d  #%-3d %s\n", p.ID, p.Number, p.Name)
	}
	return nil
}

func runPlayerUpdate(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid player id %q: %w", args[0], err)
	}
	number, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid number %q: %w", args[1], err)
	}
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.UpdatePlayer(id, args[2], number); err != nil {
		return fmt.Errorf("update player: %w", err)
	}
	fmt.Fprintf(os.Stdout, "Player %d: #%d %s\n", id, number, args[2])
	return nil
}

func runPlayerRm(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid player id %q: %w", args[0], err)
	}
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.DeletePlayer(id); err != nil {
		return fmt.Errorf("delete player: %w", err)
	}
	fmt.Fprintf(os.Stdout, "Deleted player %d\n", id)
	return nil
}
