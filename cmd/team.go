package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
)

var teamCmd = &cobra.Command{
	Use:   "team",
	Short: "Manage teams",
}

var teamAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Register a team",
	Args:  cobra.ExactArgs(1),
	RunE:  runTeamAdd,
}

var teamListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all teams",
	Args:  cobra.NoArgs,
	RunE:  runTeamList,
}

var teamRenameCmd = &cobra.Command{
	Use:   "rename <id> <name>",
	Short: "Rename a team",
	Args:  cobra.ExactArgs(2),
	RunE:  runTeamRename,
}

var teamRmForce bool

var teamRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a team and all its data",
	Long:  "Delete a team together with its players, its matches, and every corner and position recorded in those matches.",
	Args:  cobra.ExactArgs(1),
	RunE:  runTeamRm,
}

func init() {
	teamRmCmd.Flags().BoolVarP(&teamRmForce, "force", "f", false, "skip confirmation prompt")
	teamCmd.AddCommand(teamAddCmd)
	teamCmd.AddCommand(teamListCmd)
	teamCmd.AddCommand(teamRenameCmd)
	teamCmd.AddCommand(teamRmCmd)
}

func runTeamAdd(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	id, err := db.InsertTeam(args[0])
	if err != nil {
		return fmt.Errorf("add team: %w", err)
	}
	fmt.Fprintf(os.Stdout, "Team %d: %s\n", id, args[0])
	return nil
}

func runTeamList(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	teams, err := db.ListTeams()
	if err != nil {
		return fmt.Errorf("list teams: %w", err)
	}
	if len(teams) == 0 {
		fmt.Fprintln(os.Stdout, "No teams yet. Run 'cornerstats team add <name>' to create one.")
		return nil
	}
	for _, t := range teams {
		fmt.Fprintf(os.Stdout, "%4d  %s\n", t.ID, t.Name)
	}
	return nil
}

func runTeamRename(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid team id %q: %w", args[0], err)
	}
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.RenameTeam(id, args[1]); err != nil {
		return fmt.Errorf("rename team: %w", err)
	}
	fmt.Fprintf(os.Stdout, "Team %d renamed to %s\n", id, args[1])
	return nil
}

func runTeamRm(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid team id %q: %w", args[0], err)
	}
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	team, err := db.GetTeam(id)
	if err != nil {
		return err
	}

	if !teamRmForce {
		players, _ := db.CountRows("players", "team_id = ?", id)
		matches, _ := db.CountRows("matches", "home_team_id = ? OR away_team_id = ?", id, id)
		fmt.Fprintf(os.Stderr, "This will delete team %q, %d player(s), %d match(es), and all their corners.\n",
			team.Name, players, matches)
		fmt.Fprintln(os.Stderr, "Re-run with --force to confirm.")
		return nil
	}

	if err := db.DeleteTeam(id); err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "Deleted team %s\n", team.Name)
	return nil
}
