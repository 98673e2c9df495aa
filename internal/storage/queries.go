package storage

import (
	"database/sql"
	"fmt"

	"github.com/tacticpad/go-corner-stats/internal/model"
)

// ---- Teams ----

// InsertTeam registers a team. A duplicate name yields ErrDuplicate.
func (db *DB) InsertTeam(name string) (int64, error) {
	res, err := db.conn.Exec("INSERT INTO teams(name) VALUES (?)", name)
	if err != nil {
		return 0, mapSQLErr(err)
	}
	return res.LastInsertId()
}

// GetTeam returns one team by id, or ErrNotFound.
func (db *DB) GetTeam(id int64) (*model.Team, error) {
	var t model.Team
	err := db.conn.QueryRow("SELECT id, name FROM teams WHERE id = ?", id).
		Scan(&t.ID, &t.Name)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("team %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// ListTeams returns all teams ordered by name.
func (db *DB) ListTeams() ([]model.Team, error) {
	rows, err := db.conn.Query("SELECT id, name FROM teams ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Team
	for rows.Next() {
		var t model.Team
		if err := rows.Scan(&t.ID, &t.Name); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// RenameTeam updates a team's name; the new name must stay unique.
func (db *DB) RenameTeam(id int64, name string) error {
	res, err := db.conn.Exec("UPDATE teams SET name = ? WHERE id = ?", name, id)
	if err != nil {
		return mapSQLErr(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("team %d: %w", id, ErrNotFound)
	}
	return nil
}

// DeleteTeam removes a team and everything that hangs off it: position rows
// of its players and of corners in its matches, those corners, its players,
// its matches, and finally the team row. One transaction; any failure leaves
// the store untouched.
func (db *DB) DeleteTeam(id int64) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmts := []struct {
		query string
		args  []any
	}{
		{`DELETE FROM player_positions
		  WHERE player_id IN (SELECT id FROM players WHERE team_id = ?)`, []any{id}},
		{`DELETE FROM player_positions
		  WHERE corner_id IN (
		      SELECT c.id FROM corners c
		      JOIN matches m ON m.id = c.match_id
		      WHERE m.home_team_id = ? OR m.away_team_id = ?)`, []any{id, id}},
		{`DELETE FROM corners
		  WHERE match_id IN (
		      SELECT id FROM matches WHERE home_team_id = ? OR away_team_id = ?)`, []any{id, id}},
		{`DELETE FROM players WHERE team_id = ?`, []any{id}},
		{`DELETE FROM matches WHERE home_team_id = ? OR away_team_id = ?`, []any{id, id}},
		{`DELETE FROM teams WHERE id = ?`, []any{id}},
	}
	for _, s := range stmts {
		if _, err := tx.Exec(s.query, s.args...); err != nil {
			return fmt.Errorf("delete team %d: %w", id, mapSQLErr(err))
		}
	}
	return tx.Commit()
}

// ---- Players ----

// InsertPlayer adds a player to a team.
func (db *DB) InsertPlayer(name string, teamID int64, number int) (int64, error) {
	res, err := db.conn.Exec(
		"INSERT INTO players(name, team_id, number) VALUES (?, ?, ?)",
		name, teamID, number)
	if err != nil {
		return 0, mapSQLErr(err)
	}
	return res.LastInsertId()
}

// GetPlayer returns one player by id, or ErrNotFound.
func (db *DB) GetPlayer(id int64) (*model.Player, error) {
	var p model.Player
	err := db.conn.QueryRow(
		"SELECT id, name, team_id, number FROM players WHERE id = ?", id).
		Scan(&p.ID, &p.Name, &p.TeamID, &p.Number)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("player %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// ListPlayers returns a team's roster ordered by jersey number.
func (db *DB) ListPlayers(teamID int64) ([]model.Player, error) {
	rows, err := db.conn.Query(
		"SELECT id, name, team_id, number FROM players WHERE team_id = ? ORDER BY number", teamID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Player
	for rows.Next() {
		var p model.Player
		if err := rows.Scan(&p.ID, &p.Name, &p.TeamID, &p.Number); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// UpdatePlayer changes a player's name and number.
func (db *DB) UpdatePlayer(id int64, name string, number int) error {
	res, err := db.conn.Exec(
		"UPDATE players SET name = ?, number = ? WHERE id = ?", name, number, id)
	if err != nil {
		return mapSQLErr(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("player %d: %w", id, ErrNotFound)
	}
	return nil
}

// DeletePlayer removes a player and their position records in one transaction.
func (db *DB) DeletePlayer(id int64) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM player_positions WHERE player_id = ?", id); err != nil {
		return mapSQLErr(err)
	}
	if _, err := tx.Exec("DELETE FROM players WHERE id = ?", id); err != nil {
		return mapSQLErr(err)
	}
	return tx.Commit()
}

// ---- Matches ----

// InsertMatch registers a fixture between two distinct teams.
func (db *DB) InsertMatch(homeID, awayID int64, date string) (int64, error) {
	if homeID == awayID {
		return 0, &model.ValidationError{Field: "teams", Reason: "home and away must differ"}
	}
	res, err := db.conn.Exec(
		"INSERT INTO matches(home_team_id, away_team_id, date) VALUES (?, ?, ?)",
		homeID, awayID, date)
	if err != nil {
		return 0, mapSQLErr(err)
	}
	return res.LastInsertId()
}

// GetMatch returns one match with team names resolved, or ErrNotFound.
func (db *DB) GetMatch(id int64) (*model.Match, error) {
	var m model.Match
	err := db.conn.QueryRow(`
		SELECT m.id, m.home_team_id, m.away_team_id, m.date, h.name, a.name
		FROM matches m
		JOIN teams h ON h.id = m.home_team_id
		JOIN teams a ON a.id = m.away_team_id
		WHERE m.id = ?`, id).
		Scan(&m.ID, &m.HomeTeamID, &m.AwayTeamID, &m.Date, &m.HomeName, &m.AwayName)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("match %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// ListMatches returns all matches, newest first, with team names resolved.
func (db *DB) ListMatches() ([]model.Match, error) {
	rows, err := db.conn.Query(`
		SELECT m.id, m.home_team_id, m.away_team_id, m.date, h.name, a.name
		FROM matches m
		JOIN teams h ON h.id = m.home_team_id
		JOIN teams a ON a.id = m.away_team_id
		ORDER BY m.date DESC, m.id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Match
	for rows.Next() {
		var m model.Match
		if err := rows.Scan(&m.ID, &m.HomeTeamID, &m.AwayTeamID, &m.Date, &m.HomeName, &m.AwayName); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// DeleteMatch removes a match, its corners, and their positions in one
// transaction.
func (db *DB) DeleteMatch(id int64) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`
		DELETE FROM player_positions
		WHERE corner_id IN (SELECT id FROM corners WHERE match_id = ?)`, id); err != nil {
		return mapSQLErr(err)
	}
	if _, err := tx.Exec("DELETE FROM corners WHERE match_id = ?", id); err != nil {
		return mapSQLErr(err)
	}
	if _, err := tx.Exec("DELETE FROM matches WHERE id = ?", id); err != nil {
		return mapSQLErr(err)
	}
	return tx.Commit()
}

// ---- Corners ----

// SaveCorner inserts a corner header and all its player positions atomically.
// If any position insert fails the header rolls back too; there is never a
// committed corner with a partial setup.
func (db *DB) SaveCorner(c model.Corner, positions []model.PlayerPosition) (int64, error) {
	if err := c.Validate(); err != nil {
		return 0, err
	}
	for i := range positions {
		if err := positions[i].Validate(); err != nil {
			return 0, err
		}
	}

	tx, err := db.conn.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	var lx, ly any
	if c.HasLanding {
		lx, ly = c.LandingX, c.LandingY
	}
	res, err := tx.Exec(`
		INSERT INTO corners(match_id, attacking_team_id, minute, side, outcome, zone_name, landing_x, landing_y)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		c.MatchID, c.AttackingTeamID, c.Minute, string(c.Side), string(c.Outcome), c.Zone, lx, ly)
	if err != nil {
		return 0, fmt.Errorf("insert corner: %w", mapSQLErr(err))
	}
	cornerID, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	stmt, err := tx.Prepare(`
		INSERT INTO player_positions(corner_id, player_id, team_id, x, y, role, side_tag)
		VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, err
	}
	defer stmt.Close()

	for _, p := range positions {
		_, err := stmt.Exec(cornerID, p.PlayerID, p.TeamID, p.X, p.Y, string(p.Role), string(p.Tag))
		if err != nil {
			return 0, fmt.Errorf("insert position for player %d: %w", p.PlayerID, mapSQLErr(err))
		}
	}
	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return cornerID, nil
}

// GetCorner returns one corner with its positions, or ErrNotFound.
func (db *DB) GetCorner(id int64) (*model.Corner, []model.PlayerPosition, error) {
	var c model.Corner
	var lx, ly sql.NullFloat64
	err := db.conn.QueryRow(`
		SELECT id, match_id, attacking_team_id, minute, side, outcome, zone_name, landing_x, landing_y
		FROM corners WHERE id = ?`, id).
		Scan(&c.ID, &c.MatchID, &c.AttackingTeamID, &c.Minute, &c.Side, &c.Outcome, &c.Zone, &lx, &ly)
	if err == sql.ErrNoRows {
		return nil, nil, fmt.Errorf("corner %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, nil, err
	}
	if lx.Valid && ly.Valid {
		c.LandingX, c.LandingY, c.HasLanding = lx.Float64, ly.Float64, true
	}

	rows, err := db.conn.Query(`
		SELECT id, corner_id, player_id, team_id, x, y, role, side_tag
		FROM player_positions WHERE corner_id = ?
		ORDER BY side_tag, id`, id)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	var positions []model.PlayerPosition
	for rows.Next() {
		var p model.PlayerPosition
		if err := rows.Scan(&p.ID, &p.CornerID, &p.PlayerID, &p.TeamID, &p.X, &p.Y, &p.Role, &p.Tag); err != nil {
			return nil, nil, err
		}
		positions = append(positions, p)
	}
	return &c, positions, rows.Err()
}

// ListCorners returns corners for a match, oldest first.
func (db *DB) ListCorners(matchID int64) ([]model.Corner, error) {
	rows, err := db.conn.Query(`
		SELECT id, match_id, attacking_team_id, minute, side, outcome, zone_name, landing_x, landing_y
		FROM corners WHERE match_id = ? ORDER BY minute, id`, matchID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Corner
	for rows.Next() {
		var c model.Corner
		var lx, ly sql.NullFloat64
		if err := rows.Scan(&c.ID, &c.MatchID, &c.AttackingTeamID, &c.Minute, &c.Side, &c.Outcome, &c.Zone, &lx, &ly); err != nil {
			return nil, err
		}
		if lx.Valid && ly.Valid {
			c.LandingX, c.LandingY, c.HasLanding = lx.Float64, ly.Float64, true
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// DeleteCorner removes a corner and its positions in one transaction.
func (db *DB) DeleteCorner(id int64) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM player_positions WHERE corner_id = ?", id); err != nil {
		return mapSQLErr(err)
	}
	if _, err := tx.Exec("DELETE FROM corners WHERE id = ?", id); err != nil {
		return mapSQLErr(err)
	}
	return tx.Commit()
}
