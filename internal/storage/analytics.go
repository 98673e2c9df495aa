package storage

import (
	"database/sql"

	"github.com/tacticpad/go-corner-stats/internal/model"
)

// PositionRows returns the raw position history the aggregator consumes:
// every position recorded for the team's players under the given side tag.
// attacking selects corners where the queried team took the kick; otherwise
// corners where it defended. opponentID 0 means no opponent filter.
func (db *DB) PositionRows(teamID int64, tag model.SideTag, attacking bool, opponentID int64) ([]model.PositionRow, error) {
	cmp := "="
	if !attacking {
		cmp = "<>"
	}
	query := `
		SELECT j.id, j.name, j.number, pp.role, pp.x, pp.y, c.id, c.outcome
		FROM player_positions pp
		JOIN players j ON j.id = pp.player_id
		JOIN corners c ON c.id = pp.corner_id
		WHERE pp.team_id = ? AND pp.side_tag = ? AND c.attacking_team_id ` + cmp + ` ?`
	args := []any{teamID, string(tag), teamID}
	if opponentID != 0 {
		query += ` AND EXISTS (
			SELECT 1 FROM matches m
			WHERE m.id = c.match_id
			  AND (m.home_team_id = ? OR m.away_team_id = ?))`
		args = append(args, opponentID, opponentID)
	}

	rows, err := db.conn.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.PositionRow
	for rows.Next() {
		var r model.PositionRow
		if err := rows.Scan(&r.PlayerID, &r.PlayerName, &r.Number, &r.Role, &r.X, &r.Y, &r.CornerID, &r.Outcome); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// AttackingCorners returns every corner the team took, with match date and
// opponent name, newest first.
func (db *DB) AttackingCorners(teamID int64) ([]model.CornerRecord, error) {
	return db.cornerRecords(`
		SELECT c.id, m.date, rival.name, c.minute, c.side, c.outcome, c.zone_name, c.landing_x, c.landing_y
		FROM corners c
		JOIN matches m ON m.id = c.match_id
		JOIN teams rival ON rival.id = CASE
			WHEN m.home_team_id = c.attacking_team_id THEN m.away_team_id
			ELSE m.home_team_id END
		WHERE c.attacking_team_id = ?
		ORDER BY m.date DESC, c.id DESC`, teamID)
}

// DefendingCorners returns every corner taken against the team: corners of
// matches the team played where the attacker was the other side. The
// "opponent" column names the attacking team.
func (db *DB) DefendingCorners(teamID int64) ([]model.CornerRecord, error) {
	return db.cornerRecords(`
		SELECT c.id, m.date, atk.name, c.minute, c.side, c.outcome, c.zone_name, c.landing_x, c.landing_y
		FROM corners c
		JOIN matches m ON m.id = c.match_id
		JOIN teams atk ON atk.id = c.attacking_team_id
		WHERE (m.home_team_id = ? OR m.away_team_id = ?) AND c.attacking_team_id <> ?
		ORDER BY m.date DESC, c.id DESC`, teamID, teamID, teamID)
}

func (db *DB) cornerRecords(query string, args ...any) ([]model.CornerRecord, error) {
	rows, err := db.conn.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.CornerRecord
	for rows.Next() {
		var r model.CornerRecord
		var lx, ly sql.NullFloat64
		if err := rows.Scan(&r.CornerID, &r.Date, &r.Opponent, &r.Minute, &r.Side, &r.Outcome, &r.Zone, &lx, &ly); err != nil {
			return nil, err
		}
		if lx.Valid && ly.Valid {
			r.LandingX, r.LandingY, r.HasLanding = lx.Float64, ly.Float64, true
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// PlayerParticipations returns a player's corner history under the given side
// tag, most recent first, with the opponent of each corner resolved.
func (db *DB) PlayerParticipations(playerID int64, tag model.SideTag) ([]model.Participation, error) {
	rows, err := db.conn.Query(`
		SELECT c.id, m.date, rival.name, c.minute, c.side, c.outcome, pp.x, pp.y, pp.role
		FROM player_positions pp
		JOIN corners c ON c.id = pp.corner_id
		JOIN matches m ON m.id = c.match_id
		JOIN teams rival ON rival.id = CASE
			WHEN m.home_team_id = pp.team_id THEN m.away_team_id
			ELSE m.home_team_id END
		WHERE pp.player_id = ? AND pp.side_tag = ?
		ORDER BY m.date DESC, c.id DESC`, playerID, string(tag))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Participation
	for rows.Next() {
		var p model.Participation
		if err := rows.Scan(&p.CornerID, &p.Date, &p.Opponent, &p.Minute, &p.Side, &p.Outcome, &p.X, &p.Y, &p.Role); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// CountRows returns the row count of a single-table WHERE clause. Used by the
// management commands to warn before cascade deletes.
func (db *DB) CountRows(table, where string, args ...any) (int, error) {
	var n int
	err := db.conn.QueryRow("SELECT COUNT(1) FROM "+table+" WHERE "+where, args...).Scan(&n)
	return n, err
}

// QueryRaw executes an arbitrary query and returns column names plus rows as
// strings. Backs the sql command only; analytics go through typed queries.
func (db *DB) QueryRaw(query string) ([]string, [][]string, error) {
	rows, err := db.conn.Query(query)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, nil, err
	}

	var out [][]string
	for rows.Next() {
		raw := make([]sql.NullString, len(cols))
		ptrs := make([]any, len(cols))
		for i := range raw {
			ptrs[i] = &raw[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, nil, err
		}
		row := make([]string, len(cols))
		for i, v := range raw {
			if v.Valid {
				row[i] = v.String
			} else {
				row[i] = "NULL"
			}
		}
		out = append(out, row)
	}
	return cols, out, rows.Err()
}
