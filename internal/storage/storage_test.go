package storage

import (
	"errors"
	"testing"

	"github.com/tacticpad/go-corner-stats/internal/model"
)

func openMemDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(":memory:")
	if err != nil {
		t.Fatalf("open in-memory db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

// fixture seeds two teams, a small roster each, and one match between them.
type fixture struct {
	home, away  int64
	homePlayers []int64
	awayPlayers []int64
	match       int64
}

func seedFixture(t *testing.T, db *DB) fixture {
	t.Helper()
	var f fixture
	var err error

	if f.home, err = db.InsertTeam("Atlético Sur"); err != nil {
		t.Fatalf("InsertTeam home: %v", err)
	}
	if f.away, err = db.InsertTeam("Deportivo Norte"); err != nil {
		t.Fatalf("InsertTeam away: %v", err)
	}
	for i, name := range []string{"Lucas", "Mateo", "Bruno"} {
		id, err := db.InsertPlayer(name, f.home, i+1)
		if err != nil {
			t.Fatalf("InsertPlayer %s: %v", name, err)
		}
		f.homePlayers = append(f.homePlayers, id)
	}
	for i, name := range []string{"Diego", "Tomás"} {
		id, err := db.InsertPlayer(name, f.away, i+10)
		if err != nil {
			t.Fatalf("InsertPlayer %s: %v", name, err)
		}
		f.awayPlayers = append(f.awayPlayers, id)
	}
	if f.match, err = db.InsertMatch(f.home, f.away, "2026-03-14"); err != nil {
		t.Fatalf("InsertMatch: %v", err)
	}
	return f
}

func TestInsertTeamDuplicate(t *testing.T) {
	db := openMemDB(t)

	if _, err := db.InsertTeam("Atlético Sur"); err != nil {
		t.Fatalf("InsertTeam: %v", err)
	}
	_, err := db.InsertTeam("Atlético Sur")
	if !errors.Is(err, ErrDuplicate) {
		t.Errorf("expected ErrDuplicate for repeated name, got %v", err)
	}
}

func TestGetTeamNotFound(t *testing.T) {
	db := openMemDB(t)

	_, err := db.GetTeam(42)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestInsertMatchSameTeam(t *testing.T) {
	db := openMemDB(t)

	id, err := db.InsertTeam("Atlético Sur")
	if err != nil {
		t.Fatalf("InsertTeam: %v", err)
	}
	var verr *model.ValidationError
	if _, err := db.InsertMatch(id, id, "2026-03-14"); !errors.As(err, &verr) {
		t.Errorf("expected validation error for home==away, got %v", err)
	}
}

func TestSaveCornerWithPositions(t *testing.T) {
	db := openMemDB(t)
	f := seedFixture(t, db)

	corner := model.Corner{
		MatchID:         f.match,
		AttackingTeamID: f.home,
		Minute:          37,
		Side:            model.SideRight,
		Outcome:         model.OutcomeShotOn,
		Zone:            "Primer Palo",
		LandingX:        58,
		LandingY:        12,
		HasLanding:      true,
	}
	positions := []model.PlayerPosition{
		{PlayerID: f.homePlayers[0], TeamID: f.home, X: 96, Y: 6, Role: model.RoleTaker, Tag: model.TagOffense},
		{PlayerID: f.homePlayers[1], TeamID: f.home, X: 55, Y: 10, Role: model.RoleFinisher, Tag: model.TagOffense},
		{PlayerID: f.awayPlayers[0], TeamID: f.away, X: 46, Y: 8, Role: model.RoleZonal, Tag: model.TagDefense},
	}

	id, err := db.SaveCorner(corner, positions)
	if err != nil {
		t.Fatalf("SaveCorner: %v", err)
	}

	got, gotPos, err := db.GetCorner(id)
	if err != nil {
		t.Fatalf("GetCorner: %v", err)
	}
	if got.Minute != 37 || got.Side != model.SideRight || got.Outcome != model.OutcomeShotOn {
		t.Errorf("unexpected header: %+v", got)
	}
	if !got.HasLanding || got.LandingX != 58 || got.LandingY != 12 {
		t.Errorf("landing not round-tripped: %+v", got)
	}
	if len(gotPos) != 3 {
		t.Fatalf("expected 3 positions, got %d", len(gotPos))
	}
}

func TestSaveCornerAtomicRollback(t *testing.T) {
	db := openMemDB(t)
	f := seedFixture(t, db)

	corner := model.Corner{
		MatchID:         f.match,
		AttackingTeamID: f.home,
		Minute:          12,
		Side:            model.SideLeft,
		Outcome:         model.OutcomeClearance,
	}
	// The same player twice in the same setup trips the unique index on the
	// second insert; the already-inserted header and first position must roll
	// back with it.
	positions := []model.PlayerPosition{
		{PlayerID: f.homePlayers[0], TeamID: f.home, X: 4, Y: 6, Role: model.RoleTaker, Tag: model.TagOffense},
		{PlayerID: f.homePlayers[0], TeamID: f.home, X: 50, Y: 10, Role: model.RoleFinisher, Tag: model.TagOffense},
	}

	if _, err := db.SaveCorner(corner, positions); err == nil {
		t.Fatal("expected duplicate placement to fail")
	}

	corners, err := db.CountRows("corners", "1=1")
	if err != nil {
		t.Fatalf("count corners: %v", err)
	}
	if corners != 0 {
		t.Errorf("expected 0 corners after rollback, got %d", corners)
	}
	posCount, _ := db.CountRows("player_positions", "1=1")
	if posCount != 0 {
		t.Errorf("expected 0 positions after rollback, got %d", posCount)
	}
}

func TestSaveCornerUnknownPlayer(t *testing.T) {
	db := openMemDB(t)
	f := seedFixture(t, db)

	corner := model.Corner{
		MatchID:         f.match,
		AttackingTeamID: f.home,
		Minute:          55,
		Side:            model.SideRight,
		Outcome:         model.OutcomeShotOn,
	}
	// A position referencing a player id that does not exist must trip the
	// foreign key, not commit an orphan row.
	positions := []model.PlayerPosition{
		{PlayerID: 9999, TeamID: f.home, X: 50, Y: 10, Role: model.RoleFinisher, Tag: model.TagOffense},
	}

	_, err := db.SaveCorner(corner, positions)
	if !errors.Is(err, ErrConstraint) {
		t.Fatalf("expected ErrConstraint for unknown player, got %v", err)
	}
	if n, _ := db.CountRows("player_positions", "player_id = 9999"); n != 0 {
		t.Errorf("orphan position committed: %d rows", n)
	}
	if n, _ := db.CountRows("corners", "1=1"); n != 0 {
		t.Errorf("expected header rollback, got %d corners", n)
	}
}

func TestSaveCornerRejectsInvalidInput(t *testing.T) {
	db := openMemDB(t)
	f := seedFixture(t, db)

	bad := model.Corner{
		MatchID:         f.match,
		AttackingTeamID: f.home,
		Minute:          0, // outside 1-120
		Side:            model.SideRight,
		Outcome:         model.OutcomeGoal,
	}
	var verr *model.ValidationError
	if _, err := db.SaveCorner(bad, nil); !errors.As(err, &verr) {
		t.Errorf("expected validation error for minute 0, got %v", err)
	}

	corner := model.Corner{
		MatchID:         f.match,
		AttackingTeamID: f.home,
		Minute:          10,
		Side:            model.SideRight,
		Outcome:         model.OutcomeGoal,
	}
	positions := []model.PlayerPosition{
		// Defensive role under the offensive tag.
		{PlayerID: f.homePlayers[0], TeamID: f.home, X: 50, Y: 10, Role: model.RoleZonal, Tag: model.TagOffense},
	}
	if _, err := db.SaveCorner(corner, positions); !errors.As(err, &verr) {
		t.Errorf("expected validation error for role/tag mismatch, got %v", err)
	}

	if n, _ := db.CountRows("corners", "1=1"); n != 0 {
		t.Errorf("rejected corners must not be stored, found %d", n)
	}
}

func TestDeleteCornerCascade(t *testing.T) {
	db := openMemDB(t)
	f := seedFixture(t, db)

	id, err := db.SaveCorner(model.Corner{
		MatchID: f.match, AttackingTeamID: f.home, Minute: 5,
		Side: model.SideRight, Outcome: model.OutcomeGoal,
	}, []model.PlayerPosition{
		{PlayerID: f.homePlayers[0], TeamID: f.home, X: 96, Y: 6, Role: model.RoleTaker, Tag: model.TagOffense},
	})
	if err != nil {
		t.Fatalf("SaveCorner: %v", err)
	}

	if err := db.DeleteCorner(id); err != nil {
		t.Fatalf("DeleteCorner: %v", err)
	}
	if n, _ := db.CountRows("player_positions", "corner_id = ?", id); n != 0 {
		t.Errorf("positions survived corner delete: %d", n)
	}
}

func TestDeleteMatchCascade(t *testing.T) {
	db := openMemDB(t)
	f := seedFixture(t, db)

	_, err := db.SaveCorner(model.Corner{
		MatchID: f.match, AttackingTeamID: f.away, Minute: 80,
		Side: model.SideLeft, Outcome: model.OutcomeShotOff,
	}, []model.PlayerPosition{
		{PlayerID: f.awayPlayers[0], TeamID: f.away, X: 4, Y: 6, Role: model.RoleTaker, Tag: model.TagOffense},
		{PlayerID: f.homePlayers[2], TeamID: f.home, X: 48, Y: 9, Role: model.RoleMarker, Tag: model.TagDefense},
	})
	if err != nil {
		t.Fatalf("SaveCorner: %v", err)
	}

	if err := db.DeleteMatch(f.match); err != nil {
		t.Fatalf("DeleteMatch: %v", err)
	}
	if n, _ := db.CountRows("corners", "1=1"); n != 0 {
		t.Errorf("corners survived match delete: %d", n)
	}
	if n, _ := db.CountRows("player_positions", "1=1"); n != 0 {
		t.Errorf("positions survived match delete: %d", n)
	}
	// Rosters are untouched.
	if n, _ := db.CountRows("players", "1=1"); n != 5 {
		t.Errorf("expected 5 players to remain, got %d", n)
	}
}

func TestDeleteTeamCascade(t *testing.T) {
	db := openMemDB(t)
	f := seedFixture(t, db)

	_, err := db.SaveCorner(model.Corner{
		MatchID: f.match, AttackingTeamID: f.home, Minute: 20,
		Side: model.SideRight, Outcome: model.OutcomeClearance,
	}, []model.PlayerPosition{
		{PlayerID: f.homePlayers[0], TeamID: f.home, X: 96, Y: 6, Role: model.RoleTaker, Tag: model.TagOffense},
		{PlayerID: f.awayPlayers[1], TeamID: f.away, X: 50, Y: 12, Role: model.RoleHigh, Tag: model.TagDefense},
	})
	if err != nil {
		t.Fatalf("SaveCorner: %v", err)
	}

	if err := db.DeleteTeam(f.home); err != nil {
		t.Fatalf("DeleteTeam: %v", err)
	}

	for table, want := range map[string]int{
		"teams":            1, // away survives
		"players":          2, // away roster survives
		"matches":          0,
		"corners":          0,
		"player_positions": 0,
	} {
		if n, _ := db.CountRows(table, "1=1"); n != want {
			t.Errorf("%s: expected %d rows after team delete, got %d", table, want, n)
		}
	}
}

func TestListMatchesNewestFirst(t *testing.T) {
	db := openMemDB(t)
	f := seedFixture(t, db)

	later, err := db.InsertMatch(f.away, f.home, "2026-05-02")
	if err != nil {
		t.Fatalf("InsertMatch: %v", err)
	}

	matches, err := db.ListMatches()
	if err != nil {
		t.Fatalf("ListMatches: %v", err)
	}
	if len(matches) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(matches))
	}
	if matches[0].ID != later {
		t.Errorf("expected match %d (2026-05-02) first, got %d", later, matches[0].ID)
	}
	if matches[0].HomeName != "Deportivo Norte" {
		t.Errorf("team names not resolved: %+v", matches[0])
	}
}

func TestMigrateAddsColumns(t *testing.T) {
	db := openMemDB(t)

	// The legacy layout had no zone or landing columns. Drop them by
	// recreating the table, then re-run the migration.
	stmts := []string{
		"DROP INDEX idx_corners_match",
		"DROP INDEX idx_corners_attacker",
		"DROP TABLE corners",
		`CREATE TABLE corners (
			id                INTEGER PRIMARY KEY,
			match_id          INTEGER NOT NULL REFERENCES matches(id),
			attacking_team_id INTEGER NOT NULL REFERENCES teams(id),
			minute            INTEGER NOT NULL,
			side              TEXT NOT NULL,
			outcome           TEXT NOT NULL
		)`,
	}
	for _, s := range stmts {
		if _, err := db.conn.Exec(s); err != nil {
			t.Fatalf("rebuild legacy table: %v", err)
		}
	}

	if err := migrate(db.conn); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	f := seedFixture(t, db)
	id, err := db.SaveCorner(model.Corner{
		MatchID: f.match, AttackingTeamID: f.home, Minute: 33,
		Side: model.SideRight, Outcome: model.OutcomeGoal,
		Zone: "Segundo Palo", LandingX: 42, LandingY: 12, HasLanding: true,
	}, nil)
	if err != nil {
		t.Fatalf("SaveCorner after migrate: %v", err)
	}
	c, _, err := db.GetCorner(id)
	if err != nil {
		t.Fatalf("GetCorner: %v", err)
	}
	if c.Zone != "Segundo Palo" || !c.HasLanding {
		t.Errorf("migrated columns not usable: %+v", c)
	}
}
