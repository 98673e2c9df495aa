package draft

import (
	"testing"

	"github.com/tacticpad/go-corner-stats/internal/model"
)

func TestSetReplacesSameSetup(t *testing.T) {
	var d CornerDraft

	if err := d.Set(1, 10, 40, 10, model.RoleFinisher, model.TagOffense); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := d.Set(1, 10, 60, 14, model.RoleBlocker, model.TagOffense); err != nil {
		t.Fatalf("Set replace: %v", err)
	}
	if d.Len() != 1 {
		t.Fatalf("replacing a spot must not add a row, got %d", d.Len())
	}
	p := d.Positions()[0]
	if p.X != 60 || p.Role != model.RoleBlocker {
		t.Errorf("expected the newer placement to win, got %+v", p)
	}
}

func TestSetAllowsBothSetups(t *testing.T) {
	var d CornerDraft

	// A player can appear once per setup, e.g. recorded in both teams' drills.
	if err := d.Set(1, 10, 96, 6, model.RoleTaker, model.TagOffense); err != nil {
		t.Fatalf("Set offense: %v", err)
	}
	if err := d.Set(1, 10, 46, 8, model.RoleZonal, model.TagDefense); err != nil {
		t.Fatalf("Set defense: %v", err)
	}
	if d.Len() != 2 {
		t.Errorf("expected one spot per setup, got %d", d.Len())
	}
}

func TestSetRejectsInvalid(t *testing.T) {
	var d CornerDraft

	if err := d.Set(1, 10, 120, 10, model.RoleTaker, model.TagOffense); err == nil {
		t.Error("expected out-of-range x to be rejected")
	}
	if err := d.Set(1, 10, 50, 10, model.RoleZonal, model.TagOffense); err == nil {
		t.Error("expected defensive role under offense tag to be rejected")
	}
	if d.Len() != 0 {
		t.Errorf("rejected placements must not be stored, got %d", d.Len())
	}
}

func TestRemove(t *testing.T) {
	var d CornerDraft

	if err := d.Remove(1, model.TagOffense); err == nil {
		t.Error("removing an absent placement should fail")
	}

	d.Set(1, 10, 40, 10, model.RoleFinisher, model.TagOffense)
	if err := d.Remove(1, model.TagOffense); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if d.Len() != 0 {
		t.Errorf("expected empty draft after remove, got %d", d.Len())
	}
}

func TestReset(t *testing.T) {
	var d CornerDraft

	d.Set(1, 10, 40, 10, model.RoleFinisher, model.TagOffense)
	d.Set(2, 20, 46, 8, model.RoleZonal, model.TagDefense)
	d.Reset()
	if d.Len() != 0 {
		t.Errorf("Reset must clear everything, got %d", d.Len())
	}
}

func TestPositionsOrdering(t *testing.T) {
	var d CornerDraft

	d.Set(9, 20, 46, 8, model.RoleZonal, model.TagDefense)
	d.Set(5, 10, 96, 6, model.RoleTaker, model.TagOffense)
	d.Set(3, 10, 55, 10, model.RoleFinisher, model.TagOffense)

	got := d.Positions()
	if len(got) != 3 {
		t.Fatalf("expected 3 placements, got %d", len(got))
	}
	if got[0].Tag != model.TagOffense || got[0].PlayerID != 3 {
		t.Errorf("expected offense sorted by player id first, got %+v", got[0])
	}
	if got[2].Tag != model.TagDefense {
		t.Errorf("expected defense last, got %+v", got[2])
	}
}
