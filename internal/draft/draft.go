// Package draft holds the in-progress setup of one corner before it is saved.
// A draft accumulates player placements for both setups, enforces the
// one-spot-per-player-per-setup rule, and hands storage a validated batch.
package draft

import (
	"fmt"
	"sort"

	"github.com/tacticpad/go-corner-stats/internal/model"
)

// CornerDraft is a mutable corner setup. The zero value is ready to use.
// Not safe for concurrent use.
type CornerDraft struct {
	positions map[key]model.PlayerPosition
}

type key struct {
	playerID int64
	tag      model.SideTag
}

// Set places a player in the draft, replacing any earlier spot the player held
// in the same setup. The placement is validated before it is accepted, so a
// draft never holds an out-of-range coordinate or a role from the wrong
// vocabulary.
func (d *CornerDraft) Set(playerID, teamID int64, x, y float64, role model.Role, tag model.SideTag) error {
	p := model.PlayerPosition{
		PlayerID: playerID,
		TeamID:   teamID,
		X:        x,
		Y:        y,
		Role:     role,
		Tag:      tag,
	}
	if err := p.Validate(); err != nil {
		return err
	}
	if d.positions == nil {
		d.positions = make(map[key]model.PlayerPosition)
	}
	d.positions[key{playerID, tag}] = p
	return nil
}

// Remove drops a player's spot from one setup. Removing a player who was never
// placed is an error so typos surface instead of silently doing nothing.
func (d *CornerDraft) Remove(playerID int64, tag model.SideTag) error {
	k := key{playerID, tag}
	if _, ok := d.positions[k]; !ok {
		return fmt.Errorf("player %d has no %s placement", playerID, string(tag))
	}
	delete(d.positions, k)
	return nil
}

// Reset clears every placement at once.
func (d *CornerDraft) Reset() {
	d.positions = nil
}

// Len reports how many placements the draft holds.
func (d *CornerDraft) Len() int {
	return len(d.positions)
}

// Positions returns the placements as a batch ready for storage, offense
// first, then by player id, for deterministic insert order.
func (d *CornerDraft) Positions() []model.PlayerPosition {
	out := make([]model.PlayerPosition, 0, len(d.positions))
	for _, p := range d.positions {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Tag != out[j].Tag {
			return out[i].Tag == model.TagOffense
		}
		return out[i].PlayerID < out[j].PlayerID
	})
	return out
}
