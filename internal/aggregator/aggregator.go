// Package aggregator turns raw per-corner rows into the positional and
// outcome summaries the reports and diagrams consume. Everything here is
// pure: rows in, sorted slices out, empty in means empty out.
package aggregator

import (
	"sort"

	"github.com/tacticpad/go-corner-stats/internal/model"
)

// AveragePositions groups position rows by (player, role) and computes the
// arithmetic mean of each axis plus the contributing row count. A player seen
// under two roles produces two aggregate rows: their average spot as taker is
// a different datum than their average spot as finisher. Ordered by count
// descending, then player name, then role, for stable output.
func AveragePositions(rows []model.PositionRow) []model.PositionAverage {
	type key struct {
		playerID int64
		role     model.Role
	}
	type accum struct {
		name   string
		number int
		sumX   float64
		sumY   float64
		count  int
	}

	accums := make(map[key]*accum)
	for _, r := range rows {
		k := key{r.PlayerID, r.Role}
		a := accums[k]
		if a == nil {
			a = &accum{name: r.PlayerName, number: r.Number}
			accums[k] = a
		}
		a.sumX += r.X
		a.sumY += r.Y
		a.count++
	}

	out := make([]model.PositionAverage, 0, len(accums))
	for k, a := range accums {
		out = append(out, model.PositionAverage{
			PlayerID:   k.playerID,
			PlayerName: a.name,
			Number:     a.number,
			Role:       k.role,
			MeanX:      a.sumX / float64(a.count),
			MeanY:      a.sumY / float64(a.count),
			Count:      a.count,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		if out[i].PlayerName != out[j].PlayerName {
			return out[i].PlayerName < out[j].PlayerName
		}
		return out[i].Role < out[j].Role
	})
	return out
}

// OutcomeDistribution counts corners per outcome. Percentages are over all
// given corners; a zero total yields an empty table.
func OutcomeDistribution(corners []model.CornerRecord) []model.OutcomeCount {
	counts := make(map[model.Outcome]int)
	for _, c := range corners {
		counts[c.Outcome]++
	}
	total := len(corners)

	var out []model.OutcomeCount
	for _, o := range model.Outcomes {
		n := counts[o]
		if n == 0 {
			continue
		}
		out = append(out, model.OutcomeCount{
			Outcome: o,
			Count:   n,
			Pct:     float64(n) / float64(total) * 100,
		})
	}
	return out
}

// ZoneDistribution counts corners per recorded landing zone. Corners without
// a zone are excluded from both the counts and the percentage denominator so
// missing trajectory data cannot skew the shares.
func ZoneDistribution(corners []model.CornerRecord) []model.ZoneCount {
	counts := make(map[string]int)
	total := 0
	for _, c := range corners {
		if c.Zone == "" {
			continue
		}
		counts[c.Zone]++
		total++
	}
	if total == 0 {
		return nil
	}

	out := make([]model.ZoneCount, 0, len(counts))
	for zone, n := range counts {
		out = append(out, model.ZoneCount{
			Zone:  zone,
			Count: n,
			Pct:   float64(n) / float64(total) * 100,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Zone < out[j].Zone
	})
	return out
}

// SideZoneCrossTab builds the joint (side, zone) frequency table. Each cell's
// Share is its fraction of all zone-recorded corners; the diagram renders one
// arrow per cell with stroke width monotone in Share.
func SideZoneCrossTab(corners []model.CornerRecord) []model.SideZoneShare {
	type key struct {
		side model.Side
		zone string
	}
	counts := make(map[key]int)
	total := 0
	for _, c := range corners {
		if c.Zone == "" {
			continue
		}
		counts[key{c.Side, c.Zone}]++
		total++
	}
	if total == 0 {
		return nil
	}

	out := make([]model.SideZoneShare, 0, len(counts))
	for k, n := range counts {
		out = append(out, model.SideZoneShare{
			Side:  k.side,
			Zone:  k.zone,
			Count: n,
			Share: float64(n) / float64(total),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		if out[i].Side != out[j].Side {
			return out[i].Side < out[j].Side
		}
		return out[i].Zone < out[j].Zone
	})
	return out
}

// Effectiveness partitions outcomes into the three defensive buckets: goals
// conceded, shots conceded (on or off target), and neutralized (everything
// else). Bucket percentages come from the Effectiveness methods and sum to
// 100 whenever Total > 0.
func Effectiveness(corners []model.CornerRecord) model.Effectiveness {
	var e model.Effectiveness
	e.Total = len(corners)
	for _, c := range corners {
		switch {
		case c.Outcome == model.OutcomeGoal:
			e.Goals++
		case c.Outcome.IsShot():
			e.Shots++
		default:
			e.Neutralized++
		}
	}
	return e
}

// ZoneEffectiveness computes the three-bucket split per recorded landing
// zone, answering "which zone produces the most goals conceded". Ordered by
// goals, then shots, then total, descending.
func ZoneEffectiveness(corners []model.CornerRecord) []model.ZoneEffectiveness {
	byZone := make(map[string][]model.CornerRecord)
	for _, c := range corners {
		if c.Zone == "" {
			continue
		}
		byZone[c.Zone] = append(byZone[c.Zone], c)
	}

	out := make([]model.ZoneEffectiveness, 0, len(byZone))
	for zone, group := range byZone {
		out = append(out, model.ZoneEffectiveness{
			Zone:          zone,
			Effectiveness: Effectiveness(group),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Goals != out[j].Goals {
			return out[i].Goals > out[j].Goals
		}
		if out[i].Shots != out[j].Shots {
			return out[i].Shots > out[j].Shots
		}
		if out[i].Total != out[j].Total {
			return out[i].Total > out[j].Total
		}
		return out[i].Zone < out[j].Zone
	})
	return out
}

// OutcomeTrend computes a rolling moving average over the outcome scores of a
// player's participations, oldest to newest. participations arrive newest
// first (the storage ordering); the result is chronological. The effective
// window is min(window, len); at position i the average covers the last
// window values up to and including i.
func OutcomeTrend(participations []model.Participation, window int) []float64 {
	n := len(participations)
	if n == 0 {
		return nil
	}
	if window > n {
		window = n
	}
	if window < 1 {
		window = 1
	}

	// Reverse into chronological order.
	scores := make([]float64, n)
	for i, p := range participations {
		scores[n-1-i] = p.Outcome.Score()
	}

	out := make([]float64, n)
	for i := range scores {
		lo := i - window + 1
		if lo < 0 {
			lo = 0
		}
		sum := 0.0
		for j := lo; j <= i; j++ {
			sum += scores[j]
		}
		out[i] = sum / float64(i-lo+1)
	}
	return out
}

// TrendWindow is the default rolling window for per-player trends.
const TrendWindow = 3
