package model

import "fmt"

// Side is the corner arc the kick is taken from, as seen by the attacking
// team. The raw Spanish labels are the canonical stored values.
type Side string

const (
	SideRight Side = "Derecha"
	SideLeft  Side = "Izquierda"
)

func (s Side) Valid() bool {
	return s == SideRight || s == SideLeft
}

// SideTag classifies a recorded player position as part of the attacking or
// the defending setup of a corner.
type SideTag string

const (
	TagOffense SideTag = "Ofensivo"
	TagDefense SideTag = "Defensivo"
)

func (t SideTag) Valid() bool {
	return t == TagOffense || t == TagDefense
}

// Outcome is the recorded result of a corner kick.
type Outcome string

const (
	OutcomeGoal       Outcome = "Gol"
	OutcomeShotOn     Outcome = "Remate a puerta"
	OutcomeShotOff    Outcome = "Remate fuera"
	OutcomeClearance  Outcome = "Despeje"
	OutcomeFoulAttack Outcome = "Falta atacante"
	OutcomeFoulDefend Outcome = "Falta defensiva"
	OutcomeOther      Outcome = "Otro"
)

// Outcomes lists every valid outcome in display order.
var Outcomes = []Outcome{
	OutcomeGoal, OutcomeShotOn, OutcomeShotOff, OutcomeClearance,
	OutcomeFoulAttack, OutcomeFoulDefend, OutcomeOther,
}

func (o Outcome) Valid() bool {
	for _, v := range Outcomes {
		if o == v {
			return true
		}
	}
	return false
}

// IsShot reports whether the outcome is a shot, on target or not.
func (o Outcome) IsShot() bool {
	return o == OutcomeShotOn || o == OutcomeShotOff
}

// Score maps an outcome to a threat value used for chronological trends.
// Monotone in danger: goal > shot on target > shot off target > the rest.
func (o Outcome) Score() float64 {
	switch o {
	case OutcomeGoal:
		return 3
	case OutcomeShotOn:
		return 2
	case OutcomeShotOff:
		return 1
	default:
		return 0
	}
}

// Role is a player's tactical assignment within a corner. The valid set
// depends on the side tag.
type Role string

const (
	// Offense roles.
	RoleTaker    Role = "Lanzador"
	RoleFinisher Role = "Rematador"
	RoleBlocker  Role = "Bloqueador"
	RoleDecoy    Role = "Arrastre"
	RoleRebound  Role = "Rechace"
	RoleBack     Role = "Atrás"

	// Defense roles.
	RoleZonal  Role = "Zona"
	RoleMarker Role = "Al hombre"
	RolePost   Role = "Poste"
	RoleHigh   Role = "Arriba"
)

// OffenseRoles and DefenseRoles are the fixed vocabularies per side tag.
var (
	OffenseRoles = []Role{RoleTaker, RoleFinisher, RoleBlocker, RoleDecoy, RoleRebound, RoleBack}
	DefenseRoles = []Role{RoleZonal, RoleMarker, RolePost, RoleHigh}
)

// RolesFor returns the role vocabulary for a side tag.
func RolesFor(tag SideTag) []Role {
	if tag == TagDefense {
		return DefenseRoles
	}
	return OffenseRoles
}

// ValidFor reports whether the role belongs to the given side's vocabulary.
func (r Role) ValidFor(tag SideTag) bool {
	for _, v := range RolesFor(tag) {
		if r == v {
			return true
		}
	}
	return false
}

// Color returns the semantic color key for a role. The rendering sink maps
// these names to paint; every report and diagram shares this one table.
func (r Role) Color() string {
	switch r {
	case RoleZonal:
		return "red"
	case RoleMarker:
		return "blue"
	case RolePost:
		return "yellow"
	case RoleHigh:
		return "green"
	case RoleTaker:
		return "purple"
	case RoleFinisher:
		return "orange"
	case RoleBlocker:
		return "cyan"
	case RoleDecoy:
		return "magenta"
	case RoleRebound:
		return "brown"
	case RoleBack:
		return "gray"
	default:
		return "white"
	}
}

// Color returns the semantic color key for an outcome, used when raw
// positions are plotted by result instead of by role.
func (o Outcome) Color() string {
	switch o {
	case OutcomeGoal:
		return "green"
	case OutcomeShotOn:
		return "orange"
	case OutcomeShotOff:
		return "yellow"
	case OutcomeClearance:
		return "blue"
	case OutcomeFoulAttack, OutcomeFoulDefend:
		return "red"
	default:
		return "gray"
	}
}

// ---- Entities ----

type Team struct {
	ID   int64
	Name string
}

type Player struct {
	ID     int64
	Name   string
	TeamID int64
	Number int
}

type Match struct {
	ID         int64
	HomeTeamID int64
	AwayTeamID int64
	Date       string // "YYYY-MM-DD"

	// Populated on joined reads.
	HomeName string
	AwayName string
}

// Corner is one corner-kick event. Zone and the landing point are optional:
// older records carry neither, and free-text zones ("Personalizada") are
// stored verbatim.
type Corner struct {
	ID              int64
	MatchID         int64
	AttackingTeamID int64
	Minute          int
	Side            Side
	Outcome         Outcome
	Zone            string
	LandingX        float64
	LandingY        float64
	HasLanding      bool
}

// PlayerPosition is one player's recorded spot and role in one corner.
// Coordinates are percent-of-field with the goal at low y.
type PlayerPosition struct {
	ID       int64
	CornerID int64
	PlayerID int64
	TeamID   int64
	X        float64
	Y        float64
	Role     Role
	Tag      SideTag
}

// ---- Analytics rows ----

// PositionRow is a PlayerPosition joined with player and corner metadata,
// the unit the aggregator consumes.
type PositionRow struct {
	PlayerID   int64
	PlayerName string
	Number     int
	Role       Role
	X, Y       float64
	CornerID   int64
	Outcome    Outcome
}

// PositionAverage is one (player, role) aggregate: mean coordinates and how
// many corners contributed. A player appearing under two roles yields two rows.
type PositionAverage struct {
	PlayerID   int64
	PlayerName string
	Number     int
	Role       Role
	MeanX      float64
	MeanY      float64
	Count      int
}

// CornerRecord is a Corner joined with match date and opponent name.
type CornerRecord struct {
	CornerID   int64
	Date       string
	Opponent   string
	Minute     int
	Side       Side
	Outcome    Outcome
	Zone       string
	LandingX   float64
	LandingY   float64
	HasLanding bool
}

// Participation is one corner a given player took part in, with that player's
// recorded spot, ordered most-recent-first when queried.
type Participation struct {
	CornerID int64
	Date     string
	Opponent string
	Minute   int
	Side     Side
	Outcome  Outcome
	X, Y     float64
	Role     Role
}

// OutcomeCount is one row of an outcome frequency table.
type OutcomeCount struct {
	Outcome Outcome
	Count   int
	Pct     float64
}

// ZoneCount is one row of a landing-zone frequency table. Only corners with a
// recorded zone contribute.
type ZoneCount struct {
	Zone  string
	Count int
	Pct   float64
}

// SideZoneShare is one (side, zone) cell of the type×zone cross-tabulation.
// Share is the cell's fraction of the total, which drives arrow stroke width.
type SideZoneShare struct {
	Side  Side
	Zone  string
	Count int
	Share float64
}

// Effectiveness is the three-bucket defensive split of corner outcomes:
// goals conceded, shots conceded, everything else neutralized.
type Effectiveness struct {
	Total       int
	Goals       int
	Shots       int
	Neutralized int
}

func (e Effectiveness) GoalPct() float64 {
	if e.Total == 0 {
		return 0
	}
	return float64(e.Goals) / float64(e.Total) * 100
}

func (e Effectiveness) ShotPct() float64 {
	if e.Total == 0 {
		return 0
	}
	return float64(e.Shots) / float64(e.Total) * 100
}

func (e Effectiveness) NeutralizedPct() float64 {
	if e.Total == 0 {
		return 0
	}
	return float64(e.Neutralized) / float64(e.Total) * 100
}

// ZoneEffectiveness is the three-bucket split restricted to one landing zone.
type ZoneEffectiveness struct {
	Zone string
	Effectiveness
}

// ---- Validation ----

// ValidationError reports malformed or out-of-range input.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Validate checks a corner's header fields before storage.
func (c *Corner) Validate() error {
	if c.Minute < 1 || c.Minute > 120 {
		return &ValidationError{Field: "minute", Reason: fmt.Sprintf("%d outside 1-120", c.Minute)}
	}
	if !c.Side.Valid() {
		return &ValidationError{Field: "side", Reason: fmt.Sprintf("%q is not Derecha or Izquierda", string(c.Side))}
	}
	if !c.Outcome.Valid() {
		return &ValidationError{Field: "outcome", Reason: fmt.Sprintf("unknown outcome %q", string(c.Outcome))}
	}
	return nil
}

// Validate checks coordinate range and the role/side coupling.
func (p *PlayerPosition) Validate() error {
	if p.X < 0 || p.X > 100 || p.Y < 0 || p.Y > 100 {
		return &ValidationError{Field: "position", Reason: fmt.Sprintf("(%.1f, %.1f) outside [0,100]", p.X, p.Y)}
	}
	if !p.Tag.Valid() {
		return &ValidationError{Field: "side tag", Reason: fmt.Sprintf("unknown tag %q", string(p.Tag))}
	}
	if !p.Role.ValidFor(p.Tag) {
		return &ValidationError{Field: "role", Reason: fmt.Sprintf("%q is not a %s role", string(p.Role), string(p.Tag))}
	}
	return nil
}
