package models

import "time"

type GameEventType string

const (
	GameEventShot     GameEventType = "Shot"
	GameEventTurnover GameEventType = "Turnover"
	GameEventSanction GameEventType = "Sanction"
)

// Исходы броска.
const (
	ShotSubtypeGoal  = "Goal"
	ShotSubtypeSave  = "Save"
	ShotSubtypePost  = "Post"
	ShotSubtypeMiss  = "Miss"
	ShotSubtypeBlock = "Block"
)

// Причины потери.
const (
	TurnoverSubtypePass      = "Pass"
	TurnoverSubtypeSteal     = "Steal"
	TurnoverSubtypeSteps     = "Steps"
	TurnoverSubtypeOffensive = "Offensive"
	TurnoverSubtypeZone      = "Zone"
)

// Тяжесть санкции.
const (
	SanctionSubtypeYellowCard = "YellowCard"
	SanctionSubtypeTwoMinutes = "TwoMinutes"
	SanctionSubtypeRedCard    = "RedCard"
	SanctionSubtypeBlueCard   = "BlueCard"
)

// Коды дистанции броска. DistanceSevenMeters даёт зону без позиции.
const (
	DistanceSixMeters   = "6M"
	DistanceSevenMeters = "7M"
	DistanceNineMeters  = "9M"
)

// Игровые позиции при броске.
const (
	PositionLeftWing   = "LW"
	PositionLeftBack   = "LB"
	PositionCenterBack = "CB"
	PositionRightBack  = "RB"
	PositionRightWing  = "RW"
	PositionPivot      = "PV"
)

// GameEvent - дискретное событие матча (бросок, потеря, санкция).
// Zone всегда выводится из Distance+Position и не задаётся напрямую.
type GameEvent struct {
	ID        int           `json:"id"`
	MatchID   int           `json:"matchId"`
	TeamID    int           `json:"teamId"`
	PlayerID  *int          `json:"playerId,omitempty"`
	Timestamp int           `json:"timestamp"` // секунды от начала матча
	Type      GameEventType `json:"type"`
	Subtype   *string       `json:"subtype,omitempty"`

	Position *string `json:"position,omitempty"`
	Distance *string `json:"distance,omitempty"`
	Zone     *string `json:"zone,omitempty"`
	GoalZone *string `json:"goalZone,omitempty"`

	IsCollective    *bool `json:"isCollective,omitempty"`
	HasOpposition   *bool `json:"hasOpposition,omitempty"`
	IsCounterAttack *bool `json:"isCounterAttack,omitempty"`

	SanctionType       *string `json:"sanctionType,omitempty"`
	VideoTimestamp     *int    `json:"videoTimestamp,omitempty"` // секунды от начала видео
	ActiveGoalkeeperID *int    `json:"activeGoalkeeperId,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}

// IsGoal - предикат гола: только бросок с исходом Goal меняет счёт.
func (e *GameEvent) IsGoal() bool {
	return e.Type == GameEventShot && e.Subtype != nil && *e.Subtype == ShotSubtypeGoal
}
