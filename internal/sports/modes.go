package sports

// Sport selects which scoring table and mode family a game uses.
type Sport string

const (
	SportBasketball Sport = "basketball"
	SportFootball   Sport = "football"
)

// ActionType is a scoreboard button press recorded in the event log.
type ActionType string

const (
	ActionThreePointer ActionType = "three_pointer"
	ActionTwoPointer   ActionType = "two_pointer"
	ActionFreeThrow    ActionType = "free_throw"

	ActionTouchdown  ActionType = "touchdown"
	ActionFieldGoal  ActionType = "field_goal"
	ActionExtraPoint ActionType = "extra_point"

	ActionFoul       ActionType = "foul"
	ActionAdjustment ActionType = "adjustment"
)

// Mode is a fixed, immutable game configuration. WinBy is advertised on the
// settings screen but no transition enforces it: reaching the target score ends
// the game outright.
type Mode struct {
	ID          string             `json:"id"`
	Sport       Sport              `json:"sport"`
	Label       string             `json:"label"`
	TargetScore *int               `json:"target_score,omitempty"`
	TimeLimit   *int               `json:"time_limit,omitempty"`
	WinBy       int                `json:"win_by"`
	MaxPlayers  int                `json:"max_players"`
	Timeouts    int                `json:"timeouts"`
	ShotClock   *int               `json:"shot_clock,omitempty"`
	Scoring     map[ActionType]int `json:"scoring"`
}

const shotClockSeconds = 24

var basketballScoring = map[ActionType]int{
	ActionThreePointer: 3,
	ActionTwoPointer:   2,
	ActionFreeThrow:    1,
	ActionFoul:         0,
	ActionAdjustment:   -1,
}

var footballScoring = map[ActionType]int{
	ActionTouchdown:  6,
	ActionFieldGoal:  3,
	ActionExtraPoint: 1,
	ActionFoul:       0,
	ActionAdjustment: -1,
}

var modes = []Mode{
	{
		ID:          "basketball_first_to_11",
		Sport:       SportBasketball,
		Label:       "First to 11",
		TargetScore: intPtr(11),
		WinBy:       2,
		MaxPlayers:  5,
		Timeouts:    2,
		Scoring:     basketballScoring,
	},
	{
		ID:          "basketball_first_to_21",
		Sport:       SportBasketball,
		Label:       "First to 21",
		TargetScore: intPtr(21),
		WinBy:       2,
		MaxPlayers:  5,
		Timeouts:    2,
		Scoring:     basketballScoring,
	},
	{
		ID:         "basketball_timed",
		Sport:      SportBasketball,
		Label:      "Timed game",
		TimeLimit:  intPtr(40 * 60),
		MaxPlayers: 5,
		Timeouts:   4,
		ShotClock:  intPtr(shotClockSeconds),
		Scoring:    basketballScoring,
	},
	{
		ID:          "football_first_to_35",
		Sport:       SportFootball,
		Label:       "First to 35",
		TargetScore: intPtr(35),
		WinBy:       0,
		MaxPlayers:  11,
		Timeouts:    3,
		Scoring:     footballScoring,
	},
	{
		ID:         "football_timed",
		Sport:      SportFootball,
		Label:      "Timed game",
		TimeLimit:  intPtr(60 * 60),
		MaxPlayers: 11,
		Timeouts:   3,
		Scoring:    footballScoring,
	},
}

// Action is a presentable scoreboard button: an ActionType with its label and
// point value for one sport.
type Action struct {
	ID     ActionType `json:"id"`
	Label  string     `json:"label"`
	Points int        `json:"points"`
}

var basketballActions = []Action{
	{ActionThreePointer, "3 pointer", 3},
	{ActionTwoPointer, "2 pointer", 2},
	{ActionFreeThrow, "Free throw", 1},
	{ActionFoul, "Foul", 0},
	{ActionAdjustment, "Adjust -1", -1},
}

var footballActions = []Action{
	{ActionTouchdown, "Touchdown", 6},
	{ActionFieldGoal, "Field goal", 3},
	{ActionExtraPoint, "Extra point", 1},
	{ActionFoul, "Penalty", 0},
	{ActionAdjustment, "Adjust -1", -1},
}

// Actions returns the sport's scoreboard buttons in display order.
func (m Mode) Actions() []Action {
	if m.Sport == SportFootball {
		return append([]Action{}, footballActions...)
	}
	return append([]Action{}, basketballActions...)
}

// Modes lists every available mode, optionally filtered by sport.
func Modes(sport Sport) []Mode {
	if sport == "" {
		return append([]Mode{}, modes...)
	}
	list := make([]Mode, 0, len(modes))
	for _, mode := range modes {
		if mode.Sport == sport {
			list = append(list, mode)
		}
	}
	return list
}

// ModeByID looks up a mode from the fixed table.
func ModeByID(id string) (Mode, bool) {
	for _, mode := range modes {
		if mode.ID == id {
			return mode, true
		}
	}
	return Mode{}, false
}

func intPtr(v int) *int {
	return &v
}
