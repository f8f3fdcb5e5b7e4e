package game

// GameState is the screen the game is on.
type GameState int

const (
	StateStart GameState = iota
	StateCredits
	StateRun
)

func (s GameState) String() string {
	switch s {
	case StateStart:
		return "start"
	case StateCredits:
		return "credits"
	case StateRun:
		return "run"
	default:
		return "unknown"
	}
}
