package domain

type PlayerID int

const (
	Empty   PlayerID = 0
	Player1 PlayerID = 1
	Player2 PlayerID = 2
)

// Opponent returns the other of the two players. Empty has no opponent.
func (p PlayerID) Opponent() PlayerID {
	switch p {
	case Player1:
		return Player2
	case Player2:
		return Player1
	}
	return Empty
}

func (p PlayerID) Valid() bool {
	return p == Player1 || p == Player2
}

const (
	DefaultRows    = 6
	DefaultColumns = 7
	ToWin          = 4
)

// Player is a seat at the table. Name and Color are only used for display.
type Player struct {
	ID    PlayerID `json:"id"`
	Name  string   `json:"name"`
	Color string   `json:"color"`
}

func NewPlayer(id PlayerID, name, color string) Player {
	return Player{ID: id, Name: name, Color: color}
}

// to represent the game status
type GameStatus string

const (
	StatusInProgress GameStatus = "in_progress"
	StatusWon        GameStatus = "won"
	StatusDraw       GameStatus = "draw"
)

type Outcome string

const (
	OutcomeContinue Outcome = "continue"
	OutcomeWin      Outcome = "win"
	OutcomeDraw     Outcome = "draw"
)

type Position struct {
	Row    int `json:"row"`
	Column int `json:"column"`
}

// MoveResult is what the engine reports back after an accepted move.
type MoveResult struct {
	Outcome Outcome  `json:"outcome"`
	Player  PlayerID `json:"player"`
	Winner  PlayerID `json:"winner,omitempty"`
	Row     int      `json:"row"`
	Column  int      `json:"column"`
}

// basic error that can occur
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	ErrColumnFull        Error = "column is full"
	ErrGameOver          Error = "game is already over"
	ErrInvalidColumn     Error = "invalid column"
	ErrInvalidDimensions Error = "board must be at least 4x4"
	ErrInvalidPlayers    Error = "players must be Player1 and Player2"
)
