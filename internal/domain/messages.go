package domain

type PlayerInput struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

type ClientMessage struct {
	Type    string       `json:"type"`
	GameID  string       `json:"gameId,omitempty"`
	Column  int          `json:"column"`
	Rows    int          `json:"rows,omitempty"`
	Columns int          `json:"columns,omitempty"`
	Player1 *PlayerInput `json:"player1,omitempty"`
	Player2 *PlayerInput `json:"player2,omitempty"`
}

type ServerMessage struct {
	Type    string      `json:"type"`
	Message string      `json:"message,omitempty"`
	GameID  string      `json:"gameId,omitempty"`
	Result  *MoveResult `json:"result,omitempty"`
	Game    *Snapshot   `json:"game,omitempty"`
}

// Snapshot is the read-only view of a game handed to presentation layers.
type Snapshot struct {
	GameID        string     `json:"gameId"`
	Rows          int        `json:"rows"`
	Columns       int        `json:"columns"`
	Board         [][]int    `json:"board"`
	Players       [2]Player  `json:"players"`
	CurrentPlayer Player     `json:"currentPlayer"`
	Status        GameStatus `json:"status"`
	Winner        *Player    `json:"winner,omitempty"`
	WinningRun    []Position `json:"winningRun,omitempty"`
	MoveCount     int        `json:"moveCount"`
	ValidColumns  []int      `json:"validColumns"`
}

func NewSnapshot(gameID string, g *Game) Snapshot {
	s := Snapshot{
		GameID:        gameID,
		Rows:          g.Rows(),
		Columns:       g.Columns(),
		Board:         BoardToInts(g.board),
		Players:       g.Players(),
		CurrentPlayer: g.CurrentPlayer(),
		Status:        g.Status(),
		MoveCount:     g.MoveCount(),
		ValidColumns:  []int{},
	}
	if !g.IsFinished() {
		s.ValidColumns = ValidColumns(g.board)
	}
	if winner, ok := g.Winner(); ok {
		s.Winner = &winner
		run, _ := g.WinningRun()
		s.WinningRun = run[:]
	}
	return s
}
