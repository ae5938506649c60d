package domain

// Game holds the state of a single match. It is not safe for concurrent use;
// callers serialize moves.
type Game struct {
	board      [][]PlayerID
	players    [2]Player
	current    int
	status     GameStatus
	winner     PlayerID
	winningRun [ToWin]Position
	moveCount  int
}

func NewGame(rows, columns int, player1, player2 Player) (*Game, error) {
	if rows < ToWin || columns < ToWin {
		return nil, ErrInvalidDimensions
	}
	if player1.ID != Player1 || player2.ID != Player2 {
		return nil, ErrInvalidPlayers
	}

	return &Game{
		board:   NewBoard(rows, columns),
		players: [2]Player{player1, player2},
		current: 0,
		status:  StatusInProgress,
		winner:  Empty,
	}, nil
}

// SubmitMove drops the current player's disc into column. On error nothing
// about the game changes.
func (g *Game) SubmitMove(column int) (MoveResult, error) {
	if g.status != StatusInProgress {
		return MoveResult{}, ErrGameOver
	}

	player := g.players[g.current].ID
	row, err := DropDisc(g.board, column, player)
	if err != nil {
		return MoveResult{}, err
	}
	g.moveCount++

	result := MoveResult{Player: player, Row: row, Column: column}

	if CheckWinAt(g.board, row, column, player) {
		g.status = StatusWon
		g.winner = player
		g.winningRun, _ = FindWinningRun(g.board, player)
		result.Outcome = OutcomeWin
		result.Winner = player
		return result, nil
	}

	if IsBoardFull(g.board) {
		g.status = StatusDraw
		result.Outcome = OutcomeDraw
		return result, nil
	}

	g.current = 1 - g.current
	result.Outcome = OutcomeContinue
	return result, nil
}

// Board returns a copy of the grid.
func (g *Game) Board() [][]PlayerID {
	return CopyBoard(g.board)
}

func (g *Game) CurrentPlayer() Player {
	return g.players[g.current]
}

func (g *Game) Players() [2]Player {
	return g.players
}

func (g *Game) Player(id PlayerID) (Player, bool) {
	for _, p := range g.players {
		if p.ID == id {
			return p, true
		}
	}
	return Player{}, false
}

func (g *Game) Status() GameStatus {
	return g.status
}

// Winner returns the winning player once the game is won.
func (g *Game) Winner() (Player, bool) {
	if g.status != StatusWon {
		return Player{}, false
	}
	return g.Player(g.winner)
}

func (g *Game) WinningRun() ([ToWin]Position, bool) {
	return g.winningRun, g.status == StatusWon
}

func (g *Game) MoveCount() int {
	return g.moveCount
}

func (g *Game) Rows() int {
	return len(g.board)
}

func (g *Game) Columns() int {
	return len(g.board[0])
}

func (g *Game) IsFinished() bool {
	return g.status == StatusWon || g.status == StatusDraw
}
