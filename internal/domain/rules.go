package domain

// right, down, down-right, down-left
var directions = [4][2]int{{0, 1}, {1, 0}, {1, 1}, {1, -1}}

// FindWinningRun scans every cell in row-major order and returns the first
// run of four cells owned by player, starting at that cell and stepping in one
// of the four directions. Runs leaving the board are rejected cell by cell.
func FindWinningRun(board [][]PlayerID, player PlayerID) ([ToWin]Position, bool) {
	rows, columns := boardSize(board)
	for y := 0; y < rows; y++ {
		for x := 0; x < columns; x++ {
			for _, d := range directions {
				run := buildRun(y, x, d[0], d[1])
				if isWinningRun(board, run, player) {
					return run, true
				}
			}
		}
	}
	return [ToWin]Position{}, false
}

func CheckWin(board [][]PlayerID, player PlayerID) bool {
	_, won := FindWinningRun(board, player)
	return won
}

func buildRun(row, column, deltaRow, deltaCol int) [ToWin]Position {
	var run [ToWin]Position
	for i := range run {
		run[i] = Position{Row: row + i*deltaRow, Column: column + i*deltaCol}
	}
	return run
}

func isWinningRun(board [][]PlayerID, run [ToWin]Position, player PlayerID) bool {
	for _, p := range run {
		if !inBounds(board, p.Row, p.Column) || board[p.Row][p.Column] != player {
			return false
		}
	}
	return true
}

// CheckWinAt only looks at the four lines through (row, column). A new run
// can only be formed through the disc just placed, so after a move this
// agrees with CheckWin.
func CheckWinAt(board [][]PlayerID, row, column int, player PlayerID) bool {
	if !inBounds(board, row, column) || board[row][column] != player {
		return false
	}
	for _, d := range directions {
		count := 1 +
			CountDiscsInDirection(board, row, column, d[0], d[1], player) +
			CountDiscsInDirection(board, row, column, -d[0], -d[1], player)
		if count >= ToWin {
			return true
		}
	}
	return false
}

// this counts the number of discs in a specific direction, not including the
// starting cell
func CountDiscsInDirection(board [][]PlayerID, row, column, deltaRow, deltaCol int, player PlayerID) int {
	count := 0
	r, c := row+deltaRow, column+deltaCol
	for inBounds(board, r, c) && board[r][c] == player {
		count++
		r += deltaRow
		c += deltaCol
	}
	return count
}
