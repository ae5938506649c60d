package domain

// NewBoard returns rows x columns empty cells. board[0] is the top row.
func NewBoard(rows, columns int) [][]PlayerID {
	board := make([][]PlayerID, rows)
	for i := range board {
		board[i] = make([]PlayerID, columns)
	}
	return board
}

func boardSize(board [][]PlayerID) (int, int) {
	if len(board) == 0 {
		return 0, 0
	}
	return len(board), len(board[0])
}

func inBounds(board [][]PlayerID, row, column int) bool {
	rows, columns := boardSize(board)
	return row >= 0 && row < rows && column >= 0 && column < columns
}

// DropTarget finds the row a disc dropped into column would land in.
// ok is false when the column is full or does not exist.
func DropTarget(board [][]PlayerID, column int) (int, bool) {
	rows, columns := boardSize(board)
	if column < 0 || column >= columns {
		return -1, false
	}

	// scan from the bottom row up to the first free cell
	for row := rows - 1; row >= 0; row-- {
		if board[row][column] == Empty {
			return row, true
		}
	}

	return -1, false
}

func DropDisc(board [][]PlayerID, column int, player PlayerID) (int, error) {
	_, columns := boardSize(board)
	if column < 0 || column >= columns {
		return -1, ErrInvalidColumn
	}

	row, ok := DropTarget(board, column)
	if !ok {
		return -1, ErrColumnFull
	}
	board[row][column] = player
	return row, nil
}

// IsBoardFull reports whether every cell is occupied. Gravity keeps the top
// row the last to fill in each column, so checking it is enough.
func IsBoardFull(board [][]PlayerID) bool {
	if len(board) == 0 {
		return true
	}
	for _, cell := range board[0] {
		if cell == Empty {
			return false
		}
	}

	return true
}

// this creates a deep copy of the board
func CopyBoard(board [][]PlayerID) [][]PlayerID {
	newBoard := make([][]PlayerID, len(board))
	for i := range board {
		newBoard[i] = make([]PlayerID, len(board[i]))
		copy(newBoard[i], board[i])
	}
	return newBoard
}

func CountDiscs(board [][]PlayerID) int {
	count := 0
	for _, row := range board {
		for _, cell := range row {
			if cell != Empty {
				count++
			}
		}
	}
	return count
}

// ValidColumns lists the columns that can still take a disc.
func ValidColumns(board [][]PlayerID) []int {
	_, columns := boardSize(board)
	valid := []int{}
	for col := 0; col < columns; col++ {
		if board[0][col] == Empty {
			valid = append(valid, col)
		}
	}
	return valid
}

// BoardToInts flattens the board for JSON clients.
func BoardToInts(board [][]PlayerID) [][]int {
	intBoard := make([][]int, len(board))
	for i := range board {
		intBoard[i] = make([]int, len(board[i]))
		for j := range board[i] {
			intBoard[i][j] = int(board[i][j])
		}
	}
	return intBoard
}
