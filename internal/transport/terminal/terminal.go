// Package terminal is a hot-seat text client: both players share one
// keyboard and take turns typing column numbers.
package terminal

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mrasdfdela/springboard-12-02-connect-four-oo/internal/domain"
)

var symbols = map[domain.PlayerID]string{
	domain.Empty:   ".",
	domain.Player1: "X",
	domain.Player2: "O",
}

// Render draws the grid with 1-based column labels under it.
func Render(w io.Writer, board [][]domain.PlayerID) {
	for _, row := range board {
		cells := make([]string, len(row))
		for i, cell := range row {
			cells[i] = symbols[cell]
		}
		fmt.Fprintln(w, strings.Join(cells, " "))
	}
	if len(board) == 0 {
		return
	}
	labels := make([]string, len(board[0]))
	for i := range labels {
		labels[i] = strconv.Itoa((i + 1) % 10)
	}
	fmt.Fprintln(w, strings.Join(labels, " "))
}

// Play runs g to completion reading one column per line from in. Bad input
// and full columns re-prompt the same player.
func Play(ctx context.Context, in io.Reader, out io.Writer, g *domain.Game) error {
	scanner := bufio.NewScanner(in)

	for !g.IsFinished() {
		if err := ctx.Err(); err != nil {
			return err
		}

		Render(out, g.Board())
		player := g.CurrentPlayer()
		fmt.Fprintf(out, "%s (%s %s), choose a column [1-%d]: ",
			player.Name, symbols[player.ID], player.Color, g.Columns())

		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("reading input: %w", err)
			}
			return fmt.Errorf("input ended before the game finished: %w", io.ErrUnexpectedEOF)
		}

		column, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
		if err != nil {
			fmt.Fprintln(out, "Please enter a column number.")
			continue
		}

		if _, err := g.SubmitMove(column - 1); err != nil {
			switch {
			case errors.Is(err, domain.ErrColumnFull):
				fmt.Fprintln(out, "That column is full, pick another one.")
			case errors.Is(err, domain.ErrInvalidColumn):
				fmt.Fprintf(out, "Columns go from 1 to %d.\n", g.Columns())
			default:
				return err
			}
		}
	}

	Render(out, g.Board())
	if winner, ok := g.Winner(); ok {
		fmt.Fprintf(out, "Player %s won!\n", winner.Name)
	} else {
		fmt.Fprintln(out, "Tie!")
	}
	return nil
}
