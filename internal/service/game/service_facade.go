package game

import (
	"fmt"

	"github.com/mrasdfdela/springboard-12-02-connect-four-oo/internal/config"
	"github.com/mrasdfdela/springboard-12-02-connect-four-oo/internal/domain"
)

// Service is the entry point for game logic (facade). It fills in configured
// defaults before handing off to the SessionManager.
type Service struct {
	Sessions *SessionManager
	cfg      *config.Config
}

func NewService(sessions *SessionManager, cfg *config.Config) *Service {
	return &Service{
		Sessions: sessions,
		cfg:      cfg,
	}
}

type NewGameRequest struct {
	Rows    int                 `json:"rows"`
	Columns int                 `json:"columns"`
	Player1 *domain.PlayerInput `json:"player1"`
	Player2 *domain.PlayerInput `json:"player2"`
}

func (s *Service) StartGame(req NewGameRequest) (*GameSession, error) {
	rows, columns := req.Rows, req.Columns
	if rows == 0 {
		rows = s.cfg.BoardRows
	}
	if columns == 0 {
		columns = s.cfg.BoardColumns
	}

	maxRows, maxColumns := s.cfg.MaxBoardRows, s.cfg.MaxBoardColumns
	if maxRows <= 0 {
		maxRows = config.DefaultMaxBoardSize
	}
	if maxColumns <= 0 {
		maxColumns = config.DefaultMaxBoardSize
	}
	if rows > maxRows || columns > maxColumns {
		return nil, fmt.Errorf("%w: board may be at most %dx%d, got %dx%d",
			domain.ErrInvalidDimensions, maxRows, maxColumns, rows, columns)
	}

	player1 := playerFrom(domain.Player1, req.Player1, s.cfg.Player1)
	player2 := playerFrom(domain.Player2, req.Player2, s.cfg.Player2)

	return s.Sessions.CreateSession(rows, columns, player1, player2)
}

func playerFrom(id domain.PlayerID, in *domain.PlayerInput, fallback config.PlayerConfig) domain.Player {
	name, color := fallback.Name, fallback.Color
	if in != nil {
		if in.Name != "" {
			name = in.Name
		}
		if in.Color != "" {
			color = in.Color
		}
	}
	return domain.NewPlayer(id, name, color)
}
