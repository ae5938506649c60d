package game

import (
	"fmt"
	"log"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/mrasdfdela/springboard-12-02-connect-four-oo/internal/domain"
)

const ErrGameNotFound domain.Error = "game not found"

// GameSession is one live hot-seat game. The mutex serializes moves coming
// from HTTP and WebSocket clients.
type GameSession struct {
	GameID       string
	Game         *domain.Game
	CreatedAt    time.Time
	LastActivity time.Time
	FinishedAt   time.Time
	mu           sync.Mutex
}

// Notifier is told about every accepted move so watchers can redraw.
type Notifier interface {
	Broadcast(gameID string, message domain.ServerMessage)
}

// SessionManager manages active game sessions
type SessionManager struct {
	sessions map[string]*GameSession // gameID → GameSession
	mu       sync.RWMutex
	now      func() time.Time
}

func NewSessionManager() *SessionManager {
	return &SessionManager{
		sessions: make(map[string]*GameSession),
		now:      time.Now,
	}
}

func (sm *SessionManager) CreateSession(rows, columns int, player1, player2 domain.Player) (*GameSession, error) {
	g, err := domain.NewGame(rows, columns, player1, player2)
	if err != nil {
		return nil, err
	}

	now := sm.now()
	session := &GameSession{
		GameID:       uuid.NewString(),
		Game:         g,
		CreatedAt:    now,
		LastActivity: now,
	}

	sm.mu.Lock()
	sm.sessions[session.GameID] = session
	sm.mu.Unlock()

	log.Printf("[SESSION] Created session %s: %s (%s) vs %s (%s) on %dx%d",
		session.GameID, player1.Name, player1.Color, player2.Name, player2.Color, rows, columns)
	return session, nil
}

func (sm *SessionManager) GetSession(gameID string) (*GameSession, error) {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	session, exists := sm.sessions[gameID]
	if !exists {
		return nil, ErrGameNotFound
	}
	return session, nil
}

func (sm *SessionManager) RemoveSession(gameID string) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if _, exists := sm.sessions[gameID]; !exists {
		return ErrGameNotFound
	}
	delete(sm.sessions, gameID)
	log.Printf("[SESSION] Removing session %s", gameID)
	return nil
}

// ListSessions returns snapshots of every session, oldest first.
func (sm *SessionManager) ListSessions() []domain.Snapshot {
	sm.mu.RLock()
	sessions := make([]*GameSession, 0, len(sm.sessions))
	for _, s := range sm.sessions {
		sessions = append(sessions, s)
	}
	sm.mu.RUnlock()

	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].CreatedAt.Before(sessions[j].CreatedAt)
	})

	snapshots := make([]domain.Snapshot, 0, len(sessions))
	for _, s := range sessions {
		snapshots = append(snapshots, s.Snapshot())
	}
	return snapshots
}

func (sm *SessionManager) Count() int {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return len(sm.sessions)
}

// CleanupSessions drops sessions that finished more than finishedAfter ago
// or saw no move for idleAfter. Returns the IDs of the removed games.
func (sm *SessionManager) CleanupSessions(idleAfter, finishedAfter time.Duration) []string {
	now := sm.now()

	sm.mu.Lock()
	defer sm.mu.Unlock()

	var removed []string
	for gameID, s := range sm.sessions {
		s.mu.Lock()
		finished := s.Game.IsFinished()
		stale := (finished && now.Sub(s.FinishedAt) > finishedAfter) ||
			(!finished && now.Sub(s.LastActivity) > idleAfter)
		s.mu.Unlock()

		if stale {
			delete(sm.sessions, gameID)
			removed = append(removed, gameID)
			log.Printf("[SESSION] Evicted session %s (finished=%v)", gameID, finished)
		}
	}
	return removed
}

// SubmitMove applies a move for whoever's turn it is and tells notifier
// about it. notifier may be nil.
func (sm *SessionManager) SubmitMove(gameID string, column int, notifier Notifier) (domain.MoveResult, domain.Snapshot, error) {
	session, err := sm.GetSession(gameID)
	if err != nil {
		return domain.MoveResult{}, domain.Snapshot{}, err
	}
	return session.SubmitMove(column, sm.now(), notifier)
}

func (gs *GameSession) SubmitMove(column int, at time.Time, notifier Notifier) (domain.MoveResult, domain.Snapshot, error) {
	gs.mu.Lock()
	result, err := gs.Game.SubmitMove(column)
	if err != nil {
		snapshot := domain.NewSnapshot(gs.GameID, gs.Game)
		gs.mu.Unlock()
		log.Printf("[GAME] Rejected move in %s, column %d: %v", gs.GameID, column, err)
		return domain.MoveResult{}, snapshot, fmt.Errorf("game %s: %w", gs.GameID, err)
	}

	gs.LastActivity = at
	if result.Outcome != domain.OutcomeContinue {
		gs.FinishedAt = at
	}
	snapshot := domain.NewSnapshot(gs.GameID, gs.Game)
	gs.mu.Unlock()

	switch result.Outcome {
	case domain.OutcomeWin:
		log.Printf("[GAME] %s: %s won after %d moves", gs.GameID, snapshot.Winner.Name, snapshot.MoveCount)
	case domain.OutcomeDraw:
		log.Printf("[GAME] %s: draw after %d moves", gs.GameID, snapshot.MoveCount)
	}

	if notifier != nil {
		notifier.Broadcast(gs.GameID, domain.ServerMessage{
			Type:   "move_made",
			GameID: gs.GameID,
			Result: &result,
			Game:   &snapshot,
		})
		if result.Outcome != domain.OutcomeContinue {
			notifier.Broadcast(gs.GameID, domain.ServerMessage{
				Type:    "game_over",
				GameID:  gs.GameID,
				Message: GameOverMessage(snapshot),
				Game:    &snapshot,
			})
		}
	}

	return result, snapshot, nil
}

func (gs *GameSession) Snapshot() domain.Snapshot {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	return domain.NewSnapshot(gs.GameID, gs.Game)
}

// GameOverMessage is the end-of-game announcement shown to players.
func GameOverMessage(s domain.Snapshot) string {
	switch s.Status {
	case domain.StatusWon:
		return fmt.Sprintf("Player %s won!", s.Winner.Name)
	case domain.StatusDraw:
		return "Tie!"
	}
	return ""
}
