// Package game implements a match session: it owns the canonical board, sequences the turns,
// validates and applies the players' actions and detects the end of the match.
//
// A Session is not safe for concurrent use: exactly one command is in flight at a time.
package game

import (
	"fmt"

	. "github.com/janpfeifer/quoridorGo/internal/state"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// Phase of the turn state machine.
//
// Commands go through PhaseAwaitingAction -> PhaseActionValidated -> PhaseActionApplied -> PhaseWinCheck,
// and either back to PhaseAwaitingAction (for the other player) or to PhaseGameOver.
// Only PhaseAwaitingAction and PhaseGameOver are observable between commands.
type Phase uint8

const (
	PhaseAwaitingAction Phase = iota
	PhaseActionValidated
	PhaseActionApplied
	PhaseWinCheck
	PhaseGameOver
)

var phaseNames = []string{"AwaitingAction", "ActionValidated", "ActionApplied", "WinCheck", "GameOver"}

func (p Phase) String() string {
	if int(p) >= len(phaseNames) {
		return fmt.Sprintf("Phase(%d)", p)
	}
	return phaseNames[p]
}

// Move is an action taken by a player, as recorded in the History.
type Move struct {
	Player PlayerNum
	Action Action
}

func (m Move) String() string {
	return fmt.Sprintf("%s: %s", m.Player, m.Action)
}

// Session of one match.
type Session struct {
	cfg   Config
	board *Board
	phase Phase

	history      []Move
	winner       PlayerNum
	finishReason string

	// onPhase, if set, is called on every phase transition.
	onPhase func(from, to Phase)
}

// NewSession creates a new match with the given configuration, with the first player to play.
func NewSession(cfg Config) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.WithMessage(err, "invalid game configuration")
	}
	s := &Session{
		cfg:    cfg,
		board:  NewBoard(cfg.Height, cfg.Width, cfg.WallsPerPlayer),
		phase:  PhaseAwaitingAction,
		winner: PlayerInvalid,
	}
	klog.V(1).Infof("New game: %s", cfg)
	return s, nil
}

// NewSessionFromBoard starts a session from an arbitrary position, with board.NextPlayer to play.
// The board is cloned. It fails if a player is already on its goal row.
//
// It is meant for analysis and tests: the position is not checked to be reachable by legal play.
func NewSessionFromBoard(board *Board, maxMoves int) (*Session, error) {
	cfg := Config{
		Height:         board.Height(),
		Width:          board.Width(),
		WallsPerPlayer: len(board.Reserve(PlayerFirst)),
		MaxMoves:       maxMoves,
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.WithMessage(err, "invalid game configuration")
	}
	if winner := board.Winner(); winner != PlayerInvalid {
		return nil, errors.Wrapf(ErrGameIsOver, "%s is already on its goal row", winner)
	}
	return &Session{
		cfg:    cfg,
		board:  board.Clone(),
		phase:  PhaseAwaitingAction,
		winner: PlayerInvalid,
	}, nil
}

// Config used to create the session.
func (s *Session) Config() Config { return s.cfg }

// Phase returns the current phase: either PhaseAwaitingAction or PhaseGameOver.
func (s *Session) Phase() Phase { return s.phase }

// Board returns a snapshot of the current board. Changes to it don't affect the session.
func (s *Session) Board() *Board { return s.board.Clone() }

// Turn returns the player whose action is awaited, or PlayerInvalid if the match is over.
func (s *Session) Turn() PlayerNum {
	if s.phase == PhaseGameOver {
		return PlayerInvalid
	}
	return s.board.NextPlayer
}

// IsFinished returns whether the match is over, by win or draw.
func (s *Session) IsFinished() bool { return s.phase == PhaseGameOver }

// Winner returns the winner, or PlayerInvalid if the match is a draw or not finished yet.
func (s *Session) Winner() PlayerNum { return s.winner }

// IsDraw returns whether the match finished without a winner.
func (s *Session) IsDraw() bool { return s.phase == PhaseGameOver && s.winner == PlayerInvalid }

// FinishReason describes how the match ended. Empty if not finished.
func (s *Session) FinishReason() string { return s.finishReason }

// History of the actions applied so far, in order.
func (s *Session) History() []Move {
	return append([]Move(nil), s.history...)
}

// LegalPawnDestinations of the player's pawn in the current board.
func (s *Session) LegalPawnDestinations(player PlayerNum) []Pos {
	return s.board.LegalPawnDestinations(s.board.PawnPos(player))
}

// LegalWalls the player can place in the current board.
func (s *Session) LegalWalls(player PlayerNum) []Wall {
	return s.board.LegalWalls(player)
}

// ValidActions of the player in the current board, pawn moves first.
func (s *Session) ValidActions(player PlayerNum) []Action {
	return s.board.ValidActions(player)
}

// DistancesTo returns the distance field of the current board to the given goal row.
// It returns an error if goalRow is not a row of the board.
func (s *Session) DistancesTo(goalRow int) (*DistanceMap, error) {
	if goalRow < 0 || goalRow >= s.board.Height() {
		return nil, errors.Errorf("goal row %d is off the %dx%d board", goalRow, s.board.Height(), s.board.Width())
	}
	return s.board.DistancesTo(int8(goalRow)), nil
}

// IsWon returns whether the player's pawn is on its goal row.
func (s *Session) IsWon(player PlayerNum) bool {
	return s.board.IsWon(player)
}

// ApplyPawnMove moves the player's pawn to dest.
// It returns an error wrapping ErrGameIsOver, ErrOutOfTurn or ErrIllegalMove, and in that case
// nothing is changed.
func (s *Session) ApplyPawnMove(player PlayerNum, dest Pos) error {
	return s.Apply(player, MoveAction(dest))
}

// ApplyWall places one of the player's walls.
// It returns an error wrapping ErrGameIsOver, ErrOutOfTurn, ErrNoWallsRemaining, ErrWallConflict or
// ErrWouldBlockAllPaths, and in that case nothing is changed.
func (s *Session) ApplyWall(player PlayerNum, orientation Orientation, anchor Pos) error {
	return s.Apply(player, WallAction(orientation, anchor))
}

// Apply validates and applies any action for the player, and advances the turn.
func (s *Session) Apply(player PlayerNum, action Action) error {
	if s.phase == PhaseGameOver {
		return errors.Wrapf(ErrGameIsOver, "%s can't play %s", player, action)
	}
	if player != s.board.NextPlayer {
		return errors.Wrapf(ErrOutOfTurn, "%s can't play %s, waiting for %s", player, action, s.board.NextPlayer)
	}
	if err := s.board.CheckAction(player, action); err != nil {
		klog.V(2).Infof("Move #%d: %s rejected: %v", s.board.MoveNumber, player, err)
		return err
	}
	s.setPhase(PhaseActionValidated)

	klog.V(1).Infof("Move #%d: %s plays %s", s.board.MoveNumber, player, action)
	s.board = s.board.Act(action)
	s.history = append(s.history, Move{Player: player, Action: action})
	s.setPhase(PhaseActionApplied)
	s.checkEnd(player)
	return nil
}

func (s *Session) setPhase(phase Phase) {
	if klog.V(3).Enabled() {
		klog.Infof("Phase %s -> %s", s.phase, phase)
	}
	if s.onPhase != nil {
		s.onPhase(s.phase, phase)
	}
	s.phase = phase
}

// checkEnd runs PhaseWinCheck: it transitions to PhaseGameOver if the last action by mover
// finished the match, or back to PhaseAwaitingAction otherwise.
func (s *Session) checkEnd(mover PlayerNum) {
	s.setPhase(PhaseWinCheck)
	next := s.board.NextPlayer
	switch {
	case s.board.IsWon(mover):
		s.finish(mover, fmt.Sprintf("%s reached row %d", mover, s.board.GoalRow(mover)))
	case s.cfg.MaxMoves > 0 && len(s.history) >= s.cfg.MaxMoves:
		s.finish(PlayerInvalid, fmt.Sprintf("draw after %d moves", len(s.history)))
	case !s.board.HasValidAction(next):
		s.finish(mover, fmt.Sprintf("%s has no valid action left", next))
	default:
		s.setPhase(PhaseAwaitingAction)
	}
}

func (s *Session) finish(winner PlayerNum, reason string) {
	s.setPhase(PhaseGameOver)
	s.winner = winner
	s.finishReason = reason
	klog.V(1).Infof("Game over after %d moves: %s", len(s.history), reason)
}
