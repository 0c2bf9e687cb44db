package core

// Mode is the single active game mode. GameOver and Victory are terminal:
// they can only be entered from Playing and only left by a restart.
type Mode int

const (
	ModePlaying Mode = iota
	ModeGameOver
	ModeVictory
)

// String returns a human-readable name for the mode.
func (m Mode) String() string {
	switch m {
	case ModePlaying:
		return "playing"
	case ModeGameOver:
		return "game over"
	case ModeVictory:
		return "victory"
	default:
		return "unknown"
	}
}

// Terminal reports whether the mode ends the session.
func (m Mode) Terminal() bool {
	return m == ModeGameOver || m == ModeVictory
}

// Session holds the counters shared by every game: score, lives and stage,
// plus the current mode. All counters stay non-negative.
type Session struct {
	score int
	lives int
	stage int
	mode  Mode
}

// NewSession starts a session in Playing mode at stage 1.
func NewSession(lives int) Session {
	return Session{lives: Max(0, lives), stage: 1, mode: ModePlaying}
}

// Score returns the current score.
func (s Session) Score() int { return s.score }

// Lives returns the remaining lives.
func (s Session) Lives() int { return s.lives }

// Stage returns the current stage, starting at 1.
func (s Session) Stage() int { return s.stage }

// Mode returns the active mode.
func (s Session) Mode() Mode { return s.mode }

// Playing reports whether the session is still in progress.
func (s Session) Playing() bool { return s.mode == ModePlaying }

// AddScore increases the score. Non-positive amounts are ignored.
func (s *Session) AddScore(n int) {
	if n > 0 {
		s.score += n
	}
}

// LoseLife removes one life if any remain and returns the lives left.
func (s *Session) LoseLife() int {
	if s.lives > 0 {
		s.lives--
	}
	return s.lives
}

// AdvanceStage moves to the next stage.
func (s *Session) AdvanceStage() {
	s.stage++
}

// Lose switches to GameOver. It only has an effect while playing.
func (s *Session) Lose() bool {
	if s.mode != ModePlaying {
		return false
	}
	s.mode = ModeGameOver
	return true
}

// Win switches to Victory. It only has an effect while playing.
func (s *Session) Win() bool {
	if s.mode != ModePlaying {
		return false
	}
	s.mode = ModeVictory
	return true
}

// Restart clears the counters and returns to Playing at stage 1.
func (s *Session) Restart(lives int) {
	*s = NewSession(lives)
}

// State returns a snapshot of the counters for the platform.
func (s Session) State(paused bool) GameState {
	return GameState{
		Score:  s.score,
		Lives:  s.lives,
		Stage:  s.stage,
		Mode:   s.mode,
		Paused: paused,
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score  int  // Current score
	Lives  int  // Remaining lives (zero for games without lives)
	Stage  int  // Current stage (1-based)
	Mode   Mode // Playing, GameOver or Victory
	Paused bool // Whether the game is paused
}

// Over reports whether the game reached a terminal mode.
func (s GameState) Over() bool {
	return s.Mode.Terminal()
}

// EventKind identifies something notable that happened during a tick.
type EventKind int

const (
	EventStomp      EventKind = iota // Player landed on an enemy
	EventHit                         // Player was hit from the side
	EventStageClear                  // Player reached the exit
	EventSlice                       // One or more entities were sliced
	EventGameOver                    // Session ended in defeat
	EventVictory                     // Session ended in victory
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventStomp:
		return "stomp"
	case EventHit:
		return "hit"
	case EventStageClear:
		return "stage_clear"
	case EventSlice:
		return "slice"
	case EventGameOver:
		return "game_over"
	case EventVictory:
		return "victory"
	default:
		return "unknown"
	}
}

// Event is emitted by Step. Count carries how many entities were involved
// (for example fruit sliced by one gesture).
type Event struct {
	Kind  EventKind
	Count int
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}

// Has reports whether an event of the given kind occurred this tick.
func (r StepResult) Has(kind EventKind) bool {
	for _, e := range r.Events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}
