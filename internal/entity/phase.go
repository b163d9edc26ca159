package entity

// Phase is the play state of a game.
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseOver          // Lost
	PhaseWon
)

func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseOver:
		return "game_over"
	case PhaseWon:
		return "won"
	default:
		return "unknown"
	}
}

// Terminal reports whether gameplay updates have stopped.
func (p Phase) Terminal() bool {
	return p != PhasePlaying
}

// Latch is the one-way Playing -> terminal transition. Once tripped it stays
// put until Reset, which is only called by an explicit restart.
type Latch struct {
	phase Phase
}

// Trip moves a playing latch to the terminal phase p.
// It returns false if the latch was already terminal or p is not terminal.
func (l *Latch) Trip(p Phase) bool {
	if l.phase.Terminal() || !p.Terminal() {
		return false
	}
	l.phase = p
	return true
}

// Phase returns the current phase.
func (l Latch) Phase() Phase {
	return l.phase
}

// Over reports whether the latch has tripped.
func (l Latch) Over() bool {
	return l.phase.Terminal()
}

// Won reports whether the latch tripped on a win.
func (l Latch) Won() bool {
	return l.phase == PhaseWon
}

// Reset returns to Playing.
func (l *Latch) Reset() {
	l.phase = PhasePlaying
}
