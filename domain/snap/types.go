package snap

// Players is the number of seats at a Snap table.
const Players = 2

// State is the lifecycle stage of a round.
type State string

const (
	// StateIdle is the state before Start and after any hit.
	StateIdle State = "idle"
	// StateActive is the state in which cards are flipped and hits are scored.
	StateActive State = "active"
)

// Window holds the two most recently flipped cards. Older is only set when
// Newer is set too.
type Window struct {
	Older *Card
	Newer *Card
}

// Len returns the number of cards in the window.
func (w Window) Len() int {
	switch {
	case w.Newer == nil:
		return 0
	case w.Older == nil:
		return 1
	default:
		return 2
	}
}

// IsSnap reports whether both slots are filled with cards of equal rank.
func (w Window) IsSnap() bool {
	return w.Len() == 2 && w.Older.SameRank(*w.Newer)
}

func (w *Window) push(c Card) {
	w.Older = w.Newer
	w.Newer = &c
}

// Scores holds the running score of both players. Scores may go negative.
type Scores struct {
	Player0 int
	Player1 int
}

// Get returns the score of the given player, or false for an unknown seat.
func (s Scores) Get(player int) (int, bool) {
	switch player {
	case 0:
		return s.Player0, true
	case 1:
		return s.Player1, true
	default:
		return 0, false
	}
}

func (s *Scores) add(player int, delta int) int {
	switch player {
	case 0:
		s.Player0 += delta
		return s.Player0
	case 1:
		s.Player1 += delta
		return s.Player1
	}
	return 0
}

// Outcome describes how a hit was judged.
type Outcome string

const (
	// OutcomeIgnored: the player index was not a seat, nothing changed.
	OutcomeIgnored Outcome = "ignored"
	// OutcomeSnap: the window showed two cards of equal rank during an active round.
	OutcomeSnap Outcome = "snap"
	// OutcomeMiss: anything else, including hits outside a round.
	OutcomeMiss Outcome = "miss"
)

// HitResult is what PlayerHit reports back to the driver.
type HitResult struct {
	Player  int
	Outcome Outcome
	// Score is the player's score after the hit.
	Score int
	// Window is the flip window at the moment of the hit.
	Window Window
	// Active is true when the hit ended a running round.
	Active bool
}
