package snap

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/luca-patrignani/snap/domain/deck"
)

// DefaultFlipTime is the delay between two automatic flips.
const DefaultFlipTime = time.Second

// ErrInvalidFlipTime is returned when a flip time is zero or negative.
var ErrInvalidFlipTime = errors.New("flip time must be positive")

// Game is the Snap round state machine. It is not safe for concurrent use:
// the driving loop owns it and calls into it once per frame.
type Game struct {
	deck     SnapDeck
	source   deck.Source
	window   Window
	scores   Scores
	started  bool
	flipTime time.Duration
	elapsed  time.Duration
	flips    int // cards moved onto the window since Start
	logger   *slog.Logger
}

// Option configures a Game at construction.
type Option func(*Game) error

// WithSource sets the randomness used to shuffle the deck on every Start.
func WithSource(src deck.Source) Option {
	return func(g *Game) error {
		if src == nil {
			return errors.New("nil random source")
		}
		g.source = src
		return nil
	}
}

// WithFlipTime sets the delay between automatic flips.
func WithFlipTime(d time.Duration) Option {
	return func(g *Game) error {
		return g.SetFlipTime(d)
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(g *Game) error {
		if logger != nil {
			g.logger = logger
		}
		return nil
	}
}

// NewGame creates an idle game with a full, unshuffled deck and an empty
// window. Without WithSource the deck is shuffled from a cryptographic source.
func NewGame(opts ...Option) (*Game, error) {
	g := &Game{
		deck:     NewSnapDeck(),
		flipTime: DefaultFlipTime,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		if err := opt(g); err != nil {
			return nil, fmt.Errorf("new game: %w", err)
		}
	}
	if g.source == nil {
		g.source = deck.NewCryptoSource()
	}
	return g, nil
}

// Start begins a new round: the deck is rebuilt and shuffled, the window is
// cleared and the first card is flipped. It does nothing if a round is
// already running.
func (g *Game) Start() {
	if g.started {
		return
	}
	g.deck.Reset()
	g.deck.Shuffle(g.source)
	g.window = Window{}
	g.flips = 0
	g.flip()
	g.elapsed = 0
	g.started = true
	g.logger.Debug("round started", "top", g.window.Newer.String(), "remaining", g.deck.Remaining())
}

// FlipNextCard moves the newest card to the older slot and flips the next
// card of the deck onto the newer slot. It does nothing when no round is
// running or the deck is exhausted; in both cases the window keeps its
// last cards.
func (g *Game) FlipNextCard() {
	if !g.started {
		return
	}
	g.flip()
}

func (g *Game) flip() bool {
	c, ok := g.deck.Draw()
	if !ok {
		g.logger.Debug("deck exhausted, window frozen")
		return false
	}
	c.turnOver()
	g.window.push(c)
	g.flips++
	g.logger.Debug("card flipped", "card", c.String(), "remaining", g.deck.Remaining())
	return true
}

// Update advances the auto-flip timer by the time elapsed since the previous
// call. Once the accumulated time reaches the flip time, one card is flipped
// and the timer restarts from zero.
func (g *Game) Update(elapsed time.Duration) {
	if !g.started || elapsed <= 0 {
		return
	}
	g.elapsed += elapsed
	if g.elapsed >= g.flipTime {
		g.flip()
		g.elapsed = 0
	}
}

// PlayerHit records a player's claim that the two window cards share rank.
// A correct claim during a round scores +1, any other hit -1. Every hit by a
// seated player ends the round. Hits from unknown seats are ignored.
func (g *Game) PlayerHit(player int) HitResult {
	if player < 0 || player >= Players {
		return HitResult{Player: player, Outcome: OutcomeIgnored}
	}

	res := HitResult{
		Player: player,
		Window: g.window,
		Active: g.started,
	}
	if g.started && g.window.IsSnap() {
		res.Outcome = OutcomeSnap
		res.Score = g.scores.add(player, 1)
	} else {
		res.Outcome = OutcomeMiss
		res.Score = g.scores.add(player, -1)
	}
	g.started = false

	g.logger.Debug("player hit", "player", player, "outcome", string(res.Outcome), "score", res.Score)
	return res
}

// TopCard returns the newest card of the window.
func (g *Game) TopCard() (Card, bool) {
	if g.window.Newer == nil {
		return Card{}, false
	}
	return *g.window.Newer, true
}

// Window returns the current flip window.
func (g *Game) Window() Window {
	return g.window
}

// CardsRemain reports whether the deck still has cards to flip.
func (g *Game) CardsRemain() bool {
	return g.deck.Remaining() > 0
}

// Remaining returns how many cards are left in the deck.
func (g *Game) Remaining() int {
	return g.deck.Remaining()
}

// Flips returns how many cards went through the window this round.
func (g *Game) Flips() int {
	return g.flips
}

// Score returns the score of a player, or 0 for an unknown seat.
func (g *Game) Score(player int) int {
	s, _ := g.scores.Get(player)
	return s
}

func (g *Game) Scores() Scores {
	return g.scores
}

func (g *Game) IsStarted() bool {
	return g.started
}

func (g *Game) State() State {
	if g.started {
		return StateActive
	}
	return StateIdle
}

// FlipTime returns the delay between automatic flips.
func (g *Game) FlipTime() time.Duration {
	return g.flipTime
}

// SetFlipTime changes the delay between automatic flips. The new value
// applies from the next Update on; time already accumulated is kept.
func (g *Game) SetFlipTime(d time.Duration) error {
	if d <= 0 {
		return fmt.Errorf("%w: got %s", ErrInvalidFlipTime, d)
	}
	g.flipTime = d
	return nil
}
