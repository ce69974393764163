package main

import (
	"log/slog"
	"time"

	"atomicgo.dev/keyboard/keys"

	"github.com/luca-patrignani/snap/domain/snap"
	"github.com/luca-patrignani/snap/ledger"
)

type action int

const (
	actionNone action = iota
	actionStart
	actionHitPlayer1
	actionHitPlayer2
	actionQuit
)

// actionForKey maps the table's key binding: space starts a round, p and q
// are the two players' snap keys, esc and ctrl+c leave the table.
func actionForKey(key keys.Key) action {
	switch key.Code {
	case keys.Space:
		return actionStart
	case keys.Escape, keys.CtrlC:
		return actionQuit
	case keys.RuneKey:
		if len(key.Runes) != 1 {
			return actionNone
		}
		switch key.Runes[0] {
		case ' ':
			return actionStart
		case 'p', 'P':
			return actionHitPlayer1
		case 'q', 'Q':
			return actionHitPlayer2
		}
	}
	return actionNone
}

// table ties the game to its round history. It is owned by the frame loop
// goroutine only.
type table struct {
	game    *snap.Game
	ledger  *ledger.Ledger
	logger  *slog.Logger
	logs    *logTail
	lastHit *snap.HitResult
	history int
}

func newTable(game *snap.Game, l *ledger.Ledger, logger *slog.Logger, logs *logTail, history int) *table {
	return &table{
		game:    game,
		ledger:  l,
		logger:  logger,
		logs:    logs,
		history: history,
	}
}

// handle applies one input action and reports whether the table should close.
func (t *table) handle(a action) bool {
	switch a {
	case actionStart:
		if !t.game.IsStarted() {
			t.lastHit = nil
		}
		t.game.Start()
	case actionHitPlayer1:
		t.hit(0)
	case actionHitPlayer2:
		t.hit(1)
	case actionQuit:
		return true
	}
	return false
}

func (t *table) hit(player int) {
	res := t.game.PlayerHit(player)
	t.lastHit = &res
	if _, err := t.ledger.Record(res, t.game.Scores()); err != nil {
		t.logger.Error("failed to record round", "error", err)
		return
	}
	t.logger.Debug("round recorded", "player", player+1, "outcome", string(res.Outcome))
}

// tick advances the game by the time elapsed since the previous frame.
func (t *table) tick(elapsed time.Duration) {
	t.game.Update(elapsed)
}
