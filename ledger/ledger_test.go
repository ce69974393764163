package ledger

import (
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/luca-patrignani/snap/domain/deck"
	"github.com/luca-patrignani/snap/domain/snap"
)

func fixedClock() func() time.Time {
	t0 := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	n := 0
	return func() time.Time {
		n++
		return t0.Add(time.Duration(n) * time.Second)
	}
}

func playRound(t *testing.T, g *snap.Game, player int) snap.HitResult {
	t.Helper()
	g.Start()
	g.FlipNextCard()
	return g.PlayerHit(player)
}

// TestNewLedgerGenesis verifies that a new ledger holds only a valid genesis block.
func TestNewLedgerGenesis(t *testing.T) {
	l := newLedger(fixedClock())
	if l.Len() != 0 {
		t.Fatalf("expected no rounds, got %d", l.Len())
	}
	genesis := l.GetLatest()
	if genesis.Index != 0 {
		t.Fatalf("genesis index should be 0, got %d", genesis.Index)
	}
	if genesis.PrevHash != "0" {
		t.Fatalf("genesis PrevHash should be '0', got %s", genesis.PrevHash)
	}
	if genesis.Round.Outcome != "genesis" {
		t.Fatalf("genesis outcome should be 'genesis', got %s", genesis.Round.Outcome)
	}
	if genesis.Hash == "" {
		t.Fatal("genesis block should have a hash")
	}
	if err := l.Verify(); err != nil {
		t.Fatalf("fresh ledger should verify: %v", err)
	}
}

func TestRecordRounds(t *testing.T) {
	g, err := snap.NewGame(
		snap.WithSource(deck.NewSeededSource(5)),
		snap.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	)
	if err != nil {
		t.Fatal(err)
	}
	l := newLedger(fixedClock())

	for i := 0; i < 4; i++ {
		res := playRound(t, g, i%2)
		b, err := l.Record(res, g.Scores())
		if err != nil {
			t.Fatalf("round %d: %v", i, err)
		}
		if b.Index != i+1 {
			t.Fatalf("expected index %d, got %d", i+1, b.Index)
		}
		if b.Round.Outcome != string(res.Outcome) || b.Round.Player != i%2 {
			t.Fatalf("round %d recorded as %+v", i, b.Round)
		}
		if b.Round.Newer == "" || b.Round.Older == "" {
			t.Fatalf("round %d should record both window cards: %+v", i, b.Round)
		}
		if b.Round.Score0 != g.Score(0) || b.Round.Score1 != g.Score(1) {
			t.Fatalf("round %d scores %d/%d, game has %d/%d", i, b.Round.Score0, b.Round.Score1, g.Score(0), g.Score(1))
		}
	}

	if l.Len() != 4 {
		t.Fatalf("expected 4 rounds, got %d", l.Len())
	}
	if err := l.Verify(); err != nil {
		t.Fatalf("ledger should verify: %v", err)
	}

	last := l.Rounds(2)
	if len(last) != 2 || last[0].Index != 4 || last[1].Index != 3 {
		t.Fatalf("expected rounds 4 and 3, got %+v", last)
	}
	if all := l.Rounds(0); len(all) != 4 {
		t.Fatalf("expected all 4 rounds, got %d", len(all))
	}
}

func TestRecordIgnoredHit(t *testing.T) {
	l := NewLedger()
	_, err := l.Record(snap.HitResult{Player: 7, Outcome: snap.OutcomeIgnored}, snap.Scores{})
	if !errors.Is(err, ErrIgnoredHit) {
		t.Fatalf("expected ErrIgnoredHit, got %v", err)
	}
	if l.Len() != 0 {
		t.Fatal("ignored hit should not be recorded")
	}
}

func TestVerifyDetectsTampering(t *testing.T) {
	tests := []struct {
		name   string
		tamper func(l *Ledger)
	}{
		{"round changed", func(l *Ledger) { l.blocks[2].Round.Score0 = 99 }},
		{"hash replaced", func(l *Ledger) { l.blocks[1].Hash = "deadbeef" }},
		{"index gap", func(l *Ledger) { l.blocks[3].Index = 7 }},
		{"genesis changed", func(l *Ledger) { l.blocks[0].Round.Outcome = "snap" }},
		{"block removed", func(l *Ledger) { l.blocks = append(l.blocks[:1], l.blocks[2:]...) }},
	}
	for _, tt := range tests {
		l := newLedger(fixedClock())
		for i := 0; i < 3; i++ {
			if _, err := l.Append(Round{Player: i % 2, Outcome: "miss", Score0: -i}); err != nil {
				t.Fatal(err)
			}
		}
		if err := l.Verify(); err != nil {
			t.Fatalf("%s: untouched ledger should verify: %v", tt.name, err)
		}
		tt.tamper(l)
		if err := l.Verify(); err == nil {
			t.Errorf("%s: tampering not detected", tt.name)
		}
	}
}
