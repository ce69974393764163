package deck

import (
	"slices"
	"testing"
)

func checkIntegrity(t *testing.T, d *Deck) {
	t.Helper()
	drawn := d.Drawn()
	undrawn := d.Undrawn()
	if len(drawn)+d.Remaining() != d.DeckSize {
		t.Fatalf("drawn %d + remaining %d != %d", len(drawn), d.Remaining(), d.DeckSize)
	}
	all := append(drawn, undrawn...)
	slices.Sort(all)
	for i, c := range all {
		if c != i+1 {
			t.Fatalf("deck content corrupted: %v", all)
		}
	}
}

func TestNewDeckBaseOrder(t *testing.T) {
	d := New(52)
	if d.Remaining() != 52 {
		t.Fatalf("expected 52 cards, got %d", d.Remaining())
	}
	for i, c := range d.Undrawn() {
		if c != i+1 {
			t.Fatalf("expected card %d at position %d, got %d", i+1, i, c)
		}
	}
	checkIntegrity(t, d)
}

func TestDrawCard(t *testing.T) {
	d := New(52)
	for i := 1; i <= 52; i++ {
		c, ok := d.DrawCard()
		if !ok {
			t.Fatalf("draw %d failed", i)
		}
		if c != i {
			t.Fatalf("expected %d, got %d", i, c)
		}
		checkIntegrity(t, d)
	}
	if d.Remaining() != 0 {
		t.Fatalf("expected empty deck, got %d", d.Remaining())
	}
	c, ok := d.DrawCard()
	if ok || c != 0 {
		t.Fatalf("draw from empty deck returned %d, %v", c, ok)
	}
	if d.Remaining() != 0 {
		t.Fatalf("remaining changed on empty draw: %d", d.Remaining())
	}
}

func TestShufflePreservesContent(t *testing.T) {
	d := New(52)
	d.Shuffle(NewSeededSource(7))
	if d.Remaining() != 52 {
		t.Fatalf("shuffle changed remaining: %d", d.Remaining())
	}
	checkIntegrity(t, d)
	if slices.Equal(d.Undrawn(), New(52).Undrawn()) {
		t.Fatal("shuffle left the deck in base order")
	}
}

func TestShuffleDeterministicPerSeed(t *testing.T) {
	a := New(52)
	b := New(52)
	a.Shuffle(NewSeededSource(42))
	b.Shuffle(NewSeededSource(42))
	if !slices.Equal(a.Undrawn(), b.Undrawn()) {
		t.Fatalf("same seed, different order:\n%v\n%v", a.Undrawn(), b.Undrawn())
	}
	c := New(52)
	c.Shuffle(NewSeededSource(43))
	if slices.Equal(a.Undrawn(), c.Undrawn()) {
		t.Fatal("different seeds gave the same order")
	}
}

func TestShuffleKeepsDrawnCards(t *testing.T) {
	d := New(52)
	for range 10 {
		d.DrawCard()
	}
	before := d.Drawn()
	d.Shuffle(NewSeededSource(1))
	if !slices.Equal(before, d.Drawn()) {
		t.Fatalf("shuffle touched drawn cards: %v -> %v", before, d.Drawn())
	}
	if d.Remaining() != 42 {
		t.Fatalf("expected 42 remaining, got %d", d.Remaining())
	}
	checkIntegrity(t, d)
}

func TestResetAfterDraws(t *testing.T) {
	d := New(52)
	d.Shuffle(NewSeededSource(3))
	for range 20 {
		d.DrawCard()
	}
	d.Reset()
	if d.Remaining() != 52 || len(d.Drawn()) != 0 {
		t.Fatalf("reset left %d remaining, %d drawn", d.Remaining(), len(d.Drawn()))
	}
	if !slices.Equal(d.Undrawn(), New(52).Undrawn()) {
		t.Fatal("reset did not restore base order")
	}
}

func TestCryptoSourceRange(t *testing.T) {
	src := NewCryptoSource()
	for _, n := range []int{1, 2, 13, 52} {
		for range 100 {
			v := src.Intn(n)
			if v < 0 || v >= n {
				t.Fatalf("Intn(%d) returned %d", n, v)
			}
		}
	}
	d := New(52)
	d.Shuffle(src)
	checkIntegrity(t, d)
}
