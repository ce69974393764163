package deck

// Deck is an ordered pile of card numbers 1..DeckSize. Cards before
// lastDrawnCard have been dispensed, the rest are still face down.
type Deck struct {
	DeckSize      int
	cards         []int
	lastDrawnCard int
}

// New creates a deck of the given size in base order.
func New(size int) *Deck {
	d := &Deck{DeckSize: size}
	d.Reset()
	return d
}

// Reset puts every card back in base order (1, 2, ..., DeckSize) and
// forgets all draws.
func (d *Deck) Reset() {
	if cap(d.cards) < d.DeckSize {
		d.cards = make([]int, d.DeckSize)
	}
	d.cards = d.cards[:d.DeckSize]
	for i := range d.cards {
		d.cards[i] = i + 1
	}
	d.lastDrawnCard = 0
}

// Shuffle permutes the cards that have not been drawn yet using the
// Fisher-Yates algorithm. Drawn cards stay where they are, so Remaining
// is unchanged and no dispensed card can come back.
func (d *Deck) Shuffle(src Source) {
	undrawn := d.cards[d.lastDrawnCard:]
	for i := len(undrawn) - 1; i > 0; i-- {
		j := src.Intn(i + 1)
		undrawn[i], undrawn[j] = undrawn[j], undrawn[i]
	}
}

// DrawCard returns the next undrawn card. It returns false once the deck
// is exhausted; an empty deck is a normal end state, not an error.
func (d *Deck) DrawCard() (int, bool) {
	if d.lastDrawnCard >= len(d.cards) {
		return 0, false
	}
	c := d.cards[d.lastDrawnCard]
	d.lastDrawnCard++
	return c, true
}

// Remaining returns how many cards are left to draw.
func (d *Deck) Remaining() int {
	return len(d.cards) - d.lastDrawnCard
}

// Drawn returns a copy of the cards dispensed so far, oldest first.
func (d *Deck) Drawn() []int {
	out := make([]int, d.lastDrawnCard)
	copy(out, d.cards[:d.lastDrawnCard])
	return out
}

// Undrawn returns a copy of the cards still in the deck, top first.
func (d *Deck) Undrawn() []int {
	out := make([]int, d.Remaining())
	copy(out, d.cards[d.lastDrawnCard:])
	return out
}
