package snap

import "github.com/luca-patrignani/snap/domain/deck"

// DeckSize is the size of a standard pack.
const DeckSize = 52

// SnapDeck wraps a generic numbered deck and hands out Cards.
type SnapDeck struct {
	*deck.Deck
}

// NewSnapDeck creates a 52-card deck in base order (clubs, diamonds,
// hearts, spades; ace to king within each suit).
func NewSnapDeck() SnapDeck {
	return SnapDeck{
		Deck: deck.New(DeckSize),
	}
}

// Draw takes the top card. It returns false when the deck is exhausted.
func (d SnapDeck) Draw() (Card, bool) {
	raw, ok := d.Deck.DrawCard()
	if !ok {
		return Card{}, false
	}
	card, err := IntToCard(raw)
	if err != nil {
		return Card{}, false
	}
	return card, true
}

// Cards returns the undrawn cards, top first.
func (d SnapDeck) Cards() []Card {
	raw := d.Deck.Undrawn()
	out := make([]Card, 0, len(raw))
	for _, r := range raw {
		c, err := IntToCard(r)
		if err != nil {
			continue
		}
		out = append(out, c)
	}
	return out
}
