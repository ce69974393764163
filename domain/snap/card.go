package snap

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/paulhankin/poker"
)

// Card suit constants (0-3)
const (
	Club    = 0 // ♣ (black)
	Diamond = 1 // ♦ (red)
	Heart   = 2 // ♥ (red)
	Spade   = 3 // ♠ (black)
)

// Card rank constants for face cards and ace
const (
	Ace   = 1 // A (always low)
	Jack  = 11
	Queen = 12
	King  = 13
)

// CardBackIndex is the display index of the card back, right after the 52
// faces.
const CardBackIndex = 52

// Card represents a playing card with suit and rank.
type Card struct {
	suit   uint8 // 0-3: clubs, diamonds, hearts, spades
	rank   uint8 // 1-13: ace through king
	faceUp bool
}

// NewCard creates a new face-down Card with validation.
//
// Parameters:
//   - suit: 0-3 (Club, Diamond, Heart, Spade)
//   - rank: 1-13 (Ace=1, 2-10=face value, Jack=11, Queen=12, King=13)
//
// Returns the Card or an error if suit or rank is invalid.
func NewCard(suit uint8, rank uint8) (Card, error) {
	if _, err := poker.MakeCard(poker.Suit(suit), poker.Rank(rank)); err != nil {
		return Card{}, fmt.Errorf("invalid card %d, %d: %w", suit, rank, err)
	}
	return Card{
		suit: suit,
		rank: rank,
	}, nil
}

// Suit returns the suit value of the Card (0-3: clubs, diamonds, hearts, spades).
func (c Card) Suit() uint8 {
	return c.suit
}

// Rank returns the rank value of the Card (1-13: ace through king).
func (c Card) Rank() uint8 {
	return c.rank
}

// FaceUp reports whether the card has been flipped onto the window.
func (c Card) FaceUp() bool {
	return c.faceUp
}

// DisplayIndex returns the sprite cell of the card face: 13 cells per suit,
// clubs first, ace first within a suit.
func (c Card) DisplayIndex() int {
	return int(c.suit)*13 + int(c.rank) - 1
}

// SameRank reports whether two cards would make a snap.
func (c Card) SameRank(other Card) bool {
	return c.rank == other.rank
}

func (c *Card) turnOver() {
	c.faceUp = true
}

// SuitSymbol returns ♣, ♦, ♥ or ♠.
func (c Card) SuitSymbol() string {
	switch c.suit {
	case Club:
		return "♣"
	case Diamond:
		return "♦"
	case Heart:
		return "♥"
	case Spade:
		return "♠"
	default:
		return "?"
	}
}

// RankSymbol returns A, J, Q, K or the number.
func (c Card) RankSymbol() string {
	switch c.rank {
	case Ace:
		return "A"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	default:
		return strconv.Itoa(int(c.rank))
	}
}

// IsRed reports whether the card is a diamond or a heart.
func (c Card) IsRed() bool {
	return c.suit == Diamond || c.suit == Heart
}

// String returns the rank abbreviation followed by the suit symbol, e.g. "10♦".
func (c Card) String() string {
	if c.rank == 0 {
		return "?"
	}
	return c.RankSymbol() + c.SuitSymbol()
}

// IntToCard converts a raw card number (1-52) to a Card. Card numbers map to suits in order
// (clubs, diamonds, hearts, spades) with ranks 1-13 within each suit.
//
// Card numbering:
//   - 1-13: Clubs (Ace through King)
//   - 14-26: Diamonds (Ace through King)
//   - 27-39: Hearts (Ace through King)
//   - 40-52: Spades (Ace through King)
func IntToCard(rawCard int) (Card, error) {
	if rawCard > 52 || rawCard < 1 {
		return Card{}, errors.New("the card to convert have an invalid value")
	}

	suit := uint8((rawCard - 1) / 13)
	rank := uint8((rawCard-1)%13 + 1)
	return NewCard(suit, rank)
}

// CardToInt converts a Card to its integer representation (1-52).
// This is the inverse operation of IntToCard.
func CardToInt(card Card) int {
	return int(card.Suit())*13 + int(card.Rank())
}
