// Package snap implements the round logic of a two-player Snap card game.
//
// # Core Types
//
// Card: A playing card with suit, rank and face state. Cards are numbered
// 1-52 when they travel through the generic deck package.
//
// SnapDeck: A 52-card deck.Deck that hands out Cards instead of numbers.
//
// Game: The round state machine. It owns the deck, the two-card flip window
// and both players' scores.
//
// # Round Flow
//
// A round goes Idle → Active on Start, which reshuffles the deck and flips the
// first card. While Active, cards are flipped either manually (FlipNextCard)
// or by Update once the accumulated elapsed time reaches the flip time.
// Any PlayerHit ends the round: a hit on two cards of equal rank scores +1,
// anything else -1. The Game can then be started again.
//
// # Time
//
// The Game owns no clock. The driving loop reports the time elapsed since
// its previous call to Update, which keeps rounds deterministic under test.
package snap
