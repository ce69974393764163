package ledger

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/luca-patrignani/snap/domain/snap"
)

// ErrIgnoredHit is returned when appending a hit that did not end a round.
var ErrIgnoredHit = errors.New("hit from an unknown seat is not a round result")

type Ledger struct {
	mu     sync.RWMutex
	blocks []Block
	now    func() time.Time
}

// NewLedger creates a ledger holding only the genesis block.
// The genesis block has index 0, previous hash "0" and an empty round.
func NewLedger() *Ledger {
	return newLedger(time.Now)
}

func newLedger(now func() time.Time) *Ledger {
	l := &Ledger{
		blocks: make([]Block, 0),
		now:    now,
	}
	genesis := Block{
		Index:     0,
		Timestamp: now().Unix(),
		PrevHash:  "0",
		Round:     Round{Player: -1, Outcome: "genesis"},
	}
	genesis.Hash = calculateHash(genesis)
	l.blocks = append(l.blocks, genesis)
	return l
}

// RoundFromHit builds the round record of a hit given the scores after it.
func RoundFromHit(res snap.HitResult, scores snap.Scores) Round {
	r := Round{
		Player:  res.Player,
		Outcome: string(res.Outcome),
		Score0:  scores.Player0,
		Score1:  scores.Player1,
	}
	if res.Window.Older != nil {
		r.Older = res.Window.Older.String()
	}
	if res.Window.Newer != nil {
		r.Newer = res.Window.Newer.String()
	}
	return r
}

// Record appends the result of a hit. Ignored hits are rejected.
func (l *Ledger) Record(res snap.HitResult, scores snap.Scores) (Block, error) {
	if res.Outcome == snap.OutcomeIgnored {
		return Block{}, ErrIgnoredHit
	}
	return l.Append(RoundFromHit(res, scores))
}

// Append adds a new block for the given round, linked to the latest block.
func (l *Ledger) Append(r Round) (Block, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	latest := l.blocks[len(l.blocks)-1]
	b := Block{
		Index:     latest.Index + 1,
		Timestamp: l.now().Unix(),
		PrevHash:  latest.Hash,
		Round:     r,
	}
	b.Hash = calculateHash(b)

	if err := validateBlock(b, latest); err != nil {
		return Block{}, fmt.Errorf("invalid block: %w", err)
	}
	l.blocks = append(l.blocks, b)
	return b, nil
}

// GetLatest returns the most recently added block.
func (l *Ledger) GetLatest() Block {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.blocks[len(l.blocks)-1]
}

// Rounds returns the last n round blocks, newest first, without the genesis
// block. n <= 0 returns all of them.
func (l *Ledger) Rounds(n int) []Block {
	l.mu.RLock()
	defer l.mu.RUnlock()

	total := len(l.blocks) - 1
	if n <= 0 || n > total {
		n = total
	}
	out := make([]Block, 0, n)
	for i := len(l.blocks) - 1; i > 0 && len(out) < n; i-- {
		out = append(out, l.blocks[i])
	}
	return out
}

// Len returns the number of recorded rounds.
func (l *Ledger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.blocks) - 1
}

// Verify validates the integrity of the entire chain by checking the genesis block
// and verifying each subsequent block's hash, index continuity, and previous hash linkage.
func (l *Ledger) Verify() error {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if len(l.blocks) == 0 {
		return fmt.Errorf("empty ledger")
	}
	if l.blocks[0].PrevHash != "0" || l.blocks[0].Hash != calculateHash(l.blocks[0]) {
		return fmt.Errorf("invalid genesis block")
	}
	for i := 1; i < len(l.blocks); i++ {
		if err := validateBlock(l.blocks[i], l.blocks[i-1]); err != nil {
			return fmt.Errorf("block %d invalid: %w", i, err)
		}
	}
	return nil
}

func validateBlock(current, previous Block) error {
	if current.Index != previous.Index+1 {
		return fmt.Errorf("invalid index: expected %d, got %d", previous.Index+1, current.Index)
	}
	if current.PrevHash != previous.Hash {
		return fmt.Errorf("invalid prev hash: expected %s, got %s", previous.Hash, current.PrevHash)
	}
	expectedHash := calculateHash(current)
	if current.Hash != expectedHash {
		return fmt.Errorf("invalid hash: expected %s, got %s", expectedHash, current.Hash)
	}
	return nil
}

// calculateHash computes the SHA256 hash of a block from its index, timestamp,
// previous hash and JSON-encoded round.
func calculateHash(block Block) string {
	roundBytes, _ := json.Marshal(block.Round)

	data := fmt.Sprintf("%d%d%s%s",
		block.Index,
		block.Timestamp,
		block.PrevHash,
		string(roundBytes),
	)

	hash := sha256.Sum256([]byte(data))
	return hex.EncodeToString(hash[:])
}
