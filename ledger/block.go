package ledger

// Block is one round result in the chain.
type Block struct {
	Index     int    `json:"index"`
	Timestamp int64  `json:"timestamp"`
	PrevHash  string `json:"prev_hash"`
	Hash      string `json:"hash"`
	Round     Round  `json:"round"`
}

// Round describes how a round ended.
type Round struct {
	Player  int    `json:"player"`
	Outcome string `json:"outcome"`
	Older   string `json:"older,omitempty"`
	Newer   string `json:"newer,omitempty"`
	Score0  int    `json:"score0"`
	Score1  int    `json:"score1"`
}
