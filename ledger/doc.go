// Package ledger keeps an append-only, in-memory history of Snap rounds.
//
// # Core Components
//
// Ledger: An append-only log of round results with SHA256 hash chaining
// for tamper detection.
//
// Block: A single round result with its position in the chain and the
// cryptographic link to the previous block.
//
// # Security Properties
//
// The ledger provides:
//   - Immutability: Blocks are only ever appended, and readers get copies
//   - Tamper detection: Any modification breaks the hash chain
//
// # Usage
//
// Create a ledger at the start of a session, then append one block each
// time a player hits. Verify can be called at any time to ensure the chain
// remains intact. Nothing is written to disk; the history ends with the
// process.
package ledger
