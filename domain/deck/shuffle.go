package deck

import (
	"math/big"
	"math/rand/v2"

	"go.dedis.ch/kyber/v4"
	"go.dedis.ch/kyber/v4/suites"
	"go.dedis.ch/kyber/v4/util/random"
)

// Source abstracts random number generation so shuffles can be replayed
// in tests.
type Source interface {
	// Intn returns a non-negative random int in [0, n).
	Intn(n int) int
}

var suite suites.Suite = suites.MustFind("Ed25519")

// CryptoSource draws uniform integers from the Ed25519 suite random stream.
type CryptoSource struct {
	rnd kyber.Random
}

// NewCryptoSource returns a Source seeded from the system's entropy.
func NewCryptoSource() *CryptoSource {
	return &CryptoSource{rnd: suite}
}

func (s *CryptoSource) Intn(n int) int {
	if n <= 1 {
		return 0
	}
	return int(random.Int(big.NewInt(int64(n)), s.rnd.RandomStream()).Int64())
}

// SeededSource is a deterministic Source: the same seed always yields the
// same sequence, hence the same shuffles.
type SeededSource struct {
	r *rand.Rand
}

func NewSeededSource(seed uint64) *SeededSource {
	return &SeededSource{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (s *SeededSource) Intn(n int) int {
	if n <= 1 {
		return 0
	}
	return s.r.IntN(n)
}
