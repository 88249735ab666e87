package puzzle

// Stream salts. The sequence/math generators share one seeded stream; each
// word game derives its own hash so its word choice does not depend on how
// many draws the arithmetic generators consume.
const (
	saltPuzzle  = "bluestock_puzzle_2026"
	saltHangman = "bluestock_hangman_2026"
	saltWordle  = "bluestock_wordle_2026"
)

// RNG is a Mulberry32 pseudo-random stream. The i-th draw for a given seed
// is identical across platforms and over time, which is what keeps a given
// date's puzzles the same for every player. Not suitable for anything that
// needs unpredictability.
type RNG struct {
	state uint32
}

func NewRNG(seed uint32) *RNG {
	return &RNG{state: seed}
}

// Float64 returns the next draw in [0, 1).
func (r *RNG) Float64() float64 {
	r.state += 0x6d2b79f5
	t := r.state
	t = (t ^ t>>15) * (t | 1)
	t = (t + (t^t>>7)*(t|61)) ^ t
	t ^= t >> 14
	return float64(t) / 4294967296.0
}

// IntN returns the next draw scaled to [0, n).
func (r *RNG) IntN(n int) int {
	return int(r.Float64() * float64(n))
}

// DateSeed folds date+salt into a 32-bit seed: a 31-based polynomial
// rolling hash over the bytes, wrapped in signed 32-bit arithmetic, with
// the absolute value taken at the end.
func DateSeed(date, salt string) uint32 {
	var h int32
	for _, c := range []byte(date + salt) {
		h = h*31 + int32(c)
	}
	if h < 0 {
		return uint32(-int64(h))
	}
	return uint32(h)
}
