package core

// RNG is a small linear congruential generator with fully visible state.
// The simulation cannot use math/rand here: snapshots must capture and
// restore the generator mid-sequence, and the sequence must be identical
// across platforms for replays to agree.
type RNG struct {
	state uint64
}

// NewRNG creates a generator from a seed. A zero seed is replaced with 1 so
// the sequence never degenerates.
func NewRNG(seed int64) *RNG {
	if seed == 0 {
		seed = 1
	}
	return &RNG{state: uint64(seed)}
}

// Next advances the generator and returns the raw 64-bit value.
func (r *RNG) Next() uint64 {
	r.state = r.state*6364136223846793005 + 1442695040888963407
	return r.state
}

// Intn returns a value in [0, n). n <= 0 returns 0.
func (r *RNG) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

// Float64 returns a value in [0, 1).
func (r *RNG) Float64() float64 {
	return float64(r.Next()) / float64(1<<64)
}

// State exposes the internal state for snapshots.
func (r *RNG) State() uint64 {
	return r.state
}

// Restore sets the internal state from a snapshot.
func (r *RNG) Restore(state uint64) {
	if state == 0 {
		state = 1
	}
	r.state = state
}
