package synth

// Park-Miller constants for the Lehmer multiplicative congruential generator.
const (
	lcgMultiplier = 16807
	lcgModulus    = 2147483647
)

// Stream is the seeded uniform source behind every sampler. It is the only
// mutable state in a generation run, and each run owns its own stream, so
// independent runs never interfere. Draw order is the reproducibility
// contract: the same seed replays the exact uniform sequence.
type Stream struct {
	state uint64
}

// NewStream seeds a stream. The seed is folded into [1, modulus-1]; zero and
// negative seeds displace deterministically so every int64 is usable.
func NewStream(seed int64) *Stream {
	s := seed % lcgModulus
	if s <= 0 {
		s += lcgModulus - 1
	}
	return &Stream{state: uint64(s)}
}

// Float64 advances the stream and returns a uniform double in the open
// interval (0,1). The state never reaches 0 or the modulus, so neither
// endpoint can be emitted.
func (s *Stream) Float64() float64 {
	s.state = s.state * lcgMultiplier % lcgModulus
	return float64(s.state) / lcgModulus
}
