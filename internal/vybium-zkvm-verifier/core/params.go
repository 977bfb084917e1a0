package core

// Supported segment sizes, as powers of two of the cycle count
const (
	MinCyclesPo2 = 13
	MaxCyclesPo2 = 24
)

// DefaultMaxPo2 is the largest segment po2 the default verifier parameters accept.
// Larger segments lose roughly one bit of security per po2.
const DefaultMaxPo2 = 21
