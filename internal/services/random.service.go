package services

import (
	"math/rand"
	"time"
)

// Rand is the randomness the simulators draw from. Production wires a
// seeded math/rand source; tests substitute a deterministic stub.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

func NewRand() Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}
