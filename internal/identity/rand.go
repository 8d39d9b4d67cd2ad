package identity

import (
	"encoding/binary"
	"math/rand/v2"

	"github.com/zarlcorp/core/pkg/zcrypto"
)

// NewRand returns a PCG-backed random source. A zero seed draws the PCG
// state from zcrypto so every run differs; any other seed is reproducible.
func NewRand(seed uint64) *rand.Rand {
	if seed != 0 {
		return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	}

	b, err := zcrypto.RandBytes(16)
	if err != nil {
		// system randomness failure is unrecoverable
		panic("zcrypto: " + err.Error())
	}
	return rand.New(rand.NewPCG(binary.LittleEndian.Uint64(b[:8]), binary.LittleEndian.Uint64(b[8:])))
}
