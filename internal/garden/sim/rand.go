package sim

import (
	"fmt"
	"math/rand/v2"

	"github.com/vmihailenco/msgpack/v5"
)

// Rand is the world's single random source. It is a PCG generator whose
// state travels with world snapshots, so a decoded world draws the same
// numbers the original would have.
type Rand struct {
	src *rand.PCG
	r   *rand.Rand
}

// NewRand seeds a generator.
func NewRand(seed uint64) *Rand {
	src := rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)
	return &Rand{src: src, r: rand.New(src)}
}

// Float64 returns a number in [0, 1).
func (r *Rand) Float64() float64 {
	return r.r.Float64()
}

// IntN returns a number in [0, n).
func (r *Rand) IntN(n int) int {
	return r.r.IntN(n)
}

// Clone returns a generator in the same state.
func (r *Rand) Clone() *Rand {
	state, err := r.src.MarshalBinary()
	if err != nil {
		panic(fmt.Sprintf("sim: cannot copy rng state: %v", err))
	}
	src := &rand.PCG{}
	if err := src.UnmarshalBinary(state); err != nil {
		panic(fmt.Sprintf("sim: cannot copy rng state: %v", err))
	}
	return &Rand{src: src, r: rand.New(src)}
}

// EncodeMsgpack implements msgpack.CustomEncoder.
func (r *Rand) EncodeMsgpack(enc *msgpack.Encoder) error {
	state, err := r.src.MarshalBinary()
	if err != nil {
		return fmt.Errorf("sim: marshal rng: %w", err)
	}
	return enc.EncodeBytes(state)
}

// DecodeMsgpack implements msgpack.CustomDecoder.
func (r *Rand) DecodeMsgpack(dec *msgpack.Decoder) error {
	state, err := dec.DecodeBytes()
	if err != nil {
		return fmt.Errorf("sim: decode rng: %w", err)
	}
	src := &rand.PCG{}
	if err := src.UnmarshalBinary(state); err != nil {
		return fmt.Errorf("sim: unmarshal rng: %w", err)
	}
	r.src = src
	r.r = rand.New(src)
	return nil
}
