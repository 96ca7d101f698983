package sim

import (
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

// Encode serialises a world snapshot, random source included.
func Encode(w *World) ([]byte, error) {
	data, err := msgpack.Marshal(w)
	if err != nil {
		return nil, fmt.Errorf("sim: encode snapshot: %w", err)
	}
	return data, nil
}

// Decode restores a snapshot written by Encode. The decoded world must be
// ticked by an engine built from the same configuration.
func Decode(data []byte) (*World, error) {
	var w World
	if err := msgpack.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("sim: decode snapshot: %w", err)
	}
	if w.Rng == nil {
		return nil, fmt.Errorf("sim: decode snapshot: missing rng state")
	}
	return &w, nil
}
