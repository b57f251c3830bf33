package assignment

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
)

// NewSeed draws a fresh engine seed from the operating system entropy pool.
// The seed itself feeds a deterministic math/rand source, so recording it is
// enough to replay a draw.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("failed to read random seed: %w", err)
	}
	return int64(binary.LittleEndian.Uint64(b[:])), nil
}
