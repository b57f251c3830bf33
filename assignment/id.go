package assignment

import (
	"encoding/hex"

	"github.com/google/uuid"
)

// RunIDLength is the number of hex characters kept from the generating UUID.
const RunIDLength = 7

// NewRunID returns a short correlation identifier for one assignment run.
func NewRunID() string {
	id := uuid.New()
	return hex.EncodeToString(id[:])[:RunIDLength]
}
