package id

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"
)

// NewID32 returns exactly 32 hex characters (no separators/prefixes).
func NewID32() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

// NewTransactionID tags one payment event for reconciliation: a TXN_ prefix,
// the submission time in unix milliseconds, and a short random suffix so
// rapid successive payments don't collide on the same millisecond.
// Uniqueness is best-effort, not cryptographically guaranteed.
func NewTransactionID() string {
	b := make([]byte, 4)
	_, _ = rand.Read(b)
	return fmt.Sprintf("TXN_%d_%s", time.Now().UnixMilli(), hex.EncodeToString(b))
}
