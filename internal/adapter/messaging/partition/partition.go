package partition

import (
	"crypto/sha256"
	"encoding/binary"
	"strings"
)

// For maps key onto one of n partitions. Equal keys always share a partition.
func For(key string, n int) int {
	if n <= 1 {
		return 0
	}

	sum := sha256.Sum256([]byte(strings.TrimSpace(key)))
	return int(binary.BigEndian.Uint64(sum[:8]) % uint64(n))
}
