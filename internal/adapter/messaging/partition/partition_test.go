package partition_test

import (
	"testing"

	"github.com/PedroCamargo-dev/wallet-transfer-saga/internal/adapter/messaging/partition"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestFor_StableAndInRange(t *testing.T) {
	seen := map[int]bool{}
	for i := 0; i < 200; i++ {
		key := uuid.NewString()
		p := partition.For(key, 8)

		assert.GreaterOrEqual(t, p, 0)
		assert.Less(t, p, 8)
		assert.Equal(t, p, partition.For(key, 8))
		seen[p] = true
	}
	assert.Greater(t, len(seen), 1)
}

func TestFor_SinglePartition(t *testing.T) {
	assert.Equal(t, 0, partition.For("tx", 1))
	assert.Equal(t, 0, partition.For("tx", 0))
}
