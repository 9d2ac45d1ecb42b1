package port_platform

import (
	"time"

	"github.com/google/uuid"
)

// Clock is the single time source for ledger steps and transaction creation.
type Clock interface {
	Now() time.Time
}

// IDGenerator issues transaction, recipient and message ids.
type IDGenerator interface {
	NewUUID() uuid.UUID
}
