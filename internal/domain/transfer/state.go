package domain_transfer

import "strings"

type Status string

const (
	StatusPending    Status = "PENDING"
	StatusInProgress Status = "IN_PROGRESS"
	StatusCompleted  Status = "COMPLETED"
	StatusFailed     Status = "FAILED"
	StatusCanceled   Status = "CANCELED"
)

func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusFailed || s == StatusCanceled
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted, StatusFailed, StatusCanceled:
		return true
	}
	return false
}

func ParseStatus(raw string) (Status, error) {
	s := Status(strings.ToUpper(strings.TrimSpace(raw)))
	if !s.IsValid() {
		return "", ErrInvalidStatus
	}
	return s, nil
}

// TargetSystem names the saga leg a step belongs to.
type TargetSystem string

const (
	TargetWallet     TargetSystem = "wallet"
	TargetPayment    TargetSystem = "payment"
	TargetChargeback TargetSystem = "chargeback"
)

func (t TargetSystem) IsValid() bool {
	return t == TargetWallet || t == TargetPayment || t == TargetChargeback
}

func ParseTargetSystem(raw string) (TargetSystem, error) {
	t := TargetSystem(strings.ToLower(strings.TrimSpace(raw)))
	if !t.IsValid() {
		return "", ErrInvalidTarget
	}
	return t, nil
}
