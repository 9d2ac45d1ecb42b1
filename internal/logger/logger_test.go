package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"testing"

	"github.com/PedroCamargo-dev/wallet-transfer-saga/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func capture(t *testing.T, level string) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	logger.Setup(buf, level)
	t.Cleanup(func() { logger.Setup(os.Stdout, "info") })
	return buf
}

func TestSanitizePayload_MasksSensitiveKeys(t *testing.T) {
	out := logger.SanitizePayload(map[string]any{
		"account_number": "000123",
		"destination": map[string]any{
			"accountNumber": "999",
			"name":          "Grace",
		},
	})

	m, ok := out.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "******", m["account_number"])

	dest := m["destination"].(map[string]any)
	assert.Equal(t, "******", dest["accountNumber"])
	assert.Equal(t, "Grace", dest["name"])
}

func TestCritical_WritesSeverity(t *testing.T) {
	buf := capture(t, "info")

	logger.Critical("chargeback did not complete", errors.New("boom"), logger.Fields{"transaction_id": "tx-1"})

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "CRITICAL", line["severity"])
	assert.Equal(t, "ERROR", line["level"])
	assert.Equal(t, "boom", line["error"])
	assert.Equal(t, "tx-1", line["transaction_id"])
}

func TestLevelFiltering(t *testing.T) {
	buf := capture(t, "warn")

	logger.Info("hidden", nil)
	assert.Zero(t, buf.Len())

	logger.Warn("shown", logger.Fields{"k": 1})
	assert.NotZero(t, buf.Len())
}
