package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggersUsableWithoutSetup(t *testing.T) {
	require.NotNil(t, InfoLogger)
	require.NotNil(t, WarningLogger)
	require.NotNil(t, ErrorLogger)

	assert.NotPanics(t, func() {
		Info("shifting tenant %s", "Jane Wanjiku")
		Warning("redis unavailable, serving from store")
		Error("bulk run skipped %d houses", 2)
	})
}

func TestLeveledOutputCarriesPrefix(t *testing.T) {
	var buf bytes.Buffer
	old := InfoLogger.Writer()
	InfoLogger.SetOutput(&buf)
	defer InfoLogger.SetOutput(old)

	Info("generated %d invoices", 3)

	out := buf.String()
	assert.Contains(t, out, "INFO: ")
	assert.Contains(t, out, "generated 3 invoices")
}
