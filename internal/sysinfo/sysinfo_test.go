package sysinfo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLoadAvg(t *testing.T) {
	load, err := parseLoadAvg("0.52 0.58 0.59 1/389 2c47\n")
	require.NoError(t, err)
	assert.InDelta(t, 0.52, load, 1e-9)

	_, err = parseLoadAvg("")
	assert.Error(t, err)

	_, err = parseLoadAvg("abc 0.1 0.2")
	assert.Error(t, err)
}

func TestParseMemInfo(t *testing.T) {
	content := `MemTotal:       16000000 kB
MemFree:         2000000 kB
MemAvailable:    4000000 kB
Buffers:          500000 kB
`
	used, err := parseMemInfo(content)
	require.NoError(t, err)
	assert.InDelta(t, 0.75, used, 1e-9)
}

func TestParseMemInfoMissingFields(t *testing.T) {
	_, err := parseMemInfo("MemFree: 100 kB\n")
	assert.Error(t, err)

	_, err = parseMemInfo("MemTotal: 100 kB\n")
	assert.Error(t, err)
}

func TestParseMemInfoClamps(t *testing.T) {
	used, err := parseMemInfo("MemTotal: 100 kB\nMemAvailable: 200 kB\n")
	require.NoError(t, err)
	assert.Equal(t, 0.0, used)
}
