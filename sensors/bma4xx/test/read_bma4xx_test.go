package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/redengin/go-bma4xx/sensors/bma4xx"
)

func simBoard() board {
	b := defaultBoard()
	b.Backend = "sim"
	return b
}

func TestRunSim(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run(simBoard(), false, nil, &out))
	assert.Equal(t, "chip,address\nBMA425,0x18\n", out.String())
}

func TestRunSimDump(t *testing.T) {
	b := simBoard()
	b.SimID = 0x11
	b.Address = 0x19

	var out bytes.Buffer
	require.NoError(t, run(b, true, nil, &out))
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 3+len(bma4xx.Registers()))
	assert.Equal(t, "BMA421,0x19", lines[1])
	assert.Equal(t, "register,offset,value", lines[2])
	assert.Equal(t, "CHIP_ID,0x00,0x11", lines[3])
	assert.Equal(t, "CMD,0x7E,0x00", lines[len(lines)-1])
}

func TestRunSimUnknownChip(t *testing.T) {
	b := simBoard()
	b.SimID = 0xD8

	err := run(b, false, nil, &bytes.Buffer{})
	assert.ErrorIs(t, err, bma4xx.ErrUnknownChipID)
}

func TestRunBadInputs(t *testing.T) {
	b := simBoard()
	b.Fallback = "never"
	assert.Error(t, run(b, false, nil, &bytes.Buffer{}))

	b = simBoard()
	b.Backend = "spi"
	assert.Error(t, run(b, false, nil, &bytes.Buffer{}))
}

func TestLoadBoard(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
backend: periph
bus: I2C1
address: 0x15
fallback: any-error
int1: GPIO17
`), 0o644))

	b := defaultBoard()
	require.NoError(t, loadBoard(path, &b))
	assert.Equal(t, "periph", b.Backend)
	assert.Equal(t, "I2C1", b.Bus)
	assert.Equal(t, uint8(0x15), b.Address)
	assert.Equal(t, "any-error", b.Fallback)
	assert.Equal(t, "GPIO17", b.Int1)
	assert.Empty(t, b.Int2)
	assert.Equal(t, uint8(0x13), b.SimID)

	assert.Error(t, loadBoard(filepath.Join(t.TempDir(), "missing.yaml"), &b))
}
