package simbus

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterPointer(t *testing.T) {
	bus := New()
	dev := bus.Attach(0x18)
	dev.Regs[0x00] = 0x13
	dev.Regs[0x01] = 0x07

	require.NoError(t, bus.Write(0x18, []byte{0x40, 0xA8, 0x02}))
	assert.Equal(t, byte(0xA8), dev.Regs[0x40])
	assert.Equal(t, byte(0x02), dev.Regs[0x41])

	r := make([]byte, 2)
	require.NoError(t, bus.WriteRead(0x18, []byte{0x00}, r))
	assert.Equal(t, []byte{0x13, 0x07}, r)

	// Plain reads continue from the pointer.
	r = make([]byte, 1)
	require.NoError(t, bus.Read(0x18, r))
	assert.Equal(t, byte(0x00), r[0])
}

func TestFaults(t *testing.T) {
	bus := New()
	bus.Attach(0x18)
	boom := errors.New("boom")

	assert.ErrorIs(t, bus.Read(0x19, make([]byte, 1)), ErrNoDevice)

	bus.Fail(0x18, boom)
	assert.ErrorIs(t, bus.WriteRead(0x18, []byte{0x00}, make([]byte, 1)), boom)

	bus.Fail(0x18, nil)
	assert.NoError(t, bus.WriteRead(0x18, []byte{0x00}, make([]byte, 1)))

	require.Len(t, bus.Log, 3)
	assert.Nil(t, bus.Log[1].R)
	assert.Equal(t, "18 w=00 r=00 err=<nil>", bus.Log[2].String())
}
