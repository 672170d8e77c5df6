package sensors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpiotest"
	"periph.io/x/conn/v3/i2c/i2ctest"
)

func TestPeriphBus(t *testing.T) {
	playback := &i2ctest.Playback{
		Ops: []i2ctest.IO{
			{Addr: 0x18, W: []byte{0x00}, R: []byte{0x13}},
			{Addr: 0x18, W: []byte{0x7E, 0xB6}},
			{Addr: 0x19, R: []byte{0x01, 0x02}},
		},
		DontPanic: true,
	}
	bus := &PeriphBus{Bus: playback}

	r := make([]byte, 1)
	require.NoError(t, bus.WriteRead(0x18, []byte{0x00}, r))
	assert.Equal(t, byte(0x13), r[0])

	require.NoError(t, bus.Write(0x18, []byte{0x7E, 0xB6}))

	r = make([]byte, 2)
	require.NoError(t, bus.Read(0x19, r))
	assert.Equal(t, []byte{0x01, 0x02}, r)

	assert.NoError(t, bus.Close())
}

func TestPeriphBusUnexpected(t *testing.T) {
	playback := &i2ctest.Playback{
		Ops:       []i2ctest.IO{{Addr: 0x18, W: []byte{0x00}, R: []byte{0x13}}},
		DontPanic: true,
	}
	bus := &PeriphBus{Bus: playback}

	r := make([]byte, 1)
	assert.Error(t, bus.WriteRead(0x19, []byte{0x00}, r))
}

func TestPeriphPin(t *testing.T) {
	pin := &gpiotest.Pin{N: "GPIO4", Num: 4, L: gpio.High}
	p, err := NewPeriphPin(pin)
	require.NoError(t, err)

	v, err := p.Read()
	require.NoError(t, err)
	assert.True(t, v)

	pin.L = gpio.Low
	v, err = p.Read()
	require.NoError(t, err)
	assert.False(t, v)
}
