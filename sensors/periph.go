package sensors

import (
	"io"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/i2c"
)

// PeriphBus adapts a periph.io i2c.Bus to I2CBus.
type PeriphBus struct {
	Bus i2c.Bus
}

func (b *PeriphBus) Write(addr byte, w []byte) error {
	return b.Bus.Tx(uint16(addr), w, nil)
}

func (b *PeriphBus) Read(addr byte, r []byte) error {
	return b.Bus.Tx(uint16(addr), nil, r)
}

func (b *PeriphBus) WriteRead(addr byte, w, r []byte) error {
	return b.Bus.Tx(uint16(addr), w, r)
}

// Close closes the underlying bus if it was opened through i2creg.
func (b *PeriphBus) Close() error {
	if c, ok := b.Bus.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// PeriphPin adapts a periph.io gpio.PinIn to InputPin.
type PeriphPin struct {
	Pin gpio.PinIn
}

// NewPeriphPin configures pin as a floating input with edge detection off.
func NewPeriphPin(pin gpio.PinIn) (*PeriphPin, error) {
	if err := pin.In(gpio.Float, gpio.NoEdge); err != nil {
		return nil, err
	}
	return &PeriphPin{Pin: pin}, nil
}

func (p *PeriphPin) Read() (bool, error) {
	return p.Pin.Read() == gpio.High, nil
}
