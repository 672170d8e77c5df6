package sensors

import (
	"fmt"

	"github.com/kidoman/embd"
)

// EmbdBus adapts an embd.I2CBus, as returned by embd.NewI2CBus, to I2CBus.
type EmbdBus struct {
	Bus embd.I2CBus
}

func (b *EmbdBus) Write(addr byte, w []byte) error {
	return b.Bus.WriteBytes(addr, w)
}

func (b *EmbdBus) Read(addr byte, r []byte) error {
	v, err := b.Bus.ReadBytes(addr, len(r))
	if err != nil {
		return err
	}
	if len(v) != len(r) {
		return fmt.Errorf("embd: short read from %X: got %d of %d bytes", addr, len(v), len(r))
	}
	copy(r, v)
	return nil
}

// WriteRead issues a single register read when w is one byte, which embd
// sends as one combined transaction. Longer requests fall back to a plain
// write followed by a read.
func (b *EmbdBus) WriteRead(addr byte, w, r []byte) error {
	if len(w) == 1 {
		return b.Bus.ReadFromReg(addr, w[0], r)
	}
	if err := b.Write(addr, w); err != nil {
		return err
	}
	return b.Read(addr, r)
}

// Close closes the underlying bus.
func (b *EmbdBus) Close() error {
	return b.Bus.Close()
}

// EmbdPin adapts an embd.DigitalPin to InputPin.
type EmbdPin struct {
	Pin embd.DigitalPin
}

// NewEmbdPin opens the GPIO identified by key (a pin number or name) as an
// input. embd.InitGPIO must have been called.
func NewEmbdPin(key interface{}) (*EmbdPin, error) {
	pin, err := embd.NewDigitalPin(key)
	if err != nil {
		return nil, err
	}
	if err := pin.SetDirection(embd.In); err != nil {
		pin.Close()
		return nil, fmt.Errorf("embd: setting pin %v as input: %w", key, err)
	}
	return &EmbdPin{Pin: pin}, nil
}

func (p *EmbdPin) Read() (bool, error) {
	v, err := p.Pin.Read()
	if err != nil {
		return false, err
	}
	return v == embd.High, nil
}

func (p *EmbdPin) Close() error {
	return p.Pin.Close()
}
