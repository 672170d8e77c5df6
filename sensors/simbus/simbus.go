// Package simbus is an in-memory I2C bus populated with register-mapped
// devices. It stands in for real hardware in tests and dry runs.
package simbus

import (
	"errors"
	"fmt"
)

// ErrNoDevice is returned for transactions to an address nothing answers on.
var ErrNoDevice = errors.New("simbus: no device acknowledged address")

// Device is a chip with a flat 8-bit register space. A write sets the
// register pointer from its first byte and stores the remaining bytes from
// there; a read returns bytes from the pointer. Both auto-increment.
type Device struct {
	Regs [256]byte
	ptr  byte
}

func (d *Device) write(w []byte) {
	if len(w) == 0 {
		return
	}
	d.ptr = w[0]
	for _, v := range w[1:] {
		d.Regs[d.ptr] = v
		d.ptr++
	}
}

func (d *Device) read(r []byte) {
	for i := range r {
		r[i] = d.Regs[d.ptr]
		d.ptr++
	}
}

// Tx records one bus transaction.
type Tx struct {
	Addr byte
	W, R []byte
	Err  error
}

func (t Tx) String() string {
	return fmt.Sprintf("%02X w=% X r=% X err=%v", t.Addr, t.W, t.R, t.Err)
}

// Bus implements sensors.I2CBus over a set of simulated devices.
type Bus struct {
	devices map[byte]*Device
	faults  map[byte]error
	Log     []Tx
}

func New() *Bus {
	return &Bus{
		devices: make(map[byte]*Device),
		faults:  make(map[byte]error),
	}
}

// Attach places a device at addr and returns it.
func (b *Bus) Attach(addr byte) *Device {
	d := new(Device)
	b.devices[addr] = d
	return d
}

// Fail makes every transaction to addr return err. A nil err clears the fault.
func (b *Bus) Fail(addr byte, err error) {
	if err == nil {
		delete(b.faults, addr)
		return
	}
	b.faults[addr] = err
}

func (b *Bus) Write(addr byte, w []byte) error {
	return b.WriteRead(addr, w, nil)
}

func (b *Bus) Read(addr byte, r []byte) error {
	return b.WriteRead(addr, nil, r)
}

func (b *Bus) WriteRead(addr byte, w, r []byte) (err error) {
	defer func() {
		tx := Tx{Addr: addr, W: append([]byte(nil), w...), Err: err}
		if err == nil && len(r) > 0 {
			tx.R = append([]byte(nil), r...)
		}
		b.Log = append(b.Log, tx)
	}()
	if err := b.faults[addr]; err != nil {
		return err
	}
	d, ok := b.devices[addr]
	if !ok {
		return ErrNoDevice
	}
	d.write(w)
	d.read(r)
	return nil
}
