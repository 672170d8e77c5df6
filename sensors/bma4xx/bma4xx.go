/*
Package bma4xx identifies Bosch BMA400/BMA421/BMA425/BMA456 accelerometers
on an I2C bus and reads their registers.

Reference 1: https://datasheet.lcsc.com/lcsc/1912111437_Bosch-Sensortec-BMA425_C437656.pdf
Reference 2: https://files.pine64.org/doc/datasheet/pinetime/BST-BMA421-FL000.pdf
Reference 3: https://github.com/InfiniTimeOrg/InfiniTime/tree/develop/src/drivers
*/
package bma4xx

import (
	"errors"
	"io"
	"log/slog"

	"github.com/redengin/go-bma4xx/sensors"
)

// Fallback selects when New retries CHIP_ID at the alternate address.
type Fallback int

const (
	// FallbackAuto is FallbackOnBusError when Config.Address is unset and
	// FallbackNone when it is set.
	FallbackAuto Fallback = iota
	// FallbackNone makes a single attempt at the configured address.
	FallbackNone
	// FallbackOnBusError retries only when the bus transaction fails.
	FallbackOnBusError
	// FallbackOnAnyError also retries when the chip answers with an
	// unknown id.
	FallbackOnAnyError
)

func (f Fallback) String() string {
	switch f {
	case FallbackAuto:
		return "auto"
	case FallbackNone:
		return "none"
	case FallbackOnBusError:
		return "bus-error"
	case FallbackOnAnyError:
		return "any-error"
	}
	return "unknown"
}

// ParseFallback is the inverse of Fallback.String.
func ParseFallback(s string) (Fallback, error) {
	for _, f := range []Fallback{FallbackAuto, FallbackNone, FallbackOnBusError, FallbackOnAnyError} {
		if f.String() == s {
			return f, nil
		}
	}
	return FallbackAuto, errors.New("BMA4xx: unknown fallback policy " + s)
}

// Config holds the optional settings for New. The zero value probes
// AddressPrimary and falls back to AddressSecondary on a bus error.
type Config struct {
	Address  Address // zero: AddressPrimary
	Fallback Fallback
	// Int1 and Int2 are the chip's interrupt lines, if wired.
	Int1, Int2 sensors.InputPin
	Logger     *slog.Logger
}

/*
BMA4xx represents an identified Bosch BMA4xx-family accelerometer.
The address and chip are fixed once New returns.
*/
type BMA4xx struct {
	i2cbus     sensors.I2CBus
	address    Address
	chip       Chip
	int1, int2 sensors.InputPin
	log        *slog.Logger
}

/*
New identifies the chip on i2cbus and returns a handle to it. If no supported
chip answers, New returns a *CommError or *UnknownChipIDError and no handle.
A nil cfg is the same as an empty Config.
*/
func New(i2cbus sensors.I2CBus, cfg *Config) (*BMA4xx, error) {
	if cfg == nil {
		cfg = new(Config)
	}
	bma := &BMA4xx{
		i2cbus: i2cbus,
		int1:   cfg.Int1,
		int2:   cfg.Int2,
		log:    cfg.Logger,
	}

	address, fallback := cfg.Address, cfg.Fallback
	if address == 0 {
		address = AddressPrimary
		if fallback == FallbackAuto {
			fallback = FallbackOnBusError
		}
	} else if fallback == FallbackAuto {
		fallback = FallbackNone
	}
	if !address.Valid() {
		return nil, ErrInvalidAddress
	}

	chip, err := bma.identify(address)
	if err != nil {
		alt, _ := address.Alternate()
		var comm *CommError
		retry := fallback == FallbackOnAnyError ||
			(fallback == FallbackOnBusError && errors.As(err, &comm))
		if !retry {
			return nil, err
		}
		bma.debug("BMA4xx: trying alternate address",
			slog.String("failed", address.String()), slog.String("alternate", alt.String()))
		address = alt
		if chip, err = bma.identify(address); err != nil {
			return nil, err
		}
	}

	bma.address = address
	bma.chip = chip
	bma.info("BMA4xx: found chip", slog.String("chip", chip.String()), slog.String("address", address.String()))
	return bma, nil
}

// identify reads CHIP_ID at address.
func (bma *BMA4xx) identify(address Address) (Chip, error) {
	id, err := bma.readRegister(address, RegisterChipID)
	if err != nil {
		bma.debug("BMA4xx: no answer", slog.String("address", address.String()), slog.Any("err", err))
		return 0, err
	}
	chip, ok := ChipFromID(id)
	if !ok {
		bma.logerr("BMA4xx: unknown chip id", slog.String("address", address.String()), slog.Int("id", int(id)))
		return 0, &UnknownChipIDError{Address: address, ID: id}
	}
	return chip, nil
}

// Address returns the address the chip answered on.
func (bma *BMA4xx) Address() Address {
	return bma.address
}

// Chip returns the identified chip model.
func (bma *BMA4xx) Chip() Chip {
	return bma.chip
}

// Int1 returns the INT1 pin given to New, or nil.
func (bma *BMA4xx) Int1() sensors.InputPin {
	return bma.int1
}

// Int2 returns the INT2 pin given to New, or nil.
func (bma *BMA4xx) Int2() sensors.InputPin {
	return bma.int2
}

// ReadRegister returns the raw value of a single register.
func (bma *BMA4xx) ReadRegister(register Register) (byte, error) {
	return bma.readRegister(bma.address, register)
}

func (bma *BMA4xx) readRegister(address Address, register Register) (byte, error) {
	request := [1]byte{byte(register)}
	var response [1]byte
	if err := bma.i2cbus.WriteRead(byte(address), request[:], response[:]); err != nil {
		return 0, &CommError{Address: address, Register: register, Err: err}
	}
	return response[0], nil
}

// Close releases the bus and interrupt pins that implement io.Closer.
// The BMA4xx must not be used afterwards.
func (bma *BMA4xx) Close() error {
	var errs []error
	for _, v := range []interface{}{bma.i2cbus, bma.int1, bma.int2} {
		if c, ok := v.(io.Closer); ok {
			if err := c.Close(); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return errors.Join(errs...)
}
