package bma4xx

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownChipID matches any *UnknownChipIDError under errors.Is.
	ErrUnknownChipID = errors.New("BMA4xx: unknown chip id")
	// ErrInvalidAddress is returned by New for an address outside the family's set.
	ErrInvalidAddress = errors.New("BMA4xx: invalid I2C address")
	// ErrResetTimeout is reserved for waiting on the chip after a soft reset.
	// Nothing returns it yet.
	ErrResetTimeout = errors.New("BMA4xx: timed out waiting for reset")
)

// CommError is a failed bus transaction.
type CommError struct {
	Address  Address
	Register Register
	Err      error
}

func (e *CommError) Error() string {
	return fmt.Sprintf("BMA4xx Error reading %s at %s: %s", e.Register, e.Address, e.Err)
}

func (e *CommError) Unwrap() error {
	return e.Err
}

// UnknownChipIDError is a CHIP_ID read that succeeded but returned a value
// none of the supported chips report.
type UnknownChipIDError struct {
	Address Address
	ID      byte
}

func (e *UnknownChipIDError) Error() string {
	return fmt.Sprintf("BMA4xx: unknown chip id 0x%02X at %s", e.ID, e.Address)
}

func (e *UnknownChipIDError) Is(target error) bool {
	return target == ErrUnknownChipID
}
