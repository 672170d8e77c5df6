package bma4xx

import (
	"fmt"
	"sort"
)

// Address is the 7-bit I2C address of the chip. Each family answers on one
// of two addresses depending on how SDO is strapped.
type Address byte

const (
	AddressBMA400Primary   Address = 0b001_0100 // SDO to GND
	AddressBMA400Secondary Address = 0b001_0101 // SDO to VDDIO
	AddressPrimary         Address = 0b001_1000 // SDO to GND
	AddressSecondary       Address = 0b001_1001 // SDO to VDDIO
)

// Alternate returns the other address of the same strapping pair.
func (a Address) Alternate() (Address, bool) {
	switch a {
	case AddressBMA400Primary:
		return AddressBMA400Secondary, true
	case AddressBMA400Secondary:
		return AddressBMA400Primary, true
	case AddressPrimary:
		return AddressSecondary, true
	case AddressSecondary:
		return AddressPrimary, true
	}
	return 0, false
}

// Valid reports whether a is one of the four addresses the family uses.
func (a Address) Valid() bool {
	_, ok := a.Alternate()
	return ok
}

func (a Address) String() string {
	return fmt.Sprintf("0x%02X", byte(a))
}

// Chip identifies the sensor model read from CHIP_ID.
type Chip int

const (
	BMA400 Chip = iota + 1
	BMA421
	BMA425
	BMA456
)

// Chip ID Definitions
const (
	ChipIDBMA400 = 0x90
	ChipIDBMA421 = 0x11
	ChipIDBMA425 = 0x13 // also reported by the BMA423
	ChipIDBMA456 = 0x16
)

var chipIDs = map[byte]Chip{
	ChipIDBMA400: BMA400,
	ChipIDBMA421: BMA421,
	ChipIDBMA425: BMA425,
	ChipIDBMA456: BMA456,
}

var chipNames = map[Chip]string{
	BMA400: "BMA400",
	BMA421: "BMA421",
	BMA425: "BMA425",
	BMA456: "BMA456",
}

// ChipFromID maps a CHIP_ID value to a Chip.
func ChipFromID(id byte) (Chip, bool) {
	c, ok := chipIDs[id]
	return c, ok
}

// ID returns the CHIP_ID value the model reports, or 0 for an invalid Chip.
func (c Chip) ID() byte {
	for id, chip := range chipIDs {
		if chip == c {
			return id
		}
	}
	return 0
}

func (c Chip) String() string {
	if name, ok := chipNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Chip(%d)", int(c))
}

// Register is the offset of a register in the chip's address space.
type Register byte

func (r Register) String() string {
	if name, ok := registerNames[r]; ok {
		return name
	}
	return fmt.Sprintf("REG_%02X", byte(r))
}

// Registers returns every named register in ascending offset order.
func Registers() []Register {
	regs := make([]Register, 0, len(registerNames))
	for r := range registerNames {
		regs = append(regs, r)
	}
	sort.Slice(regs, func(i, j int) bool { return regs[i] < regs[j] })
	return regs
}
