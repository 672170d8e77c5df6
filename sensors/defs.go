// Package sensors holds the bus and pin contracts shared by the sensor
// drivers, plus adapters for the host libraries that implement them.
package sensors

// I2CBus is the blocking transport a driver talks to its chip through.
// Addresses are 7-bit; every call returns only after the bus transaction
// has completed or failed.
type I2CBus interface {
	// Write sends w to the device at addr.
	Write(addr byte, w []byte) error
	// Read fills r from the device at addr.
	Read(addr byte, r []byte) error
	// WriteRead sends w and then fills r in one combined transaction
	// (repeated start, no stop in between).
	WriteRead(addr byte, w, r []byte) error
}

// InputPin is a digital input, such as a chip's interrupt line.
type InputPin interface {
	// Read returns true when the line is high.
	Read() (bool, error)
}
