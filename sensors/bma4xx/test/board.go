package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// board describes how a BMA4xx is wired to the host.
type board struct {
	Backend  string `yaml:"backend"`  // embd, periph or sim
	Bus      string `yaml:"bus"`      // embd bus number or periph bus name
	Address  uint8  `yaml:"address"`  // 0: probe the default pair
	Fallback string `yaml:"fallback"` // auto, none, bus-error, any-error
	Int1     string `yaml:"int1"`
	Int2     string `yaml:"int2"`
	SimID    uint8  `yaml:"sim_id"` // CHIP_ID reported by the simulated chip
}

func defaultBoard() board {
	return board{
		Backend:  "embd",
		Bus:      "1",
		Fallback: "auto",
		SimID:    0x13,
	}
}

func loadBoard(path string, b *board) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading board file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, b); err != nil {
		return fmt.Errorf("parsing board file %s: %w", path, err)
	}
	return nil
}
