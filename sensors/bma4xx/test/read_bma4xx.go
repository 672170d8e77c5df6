// Command read_bma4xx identifies a BMA4xx accelerometer and prints its
// registers as CSV.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/kidoman/embd"
	_ "github.com/kidoman/embd/host/all" // Empty import needed to initialize embd library.
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"

	"github.com/redengin/go-bma4xx/sensors"
	"github.com/redengin/go-bma4xx/sensors/bma4xx"
	"github.com/redengin/go-bma4xx/sensors/simbus"
)

func main() {
	b := defaultBoard()
	var (
		boardFile = flag.String("board", "", "YAML board file")
		backend   = flag.String("backend", b.Backend, "bus backend: embd, periph or sim")
		bus       = flag.String("bus", b.Bus, "embd bus number or periph bus name")
		address   = flag.Uint("address", 0, "I2C address, 0 probes 0x18 then 0x19")
		fallback  = flag.String("fallback", b.Fallback, "alternate address policy: auto, none, bus-error, any-error")
		int1      = flag.String("int1", "", "INT1 pin")
		int2      = flag.String("int2", "", "INT2 pin")
		simID     = flag.Uint("sim-id", uint(b.SimID), "CHIP_ID of the simulated chip")
		dump      = flag.Bool("dump", false, "print every register")
		verbose   = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	if *boardFile != "" {
		if err := loadBoard(*boardFile, &b); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "backend":
			b.Backend = *backend
		case "bus":
			b.Bus = *bus
		case "address":
			b.Address = uint8(*address)
		case "fallback":
			b.Fallback = *fallback
		case "int1":
			b.Int1 = *int1
		case "int2":
			b.Int2 = *int2
		case "sim-id":
			b.SimID = uint8(*simID)
		}
	})

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if err := run(b, *dump, logger, os.Stdout); err != nil {
		logger.Error("read_bma4xx failed", slog.Any("err", err))
		os.Exit(1)
	}
}

func run(b board, dump bool, logger *slog.Logger, w io.Writer) error {
	fallback, err := bma4xx.ParseFallback(b.Fallback)
	if err != nil {
		return err
	}
	cfg := &bma4xx.Config{
		Address:  bma4xx.Address(b.Address),
		Fallback: fallback,
		Logger:   logger,
	}

	i2cbus, err := openBus(b, cfg)
	if err != nil {
		return err
	}

	bma, err := bma4xx.New(i2cbus, cfg)
	if err != nil {
		for _, v := range []interface{}{i2cbus, cfg.Int1, cfg.Int2} {
			if c, ok := v.(io.Closer); ok {
				c.Close()
			}
		}
		return fmt.Errorf("no BMA4xx found: %w", err)
	}
	defer bma.Close()

	fmt.Fprintln(w, "chip,address")
	fmt.Fprintf(w, "%s,%s\n", bma.Chip(), bma.Address())
	if !dump {
		return nil
	}

	fmt.Fprintln(w, "register,offset,value")
	for _, reg := range bma4xx.Registers() {
		v, err := bma.ReadRegister(reg)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s,0x%02X,0x%02X\n", reg, byte(reg), v)
	}
	return nil
}

// openBus opens the bus and interrupt pins named by b and stores the pins in cfg.
func openBus(b board, cfg *bma4xx.Config) (sensors.I2CBus, error) {
	switch b.Backend {
	case "embd":
		n, err := strconv.ParseUint(b.Bus, 10, 8)
		if err != nil {
			return nil, fmt.Errorf("embd bus must be a number: %w", err)
		}
		if err := embd.InitI2C(); err != nil {
			return nil, err
		}
		if b.Int1 != "" || b.Int2 != "" {
			if err := embd.InitGPIO(); err != nil {
				return nil, err
			}
		}
		for _, p := range []struct {
			name string
			pin  *sensors.InputPin
		}{{b.Int1, &cfg.Int1}, {b.Int2, &cfg.Int2}} {
			if p.name == "" {
				continue
			}
			pin, err := sensors.NewEmbdPin(p.name)
			if err != nil {
				return nil, err
			}
			*p.pin = pin
		}
		return &sensors.EmbdBus{Bus: embd.NewI2CBus(byte(n))}, nil

	case "periph":
		if _, err := host.Init(); err != nil {
			return nil, err
		}
		for _, p := range []struct {
			name string
			pin  *sensors.InputPin
		}{{b.Int1, &cfg.Int1}, {b.Int2, &cfg.Int2}} {
			if p.name == "" {
				continue
			}
			gp := gpioreg.ByName(p.name)
			if gp == nil {
				return nil, fmt.Errorf("no GPIO named %s", p.name)
			}
			pin, err := sensors.NewPeriphPin(gp)
			if err != nil {
				return nil, err
			}
			*p.pin = pin
		}
		bus, err := i2creg.Open(b.Bus)
		if err != nil {
			return nil, err
		}
		return &sensors.PeriphBus{Bus: bus}, nil

	case "sim":
		bus := simbus.New()
		addr := bma4xx.AddressPrimary
		if b.Address != 0 {
			addr = bma4xx.Address(b.Address)
		}
		dev := bus.Attach(byte(addr))
		dev.Regs[bma4xx.RegisterChipID] = b.SimID
		return bus, nil
	}
	return nil, fmt.Errorf("unknown backend %q", b.Backend)
}
