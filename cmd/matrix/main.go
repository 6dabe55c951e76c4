// Command matrix drives an 8x8 LED dot matrix behind a serial bridge:
// it scrolls text, sends pictures and hand-drawn grids, and lists the
// serial ports the bridge could be on.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"periph.io/x/conn/v3/display"

	matrix "github.com/VatsalKhanna5/Matrix"
	"github.com/VatsalKhanna5/Matrix/image1bit"
	"github.com/VatsalKhanna5/Matrix/internal/config"
	"github.com/VatsalKhanna5/Matrix/raster"
)

// target is where frames land: the device over serial, or the terminal
// sketcher when no port is configured.
type target interface {
	display.Drawer
	Close() error
}

func main() {
	// ---- Flags (config.yaml fills in whatever is not given) ----
	var (
		port       = flag.String("port", "", "serial port of the bridge, e.g. /dev/ttyUSB0 (empty: sketch to the terminal)")
		baud       = flag.Int("baud", 0, "baud rate: 9600, 57600 or 115200")
		delayMs    = flag.Int("delay", 0, "milliseconds between scroll frames")
		fontPath   = flag.String("font", "", "font file for text (.bdf, .ttf, .otf)")
		threshold  = flag.Float64("threshold", 0, "ink threshold for pictures, in (0,1)")
		stride     = flag.Int("stride", 0, "columns the scroll advances per frame")
		configPath = flag.String("config", "config.yaml", "path to config.yaml")
		preview    = flag.Bool("preview", false, "sketch frames to the terminal instead of opening a port")
		debug      = flag.Bool("debug", false, "verbose logging")
	)
	flag.Usage = usage
	flag.Parse()

	// ---- Logging ----
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	// ---- Load config.yaml (optional) ----
	cfg := config.Default()
	if c, err := config.Load(*configPath); err != nil {
		log.Debug().Err(err).Str("path", *configPath).Msg("no config file; using defaults")
	} else {
		cfg = c
	}

	// ---- Effective params (flags override the file where given) ----
	if *port != "" {
		cfg.Serial.Port = *port
	}
	if *baud > 0 {
		cfg.Serial.Baud = *baud
	}
	if *delayMs > 0 {
		cfg.DelayMs = *delayMs
	}
	if *fontPath != "" {
		cfg.Render.Font = *fontPath
	}
	if *threshold > 0 {
		cfg.Render.InkThreshold = *threshold
	}
	if *stride > 0 {
		cfg.Render.Stride = *stride
	}
	if *preview {
		// The terminal sketcher stands in for the device.
		cfg.Serial.Port = ""
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid settings")
	}

	if flag.NArg() == 0 {
		usage()
		os.Exit(2)
	}
	cmd, args := flag.Arg(0), flag.Args()[1:]
	if err := run(cmd, args, cfg); err != nil {
		log.Fatal().Err(err).Str("command", cmd).Msg("command failed")
	}
}

func run(cmd string, args []string, cfg *config.Config) error {
	if cmd == "ports" {
		return runPorts()
	}

	var send func(target) error
	switch cmd {
	case "text":
		if len(args) == 0 {
			return errors.New("text: missing message")
		}
		msg := strings.Join(args, " ")
		send = func(d target) error { return runText(d, cfg, msg) }
	case "grid":
		if len(args) != 1 {
			return errors.New("grid: want exactly one grid file")
		}
		send = func(d target) error { return runGrid(d, args[0]) }
	case "image":
		if len(args) != 1 {
			return errors.New("image: want exactly one picture file")
		}
		send = func(d target) error { return runImage(d, cfg, args[0]) }
	case "blank":
		send = func(d target) error { return d.Halt() }
	default:
		return fmt.Errorf("unknown command %q", cmd)
	}

	d, err := connect(cfg)
	if err != nil {
		return err
	}
	defer d.Close()
	return send(d)
}

// connect opens the configured serial port, or hands out the terminal
// sketcher when none is configured.
func connect(cfg *config.Config) (target, error) {
	if cfg.Serial.Port == "" {
		log.Info().Msg("sketching frames to the terminal")
		return newTerm(os.Stdout), nil
	}

	start := time.Now()
	d, err := matrix.Open(cfg.Serial.Port, cfg.Serial.Baud, nil)
	if err != nil {
		return nil, err
	}
	log.Info().
		Str("port", cfg.Serial.Port).
		Int("baud", cfg.Serial.Baud).
		Dur("settle", time.Since(start)).
		Msg("matrix ready")
	return d, nil
}

// runText scrolls a message across the display.
func runText(d target, cfg *config.Config, msg string) error {
	face, err := raster.LoadFace(cfg.Render.Font)
	if err != nil {
		return err
	}
	frames := raster.Text(msg, &raster.TextOpts{
		Face:   face,
		Stride: cfg.Render.Stride,
	})
	if len(frames) == 0 {
		return errors.New("text: nothing to scroll")
	}
	log.Debug().Int("frames", len(frames)).Dur("delay", cfg.Delay()).Msg("scrolling")
	return animate(d, frames, cfg.Delay())
}

// runGrid sends a hand-authored ASCII grid, folding 16x16 sketches
// down to the device size.
func runGrid(d target, path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	m, err := raster.ParseGrid(string(b))
	if err != nil {
		return err
	}
	switch r := m.Bounds(); {
	case r.Dx() == 16 && r.Dy() == 16:
		if m, err = raster.Downsample16(m); err != nil {
			return err
		}
	case r.Dx() == 8 && r.Dy() == 8:
	default:
		return fmt.Errorf("grid must be 8x8 or 16x16, got %dx%d", r.Dx(), r.Dy())
	}
	return d.Draw(d.Bounds(), m, m.Bounds().Min)
}

// runImage sends a single picture.
func runImage(d target, cfg *config.Config, path string) error {
	img, err := raster.LoadImage(path)
	if err != nil {
		return err
	}
	m := raster.FromImage(img, &raster.ImageOpts{Threshold: cfg.Render.InkThreshold})
	return d.Draw(d.Bounds(), m, m.Bounds().Min)
}

func runPorts() error {
	ports, err := matrix.Ports()
	if err != nil {
		return err
	}
	if len(ports) == 0 {
		log.Info().Msg("no serial ports found")
		return nil
	}
	for _, p := range ports {
		if p.IsUSB {
			fmt.Printf("%s\tUSB %s:%s %s\n", p.Name, p.VID, p.PID, p.SerialNumber)
		} else {
			fmt.Println(p.Name)
		}
	}
	return nil
}

// animate drives a frame sequence with fixed pacing.
func animate(d target, frames []*image1bit.HorizontalMSB, delay time.Duration) error {
	for _, f := range frames {
		if err := d.Draw(d.Bounds(), f, f.Bounds().Min); err != nil {
			return err
		}
		time.Sleep(delay)
	}
	return nil
}

func usage() {
	out := flag.CommandLine.Output()
	fmt.Fprintf(out, "matrix drives an 8x8 LED dot matrix behind a serial bridge.\n\n")
	fmt.Fprintf(out, "Usage: %s [flags] <command> [args]\n\n", os.Args[0])
	fmt.Fprintf(out, "Commands:\n")
	fmt.Fprintf(out, "  ports            list serial ports\n")
	fmt.Fprintf(out, "  text <message>   scroll a message across the display\n")
	fmt.Fprintf(out, "  grid <file>      send an ASCII grid (8x8, or 16x16 folded to 8x8)\n")
	fmt.Fprintf(out, "  image <file>     send a picture (png, jpeg, gif, svg)\n")
	fmt.Fprintf(out, "  blank            switch every cell off\n\n")
	fmt.Fprintf(out, "Flags:\n")
	flag.PrintDefaults()
}
