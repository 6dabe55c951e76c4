package matrix

import (
	"errors"
	"fmt"
	"io"
	"time"

	"go.bug.st/serial"
	"go.bug.st/serial/enumerator"
	"periph.io/x/conn/v3"
)

// Baud rates the bridge firmware is built for.
const (
	DefaultBaud = 115200
)

// SupportedBauds lists the rates the stock firmware can be compiled with.
// Open itself accepts any positive rate for custom firmware builds.
var SupportedBauds = []int{9600, 57600, DefaultBaud}

// Open opens the named serial port, waits for the bridge firmware to come
// up and returns a device that owns the port.
//
// baud <= 0 selects DefaultBaud. opts can be nil to use DefaultOpts; the
// settle wait is needed because opening the port resets Arduino-style
// boards.
func Open(portName string, baud int, opts *Opts) (*Dev, error) {
	if opts == nil {
		o := DefaultOpts
		opts = &o
	}
	if opts.SettleDelay < 0 {
		return nil, errors.New("matrix: settle delay must not be negative")
	}
	if baud <= 0 {
		baud = DefaultBaud
	}

	p, err := serial.Open(portName, &serial.Mode{BaudRate: baud})
	if err != nil {
		return nil, &TransportError{Op: "open", Err: err}
	}
	time.Sleep(opts.SettleDelay)

	d, err := New(&uartConn{w: p, name: portName}, opts)
	if err != nil {
		p.Close()
		return nil, err
	}
	d.closer = p
	return d, nil
}

// PortInfo describes one serial port on the host.
type PortInfo struct {
	Name         string // device node, e.g. /dev/ttyUSB0 or COM12
	IsUSB        bool
	VID, PID     string // USB vendor/product ID, empty for non-USB ports
	SerialNumber string
}

// Ports enumerates the serial ports on the host, USB details included
// where the platform reports them.
func Ports() ([]PortInfo, error) {
	details, err := enumerator.GetDetailedPortsList()
	if err != nil {
		return nil, fmt.Errorf("matrix: enumerate ports: %w", err)
	}
	ports := make([]PortInfo, 0, len(details))
	for _, p := range details {
		ports = append(ports, PortInfo{
			Name:         p.Name,
			IsUSB:        p.IsUSB,
			VID:          p.VID,
			PID:          p.PID,
			SerialNumber: p.SerialNumber,
		})
	}
	return ports, nil
}

// uartConn adapts a serial port to conn.Conn. The bridge protocol is
// write-only: frames go to the device, nothing comes back.
type uartConn struct {
	w    io.Writer
	name string
}

func (u *uartConn) String() string {
	return u.name
}

func (u *uartConn) Tx(w, r []byte) error {
	if len(r) != 0 {
		return errors.New("matrix: read not supported")
	}
	n, err := u.w.Write(w)
	if err != nil {
		return err
	}
	if n != len(w) {
		return fmt.Errorf("matrix: short write: %d of %d bytes", n, len(w))
	}
	return nil
}

func (u *uartConn) Duplex() conn.Duplex {
	return conn.Half
}
