// Package matrix controls an 8x8 LED dot matrix behind a serial bridge.
//
// The display is a single-color 8x8 LED grid driven by a
// microcontroller that listens on a UART, usually exposed to the host
// as a USB serial port. The driver implements the display.Drawer
// interface from periph.io.
//
// # Wire Format
//
// Every update is one 9-byte frame, transmitted atomically:
//
//	Offset  Meaning
//	0       Fixed sync byte 0xAA
//	1..8    Row bytes, row 0 (top) to row 7 (bottom)
//
// Within a row byte, bit 7-c carries the cell in column c: bit 7 is
// the leftmost column, bit 0 the rightmost. There is no acknowledgment
// and nothing is ever read back; the protocol is write-only.
//
// # Hardware Connection
//
// Connect the bridge to the host over USB or a raw UART:
//
//	Bridge Pin → Host
//	GND        → GND
//	RX         → TX (or the USB serial adapter)
//
// Opening the port resets Arduino-style controllers, so Open waits
// for Opts.SettleDelay (2 seconds by default) before returning.
//
// # Basic Usage
//
// Example of scrolling a message:
//
//	package main
//
//	import (
//		"log"
//
//		matrix "github.com/VatsalKhanna5/Matrix"
//		"github.com/VatsalKhanna5/Matrix/raster"
//	)
//
//	func main() {
//		dev, err := matrix.Open("/dev/ttyUSB0", matrix.DefaultBaud, nil)
//		if err != nil {
//			log.Fatal(err)
//		}
//		defer dev.Close()
//
//		frames := raster.Text("HELLO", nil)
//		if err := dev.Animate(frames, matrix.DefaultFrameDelay); err != nil {
//			log.Fatal(err)
//		}
//		if err := dev.Halt(); err != nil {
//			log.Fatal(err)
//		}
//	}
//
// # Drawing Modes
//
// The driver supports two paths onto the wire:
//
// Write sends 8 pre-packed row bytes as one frame. Use it when the
// frame is already in wire format:
//
//	rows := []byte{0x18, 0x3C, 0x7E, 0xFF, 0x18, 0x18, 0x18, 0x18}
//	dev.Write(rows)
//
// Draw accepts any image.Image, composites it over the previous
// content, converts through the 1-bit color model and transmits the
// resulting frame. Full-frame draws of an already packed
// image1bit.HorizontalMSB skip the conversion:
//
//	img := image1bit.NewHorizontalMSB(dev.Bounds())
//	img.SetBit(3, 4, image1bit.On)
//	dev.Draw(dev.Bounds(), img, image.Point{})
//
// # Rasterization
//
// The raster package turns text, pictures and ASCII grids into frames
// for this driver: raster.Text produces scrolling sequences for
// Animate, raster.FromImage and raster.ParseGrid produce single
// frames for Draw.
//
// # Pacing
//
// Scrolling looks right between MinFrameDelay and MaxFrameDelay;
// Animate falls back to DefaultFrameDelay (70 ms) when given a zero
// delay. The wire itself needs no pacing, a frame is only 9 bytes.
//
// # Errors
//
// Geometry mistakes surface as *ShapeError, transport failures as
// *TransportError. Transport errors are not fatal: the device stays
// usable and the next frame may go through.
//
// # Compatibility with periph.io
//
// Dev implements the display.Drawer interface from periph.io:
// https://pkg.go.dev/periph.io/x/conn/v3/display
//
// Any transport implementing conn.Conn can stand in for the serial
// port, which is how the tests drive the device with conntest.
package matrix
