//go:build tinygo && baremetal

package hal

import (
	"machine"
	"time"
)

// Panel geometry of the board in landscape orientation.
const (
	ScreenWidth  = 320
	ScreenHeight = 170
)

// Board wiring (ESP32-S3 with a 1.9" ST7789 panel and a CST816 touch controller).
// The panel pins assume the SPI-wired ST7789 module. The LilyGO T-Display-S3
// drives its glass over an 8-bit parallel bus (D0-D7 on GPIO39-48, WR 8,
// RD 9), which tinygo.org/x/drivers/st7789 cannot drive.
const (
	pinLCDPower = machine.GPIO15
	pinLCDBL    = machine.GPIO38
	pinLCDCS    = machine.GPIO6
	pinLCDDC    = machine.GPIO7
	pinLCDRST   = machine.GPIO5
	pinLCDSCK   = machine.GPIO12
	pinLCDSDO   = machine.GPIO11

	pinI2CSDA   = machine.GPIO18
	pinI2CSCL   = machine.GPIO17
	pinTouchRST = machine.GPIO21
)

type boardHAL struct {
	logger *uartLogger
	power  *pinPower
	fb     Framebuffer
	touch  Touch
	t      *tinyGoTime
	clock  *tinyGoClock
	serial Serial
}

// New returns the board HAL implementation.
//
// Serial: the default machine.Serial at 115200 8N1.
func New() HAL {
	uart := machine.Serial
	_ = uart.Configure(machine.UARTConfig{BaudRate: 115200})
	logger := &uartLogger{uart: uart}

	powerPin := pinLCDPower
	powerPin.Configure(machine.PinConfig{Mode: machine.PinOutput})
	power := &pinPower{pin: powerPin}
	// The panel controller needs power before its init sequence.
	power.High()
	time.Sleep(10 * time.Millisecond)

	var fb Framebuffer
	if disp, err := newST7789Framebuffer(); err == nil {
		fb = disp
	} else {
		logger.WriteLineString("lcd: " + err.Error())
		fb = &stubFramebuffer{w: ScreenWidth, h: ScreenHeight, format: PixelFormatRGB565}
	}

	var touch Touch
	if tp, err := newCST816(); err == nil {
		touch = tp
	} else {
		logger.WriteLineString("touch: " + err.Error())
	}

	return &boardHAL{
		logger: logger,
		power:  power,
		fb:     fb,
		touch:  touch,
		t:      newTinyGoTime(),
		clock:  &tinyGoClock{},
		serial: &uartSerial{uart: uart},
	}
}

func (h *boardHAL) Logger() Logger     { return h.logger }
func (h *boardHAL) LCDPower() PowerPin { return h.power }
func (h *boardHAL) Display() Display   { return tinyGoDisplay{fb: h.fb} }
func (h *boardHAL) Input() Input       { return tinyGoInput{touch: h.touch} }
func (h *boardHAL) Time() Time         { return h.t }
func (h *boardHAL) Clock() Clock       { return h.clock }
func (h *boardHAL) Serial() Serial     { return h.serial }
