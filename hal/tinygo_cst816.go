//go:build tinygo && baremetal

package hal

import (
	"errors"
	"machine"
	"time"

	"tinygo.org/x/drivers"
)

const (
	cst816Addr = 0x15

	cst816RegFingers = 0x02
	cst816RegChipID  = 0xA7
)

// cst816 reads the first finger of a CST816/CST820 self-capacitance controller.
type cst816 struct {
	bus drivers.I2C
	buf [5]byte
}

func newCST816() (*cst816, error) {
	i2c := machine.I2C0
	if i2c == nil {
		return nil, errors.New("I2C0 unavailable")
	}
	if err := i2c.Configure(machine.I2CConfig{
		SDA:       pinI2CSDA,
		SCL:       pinI2CSCL,
		Frequency: 400_000,
	}); err != nil {
		return nil, err
	}

	rst := pinTouchRST
	rst.Configure(machine.PinConfig{Mode: machine.PinOutput})
	rst.Low()
	time.Sleep(20 * time.Millisecond)
	rst.High()
	time.Sleep(50 * time.Millisecond)

	d := &cst816{bus: i2c}
	var id [1]byte
	if err := d.bus.ReadRegister(cst816Addr, cst816RegChipID, id[:]); err != nil {
		return nil, err
	}
	if id[0] == 0x00 || id[0] == 0xFF {
		return nil, errors.New("cst816: no chip")
	}
	return d, nil
}

func (d *cst816) Read() (TouchPoint, bool) {
	// fingers, XH, XL, YH, YL
	if err := d.bus.ReadRegister(cst816Addr, cst816RegFingers, d.buf[:]); err != nil {
		return TouchPoint{}, false
	}
	if d.buf[0] == 0 {
		return TouchPoint{}, false
	}
	x := int(d.buf[1]&0x0F)<<8 | int(d.buf[2])
	y := int(d.buf[3]&0x0F)<<8 | int(d.buf[4])
	// The controller reports portrait coordinates; swap into landscape.
	// The X mirror of the glass is left to the caller.
	return TouchPoint{X: y, Y: x, Pressure: 1}, true
}
