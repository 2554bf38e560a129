//go:build tinygo && baremetal

package hal

import (
	"image/color"
	"machine"

	"tinygo.org/x/drivers/ssd1306"
)

// Target wiring (Raspberry Pi Pico):
//   - UART0 on GP0 (TX) / GP1 (RX), 115200 8N1: host link and log lines.
//   - I2C0 on GP4 (SDA) / GP5 (SCL): SSD1306 128x64 OLED at 0x3C.
//   - GP14 (left) / GP15 (right): active-low buttons with pull-ups.
const (
	oledWidth   = 128
	oledHeight  = 64
	oledAddress = 0x3C
)

type tinyGoHAL struct {
	logger *uartLogger
	fb     *oledFramebuffer
	btn    *pinButtons
	t      *tinyGoTime
	serial *uartSerial
}

// New returns the Pico + SSD1306 HAL implementation.
func New() HAL {
	uart := machine.UART0
	uart.Configure(machine.UARTConfig{
		BaudRate: 115200,
		TX:       machine.GP0,
		RX:       machine.GP1,
	})

	machine.I2C0.Configure(machine.I2CConfig{
		Frequency: 400 * machine.KHz,
		SDA:       machine.GP4,
		SCL:       machine.GP5,
	})
	oled := ssd1306.NewI2C(machine.I2C0)
	oled.Configure(ssd1306.Config{
		Address: oledAddress,
		Width:   oledWidth,
		Height:  oledHeight,
	})
	oled.ClearDisplay()

	return &tinyGoHAL{
		logger: &uartLogger{uart: uart},
		fb:     &oledFramebuffer{MonoFramebuffer: NewMonoFramebuffer(oledWidth, oledHeight), dev: &oled},
		btn:    newPinButtons(machine.GP14, machine.GP15),
		t:      newTinyGoTime(),
		serial: &uartSerial{uart: uart},
	}
}

func (h *tinyGoHAL) Logger() Logger   { return h.logger }
func (h *tinyGoHAL) Display() Display { return tinyGoDisplay{fb: h.fb} }
func (h *tinyGoHAL) Buttons() Buttons { return h.btn }
func (h *tinyGoHAL) Serial() Serial   { return h.serial }
func (h *tinyGoHAL) Time() Time       { return h.t }

// oledFramebuffer pushes presented frames to the SSD1306 buffer.
type oledFramebuffer struct {
	*MonoFramebuffer
	dev   *ssd1306.Device
	frame []byte
}

var (
	oledOn  = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	oledOff = color.RGBA{A: 0xFF}
)

func (f *oledFramebuffer) Present() error {
	if err := f.MonoFramebuffer.Present(); err != nil {
		return err
	}
	f.frame = f.Snapshot(f.frame)
	stride := f.StrideBytes()
	for y := 0; y < f.Height(); y++ {
		for x := 0; x < f.Width(); x++ {
			c := oledOff
			if PixelAt(f.frame, stride, x, y) {
				c = oledOn
			}
			f.dev.SetPixel(int16(x), int16(y), c)
		}
	}
	return f.dev.Display()
}
