package hal

import "sync"

// PixelAt reports whether pixel (x, y) is lit in a packed 1bpp buffer.
func PixelAt(buf []byte, stride, x, y int) bool {
	off := y*stride + x/8
	if x < 0 || y < 0 || off < 0 || off >= len(buf) {
		return false
	}
	return buf[off]&(1<<uint(x%8)) != 0
}

// SetPixelAt lights or clears pixel (x, y) in a packed 1bpp buffer.
func SetPixelAt(buf []byte, stride, x, y int, lit bool) {
	off := y*stride + x/8
	if x < 0 || y < 0 || off < 0 || off >= len(buf) {
		return
	}
	if lit {
		buf[off] |= 1 << uint(x%8)
	} else {
		buf[off] &^= 1 << uint(x%8)
	}
}

// MonoFramebuffer is an in-memory Framebuffer.
//
// Drawing goes to a back buffer; Present publishes it so observers never see
// a half-drawn frame.
type MonoFramebuffer struct {
	mu        sync.Mutex
	width     int
	height    int
	stride    int
	back      []byte
	front     []byte
	presented uint64
}

// NewMonoFramebuffer allocates a width x height 1bpp framebuffer.
func NewMonoFramebuffer(width, height int) *MonoFramebuffer {
	stride := (width + 7) / 8
	return &MonoFramebuffer{
		width:  width,
		height: height,
		stride: stride,
		back:   make([]byte, stride*height),
		front:  make([]byte, stride*height),
	}
}

func (f *MonoFramebuffer) Width() int       { return f.width }
func (f *MonoFramebuffer) Height() int      { return f.height }
func (f *MonoFramebuffer) StrideBytes() int { return f.stride }
func (f *MonoFramebuffer) Buffer() []byte   { return f.back }

func (f *MonoFramebuffer) Clear(lit bool) {
	var v byte
	if lit {
		v = 0xFF
	}
	for i := range f.back {
		f.back[i] = v
	}
}

func (f *MonoFramebuffer) Present() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	copy(f.front, f.back)
	f.presented++
	return nil
}

// Snapshot copies the last presented frame into dst, growing it if needed.
func (f *MonoFramebuffer) Snapshot(dst []byte) []byte {
	f.mu.Lock()
	defer f.mu.Unlock()
	if cap(dst) < len(f.front) {
		dst = make([]byte, len(f.front))
	}
	dst = dst[:len(f.front)]
	copy(dst, f.front)
	return dst
}

// Presented returns how many frames have been published.
func (f *MonoFramebuffer) Presented() uint64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.presented
}
