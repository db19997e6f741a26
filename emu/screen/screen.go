package screen

const (
	Width  = 64
	Height = 32
)

//Frame is a read-only copy of the screen handed to the display
type Frame [Width * Height]bool

//At reports whether the pixel at (x, y) is lit
func (f Frame) At(x, y int) bool {
	return f[y*Width+x]
}

//Framebuffer is the 64x32 monochrome display. Sprites are XORed onto it and
//wrap around both edges pixel by pixel.
type Framebuffer struct {
	pixels [Width * Height]bool
}

//Clear turns every pixel off
func (fb *Framebuffer) Clear() {
	fb.pixels = [Width * Height]bool{}
}

//Get reads a pixel; x must be in [0,64) and y in [0,32)
func (fb *Framebuffer) Get(x, y int) bool {
	return fb.pixels[y*Width+x]
}

//Draw XORs sprite onto the screen with its top left corner at (x, y). Each
//byte is one row, most significant bit leftmost. It returns true if any lit
//pixel was turned off.
func (fb *Framebuffer) Draw(x, y int, sprite []byte) bool {
	collision := false

	for j, row := range sprite {
		py := (y + j) % Height
		for i := 0; i < 8; i++ {
			if row&(0x80>>i) == 0 {
				continue
			}
			px := (x + i) % Width
			idx := py*Width + px
			if fb.pixels[idx] {
				collision = true
			}
			fb.pixels[idx] = !fb.pixels[idx]
		}
	}

	return collision
}

//Snapshot copies the current pixels out for the display
func (fb *Framebuffer) Snapshot() Frame {
	return Frame(fb.pixels)
}
