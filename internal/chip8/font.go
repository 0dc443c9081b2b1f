package chip8

// FontOrigin is the memory offset the built-in hex digit sprites are
// installed at. Font sprites sit at the very start of memory, just
// like chippy's original font set, since nothing running on top of
// this VM needs the lower 512 bytes reserved the way original CHIP-8
// hardware did.
const FontOrigin = 0x000

// FontSpriteBytes is the length in bytes of a single hex digit sprite.
const FontSpriteBytes = 5

// fontSet holds the 16 built-in 5-byte hex digit sprites, 0 through F,
// each 8 pixels wide and 5 rows tall.
var fontSet = [16 * FontSpriteBytes]byte{
	0xF0, 0x90, 0x90, 0x90, 0xF0, // 0
	0x20, 0x60, 0x20, 0x20, 0x70, // 1
	0xF0, 0x10, 0xF0, 0x80, 0xF0, // 2
	0xF0, 0x10, 0xF0, 0x10, 0xF0, // 3
	0x90, 0x90, 0xF0, 0x10, 0x10, // 4
	0xF0, 0x80, 0xF0, 0x10, 0xF0, // 5
	0xF0, 0x80, 0xF0, 0x90, 0xF0, // 6
	0xF0, 0x10, 0x20, 0x40, 0x40, // 7
	0xF0, 0x90, 0xF0, 0x90, 0xF0, // 8
	0xF0, 0x90, 0xF0, 0x10, 0xF0, // 9
	0xF0, 0x90, 0xF0, 0x90, 0x90, // A
	0xE0, 0x90, 0xE0, 0x90, 0xE0, // B
	0xF0, 0x80, 0x80, 0x80, 0xF0, // C
	0xE0, 0x90, 0x90, 0x90, 0xE0, // D
	0xF0, 0x80, 0xF0, 0x80, 0xF0, // E
	0xF0, 0x80, 0xF0, 0x80, 0x80, // F
}
