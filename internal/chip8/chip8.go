// Package chip8 implements a CHIP-8 virtual machine: a fetch-decode-
// execute loop with bit-exact opcode semantics, sprite XOR
// rasterization with collision detection, the delay/sound timer
// subsystem, and instruction-level pacing. It does not own a window,
// an audio device, or a keyboard; those are host collaborators driven
// through RunFrame, Display, and SoundGate.
package chip8

import (
	"fmt"
	"math/rand"
	"sync/atomic"
	"time"

	"github.com/bradford-hamilton/chippy/internal/bits"
	"github.com/bradford-hamilton/chippy/internal/display"
)

const (
	memorySize = 4096
	// ProgramOrigin is the memory address ROM bytes are loaded at.
	ProgramOrigin = 0x200
	// MaxROMSize is the largest ROM that fits between ProgramOrigin and
	// the end of memory.
	MaxROMSize = memorySize - ProgramOrigin
	// MaxMicros is the sentinel elapsed-time value Step returns from
	// Fx0A (wait-for-key) to signal the frame driver to stop
	// accumulating and end the frame immediately.
	MaxMicros uint32 = 1<<32 - 1
)

// RandSource is the capability Cxkk draws its random byte from. It is
// injected so tests can substitute a deterministic generator instead
// of depending on the process-wide math/rand state.
type RandSource interface {
	Intn(n int) int
}

// VM is a single CHIP-8 virtual machine instance, owned exclusively by
// its host for its entire process lifetime.
type VM struct {
	memory [memorySize]byte

	v  [16]byte
	i  uint16
	pc uint16

	stack [16]uint16
	sp    uint8

	delayTimer byte
	soundTimer byte
	// soundGate is read from speaker's mixing goroutine (through the
	// gatedStreamer ManageAudio installs) while it is written from the
	// host's frame-stepping goroutine, so it is an
	// atomic.Bool rather than a plain bool.
	soundGate atomic.Bool

	keys [16]bool

	disp display.Buffer

	rand RandSource
}

// New constructs a VM with the font table installed at FontOrigin and
// rom loaded at ProgramOrigin.
func New(rom []byte) (*VM, error) {
	if len(rom) > MaxROMSize {
		return nil, fmt.Errorf("%w: got %d bytes, max %d", ErrROMTooLarge, len(rom), MaxROMSize)
	}

	vm := &VM{
		pc:   ProgramOrigin,
		rand: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	copy(vm.memory[FontOrigin:], fontSet[:])
	copy(vm.memory[ProgramOrigin:], rom)

	return vm, nil
}

// Display returns a read-only snapshot of the 64x32 pixel grid for
// blitting.
func (vm *VM) Display() [display.Width * display.Height]bool {
	return vm.disp.Pixels()
}

// SoundGate reports the sound gate. RunFrame sets it at the top of a
// frame when the sound timer is nonzero before that frame's tick (so it
// stays true for the frame in which the timer reaches zero) and clears
// it when the timer is already zero; Fx18 sets it when it loads a
// nonzero value. The host should emit its tone while this is true.
func (vm *VM) SoundGate() bool {
	return vm.soundGate.Load()
}

// RunFrame advances the VM by one video frame: it ticks the delay and
// sound timers exactly once, then drives Step with keys until the
// accumulated elapsed time reaches budgetMicros or Step returns the
// MaxMicros sentinel (a blocking Fx0A wait), whichever comes first.
func (vm *VM) RunFrame(keys [16]bool, budgetMicros uint32) error {
	if vm.delayTimer > 0 {
		vm.delayTimer--
	}
	if vm.soundTimer > 0 {
		vm.soundGate.Store(true)
		vm.soundTimer--
	} else {
		vm.soundGate.Store(false)
	}

	var elapsed uint32
	for elapsed < budgetMicros {
		micros, err := vm.Step(keys)
		if err != nil {
			return err
		}
		if micros == MaxMicros {
			break
		}
		elapsed += micros
	}
	return nil
}

// Step performs one fetch-decode-execute cycle: it copies keys into
// the keypad snapshot, fetches the opcode at pc, decodes it by
// nibble, and dispatches to the matching instruction. It returns the
// average elapsed microseconds the real hardware would have spent on
// that instruction, used only for RunFrame's pacing.
func (vm *VM) Step(keys [16]bool) (uint32, error) {
	vm.keys = keys

	opcode := uint16(vm.memory[vm.pc])<<8 | uint16(vm.memory[vm.pc+1])
	x := bits.X(opcode)
	y := bits.Y(opcode)
	n := bits.N(opcode)
	nnn := bits.NNN(opcode)
	kk := bits.KK(opcode)

	switch opcode & 0xF000 {
	case 0x0000:
		switch opcode {
		case 0x00E0:
			return vm.op00E0()
		case 0x00EE:
			return vm.op00EE()
		}
	case 0x1000:
		return vm.op1nnn(nnn)
	case 0x2000:
		return vm.op2nnn(nnn)
	case 0x3000:
		return vm.op3xkk(x, kk)
	case 0x4000:
		return vm.op4xkk(x, kk)
	case 0x5000:
		if n == 0x0 {
			return vm.op5xy0(x, y)
		}
	case 0x6000:
		return vm.op6xkk(x, kk)
	case 0x7000:
		return vm.op7xkk(x, kk)
	case 0x8000:
		switch n {
		case 0x0:
			return vm.op8xy0(x, y)
		case 0x1:
			return vm.op8xy1(x, y)
		case 0x2:
			return vm.op8xy2(x, y)
		case 0x3:
			return vm.op8xy3(x, y)
		case 0x4:
			return vm.op8xy4(x, y)
		case 0x5:
			return vm.op8xy5(x, y)
		case 0x6:
			return vm.op8xy6(x, y)
		case 0x7:
			return vm.op8xy7(x, y)
		case 0xE:
			return vm.op8xyE(x, y)
		}
	case 0x9000:
		if n == 0x0 {
			return vm.op9xy0(x, y)
		}
	case 0xA000:
		return vm.opAnnn(nnn)
	case 0xC000:
		return vm.opCxkk(x, kk)
	case 0xD000:
		return vm.opDxyn(x, y, n)
	case 0xE000:
		switch kk {
		case 0x9E:
			return vm.opEx9E(x)
		case 0xA1:
			return vm.opExA1(x)
		}
	case 0xF000:
		switch kk {
		case 0x07:
			return vm.opFx07(x)
		case 0x0A:
			return vm.opFx0A(x)
		case 0x15:
			return vm.opFx15(x)
		case 0x18:
			return vm.opFx18(x)
		case 0x1E:
			return vm.opFx1E(x)
		case 0x29:
			return vm.opFx29(x)
		case 0x33:
			return vm.opFx33(x)
		case 0x55:
			return vm.opFx55(x)
		case 0x65:
			return vm.opFx65(x)
		}
	}

	return 0, fmt.Errorf("%w: %04X at pc=%#04x", ErrUnknownOpcode, opcode, vm.pc)
}

// DebugString returns a register/stack/PC dump in the style of
// chippy's original (unused) debug method, surfaced behind `chippy run
// --debug` on a fatal executor error.
func (vm *VM) DebugString() string {
	s := fmt.Sprintf("pc: %#04x\nsp: %d\ni: %#04x\n---registers---\n", vm.pc, vm.sp, vm.i)
	for r, val := range vm.v {
		s += fmt.Sprintf("V%X: %#02x\n", r, val)
	}
	s += "---stack---\n"
	for idx, addr := range vm.stack {
		s += fmt.Sprintf("stack[%d]: %#04x\n", idx, addr)
	}
	return s
}
