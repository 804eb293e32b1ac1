// Package bus wires the CPU, PPU, cartridge, controllers, and APU stub
// into a single NES address space, and couples the CPU and PPU clocks.
package bus

import (
	"github.com/SyedAsadK/rnes/internal/apu"
	"github.com/SyedAsadK/rnes/internal/cartridge"
	"github.com/SyedAsadK/rnes/internal/cpu"
	"github.com/SyedAsadK/rnes/internal/input"
	"github.com/SyedAsadK/rnes/internal/ppu"
)

const ramSize = 0x0800

// Bus is the NES's CPU-visible address space: 2KiB internal RAM mirrored
// across $0000-$1FFF, the PPU register window mirrored across $2000-$3FFF,
// the APU/controller ports at $4000-$4017, and cartridge PRG at
// $4020-$FFFF (via the open $6000-$7FFF SRAM window and $8000-$FFFF ROM).
type Bus struct {
	CPU *cpu.CPU
	PPU *ppu.PPU
	APU *apu.APU

	Controller1 *input.Controller
	Controller2 *input.Controller

	cart *cartridge.Cartridge
	ram  [ramSize]uint8

	controllerStrobe bool

	dmaCyclesRemaining uint64
	totalCycles        uint64
}

// New creates a Bus with its CPU, PPU, APU, and controllers instantiated
// but no cartridge attached. Call LoadCartridge and then Reset before
// running.
func New() *Bus {
	b := &Bus{
		PPU:         ppu.New(),
		APU:         apu.New(),
		Controller1: input.New(),
		Controller2: input.New(),
	}
	b.CPU = cpu.New(b)
	return b
}

// LoadCartridge attaches cart and wires its CHR memory and mirroring into
// the PPU.
func (b *Bus) LoadCartridge(cart *cartridge.Cartridge) {
	b.cart = cart
	b.PPU.SetCartridge(cart, toPPUMirror(cart.Mirror()))
}

func toPPUMirror(m cartridge.MirrorMode) ppu.Mirror {
	switch m {
	case cartridge.MirrorVertical:
		return ppu.MirrorVertical
	case cartridge.MirrorFourScreen:
		return ppu.MirrorFourScreen
	default:
		return ppu.MirrorHorizontal
	}
}

// Reset resets the CPU, PPU, and APU to their power-up state.
func (b *Bus) Reset() {
	b.PPU.Reset()
	b.APU.Reset()
	b.Controller1.Reset()
	b.Controller2.Reset()
	b.totalCycles = 0
	b.CPU.Reset()
}

// Read implements cpu.Bus.
func (b *Bus) Read(address uint16) uint8 {
	switch {
	case address < 0x2000:
		return b.ram[address%ramSize]
	case address < 0x4000:
		return b.PPU.ReadRegister(uint8(address))
	case address == 0x4015:
		return b.APU.ReadStatus()
	case address == 0x4016:
		return b.Controller1.Read()
	case address == 0x4017:
		return b.Controller2.Read() | 0x40 // open bus bit set by real hardware
	case address < 0x4020:
		return 0
	case address >= 0x6000:
		return b.cart.ReadPRG(address)
	default:
		return 0
	}
}

// Write implements cpu.Bus.
func (b *Bus) Write(address uint16, value uint8) {
	switch {
	case address < 0x2000:
		b.ram[address%ramSize] = value
	case address < 0x4000:
		b.PPU.WriteRegister(uint8(address), value)
	case address == 0x4014:
		b.oamDMA(value)
	case address == 0x4016:
		b.Controller1.Write(value)
		b.Controller2.Write(value)
	case address < 0x4018:
		b.APU.Write(address, value)
	case address >= 0x6000:
		b.cart.WritePRG(address, value)
	}
}

// TakeNMI implements cpu.Bus by draining the PPU's one-shot vblank latch.
func (b *Bus) TakeNMI() bool {
	return b.PPU.TakeNMI()
}

// oamDMA copies one 256-byte page starting at value<<8 into OAM through the
// normal $2004 write path, charging the fixed 513/514-cycle stall.
func (b *Bus) oamDMA(page uint8) {
	base := uint16(page) << 8
	for i := 0; i < 256; i++ {
		b.PPU.WriteRegister(4, b.Read(base+uint16(i)))
	}
	stall := uint64(513)
	if b.totalCycles%2 == 1 {
		stall = 514
	}
	b.dmaCyclesRemaining += stall
}

// Step advances the system by one unit of work: either one stalled DMA
// cycle, or one full instruction (or interrupt entry) if no DMA is
// outstanding. The PPU always advances three dots per cycle charged.
// It returns the CPU cycles charged.
func (b *Bus) Step() uint64 {
	var cycles uint64
	if b.dmaCyclesRemaining > 0 {
		charge := b.dmaCyclesRemaining
		if charge > 1 {
			charge = 1
		}
		b.dmaCyclesRemaining--
		cycles = charge
	} else {
		cycles = b.CPU.Step()
	}

	b.totalCycles += cycles
	b.PPU.Tick(cycles * 3)
	return cycles
}

// TotalCycles returns the cumulative CPU cycle count since Reset.
func (b *Bus) TotalCycles() uint64 {
	return b.totalCycles
}
