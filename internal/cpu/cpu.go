// Package cpu implements the 6502 CPU interpreter at the heart of the NES.
package cpu

// AddressingMode identifies how an instruction's operand address is formed.
type AddressingMode int

const (
	Implied AddressingMode = iota
	Accumulator
	Immediate
	ZeroPage
	ZeroPageX
	ZeroPageY
	Relative
	Absolute
	AbsoluteX
	AbsoluteY
	Indirect
	IndexedIndirect // (zp,X)
	IndirectIndexed // (zp),Y
)

const (
	stackBase = 0x0100

	nFlagMask  = 0x80
	vFlagMask  = 0x40
	unusedMask = 0x20
	bFlagMask  = 0x10
	dFlagMask  = 0x08
	iFlagMask  = 0x04
	zFlagMask  = 0x02
	cFlagMask  = 0x01

	zeroPageMask = 0x00FF
	pageMask     = 0xFF00

	nmiVector   = 0xFFFA
	resetVector = 0xFFFC
	irqVector   = 0xFFFE
)

// Instruction is one entry of the flat opcode decode table.
type Instruction struct {
	Name   string
	Bytes  uint8
	Cycles uint8
	Mode   AddressingMode
}

// Bus is everything the CPU needs from its host: byte-addressed memory plus
// the one-shot NMI latch the PPU raises on vblank entry.
type Bus interface {
	Read(address uint16) uint8
	Write(address uint16, value uint8)
	TakeNMI() bool
}

// CPU is the 6502 processor used by the NES, including its NES-specific
// quirks (decimal mode is tracked but never applied arithmetically).
type CPU struct {
	A, X, Y uint8
	SP      uint8
	PC      uint16

	C, Z, I, D, B, V, N bool

	bus    Bus
	cycles uint64

	instructions [256]*Instruction
}

// New creates a CPU wired to the given bus. Call Reset before running it.
func New(bus Bus) *CPU {
	cpu := &CPU{bus: bus}
	cpu.initInstructions()
	return cpu
}

// Reset performs the standard 6502 power-on/reset sequence: registers zeroed,
// SP set to 0xFD, status 0x24 (I and the unused bit set), PC loaded from the
// reset vector at $FFFC/$FFFD.
func (cpu *CPU) Reset() {
	cpu.A, cpu.X, cpu.Y = 0, 0, 0
	cpu.SP = 0xFD
	cpu.C, cpu.Z, cpu.D, cpu.B, cpu.V, cpu.N = false, false, false, false, false, false
	cpu.I = true

	low := uint16(cpu.bus.Read(resetVector))
	high := uint16(cpu.bus.Read(resetVector + 1))
	cpu.PC = (high << 8) | low
	cpu.cycles = 0
}

// Cycles returns the cumulative CPU cycle count since Reset.
func (cpu *CPU) Cycles() uint64 {
	return cpu.cycles
}

// Step drains a pending NMI if one is latched, otherwise fetches, decodes,
// and executes a single instruction. It returns the number of CPU cycles
// charged, which the caller (the Bus) must feed into PPU.Tick at 3x.
func (cpu *CPU) Step() uint64 {
	if cpu.bus.TakeNMI() {
		cpu.enterInterrupt(nmiVector, false)
		cpu.cycles += nmiEntryCycles
		return nmiEntryCycles
	}

	opcode := cpu.bus.Read(cpu.PC)
	instruction := cpu.instructions[opcode]
	if instruction == nil {
		panic(&UnknownOpcodeError{Opcode: opcode, PC: cpu.PC})
	}

	address, pageCrossed := cpu.operandAddress(instruction.Mode)
	extra := cpu.execute(opcode, address, pageCrossed)
	if pageCrossed && readPenalizesPageCross(opcode) {
		extra++
	}

	total := uint64(instruction.Cycles) + uint64(extra)
	cpu.cycles += total
	return total
}

// readPenalizesPageCross reports whether opcode's indexed addressing mode
// charges an extra cycle when the effective address crosses a page boundary.
// Store instructions and branches compute their own penalties elsewhere.
func readPenalizesPageCross(opcode uint8) bool {
	switch opcode {
	case 0xBD, 0xB9, 0xB1, 0xBE, 0xBC, // LDA,X/Y, LDA (ind),Y, LDX,Y, LDY,X
		0x7D, 0x79, 0x71, // ADC
		0x3D, 0x39, 0x31, // AND
		0x1D, 0x19, 0x11, // ORA
		0x5D, 0x59, 0x51, // EOR
		0xDD, 0xD9, 0xD1, // CMP
		0xFD, 0xF9, 0xF1, // SBC
		0x1C, 0x3C, 0x5C, 0x7C, 0xDC, 0xFC, // unofficial NOP abs,X
		0xBF, 0xB3: // LAX
		return true
	}
	return false
}

// operandAddress resolves the effective address for mode and advances PC past
// the instruction's operand bytes. The second return reports a page-boundary
// crossing for the three indexed read modes and for Relative branches.
func (cpu *CPU) operandAddress(mode AddressingMode) (uint16, bool) {
	switch mode {
	case Implied, Accumulator:
		cpu.PC++
		return 0, false

	case Immediate:
		address := cpu.PC + 1
		cpu.PC += 2
		return address, false

	case ZeroPage:
		address := uint16(cpu.bus.Read(cpu.PC + 1))
		cpu.PC += 2
		return address, false

	case ZeroPageX:
		base := cpu.bus.Read(cpu.PC + 1)
		cpu.PC += 2
		return uint16((base + cpu.X) & zeroPageMask), false

	case ZeroPageY:
		base := cpu.bus.Read(cpu.PC + 1)
		cpu.PC += 2
		return uint16((base + cpu.Y) & zeroPageMask), false

	case Relative:
		offset := int8(cpu.bus.Read(cpu.PC + 1))
		oldPC := cpu.PC + 2
		newPC := uint16(int32(oldPC) + int32(offset))
		cpu.PC = oldPC
		return newPC, (oldPC & pageMask) != (newPC & pageMask)

	case Absolute:
		address := cpu.readWord(cpu.PC + 1)
		cpu.PC += 3
		return address, false

	case AbsoluteX:
		base := cpu.readWord(cpu.PC + 1)
		address := base + uint16(cpu.X)
		cpu.PC += 3
		return address, (base & pageMask) != (address & pageMask)

	case AbsoluteY:
		base := cpu.readWord(cpu.PC + 1)
		address := base + uint16(cpu.Y)
		cpu.PC += 3
		return address, (base & pageMask) != (address & pageMask)

	case Indirect: // JMP (ind) only; reproduces the page-wrap bug.
		ptr := cpu.readWord(cpu.PC + 1)
		cpu.PC += 3
		if ptr&zeroPageMask == zeroPageMask {
			low := uint16(cpu.bus.Read(ptr))
			high := uint16(cpu.bus.Read(ptr & pageMask))
			return (high << 8) | low, false
		}
		return cpu.readWord(ptr), false

	case IndexedIndirect:
		base := cpu.bus.Read(cpu.PC + 1)
		cpu.PC += 2
		ptr := uint16((base + cpu.X) & zeroPageMask)
		low := uint16(cpu.bus.Read(ptr))
		high := uint16(cpu.bus.Read((ptr + 1) & zeroPageMask))
		return (high << 8) | low, false

	case IndirectIndexed:
		ptr := uint16(cpu.bus.Read(cpu.PC + 1))
		cpu.PC += 2
		low := uint16(cpu.bus.Read(ptr))
		high := uint16(cpu.bus.Read((ptr + 1) & zeroPageMask))
		base := (high << 8) | low
		address := base + uint16(cpu.Y)
		return address, (base & pageMask) != (address & pageMask)

	default:
		return 0, false
	}
}

func (cpu *CPU) readWord(address uint16) uint16 {
	low := uint16(cpu.bus.Read(address))
	high := uint16(cpu.bus.Read(address + 1))
	return (high << 8) | low
}

func (cpu *CPU) push(value uint8) {
	cpu.bus.Write(stackBase+uint16(cpu.SP), value)
	cpu.SP--
}

func (cpu *CPU) pop() uint8 {
	cpu.SP++
	return cpu.bus.Read(stackBase + uint16(cpu.SP))
}

func (cpu *CPU) pushWord(value uint16) {
	cpu.push(uint8(value >> 8))
	cpu.push(uint8(value & 0xFF))
}

func (cpu *CPU) popWord() uint16 {
	low := uint16(cpu.pop())
	high := uint16(cpu.pop())
	return (high << 8) | low
}

func (cpu *CPU) setZN(value uint8) {
	cpu.Z = value == 0
	cpu.N = value&nFlagMask != 0
}

// Status packs the flag bools into a status byte. Bit 5 (unused) is always 1.
func (cpu *CPU) Status() uint8 {
	var s uint8
	if cpu.N {
		s |= nFlagMask
	}
	if cpu.V {
		s |= vFlagMask
	}
	s |= unusedMask
	if cpu.B {
		s |= bFlagMask
	}
	if cpu.D {
		s |= dFlagMask
	}
	if cpu.I {
		s |= iFlagMask
	}
	if cpu.Z {
		s |= zFlagMask
	}
	if cpu.C {
		s |= cFlagMask
	}
	return s
}

// SetStatus unpacks a status byte into the flag bools.
func (cpu *CPU) SetStatus(status uint8) {
	cpu.N = status&nFlagMask != 0
	cpu.V = status&vFlagMask != 0
	cpu.B = status&bFlagMask != 0
	cpu.D = status&dFlagMask != 0
	cpu.I = status&iFlagMask != 0
	cpu.Z = status&zFlagMask != 0
	cpu.C = status&cFlagMask != 0
}

// nmiEntryCycles is the cost of taking an NMI, charged in Step: push PC,
// push status, and vector through $FFFA/$FFFB. BRK's entry cost is instead
// folded into its own opcode's base cycle count, since BRK is dispatched as
// a normal instruction rather than polled like NMI.
const nmiEntryCycles = 2

// enterInterrupt pushes PC and status and vectors to the given address. It
// does not itself charge cycles: the NMI path in Step charges nmiEntryCycles
// directly, and BRK's cost already lives in its instruction table entry, so
// charging cycles here would double-count one or the other. brk marks
// whether the B flag should read as set in the pushed status (BRK/PHP) or
// clear (NMI/IRQ).
func (cpu *CPU) enterInterrupt(vector uint16, brk bool) {
	cpu.pushWord(cpu.PC)
	status := cpu.Status() &^ uint8(bFlagMask)
	if brk {
		status |= bFlagMask
	}
	cpu.push(status)
	cpu.I = true
	cpu.PC = cpu.readWord(vector)
}
