package cpu

// execute dispatches a decoded opcode to its handler and returns any extra
// cycles beyond the instruction's base cycle count (branch-taken, DCP-style
// read-modify-write costs are already folded into the table's base cycles).
func (cpu *CPU) execute(opcode uint8, address uint16, pageCrossed bool) uint8 {
	switch opcode {
	case 0xA9, 0xA5, 0xB5, 0xAD, 0xBD, 0xB9, 0xA1, 0xB1:
		return cpu.lda(address)
	case 0xA2, 0xA6, 0xB6, 0xAE, 0xBE:
		return cpu.ldx(address)
	case 0xA0, 0xA4, 0xB4, 0xAC, 0xBC:
		return cpu.ldy(address)
	case 0x85, 0x95, 0x8D, 0x9D, 0x99, 0x81, 0x91:
		return cpu.sta(address)
	case 0x86, 0x96, 0x8E:
		return cpu.stx(address)
	case 0x84, 0x94, 0x8C:
		return cpu.sty(address)

	case 0x69, 0x65, 0x75, 0x6D, 0x7D, 0x79, 0x61, 0x71:
		return cpu.adc(address)
	case 0xE9, 0xEB, 0xE5, 0xF5, 0xED, 0xFD, 0xF9, 0xE1, 0xF1: // 0xEB unofficial
		return cpu.sbc(address)

	case 0x29, 0x25, 0x35, 0x2D, 0x3D, 0x39, 0x21, 0x31:
		return cpu.and(address)
	case 0x09, 0x05, 0x15, 0x0D, 0x1D, 0x19, 0x01, 0x11:
		return cpu.ora(address)
	case 0x49, 0x45, 0x55, 0x4D, 0x5D, 0x59, 0x41, 0x51:
		return cpu.eor(address)

	case 0x0A:
		cpu.C = cpu.A&0x80 != 0
		cpu.A <<= 1
		cpu.setZN(cpu.A)
		return 0
	case 0x06, 0x16, 0x0E, 0x1E:
		return cpu.asl(address)
	case 0x4A:
		cpu.C = cpu.A&0x01 != 0
		cpu.A >>= 1
		cpu.setZN(cpu.A)
		return 0
	case 0x46, 0x56, 0x4E, 0x5E:
		return cpu.lsr(address)
	case 0x2A:
		carry := cpu.C
		cpu.C = cpu.A&0x80 != 0
		cpu.A <<= 1
		if carry {
			cpu.A |= 0x01
		}
		cpu.setZN(cpu.A)
		return 0
	case 0x26, 0x36, 0x2E, 0x3E:
		return cpu.rol(address)
	case 0x6A:
		carry := cpu.C
		cpu.C = cpu.A&0x01 != 0
		cpu.A >>= 1
		if carry {
			cpu.A |= 0x80
		}
		cpu.setZN(cpu.A)
		return 0
	case 0x66, 0x76, 0x6E, 0x7E:
		return cpu.ror(address)

	case 0xC9, 0xC5, 0xD5, 0xCD, 0xDD, 0xD9, 0xC1, 0xD1:
		return cpu.cmp(address)
	case 0xE0, 0xE4, 0xEC:
		return cpu.cpx(address)
	case 0xC0, 0xC4, 0xCC:
		return cpu.cpy(address)

	case 0xE6, 0xF6, 0xEE, 0xFE:
		return cpu.inc(address)
	case 0xC6, 0xD6, 0xCE, 0xDE:
		return cpu.dec(address)
	case 0xE8:
		cpu.X++
		cpu.setZN(cpu.X)
		return 0
	case 0xCA:
		cpu.X--
		cpu.setZN(cpu.X)
		return 0
	case 0xC8:
		cpu.Y++
		cpu.setZN(cpu.Y)
		return 0
	case 0x88:
		cpu.Y--
		cpu.setZN(cpu.Y)
		return 0

	case 0xAA:
		cpu.X = cpu.A
		cpu.setZN(cpu.X)
		return 0
	case 0x8A:
		cpu.A = cpu.X
		cpu.setZN(cpu.A)
		return 0
	case 0xA8:
		cpu.Y = cpu.A
		cpu.setZN(cpu.Y)
		return 0
	case 0x98:
		cpu.A = cpu.Y
		cpu.setZN(cpu.A)
		return 0
	case 0xBA:
		cpu.X = cpu.SP
		cpu.setZN(cpu.X)
		return 0
	case 0x9A:
		cpu.SP = cpu.X
		return 0

	case 0x48:
		cpu.push(cpu.A)
		return 0
	case 0x68:
		cpu.A = cpu.pop()
		cpu.setZN(cpu.A)
		return 0
	case 0x08:
		cpu.push(cpu.Status() | bFlagMask)
		return 0
	case 0x28:
		cpu.SetStatus(cpu.pop())
		cpu.B = false
		return 0

	case 0x18:
		cpu.C = false
		return 0
	case 0x38:
		cpu.C = true
		return 0
	case 0x58:
		cpu.I = false
		return 0
	case 0x78:
		cpu.I = true
		return 0
	case 0xB8:
		cpu.V = false
		return 0
	case 0xD8:
		cpu.D = false
		return 0
	case 0xF8:
		cpu.D = true
		return 0

	case 0x4C, 0x6C:
		cpu.PC = address
		return 0
	case 0x20:
		cpu.pushWord(cpu.PC - 1)
		cpu.PC = address
		return 0
	case 0x60:
		cpu.PC = cpu.popWord() + 1
		return 0
	case 0x40:
		cpu.SetStatus(cpu.pop())
		cpu.B = false
		cpu.PC = cpu.popWord()
		return 0

	case 0x90:
		return cpu.branch(!cpu.C, address, pageCrossed)
	case 0xB0:
		return cpu.branch(cpu.C, address, pageCrossed)
	case 0xD0:
		return cpu.branch(!cpu.Z, address, pageCrossed)
	case 0xF0:
		return cpu.branch(cpu.Z, address, pageCrossed)
	case 0x10:
		return cpu.branch(!cpu.N, address, pageCrossed)
	case 0x30:
		return cpu.branch(cpu.N, address, pageCrossed)
	case 0x50:
		return cpu.branch(!cpu.V, address, pageCrossed)
	case 0x70:
		return cpu.branch(cpu.V, address, pageCrossed)

	case 0x24, 0x2C:
		return cpu.bit(address)
	case 0x00:
		return cpu.brk()

	case 0xEA, 0x1A, 0x3A, 0x5A, 0x7A, 0xDA, 0xFA,
		0x80, 0x82, 0x89, 0xC2, 0xE2,
		0x04, 0x44, 0x64, 0x14, 0x34, 0x54, 0x74, 0xD4, 0xF4,
		0x0C, 0x1C, 0x3C, 0x5C, 0x7C, 0xDC, 0xFC:
		return 0 // NOP and its unofficial aliases

	case 0xA3, 0xA7, 0xAF, 0xB3, 0xB7, 0xBF:
		return cpu.lax(address)
	case 0x83, 0x87, 0x8F, 0x97:
		cpu.bus.Write(address, cpu.A&cpu.X)
		return 0
	case 0xC3, 0xC7, 0xCF, 0xD3, 0xD7, 0xDF, 0xDB:
		return cpu.dcp(address)
	case 0xE3, 0xE7, 0xEF, 0xF3, 0xF7, 0xFF, 0xFB:
		return cpu.isb(address)
	case 0x03, 0x07, 0x0F, 0x13, 0x17, 0x1F, 0x1B:
		return cpu.slo(address)
	case 0x23, 0x27, 0x2F, 0x33, 0x37, 0x3F, 0x3B:
		return cpu.rla(address)
	case 0x43, 0x47, 0x4F, 0x53, 0x57, 0x5F, 0x5B:
		return cpu.sre(address)
	case 0x63, 0x67, 0x6F, 0x73, 0x77, 0x7F, 0x7B:
		return cpu.rra(address)

	default:
		panic(&UnknownOpcodeError{Opcode: opcode, PC: cpu.PC})
	}
}

func (cpu *CPU) lda(address uint16) uint8 {
	cpu.A = cpu.bus.Read(address)
	cpu.setZN(cpu.A)
	return 0
}

func (cpu *CPU) ldx(address uint16) uint8 {
	cpu.X = cpu.bus.Read(address)
	cpu.setZN(cpu.X)
	return 0
}

func (cpu *CPU) ldy(address uint16) uint8 {
	cpu.Y = cpu.bus.Read(address)
	cpu.setZN(cpu.Y)
	return 0
}

func (cpu *CPU) sta(address uint16) uint8 {
	cpu.bus.Write(address, cpu.A)
	return 0
}

func (cpu *CPU) stx(address uint16) uint8 {
	cpu.bus.Write(address, cpu.X)
	return 0
}

func (cpu *CPU) sty(address uint16) uint8 {
	cpu.bus.Write(address, cpu.Y)
	return 0
}

func (cpu *CPU) adc(address uint16) uint8 {
	value := cpu.bus.Read(address)
	carry := uint16(0)
	if cpu.C {
		carry = 1
	}
	result := uint16(cpu.A) + uint16(value) + carry
	cpu.V = (cpu.A^uint8(result))&0x80 != 0 && (cpu.A^value)&0x80 == 0
	cpu.C = result > 0xFF
	cpu.A = uint8(result)
	cpu.setZN(cpu.A)
	return 0
}

func (cpu *CPU) sbc(address uint16) uint8 {
	value := cpu.bus.Read(address) ^ 0xFF
	carry := uint16(0)
	if cpu.C {
		carry = 1
	}
	result := uint16(cpu.A) + uint16(value) + carry
	cpu.V = (cpu.A^uint8(result))&0x80 != 0 && (cpu.A^value)&0x80 == 0
	cpu.C = result > 0xFF
	cpu.A = uint8(result)
	cpu.setZN(cpu.A)
	return 0
}

func (cpu *CPU) and(address uint16) uint8 {
	cpu.A &= cpu.bus.Read(address)
	cpu.setZN(cpu.A)
	return 0
}

func (cpu *CPU) ora(address uint16) uint8 {
	cpu.A |= cpu.bus.Read(address)
	cpu.setZN(cpu.A)
	return 0
}

func (cpu *CPU) eor(address uint16) uint8 {
	cpu.A ^= cpu.bus.Read(address)
	cpu.setZN(cpu.A)
	return 0
}

func (cpu *CPU) asl(address uint16) uint8 {
	value := cpu.bus.Read(address)
	cpu.C = value&0x80 != 0
	value <<= 1
	cpu.bus.Write(address, value)
	cpu.setZN(value)
	return 0
}

func (cpu *CPU) lsr(address uint16) uint8 {
	value := cpu.bus.Read(address)
	cpu.C = value&0x01 != 0
	value >>= 1
	cpu.bus.Write(address, value)
	cpu.setZN(value)
	return 0
}

func (cpu *CPU) rol(address uint16) uint8 {
	value := cpu.bus.Read(address)
	carry := cpu.C
	cpu.C = value&0x80 != 0
	value <<= 1
	if carry {
		value |= 0x01
	}
	cpu.bus.Write(address, value)
	cpu.setZN(value)
	return 0
}

func (cpu *CPU) ror(address uint16) uint8 {
	value := cpu.bus.Read(address)
	carry := cpu.C
	cpu.C = value&0x01 != 0
	value >>= 1
	if carry {
		value |= 0x80
	}
	cpu.bus.Write(address, value)
	cpu.setZN(value)
	return 0
}

func (cpu *CPU) cmp(address uint16) uint8 {
	value := cpu.bus.Read(address)
	cpu.C = cpu.A >= value
	cpu.setZN(cpu.A - value)
	return 0
}

func (cpu *CPU) cpx(address uint16) uint8 {
	value := cpu.bus.Read(address)
	cpu.C = cpu.X >= value
	cpu.setZN(cpu.X - value)
	return 0
}

func (cpu *CPU) cpy(address uint16) uint8 {
	value := cpu.bus.Read(address)
	cpu.C = cpu.Y >= value
	cpu.setZN(cpu.Y - value)
	return 0
}

func (cpu *CPU) inc(address uint16) uint8 {
	value := cpu.bus.Read(address) + 1
	cpu.bus.Write(address, value)
	cpu.setZN(value)
	return 0
}

func (cpu *CPU) dec(address uint16) uint8 {
	value := cpu.bus.Read(address) - 1
	cpu.bus.Write(address, value)
	cpu.setZN(value)
	return 0
}

func (cpu *CPU) branch(take bool, address uint16, pageCrossed bool) uint8 {
	if !take {
		return 0
	}
	cpu.PC = address
	if pageCrossed {
		return 2
	}
	return 1
}

func (cpu *CPU) bit(address uint16) uint8 {
	value := cpu.bus.Read(address)
	cpu.N = value&nFlagMask != 0
	cpu.V = value&vFlagMask != 0
	cpu.Z = cpu.A&value == 0
	return 0
}

// brk pushes PC+2 and the status with B set, then vectors through $FFFE.
// Its entry cost is the instruction's own base cycle count (7), charged by
// Step from the decode table, so brk charges nothing extra here.
func (cpu *CPU) brk() uint8 {
	cpu.PC++ // the padding byte after the BRK opcode
	cpu.enterInterrupt(irqVector, true)
	return 0
}

// --- Unofficial (undocumented) opcodes ---

func (cpu *CPU) lax(address uint16) uint8 {
	cpu.A = cpu.bus.Read(address)
	cpu.X = cpu.A
	cpu.setZN(cpu.A)
	return 0
}

func (cpu *CPU) dcp(address uint16) uint8 {
	value := cpu.bus.Read(address) - 1
	cpu.bus.Write(address, value)
	cpu.C = cpu.A >= value
	cpu.setZN(cpu.A - value)
	return 0
}

func (cpu *CPU) isb(address uint16) uint8 {
	value := cpu.bus.Read(address) + 1
	cpu.bus.Write(address, value)
	cpu.sbc(address)
	return 0
}

func (cpu *CPU) slo(address uint16) uint8 {
	value := cpu.bus.Read(address)
	cpu.C = value&0x80 != 0
	value <<= 1
	cpu.bus.Write(address, value)
	cpu.A |= value
	cpu.setZN(cpu.A)
	return 0
}

func (cpu *CPU) rla(address uint16) uint8 {
	value := cpu.bus.Read(address)
	carry := cpu.C
	cpu.C = value&0x80 != 0
	value <<= 1
	if carry {
		value |= 0x01
	}
	cpu.bus.Write(address, value)
	cpu.A &= value
	cpu.setZN(cpu.A)
	return 0
}

func (cpu *CPU) sre(address uint16) uint8 {
	value := cpu.bus.Read(address)
	cpu.C = value&0x01 != 0
	value >>= 1
	cpu.bus.Write(address, value)
	cpu.A ^= value
	cpu.setZN(cpu.A)
	return 0
}

func (cpu *CPU) rra(address uint16) uint8 {
	value := cpu.bus.Read(address)
	carry := cpu.C
	cpu.C = value&0x01 != 0
	value >>= 1
	if carry {
		value |= 0x80
	}
	cpu.bus.Write(address, value)
	cpu.adc(address)
	return 0
}
