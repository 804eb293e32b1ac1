package cpu

// initInstructions builds the flat opcode -> decode table. Entries left nil
// are opcodes with no defined behavior in this emulator; Step panics with
// UnknownOpcodeError if one is fetched.
func (cpu *CPU) initInstructions() {
	t := &cpu.instructions

	t[0xA9] = &Instruction{"LDA", 2, 2, Immediate}
	t[0xA5] = &Instruction{"LDA", 2, 3, ZeroPage}
	t[0xB5] = &Instruction{"LDA", 2, 4, ZeroPageX}
	t[0xAD] = &Instruction{"LDA", 3, 4, Absolute}
	t[0xBD] = &Instruction{"LDA", 3, 4, AbsoluteX}
	t[0xB9] = &Instruction{"LDA", 3, 4, AbsoluteY}
	t[0xA1] = &Instruction{"LDA", 2, 6, IndexedIndirect}
	t[0xB1] = &Instruction{"LDA", 2, 5, IndirectIndexed}

	t[0xA2] = &Instruction{"LDX", 2, 2, Immediate}
	t[0xA6] = &Instruction{"LDX", 2, 3, ZeroPage}
	t[0xB6] = &Instruction{"LDX", 2, 4, ZeroPageY}
	t[0xAE] = &Instruction{"LDX", 3, 4, Absolute}
	t[0xBE] = &Instruction{"LDX", 3, 4, AbsoluteY}

	t[0xA0] = &Instruction{"LDY", 2, 2, Immediate}
	t[0xA4] = &Instruction{"LDY", 2, 3, ZeroPage}
	t[0xB4] = &Instruction{"LDY", 2, 4, ZeroPageX}
	t[0xAC] = &Instruction{"LDY", 3, 4, Absolute}
	t[0xBC] = &Instruction{"LDY", 3, 4, AbsoluteX}

	t[0x85] = &Instruction{"STA", 2, 3, ZeroPage}
	t[0x95] = &Instruction{"STA", 2, 4, ZeroPageX}
	t[0x8D] = &Instruction{"STA", 3, 4, Absolute}
	t[0x9D] = &Instruction{"STA", 3, 5, AbsoluteX}
	t[0x99] = &Instruction{"STA", 3, 5, AbsoluteY}
	t[0x81] = &Instruction{"STA", 2, 6, IndexedIndirect}
	t[0x91] = &Instruction{"STA", 2, 6, IndirectIndexed}

	t[0x86] = &Instruction{"STX", 2, 3, ZeroPage}
	t[0x96] = &Instruction{"STX", 2, 4, ZeroPageY}
	t[0x8E] = &Instruction{"STX", 3, 4, Absolute}

	t[0x84] = &Instruction{"STY", 2, 3, ZeroPage}
	t[0x94] = &Instruction{"STY", 2, 4, ZeroPageX}
	t[0x8C] = &Instruction{"STY", 3, 4, Absolute}

	t[0x69] = &Instruction{"ADC", 2, 2, Immediate}
	t[0x65] = &Instruction{"ADC", 2, 3, ZeroPage}
	t[0x75] = &Instruction{"ADC", 2, 4, ZeroPageX}
	t[0x6D] = &Instruction{"ADC", 3, 4, Absolute}
	t[0x7D] = &Instruction{"ADC", 3, 4, AbsoluteX}
	t[0x79] = &Instruction{"ADC", 3, 4, AbsoluteY}
	t[0x61] = &Instruction{"ADC", 2, 6, IndexedIndirect}
	t[0x71] = &Instruction{"ADC", 2, 5, IndirectIndexed}

	t[0xE9] = &Instruction{"SBC", 2, 2, Immediate}
	t[0xE5] = &Instruction{"SBC", 2, 3, ZeroPage}
	t[0xF5] = &Instruction{"SBC", 2, 4, ZeroPageX}
	t[0xED] = &Instruction{"SBC", 3, 4, Absolute}
	t[0xFD] = &Instruction{"SBC", 3, 4, AbsoluteX}
	t[0xF9] = &Instruction{"SBC", 3, 4, AbsoluteY}
	t[0xE1] = &Instruction{"SBC", 2, 6, IndexedIndirect}
	t[0xF1] = &Instruction{"SBC", 2, 5, IndirectIndexed}

	t[0x29] = &Instruction{"AND", 2, 2, Immediate}
	t[0x25] = &Instruction{"AND", 2, 3, ZeroPage}
	t[0x35] = &Instruction{"AND", 2, 4, ZeroPageX}
	t[0x2D] = &Instruction{"AND", 3, 4, Absolute}
	t[0x3D] = &Instruction{"AND", 3, 4, AbsoluteX}
	t[0x39] = &Instruction{"AND", 3, 4, AbsoluteY}
	t[0x21] = &Instruction{"AND", 2, 6, IndexedIndirect}
	t[0x31] = &Instruction{"AND", 2, 5, IndirectIndexed}

	t[0x09] = &Instruction{"ORA", 2, 2, Immediate}
	t[0x05] = &Instruction{"ORA", 2, 3, ZeroPage}
	t[0x15] = &Instruction{"ORA", 2, 4, ZeroPageX}
	t[0x0D] = &Instruction{"ORA", 3, 4, Absolute}
	t[0x1D] = &Instruction{"ORA", 3, 4, AbsoluteX}
	t[0x19] = &Instruction{"ORA", 3, 4, AbsoluteY}
	t[0x01] = &Instruction{"ORA", 2, 6, IndexedIndirect}
	t[0x11] = &Instruction{"ORA", 2, 5, IndirectIndexed}

	t[0x49] = &Instruction{"EOR", 2, 2, Immediate}
	t[0x45] = &Instruction{"EOR", 2, 3, ZeroPage}
	t[0x55] = &Instruction{"EOR", 2, 4, ZeroPageX}
	t[0x4D] = &Instruction{"EOR", 3, 4, Absolute}
	t[0x5D] = &Instruction{"EOR", 3, 4, AbsoluteX}
	t[0x59] = &Instruction{"EOR", 3, 4, AbsoluteY}
	t[0x41] = &Instruction{"EOR", 2, 6, IndexedIndirect}
	t[0x51] = &Instruction{"EOR", 2, 5, IndirectIndexed}

	t[0x0A] = &Instruction{"ASL", 1, 2, Accumulator}
	t[0x06] = &Instruction{"ASL", 2, 5, ZeroPage}
	t[0x16] = &Instruction{"ASL", 2, 6, ZeroPageX}
	t[0x0E] = &Instruction{"ASL", 3, 6, Absolute}
	t[0x1E] = &Instruction{"ASL", 3, 7, AbsoluteX}

	t[0x4A] = &Instruction{"LSR", 1, 2, Accumulator}
	t[0x46] = &Instruction{"LSR", 2, 5, ZeroPage}
	t[0x56] = &Instruction{"LSR", 2, 6, ZeroPageX}
	t[0x4E] = &Instruction{"LSR", 3, 6, Absolute}
	t[0x5E] = &Instruction{"LSR", 3, 7, AbsoluteX}

	t[0x2A] = &Instruction{"ROL", 1, 2, Accumulator}
	t[0x26] = &Instruction{"ROL", 2, 5, ZeroPage}
	t[0x36] = &Instruction{"ROL", 2, 6, ZeroPageX}
	t[0x2E] = &Instruction{"ROL", 3, 6, Absolute}
	t[0x3E] = &Instruction{"ROL", 3, 7, AbsoluteX}

	t[0x6A] = &Instruction{"ROR", 1, 2, Accumulator}
	t[0x66] = &Instruction{"ROR", 2, 5, ZeroPage}
	t[0x76] = &Instruction{"ROR", 2, 6, ZeroPageX}
	t[0x6E] = &Instruction{"ROR", 3, 6, Absolute}
	t[0x7E] = &Instruction{"ROR", 3, 7, AbsoluteX}

	t[0xC9] = &Instruction{"CMP", 2, 2, Immediate}
	t[0xC5] = &Instruction{"CMP", 2, 3, ZeroPage}
	t[0xD5] = &Instruction{"CMP", 2, 4, ZeroPageX}
	t[0xCD] = &Instruction{"CMP", 3, 4, Absolute}
	t[0xDD] = &Instruction{"CMP", 3, 4, AbsoluteX}
	t[0xD9] = &Instruction{"CMP", 3, 4, AbsoluteY}
	t[0xC1] = &Instruction{"CMP", 2, 6, IndexedIndirect}
	t[0xD1] = &Instruction{"CMP", 2, 5, IndirectIndexed}

	t[0xE0] = &Instruction{"CPX", 2, 2, Immediate}
	t[0xE4] = &Instruction{"CPX", 2, 3, ZeroPage}
	t[0xEC] = &Instruction{"CPX", 3, 4, Absolute}

	t[0xC0] = &Instruction{"CPY", 2, 2, Immediate}
	t[0xC4] = &Instruction{"CPY", 2, 3, ZeroPage}
	t[0xCC] = &Instruction{"CPY", 3, 4, Absolute}

	t[0xE6] = &Instruction{"INC", 2, 5, ZeroPage}
	t[0xF6] = &Instruction{"INC", 2, 6, ZeroPageX}
	t[0xEE] = &Instruction{"INC", 3, 6, Absolute}
	t[0xFE] = &Instruction{"INC", 3, 7, AbsoluteX}

	t[0xC6] = &Instruction{"DEC", 2, 5, ZeroPage}
	t[0xD6] = &Instruction{"DEC", 2, 6, ZeroPageX}
	t[0xCE] = &Instruction{"DEC", 3, 6, Absolute}
	t[0xDE] = &Instruction{"DEC", 3, 7, AbsoluteX}

	t[0xE8] = &Instruction{"INX", 1, 2, Implied}
	t[0xCA] = &Instruction{"DEX", 1, 2, Implied}
	t[0xC8] = &Instruction{"INY", 1, 2, Implied}
	t[0x88] = &Instruction{"DEY", 1, 2, Implied}

	t[0xAA] = &Instruction{"TAX", 1, 2, Implied}
	t[0x8A] = &Instruction{"TXA", 1, 2, Implied}
	t[0xA8] = &Instruction{"TAY", 1, 2, Implied}
	t[0x98] = &Instruction{"TYA", 1, 2, Implied}
	t[0xBA] = &Instruction{"TSX", 1, 2, Implied}
	t[0x9A] = &Instruction{"TXS", 1, 2, Implied}

	t[0x48] = &Instruction{"PHA", 1, 3, Implied}
	t[0x68] = &Instruction{"PLA", 1, 4, Implied}
	t[0x08] = &Instruction{"PHP", 1, 3, Implied}
	t[0x28] = &Instruction{"PLP", 1, 4, Implied}

	t[0x18] = &Instruction{"CLC", 1, 2, Implied}
	t[0x38] = &Instruction{"SEC", 1, 2, Implied}
	t[0x58] = &Instruction{"CLI", 1, 2, Implied}
	t[0x78] = &Instruction{"SEI", 1, 2, Implied}
	t[0xB8] = &Instruction{"CLV", 1, 2, Implied}
	t[0xD8] = &Instruction{"CLD", 1, 2, Implied}
	t[0xF8] = &Instruction{"SED", 1, 2, Implied}

	t[0x4C] = &Instruction{"JMP", 3, 3, Absolute}
	t[0x6C] = &Instruction{"JMP", 3, 5, Indirect}
	t[0x20] = &Instruction{"JSR", 3, 6, Absolute}
	t[0x60] = &Instruction{"RTS", 1, 6, Implied}
	t[0x40] = &Instruction{"RTI", 1, 6, Implied}

	t[0x90] = &Instruction{"BCC", 2, 2, Relative}
	t[0xB0] = &Instruction{"BCS", 2, 2, Relative}
	t[0xD0] = &Instruction{"BNE", 2, 2, Relative}
	t[0xF0] = &Instruction{"BEQ", 2, 2, Relative}
	t[0x10] = &Instruction{"BPL", 2, 2, Relative}
	t[0x30] = &Instruction{"BMI", 2, 2, Relative}
	t[0x50] = &Instruction{"BVC", 2, 2, Relative}
	t[0x70] = &Instruction{"BVS", 2, 2, Relative}

	t[0x24] = &Instruction{"BIT", 2, 3, ZeroPage}
	t[0x2C] = &Instruction{"BIT", 3, 4, Absolute}
	t[0xEA] = &Instruction{"NOP", 1, 2, Implied}
	t[0x00] = &Instruction{"BRK", 1, 7, Implied}

	// Unofficial NOP aliases.
	for _, op := range []uint8{0x1A, 0x3A, 0x5A, 0x7A, 0xDA, 0xFA} {
		t[op] = &Instruction{"NOP", 1, 2, Implied}
	}
	for _, op := range []uint8{0x80, 0x82, 0x89, 0xC2, 0xE2} {
		t[op] = &Instruction{"NOP", 2, 2, Immediate}
	}
	for _, op := range []uint8{0x04, 0x44, 0x64} {
		t[op] = &Instruction{"NOP", 2, 3, ZeroPage}
	}
	for _, op := range []uint8{0x14, 0x34, 0x54, 0x74, 0xD4, 0xF4} {
		t[op] = &Instruction{"NOP", 2, 4, ZeroPageX}
	}
	t[0x0C] = &Instruction{"NOP", 3, 4, Absolute}
	for _, op := range []uint8{0x1C, 0x3C, 0x5C, 0x7C, 0xDC, 0xFC} {
		t[op] = &Instruction{"NOP", 3, 4, AbsoluteX}
	}

	t[0xA3] = &Instruction{"LAX", 2, 6, IndexedIndirect}
	t[0xA7] = &Instruction{"LAX", 2, 3, ZeroPage}
	t[0xAF] = &Instruction{"LAX", 3, 4, Absolute}
	t[0xB3] = &Instruction{"LAX", 2, 5, IndirectIndexed}
	t[0xB7] = &Instruction{"LAX", 2, 4, ZeroPageY}
	t[0xBF] = &Instruction{"LAX", 3, 4, AbsoluteY}

	t[0x83] = &Instruction{"SAX", 2, 6, IndexedIndirect}
	t[0x87] = &Instruction{"SAX", 2, 3, ZeroPage}
	t[0x8F] = &Instruction{"SAX", 3, 4, Absolute}
	t[0x97] = &Instruction{"SAX", 2, 4, ZeroPageY}

	t[0xEB] = &Instruction{"SBC", 2, 2, Immediate}

	t[0xC3] = &Instruction{"DCP", 2, 8, IndexedIndirect}
	t[0xC7] = &Instruction{"DCP", 2, 5, ZeroPage}
	t[0xCF] = &Instruction{"DCP", 3, 6, Absolute}
	t[0xD3] = &Instruction{"DCP", 2, 8, IndirectIndexed}
	t[0xD7] = &Instruction{"DCP", 2, 6, ZeroPageX}
	t[0xDB] = &Instruction{"DCP", 3, 7, AbsoluteY}
	t[0xDF] = &Instruction{"DCP", 3, 7, AbsoluteX}

	t[0xE3] = &Instruction{"ISB", 2, 8, IndexedIndirect}
	t[0xE7] = &Instruction{"ISB", 2, 5, ZeroPage}
	t[0xEF] = &Instruction{"ISB", 3, 6, Absolute}
	t[0xF3] = &Instruction{"ISB", 2, 8, IndirectIndexed}
	t[0xF7] = &Instruction{"ISB", 2, 6, ZeroPageX}
	t[0xFB] = &Instruction{"ISB", 3, 7, AbsoluteY}
	t[0xFF] = &Instruction{"ISB", 3, 7, AbsoluteX}

	t[0x03] = &Instruction{"SLO", 2, 8, IndexedIndirect}
	t[0x07] = &Instruction{"SLO", 2, 5, ZeroPage}
	t[0x0F] = &Instruction{"SLO", 3, 6, Absolute}
	t[0x13] = &Instruction{"SLO", 2, 8, IndirectIndexed}
	t[0x17] = &Instruction{"SLO", 2, 6, ZeroPageX}
	t[0x1B] = &Instruction{"SLO", 3, 7, AbsoluteY}
	t[0x1F] = &Instruction{"SLO", 3, 7, AbsoluteX}

	t[0x23] = &Instruction{"RLA", 2, 8, IndexedIndirect}
	t[0x27] = &Instruction{"RLA", 2, 5, ZeroPage}
	t[0x2F] = &Instruction{"RLA", 3, 6, Absolute}
	t[0x33] = &Instruction{"RLA", 2, 8, IndirectIndexed}
	t[0x37] = &Instruction{"RLA", 2, 6, ZeroPageX}
	t[0x3B] = &Instruction{"RLA", 3, 7, AbsoluteY}
	t[0x3F] = &Instruction{"RLA", 3, 7, AbsoluteX}

	t[0x43] = &Instruction{"SRE", 2, 8, IndexedIndirect}
	t[0x47] = &Instruction{"SRE", 2, 5, ZeroPage}
	t[0x4F] = &Instruction{"SRE", 3, 6, Absolute}
	t[0x53] = &Instruction{"SRE", 2, 8, IndirectIndexed}
	t[0x57] = &Instruction{"SRE", 2, 6, ZeroPageX}
	t[0x5B] = &Instruction{"SRE", 3, 7, AbsoluteY}
	t[0x5F] = &Instruction{"SRE", 3, 7, AbsoluteX}

	t[0x63] = &Instruction{"RRA", 2, 8, IndexedIndirect}
	t[0x67] = &Instruction{"RRA", 2, 5, ZeroPage}
	t[0x6F] = &Instruction{"RRA", 3, 6, Absolute}
	t[0x73] = &Instruction{"RRA", 2, 8, IndirectIndexed}
	t[0x77] = &Instruction{"RRA", 2, 6, ZeroPageX}
	t[0x7B] = &Instruction{"RRA", 3, 7, AbsoluteY}
	t[0x7F] = &Instruction{"RRA", 3, 7, AbsoluteX}
}

// Instruction looks up the decode table entry for opcode, or nil.
func (cpu *CPU) Instruction(opcode uint8) *Instruction {
	return cpu.instructions[opcode]
}
