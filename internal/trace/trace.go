// Package trace formats single-instruction disassembly lines compatible
// with the nestest golden log, for comparing this emulator's execution
// against known-good CPU traces.
package trace

import (
	"fmt"
	"strings"

	"github.com/SyedAsadK/rnes/internal/cpu"
)

// Reader is the minimal peek surface the formatter needs: the opcode and
// operand bytes starting at the CPU's current PC.
type Reader interface {
	Read(address uint16) uint8
}

// Line renders the instruction at c.PC as a single fixed-width, uppercase
// line: PC, raw opcode bytes, mnemonic and operand, then register state.
// Unknown opcodes render as "???" with no operand.
func Line(c *cpu.CPU, mem Reader) string {
	pc := c.PC
	opcode := mem.Read(pc)
	instr := c.Instruction(opcode)

	name := "???"
	length := uint8(1)
	if instr != nil {
		name = instr.Name
		length = instr.Bytes
	}

	raw := make([]uint8, length)
	raw[0] = opcode
	for i := uint8(1); i < length; i++ {
		raw[i] = mem.Read(pc + uint16(i))
	}

	mnemonic := name
	if instr != nil {
		if operand := formatOperand(instr.Mode, pc, raw); operand != "" {
			mnemonic = name + " " + operand
		}
	}

	byteFields := make([]string, len(raw))
	for i, b := range raw {
		byteFields[i] = fmt.Sprintf("%02X", b)
	}

	line := fmt.Sprintf("%04X  %-10s%-32sA:%02X X:%02X Y:%02X P:%02X SP:%02X",
		pc, strings.Join(byteFields, " "), mnemonic, c.A, c.X, c.Y, c.Status(), c.SP)
	return strings.ToUpper(line)
}

// formatOperand renders raw[1:] per addressing mode. raw[0] is the opcode.
func formatOperand(mode cpu.AddressingMode, pc uint16, raw []uint8) string {
	switch mode {
	case cpu.Implied:
		return ""
	case cpu.Accumulator:
		return "A"
	case cpu.Immediate:
		return fmt.Sprintf("#$%02X", raw[1])
	case cpu.ZeroPage:
		return fmt.Sprintf("$%02X", raw[1])
	case cpu.ZeroPageX:
		return fmt.Sprintf("$%02X,X", raw[1])
	case cpu.ZeroPageY:
		return fmt.Sprintf("$%02X,Y", raw[1])
	case cpu.Relative:
		target := uint16(int32(pc+2) + int32(int8(raw[1])))
		return fmt.Sprintf("$%04X", target)
	case cpu.Absolute:
		return fmt.Sprintf("$%04X", word(raw))
	case cpu.AbsoluteX:
		return fmt.Sprintf("$%04X,X", word(raw))
	case cpu.AbsoluteY:
		return fmt.Sprintf("$%04X,Y", word(raw))
	case cpu.Indirect:
		return fmt.Sprintf("($%04X)", word(raw))
	case cpu.IndexedIndirect:
		return fmt.Sprintf("($%02X,X)", raw[1])
	case cpu.IndirectIndexed:
		return fmt.Sprintf("($%02X),Y", raw[1])
	default:
		return ""
	}
}

func word(raw []uint8) uint16 {
	return uint16(raw[1]) | uint16(raw[2])<<8
}
