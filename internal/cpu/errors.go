package cpu

import "fmt"

// UnknownOpcodeError is raised by Step when the opcode table has no entry.
// The 6502 has no trap mechanism for this, so it is fatal by contract: the
// caller is expected to let it propagate to the top of the program.
type UnknownOpcodeError struct {
	Opcode uint8
	PC     uint16
}

func (e *UnknownOpcodeError) Error() string {
	return fmt.Sprintf("cpu: unknown opcode $%02X at $%04X", e.Opcode, e.PC)
}
