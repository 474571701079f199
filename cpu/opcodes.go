package cpu

// instruction is one entry in the 256-slot opcode dispatch table. Slots
// with no legal 6502 encoding are left nil; Step treats fetching one as
// an UnknownOpcode fault.
type instruction struct {
	mnemonic         string
	mode             addressingMode
	size             uint16
	cycles           int
	pageCrossPenalty bool // AbsoluteX/AbsoluteY/IndirectY read instructions only.
	branch           bool // relative-branch instructions: +1 taken, +1 more on page cross.
	execute          func(c *CPU, mode addressingMode, r resolved) bool
}

var sizeByMode = map[addressingMode]uint16{
	implicit: 1, accumulator: 1, immediate: 2,
	zeroPage: 2, zeroPageX: 2, zeroPageY: 2,
	relative: 2, absolute: 3, absoluteX: 3, absoluteY: 3,
	indirect: 3, indirectX: 2, indirectY: 2,
}

var table [256]*instruction

func def(opcode byte, mnemonic string, mode addressingMode, cycles int, pageCrossPenalty bool, exec func(c *CPU, mode addressingMode, r resolved) bool) {
	table[opcode] = &instruction{
		mnemonic:         mnemonic,
		mode:             mode,
		size:             sizeByMode[mode],
		cycles:           cycles,
		pageCrossPenalty: pageCrossPenalty,
		execute:          exec,
	}
}

func defBranch(opcode byte, mnemonic string, exec func(c *CPU, mode addressingMode, r resolved) bool) {
	table[opcode] = &instruction{
		mnemonic: mnemonic,
		mode:     relative,
		size:     sizeByMode[relative],
		cycles:   2,
		branch:   true,
		execute:  exec,
	}
}

func init() {
	def(0x00, "BRK", implicit, 7, false, opBRK)
	table[0x00].size = 2 // opcode plus the ignored padding byte.
	def(0x01, "ORA", indirectX, 6, false, opORA)
	def(0x05, "ORA", zeroPage, 3, false, opORA)
	def(0x06, "ASL", zeroPage, 5, false, opASL)
	def(0x08, "PHP", implicit, 3, false, opPHP)
	def(0x09, "ORA", immediate, 2, false, opORA)
	def(0x0A, "ASL", accumulator, 2, false, opASL)
	def(0x0D, "ORA", absolute, 4, false, opORA)
	def(0x0E, "ASL", absolute, 6, false, opASL)
	defBranch(0x10, "BPL", opBPL)
	def(0x11, "ORA", indirectY, 5, true, opORA)
	def(0x15, "ORA", zeroPageX, 4, false, opORA)
	def(0x16, "ASL", zeroPageX, 6, false, opASL)
	def(0x18, "CLC", implicit, 2, false, opCLC)
	def(0x19, "ORA", absoluteY, 4, true, opORA)
	def(0x1D, "ORA", absoluteX, 4, true, opORA)
	def(0x1E, "ASL", absoluteX, 7, false, opASL)

	def(0x20, "JSR", absolute, 6, false, opJSR)
	def(0x21, "AND", indirectX, 6, false, opAND)
	def(0x24, "BIT", zeroPage, 3, false, opBIT)
	def(0x25, "AND", zeroPage, 3, false, opAND)
	def(0x26, "ROL", zeroPage, 5, false, opROL)
	def(0x28, "PLP", implicit, 4, false, opPLP)
	def(0x29, "AND", immediate, 2, false, opAND)
	def(0x2A, "ROL", accumulator, 2, false, opROL)
	def(0x2C, "BIT", absolute, 4, false, opBIT)
	def(0x2D, "AND", absolute, 4, false, opAND)
	def(0x2E, "ROL", absolute, 6, false, opROL)
	defBranch(0x30, "BMI", opBMI)
	def(0x31, "AND", indirectY, 5, true, opAND)
	def(0x35, "AND", zeroPageX, 4, false, opAND)
	def(0x36, "ROL", zeroPageX, 6, false, opROL)
	def(0x38, "SEC", implicit, 2, false, opSEC)
	def(0x39, "AND", absoluteY, 4, true, opAND)
	def(0x3D, "AND", absoluteX, 4, true, opAND)
	def(0x3E, "ROL", absoluteX, 7, false, opROL)

	def(0x40, "RTI", implicit, 6, false, opRTI)
	def(0x41, "EOR", indirectX, 6, false, opEOR)
	def(0x45, "EOR", zeroPage, 3, false, opEOR)
	def(0x46, "LSR", zeroPage, 5, false, opLSR)
	def(0x48, "PHA", implicit, 3, false, opPHA)
	def(0x49, "EOR", immediate, 2, false, opEOR)
	def(0x4A, "LSR", accumulator, 2, false, opLSR)
	def(0x4C, "JMP", absolute, 3, false, opJMP)
	def(0x4D, "EOR", absolute, 4, false, opEOR)
	def(0x4E, "LSR", absolute, 6, false, opLSR)
	defBranch(0x50, "BVC", opBVC)
	def(0x51, "EOR", indirectY, 5, true, opEOR)
	def(0x55, "EOR", zeroPageX, 4, false, opEOR)
	def(0x56, "LSR", zeroPageX, 6, false, opLSR)
	def(0x58, "CLI", implicit, 2, false, opCLI)
	def(0x59, "EOR", absoluteY, 4, true, opEOR)
	def(0x5D, "EOR", absoluteX, 4, true, opEOR)
	def(0x5E, "LSR", absoluteX, 7, false, opLSR)

	def(0x60, "RTS", implicit, 6, false, opRTS)
	def(0x61, "ADC", indirectX, 6, false, opADC)
	def(0x65, "ADC", zeroPage, 3, false, opADC)
	def(0x66, "ROR", zeroPage, 5, false, opROR)
	def(0x68, "PLA", implicit, 4, false, opPLA)
	def(0x69, "ADC", immediate, 2, false, opADC)
	def(0x6A, "ROR", accumulator, 2, false, opROR)
	def(0x6C, "JMP", indirect, 5, false, opJMP)
	def(0x6D, "ADC", absolute, 4, false, opADC)
	def(0x6E, "ROR", absolute, 6, false, opROR)
	defBranch(0x70, "BVS", opBVS)
	def(0x71, "ADC", indirectY, 5, true, opADC)
	def(0x75, "ADC", zeroPageX, 4, false, opADC)
	def(0x76, "ROR", zeroPageX, 6, false, opROR)
	def(0x78, "SEI", implicit, 2, false, opSEI)
	def(0x79, "ADC", absoluteY, 4, true, opADC)
	def(0x7D, "ADC", absoluteX, 4, true, opADC)
	def(0x7E, "ROR", absoluteX, 7, false, opROR)

	def(0x81, "STA", indirectX, 6, false, opSTA)
	def(0x84, "STY", zeroPage, 3, false, opSTY)
	def(0x85, "STA", zeroPage, 3, false, opSTA)
	def(0x86, "STX", zeroPage, 3, false, opSTX)
	def(0x88, "DEY", implicit, 2, false, opDEY)
	def(0x8A, "TXA", implicit, 2, false, opTXA)
	def(0x8C, "STY", absolute, 4, false, opSTY)
	def(0x8D, "STA", absolute, 4, false, opSTA)
	def(0x8E, "STX", absolute, 4, false, opSTX)
	defBranch(0x90, "BCC", opBCC)
	def(0x91, "STA", indirectY, 6, false, opSTA)
	def(0x94, "STY", zeroPageX, 4, false, opSTY)
	def(0x95, "STA", zeroPageX, 4, false, opSTA)
	def(0x96, "STX", zeroPageY, 4, false, opSTX)
	def(0x98, "TYA", implicit, 2, false, opTYA)
	def(0x99, "STA", absoluteY, 5, false, opSTA)
	def(0x9A, "TXS", implicit, 2, false, opTXS)
	def(0x9D, "STA", absoluteX, 5, false, opSTA)

	def(0xA0, "LDY", immediate, 2, false, opLDY)
	def(0xA1, "LDA", indirectX, 6, false, opLDA)
	def(0xA2, "LDX", immediate, 2, false, opLDX)
	def(0xA4, "LDY", zeroPage, 3, false, opLDY)
	def(0xA5, "LDA", zeroPage, 3, false, opLDA)
	def(0xA6, "LDX", zeroPage, 3, false, opLDX)
	def(0xA8, "TAY", implicit, 2, false, opTAY)
	def(0xA9, "LDA", immediate, 2, false, opLDA)
	def(0xAA, "TAX", implicit, 2, false, opTAX)
	def(0xAC, "LDY", absolute, 4, false, opLDY)
	def(0xAD, "LDA", absolute, 4, false, opLDA)
	def(0xAE, "LDX", absolute, 4, false, opLDX)
	defBranch(0xB0, "BCS", opBCS)
	def(0xB1, "LDA", indirectY, 5, true, opLDA)
	def(0xB4, "LDY", zeroPageX, 4, false, opLDY)
	def(0xB5, "LDA", zeroPageX, 4, false, opLDA)
	def(0xB6, "LDX", zeroPageY, 4, false, opLDX)
	def(0xB8, "CLV", implicit, 2, false, opCLV)
	def(0xB9, "LDA", absoluteY, 4, true, opLDA)
	def(0xBA, "TSX", implicit, 2, false, opTSX)
	def(0xBC, "LDY", absoluteX, 4, true, opLDY)
	def(0xBD, "LDA", absoluteX, 4, true, opLDA)
	def(0xBE, "LDX", absoluteY, 4, true, opLDX)

	def(0xC0, "CPY", immediate, 2, false, opCPY)
	def(0xC1, "CMP", indirectX, 6, false, opCMP)
	def(0xC4, "CPY", zeroPage, 3, false, opCPY)
	def(0xC5, "CMP", zeroPage, 3, false, opCMP)
	def(0xC6, "DEC", zeroPage, 5, false, opDEC)
	def(0xC8, "INY", implicit, 2, false, opINY)
	def(0xC9, "CMP", immediate, 2, false, opCMP)
	def(0xCA, "DEX", implicit, 2, false, opDEX)
	def(0xCC, "CPY", absolute, 4, false, opCPY)
	def(0xCD, "CMP", absolute, 4, false, opCMP)
	def(0xCE, "DEC", absolute, 6, false, opDEC)
	defBranch(0xD0, "BNE", opBNE)
	def(0xD1, "CMP", indirectY, 5, true, opCMP)
	def(0xD5, "CMP", zeroPageX, 4, false, opCMP)
	def(0xD6, "DEC", zeroPageX, 6, false, opDEC)
	def(0xD8, "CLD", implicit, 2, false, opCLD)
	def(0xD9, "CMP", absoluteY, 4, true, opCMP)
	def(0xDD, "CMP", absoluteX, 4, true, opCMP)
	def(0xDE, "DEC", absoluteX, 7, false, opDEC)

	def(0xE0, "CPX", immediate, 2, false, opCPX)
	def(0xE1, "SBC", indirectX, 6, false, opSBC)
	def(0xE4, "CPX", zeroPage, 3, false, opCPX)
	def(0xE5, "SBC", zeroPage, 3, false, opSBC)
	def(0xE6, "INC", zeroPage, 5, false, opINC)
	def(0xE8, "INX", implicit, 2, false, opINX)
	def(0xE9, "SBC", immediate, 2, false, opSBC)
	def(0xEA, "NOP", implicit, 2, false, opNOP)
	def(0xEC, "CPX", absolute, 4, false, opCPX)
	def(0xED, "SBC", absolute, 4, false, opSBC)
	def(0xEE, "INC", absolute, 6, false, opINC)
	defBranch(0xF0, "BEQ", opBEQ)
	def(0xF1, "SBC", indirectY, 5, true, opSBC)
	def(0xF5, "SBC", zeroPageX, 4, false, opSBC)
	def(0xF6, "INC", zeroPageX, 6, false, opINC)
	def(0xF8, "SED", implicit, 2, false, opSED)
	def(0xF9, "SBC", absoluteY, 4, true, opSBC)
	def(0xFD, "SBC", absoluteX, 4, true, opSBC)
	def(0xFE, "INC", absoluteX, 7, false, opINC)
}
