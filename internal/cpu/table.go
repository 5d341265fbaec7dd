package cpu

// opcodeTable is the 256-entry dispatch table indexed by opcode byte. The
// 56 documented 6502 mnemonics are wired to their real operate functions;
// the well-known documented-illegal NOP variants get the correct
// addressing mode and byte/cycle cost (so programs that execute them as
// padding still advance PC correctly); every other undocumented opcode
// dispatches as a one-byte, two-cycle no-op.
var opcodeTable = [256]instruction{
	0x00: {"BRK", opBRK, imp, 7}, 0x01: {"ORA", opORA, izx, 6}, 0x02: {"???", opXXX, imp, 2}, 0x03: {"???", opXXX, imp, 2},
	0x04: {"NOP", opNOP, zp0, 3}, 0x05: {"ORA", opORA, zp0, 3}, 0x06: {"ASL", opASL, zp0, 5}, 0x07: {"???", opXXX, imp, 2},
	0x08: {"PHP", opPHP, imp, 3}, 0x09: {"ORA", opORA, imm, 2}, 0x0A: {"ASL", opASL, imp, 2}, 0x0B: {"???", opXXX, imp, 2},
	0x0C: {"NOP", opNOP, abs, 4}, 0x0D: {"ORA", opORA, abs, 4}, 0x0E: {"ASL", opASL, abs, 6}, 0x0F: {"???", opXXX, imp, 2},

	0x10: {"BPL", opBPL, rel, 2}, 0x11: {"ORA", opORA, izy, 5}, 0x12: {"???", opXXX, imp, 2}, 0x13: {"???", opXXX, imp, 2},
	0x14: {"NOP", opNOP, zpx, 4}, 0x15: {"ORA", opORA, zpx, 4}, 0x16: {"ASL", opASL, zpx, 6}, 0x17: {"???", opXXX, imp, 2},
	0x18: {"CLC", opCLC, imp, 2}, 0x19: {"ORA", opORA, aby, 4}, 0x1A: {"NOP", opNOP, imp, 2}, 0x1B: {"???", opXXX, imp, 2},
	0x1C: {"NOP", opNOP, abx, 4}, 0x1D: {"ORA", opORA, abx, 4}, 0x1E: {"ASL", opASL, abx, 7}, 0x1F: {"???", opXXX, imp, 2},

	0x20: {"JSR", opJSR, abs, 6}, 0x21: {"AND", opAND, izx, 6}, 0x22: {"???", opXXX, imp, 2}, 0x23: {"???", opXXX, imp, 2},
	0x24: {"BIT", opBIT, zp0, 3}, 0x25: {"AND", opAND, zp0, 3}, 0x26: {"ROL", opROL, zp0, 5}, 0x27: {"???", opXXX, imp, 2},
	0x28: {"PLP", opPLP, imp, 4}, 0x29: {"AND", opAND, imm, 2}, 0x2A: {"ROL", opROL, imp, 2}, 0x2B: {"???", opXXX, imp, 2},
	0x2C: {"BIT", opBIT, abs, 4}, 0x2D: {"AND", opAND, abs, 4}, 0x2E: {"ROL", opROL, abs, 6}, 0x2F: {"???", opXXX, imp, 2},

	0x30: {"BMI", opBMI, rel, 2}, 0x31: {"AND", opAND, izy, 5}, 0x32: {"???", opXXX, imp, 2}, 0x33: {"???", opXXX, imp, 2},
	0x34: {"NOP", opNOP, zpx, 4}, 0x35: {"AND", opAND, zpx, 4}, 0x36: {"ROL", opROL, zpx, 6}, 0x37: {"???", opXXX, imp, 2},
	0x38: {"SEC", opSEC, imp, 2}, 0x39: {"AND", opAND, aby, 4}, 0x3A: {"NOP", opNOP, imp, 2}, 0x3B: {"???", opXXX, imp, 2},
	0x3C: {"NOP", opNOP, abx, 4}, 0x3D: {"AND", opAND, abx, 4}, 0x3E: {"ROL", opROL, abx, 7}, 0x3F: {"???", opXXX, imp, 2},

	0x40: {"RTI", opRTI, imp, 6}, 0x41: {"EOR", opEOR, izx, 6}, 0x42: {"???", opXXX, imp, 2}, 0x43: {"???", opXXX, imp, 2},
	0x44: {"NOP", opNOP, zp0, 3}, 0x45: {"EOR", opEOR, zp0, 3}, 0x46: {"LSR", opLSR, zp0, 5}, 0x47: {"???", opXXX, imp, 2},
	0x48: {"PHA", opPHA, imp, 3}, 0x49: {"EOR", opEOR, imm, 2}, 0x4A: {"LSR", opLSR, imp, 2}, 0x4B: {"???", opXXX, imp, 2},
	0x4C: {"JMP", opJMP, abs, 3}, 0x4D: {"EOR", opEOR, abs, 4}, 0x4E: {"LSR", opLSR, abs, 6}, 0x4F: {"???", opXXX, imp, 2},

	0x50: {"BVC", opBVC, rel, 2}, 0x51: {"EOR", opEOR, izy, 5}, 0x52: {"???", opXXX, imp, 2}, 0x53: {"???", opXXX, imp, 2},
	0x54: {"NOP", opNOP, zpx, 4}, 0x55: {"EOR", opEOR, zpx, 4}, 0x56: {"LSR", opLSR, zpx, 6}, 0x57: {"???", opXXX, imp, 2},
	0x58: {"CLI", opCLI, imp, 2}, 0x59: {"EOR", opEOR, aby, 4}, 0x5A: {"NOP", opNOP, imp, 2}, 0x5B: {"???", opXXX, imp, 2},
	0x5C: {"NOP", opNOP, abx, 4}, 0x5D: {"EOR", opEOR, abx, 4}, 0x5E: {"LSR", opLSR, abx, 7}, 0x5F: {"???", opXXX, imp, 2},

	0x60: {"RTS", opRTS, imp, 6}, 0x61: {"ADC", opADC, izx, 6}, 0x62: {"???", opXXX, imp, 2}, 0x63: {"???", opXXX, imp, 2},
	0x64: {"NOP", opNOP, zp0, 3}, 0x65: {"ADC", opADC, zp0, 3}, 0x66: {"ROR", opROR, zp0, 5}, 0x67: {"???", opXXX, imp, 2},
	0x68: {"PLA", opPLA, imp, 4}, 0x69: {"ADC", opADC, imm, 2}, 0x6A: {"ROR", opROR, imp, 2}, 0x6B: {"???", opXXX, imp, 2},
	0x6C: {"JMP", opJMP, ind, 5}, 0x6D: {"ADC", opADC, abs, 4}, 0x6E: {"ROR", opROR, abs, 6}, 0x6F: {"???", opXXX, imp, 2},

	0x70: {"BVS", opBVS, rel, 2}, 0x71: {"ADC", opADC, izy, 5}, 0x72: {"???", opXXX, imp, 2}, 0x73: {"???", opXXX, imp, 2},
	0x74: {"NOP", opNOP, zpx, 4}, 0x75: {"ADC", opADC, zpx, 4}, 0x76: {"ROR", opROR, zpx, 6}, 0x77: {"???", opXXX, imp, 2},
	0x78: {"SEI", opSEI, imp, 2}, 0x79: {"ADC", opADC, aby, 4}, 0x7A: {"NOP", opNOP, imp, 2}, 0x7B: {"???", opXXX, imp, 2},
	0x7C: {"NOP", opNOP, abx, 4}, 0x7D: {"ADC", opADC, abx, 4}, 0x7E: {"ROR", opROR, abx, 7}, 0x7F: {"???", opXXX, imp, 2},

	0x80: {"NOP", opNOP, imm, 2}, 0x81: {"STA", opSTA, izx, 6}, 0x82: {"NOP", opNOP, imm, 2}, 0x83: {"???", opXXX, imp, 2},
	0x84: {"STY", opSTY, zp0, 3}, 0x85: {"STA", opSTA, zp0, 3}, 0x86: {"STX", opSTX, zp0, 3}, 0x87: {"???", opXXX, imp, 2},
	0x88: {"DEY", opDEY, imp, 2}, 0x89: {"NOP", opNOP, imm, 2}, 0x8A: {"TXA", opTXA, imp, 2}, 0x8B: {"???", opXXX, imp, 2},
	0x8C: {"STY", opSTY, abs, 4}, 0x8D: {"STA", opSTA, abs, 4}, 0x8E: {"STX", opSTX, abs, 4}, 0x8F: {"???", opXXX, imp, 2},

	0x90: {"BCC", opBCC, rel, 2}, 0x91: {"STA", opSTA, izy, 6}, 0x92: {"???", opXXX, imp, 2}, 0x93: {"???", opXXX, imp, 2},
	0x94: {"STY", opSTY, zpx, 4}, 0x95: {"STA", opSTA, zpx, 4}, 0x96: {"STX", opSTX, zpy, 4}, 0x97: {"???", opXXX, imp, 2},
	0x98: {"TYA", opTYA, imp, 2}, 0x99: {"STA", opSTA, aby, 5}, 0x9A: {"TXS", opTXS, imp, 2}, 0x9B: {"???", opXXX, imp, 2},
	0x9C: {"???", opXXX, imp, 2}, 0x9D: {"STA", opSTA, abx, 5}, 0x9E: {"???", opXXX, imp, 2}, 0x9F: {"???", opXXX, imp, 2},

	0xA0: {"LDY", opLDY, imm, 2}, 0xA1: {"LDA", opLDA, izx, 6}, 0xA2: {"LDX", opLDX, imm, 2}, 0xA3: {"???", opXXX, imp, 2},
	0xA4: {"LDY", opLDY, zp0, 3}, 0xA5: {"LDA", opLDA, zp0, 3}, 0xA6: {"LDX", opLDX, zp0, 3}, 0xA7: {"???", opXXX, imp, 2},
	0xA8: {"TAY", opTAY, imp, 2}, 0xA9: {"LDA", opLDA, imm, 2}, 0xAA: {"TAX", opTAX, imp, 2}, 0xAB: {"???", opXXX, imp, 2},
	0xAC: {"LDY", opLDY, abs, 4}, 0xAD: {"LDA", opLDA, abs, 4}, 0xAE: {"LDX", opLDX, abs, 4}, 0xAF: {"???", opXXX, imp, 2},

	0xB0: {"BCS", opBCS, rel, 2}, 0xB1: {"LDA", opLDA, izy, 5}, 0xB2: {"???", opXXX, imp, 2}, 0xB3: {"???", opXXX, imp, 2},
	0xB4: {"LDY", opLDY, zpx, 4}, 0xB5: {"LDA", opLDA, zpx, 4}, 0xB6: {"LDX", opLDX, zpy, 4}, 0xB7: {"???", opXXX, imp, 2},
	0xB8: {"CLV", opCLV, imp, 2}, 0xB9: {"LDA", opLDA, aby, 4}, 0xBA: {"TSX", opTSX, imp, 2}, 0xBB: {"???", opXXX, imp, 2},
	0xBC: {"LDY", opLDY, abx, 4}, 0xBD: {"LDA", opLDA, abx, 4}, 0xBE: {"LDX", opLDX, aby, 4}, 0xBF: {"???", opXXX, imp, 2},

	0xC0: {"CPY", opCPY, imm, 2}, 0xC1: {"CMP", opCMP, izx, 6}, 0xC2: {"NOP", opNOP, imm, 2}, 0xC3: {"???", opXXX, imp, 2},
	0xC4: {"CPY", opCPY, zp0, 3}, 0xC5: {"CMP", opCMP, zp0, 3}, 0xC6: {"DEC", opDEC, zp0, 5}, 0xC7: {"???", opXXX, imp, 2},
	0xC8: {"INY", opINY, imp, 2}, 0xC9: {"CMP", opCMP, imm, 2}, 0xCA: {"DEX", opDEX, imp, 2}, 0xCB: {"???", opXXX, imp, 2},
	0xCC: {"CPY", opCPY, abs, 4}, 0xCD: {"CMP", opCMP, abs, 4}, 0xCE: {"DEC", opDEC, abs, 6}, 0xCF: {"???", opXXX, imp, 2},

	0xD0: {"BNE", opBNE, rel, 2}, 0xD1: {"CMP", opCMP, izy, 5}, 0xD2: {"???", opXXX, imp, 2}, 0xD3: {"???", opXXX, imp, 2},
	0xD4: {"NOP", opNOP, zpx, 4}, 0xD5: {"CMP", opCMP, zpx, 4}, 0xD6: {"DEC", opDEC, zpx, 6}, 0xD7: {"???", opXXX, imp, 2},
	0xD8: {"CLD", opCLD, imp, 2}, 0xD9: {"CMP", opCMP, aby, 4}, 0xDA: {"NOP", opNOP, imp, 2}, 0xDB: {"???", opXXX, imp, 2},
	0xDC: {"NOP", opNOP, abx, 4}, 0xDD: {"CMP", opCMP, abx, 4}, 0xDE: {"DEC", opDEC, abx, 7}, 0xDF: {"???", opXXX, imp, 2},

	0xE0: {"CPX", opCPX, imm, 2}, 0xE1: {"SBC", opSBC, izx, 6}, 0xE2: {"NOP", opNOP, imm, 2}, 0xE3: {"???", opXXX, imp, 2},
	0xE4: {"CPX", opCPX, zp0, 3}, 0xE5: {"SBC", opSBC, zp0, 3}, 0xE6: {"INC", opINC, zp0, 5}, 0xE7: {"???", opXXX, imp, 2},
	0xE8: {"INX", opINX, imp, 2}, 0xE9: {"SBC", opSBC, imm, 2}, 0xEA: {"NOP", opNOP, imp, 2}, 0xEB: {"SBC", opSBC, imm, 2},
	0xEC: {"CPX", opCPX, abs, 4}, 0xED: {"SBC", opSBC, abs, 4}, 0xEE: {"INC", opINC, abs, 6}, 0xEF: {"???", opXXX, imp, 2},

	0xF0: {"BEQ", opBEQ, rel, 2}, 0xF1: {"SBC", opSBC, izy, 5}, 0xF2: {"???", opXXX, imp, 2}, 0xF3: {"???", opXXX, imp, 2},
	0xF4: {"NOP", opNOP, zpx, 4}, 0xF5: {"SBC", opSBC, zpx, 4}, 0xF6: {"INC", opINC, zpx, 6}, 0xF7: {"???", opXXX, imp, 2},
	0xF8: {"SED", opSED, imp, 2}, 0xF9: {"SBC", opSBC, aby, 4}, 0xFA: {"NOP", opNOP, imp, 2}, 0xFB: {"???", opXXX, imp, 2},
	0xFC: {"NOP", opNOP, abx, 4}, 0xFD: {"SBC", opSBC, abx, 4}, 0xFE: {"INC", opINC, abx, 7}, 0xFF: {"???", opXXX, imp, 2},
}
