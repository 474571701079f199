// Package cpu implements a cycle-counting interpreter for the NES's
// 6502-derived CPU: 56 legal opcodes across 13 addressing modes, with
// page-crossing and branch-taken cycle penalties.
package cpu

import (
	"github.com/golang/glog"

	"github.com/ysaito/nescore/neserr"
)

// Frequency is the NTSC NES CPU clock rate in Hz.
const Frequency = 1789773

// Snapshot is a point-in-time copy of CPU-visible state, handed to a
// trace hook after each Step.
type Snapshot struct {
	PC         uint16
	A, X, Y, S byte
	P          byte
	Cycle      uint64
	Opcode     byte
	Mnemonic   string
}

// CPU is the NES's 6502-derived interpreter.
type CPU struct {
	P  status
	A  byte
	X  byte
	Y  byte
	PC uint16
	S  byte

	bus    bus
	cycles uint64
	stall  uint64

	nmiPending bool
	irqPending bool
}

// New constructs a CPU wired to b. Callers must call Reset before the
// first Step to establish the power-on register state.
func New(b bus) *CPU {
	return &CPU{bus: b}
}

// Reset loads PC from the reset vector, sets SP to 0xFD, and sets the
// interrupt-disable and unused status bits, consuming 7 cycles.
func (c *CPU) Reset() {
	c.PC = c.bus.Read16(0xFFFC)
	c.S = 0xFD
	c.P.decodeFrom(0x24) // I and U set, everything else clear.
	c.cycles += 7
}

// TriggerNMI asserts a pending non-maskable interrupt, serviced before
// the CPU's next fetch.
func (c *CPU) TriggerNMI() { c.nmiPending = true }

// TriggerIRQ asserts a pending maskable interrupt line; it is only
// serviced if the interrupt-disable flag is clear.
func (c *CPU) TriggerIRQ() { c.irqPending = true }

// Cycles reports the running total of CPU cycles consumed since Reset.
func (c *CPU) Cycles() uint64 { return c.cycles }

// Snapshot captures the current register state for tracing.
func (c *CPU) Snapshot() Snapshot {
	return Snapshot{PC: c.PC, A: c.A, X: c.X, Y: c.Y, S: c.S, P: c.P.encode(), Cycle: c.cycles}
}

func (c *CPU) push(v byte) {
	c.busWrite(0x0100|uint16(c.S), v)
	c.S--
}

func (c *CPU) pop() byte {
	c.S++
	return c.bus.Read(0x0100 | uint16(c.S))
}

func (c *CPU) push16(v uint16) {
	c.push(byte(v >> 8))
	c.push(byte(v))
}

func (c *CPU) pop16() uint16 {
	lo := uint16(c.pop())
	hi := uint16(c.pop())
	return hi<<8 | lo
}

// busWrite intercepts $4014 (OAM DMA) so the CPU can account for the
// transfer's stall cycles against its own counter, the way a real 6502
// is simply held on the bus's RDY line for the duration.
func (c *CPU) busWrite(addr uint16, v byte) {
	if addr == 0x4014 {
		if dmaBus, ok := c.bus.(oamDMABus); ok {
			c.stall += uint64(dmaBus.OAMDMA(v, c.cycles%2 == 1))
			return
		}
	}
	c.bus.Write(addr, v)
}

// oamDMABus is implemented by bus.Bus; kept as a local interface so the
// cpu package never imports bus and creates an import cycle.
type oamDMABus interface {
	OAMDMA(page byte, cpuCycleOdd bool) int
}

func (c *CPU) serviceNMI() {
	c.push16(c.PC)
	c.P.B = false
	c.P.U = true
	c.push(c.P.encode())
	c.P.I = true
	c.PC = c.bus.Read16(0xFFFA)
	c.cycles += 7
	c.nmiPending = false
}

func (c *CPU) serviceIRQ() {
	c.push16(c.PC)
	c.P.B = false
	c.P.U = true
	c.push(c.P.encode())
	c.P.I = true
	c.PC = c.bus.Read16(0xFFFE)
	c.cycles += 7
	c.irqPending = false
}

// Step executes one instruction, or services a pending interrupt, or
// burns one stall cycle left over from an OAM DMA transfer, and returns
// the number of CPU cycles consumed. Fetching an opcode with no table
// entry panics with a *neserr.FaultError, logged first, since it always
// indicates a bug rather than bad ROM data.
func (c *CPU) Step() int {
	if c.stall > 0 {
		c.stall--
		c.cycles++
		return 1
	}
	if c.nmiPending {
		c.serviceNMI()
		return 7
	}
	if c.irqPending && !c.P.I {
		c.serviceIRQ()
		return 7
	}

	opcode := c.bus.Read(c.PC)
	inst := table[opcode]
	if inst == nil {
		glog.Errorf("cpu: unknown opcode 0x%02x at pc=0x%04x", opcode, c.PC)
		panic(neserr.NewUnknownOpcode(opcode, c.PC))
	}

	r := c.resolve(c.PC, inst.mode)
	c.PC += inst.size

	cycles := inst.cycles
	if inst.pageCrossPenalty && r.pageCrossed {
		cycles++
	}
	taken := inst.execute(c, inst.mode, r)
	if inst.branch && taken {
		cycles++
		if r.pageCrossed {
			cycles++
		}
	}

	c.cycles += uint64(cycles)
	return cycles
}
