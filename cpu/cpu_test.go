package cpu

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type fakeBus struct {
	mem [0x10000]byte
}

func (b *fakeBus) Read(addr uint16) byte     { return b.mem[addr] }
func (b *fakeBus) Write(addr uint16, v byte) { b.mem[addr] = v }
func (b *fakeBus) Read16(addr uint16) uint16 {
	lo := uint16(b.Read(addr))
	hi := uint16(b.Read(addr + 1))
	return hi<<8 | lo
}

func newTestCPU() (*CPU, *fakeBus) {
	b := &fakeBus{}
	b.mem[0xFFFC] = 0x00
	b.mem[0xFFFD] = 0x80
	c := New(b)
	c.Reset()
	return c, b
}

func load(b *fakeBus, addr uint16, program ...byte) {
	for i, v := range program {
		b.mem[addr+uint16(i)] = v
	}
}

func TestResetVectorAndPowerOnState(t *testing.T) {
	c, _ := newTestCPU()
	require.Equal(t, uint16(0x8000), c.PC)
	require.Equal(t, byte(0xFD), c.S)
	require.True(t, c.P.I)
	require.Equal(t, uint64(7), c.Cycles())
}

func TestLDAImmediateSetsZeroAndNegativeFlags(t *testing.T) {
	c, b := newTestCPU()
	load(b, 0x8000, 0xA9, 0x00) // LDA #$00
	cycles := c.Step()
	require.Equal(t, 2, cycles)
	require.True(t, c.P.Z)
	require.False(t, c.P.N)

	c.PC = 0x8000
	load(b, 0x8000, 0xA9, 0x80) // LDA #$80
	c.Step()
	require.False(t, c.P.Z)
	require.True(t, c.P.N)
}

func TestAbsoluteXPageCrossAddsCycle(t *testing.T) {
	c, b := newTestCPU()
	load(b, 0x8000, 0xBD, 0xFF, 0x00) // LDA $00FF,X
	b.mem[0x0100] = 0x42
	c.X = 0x01
	cycles := c.Step()
	require.Equal(t, 5, cycles) // 4 base + 1 for crossing into page 1
	require.Equal(t, byte(0x42), c.A)
}

func TestAbsoluteXNoPageCrossStaysBaseCycles(t *testing.T) {
	c, b := newTestCPU()
	load(b, 0x8000, 0xBD, 0x00, 0x00) // LDA $0000,X
	b.mem[0x0001] = 0x99
	c.X = 0x01
	cycles := c.Step()
	require.Equal(t, 4, cycles)
	require.Equal(t, byte(0x99), c.A)
}

func TestIndirectJMPPageWrapBug(t *testing.T) {
	c, b := newTestCPU()
	load(b, 0x8000, 0x6C, 0xFF, 0x30) // JMP ($30FF)
	b.mem[0x30FF] = 0x01
	b.mem[0x3000] = 0x02 // hardware bug: high byte re-reads 0x3000, not 0x3100
	b.mem[0x3100] = 0xFF
	c.Step()
	require.Equal(t, uint16(0x0201), c.PC)
}

func TestIndirectXDoubleDereference(t *testing.T) {
	c, b := newTestCPU()
	load(b, 0x8000, 0xA1, 0x20) // LDA ($20,X)
	c.X = 0x04
	b.mem[0x0024] = 0x00
	b.mem[0x0025] = 0x90
	b.mem[0x9000] = 0x7B
	c.Step()
	require.Equal(t, byte(0x7B), c.A)
}

func TestIndirectYAddsIndexAfterDereference(t *testing.T) {
	c, b := newTestCPU()
	load(b, 0x8000, 0xB1, 0x20) // LDA ($20),Y
	b.mem[0x0020] = 0x00
	b.mem[0x0021] = 0x90
	c.Y = 0x05
	b.mem[0x9005] = 0x55
	c.Step()
	require.Equal(t, byte(0x55), c.A)
}

func TestADCSetsOverflowOnSignedOverflow(t *testing.T) {
	c, b := newTestCPU()
	c.A = 0x7F // +127
	load(b, 0x8000, 0x69, 0x01) // ADC #$01
	c.Step()
	require.Equal(t, byte(0x80), c.A)
	require.True(t, c.P.V)
	require.True(t, c.P.N)
	require.False(t, c.P.C)
}

func TestSBCIsComplementOfADC(t *testing.T) {
	c, b := newTestCPU()
	c.A = 0x00
	c.P.C = true // no borrow
	load(b, 0x8000, 0xE9, 0x01) // SBC #$01
	c.Step()
	require.Equal(t, byte(0xFF), c.A)
	require.False(t, c.P.C) // borrow occurred
	require.True(t, c.P.N)
}

func TestCMPUsesUnsignedComparison(t *testing.T) {
	c, b := newTestCPU()
	c.A = 0x10
	load(b, 0x8000, 0xC9, 0xF0) // CMP #$F0 (240 unsigned, > A)
	c.Step()
	require.False(t, c.P.C) // A < M, no carry
	require.False(t, c.P.Z)
}

func TestCMPEqualSetsCarryAndZero(t *testing.T) {
	c, b := newTestCPU()
	c.A = 0x55
	load(b, 0x8000, 0xC9, 0x55)
	c.Step()
	require.True(t, c.P.C)
	require.True(t, c.P.Z)
}

func TestBranchTakenAndPageCrossPenalties(t *testing.T) {
	c, b := newTestCPU()
	c.PC = 0x80F0
	load(b, 0x80F0, 0xF0, 0x20) // BEQ +32, target 0x8112 crosses into the next page
	c.P.Z = true
	cycles := c.Step()
	require.Equal(t, uint16(0x8112), c.PC)
	require.Equal(t, 4, cycles) // 2 base + 1 taken + 1 page cross
}

func TestBranchNotTakenCostsBaseCyclesOnly(t *testing.T) {
	c, b := newTestCPU()
	load(b, 0x8000, 0xF0, 0x05) // BEQ +5
	c.P.Z = false
	cycles := c.Step()
	require.Equal(t, 2, cycles)
	require.Equal(t, uint16(0x8002), c.PC)
}

func TestJSRRTSRoundTrip(t *testing.T) {
	c, b := newTestCPU()
	load(b, 0x8000, 0x20, 0x00, 0x90) // JSR $9000
	load(b, 0x9000, 0x60)            // RTS
	c.Step()
	require.Equal(t, uint16(0x9000), c.PC)
	c.Step()
	require.Equal(t, uint16(0x8003), c.PC)
}

func TestPHAPLARoundTrip(t *testing.T) {
	c, b := newTestCPU()
	c.A = 0xAB
	load(b, 0x8000, 0x48, 0xA9, 0x00, 0x68) // PHA; LDA #$00; PLA
	startS := c.S
	c.Step()
	require.Equal(t, startS-1, c.S)
	c.Step()
	require.Equal(t, byte(0x00), c.A)
	c.Step()
	require.Equal(t, byte(0xAB), c.A)
	require.Equal(t, startS, c.S)
}

func TestPHPAlwaysSetsBreakAndUnusedBits(t *testing.T) {
	c, b := newTestCPU()
	c.P.decodeFrom(0x00)
	load(b, 0x8000, 0x08) // PHP
	c.Step()
	pushed := b.Read(0x0100 | uint16(c.S+1))
	require.Equal(t, byte(0x30), pushed&0x30)
	require.False(t, c.P.B) // live status unaffected
}

func TestBRKPushesReturnAddressAfterPaddingByte(t *testing.T) {
	c, b := newTestCPU()
	b.mem[0xFFFE] = 0x00
	b.mem[0xFFFF] = 0x40
	load(b, 0x8000, 0x00, 0x00) // BRK, padding byte
	c.Step()
	require.Equal(t, uint16(0x4000), c.PC)
	require.True(t, c.P.I)
	c.pop() // discard the pushed status byte
	ret := c.pop16()
	require.Equal(t, uint16(0x8002), ret)
}

func TestUnknownOpcodePanicsWithFaultError(t *testing.T) {
	c, b := newTestCPU()
	load(b, 0x8000, 0x02) // illegal opcode, nil table slot
	require.Panics(t, func() { c.Step() })
}

func TestOAMDMAStallBurnsOneCyclePerStep(t *testing.T) {
	c, b := newTestCPU()
	dma := &stubDMABus{fakeBus: b, stall: 513}
	c.bus = dma
	load(b, 0x8000, 0x8D, 0x14, 0x40) // STA $4014
	c.Step()
	require.Equal(t, uint64(513), c.stall)
	consumed := c.Step()
	require.Equal(t, 1, consumed)
	require.Equal(t, uint64(512), c.stall)
}

type stubDMABus struct {
	*fakeBus
	stall int
}

func (s *stubDMABus) OAMDMA(page byte, cpuCycleOdd bool) int { return s.stall }
