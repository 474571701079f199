package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/ysaito/nescore/console"
)

func newMonitorCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "monitor <rom>",
		Short: "Interactively single-step a ROM, viewing CPU/PPU state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readROM(args[0])
			if err != nil {
				return err
			}
			c := console.New(nil, func() (byte, byte) { return 0, 0 })
			if err := c.Insert(data); err != nil {
				return err
			}
			m := monitorModel{console: c}
			_, err = tea.NewProgram(m).Run()
			return err
		},
	}
	return cmd
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	helpStyle   = lipgloss.NewStyle().Faint(true)
)

// monitorModel replaces the teacher's stdin-driven DebugConsole with a
// bubbletea TUI offering the same step/print/reset/quit primitives.
type monitorModel struct {
	console  *console.Console
	steps    uint64
	lastMsg  string
}

func (m monitorModel) Init() tea.Cmd { return nil }

func (m monitorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch keyMsg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "s":
		m.console.StepInstruction()
		m.steps++
		m.lastMsg = "stepped 1 instruction"
	case "f":
		m.console.StepFrame()
		m.lastMsg = "stepped 1 frame"
	case "r":
		m.console.Reset()
		m.steps = 0
		m.lastMsg = "reset"
	}
	return m, nil
}

func (m monitorModel) View() string {
	regs := m.console.CPURegisters()
	oam := m.console.OAM()

	cpuBlock := fmt.Sprintf(
		"PC:%04X  A:%02X  X:%02X  Y:%02X  S:%02X  P:%02X  CYC:%d",
		regs.PC, regs.A, regs.X, regs.Y, regs.S, regs.P, regs.Cycle,
	)
	ppuBlock := fmt.Sprintf("scanline:%3d  dot:%3d", m.console.PPUScanline(), m.console.PPUDot())

	var oamBlock string
	for i := 0; i < 8; i++ {
		base := i * 4
		oamBlock += fmt.Sprintf("[%d] y:%02x tile:%02x attr:%02x x:%02x\n",
			i, oam[base], oam[base+1], oam[base+2], oam[base+3])
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		headerStyle.Render("nescli monitor"),
		labelStyle.Render("CPU  ")+cpuBlock,
		labelStyle.Render("PPU  ")+ppuBlock,
		labelStyle.Render(fmt.Sprintf("instructions single-stepped: %d", m.steps)),
		labelStyle.Render("OAM (first 8 sprites)"),
		oamBlock,
		m.lastMsg,
		helpStyle.Render("s: step instruction  f: step frame  r: reset  q: quit"),
	)
}
