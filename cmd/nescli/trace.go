package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ysaito/nescore/console"
	"github.com/ysaito/nescore/cpu"
)

func newTraceCmd() *cobra.Command {
	var count int
	cmd := &cobra.Command{
		Use:   "trace <rom>",
		Short: "Print a nestest-style instruction trace",
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
			c.SetTraceHook(func(s cpu.Snapshot) {
				fmt.Printf("%04X A:%02X X:%02X Y:%02X P:%02X SP:%02X CYC:%d\n",
					s.PC, s.A, s.X, s.Y, s.P, s.S, s.Cycle)
			})
			for i := 0; i < count; i++ {
				c.StepInstruction()
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&count, "count", 100, "number of instructions to trace")
	return cmd
}
