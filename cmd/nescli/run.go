package main

import (
	"fmt"
	"image/png"
	"os"

	"github.com/spf13/cobra"

	"github.com/ysaito/nescore/console"
)

func newRunCmd() *cobra.Command {
	var frames int
	var out string
	cmd := &cobra.Command{
		Use:   "run <rom>",
		Short: "Run a ROM headlessly and dump the final frame as a PNG",
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
			for i := 0; i < frames; i++ {
				c.StepFrame()
			}

			f, err := os.Create(out)
			if err != nil {
				return err
			}
			defer f.Close()
			if err := png.Encode(f, c.PPUFrame()); err != nil {
				return err
			}
			fmt.Printf("wrote %s after %d frames\n", out, frames)
			return nil
		},
	}
	cmd.Flags().IntVar(&frames, "frames", 60, "number of frames to run before dumping")
	cmd.Flags().StringVar(&out, "out", "frame.png", "output PNG path")
	return cmd
}
