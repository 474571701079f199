package main

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"github.com/ysaito/nescore/cartridge"
)

func newInspectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect <rom>",
		Short: "Parse and print a ROM's iNES header",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readROM(args[0])
			if err != nil {
				return err
			}
			cart, err := cartridge.New(data)
			if err != nil {
				return err
			}
			h := cart.Header()
			fmt.Printf("mapper:    %d\n", h.MapperID)
			fmt.Printf("PRG pages: %d (%d KiB)\n", h.PRGPages, int(h.PRGPages)*16)
			fmt.Printf("CHR pages: %d (%d KiB)\n", h.CHRPages, int(h.CHRPages)*8)
			fmt.Printf("mirroring: %s\n", h.Mirroring)
			fmt.Printf("CHR RAM:   %v\n", cart.HasCHRRAM())
			fmt.Println()
			spew.Dump(h)
			return nil
		},
	}
	return cmd
}
