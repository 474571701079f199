// Command nescli is a demonstration harness for the nescore engine: it
// loads an iNES image and drives the Console through a handful of
// debugging-oriented subcommands. It is not part of the embeddable core.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:   "nescli",
		Short: "Run and inspect NES ROMs on top of nescore",
	}
	root.AddCommand(newRunCmd())
	root.AddCommand(newInspectCmd())
	root.AddCommand(newTraceCmd())
	root.AddCommand(newMonitorCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func readROM(path string) ([]byte, error) {
	return os.ReadFile(path)
}
