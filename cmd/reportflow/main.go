package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:     "reportflow",
		Short:   "Turn session transcripts into a polished weekly report document",
		Version: version,
	}

	rootCmd.AddCommand(runCmd())
	rootCmd.AddCommand(dailyCmd())
	rootCmd.AddCommand(masterCmd())
	rootCmd.AddCommand(frameCmd())
	rootCmd.AddCommand(renderCmd())
	rootCmd.AddCommand(watchCmd())
	rootCmd.AddCommand(openCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
