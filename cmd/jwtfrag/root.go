package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var noColor bool

var rootCmd = &cobra.Command{
	Use:   "jwtfrag",
	Short: "Decompose, reassemble, and mint JWTs for HPACK compression debugging",
	Long: "A debugging tool for compressed JWT forwarding. Decomposes tokens into " +
		"their x-jwt-* fragments, reassembles tokens from fragments, mints signed " +
		"test tokens, and estimates the on-the-wire savings from HPACK indexing.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if noColor {
			color.NoColor = true
		}
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
