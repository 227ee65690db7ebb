package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	jwtcompression "github.com/tokensplit/go-jwt-compression"
)

var showSavings bool

var decomposeCmd = &cobra.Command{
	Use:   "decompose <token>",
	Short: "Split a JWT into its four transmissible fragments",
	Args:  cobra.ExactArgs(1),
	RunE:  runDecompose,
}

func init() {
	decomposeCmd.Flags().BoolVar(&showSavings, "savings", false, "print estimated HPACK savings")
	rootCmd.AddCommand(decomposeCmd)
}

func runDecompose(cmd *cobra.Command, args []string) error {
	token := args[0]

	compressor, err := jwtcompression.New(jwtcompression.WithCompression(true))
	if err != nil {
		return err
	}

	fragments, err := compressor.Decompose(token)
	if err != nil {
		return fmt.Errorf("decomposing token: %w", err)
	}

	label := color.New(color.FgCyan, color.Bold)
	sizes := fragments.Sizes()

	printFragment(label, jwtcompression.MetadataKeyStatic, fragments.Static, sizes["static"])
	printFragment(label, jwtcompression.MetadataKeySession, fragments.Session, sizes["session"])
	printFragment(label, jwtcompression.MetadataKeyDynamic, fragments.Dynamic, sizes["dynamic"])
	printFragment(label, jwtcompression.MetadataKeySig, fragments.Signature, sizes["signature"])
	fmt.Printf("total: %d bytes\n", sizes["total"])

	if showSavings {
		fmt.Println()
		printSavings(token, fragments)
	}

	return nil
}

func printFragment(label *color.Color, key, value string, size int) {
	label.Printf("%s", key)
	fmt.Printf(" (%db): %s\n", size, value)
}
