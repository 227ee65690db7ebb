package main

import (
	"fmt"

	"github.com/spf13/cobra"
	jwtcompression "github.com/tokensplit/go-jwt-compression"
)

var (
	staticFragment  string
	sessionFragment string
	dynamicFragment string
	sigFragment     string
	bearerValue     string
)

var reassembleCmd = &cobra.Command{
	Use:   "reassemble",
	Short: "Rebuild a JWT from its fragments or a bearer header value",
	RunE:  runReassemble,
}

func init() {
	reassembleCmd.Flags().StringVar(&staticFragment, "static", "", "x-jwt-static fragment")
	reassembleCmd.Flags().StringVar(&sessionFragment, "session", "", "x-jwt-session fragment")
	reassembleCmd.Flags().StringVar(&dynamicFragment, "dynamic", "", "x-jwt-dynamic fragment")
	reassembleCmd.Flags().StringVar(&sigFragment, "sig", "", "x-jwt-sig fragment")
	reassembleCmd.Flags().StringVar(&bearerValue, "bearer", "", "authorization header value (fallback form)")
	rootCmd.AddCommand(reassembleCmd)
}

func runReassemble(cmd *cobra.Command, args []string) error {
	var md jwtcompression.Carrier
	if staticFragment != "" {
		md.Append(jwtcompression.MetadataKeyStatic, staticFragment)
	}
	if sessionFragment != "" {
		md.Append(jwtcompression.MetadataKeySession, sessionFragment)
	}
	if dynamicFragment != "" {
		md.Append(jwtcompression.MetadataKeyDynamic, dynamicFragment)
	}
	if sigFragment != "" {
		md.Append(jwtcompression.MetadataKeySig, sigFragment)
	}
	if bearerValue != "" {
		md.Append(jwtcompression.MetadataKeyAuthorization, bearerValue)
	}

	compressor, err := jwtcompression.New()
	if err != nil {
		return err
	}

	token, err := compressor.Reassemble(md)
	if err != nil {
		return fmt.Errorf("reassembling token: %w", err)
	}
	if token == "" {
		return fmt.Errorf("no token present in the provided metadata")
	}

	fmt.Println(token)
	return nil
}
