// Package main provides docxgen, an offline renderer for export request files.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var version = "dev"

var rootCmd = &cobra.Command{
	Use:           "docxgen",
	Short:         "Render ATS-friendly DOCX documents offline",
	Long:          "docxgen renders export request files (JSON or YAML) to .docx packages using the same pipeline as the HTTP API, and inspects existing packages.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
