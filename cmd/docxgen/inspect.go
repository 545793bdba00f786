package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"docx-export-api/internal/shared/util"
	"docx-export-api/resume/render"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect FILE.docx",
	Short: "Print the paragraphs of a .docx package",
	Long:  "Opens a .docx package, checks its required parts and prints each body paragraph with its style and run formatting.",
	Args:  cobra.ExactArgs(1),
	RunE:  runInspect,
}

var inspectJSON bool

func init() {
	inspectCmd.Flags().BoolVar(&inspectJSON, "json", false, "Print the inspection as JSON")

	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read %s: %w", args[0], err)
	}
	return writeInspection(cmd.OutOrStdout(), data, inspectJSON)
}

func writeInspection(w io.Writer, data []byte, asJSON bool) error {
	inspection, err := render.Inspect(data)
	if err != nil {
		return err
	}
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(inspection)
	}

	fmt.Fprintf(w, "sha256: %s\n", util.ContentDigest(data))
	fmt.Fprintf(w, "parts: %s\n", strings.Join(inspection.Parts, ", "))
	for i, p := range inspection.Paragraphs {
		style := p.Style
		if style == "" {
			style = "Normal"
		}
		fmt.Fprintf(w, "%3d %-10s %s\n", i+1, style, formatRuns(p))
	}
	return nil
}

// formatRuns renders runs back into the markdown markers they came from.
func formatRuns(p render.InspectedParagraph) string {
	var b strings.Builder
	for _, run := range p.Runs {
		marker := ""
		switch {
		case run.Bold && run.Italic:
			marker = "***"
		case run.Bold:
			marker = "**"
		case run.Italic:
			marker = "*"
		}
		b.WriteString(marker)
		b.WriteString(run.Text)
		b.WriteString(marker)
	}
	return b.String()
}
