package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"docx-export-api/internal/export"
	"docx-export-api/resume/contract"
	"docx-export-api/resume/render"
)

var renderCmd = &cobra.Command{
	Use:   "render FILE...",
	Short: "Render export request files to .docx",
	Long:  "Renders each export request file (.json, .yaml or .yml) to a .docx package in the output directory. The file name comes from the request's file_name, falling back to its doc_type.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runRender,
}

var (
	renderOut         string
	renderConcurrency int
)

func init() {
	renderCmd.Flags().StringVarP(&renderOut, "out", "o", ".", "Output directory")
	renderCmd.Flags().IntVarP(&renderConcurrency, "concurrency", "c", runtime.NumCPU(), "Maximum files rendered at once")

	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	svc := export.NewService(render.NewRenderer(nil))
	written, err := renderFiles(cmd.Context(), svc, args, renderOut, renderConcurrency)
	if err != nil {
		return err
	}
	for _, path := range written {
		fmt.Fprintln(cmd.OutOrStdout(), path)
	}
	return nil
}

// renderFiles renders every input concurrently and writes the packages only
// once all of them succeeded. It returns the written paths in input order.
func renderFiles(ctx context.Context, svc *export.Service, inputs []string, outDir string, concurrency int) ([]string, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if concurrency < 1 {
		concurrency = 1
	}

	docs := make([]export.Document, len(inputs))
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for i, input := range inputs {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			req, err := loadRequest(input)
			if err != nil {
				return err
			}
			doc, err := svc.Generate(req)
			if err != nil {
				return fmt.Errorf("render %s: %w", input, err)
			}
			docs[i] = doc
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	seen := make(map[string]string, len(docs))
	for i, doc := range docs {
		if prev, ok := seen[doc.FileName]; ok {
			return nil, fmt.Errorf("%s and %s both render to %s; set distinct file_name values", prev, inputs[i], doc.FileName)
		}
		seen[doc.FileName] = inputs[i]
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output directory %s: %w", outDir, err)
	}
	written := make([]string, 0, len(docs))
	for _, doc := range docs {
		path := filepath.Join(outDir, doc.FileName)
		if err := os.WriteFile(path, doc.Content, 0o644); err != nil {
			return nil, fmt.Errorf("write %s: %w", path, err)
		}
		written = append(written, path)
	}
	return written, nil
}

// loadRequest reads an export request, choosing the decoder by extension.
func loadRequest(path string) (contract.ExportRequest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return contract.ExportRequest{}, fmt.Errorf("read %s: %w", path, err)
	}

	var req contract.ExportRequest
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &req); err != nil {
			return contract.ExportRequest{}, fmt.Errorf("parse %s: %w", path, err)
		}
	case ".json":
		if err := json.Unmarshal(data, &req); err != nil {
			return contract.ExportRequest{}, fmt.Errorf("parse %s: %w", path, err)
		}
	default:
		return contract.ExportRequest{}, fmt.Errorf("unsupported request file %s: want .json, .yaml or .yml", path)
	}
	return req, nil
}
