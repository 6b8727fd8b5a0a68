package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"sommelier-srv/internal/extraction"
)

// Run - Flow: list *.pdf → extract in parallel (failures skipped) → write indented JSON → optional upload
func (uc *implUseCase) Run(ctx context.Context, input extraction.RunInput) (extraction.RunOutput, error) {
	startTime := time.Now()

	if input.PDFDir == "" {
		return extraction.RunOutput{}, extraction.ErrPDFDirRequired
	}
	if input.OutputFile == "" {
		return extraction.RunOutput{}, extraction.ErrOutputRequired
	}
	if input.Upload && uc.minio == nil {
		return extraction.RunOutput{}, extraction.ErrUploaderUnavailable
	}

	// Step 1: List PDF files
	files, err := listPDFs(input.PDFDir)
	if err != nil {
		uc.l.Errorf(ctx, "extraction.usecase.Run: listPDFs failed: %v", err)
		return extraction.RunOutput{}, err
	}
	uc.l.Infof(ctx, "extraction.usecase.Run: found %d PDF files in %s", len(files), input.PDFDir)

	// Step 2: Extract text
	data, skipped, err := uc.extractAll(ctx, input.PDFDir, files)
	if err != nil {
		return extraction.RunOutput{}, err
	}

	// Step 3: Write JSON
	blob, err := writeOutput(input.OutputFile, data)
	if err != nil {
		uc.l.Errorf(ctx, "extraction.usecase.Run: writeOutput failed: %v", err)
		return extraction.RunOutput{}, err
	}
	uc.l.Infof(ctx, "extraction.usecase.Run: data extracted and saved to %s", input.OutputFile)

	output := extraction.RunOutput{
		OutputFile: input.OutputFile,
		Extracted:  len(data),
		Skipped:    skipped,
	}

	// Step 4: Upload (optional)
	if input.Upload {
		object, err := uc.upload(ctx, blob, input.ObjectPrefix, filepath.Base(input.OutputFile))
		if err != nil {
			return extraction.RunOutput{}, err
		}
		output.Object = object
	}

	output.Duration = time.Since(startTime)
	return output, nil
}

// listPDFs returns the regular *.pdf files (any case) directly inside dir, sorted by name.
func listPDFs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", extraction.ErrPDFDirNotFound, dir)
		}
		return nil, fmt.Errorf("read %s: %w", dir, err)
	}

	files := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.Type().IsRegular() {
			continue
		}
		if strings.EqualFold(filepath.Ext(e.Name()), ".pdf") {
			files = append(files, e.Name())
		}
	}
	sort.Strings(files)
	return files, nil
}

// extractAll parses files concurrently. A file that fails to parse is logged and skipped.
func (uc *implUseCase) extractAll(ctx context.Context, dir string, files []string) (map[string]string, []string, error) {
	var (
		mu      sync.Mutex
		data    = make(map[string]string, len(files))
		skipped []string
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(uc.concurrency)

	for _, name := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			uc.l.Infof(gctx, "extraction.usecase.Run: processing %s", name)
			text, err := uc.extractor.ExtractFile(filepath.Join(dir, name))

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				uc.l.Warnf(gctx, "extraction.usecase.Run: skipping %s: %v", name, err)
				skipped = append(skipped, name)
				return nil
			}
			data[name] = text
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	sort.Strings(skipped)
	return data, skipped, nil
}

// writeOutput writes data as 4-space indented JSON, creating the parent folder.
func writeOutput(path string, data map[string]string) ([]byte, error) {
	blob, err := json.MarshalIndent(data, "", "    ")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", extraction.ErrWriteOutput, err)
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("%w: %v", extraction.ErrWriteOutput, err)
		}
	}
	if err := os.WriteFile(path, blob, 0o644); err != nil {
		return nil, fmt.Errorf("%w: %v", extraction.ErrWriteOutput, err)
	}
	return blob, nil
}
