package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"sommelier-srv/config"
	configMinIO "sommelier-srv/config/minio"
	"sommelier-srv/internal/extraction"
	extractionUsecase "sommelier-srv/internal/extraction/usecase"
	"sommelier-srv/pkg/log"
	"sommelier-srv/pkg/minio"
	"sommelier-srv/pkg/pdf"

	"github.com/spf13/pflag"
)

// Extracts the text of every PDF in a folder into one JSON file, optionally uploading it to MinIO.
func main() {
	fs := pflag.NewFlagSet("extract", pflag.ExitOnError)
	config.ExtractFlags(fs)
	_ = fs.Parse(os.Args[1:])

	// 1. Load configuration (flags > env > file > defaults)
	cfg, err := config.LoadExtract(fs)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to load config:", err)
		os.Exit(1)
	}

	// 2. Initialize logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error(ctx, "Extraction failed: ", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger log.Logger) error {
	// 3. Initialize MinIO (only when uploading)
	var storage minio.MinIO
	if cfg.Extract.Upload {
		client, err := configMinIO.Connect(ctx, cfg.MinIO)
		if err != nil {
			return fmt.Errorf("connect minio: %w", err)
		}
		defer configMinIO.Disconnect()
		storage = client
		logger.Infof(ctx, "MinIO connected to %s, bucket %s", cfg.MinIO.Endpoint, cfg.MinIO.Bucket)
	}

	// 4. Run the batch
	uc := extractionUsecase.New(logger, pdf.NewExtractor(), storage, cfg.MinIO.Bucket)
	out, err := uc.Run(ctx, extraction.RunInput{
		PDFDir:       cfg.Extract.PDFDir,
		OutputFile:   cfg.Extract.OutputFile,
		Upload:       cfg.Extract.Upload,
		ObjectPrefix: cfg.Extract.ObjectPrefix,
	})
	if err != nil {
		return err
	}

	logger.Infof(ctx, "Extracted %d files (%d skipped) into %s in %s",
		out.Extracted, len(out.Skipped), out.OutputFile, out.Duration)
	if out.Object != "" {
		logger.Infof(ctx, "Uploaded to %s/%s", cfg.MinIO.Bucket, out.Object)
	}
	return nil
}
