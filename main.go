package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/orayew2002/fkemployee/config"
	"github.com/orayew2002/fkemployee/domain"
	"github.com/orayew2002/fkemployee/employee"
	"github.com/orayew2002/fkemployee/logging"
	"github.com/orayew2002/fkemployee/processor"
	"github.com/orayew2002/fkemployee/storage"
	"github.com/rs/zerolog"
)

func main() {
	if err := config.LoadDotEnv(".env"); err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.Load(os.Args[1:])
	switch {
	case errors.Is(err, flag.ErrHelp):
		os.Exit(0)
	case errors.Is(err, config.ErrFlags):
		os.Exit(2)
	case err != nil:
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(2)
	}

	runID := uuid.NewString()
	log := logging.New(os.Stderr, cfg.Logging.Level, cfg.Logging.Format).
		With().Str("run_id", runID).Logger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err = run(ctx, cfg, runID, log)
	stop()

	if err != nil {
		log.Error().Err(err).Msg("run failed")
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, runID string, log zerolog.Logger) error {
	source, err := domain.NewSource(cfg.Source, cfg.Seed)
	if err != nil {
		return err
	}
	gen := domain.NewGenerator(source, cfg.Seed, cfg.PasswordLength)

	writers, err := openWriters(cfg)
	if err != nil {
		return err
	}

	var uploader processor.Uploader
	if !cfg.SkipUpload {
		uploader = newUploader(ctx, cfg, runID)
	}

	log.Debug().
		Str("source", cfg.Source).
		Int64("seed", cfg.Seed).
		Int("count", cfg.Count).
		Msg("generating employee data")

	p := processor.New(gen, writers, uploader, log, processor.Options{
		Count:         cfg.Count,
		LocalPath:     cfg.Output,
		Bucket:        cfg.Bucket,
		ObjectKey:     cfg.ObjectKey,
		UploadTimeout: cfg.UploadTimeout,
	})

	_, err = p.Run(ctx)
	return err
}

func openWriters(cfg *config.Config) ([]employee.Writer, error) {
	csvWriter, err := employee.NewCSVWriter(cfg.Output)
	if err != nil {
		return nil, err
	}
	writers := []employee.Writer{csvWriter}

	if cfg.XLSXPath != "" {
		xlsxWriter, err := employee.NewXLSXWriter(cfg.XLSXPath)
		if err != nil {
			csvWriter.Close()
			return nil, err
		}
		writers = append(writers, xlsxWriter)
	}

	return writers, nil
}

// newUploader builds the S3 uploader. Client setup errors are deferred to
// Upload so they are reported like any other upload failure.
func newUploader(ctx context.Context, cfg *config.Config, runID string) processor.Uploader {
	client, err := storage.NewS3Client(ctx, storage.Options{
		Region:    cfg.S3.Region,
		Endpoint:  cfg.S3.Endpoint,
		AccessKey: cfg.S3.AccessKey,
		SecretKey: cfg.S3.SecretKey,
		PathStyle: cfg.S3.PathStyle,
	})
	if err != nil {
		return brokenUploader{err: err}
	}

	return storage.NewUploader(client, map[string]string{"run-id": runID})
}

type brokenUploader struct {
	err error
}

func (b brokenUploader) Upload(context.Context, string, string, string) error {
	return b.err
}
